package uagen

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/ssgreg/repeat"
)

// resolve derives a fully populated selection from the pins. Each unset dimension is
// drawn uniformly from the values compatible with what is already fixed; OS goes
// first so the chipset draw has a concrete OS to check against.
func (r *RandomUserAgent) resolve() (sel Selection, e error) {
	sel = r.pins
	if sel.OS == 0 {
		var cands []OS
		for _, o := range AllOS {
			if sel.Chipset == 0 || ChipsetValidForOS(sel.Chipset, o) {
				cands = append(cands, o)
			}
		}
		if len(cands) == 0 {
			return sel, errors.Wrapf(ErrIncompatiblePins, "no operating system accepts chipset %v", sel.Chipset)
		}
		sel.OS = cands[r.rnd.Intn(len(cands))]
	}
	if sel.Chipset == 0 {
		var cands []Chipset
		for _, c := range AllChipsets {
			if ChipsetValidForOS(c, sel.OS) {
				cands = append(cands, c)
			}
		}
		if len(cands) == 0 {
			return sel, errors.Wrapf(ErrIncompatiblePins, "no chipset is valid for %v", sel.OS)
		}
		sel.Chipset = cands[r.rnd.Intn(len(cands))]
	}
	if sel.Browser == 0 {
		sel.Browser = AllBrowsers[r.rnd.Intn(len(AllBrowsers))]
	}
	if sel.Locale == "" {
		sel.Locale = AllLocales[r.rnd.Intn(len(AllLocales))]
	}
	return
}

// attempt resolves and renders once. A failed attempt leaves the session untouched,
// so the next one starts again from the pins.
func (r *RandomUserAgent) attempt() (ua string, sel Selection, e error) {
	if sel, e = r.resolve(); e != nil {
		return
	}
	if !sel.Valid() {
		e = errors.Wrapf(ErrUnsupportedCombination, "chipset %v is invalid for %v", sel.Chipset, sel.OS)
		return
	}
	rd, found := r.renderers[sel.Browser]
	if !found {
		e = errors.Wrapf(ErrUnsupportedCombination, "no renderer for browser %v", sel.Browser)
		return
	}
	var ok bool
	if ua, ok = rd.render(sel, &dice{rnd: r.rnd, now: r.now()}); !ok {
		e = errors.Wrapf(ErrUnsupportedCombination, "%v does not run on %v", sel.Browser, sel.OS)
	}
	return
}

// Build generates one user agent string from the pins, randomizing every unset dimension.
// Pinned values are never altered. It fails with ErrIncompatiblePins when the pinned OS and
// chipset can never pair, and with ErrNoValidCombination once the attempt budget runs out.
func (r *RandomUserAgent) Build() (ua string, e error) {
	r.built = false
	if r.pins.OS != 0 && r.pins.Chipset != 0 && !r.pins.Valid() {
		e = errors.Wrapf(ErrIncompatiblePins, "chipset %v is invalid for %v", r.pins.Chipset, r.pins.OS)
		return
	}

	attempts := 0
	e = repeat.Repeat(
		repeat.LimitMaxTries(r.maxAttempts),
		repeat.FnWithCounter(func(c int) error {
			attempts = c + 1
			out, sel, err := r.attempt()
			if err != nil {
				if errors.Is(err, ErrIncompatiblePins) {
					return repeat.HintStop(err)
				}
				r.log.Debugf("#%d attempt failed: %v", attempts, err)
				return repeat.HintTemporary(err)
			}
			ua = out
			r.resolved, r.built = sel, true
			r.log.WithFields(logrus.Fields{"attempt": attempts, "selection": sel.String()}).
				Debug("user agent rendered")
			return nil
		}),
		repeat.StopOnSuccess(),
	)
	if e == nil {
		return
	}
	ua = ""
	if errors.Is(e, ErrIncompatiblePins) {
		return
	}
	e = errors.Wrapf(ErrNoValidCombination, "%d attempts failed for pins [%v], last error: %v",
		attempts, r.pins, e)
	return
}

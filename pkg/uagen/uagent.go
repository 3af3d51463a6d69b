// Package uagen generates randomized, syntactically plausible browser user agent strings.
//
// A RandomUserAgent is a single-goroutine session: pin zero or more dimensions with the
// chainable methods, then call Build. Dimensions left unpinned are drawn at random from
// the values compatible with the pinned ones.
//
//	ua, e := uagen.New().Linux().Firefox().Build()
package uagen

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultMaxAttempts bounds the number of resolve and render attempts made by Build.
const DefaultMaxAttempts = 20

// RandomUserAgent is a generation session. It is not safe for concurrent use.
type RandomUserAgent struct {
	pins     Selection
	resolved Selection
	built    bool

	rnd         Source
	now         func() time.Time
	maxAttempts int
	log         logrus.FieldLogger
	renderers   map[Browser]renderer
}

// Option customizes a session created by New.
type Option func(*RandomUserAgent)

// WithSource sets the random source. Seed it for reproducible output.
func WithSource(src Source) Option {
	return func(r *RandomUserAgent) { r.rnd = src }
}

// WithClock sets the source of "now", the upper bound of Firefox build dates.
func WithClock(now func() time.Time) Option {
	return func(r *RandomUserAgent) { r.now = now }
}

// WithMaxAttempts overrides DefaultMaxAttempts. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(r *RandomUserAgent) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

// WithLogger sets the logger used to report attempts at debug level.
// The logrus standard logger is used by default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(r *RandomUserAgent) { r.log = l }
}

// New creates a session with every dimension unset.
func New(opts ...Option) *RandomUserAgent {
	r := &RandomUserAgent{
		now:         time.Now,
		maxAttempts: DefaultMaxAttempts,
		log:         logrus.StandardLogger(),
		renderers:   defaultRenderers(),
	}
	for _, o := range opts {
		o(r)
	}
	if r.rnd == nil {
		r.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return r
}

// Pins returns the caller-pinned subset of the selection.
func (r *RandomUserAgent) Pins() Selection { return r.pins }

func (r *RandomUserAgent) current() Selection {
	if r.built {
		return r.resolved
	}
	return r.pins
}

// OS returns the operating system resolved by the last Build, as long as it succeeded and
// no pin changed since; otherwise the current pin.
func (r *RandomUserAgent) OS() OS { return r.current().OS }

// Chipset returns the resolved chipset, or the current pin. See OS.
func (r *RandomUserAgent) Chipset() Chipset { return r.current().Chipset }

// Browser returns the resolved browser, or the current pin. See OS.
func (r *RandomUserAgent) Browser() Browser { return r.current().Browser }

// Locale returns the resolved locale, or the current pin. See OS.
func (r *RandomUserAgent) Locale() Locale { return r.current().Locale }

// SetOS pins the operating system. A pin is never validated until Build.
func (r *RandomUserAgent) SetOS(o OS) *RandomUserAgent {
	r.pins.OS, r.built = o, false
	return r
}

// SetChipset pins the chipset.
func (r *RandomUserAgent) SetChipset(c Chipset) *RandomUserAgent {
	r.pins.Chipset, r.built = c, false
	return r
}

// SetBrowser pins the browser.
func (r *RandomUserAgent) SetBrowser(b Browser) *RandomUserAgent {
	r.pins.Browser, r.built = b, false
	return r
}

// SetLocale pins the locale.
func (r *RandomUserAgent) SetLocale(l Locale) *RandomUserAgent {
	r.pins.Locale, r.built = l, false
	return r
}

func (r *RandomUserAgent) Windows() *RandomUserAgent { return r.SetOS(Windows) }
func (r *RandomUserAgent) Linux() *RandomUserAgent   { return r.SetOS(Linux) }
func (r *RandomUserAgent) MacOSX() *RandomUserAgent  { return r.SetOS(MacOSX) }
func (r *RandomUserAgent) Android() *RandomUserAgent { return r.SetOS(Android) }
func (r *RandomUserAgent) IOS() *RandomUserAgent     { return r.SetOS(IOS) }

func (r *RandomUserAgent) X86() *RandomUserAgent    { return r.SetChipset(X86) }
func (r *RandomUserAgent) X64() *RandomUserAgent    { return r.SetChipset(X64) }
func (r *RandomUserAgent) Intel() *RandomUserAgent  { return r.SetChipset(Intel) }
func (r *RandomUserAgent) PPC() *RandomUserAgent    { return r.SetChipset(PPC) }
func (r *RandomUserAgent) UIntel() *RandomUserAgent { return r.SetChipset(UIntel) }
func (r *RandomUserAgent) UPPC() *RandomUserAgent   { return r.SetChipset(UPPC) }

func (r *RandomUserAgent) Firefox() *RandomUserAgent   { return r.SetBrowser(Firefox) }
func (r *RandomUserAgent) Safari() *RandomUserAgent    { return r.SetBrowser(Safari) }
func (r *RandomUserAgent) IExplorer() *RandomUserAgent { return r.SetBrowser(IExplorer) }
func (r *RandomUserAgent) Opera() *RandomUserAgent     { return r.SetBrowser(Opera) }
func (r *RandomUserAgent) Chrome() *RandomUserAgent    { return r.SetBrowser(Chrome) }

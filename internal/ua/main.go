package ua

import (
	"math/rand"
	"time"

	"github.com/agux/rua/internal/conf"
	"github.com/agux/rua/internal/logging"
	"github.com/agux/rua/pkg/uagen"
	"github.com/pkg/errors"
)

var log = logging.Logger

// newSource returns the random source for a batch of sessions,
// seeded from the configuration or the clock when the seed is 0.
func newSource() *rand.Rand {
	seed := conf.Args.Generator.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// newSession creates a session pinned with the dimensions set in the configuration.
func newSession(src uagen.Source) (r *uagen.RandomUserAgent, e error) {
	g := conf.Args.Generator
	r = uagen.New(
		uagen.WithSource(src),
		uagen.WithMaxAttempts(g.MaxAttempts),
		uagen.WithLogger(log),
	)
	if g.OS != "" {
		var o uagen.OS
		if o, e = uagen.ParseOS(g.OS); e != nil {
			return nil, e
		}
		r.SetOS(o)
	}
	if g.Chipset != "" {
		var c uagen.Chipset
		if c, e = uagen.ParseChipset(g.Chipset); e != nil {
			return nil, e
		}
		r.SetChipset(c)
	}
	if g.Browser != "" {
		var b uagen.Browser
		if b, e = uagen.ParseBrowser(g.Browser); e != nil {
			return nil, e
		}
		r.SetBrowser(b)
	}
	if g.Locale != "" {
		var l uagen.Locale
		if l, e = uagen.ParseLocale(g.Locale); e != nil {
			return nil, e
		}
		r.SetLocale(l)
	}
	return
}

// Generate builds n user agents, each from a fresh session pinned per the configuration.
func Generate(n int) (agents []string, e error) {
	return generate(newSource(), n)
}

func generate(src uagen.Source, n int) (agents []string, e error) {
	agents = make([]string, 0, n)
	for i := 0; i < n; i++ {
		var r *uagen.RandomUserAgent
		if r, e = newSession(src); e != nil {
			return nil, errors.Wrap(e, "invalid generator configuration")
		}
		var a string
		if a, e = r.Build(); e != nil {
			return nil, errors.Wrapf(e, "failed to generate user agent #%d", i+1)
		}
		agents = append(agents, a)
	}
	return
}

package uagen

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// OS is the operating system a user agent claims to run on.
// The zero value means the dimension is not pinned.
type OS int

const (
	Windows OS = iota + 1
	Linux
	MacOSX
	// Android and IOS are representable, but no renderer supports them yet.
	Android
	IOS
)

// AllOS lists every operating system in declaration order.
var AllOS = []OS{Windows, Linux, MacOSX, Android, IOS}

var osNames = map[OS]string{
	Windows: "Windows",
	Linux:   "Linux",
	MacOSX:  "MacOSX",
	Android: "Android",
	IOS:     "iOS",
}

func (o OS) String() string {
	if n, ok := osNames[o]; ok {
		return n
	}
	return "unset"
}

// ParseOS converts a case-insensitive OS name into an OS.
func ParseOS(s string) (o OS, e error) {
	for _, v := range AllOS {
		if strings.EqualFold(s, v.String()) {
			return v, nil
		}
	}
	return o, errors.Errorf("unknown operating system: %q", s)
}

// Chipset is the CPU architecture token embedded in a user agent.
// The zero value means the dimension is not pinned.
type Chipset int

const (
	// X86 and X64 pair with Linux.
	X86 Chipset = iota + 1
	X64
	// Intel, PPC and their universal variants pair with MacOSX.
	Intel
	PPC
	UIntel
	UPPC
)

// AllChipsets lists every chipset in declaration order.
var AllChipsets = []Chipset{X86, X64, Intel, PPC, UIntel, UPPC}

var chipsetNames = map[Chipset][2]string{
	X86:    {"x86", "i686"},
	X64:    {"x64", "x86_64"},
	Intel:  {"Intel", "Intel"},
	PPC:    {"PPC", "PPC"},
	UIntel: {"UIntel", "U; Intel"},
	UPPC:   {"UPPC", "U; PPC"},
}

func (c Chipset) String() string {
	if n, ok := chipsetNames[c]; ok {
		return n[0]
	}
	return "unset"
}

// Value returns the token written verbatim into user agent strings.
func (c Chipset) Value() string {
	return chipsetNames[c][1]
}

// ParseChipset accepts either the chipset name (x64) or its display value (x86_64).
func ParseChipset(s string) (c Chipset, e error) {
	for _, v := range AllChipsets {
		if strings.EqualFold(s, v.String()) || strings.EqualFold(s, v.Value()) {
			return v, nil
		}
	}
	return c, errors.Errorf("unknown chipset: %q", s)
}

// ChipsetValidForOS reports whether chipset c may appear alongside operating system o.
// Linux only takes X86/X64 and MacOSX only takes Intel/UIntel/PPC/UPPC. Every other
// OS accepts any chipset; Windows renderers never print it.
func ChipsetValidForOS(c Chipset, o OS) bool {
	switch o {
	case Linux:
		return c == X86 || c == X64
	case MacOSX:
		return c == Intel || c == UIntel || c == PPC || c == UPPC
	default:
		return true
	}
}

// Browser is the browser family a user agent is rendered for.
// The zero value means the dimension is not pinned.
type Browser int

const (
	Firefox Browser = iota + 1
	Safari
	IExplorer
	Opera
	Chrome
)

// AllBrowsers lists every browser in declaration order.
var AllBrowsers = []Browser{Firefox, Safari, IExplorer, Opera, Chrome}

var browserNames = map[Browser]string{
	Firefox:   "Firefox",
	Safari:    "Safari",
	IExplorer: "IExplorer",
	Opera:     "Opera",
	Chrome:    "Chrome",
}

func (b Browser) String() string {
	if n, ok := browserNames[b]; ok {
		return n
	}
	return "unset"
}

// ParseBrowser converts a case-insensitive browser name into a Browser.
func ParseBrowser(s string) (b Browser, e error) {
	for _, v := range AllBrowsers {
		if strings.EqualFold(s, v.String()) {
			return v, nil
		}
	}
	return b, errors.Errorf("unknown browser: %q", s)
}

// Locale is a language-region tag embedded verbatim by some renderers.
// The empty value means the dimension is not pinned.
type Locale string

const (
	EnUS Locale = "en-US"
	EnGB Locale = "en-GB"
	SlSI Locale = "sl-SI"
	NlNL Locale = "nl-NL"
	FrFR Locale = "fr-FR"
)

// AllLocales lists every supported locale in declaration order.
var AllLocales = []Locale{EnUS, EnGB, SlSI, NlNL, FrFR}

var localeMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(AllLocales))
	for i, l := range AllLocales {
		tags[i] = language.MustParse(string(l))
	}
	return language.NewMatcher(tags)
}()

func (l Locale) String() string {
	if l == "" {
		return "unset"
	}
	return string(l)
}

// ParseLocale maps a BCP 47 tag onto the closest supported locale,
// so "fr" yields fr-FR. Languages with no supported match are rejected.
func ParseLocale(s string) (l Locale, e error) {
	tag, e := language.Parse(s)
	if e != nil {
		return l, errors.Wrapf(e, "invalid locale: %q", s)
	}
	_, idx, confidence := localeMatcher.Match(tag)
	if confidence == language.No {
		return l, errors.Errorf("unsupported locale: %q", s)
	}
	return AllLocales[idx], nil
}

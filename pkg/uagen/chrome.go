package uagen

import (
	"fmt"
	"strings"
)

type chrome struct{}

func (chrome) browser() Browser { return Chrome }

func (chrome) supports(o OS) bool {
	return o == Linux || o == Windows || o == MacOSX
}

// render keeps the historical "Mozilla/5.0(" prefix with no separating space.
func (c chrome) render(sel Selection, d *dice) (ua string, ok bool) {
	if !c.supports(sel.OS) {
		return
	}
	saf := fmt.Sprintf("%d.%d", d.between(531, 536), d.between(0, 2))

	var sb strings.Builder
	sb.WriteString("Mozilla/5.0")
	switch sel.OS {
	case Linux:
		fmt.Fprintf(&sb, "(X11; Linux %s) ", sel.Chipset.Value())
	case Windows:
		fmt.Fprintf(&sb, "(%s) ", d.windowsNT())
	case MacOSX:
		fmt.Fprintf(&sb, "(Macintosh; U; %s Mac OS X ", sel.Chipset.Value())
		fmt.Fprintf(&sb, "%s) ", d.macOSX())
	}
	fmt.Fprintf(&sb, "AppleWebKit/%s ", saf)
	sb.WriteString("(KHTML, like Gecko) ")
	fmt.Fprintf(&sb, "Chrome/%d.0.%d.0 ", d.between(13, 15), d.between(800, 899))
	fmt.Fprintf(&sb, "Safari/%s", saf)
	return sb.String(), true
}

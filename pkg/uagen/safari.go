package uagen

import (
	"fmt"
	"strings"
)

type safari struct{}

func (safari) browser() Browser { return Safari }

func (safari) supports(o OS) bool {
	return o == Windows || o == MacOSX
}

func (s safari) render(sel Selection, d *dice) (ua string, ok bool) {
	if !s.supports(sel.OS) {
		return
	}
	saf := fmt.Sprintf("%d.%d.%d", d.between(531, 535), d.between(1, 50), d.between(1, 7))
	var ver string
	if d.between(0, 1) == 0 {
		ver = fmt.Sprintf("%d.%d", d.between(4, 5), d.between(0, 1))
	} else {
		ver = fmt.Sprintf("%d.0.%d", d.between(4, 5), d.between(1, 5))
	}

	var sb strings.Builder
	sb.WriteString("Mozilla/5.0 ")
	switch sel.OS {
	case Windows:
		fmt.Fprintf(&sb, "(Windows; U; %s) ", d.windowsNT())
	case MacOSX:
		fmt.Fprintf(&sb, "(Macintosh; U; %s ", sel.Chipset.Value())
		fmt.Fprintf(&sb, "Mac OS X %s ", d.macOSX())
		fmt.Fprintf(&sb, "rv:%d.0; ", d.between(2, 6))
		fmt.Fprintf(&sb, "%s) ", sel.Locale)
	}
	fmt.Fprintf(&sb, "AppleWebKit/%s (KHTML, like Gecko) ", saf)
	fmt.Fprintf(&sb, "Version/%s ", ver)
	fmt.Fprintf(&sb, "Safari/%s", saf)
	return sb.String(), true
}

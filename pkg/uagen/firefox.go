package uagen

import (
	"fmt"
	"strings"
)

type firefox struct{}

func (firefox) browser() Browser { return Firefox }

func (firefox) supports(o OS) bool {
	return o == Windows || o == Linux || o == MacOSX
}

func (f firefox) render(sel Selection, d *dice) (ua string, ok bool) {
	if !f.supports(sel.OS) {
		return
	}
	var sb strings.Builder
	sb.WriteString("Mozilla/5.0 ")
	switch sel.OS {
	case Windows:
		fmt.Fprintf(&sb, "(%s; ", d.windowsNT())
		sb.WriteString(string(sel.Locale) + "; ")
		fmt.Fprintf(&sb, "rv:1.9.%d.20) ", d.between(0, 2))
	case Linux:
		fmt.Fprintf(&sb, "(X11; Linux %s; ", sel.Chipset.Value())
		fmt.Fprintf(&sb, "rv:%d.0) ", d.between(5, 7))
	case MacOSX:
		fmt.Fprintf(&sb, "(Macintosh; %s ", sel.Chipset.Value())
		fmt.Fprintf(&sb, "Mac OS X %s ", d.macOSX())
		fmt.Fprintf(&sb, "rv:%d.0) ", d.between(2, 6))
	}
	sb.WriteString(f.gecko(d))
	return sb.String(), true
}

// gecko renders the trailing Gecko build date and Firefox version.
func (firefox) gecko(d *dice) string {
	date := d.date().Format(buildDateFormat)
	switch d.rnd.Intn(4) {
	case 0:
		return fmt.Sprintf("Gecko/%s Firefox/%d.0", date, d.between(5, 7))
	case 1:
		return fmt.Sprintf("Gecko/%s Firefox/%d.0.1", date, d.between(5, 7))
	case 2:
		return fmt.Sprintf("Gecko/%s Firefox/3.6.%d", date, d.between(1, 20))
	default:
		return fmt.Sprintf("Gecko/%s Firefox/3.8", date)
	}
}

package uagen

import (
	"fmt"
	"strings"
)

type opera struct{}

func (opera) browser() Browser { return Opera }

func (opera) supports(o OS) bool {
	return o == Linux || o == Windows
}

func (op opera) render(sel Selection, d *dice) (ua string, ok bool) {
	if !op.supports(sel.OS) {
		return
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Opera/%d.%d ", d.between(8, 9), d.between(10, 99))
	switch sel.OS {
	case Linux:
		fmt.Fprintf(&sb, "(X11; Linux %s; U; ", sel.Chipset.Value())
	case Windows:
		fmt.Fprintf(&sb, "(%s; U; ", d.windowsNT())
	}
	fmt.Fprintf(&sb, "%s) ", sel.Locale)
	fmt.Fprintf(&sb, "Presto/2.9.%d ", d.between(160, 190))
	fmt.Fprintf(&sb, "Version/%d.00", d.between(10, 12))
	sb.WriteString(d.extra())
	return sb.String(), true
}

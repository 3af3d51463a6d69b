package uagen

import "fmt"

type iexplorer struct{}

func (iexplorer) browser() Browser { return IExplorer }

func (iexplorer) supports(o OS) bool { return o == Windows }

func (ie iexplorer) render(sel Selection, d *dice) (ua string, ok bool) {
	if !ie.supports(sel.OS) {
		return
	}
	ua = fmt.Sprintf("Mozilla/%d.0 (compatible; MSIE %d.0; %s; Trident/%d.%d)%s",
		d.between(4, 5), d.between(5, 9), d.windowsNT(), d.between(3, 5), d.between(0, 1), d.extra())
	return ua, true
}

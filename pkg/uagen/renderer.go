package uagen

// renderer turns a resolved selection into the text of one browser family.
type renderer interface {
	browser() Browser
	//supports reports whether the family has a template for operating system o.
	supports(o OS) bool
	//render returns false for an unsupported OS and never produces partial output.
	render(sel Selection, d *dice) (ua string, ok bool)
}

var rendererList = []renderer{
	firefox{},
	safari{},
	iexplorer{},
	opera{},
	chrome{},
}

func defaultRenderers() map[Browser]renderer {
	m := make(map[Browser]renderer, len(rendererList))
	for _, r := range rendererList {
		m[r.browser()] = r
	}
	return m
}

// Supports reports whether browser b can be rendered on operating system o.
func Supports(b Browser, o OS) bool {
	for _, r := range rendererList {
		if r.browser() == b {
			return r.supports(o)
		}
	}
	return false
}

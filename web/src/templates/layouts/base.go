package layouts

import (
	"github.com/a-h/templ"
	"github.com/nfrund/twupgrade/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	fontStylesheet = "https://fonts.googleapis.com/css2?family=Geist:wght@100..900&family=Geist+Mono:wght@100..900&display=swap"
	tailwindScript = "https://cdn.jsdelivr.net/npm/@tailwindcss/browser@4"
	fontVariables  = ":root{--font-geist-sans:'Geist',sans-serif;--font-geist-mono:'Geist Mono',monospace}"
)

// Base is the page shell: head, fonts, stylesheet and the three-row grid the
// page body sits in. lang must already be a valid language tag.
func Base(title, lang string, body g.Node) templ.Component {
	return view.AdaptGomponentToTempl(Document(title, lang, body))
}

// Document is the gomponents form of Base.
func Document(title, lang string, body g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang(lang),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(CalculateTitle(title))),
				h.Link(h.Rel("preconnect"), h.Href("https://fonts.googleapis.com")),
				h.Link(h.Rel("stylesheet"), h.Href(fontStylesheet)),
				h.Script(h.Src(tailwindScript)),
				h.StyleEl(g.Raw(fontVariables)),
			),
			h.Body(
				h.Class("antialiased"),
				h.Div(
					h.Class("grid grid-rows-[20px_1fr_20px] items-center justify-items-center min-h-screen p-8 pb-20 gap-16 sm:p-20 font-[family-name:var(--font-geist-sans)]"),
					body,
				),
			),
		),
	)
}

package components

import (
	"strconv"

	"github.com/nfrund/twupgrade/internal/content"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Footer renders the outbound links row.
func Footer(links []content.FooterLink) g.Node {
	return h.Footer(
		h.Class("row-start-3 flex gap-[24px] flex-wrap items-center justify-center"),
		g.Map(links, FooterLink),
	)
}

// FooterLink renders one link, opened in a new browsing context without
// referrer or opener.
func FooterLink(l content.FooterLink) g.Node {
	return h.A(
		h.Class("flex items-center gap-2 hover:underline hover:underline-offset-4"),
		h.Href(l.URL),
		h.Target("_blank"),
		h.Rel("noopener noreferrer"),
		Icon(l.Icon),
		g.Text(l.Label),
	)
}

// Icon renders a decorative image. The bytes are fetched by the browser from
// the asset store; a missing asset degrades to the alt text.
func Icon(i content.Icon) g.Node {
	return h.Img(
		h.Aria("hidden", "true"),
		h.Src(i.Path),
		h.Alt(i.Alt),
		h.Width(strconv.Itoa(i.Width)),
		h.Height(strconv.Itoa(i.Height)),
	)
}

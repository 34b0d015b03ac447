package components

import (
	"github.com/nfrund/twupgrade/internal/content"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// SectionHeading renders a second-level heading in the given accent colour,
// e.g. "text-green-400". Headings may contain inline markdown.
func SectionHeading(text, colorClass string) g.Node {
	return h.H2(h.Class("text-2xl font-semibold mt-6 mb-2 "+colorClass), Markdown(text))
}

// Paragraph renders lead-sized inline markdown.
func Paragraph(text string) g.Node {
	return h.P(h.Class("text-lg mb-4"), Markdown(text))
}

// Section renders a heading followed by its paragraph.
func Section(s content.Section, colorClass string) g.Node {
	return g.Group{SectionHeading(s.Heading, colorClass), Paragraph(s.Body)}
}

// TipList renders the upgrade tips as a bulleted list.
func TipList(tips []string) g.Node {
	return h.Ul(
		h.Class("list-disc list-inside text-lg mb-4"),
		g.Map(tips, func(tip string) g.Node {
			return h.Li(Markdown(tip))
		}),
	)
}

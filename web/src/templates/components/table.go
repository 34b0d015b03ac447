package components

import (
	"github.com/nfrund/twupgrade/internal/content"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const cellClass = "p-3 border border-gray-700"

// ComparisonTable renders the v3/v4 syntax table. Every other body row is
// shaded, starting with the second.
func ComparisonTable(t content.Table) g.Node {
	return h.Div(
		h.Class("overflow-x-auto"),
		h.Table(
			h.Class("w-full text-left border border-gray-700"),
			h.THead(
				h.Tr(
					h.Class("bg-gray-800"),
					g.Map(t.Headers[:], func(header string) g.Node {
						return h.Th(h.Class(cellClass), g.Text(header))
					}),
				),
			),
			h.TBody(
				g.Group(rows(t.Rows)),
			),
		),
	)
}

func rows(rs []content.ComparisonRow) []g.Node {
	nodes := make([]g.Node, 0, len(rs))
	for i, r := range rs {
		nodes = append(nodes, h.Tr(
			g.If(i%2 == 1, h.Class("bg-gray-800")),
			h.Td(h.Class(cellClass), h.Strong(g.Text(r.Feature))),
			syntaxCell(r.Old, r.OldNote),
			syntaxCell(r.New, r.NewNote),
		))
	}
	return nodes
}

func syntaxCell(token, note string) g.Node {
	return h.Td(
		h.Class(cellClass),
		h.Code(g.Text(token)),
		g.If(note != "", g.Text(" "+note)),
	)
}

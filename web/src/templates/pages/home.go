package pages

import (
	"github.com/a-h/templ"
	"github.com/nfrund/twupgrade/internal/content"
	c "github.com/nfrund/twupgrade/web/src/templates/components"
	"github.com/nfrund/twupgrade/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// HomeTitle is the layout title of the home page.
const HomeTitle = "Tailwind v3 vs v4"

// Home renders the article. It takes no input: every call builds the same
// tree from the literal content.
func Home() g.Node {
	return Article(content.Article())
}

// HomePage wraps Home in the base layout.
func HomePage(lang string) templ.Component {
	return ArticlePage(content.Article(), lang)
}

// ArticlePage wraps Article(doc) in the base layout.
func ArticlePage(doc content.Document, lang string) templ.Component {
	return layouts.Base(HomeTitle, lang, Article(doc))
}

// Article renders a Document as the main column plus footer. The order of
// the children is fixed: title, intro, table, CSS variable section with the
// correct and incorrect samples, calc() section and sample, tips, note.
func Article(doc content.Document) g.Node {
	return g.Group{
		h.Main(
			h.Class("flex flex-col gap-[32px] row-start-2 items-center sm:items-start"),
			h.Div(
				h.Class("max-w-4xl mx-auto p-6 bg-gray-900 text-white rounded-lg shadow-lg"),
				h.H1(h.Class("text-4xl font-bold mb-6 text-center text-blue-400"), g.Text(doc.Title)),
				c.Paragraph(doc.Intro),
				c.ComparisonTable(doc.Table),
				c.Section(doc.Variables, "text-green-400"),
				c.CodeSample(doc.Correct, ""),
				c.CodeSample(doc.Incorrect, "mt-4"),
				c.Section(doc.Calc, "text-blue-400"),
				c.CodeSample(doc.CalcSample, ""),
				c.SectionHeading(doc.TipsHeading, "text-yellow-400"),
				c.TipList(doc.Tips),
				h.P(h.Class("mt-4 text-gray-400 text-sm"), c.Markdown(doc.Note)),
			),
		),
		c.Footer(doc.Footer),
	}
}

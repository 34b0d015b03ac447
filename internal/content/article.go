// Package content holds the literal article served by the home page.
//
// Everything here is hand-authored. Article builds a fresh Document on every
// call so that a caller mutating its copy never leaks into a later render.
package content

// utmQuery tags every outbound footer link.
const utmQuery = "utm_source=create-next-app&utm_medium=default-template-tw&utm_campaign=create-next-app"

// Icon is a small decorative image requested from the asset store.
type Icon struct {
	Path   string `validate:"required,startswith=/"`
	Alt    string `validate:"required"`
	Width  int    `validate:"gt=0"`
	Height int    `validate:"gt=0"`
}

// FooterLink is one outbound link in the page footer.
type FooterLink struct {
	Label string `validate:"required"`
	URL   string `validate:"required,url,startswith=https://"`
	Icon  Icon
}

// ComparisonRow is one line of the v3/v4 syntax table. Old and New hold the
// class token shown in code; the notes are the annotation that follows it.
type ComparisonRow struct {
	Feature string `validate:"required"`
	Old     string `validate:"required"`
	OldNote string
	New     string `validate:"required"`
	NewNote string
}

// Table is the syntax comparison table.
type Table struct {
	Headers [3]string
	Rows    []ComparisonRow `validate:"len=4,dive"`
}

// CodeSample is a labelled snippet shown in a code block.
type CodeSample struct {
	Verdict string `validate:"required"`
	Code    string `validate:"required"`
	Correct bool
}

// Section is a heading followed by a paragraph of inline markdown.
type Section struct {
	Heading string `validate:"required"`
	Body    string `validate:"required"`
}

// Document is the whole article, in display order.
type Document struct {
	Title       string `validate:"required"`
	Intro       string `validate:"required"`
	Table       Table
	Variables   Section
	Correct     CodeSample
	Incorrect   CodeSample
	Calc        Section
	CalcSample  CodeSample
	TipsHeading string       `validate:"required"`
	Tips        []string     `validate:"len=3,dive,required"`
	Note        string       `validate:"required"`
	Footer      []FooterLink `validate:"len=3,dive"`
}

// Icons returns the icons referenced by the footer, in footer order.
func (d Document) Icons() []Icon {
	icons := make([]Icon, 0, len(d.Footer))
	for _, l := range d.Footer {
		icons = append(icons, l.Icon)
	}
	return icons
}

// Article returns the Tailwind v3 vs v4 article.
func Article() Document {
	return Document{
		Title: "Tailwind CSS v3 vs v4: What's Changed?",
		Intro: "Tailwind CSS v4 introduces several **important changes**, " +
			"particularly in how **arbitrary values** and **CSS variables** are handled. " +
			"Below, we compare Tailwind v3 and v4 with examples and a syntax comparison table.",
		Table: Table{
			Headers: [3]string{"Feature", "Tailwind v3 (Old)", "Tailwind v4 (New)"},
			Rows: []ComparisonRow{
				{Feature: "Custom Colors", Old: "text-[#ff5733]", New: "text-[#ff5733]", NewNote: "(Still Works ✅)"},
				{Feature: "CSS Variables", Old: "text-[--brand-color]", OldNote: "❌ (Invalid)", New: "text-(--brand-color)", NewNote: "✅ (New Syntax)"},
				{Feature: "Custom Widths", Old: "w-[calc(100%-4rem)]", New: "w-(calc(100%-4rem))", NewNote: "✅"},
				{Feature: "Custom Heights", Old: "h-[var(--my-height)]", New: "h-(var(--my-height))", NewNote: "✅"},
			},
		},
		Variables: Section{
			Heading: "Using CSS Variables in v4",
			Body:    "In **Tailwind v4**, CSS variables must now use **parentheses `( )` instead of square brackets `[ ]`**.",
		},
		Correct: CodeSample{
			Verdict: "✅ Correct (Tailwind v4)",
			Code:    `<div className="text-(--brand-color)">Hello World</div>`,
			Correct: true,
		},
		Incorrect: CodeSample{
			Verdict: "❌ Incorrect (Tailwind v3 - Deprecated in v4)",
			Code:    `<div className="text-[--brand-color]">Hello World</div>`,
		},
		Calc: Section{
			Heading: "Using `calc()` in v4",
			Body:    "Tailwind v4 also requires **parentheses** for `calc()` expressions.",
		},
		CalcSample: CodeSample{
			Verdict: "✅ Correct (Tailwind v4)",
			Code:    `<div className="w-(calc(100%-4rem))">Content</div>`,
			Correct: true,
		},
		TipsHeading: "Upgrade Tips 🚀",
		Tips: []string{
			"✅ **Replace** `-[ ]` with `-( )` for variables and `calc()` expressions.",
			"✅ **Standard arbitrary values** (e.g., `text-[#ff5733]`) **still work**.",
			"✅ **Use `text-(--brand-color)` instead of `text-[--brand-color]`**.",
		},
		Note: "If you're migrating from Tailwind v3 to v4, update your codebase by " +
			"searching for `-[` and replacing it with `-( )` where necessary. 🚀",
		Footer: []FooterLink{
			{
				Label: "Learn",
				URL:   "https://nextjs.org/learn?" + utmQuery,
				Icon:  Icon{Path: "/file.svg", Alt: "File icon", Width: 16, Height: 16},
			},
			{
				Label: "Examples",
				URL:   "https://vercel.com/templates?framework=next.js&" + utmQuery,
				Icon:  Icon{Path: "/window.svg", Alt: "Window icon", Width: 16, Height: 16},
			},
			{
				Label: "Go to nextjs.org →",
				URL:   "https://nextjs.org?" + utmQuery,
				Icon:  Icon{Path: "/globe.svg", Alt: "Globe icon", Width: 16, Height: 16},
			},
		},
	}
}

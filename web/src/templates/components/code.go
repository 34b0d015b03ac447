package components

import (
	"github.com/nfrund/twupgrade/internal/content"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// CodeSample renders a snippet with its verdict line. Correct samples are
// green/blue, incorrect ones red/yellow.
func CodeSample(s content.CodeSample, extraClass string) g.Node {
	verdictClass, codeClass := "text-red-400", "block text-yellow-300"
	if s.Correct {
		verdictClass, codeClass = "text-green-400", "block text-blue-300"
	}

	class := "bg-gray-800 p-4 rounded-md font-mono text-sm"
	if extraClass != "" {
		class += " " + extraClass
	}

	return h.Div(
		h.Class(class),
		h.P(h.Class(verdictClass), g.Text(s.Verdict)),
		h.Code(h.Class(codeClass), g.Text(s.Code)),
	)
}

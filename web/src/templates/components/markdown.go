package components

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	g "maragu.dev/gomponents"
)

var md = goldmark.New()

// Markdown renders a single line of inline markdown (strong, code spans) as
// raw HTML, without the paragraph goldmark wraps it in. Raw HTML in src is
// dropped by goldmark's default renderer. If conversion fails the source is
// emitted as escaped text.
func Markdown(src string) g.Node {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return g.Text(src)
	}
	out := strings.TrimSpace(buf.String())
	out = strings.TrimPrefix(out, "<p>")
	out = strings.TrimSuffix(out, "</p>")
	return g.Raw(out)
}

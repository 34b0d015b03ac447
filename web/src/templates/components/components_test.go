package components

import (
	"bytes"
	"testing"

	"github.com/nfrund/twupgrade/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestMarkdown(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"plain", "hello", "hello"},
		{"strong", "**important** changes", "<strong>important</strong> changes"},
		{"code span", "use `text-(--brand-color)`", "use <code>text-(--brand-color)</code>"},
		{"brackets in code", "`-[ ]` to `-( )`", "<code>-[ ]</code> to <code>-( )</code>"},
		{"raw html dropped", "a <script>x</script> b", "a <!-- raw HTML omitted -->x<!-- raw HTML omitted --> b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, Markdown(tt.src)))
		})
	}
}

func TestComparisonTable(t *testing.T) {
	out := render(t, ComparisonTable(content.Article().Table))

	assert.Contains(t, out, "<th class=\"p-3 border border-gray-700\">Tailwind v4 (New)</th>")
	assert.Contains(t, out, "<code>text-[--brand-color]</code> ❌ (Invalid)")
	assert.Contains(t, out, "<code>text-(--brand-color)</code> ✅ (New Syntax)")
	assert.Contains(t, out, "<strong>Custom Heights</strong>")
}

func TestCodeSample(t *testing.T) {
	doc := content.Article()

	correct := render(t, CodeSample(doc.Correct, ""))
	assert.Contains(t, correct, `class="bg-gray-800 p-4 rounded-md font-mono text-sm"`)
	assert.Contains(t, correct, "text-green-400")
	assert.Contains(t, correct, "&lt;div className=&#34;text-(--brand-color)&#34;&gt;Hello World&lt;/div&gt;")

	incorrect := render(t, CodeSample(doc.Incorrect, "mt-4"))
	assert.Contains(t, incorrect, `class="bg-gray-800 p-4 rounded-md font-mono text-sm mt-4"`)
	assert.Contains(t, incorrect, "text-red-400")
	assert.Contains(t, incorrect, "text-[--brand-color]")
}

func TestFooterLink(t *testing.T) {
	link := content.Article().Footer[0]
	out := render(t, FooterLink(link))

	assert.Contains(t, out, `target="_blank"`)
	assert.Contains(t, out, `rel="noopener noreferrer"`)
	assert.Contains(t, out, `<img aria-hidden="true" src="/file.svg" alt="File icon" width="16" height="16">`)
	assert.Contains(t, out, "Learn</a>")
}

func TestTipList(t *testing.T) {
	out := render(t, TipList([]string{"one", "**two**"}))
	assert.Equal(t, `<ul class="list-disc list-inside text-lg mb-4"><li>one</li><li><strong>two</strong></li></ul>`, out)
}

package layouts

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "Home - Tailwind Upgrade Notes", CalculateTitle("Home"))
	assert.Equal(t, "Tailwind Upgrade Notes", CalculateTitle(""))
}

func TestBase(t *testing.T) {
	body := h.Main(g.Text("body"))

	var buf bytes.Buffer
	require.NoError(t, Base("A & B", "en-GB", body).Render(context.Background(), &buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<!doctype html><html lang="en-GB">`))
	assert.Contains(t, out, "<title>A &amp; B - Tailwind Upgrade Notes</title>")
	assert.Contains(t, out, `<meta charset="utf-8">`)
	assert.Contains(t, out, "family=Geist:wght@100..900&amp;family=Geist+Mono")
	assert.Contains(t, out, "<main>body</main>")
	assert.True(t, strings.HasSuffix(out, "</div></body></html>"))
	assert.Less(t, strings.Index(out, "</head>"), strings.Index(out, "<main>"))
}

func TestBase_EscapesValues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Base(`</title><script>`, `en"><x`, nil).Render(context.Background(), &buf))
	out := buf.String()

	assert.NotContains(t, out, "<x")
	assert.NotContains(t, out, "</title><script>")
	assert.Contains(t, out, "&lt;/title&gt;&lt;script&gt;")
}

func TestBase_BodyError(t *testing.T) {
	boom := errors.New("boom")
	body := g.NodeFunc(func(w io.Writer) error { return boom })

	err := Base("", "en", body).Render(context.Background(), io.Discard)
	assert.ErrorIs(t, err, boom)
}

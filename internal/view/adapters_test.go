package view

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

func TestAdaptGomponentToTempl(t *testing.T) {
	node := html.P(html.Class("lead"), gomponents.Text("a < b"))

	var buf bytes.Buffer
	err := AdaptGomponentToTempl(node).Render(context.Background(), &buf)

	require.NoError(t, err)
	assert.Equal(t, `<p class="lead">a &lt; b</p>`, buf.String())
}

func TestAdaptGomponentToTempl_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := AdaptGomponentToTempl(gomponents.Text("x")).Render(ctx, &buf)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

package cmd

import (
	"fmt"

	"github.com/nfrund/twupgrade/internal/assets"
	"github.com/nfrund/twupgrade/internal/content"
	"github.com/nfrund/twupgrade/internal/export"
	"github.com/nfrund/twupgrade/internal/rendering"
	"github.com/nfrund/twupgrade/internal/storage"
	"github.com/nfrund/twupgrade/web/src/templates/pages"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

type renderOptions struct {
	out       string
	assets    string
	assetsDir string
	lang      string
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the home page",
		Long: `Render the home page as a complete HTML document.

Without --out the document is written to stdout. With --out the page is
exported as index.html together with every icon it references, so the
directory can be served by any static file server.

Examples:
  twupgrade-cli render > index.html
  twupgrade-cli render --out ./public
  twupgrade-cli render --out ./public --assets disk --assets-dir web/static`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.out, "out", "o", "", "export directory (default: write HTML to stdout)")
	f.StringVar(&opts.assets, "assets", assets.SourceEmbed, "asset source: embed or disk")
	f.StringVar(&opts.assetsDir, "assets-dir", "web/static", "asset directory when --assets=disk")
	f.StringVar(&opts.lang, "lang", "en", "document language tag")
	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions) error {
	tag, err := language.Parse(opts.lang)
	if err != nil {
		return fmt.Errorf("--lang: %w", err)
	}
	doc := content.Article()
	r := rendering.NewUniversalRenderer()
	ctx := cmd.Context()

	if opts.out == "" {
		html, err := r.RenderComponent(ctx, pages.ArticlePage(doc, tag.String()))
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(html)
		return err
	}

	src, err := assets.New(opts.assets, opts.assetsDir)
	if err != nil {
		return err
	}
	out, err := storage.NewDirStore(opts.out)
	if err != nil {
		return err
	}
	res, err := export.Site(ctx, out, r, src, doc, tag.String())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d files (%d bytes) to %s\n", len(res.Files), res.Bytes, opts.out)
	return nil
}

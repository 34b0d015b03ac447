package cmd

import (
	"fmt"

	"github.com/nfrund/twupgrade/internal/assets"
	"github.com/nfrund/twupgrade/internal/content"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var source, dir string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the article content and its icons",
		Long: `Validate the article: table shape, tips, https footer links, and that
every icon the footer references exists in the asset source.

Output:
  ✅ Success - content is valid
  ❌ Error   - the first validation failure`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := content.Article()
			if err := content.Validate(doc); err != nil {
				return err
			}

			store, err := assets.New(source, dir)
			if err != nil {
				return err
			}
			for _, icon := range doc.Icons() {
				if !store.Exists(icon.Path) {
					return fmt.Errorf("icon %s not found in %s assets", icon.Path, source)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ Article is valid: %d rows, %d tips, %d links\n",
				len(doc.Table.Rows), len(doc.Tips), len(doc.Footer))
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "assets", assets.SourceEmbed, "asset source: embed or disk")
	cmd.Flags().StringVar(&dir, "assets-dir", "web/static", "asset directory when --assets=disk")
	return cmd
}

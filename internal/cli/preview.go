package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucidstyle/shade/internal/tui"
)

var (
	previewBG      string
	previewAnchor  string
	previewPalette string
)

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVar(&previewBG, "bg", "", "background color (hex)")
	previewCmd.Flags().StringVar(&previewAnchor, "anchor", "", "accent color for links (hex)")
	previewCmd.Flags().StringVar(&previewPalette, "palette", "", "built-in palette name")
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Interactively preview derived colors",
	Long:  "Open a terminal preview of the derived color set. Adjust the background lightness live with j/k.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !hasTTY() {
			return fmt.Errorf("preview requires an interactive terminal")
		}

		bg, anchor, err := resolveSeed(previewPalette, previewBG, previewAnchor)
		if err != nil {
			return err
		}

		return tui.Run(bg, anchor)
	},
}

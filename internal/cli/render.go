package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucidstyle/shade/internal/contrast"
	"github.com/lucidstyle/shade/internal/css"
	"github.com/lucidstyle/shade/internal/theme"
)

var (
	renderBG       string
	renderAnchor   string
	renderPalette  string
	renderSelector string
	renderPadding  float64
)

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&renderBG, "bg", "", "background color (hex)")
	renderCmd.Flags().StringVar(&renderAnchor, "anchor", "", "accent color for links (hex)")
	renderCmd.Flags().StringVar(&renderPalette, "palette", "", "built-in palette name")
	renderCmd.Flags().StringVar(&renderSelector, "selector", ".shade", "CSS selector for the rule block")
	renderCmd.Flags().Float64Var(&renderPadding, "padding", 0, "padding base (default from config)")
}

// resolvePadding prefers an explicitly set flag value, including zero,
// over the config default.
func resolvePadding(explicit bool, value, fallback float64) (float64, error) {
	if !explicit {
		value = fallback
	}
	if value < 0 {
		return 0, fmt.Errorf("padding must not be negative, got %v", value)
	}
	return value, nil
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Emit a CSS rule block for a background",
	RunE: func(cmd *cobra.Command, args []string) error {
		bg, anchor, err := resolveSeed(renderPalette, renderBG, renderAnchor)
		if err != nil {
			return err
		}

		padding, err := resolvePadding(cmd.Flags().Changed("padding"), renderPadding, cfg.PaddingBase)
		if err != nil {
			return err
		}

		tokens := theme.Derive(bg, anchor)
		layout := contrast.Layout(bg, padding)

		fmt.Fprint(cmd.OutOrStdout(), css.Block(renderSelector, tokens, layout))
		return nil
	},
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/lucidstyle/shade/internal/theme"
)

var (
	deriveBG      string
	deriveAnchor  string
	derivePalette string
)

func init() {
	rootCmd.AddCommand(deriveCmd)

	deriveCmd.Flags().StringVar(&deriveBG, "bg", "", "background color (hex)")
	deriveCmd.Flags().StringVar(&deriveAnchor, "anchor", "", "accent color for links (hex)")
	deriveCmd.Flags().StringVar(&derivePalette, "palette", "", "built-in palette name")
}

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Print the derived color set for a background",
	Long:  "Compute the readable text, border, hover, header and link colors for a background and optional accent.",
	RunE: func(cmd *cobra.Command, args []string) error {
		bg, anchor, err := resolveSeed(derivePalette, deriveBG, deriveAnchor)
		if err != nil {
			return err
		}

		tokens := theme.Derive(bg, anchor)
		logger.Debug().
			Str("background", bg.Hex()).
			Bool("anchor", anchor != nil).
			Msg("derived token set")

		printTokens(cmd.OutOrStdout(), tokens)
		return nil
	},
}

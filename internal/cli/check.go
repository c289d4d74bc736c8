package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucidstyle/shade/internal/color"
	"github.com/lucidstyle/shade/internal/contrast"
)

var (
	checkBG     string
	checkFG     string
	checkStrict bool
)

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkBG, "bg", "", "background color (hex)")
	checkCmd.Flags().StringVar(&checkFG, "fg", "", "foreground color (hex); default is the derived text color")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "exit with an error when the pair fails WCAG AA")
	checkCmd.MarkFlagRequired("bg")
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report the WCAG contrast ratio of a color pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		bg, err := color.Parse(checkBG)
		if err != nil {
			return err
		}

		var fg color.Color
		if checkFG == "" {
			fg = contrast.Foreground(bg)
		} else {
			if fg, err = color.Parse(checkFG); err != nil {
				return err
			}
		}

		ratio := contrast.Ratio(fg, bg)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "foreground %s on background %s\n", fg.Hex(), bg.Hex())
		fmt.Fprintf(out, "contrast ratio  %.2f:1\n", ratio)
		fmt.Fprintf(out, "WCAG AA  (4.5:1)  %s\n", verdict(contrast.MeetsAA(fg, bg)))
		fmt.Fprintf(out, "WCAG AAA (7.0:1)  %s\n", verdict(contrast.MeetsAAA(fg, bg)))

		if checkStrict && !contrast.MeetsAA(fg, bg) {
			return fmt.Errorf("contrast ratio %.2f:1 is below WCAG AA", ratio)
		}
		return nil
	},
}

func verdict(pass bool) string {
	if pass {
		return "pass"
	}
	return "fail"
}

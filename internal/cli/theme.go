package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lucidstyle/shade/internal/config"
	"github.com/lucidstyle/shade/internal/db"
	"github.com/lucidstyle/shade/internal/models"
	"github.com/lucidstyle/shade/internal/theme"
)

var (
	themeSaveBG     string
	themeSaveAnchor string
	themeSaveFile   string

	themeExportOut string
)

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeSaveCmd)
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeRemoveCmd)
	themeCmd.AddCommand(themeExportCmd)

	themeSaveCmd.Flags().StringVar(&themeSaveBG, "bg", "", "background color (hex)")
	themeSaveCmd.Flags().StringVar(&themeSaveAnchor, "anchor", "", "accent color for links (hex)")
	themeSaveCmd.Flags().StringVar(&themeSaveFile, "file", "", "load the theme from a yaml seed file")

	themeExportCmd.Flags().StringVar(&themeExportOut, "out", "", "output yaml path (default <name>.yaml)")
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage stored themes",
}

func openThemeStore() (*db.DB, *db.ThemeRepository, error) {
	if dir := filepath.Dir(cfg.Database); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	database, err := db.Open(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(context.Background()); err != nil {
		database.Close()
		return nil, nil, err
	}

	logger.Debug().Str("path", cfg.Database).Msg("opened theme store")
	return database, db.NewThemeRepository(database), nil
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, repo, err := openThemeStore()
		if err != nil {
			return err
		}
		defer database.Close()

		records, err := repo.List(cmd.Context())
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(records))
		for _, record := range records {
			rows = append(rows, []string{
				record.Name,
				record.Background,
				orDash(record.Anchor),
				record.UpdatedAt.Local().Format("2006-01-02 15:04"),
			})
		}

		return writeTable(cmd.OutOrStdout(), []string{"name", "background", "anchor", "updated"}, rows)
	},
}

var themeSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a theme seed pair",
	Args:  themeSaveArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := themeSaveRecord(args)
		if err != nil {
			return err
		}

		database, repo, err := openThemeStore()
		if err != nil {
			return err
		}
		defer database.Close()

		if err := repo.Create(cmd.Context(), record); err != nil {
			return err
		}

		logger.Info().Str("name", record.Name).Msg("theme saved")
		fmt.Fprintf(cmd.OutOrStdout(), "saved theme %q\n", record.Name)
		return nil
	},
}

// themeSaveArgs allows the name to come from the seed file instead of the
// command line.
func themeSaveArgs(cmd *cobra.Command, args []string) error {
	if themeSaveFile != "" {
		return cobra.MaximumNArgs(1)(cmd, args)
	}
	return cobra.ExactArgs(1)(cmd, args)
}

func themeSaveRecord(args []string) (*models.ThemeRecord, error) {
	if themeSaveFile != "" {
		loaded, err := config.ReadThemeFile(themeSaveFile)
		if err != nil {
			return nil, err
		}
		record := &models.ThemeRecord{
			Name:       loaded.Name,
			Background: loaded.Background,
			Anchor:     loaded.Anchor,
		}
		if len(args) == 1 {
			record.Name = args[0]
		}
		return record, nil
	}

	if themeSaveBG == "" {
		return nil, fmt.Errorf("a background is required (--bg or --file)")
	}
	return &models.ThemeRecord{
		Name:       args[0],
		Background: themeSaveBG,
		Anchor:     themeSaveAnchor,
	}, nil
}

var themeShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the derived color set of a stored or built-in theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := lookupTheme(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		tokens, err := seed.Tokens()
		if err != nil {
			return err
		}

		printTokens(cmd.OutOrStdout(), tokens)
		return nil
	},
}

// lookupTheme checks the store first, then the built-in palettes.
func lookupTheme(ctx context.Context, name string) (theme.Theme, error) {
	database, repo, err := openThemeStore()
	if err != nil {
		return theme.Theme{}, err
	}
	defer database.Close()

	record, err := repo.GetByName(ctx, name)
	if err == nil {
		return theme.Theme{
			Name:       record.Name,
			Background: record.Background,
			Anchor:     record.Anchor,
		}, nil
	}

	if palette, ok := theme.Palettes[name]; ok {
		return palette, nil
	}
	return theme.Theme{}, fmt.Errorf("theme %q not found (built-ins: %s)", name, paletteNames())
}

var themeRemoveCmd = &cobra.Command{
	Use:     "rm <name>",
	Aliases: []string{"remove"},
	Short:   "Remove a stored theme",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		database, repo, err := openThemeStore()
		if err != nil {
			return err
		}
		defer database.Close()

		if err := repo.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "removed theme %q\n", args[0])
		return nil
	},
}

var themeExportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Export a theme to a yaml seed file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := lookupTheme(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := themeExportOut
		if out == "" {
			out = seed.Name + ".yaml"
		}
		if err := config.WriteThemeFile(out, seed); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
		return nil
	},
}

package main

import (
	"fmt"
	"path/filepath"

	"github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/framework_generation/domain"
	"github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/framework_generation/generator"
	"github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/logging"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "scaffold",
		Short:         "Playwright framework scaffolding",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logLevel, cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	root.AddCommand(newGenerateCmd())
	return root
}

func newGenerateCmd() *cobra.Command {
	var (
		baseURL  string
		username string
		password string
		env      string
		out      string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a Playwright project skeleton to a local directory",
		Long: `Generate writes package.json, playwright.config.js, per-environment configs,
page objects, tests, utilities, a CI workflow and a README into --out,
replacing whatever the directory held before.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.NewGenerationRequest(
				flagValue(cmd, "base-url", baseURL),
				flagValue(cmd, "username", username),
				flagValue(cmd, "password", password),
				flagValue(cmd, "env", env),
			)

			dir, err := filepath.Abs(out)
			if err != nil {
				return fmt.Errorf("resolve --out: %w", err)
			}

			res, err := generator.New().Generate(cmd.Context(), dir, req)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Framework generated successfully: %s\n", res.OutputDir)
			for _, f := range res.Files {
				fmt.Fprintf(w, "  %s\n", f)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "Base URL of the application under test")
	cmd.Flags().StringVar(&username, "username", "", "Login username (enables login page and test)")
	cmd.Flags().StringVar(&password, "password", "", "Login password (enables login page and test)")
	cmd.Flags().StringVar(&env, "env", domain.DefaultEnv, "Fallback environment baked into the runner config")
	cmd.Flags().StringVarP(&out, "out", "o", "generated-project", "Output directory")

	return cmd
}

// flagValue returns nil for flags the user did not set, so they behave like
// absent request fields.
func flagValue(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

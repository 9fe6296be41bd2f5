package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathsnap/internal/api"
	"github.com/abhisek/mathsnap/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "mathsnap",
	Short: "Photo-based math homework helper",
	Long:  "MathSnap — browse topics, photograph your handwritten work, and get step-by-step feedback from the grading backend.",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := buildClient(cmd)
		if err != nil {
			return err
		}
		return app.Run(app.Options{Client: client})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("api", "", "Backend base URL (overrides MATHSNAP_API_BASE)")

	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(versionCmd)
}

// buildClient resolves the backend config using the --api flag (highest
// priority), then env vars, then defaults.
func buildClient(cmd *cobra.Command) (*api.Client, error) {
	cfg := api.ConfigFromEnv()
	if base, _ := cmd.Flags().GetString("api"); base != "" {
		cfg.BaseURL = base
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("backend config: %w", err)
	}
	return api.New(cfg), nil
}

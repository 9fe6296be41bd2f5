package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List available topics without the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := buildClient(cmd)
		if err != nil {
			return err
		}

		topics, err := client.ListTopics(cmd.Context())
		if err != nil {
			return fmt.Errorf("list topics: %w", err)
		}

		if len(topics) == 0 {
			fmt.Println("No topics available.")
			return nil
		}

		for _, t := range topics {
			label := fmt.Sprintf("%d problems", t.ProblemCount)
			if t.ProblemCount == 1 {
				label = "1 problem"
			}
			fmt.Printf("%-24s grade %d  %s\n", t.Name, t.GradeLevel, label)
			if t.Description != "" {
				fmt.Printf("    %s\n", t.Description)
			}
		}
		return nil
	},
}

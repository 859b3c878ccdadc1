package command

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/metriport/ehr-sync/sources"
	"github.com/metriport/ehr-sync/tokens"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Manage stored bearer tokens",
}

var tokensSweepParams = struct {
	Source     string
	PracticeId string
	Before     string
}{}

var tokensSweepCmd = &cobra.Command{
	Use:   "sweep {source}",
	Args:  cobra.ExactArgs(1),
	Short: "Delete expired tokens of a source",
	Long:  "The sweep command deletes stored tokens of a source whose expiry is in the past, optionally scoped to a single practice",
	RunE: func(cmd *cobra.Command, args []string) error {
		tokensSweepParams.Source = args[0]
		return Run(sweepTokens)
	},
}

func sweepTokens(repo tokens.Repository) error {
	source, err := sources.Parse(tokensSweepParams.Source)
	if err != nil {
		return err
	}

	before := time.Now()
	if tokensSweepParams.Before != "" {
		before, err = time.Parse(time.RFC3339, tokensSweepParams.Before)
		if err != nil {
			return fmt.Errorf("unable to parse cutoff: %w", err)
		}
	}

	data := map[string]interface{}{}
	if tokensSweepParams.PracticeId != "" {
		data["practiceId"] = tokensSweepParams.PracticeId
	}

	deleted, err := repo.DeleteBySourceAndData(context.TODO(), source, data, before)
	if err != nil {
		return err
	}

	fmt.Printf("Deleted %v tokens\n", deleted)
	return nil
}

func init() {
	tokensSweepCmd.Flags().StringVar(&tokensSweepParams.PracticeId, "practice", "", "Only sweep tokens bound to the given practice")
	tokensSweepCmd.Flags().StringVar(&tokensSweepParams.Before, "before", "", "Delete tokens expired before this RFC3339 timestamp instead of now")

	tokensCmd.AddCommand(tokensSweepCmd)
	rootCmd.AddCommand(tokensCmd)
}

package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/metriport/ehr-sync/mappings"
	"github.com/metriport/ehr-sync/sources"
	"github.com/metriport/ehr-sync/store"
)

var mappingsCmd = &cobra.Command{
	Use:   "mappings",
	Short: "Inspect tenant mappings",
}

var mappingsListParams = struct {
	Source string
	CxId   string
	Limit  int
	Offset int
}{}

var mappingsListCmd = &cobra.Command{
	Use:   "list {source}",
	Args:  cobra.ExactArgs(1),
	Short: "List practice mappings of a source",
	RunE: func(cmd *cobra.Command, args []string) error {
		mappingsListParams.Source = args[0]
		return Run(listMappings)
	},
}

func listMappings(cxMappings mappings.CxMappings) error {
	source, err := sources.Parse(mappingsListParams.Source)
	if err != nil {
		return err
	}

	var list []mappings.CxMapping
	if mappingsListParams.CxId != "" {
		page := store.DefaultPagination().
			WithLimit(mappingsListParams.Limit).
			WithOffset(mappingsListParams.Offset)
		list, err = cxMappings.List(context.TODO(), mappingsListParams.CxId, &source, page)
	} else {
		list, err = cxMappings.ListBySource(context.TODO(), source)
	}
	if err != nil {
		return err
	}

	for _, mapping := range list {
		fmt.Printf("%s %s practice [%s]\n", mapping.Id.Hex(), mapping.CxId, mapping.ExternalId)
	}
	fmt.Printf("Found %v mappings\n", len(list))

	return nil
}

var mappingsSecretsParams = struct {
	Source string
	CxId   string
}{}

var mappingsSecretsCmd = &cobra.Command{
	Use:   "secrets {source}",
	Args:  cobra.ExactArgs(1),
	Short: "List per-practice secret references of a source",
	RunE: func(cmd *cobra.Command, args []string) error {
		mappingsSecretsParams.Source = args[0]
		return Run(listSecrets)
	},
}

func listSecrets(secretsMappings mappings.SecretsMappings) error {
	if mappingsSecretsParams.CxId == "" {
		return fmt.Errorf("--cx is required")
	}

	source, err := sources.Parse(mappingsSecretsParams.Source)
	if err != nil {
		return err
	}

	list, err := secretsMappings.List(context.TODO(), mappingsSecretsParams.CxId, &source)
	if err != nil {
		return err
	}

	for _, mapping := range list {
		fmt.Printf("%s practice [%s] -> %s\n", mapping.Id.Hex(), mapping.ExternalId, mapping.SecretArn)
	}
	fmt.Printf("Found %v secret mappings\n", len(list))

	return nil
}

func init() {
	mappingsListCmd.Flags().StringVar(&mappingsListParams.CxId, "cx", "", "Only list mappings of the given customer")
	mappingsListCmd.Flags().IntVarP(&mappingsListParams.Limit, "limit", "l", 20, "Maximum number of mappings to list")
	mappingsListCmd.Flags().IntVarP(&mappingsListParams.Offset, "offset", "o", 0, "Number of mappings to skip")

	mappingsSecretsCmd.Flags().StringVar(&mappingsSecretsParams.CxId, "cx", "", "Customer to list secret references for")

	mappingsCmd.AddCommand(mappingsListCmd)
	mappingsCmd.AddCommand(mappingsSecretsCmd)
	rootCmd.AddCommand(mappingsCmd)
}

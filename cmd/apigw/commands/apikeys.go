package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/apigw/internal/constants"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

const maskedValue = "***"

// NewAPIKeysCommand creates the apikeys command group.
func NewAPIKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "apikeys",
		Aliases: []string{"apikey", "keys"},
		Short:   "Manage API keys",
	}

	cmd.AddCommand(newAPIKeysListCommand())
	cmd.AddCommand(newAPIKeysGetCommand())
	cmd.AddCommand(newAPIKeysCreateCommand())
	cmd.AddCommand(newAPIKeysUpdateCommand())
	cmd.AddCommand(newAPIKeysDeleteCommand())
	cmd.AddCommand(newAPIKeysImportCommand())

	return cmd
}

func apiKeyValue(key apigw.APIKey) string {
	if key.Value == "" {
		return maskedValue
	}

	return key.Value
}

func apiKeysTable(keys []apigw.APIKey) *table {
	view := newTable("ID", "Name", "Enabled", "Value", "Customer", "Created")

	for _, key := range keys {
		view.add(key.ID, key.Name, formatBool(key.Enabled), apiKeyValue(key), key.CustomerID, formatTime(key.CreatedDate))
	}

	return view
}

func newAPIKeysListCommand() *cobra.Command {
	var (
		paging     pagingFlags
		nameQuery  string
		customerID string
		values     bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List API keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				fetch := func(ctx context.Context, opts *apigw.ListOptions) (*apigw.Page[apigw.APIKey], error) {
					return client.APIKeys().List(ctx, &apigw.APIKeyListOptions{
						ListOptions:   *opts,
						NameQuery:     nameQuery,
						CustomerID:    customerID,
						IncludeValues: values,
					})
				}

				result, err := collect(ctx, fetch, &paging)
				if err != nil {
					return fmt.Errorf("failed to list API keys: %w", err)
				}

				err = render(cmd, result, func() *table { return apiKeysTable(result.Items) })
				if err != nil {
					return err
				}

				printNextPosition(cmd, result.Position)

				return nil
			})
		},
	}

	paging.register(cmd)
	cmd.Flags().StringVar(&nameQuery, "name", "", "filter by name prefix")
	cmd.Flags().StringVar(&customerID, "customer-id", "", "filter by customer ID")
	cmd.Flags().BoolVar(&values, "include-values", false, "include key values")

	return cmd
}

func newAPIKeysGetCommand() *cobra.Command {
	var value bool

	cmd := &cobra.Command{
		Use:   "get API_KEY_ID",
		Short: "Show an API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				key, err := client.APIKeys().Get(ctx, args[0], value)
				if err != nil {
					return fmt.Errorf("failed to get API key: %w", err)
				}

				return render(cmd, key, func() *table {
					return details(
						"ID", key.ID,
						"Name", key.Name,
						"Description", key.Description,
						"Enabled", formatBool(key.Enabled),
						"Value", apiKeyValue(*key),
						"Customer", key.CustomerID,
						"Stages", strings.Join(key.StageKeys, ","),
						"Created", formatTime(key.CreatedDate),
						"Updated", formatTime(key.LastUpdatedDate),
						"Tags", formatTags(key.Tags),
					)
				})
			})
		},
	}

	cmd.Flags().BoolVar(&value, "include-value", false, "include the key value")

	return cmd
}

// parseStageKeys parses "restApiId/stageName" references.
func parseStageKeys(refs []string) ([]apigw.StageKey, error) {
	keys := make([]apigw.StageKey, 0, len(refs))

	for _, ref := range refs {
		api, stage, found := strings.Cut(ref, "/")
		if !found || api == "" || stage == "" {
			return nil, fmt.Errorf("%w: stage key %q must be REST_API_ID/STAGE", constants.ErrInvalidKeyValue, ref)
		}

		keys = append(keys, apigw.StageKey{RestAPIID: api, StageName: stage})
	}

	return keys, nil
}

func newAPIKeysCreateCommand() *cobra.Command {
	var (
		req       apigw.APIKeyCreateRequest
		stageRefs []string
		tags      []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error

			req.StageKeys, err = parseStageKeys(stageRefs)
			if err != nil {
				return err
			}

			req.Tags, err = parseKeyValues(tags)
			if err != nil {
				return err
			}

			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				key, err := client.APIKeys().Create(ctx, &req)
				if err != nil {
					return fmt.Errorf("failed to create API key: %w", err)
				}

				return render(cmd, key, func() *table { return apiKeysTable([]apigw.APIKey{*key}) })
			})
		},
	}

	cmd.Flags().StringVarP(&req.Name, "name", "n", "", "key name")
	cmd.Flags().StringVarP(&req.Description, "description", "d", "", "key description")
	cmd.Flags().BoolVar(&req.Enabled, "enabled", true, "whether callers can use the key")
	cmd.Flags().StringVar(&req.Value, "value", "", "key value, generated when empty")
	cmd.Flags().StringVar(&req.CustomerID, "customer-id", "", "AWS Marketplace customer ID")
	cmd.Flags().StringArrayVar(&stageRefs, "stage", nil, "stage as REST_API_ID/STAGE (repeatable)")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "tag as key=value (repeatable)")

	return cmd
}

func newAPIKeysUpdateCommand() *cobra.Command {
	var patches []string

	cmd := &cobra.Command{
		Use:   "update API_KEY_ID",
		Short: "Update an API key with patch operations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			update, err := parsePatchOps(patches)
			if err != nil {
				return err
			}

			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				key, err := client.APIKeys().Update(ctx, args[0], update)
				if err != nil {
					return fmt.Errorf("failed to update API key: %w", err)
				}

				return render(cmd, key, func() *table { return apiKeysTable([]apigw.APIKey{*key}) })
			})
		},
	}

	cmd.Flags().StringArrayVarP(&patches, "patch", "p", nil, "patch operation op:path[=value] (repeatable)")
	_ = cmd.MarkFlagRequired("patch")

	return cmd
}

func newAPIKeysDeleteCommand() *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "delete API_KEY_ID...",
		Short: "Delete one or more API keys",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				builder := apigw.NewBatchBuilder()
				for _, id := range args {
					builder.AddDelete(id, apigw.BatchResourceAPIKey, id)
				}

				results, err := apigw.NewBatchExecutor(client, concurrency).Execute(ctx, builder.Build())
				if err != nil {
					return fmt.Errorf("failed to delete API keys: %w", err)
				}

				return reportBatch(cmd, results, "Deleted API key")
			})
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", constants.DefaultConcurrencyLimit, "number of deletes in flight")

	return cmd
}

func newAPIKeysImportCommand() *cobra.Command {
	var (
		file           string
		failOnWarnings bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import API keys from a CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			csv, err := readInput(cmd, file)
			if err != nil {
				return err
			}

			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				ids, err := client.APIKeys().Import(ctx, csv, failOnWarnings)
				if err != nil {
					return fmt.Errorf("failed to import API keys: %w", err)
				}

				return render(cmd, ids, func() *table {
					view := newTable("ID")
					for _, id := range ids.IDs {
						view.add(id)
					}

					return view
				})
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV file, or - for stdin")
	cmd.Flags().BoolVar(&failOnWarnings, "fail-on-warnings", false, "roll back when the import produces warnings")

	return cmd
}

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/apigw/internal/constants"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// NewStagesCommand creates the stages command group.
func NewStagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stages",
		Aliases: []string{"stage"},
		Short:   "Manage stages",
	}

	cmd.AddCommand(newStagesListCommand())
	cmd.AddCommand(newStagesGetCommand())
	cmd.AddCommand(newStagesCreateCommand())
	cmd.AddCommand(newStagesUpdateCommand())
	cmd.AddCommand(newStagesDeleteCommand())
	cmd.AddCommand(newStagesFlushCacheCommand())

	return cmd
}

func stagesTable(stages []apigw.Stage) *table {
	view := newTable("Stage", "Deployment", "Description", "Cache", "Updated")

	for _, stage := range stages {
		cache := "off"
		if stage.CacheClusterEnabled {
			cache = stage.CacheClusterSize
		}

		view.add(stage.StageName, stage.DeploymentID,
			truncate(stage.Description, constants.MaxDescriptionDisplayLength),
			cache, formatTime(stage.LastUpdatedDate))
	}

	return view
}

func newStagesListCommand() *cobra.Command {
	var deploymentID string

	cmd := &cobra.Command{
		Use:   "list REST_API_ID",
		Short: "List stages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				stages, err := client.Stages().List(ctx, args[0], deploymentID)
				if err != nil {
					return fmt.Errorf("failed to list stages: %w", err)
				}

				return render(cmd, stages, func() *table { return stagesTable(stages) })
			})
		},
	}

	cmd.Flags().StringVar(&deploymentID, "deployment-id", "", "only stages pointing at this deployment")

	return cmd
}

func newStagesGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get REST_API_ID STAGE",
		Short: "Show a stage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				stage, err := client.Stages().Get(ctx, args[0], args[1])
				if err != nil {
					return fmt.Errorf("failed to get stage: %w", err)
				}

				return render(cmd, stage, func() *table {
					view := details(
						"Stage", stage.StageName,
						"Deployment", stage.DeploymentID,
						"Description", stage.Description,
						"Cache Cluster", stage.CacheClusterStatus,
						"Documentation", stage.DocumentationVersion,
						"Tracing", formatBool(stage.TracingEnabled),
						"Created", formatTime(stage.CreatedDate),
						"Updated", formatTime(stage.LastUpdatedDate),
						"Tags", formatTags(stage.Tags),
					)

					for name, value := range stage.Variables {
						view.add("Variable "+name, value)
					}

					return view
				})
			})
		},
	}

	return cmd
}

func newStagesCreateCommand() *cobra.Command {
	var (
		req       apigw.StageCreateRequest
		variables []string
		tags      []string
	)

	cmd := &cobra.Command{
		Use:   "create REST_API_ID",
		Short: "Create a stage for an existing deployment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.StageName == "" {
				return constants.ErrNameRequired
			}

			if req.DeploymentID == "" {
				return constants.ErrDeploymentRequired
			}

			var err error

			req.Variables, err = parseKeyValues(variables)
			if err != nil {
				return err
			}

			req.Tags, err = parseKeyValues(tags)
			if err != nil {
				return err
			}

			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				stage, err := client.Stages().Create(ctx, args[0], &req)
				if err != nil {
					return fmt.Errorf("failed to create stage: %w", err)
				}

				return render(cmd, stage, func() *table { return stagesTable([]apigw.Stage{*stage}) })
			})
		},
	}

	cmd.Flags().StringVarP(&req.StageName, "name", "n", "", "stage name")
	cmd.Flags().StringVar(&req.DeploymentID, "deployment-id", "", "deployment the stage points at")
	cmd.Flags().StringVarP(&req.Description, "description", "d", "", "stage description")
	cmd.Flags().BoolVar(&req.CacheClusterEnabled, "cache", false, "enable the cache cluster")
	cmd.Flags().StringVar(&req.CacheClusterSize, "cache-size", "", "cache cluster size in GB, e.g. 0.5")
	cmd.Flags().BoolVar(&req.TracingEnabled, "tracing", false, "enable X-Ray tracing")
	cmd.Flags().StringArrayVar(&variables, "variable", nil, "stage variable as key=value (repeatable)")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "tag as key=value (repeatable)")

	return cmd
}

func newStagesUpdateCommand() *cobra.Command {
	var patches []string

	cmd := &cobra.Command{
		Use:   "update REST_API_ID STAGE",
		Short: "Update a stage with patch operations",
		Long: `Update a stage. Each --patch is op:path[=value], for example

  apigw stages update a1b2c3 prod --patch replace:/deploymentId=d4e5f6 --patch replace:/variables/color=blue`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			update, err := parsePatchOps(patches)
			if err != nil {
				return err
			}

			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				stage, err := client.Stages().Update(ctx, args[0], args[1], update)
				if err != nil {
					return fmt.Errorf("failed to update stage: %w", err)
				}

				return render(cmd, stage, func() *table { return stagesTable([]apigw.Stage{*stage}) })
			})
		},
	}

	cmd.Flags().StringArrayVarP(&patches, "patch", "p", nil, "patch operation op:path[=value] (repeatable)")
	_ = cmd.MarkFlagRequired("patch")

	return cmd
}

func newStagesDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete REST_API_ID STAGE",
		Short: "Delete a stage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				err := client.Stages().Delete(ctx, args[0], args[1])
				if err != nil {
					return fmt.Errorf("failed to delete stage: %w", err)
				}

				printDone(cmd, "Deleted stage %s", args[1])

				return nil
			})
		},
	}

	return cmd
}

func newStagesFlushCacheCommand() *cobra.Command {
	var authorizers bool

	cmd := &cobra.Command{
		Use:   "flush-cache REST_API_ID STAGE",
		Short: "Flush the stage cache",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				flush, what := client.Stages().FlushCache, "stage cache"
				if authorizers {
					flush, what = client.Stages().FlushAuthorizersCache, "authorizers cache"
				}

				err := flush(ctx, args[0], args[1])
				if err != nil {
					return fmt.Errorf("failed to flush %s: %w", what, err)
				}

				printDone(cmd, "Flushed %s of %s", what, args[1])

				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&authorizers, "authorizers", false, "flush the authorizers cache instead")

	return cmd
}

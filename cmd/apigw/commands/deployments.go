package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/apigw/internal/constants"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// NewDeploymentsCommand creates the deployments command group.
func NewDeploymentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "deployments",
		Aliases: []string{"deployment", "deploy"},
		Short:   "Manage deployments",
	}

	cmd.AddCommand(newDeploymentsListCommand())
	cmd.AddCommand(newDeploymentsCreateCommand())
	cmd.AddCommand(newDeploymentsDeleteCommand())

	return cmd
}

func deploymentsTable(deployments []apigw.Deployment) *table {
	view := newTable("ID", "Description", "Created")

	for _, deployment := range deployments {
		view.add(deployment.ID,
			truncate(deployment.Description, constants.MaxDescriptionDisplayLength),
			formatTime(deployment.CreatedDate))
	}

	return view
}

func newDeploymentsListCommand() *cobra.Command {
	var paging pagingFlags

	cmd := &cobra.Command{
		Use:   "list REST_API_ID",
		Short: "List deployments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				fetch := func(ctx context.Context, opts *apigw.ListOptions) (*apigw.Page[apigw.Deployment], error) {
					return client.Deployments().List(ctx, args[0], opts)
				}

				result, err := collect(ctx, fetch, &paging)
				if err != nil {
					return fmt.Errorf("failed to list deployments: %w", err)
				}

				err = render(cmd, result, func() *table { return deploymentsTable(result.Items) })
				if err != nil {
					return err
				}

				printNextPosition(cmd, result.Position)

				return nil
			})
		},
	}

	paging.register(cmd)

	return cmd
}

func newDeploymentsCreateCommand() *cobra.Command {
	var (
		req       apigw.DeploymentCreateRequest
		variables []string
		tracing   bool
	)

	cmd := &cobra.Command{
		Use:   "create REST_API_ID",
		Short: "Deploy a REST API, optionally to a stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseKeyValues(variables)
			if err != nil {
				return err
			}

			req.Variables = parsed

			if cmd.Flags().Changed("tracing") {
				req.TracingEnabled = apigw.Bool(tracing)
			}

			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				deployment, err := client.Deployments().Create(ctx, args[0], &req)
				if err != nil {
					return fmt.Errorf("failed to create deployment: %w", err)
				}

				return render(cmd, deployment, func() *table { return deploymentsTable([]apigw.Deployment{*deployment}) })
			})
		},
	}

	cmd.Flags().StringVarP(&req.StageName, "stage", "s", "", "stage to create or update")
	cmd.Flags().StringVar(&req.StageDescription, "stage-description", "", "description of a new stage")
	cmd.Flags().StringVarP(&req.Description, "description", "d", "", "deployment description")
	cmd.Flags().StringArrayVar(&variables, "variable", nil, "stage variable as key=value (repeatable)")
	cmd.Flags().BoolVar(&tracing, "tracing", false, "enable X-Ray tracing on the stage")

	return cmd
}

func newDeploymentsDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete REST_API_ID DEPLOYMENT_ID",
		Short: "Delete a deployment that no stage references",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				err := client.Deployments().Delete(ctx, args[0], args[1])
				if err != nil {
					return fmt.Errorf("failed to delete deployment: %w", err)
				}

				printDone(cmd, "Deleted deployment %s", args[1])

				return nil
			})
		},
	}

	return cmd
}

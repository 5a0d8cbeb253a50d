package commands

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// NewResourcesCommand creates the resources command group.
func NewResourcesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "resources",
		Aliases: []string{"resource"},
		Short:   "Manage the resource tree of a REST API",
	}

	cmd.AddCommand(newResourcesListCommand())
	cmd.AddCommand(newResourcesGetCommand())
	cmd.AddCommand(newResourcesCreateCommand())
	cmd.AddCommand(newResourcesDeleteCommand())

	return cmd
}

func methodNames(resource apigw.Resource) string {
	names := make([]string, 0, len(resource.ResourceMethods))
	for name := range resource.ResourceMethods {
		names = append(names, name)
	}

	slices.Sort(names)

	return strings.Join(names, ",")
}

func resourcesTable(resources []apigw.Resource) *table {
	view := newTable("ID", "Path", "Parent", "Methods")

	for _, resource := range resources {
		view.add(resource.ID, resource.Path, resource.ParentID, methodNames(resource))
	}

	return view
}

func newResourcesListCommand() *cobra.Command {
	var (
		paging       pagingFlags
		embedMethods bool
	)

	cmd := &cobra.Command{
		Use:   "list REST_API_ID",
		Short: "List resources",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				fetch := func(ctx context.Context, opts *apigw.ListOptions) (*apigw.Page[apigw.Resource], error) {
					listOpts := &apigw.ResourceListOptions{ListOptions: *opts}
					if embedMethods {
						listOpts.Embed = []string{"methods"}
					}

					return client.Resources().List(ctx, args[0], listOpts)
				}

				result, err := collect(ctx, fetch, &paging)
				if err != nil {
					return fmt.Errorf("failed to list resources: %w", err)
				}

				slices.SortFunc(result.Items, func(a, b apigw.Resource) int { return strings.Compare(a.Path, b.Path) })

				err = render(cmd, result, func() *table { return resourcesTable(result.Items) })
				if err != nil {
					return err
				}

				printNextPosition(cmd, result.Position)

				return nil
			})
		},
	}

	paging.register(cmd)
	cmd.Flags().BoolVar(&embedMethods, "methods", false, "embed the methods of each resource")

	return cmd
}

func newResourcesGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get REST_API_ID RESOURCE_ID",
		Short: "Show a resource and its methods",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				resource, err := client.Resources().Get(ctx, args[0], args[1], "methods")
				if err != nil {
					return fmt.Errorf("failed to get resource: %w", err)
				}

				return render(cmd, resource, func() *table {
					return details(
						"ID", resource.ID,
						"Path", resource.Path,
						"Path Part", resource.PathPart,
						"Parent", resource.ParentID,
						"Methods", methodNames(*resource),
					)
				})
			})
		},
	}

	return cmd
}

func newResourcesCreateCommand() *cobra.Command {
	var pathPart string

	cmd := &cobra.Command{
		Use:   "create REST_API_ID PARENT_ID",
		Short: "Create a child resource",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				resource, err := client.Resources().Create(ctx, args[0], args[1], &apigw.ResourceCreateRequest{PathPart: pathPart})
				if err != nil {
					return fmt.Errorf("failed to create resource: %w", err)
				}

				return render(cmd, resource, func() *table { return resourcesTable([]apigw.Resource{*resource}) })
			})
		},
	}

	cmd.Flags().StringVar(&pathPart, "path-part", "", "last path segment, e.g. orders or {id}")
	_ = cmd.MarkFlagRequired("path-part")

	return cmd
}

func newResourcesDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete REST_API_ID RESOURCE_ID",
		Short: "Delete a resource and its children",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				err := client.Resources().Delete(ctx, args[0], args[1])
				if err != nil {
					return fmt.Errorf("failed to delete resource: %w", err)
				}

				printDone(cmd, "Deleted resource %s", args[1])

				return nil
			})
		},
	}

	return cmd
}

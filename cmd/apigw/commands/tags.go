package commands

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/apigw/internal/constants"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// NewTagsCommand creates the tags command group.
func NewTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"tag"},
		Short:   "Manage resource tags",
		Long:    "Get, add and remove tags of any taggable API Gateway resource, addressed by ARN",
	}

	cmd.AddCommand(newTagsGetCommand())
	cmd.AddCommand(newTagsAddCommand())
	cmd.AddCommand(newTagsRemoveCommand())

	return cmd
}

func tagsTable(tags apigw.Tags) *table {
	keys := make([]string, 0, len(tags))
	for key := range tags {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	view := newTable("Key", "Value")
	for _, key := range keys {
		view.add(key, tags[key])
	}

	return view
}

func newTagsGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get RESOURCE_ARN",
		Short: "Show the tags of a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				tags, err := client.Tags().Get(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get tags: %w", err)
				}

				return render(cmd, tags, func() *table { return tagsTable(tags) })
			})
		},
	}

	return cmd
}

func newTagsAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add RESOURCE_ARN KEY=VALUE...",
		Short: "Add or overwrite tags",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return constants.ErrTagsRequired
			}

			tags, err := parseKeyValues(args[1:])
			if err != nil {
				return err
			}

			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				err := client.Tags().Tag(ctx, args[0], tags)
				if err != nil {
					return fmt.Errorf("failed to tag resource: %w", err)
				}

				printDone(cmd, "Tagged %s", args[0])

				return nil
			})
		},
	}

	return cmd
}

func newTagsRemoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove RESOURCE_ARN KEY...",
		Short: "Remove tags",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return constants.ErrTagsRequired
			}

			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				err := client.Tags().Untag(ctx, args[0], args[1:])
				if err != nil {
					return fmt.Errorf("failed to untag resource: %w", err)
				}

				printDone(cmd, "Untagged %s", args[0])

				return nil
			})
		},
	}

	return cmd
}

package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// NewAccountCommand creates the account command group.
func NewAccountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Show or update account settings",
	}

	cmd.AddCommand(newAccountGetCommand())
	cmd.AddCommand(newAccountSetRoleCommand())

	return cmd
}

func accountDetails(account *apigw.Account) *table {
	return details(
		"CloudWatch Role", account.CloudwatchRoleArn,
		"Throttle", throttle(account.ThrottleSettings),
		"Features", strings.Join(account.Features, ","),
		"API Key Version", account.APIKeyVersion,
	)
}

func newAccountGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show account settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				account, err := client.Account().Get(ctx)
				if err != nil {
					return fmt.Errorf("failed to get account: %w", err)
				}

				return render(cmd, account, func() *table { return accountDetails(account) })
			})
		},
	}

	return cmd
}

func newAccountSetRoleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-cloudwatch-role ROLE_ARN",
		Short: "Set the IAM role used to write CloudWatch logs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				account, err := client.Account().Update(ctx, apigw.NewUpdateRequest(apigw.Replace("/cloudwatchRoleArn", args[0])))
				if err != nil {
					return fmt.Errorf("failed to update account: %w", err)
				}

				return render(cmd, account, func() *table { return accountDetails(account) })
			})
		},
	}

	return cmd
}

package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// NewMethodsCommand creates the methods command group.
func NewMethodsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "methods",
		Aliases: []string{"method"},
		Short:   "Inspect and invoke resource methods",
	}

	cmd.AddCommand(newMethodsGetCommand())
	cmd.AddCommand(newMethodsDeleteCommand())
	cmd.AddCommand(newMethodsTestCommand())

	return cmd
}

func newMethodsGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get REST_API_ID RESOURCE_ID HTTP_METHOD",
		Short: "Show a method and its integration",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				method, err := client.Methods().Get(ctx, args[0], args[1], strings.ToUpper(args[2]))
				if err != nil {
					return fmt.Errorf("failed to get method: %w", err)
				}

				return render(cmd, method, func() *table {
					view := details(
						"Method", method.HTTPMethod,
						"Authorization", method.AuthorizationType,
						"Authorizer", method.AuthorizerID,
						"Validator", method.RequestValidatorID,
						"Operation", method.OperationName,
					)

					if method.APIKeyRequired != nil {
						view.add("API Key Required", formatBool(*method.APIKeyRequired))
					}

					if integration := method.MethodIntegration; integration != nil {
						view.add("Integration", integration.Type)
						view.add("Integration URI", integration.URI)
					}

					return view
				})
			})
		},
	}

	return cmd
}

func newMethodsDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete REST_API_ID RESOURCE_ID HTTP_METHOD",
		Short: "Delete a method",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				err := client.Methods().Delete(ctx, args[0], args[1], strings.ToUpper(args[2]))
				if err != nil {
					return fmt.Errorf("failed to delete method: %w", err)
				}

				printDone(cmd, "Deleted method %s", strings.ToUpper(args[2]))

				return nil
			})
		},
	}

	return cmd
}

func newMethodsTestCommand() *cobra.Command {
	var (
		req     apigw.TestInvokeMethodRequest
		headers []string
		vars    []string
		body    string
	)

	cmd := &cobra.Command{
		Use:   "test REST_API_ID RESOURCE_ID HTTP_METHOD",
		Short: "Simulate a call to a method without deploying",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error

			req.Headers, err = parseKeyValues(headers)
			if err != nil {
				return err
			}

			req.StageVariables, err = parseKeyValues(vars)
			if err != nil {
				return err
			}

			if body != "" {
				data, err := readInput(cmd, body)
				if err != nil {
					return err
				}

				req.Body = string(data)
			}

			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				result, err := client.Methods().TestInvoke(ctx, args[0], args[1], strings.ToUpper(args[2]), &req)
				if err != nil {
					return fmt.Errorf("failed to test method: %w", err)
				}

				return render(cmd, result, func() *table {
					return details(
						"Status", strconv.Itoa(result.Status),
						"Latency (ms)", strconv.FormatInt(result.Latency, 10),
						"Body", result.Body,
					)
				})
			})
		},
	}

	cmd.Flags().StringVar(&req.PathWithQueryString, "path", "", "path and query string, e.g. /orders?limit=1")
	cmd.Flags().StringVar(&body, "body-file", "", "request body file, or - for stdin")
	cmd.Flags().StringArrayVar(&headers, "header", nil, "request header as key=value (repeatable)")
	cmd.Flags().StringArrayVar(&vars, "stage-variable", nil, "stage variable as key=value (repeatable)")
	cmd.Flags().StringVar(&req.ClientCertificateID, "client-certificate-id", "", "client certificate to present")

	return cmd
}

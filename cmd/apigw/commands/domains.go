package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// NewDomainsCommand creates the domains command group.
func NewDomainsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "domains",
		Aliases: []string{"domain"},
		Short:   "Manage custom domain names",
		Long:    "List and manage custom domain names and their base path mappings",
	}

	cmd.AddCommand(newDomainsListCommand())
	cmd.AddCommand(newDomainsGetCommand())
	cmd.AddCommand(newDomainsCreateCommand())
	cmd.AddCommand(newDomainsDeleteCommand())
	cmd.AddCommand(newDomainsMappingsCommand())

	return cmd
}

func domainsTable(domains []apigw.DomainName) *table {
	view := newTable("Domain", "Endpoint", "Target", "Status")

	for _, domain := range domains {
		target := domain.RegionalDomainName
		if target == "" {
			target = domain.DistributionDomainName
		}

		view.add(domain.DomainName, endpointTypes(domain.EndpointConfiguration), target, domain.DomainNameStatus)
	}

	return view
}

func newDomainsListCommand() *cobra.Command {
	var paging pagingFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List custom domain names",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				result, err := collect(ctx, client.DomainNames().List, &paging)
				if err != nil {
					return fmt.Errorf("failed to list domain names: %w", err)
				}

				err = render(cmd, result, func() *table { return domainsTable(result.Items) })
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

func newDomainsGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get DOMAIN_NAME",
		Short: "Show a custom domain name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				domain, err := client.DomainNames().Get(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get domain name: %w", err)
				}

				return render(cmd, domain, func() *table {
					return details(
						"Domain", domain.DomainName,
						"Endpoint Types", endpointTypes(domain.EndpointConfiguration),
						"Regional Target", domain.RegionalDomainName,
						"Regional Zone", domain.RegionalHostedZoneID,
						"Distribution Target", domain.DistributionDomainName,
						"Distribution Zone", domain.DistributionHostedZoneID,
						"Certificate", domain.CertificateArn+domain.RegionalCertificateArn,
						"Security Policy", domain.SecurityPolicy,
						"Status", domain.DomainNameStatus,
						"Tags", formatTags(domain.Tags),
					)
				})
			})
		},
	}

	return cmd
}

func newDomainsCreateCommand() *cobra.Command {
	var (
		req            apigw.DomainNameCreateRequest
		certificateArn string
		endpointType   string
		tags           []string
	)

	cmd := &cobra.Command{
		Use:   "create DOMAIN_NAME",
		Short: "Create a custom domain name backed by an ACM certificate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.DomainName = args[0]
			req.EndpointConfiguration = &apigw.EndpointConfiguration{Types: []string{endpointType}}

			if endpointType == apigw.EndpointTypeEdge {
				req.CertificateArn = certificateArn
			} else {
				req.RegionalCertificateArn = certificateArn
			}

			var err error

			req.Tags, err = parseKeyValues(tags)
			if err != nil {
				return err
			}

			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				domain, err := client.DomainNames().Create(ctx, &req)
				if err != nil {
					return fmt.Errorf("failed to create domain name: %w", err)
				}

				return render(cmd, domain, func() *table { return domainsTable([]apigw.DomainName{*domain}) })
			})
		},
	}

	cmd.Flags().StringVar(&certificateArn, "certificate-arn", "", "ACM certificate ARN")
	cmd.Flags().StringVar(&endpointType, "endpoint-type", apigw.EndpointTypeRegional, "EDGE or REGIONAL")
	cmd.Flags().StringVar(&req.SecurityPolicy, "security-policy", "", "TLS_1_0 or TLS_1_2")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "tag as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("certificate-arn")

	return cmd
}

func newDomainsDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete DOMAIN_NAME",
		Short: "Delete a custom domain name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				err := client.DomainNames().Delete(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to delete domain name: %w", err)
				}

				printDone(cmd, "Deleted domain name %s", args[0])

				return nil
			})
		},
	}

	return cmd
}

func newDomainsMappingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mappings",
		Aliases: []string{"mapping", "base-paths"},
		Short:   "Manage base path mappings of a domain",
	}

	cmd.AddCommand(newDomainMappingsListCommand())
	cmd.AddCommand(newDomainMappingsCreateCommand())
	cmd.AddCommand(newDomainMappingsDeleteCommand())

	return cmd
}

func mappingsTable(mappings []apigw.BasePathMapping) *table {
	view := newTable("Base Path", "REST API", "Stage")

	for _, mapping := range mappings {
		view.add(mapping.BasePath, mapping.RestAPIID, mapping.Stage)
	}

	return view
}

func newDomainMappingsListCommand() *cobra.Command {
	var paging pagingFlags

	cmd := &cobra.Command{
		Use:   "list DOMAIN_NAME",
		Short: "List base path mappings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				fetch := func(ctx context.Context, opts *apigw.ListOptions) (*apigw.Page[apigw.BasePathMapping], error) {
					return client.DomainNames().ListBasePathMappings(ctx, args[0], opts)
				}

				result, err := collect(ctx, fetch, &paging)
				if err != nil {
					return fmt.Errorf("failed to list base path mappings: %w", err)
				}

				return render(cmd, result, func() *table { return mappingsTable(result.Items) })
			})
		},
	}

	paging.register(cmd)

	return cmd
}

func newDomainMappingsCreateCommand() *cobra.Command {
	var req apigw.BasePathMappingCreateRequest

	cmd := &cobra.Command{
		Use:   "create DOMAIN_NAME",
		Short: "Map a base path of a domain to an API stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				mapping, err := client.DomainNames().CreateBasePathMapping(ctx, args[0], &req)
				if err != nil {
					return fmt.Errorf("failed to create base path mapping: %w", err)
				}

				return render(cmd, mapping, func() *table { return mappingsTable([]apigw.BasePathMapping{*mapping}) })
			})
		},
	}

	cmd.Flags().StringVar(&req.BasePath, "base-path", "", "base path, empty for the domain root")
	cmd.Flags().StringVar(&req.RestAPIID, "rest-api-id", "", "REST API to map")
	cmd.Flags().StringVar(&req.Stage, "stage", "", "stage to map")
	_ = cmd.MarkFlagRequired("rest-api-id")

	return cmd
}

func newDomainMappingsDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete DOMAIN_NAME BASE_PATH",
		Short: "Delete a base path mapping",
		Long:  `Delete a base path mapping. Use "(none)" for the root mapping.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				err := client.DomainNames().DeleteBasePathMapping(ctx, args[0], args[1])
				if err != nil {
					return fmt.Errorf("failed to delete base path mapping: %w", err)
				}

				printDone(cmd, "Deleted base path mapping %s of %s", args[1], args[0])

				return nil
			})
		},
	}

	return cmd
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/apigw/internal/auth"
	"github.com/fivetwenty-io/apigw/internal/constants"
	"github.com/fivetwenty-io/apigw/internal/http"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// Client implements the apigw.Client interface.
type Client struct {
	httpClient *http.Client
	region     string
	logger     apigw.Logger

	// Resource clients
	restAPIs           apigw.RestAPIsClient
	resources          apigw.ResourcesClient
	methods            apigw.MethodsClient
	integrations       apigw.IntegrationsClient
	deployments        apigw.DeploymentsClient
	stages             apigw.StagesClient
	authorizers        apigw.AuthorizersClient
	models             apigw.ModelsClient
	requestValidators  apigw.RequestValidatorsClient
	gatewayResponses   apigw.GatewayResponsesClient
	documentation      apigw.DocumentationClient
	exports            apigw.ExportsClient
	apiKeys            apigw.APIKeysClient
	usagePlans         apigw.UsagePlansClient
	domainNames        apigw.DomainNamesClient
	vpcLinks           apigw.VpcLinksClient
	clientCertificates apigw.ClientCertificatesClient
	account            apigw.AccountClient
	tags               apigw.TagsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *apigw.Config, region string) []http.Option {
	httpOpts := []http.Option{http.WithRegion(region)}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	return httpOpts
}

// New creates an API Gateway client. Credentials are resolved as documented
// on apigw.Config; when no endpoint is configured it is derived from the
// region.
func New(ctx context.Context, config *apigw.Config) (*Client, error) {
	if config == nil {
		return nil, apigw.ErrConfigRequired
	}

	resolved, err := auth.Resolve(ctx, auth.Options{
		Region:          config.Region,
		Profile:         config.Profile,
		AccessKeyID:     config.AccessKeyID,
		SecretAccessKey: config.SecretAccessKey,
		SessionToken:    config.SessionToken,
		Provider:        config.CredentialsProvider,
		Anonymous:       config.Anonymous,
	})
	if err != nil {
		return nil, fmt.Errorf("resolving credentials: %w", err)
	}

	endpoint := config.APIEndpoint
	if endpoint == "" {
		if resolved.Region == "" {
			return nil, apigw.ErrRegionOrEndpointRequired
		}

		endpoint = fmt.Sprintf(constants.EndpointTemplate, resolved.Region)
	}

	// SigV4 scopes every signature to a region.
	if resolved.Provider != nil && resolved.Region == "" {
		return nil, apigw.ErrSigningRegionRequired
	}

	httpClient := http.NewClient(endpoint, resolved.Provider, createHTTPClientOptions(config, resolved.Region)...)

	return NewWithHTTPClient(httpClient, resolved.Region, config.Logger), nil
}

// NewWithHTTPClient creates a client on top of an existing HTTP client.
func NewWithHTTPClient(httpClient *http.Client, region string, logger apigw.Logger) *Client {
	client := &Client{
		httpClient: httpClient,
		region:     region,
		logger:     logger,
	}

	client.initializeResourceClients()

	return client
}

func (c *Client) initializeResourceClients() {
	c.restAPIs = NewRestAPIsClient(c.httpClient)
	c.resources = NewResourcesClient(c.httpClient)
	c.methods = NewMethodsClient(c.httpClient)
	c.integrations = NewIntegrationsClient(c.httpClient)
	c.deployments = NewDeploymentsClient(c.httpClient)
	c.stages = NewStagesClient(c.httpClient)
	c.authorizers = NewAuthorizersClient(c.httpClient)
	c.models = NewModelsClient(c.httpClient)
	c.requestValidators = NewRequestValidatorsClient(c.httpClient)
	c.gatewayResponses = NewGatewayResponsesClient(c.httpClient)
	c.documentation = NewDocumentationClient(c.httpClient)
	c.exports = NewExportsClient(c.httpClient)
	c.apiKeys = NewAPIKeysClient(c.httpClient)
	c.usagePlans = NewUsagePlansClient(c.httpClient)
	c.domainNames = NewDomainNamesClient(c.httpClient)
	c.vpcLinks = NewVpcLinksClient(c.httpClient)
	c.clientCertificates = NewClientCertificatesClient(c.httpClient)
	c.account = NewAccountClient(c.httpClient)
	c.tags = NewTagsClient(c.httpClient)
}

// Region returns the signing region.
func (c *Client) Region() string {
	return c.region
}

// Endpoint implements apigw.Client.Endpoint.
func (c *Client) Endpoint() string {
	return c.httpClient.BaseURL()
}

// SetEndpoint implements apigw.Client.SetEndpoint.
func (c *Client) SetEndpoint(endpoint string) error {
	if endpoint == "" {
		return apigw.ErrInvalidEndpoint
	}

	err := c.httpClient.SetBaseURL(endpoint)
	if err != nil {
		return fmt.Errorf("setting endpoint: %w", err)
	}

	return nil
}

// Resource client accessors

// RestAPIs implements apigw.Client.RestAPIs.
func (c *Client) RestAPIs() apigw.RestAPIsClient { return c.restAPIs }

// Resources implements apigw.Client.Resources.
func (c *Client) Resources() apigw.ResourcesClient { return c.resources }

// Methods implements apigw.Client.Methods.
func (c *Client) Methods() apigw.MethodsClient { return c.methods }

// Integrations implements apigw.Client.Integrations.
func (c *Client) Integrations() apigw.IntegrationsClient { return c.integrations }

// Deployments implements apigw.Client.Deployments.
func (c *Client) Deployments() apigw.DeploymentsClient { return c.deployments }

// Stages implements apigw.Client.Stages.
func (c *Client) Stages() apigw.StagesClient { return c.stages }

// Authorizers implements apigw.Client.Authorizers.
func (c *Client) Authorizers() apigw.AuthorizersClient { return c.authorizers }

// Models implements apigw.Client.Models.
func (c *Client) Models() apigw.ModelsClient { return c.models }

// RequestValidators implements apigw.Client.RequestValidators.
func (c *Client) RequestValidators() apigw.RequestValidatorsClient { return c.requestValidators }

// GatewayResponses implements apigw.Client.GatewayResponses.
func (c *Client) GatewayResponses() apigw.GatewayResponsesClient { return c.gatewayResponses }

// Documentation implements apigw.Client.Documentation.
func (c *Client) Documentation() apigw.DocumentationClient { return c.documentation }

// Exports implements apigw.Client.Exports.
func (c *Client) Exports() apigw.ExportsClient { return c.exports }

// APIKeys implements apigw.Client.APIKeys.
func (c *Client) APIKeys() apigw.APIKeysClient { return c.apiKeys }

// UsagePlans implements apigw.Client.UsagePlans.
func (c *Client) UsagePlans() apigw.UsagePlansClient { return c.usagePlans }

// DomainNames implements apigw.Client.DomainNames.
func (c *Client) DomainNames() apigw.DomainNamesClient { return c.domainNames }

// VpcLinks implements apigw.Client.VpcLinks.
func (c *Client) VpcLinks() apigw.VpcLinksClient { return c.vpcLinks }

// ClientCertificates implements apigw.Client.ClientCertificates.
func (c *Client) ClientCertificates() apigw.ClientCertificatesClient { return c.clientCertificates }

// Account implements apigw.Client.Account.
func (c *Client) Account() apigw.AccountClient { return c.account }

// Tags implements apigw.Client.Tags.
func (c *Client) Tags() apigw.TagsClient { return c.tags }

// Request helpers shared by the resource clients.

// requireParams checks name/value pairs and reports the first empty value as
// a client error, before anything is sent.
func requireParams(op string, pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return &apigw.ClientError{
				Op:  op,
				Err: fmt.Errorf("%w: %s", apigw.ErrMissingRequiredParameter, pairs[i]),
			}
		}
	}

	return nil
}

// buildPath joins escaped path segments.
func buildPath(segments ...string) string {
	var b strings.Builder

	for _, segment := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(segment))
	}

	return b.String()
}

// decode unmarshals a response body into a new T.
func decode[T any](resp *http.Response, what string) (*T, error) {
	var out T

	err := json.Unmarshal(resp.Body, &out)
	if err != nil {
		return nil, &apigw.ClientError{Op: "parse " + what, Err: err}
	}

	return &out, nil
}

// listQuery returns the paging query of opts.
func listQuery(opts *apigw.ListOptions) url.Values {
	if opts == nil {
		return url.Values{}
	}

	return opts.ToValues()
}

func setIfNotEmpty(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}

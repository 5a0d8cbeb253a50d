package apigw

import (
	"context"
	"time"
)

// RestAPIsClient manages REST APIs.
type RestAPIsClient interface {
	Create(ctx context.Context, req *RestAPICreateRequest) (*RestAPI, error)
	Get(ctx context.Context, restAPIID string) (*RestAPI, error)
	List(ctx context.Context, opts *ListOptions) (*Page[RestAPI], error)
	Update(ctx context.Context, restAPIID string, req *UpdateRequest) (*RestAPI, error)
	Delete(ctx context.Context, restAPIID string) error
	// Import creates an API from an OpenAPI definition.
	Import(ctx context.Context, definition []byte, opts *RestAPIImportOptions) (*RestAPI, error)
	// Put merges or overwrites an existing API with an OpenAPI definition.
	Put(ctx context.Context, restAPIID string, definition []byte, opts *RestAPIImportOptions) (*RestAPI, error)
}

// ResourcesClient manages the resource tree of a REST API.
type ResourcesClient interface {
	Create(ctx context.Context, restAPIID, parentID string, req *ResourceCreateRequest) (*Resource, error)
	Get(ctx context.Context, restAPIID, resourceID string, embed ...string) (*Resource, error)
	List(ctx context.Context, restAPIID string, opts *ResourceListOptions) (*Page[Resource], error)
	Update(ctx context.Context, restAPIID, resourceID string, req *UpdateRequest) (*Resource, error)
	Delete(ctx context.Context, restAPIID, resourceID string) error
}

// MethodsClient manages methods and method responses.
type MethodsClient interface {
	Put(ctx context.Context, restAPIID, resourceID, httpMethod string, req *MethodPutRequest) (*Method, error)
	Get(ctx context.Context, restAPIID, resourceID, httpMethod string) (*Method, error)
	Update(ctx context.Context, restAPIID, resourceID, httpMethod string, req *UpdateRequest) (*Method, error)
	Delete(ctx context.Context, restAPIID, resourceID, httpMethod string) error
	TestInvoke(ctx context.Context, restAPIID, resourceID, httpMethod string, req *TestInvokeMethodRequest) (*TestInvokeMethodResult, error)

	PutResponse(ctx context.Context, restAPIID, resourceID, httpMethod, statusCode string, req *MethodResponsePutRequest) (*MethodResponse, error)
	GetResponse(ctx context.Context, restAPIID, resourceID, httpMethod, statusCode string) (*MethodResponse, error)
	UpdateResponse(ctx context.Context, restAPIID, resourceID, httpMethod, statusCode string, req *UpdateRequest) (*MethodResponse, error)
	DeleteResponse(ctx context.Context, restAPIID, resourceID, httpMethod, statusCode string) error
}

// IntegrationsClient manages integrations and integration responses.
type IntegrationsClient interface {
	Put(ctx context.Context, restAPIID, resourceID, httpMethod string, req *IntegrationPutRequest) (*Integration, error)
	Get(ctx context.Context, restAPIID, resourceID, httpMethod string) (*Integration, error)
	Update(ctx context.Context, restAPIID, resourceID, httpMethod string, req *UpdateRequest) (*Integration, error)
	Delete(ctx context.Context, restAPIID, resourceID, httpMethod string) error

	PutResponse(ctx context.Context, restAPIID, resourceID, httpMethod, statusCode string, req *IntegrationResponsePutRequest) (*IntegrationResponse, error)
	GetResponse(ctx context.Context, restAPIID, resourceID, httpMethod, statusCode string) (*IntegrationResponse, error)
	UpdateResponse(ctx context.Context, restAPIID, resourceID, httpMethod, statusCode string, req *UpdateRequest) (*IntegrationResponse, error)
	DeleteResponse(ctx context.Context, restAPIID, resourceID, httpMethod, statusCode string) error
}

// DeploymentsClient manages deployments.
type DeploymentsClient interface {
	Create(ctx context.Context, restAPIID string, req *DeploymentCreateRequest) (*Deployment, error)
	Get(ctx context.Context, restAPIID, deploymentID string, embed ...string) (*Deployment, error)
	List(ctx context.Context, restAPIID string, opts *ListOptions) (*Page[Deployment], error)
	Update(ctx context.Context, restAPIID, deploymentID string, req *UpdateRequest) (*Deployment, error)
	Delete(ctx context.Context, restAPIID, deploymentID string) error
}

// StagesClient manages stages.
type StagesClient interface {
	Create(ctx context.Context, restAPIID string, req *StageCreateRequest) (*Stage, error)
	Get(ctx context.Context, restAPIID, stageName string) (*Stage, error)
	// List returns every stage, optionally filtered by deployment. The
	// operation is not paginated.
	List(ctx context.Context, restAPIID, deploymentID string) ([]Stage, error)
	Update(ctx context.Context, restAPIID, stageName string, req *UpdateRequest) (*Stage, error)
	Delete(ctx context.Context, restAPIID, stageName string) error
	FlushCache(ctx context.Context, restAPIID, stageName string) error
	FlushAuthorizersCache(ctx context.Context, restAPIID, stageName string) error
}

// AuthorizersClient manages authorizers.
type AuthorizersClient interface {
	Create(ctx context.Context, restAPIID string, req *AuthorizerCreateRequest) (*Authorizer, error)
	Get(ctx context.Context, restAPIID, authorizerID string) (*Authorizer, error)
	List(ctx context.Context, restAPIID string, opts *ListOptions) (*Page[Authorizer], error)
	Update(ctx context.Context, restAPIID, authorizerID string, req *UpdateRequest) (*Authorizer, error)
	Delete(ctx context.Context, restAPIID, authorizerID string) error
	TestInvoke(ctx context.Context, restAPIID, authorizerID string, req *TestInvokeAuthorizerRequest) (*TestInvokeAuthorizerResult, error)
}

// ModelsClient manages models.
type ModelsClient interface {
	Create(ctx context.Context, restAPIID string, req *ModelCreateRequest) (*Model, error)
	Get(ctx context.Context, restAPIID, modelName string, flatten bool) (*Model, error)
	List(ctx context.Context, restAPIID string, opts *ListOptions) (*Page[Model], error)
	Update(ctx context.Context, restAPIID, modelName string, req *UpdateRequest) (*Model, error)
	Delete(ctx context.Context, restAPIID, modelName string) error
	GetTemplate(ctx context.Context, restAPIID, modelName string) (*Template, error)
}

// RequestValidatorsClient manages request validators.
type RequestValidatorsClient interface {
	Create(ctx context.Context, restAPIID string, req *RequestValidatorCreateRequest) (*RequestValidator, error)
	Get(ctx context.Context, restAPIID, validatorID string) (*RequestValidator, error)
	List(ctx context.Context, restAPIID string, opts *ListOptions) (*Page[RequestValidator], error)
	Update(ctx context.Context, restAPIID, validatorID string, req *UpdateRequest) (*RequestValidator, error)
	Delete(ctx context.Context, restAPIID, validatorID string) error
}

// GatewayResponsesClient manages gateway responses.
type GatewayResponsesClient interface {
	Put(ctx context.Context, restAPIID, responseType string, req *GatewayResponsePutRequest) (*GatewayResponse, error)
	Get(ctx context.Context, restAPIID, responseType string) (*GatewayResponse, error)
	List(ctx context.Context, restAPIID string, opts *ListOptions) (*Page[GatewayResponse], error)
	Update(ctx context.Context, restAPIID, responseType string, req *UpdateRequest) (*GatewayResponse, error)
	Delete(ctx context.Context, restAPIID, responseType string) error
}

// APIKeysClient manages API keys.
type APIKeysClient interface {
	Create(ctx context.Context, req *APIKeyCreateRequest) (*APIKey, error)
	Get(ctx context.Context, apiKeyID string, includeValue bool) (*APIKey, error)
	List(ctx context.Context, opts *APIKeyListOptions) (*Page[APIKey], error)
	Update(ctx context.Context, apiKeyID string, req *UpdateRequest) (*APIKey, error)
	Delete(ctx context.Context, apiKeyID string) error
	// Import creates keys from a CSV document.
	Import(ctx context.Context, csv []byte, failOnWarnings bool) (*APIKeyIDs, error)
}

// UsagePlansClient manages usage plans, their keys and their usage data.
type UsagePlansClient interface {
	Create(ctx context.Context, req *UsagePlanCreateRequest) (*UsagePlan, error)
	Get(ctx context.Context, usagePlanID string) (*UsagePlan, error)
	List(ctx context.Context, opts *UsagePlanListOptions) (*Page[UsagePlan], error)
	Update(ctx context.Context, usagePlanID string, req *UpdateRequest) (*UsagePlan, error)
	Delete(ctx context.Context, usagePlanID string) error

	CreateKey(ctx context.Context, usagePlanID string, req *UsagePlanKeyCreateRequest) (*UsagePlanKey, error)
	GetKey(ctx context.Context, usagePlanID, keyID string) (*UsagePlanKey, error)
	ListKeys(ctx context.Context, usagePlanID string, opts *UsagePlanKeyListOptions) (*Page[UsagePlanKey], error)
	DeleteKey(ctx context.Context, usagePlanID, keyID string) error

	GetUsage(ctx context.Context, usagePlanID string, opts *UsageOptions) (*Usage, error)
	UpdateUsage(ctx context.Context, usagePlanID, keyID string, req *UpdateRequest) (*Usage, error)
}

// DomainNamesClient manages custom domain names and base path mappings.
type DomainNamesClient interface {
	Create(ctx context.Context, req *DomainNameCreateRequest) (*DomainName, error)
	Get(ctx context.Context, domainName string) (*DomainName, error)
	List(ctx context.Context, opts *ListOptions) (*Page[DomainName], error)
	Update(ctx context.Context, domainName string, req *UpdateRequest) (*DomainName, error)
	Delete(ctx context.Context, domainName string) error

	CreateBasePathMapping(ctx context.Context, domainName string, req *BasePathMappingCreateRequest) (*BasePathMapping, error)
	GetBasePathMapping(ctx context.Context, domainName, basePath string) (*BasePathMapping, error)
	ListBasePathMappings(ctx context.Context, domainName string, opts *ListOptions) (*Page[BasePathMapping], error)
	UpdateBasePathMapping(ctx context.Context, domainName, basePath string, req *UpdateRequest) (*BasePathMapping, error)
	DeleteBasePathMapping(ctx context.Context, domainName, basePath string) error
}

// VpcLinksClient manages VPC links.
type VpcLinksClient interface {
	Create(ctx context.Context, req *VpcLinkCreateRequest) (*VpcLink, error)
	Get(ctx context.Context, vpcLinkID string) (*VpcLink, error)
	List(ctx context.Context, opts *ListOptions) (*Page[VpcLink], error)
	Update(ctx context.Context, vpcLinkID string, req *UpdateRequest) (*VpcLink, error)
	Delete(ctx context.Context, vpcLinkID string) error
}

// ClientCertificatesClient manages client certificates.
type ClientCertificatesClient interface {
	Generate(ctx context.Context, req *ClientCertificateGenerateRequest) (*ClientCertificate, error)
	Get(ctx context.Context, certificateID string) (*ClientCertificate, error)
	List(ctx context.Context, opts *ListOptions) (*Page[ClientCertificate], error)
	Update(ctx context.Context, certificateID string, req *UpdateRequest) (*ClientCertificate, error)
	Delete(ctx context.Context, certificateID string) error
}

// AccountClient manages account settings.
type AccountClient interface {
	Get(ctx context.Context) (*Account, error)
	Update(ctx context.Context, req *UpdateRequest) (*Account, error)
}

// TagsClient manages tags of any taggable resource, addressed by ARN.
type TagsClient interface {
	Get(ctx context.Context, resourceArn string) (Tags, error)
	Tag(ctx context.Context, resourceArn string, tags Tags) error
	Untag(ctx context.Context, resourceArn string, tagKeys []string) error
}

// DocumentationClient manages documentation parts and versions.
type DocumentationClient interface {
	CreatePart(ctx context.Context, restAPIID string, req *DocumentationPartCreateRequest) (*DocumentationPart, error)
	GetPart(ctx context.Context, restAPIID, partID string) (*DocumentationPart, error)
	ListParts(ctx context.Context, restAPIID string, opts *DocumentationPartListOptions) (*Page[DocumentationPart], error)
	UpdatePart(ctx context.Context, restAPIID, partID string, req *UpdateRequest) (*DocumentationPart, error)
	DeletePart(ctx context.Context, restAPIID, partID string) error
	ImportParts(ctx context.Context, restAPIID string, definition []byte, mode ImportMode, failOnWarnings bool) (*DocumentationPartIDs, error)

	CreateVersion(ctx context.Context, restAPIID string, req *DocumentationVersionCreateRequest) (*DocumentationVersion, error)
	GetVersion(ctx context.Context, restAPIID, version string) (*DocumentationVersion, error)
	ListVersions(ctx context.Context, restAPIID string, opts *ListOptions) (*Page[DocumentationVersion], error)
	UpdateVersion(ctx context.Context, restAPIID, version string, req *UpdateRequest) (*DocumentationVersion, error)
	DeleteVersion(ctx context.Context, restAPIID, version string) error
}

// ExportsClient exports API definitions and generates SDKs.
type ExportsClient interface {
	GetExport(ctx context.Context, restAPIID, stageName, exportType string, opts *ExportOptions) (*ExportResult, error)
	GetSdk(ctx context.Context, restAPIID, stageName, sdkType string, parameters map[string]string) (*ExportResult, error)
	GetSdkType(ctx context.Context, sdkTypeID string) (*SdkType, error)
	ListSdkTypes(ctx context.Context, opts *ListOptions) (*Page[SdkType], error)
}

// APIClients provides access to the clients that operate on a REST API.
type APIClients interface {
	RestAPIs() RestAPIsClient
	Resources() ResourcesClient
	Methods() MethodsClient
	Integrations() IntegrationsClient
	Deployments() DeploymentsClient
	Stages() StagesClient
	Authorizers() AuthorizersClient
	Models() ModelsClient
	RequestValidators() RequestValidatorsClient
	GatewayResponses() GatewayResponsesClient
	Documentation() DocumentationClient
	Exports() ExportsClient
}

// AccountClients provides access to account-scoped resource clients.
type AccountClients interface {
	APIKeys() APIKeysClient
	UsagePlans() UsagePlansClient
	DomainNames() DomainNamesClient
	VpcLinks() VpcLinksClient
	ClientCertificates() ClientCertificatesClient
	Account() AccountClient
	Tags() TagsClient
}

// Client is the API Gateway control-plane client.
type Client interface {
	APIClients
	AccountClients

	// Endpoint returns the base URL requests are sent to.
	Endpoint() string
	// SetEndpoint changes the base URL. It fails with ErrEndpointInUse once a
	// request has been sent.
	SetEndpoint(endpoint string) error
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an apigw.Client.
//
// # Credentials precedence
//
// The concrete client (see pkg/apigwclient) picks credentials in this order:
//  1. CredentialsProvider: used as given.
//  2. AccessKeyID/SecretAccessKey (and SessionToken): wrapped in a
//     StaticCredentialsProvider.
//  3. Anonymous: when Anonymous is set, requests are sent unsigned. This is
//     only useful against local test servers.
//  4. The default chain: environment variables, then the shared config and
//     credentials files, honoring Profile.
//
// # Endpoint
//
// APIEndpoint overrides the default "https://apigateway.{region}.amazonaws.com".
// A missing scheme is completed with "https://". Region is still used for
// signing when an endpoint is given.
type Config struct {
	// Region is the AWS region, e.g. "us-east-1".
	Region string
	// APIEndpoint is the base URL of the control plane.
	APIEndpoint string

	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	// Profile selects a shared config profile for the default chain.
	Profile string
	// CredentialsProvider overrides every other credentials setting.
	CredentialsProvider CredentialsProvider
	// Anonymous disables signing.
	Anonymous bool

	// HTTPTimeout bounds a single HTTP attempt.
	HTTPTimeout time.Duration
	// RetryMax is the maximum number of retries for throttling, 5xx responses
	// and connection errors. Zero selects the default.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Debug enables request and response logging when a Logger is provided.
	Debug  bool
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Interceptors run around every request.
	Interceptors *InterceptorChain
}

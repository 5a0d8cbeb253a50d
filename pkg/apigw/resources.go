package apigw

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Timestamp is a time sent by API Gateway as epoch seconds. RFC 3339 strings
// are also accepted when decoding.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: t}
}

// MarshalJSON encodes the time as fractional epoch seconds.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}

	seconds := float64(t.UnixNano()) / float64(time.Second)

	return []byte(strconv.FormatFloat(seconds, 'f', -1, 64)), nil
}

// UnmarshalJSON decodes epoch seconds or an RFC 3339 string.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding timestamp: %w", err)
		}

		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("parsing timestamp %q: %w", s, err)
		}

		t.Time = parsed

		return nil
	}

	seconds, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("parsing timestamp %s: %w", data, err)
	}

	whole, frac := math.Modf(seconds)
	t.Time = time.Unix(int64(whole), int64(math.Round(frac*1e3))*int64(time.Millisecond)).UTC()

	return nil
}

// MarshalYAML renders the time in RFC 3339.
func (t Timestamp) MarshalYAML() (interface{}, error) {
	if t.IsZero() {
		return nil, nil
	}

	return t.Format(time.RFC3339), nil
}

// RestApi

// RestAPI is a REST API resource.
type RestAPI struct {
	ID                        string                 `json:"id"                                  yaml:"id"`
	Name                      string                 `json:"name"                                yaml:"name"`
	Description               string                 `json:"description,omitempty"               yaml:"description,omitempty"`
	CreatedDate               *Timestamp             `json:"createdDate,omitempty"               yaml:"createdDate,omitempty"`
	Version                   string                 `json:"version,omitempty"                   yaml:"version,omitempty"`
	Warnings                  []string               `json:"warnings,omitempty"                  yaml:"warnings,omitempty"`
	BinaryMediaTypes          []string               `json:"binaryMediaTypes,omitempty"          yaml:"binaryMediaTypes,omitempty"`
	MinimumCompressionSize    *int                   `json:"minimumCompressionSize,omitempty"    yaml:"minimumCompressionSize,omitempty"`
	APIKeySource              string                 `json:"apiKeySource,omitempty"              yaml:"apiKeySource,omitempty"`
	EndpointConfiguration     *EndpointConfiguration `json:"endpointConfiguration,omitempty"     yaml:"endpointConfiguration,omitempty"`
	Policy                    string                 `json:"policy,omitempty"                    yaml:"policy,omitempty"`
	Tags                      Tags                   `json:"tags,omitempty"                      yaml:"tags,omitempty"`
	DisableExecuteAPIEndpoint bool                   `json:"disableExecuteApiEndpoint,omitempty" yaml:"disableExecuteApiEndpoint,omitempty"`
	RootResourceID            string                 `json:"rootResourceId,omitempty"            yaml:"rootResourceId,omitempty"`
}

// RestAPICreateRequest is the body of CreateRestApi.
type RestAPICreateRequest struct {
	Name                      string                 `json:"name"                                yaml:"name"`
	Description               string                 `json:"description,omitempty"               yaml:"description,omitempty"`
	Version                   string                 `json:"version,omitempty"                   yaml:"version,omitempty"`
	CloneFrom                 string                 `json:"cloneFrom,omitempty"                 yaml:"cloneFrom,omitempty"`
	BinaryMediaTypes          []string               `json:"binaryMediaTypes,omitempty"          yaml:"binaryMediaTypes,omitempty"`
	MinimumCompressionSize    *int                   `json:"minimumCompressionSize,omitempty"    yaml:"minimumCompressionSize,omitempty"`
	APIKeySource              string                 `json:"apiKeySource,omitempty"              yaml:"apiKeySource,omitempty"`
	EndpointConfiguration     *EndpointConfiguration `json:"endpointConfiguration,omitempty"     yaml:"endpointConfiguration,omitempty"`
	Policy                    string                 `json:"policy,omitempty"                    yaml:"policy,omitempty"`
	Tags                      Tags                   `json:"tags,omitempty"                      yaml:"tags,omitempty"`
	DisableExecuteAPIEndpoint bool                   `json:"disableExecuteApiEndpoint,omitempty" yaml:"disableExecuteApiEndpoint,omitempty"`
}

// ImportMode selects how PutRestApi combines a definition with an existing API.
type ImportMode string

// Import modes.
const (
	ImportModeMerge     ImportMode = "merge"
	ImportModeOverwrite ImportMode = "overwrite"
)

// RestAPIImportOptions are the query options of ImportRestApi and PutRestApi.
type RestAPIImportOptions struct {
	// Mode is only used by PutRestApi. Defaults to merge.
	Mode           ImportMode
	FailOnWarnings bool
	// Parameters are passed through as query parameters, for example
	// "endpointConfigurationTypes" or "basepath".
	Parameters map[string]string
}

// Resources

// Resource is a path segment of a REST API.
type Resource struct {
	ID              string            `json:"id"                        yaml:"id"`
	ParentID        string            `json:"parentId,omitempty"        yaml:"parentId,omitempty"`
	PathPart        string            `json:"pathPart,omitempty"        yaml:"pathPart,omitempty"`
	Path            string            `json:"path"                      yaml:"path"`
	ResourceMethods map[string]Method `json:"resourceMethods,omitempty" yaml:"resourceMethods,omitempty"`
}

// ResourceCreateRequest is the body of CreateResource.
type ResourceCreateRequest struct {
	PathPart string `json:"pathPart" yaml:"pathPart"`
}

// ResourceListOptions are the options of GetResources.
type ResourceListOptions struct {
	ListOptions
	// Embed asks the service to embed child resources, e.g. "methods".
	Embed []string
}

// Methods

// Method is an HTTP method on a resource.
type Method struct {
	HTTPMethod          string                    `json:"httpMethod"                    yaml:"httpMethod"`
	AuthorizationType   string                    `json:"authorizationType,omitempty"   yaml:"authorizationType,omitempty"`
	AuthorizerID        string                    `json:"authorizerId,omitempty"        yaml:"authorizerId,omitempty"`
	APIKeyRequired      *bool                     `json:"apiKeyRequired,omitempty"      yaml:"apiKeyRequired,omitempty"`
	RequestValidatorID  string                    `json:"requestValidatorId,omitempty"  yaml:"requestValidatorId,omitempty"`
	OperationName       string                    `json:"operationName,omitempty"       yaml:"operationName,omitempty"`
	RequestParameters   map[string]bool           `json:"requestParameters,omitempty"   yaml:"requestParameters,omitempty"`
	RequestModels       map[string]string         `json:"requestModels,omitempty"       yaml:"requestModels,omitempty"`
	MethodResponses     map[string]MethodResponse `json:"methodResponses,omitempty"     yaml:"methodResponses,omitempty"`
	MethodIntegration   *Integration              `json:"methodIntegration,omitempty"   yaml:"methodIntegration,omitempty"`
	AuthorizationScopes []string                  `json:"authorizationScopes,omitempty" yaml:"authorizationScopes,omitempty"`
}

// Authorization types.
const (
	AuthorizationNone            = "NONE"
	AuthorizationIAM             = "AWS_IAM"
	AuthorizationCustom          = "CUSTOM"
	AuthorizationCognitoUserPool = "COGNITO_USER_POOLS"
)

// MethodPutRequest is the body of PutMethod.
type MethodPutRequest struct {
	AuthorizationType   string            `json:"authorizationType"             yaml:"authorizationType"`
	AuthorizerID        string            `json:"authorizerId,omitempty"        yaml:"authorizerId,omitempty"`
	APIKeyRequired      bool              `json:"apiKeyRequired,omitempty"      yaml:"apiKeyRequired,omitempty"`
	OperationName       string            `json:"operationName,omitempty"       yaml:"operationName,omitempty"`
	RequestParameters   map[string]bool   `json:"requestParameters,omitempty"   yaml:"requestParameters,omitempty"`
	RequestModels       map[string]string `json:"requestModels,omitempty"       yaml:"requestModels,omitempty"`
	RequestValidatorID  string            `json:"requestValidatorId,omitempty"  yaml:"requestValidatorId,omitempty"`
	AuthorizationScopes []string          `json:"authorizationScopes,omitempty" yaml:"authorizationScopes,omitempty"`
}

// MethodResponse is a response declared by a method.
type MethodResponse struct {
	StatusCode         string            `json:"statusCode"                   yaml:"statusCode"`
	ResponseParameters map[string]bool   `json:"responseParameters,omitempty" yaml:"responseParameters,omitempty"`
	ResponseModels     map[string]string `json:"responseModels,omitempty"     yaml:"responseModels,omitempty"`
}

// MethodResponsePutRequest is the body of PutMethodResponse.
type MethodResponsePutRequest struct {
	ResponseParameters map[string]bool   `json:"responseParameters,omitempty" yaml:"responseParameters,omitempty"`
	ResponseModels     map[string]string `json:"responseModels,omitempty"     yaml:"responseModels,omitempty"`
}

// TestInvokeMethodRequest is the body of TestInvokeMethod.
type TestInvokeMethodRequest struct {
	PathWithQueryString string              `json:"pathWithQueryString,omitempty" yaml:"pathWithQueryString,omitempty"`
	Body                string              `json:"body,omitempty"                yaml:"body,omitempty"`
	Headers             map[string]string   `json:"headers,omitempty"             yaml:"headers,omitempty"`
	MultiValueHeaders   map[string][]string `json:"multiValueHeaders,omitempty"   yaml:"multiValueHeaders,omitempty"`
	ClientCertificateID string              `json:"clientCertificateId,omitempty" yaml:"clientCertificateId,omitempty"`
	StageVariables      map[string]string   `json:"stageVariables,omitempty"      yaml:"stageVariables,omitempty"`
}

// TestInvokeMethodResult is the result of TestInvokeMethod.
type TestInvokeMethodResult struct {
	Status            int                 `json:"status"                      yaml:"status"`
	Body              string              `json:"body,omitempty"              yaml:"body,omitempty"`
	Headers           map[string]string   `json:"headers,omitempty"           yaml:"headers,omitempty"`
	MultiValueHeaders map[string][]string `json:"multiValueHeaders,omitempty" yaml:"multiValueHeaders,omitempty"`
	Log               string              `json:"log,omitempty"               yaml:"log,omitempty"`
	Latency           int64               `json:"latency"                     yaml:"latency"`
}

// Integrations

// Integration types.
const (
	IntegrationTypeHTTP      = "HTTP"
	IntegrationTypeHTTPProxy = "HTTP_PROXY"
	IntegrationTypeAWS       = "AWS"
	IntegrationTypeAWSProxy  = "AWS_PROXY"
	IntegrationTypeMock      = "MOCK"
)

// TLSConfig is the TLS configuration of an integration.
type TLSConfig struct {
	InsecureSkipVerification bool `json:"insecureSkipVerification" yaml:"insecureSkipVerification"`
}

// Integration is the backend integration of a method.
type Integration struct {
	Type                 string                         `json:"type,omitempty"                 yaml:"type,omitempty"`
	HTTPMethod           string                         `json:"httpMethod,omitempty"           yaml:"httpMethod,omitempty"`
	URI                  string                         `json:"uri,omitempty"                  yaml:"uri,omitempty"`
	ConnectionType       string                         `json:"connectionType,omitempty"       yaml:"connectionType,omitempty"`
	ConnectionID         string                         `json:"connectionId,omitempty"         yaml:"connectionId,omitempty"`
	Credentials          string                         `json:"credentials,omitempty"          yaml:"credentials,omitempty"`
	RequestParameters    map[string]string              `json:"requestParameters,omitempty"    yaml:"requestParameters,omitempty"`
	RequestTemplates     map[string]string              `json:"requestTemplates,omitempty"     yaml:"requestTemplates,omitempty"`
	PassthroughBehavior  string                         `json:"passthroughBehavior,omitempty"  yaml:"passthroughBehavior,omitempty"`
	ContentHandling      string                         `json:"contentHandling,omitempty"      yaml:"contentHandling,omitempty"`
	TimeoutInMillis      *int                           `json:"timeoutInMillis,omitempty"      yaml:"timeoutInMillis,omitempty"`
	CacheNamespace       string                         `json:"cacheNamespace,omitempty"       yaml:"cacheNamespace,omitempty"`
	CacheKeyParameters   []string                       `json:"cacheKeyParameters,omitempty"   yaml:"cacheKeyParameters,omitempty"`
	IntegrationResponses map[string]IntegrationResponse `json:"integrationResponses,omitempty" yaml:"integrationResponses,omitempty"`
	TLSConfig            *TLSConfig                     `json:"tlsConfig,omitempty"            yaml:"tlsConfig,omitempty"`
}

// IntegrationPutRequest is the body of PutIntegration. IntegrationHTTPMethod
// is the method used to call the backend and travels as "httpMethod".
type IntegrationPutRequest struct {
	Type                  string            `json:"type"                          yaml:"type"`
	IntegrationHTTPMethod string            `json:"httpMethod,omitempty"          yaml:"integrationHttpMethod,omitempty"`
	URI                   string            `json:"uri,omitempty"                 yaml:"uri,omitempty"`
	ConnectionType        string            `json:"connectionType,omitempty"      yaml:"connectionType,omitempty"`
	ConnectionID          string            `json:"connectionId,omitempty"        yaml:"connectionId,omitempty"`
	Credentials           string            `json:"credentials,omitempty"         yaml:"credentials,omitempty"`
	RequestParameters     map[string]string `json:"requestParameters,omitempty"   yaml:"requestParameters,omitempty"`
	RequestTemplates      map[string]string `json:"requestTemplates,omitempty"    yaml:"requestTemplates,omitempty"`
	PassthroughBehavior   string            `json:"passthroughBehavior,omitempty" yaml:"passthroughBehavior,omitempty"`
	CacheNamespace        string            `json:"cacheNamespace,omitempty"      yaml:"cacheNamespace,omitempty"`
	CacheKeyParameters    []string          `json:"cacheKeyParameters,omitempty"  yaml:"cacheKeyParameters,omitempty"`
	ContentHandling       string            `json:"contentHandling,omitempty"     yaml:"contentHandling,omitempty"`
	TimeoutInMillis       *int              `json:"timeoutInMillis,omitempty"     yaml:"timeoutInMillis,omitempty"`
	TLSConfig             *TLSConfig        `json:"tlsConfig,omitempty"           yaml:"tlsConfig,omitempty"`
}

// IntegrationResponse maps a backend response to a method response.
type IntegrationResponse struct {
	StatusCode         string            `json:"statusCode"                   yaml:"statusCode"`
	SelectionPattern   string            `json:"selectionPattern,omitempty"   yaml:"selectionPattern,omitempty"`
	ResponseParameters map[string]string `json:"responseParameters,omitempty" yaml:"responseParameters,omitempty"`
	ResponseTemplates  map[string]string `json:"responseTemplates,omitempty"  yaml:"responseTemplates,omitempty"`
	ContentHandling    string            `json:"contentHandling,omitempty"    yaml:"contentHandling,omitempty"`
}

// IntegrationResponsePutRequest is the body of PutIntegrationResponse.
type IntegrationResponsePutRequest struct {
	SelectionPattern   string            `json:"selectionPattern,omitempty"   yaml:"selectionPattern,omitempty"`
	ResponseParameters map[string]string `json:"responseParameters,omitempty" yaml:"responseParameters,omitempty"`
	ResponseTemplates  map[string]string `json:"responseTemplates,omitempty"  yaml:"responseTemplates,omitempty"`
	ContentHandling    string            `json:"contentHandling,omitempty"    yaml:"contentHandling,omitempty"`
}

// Deployments

// MethodSnapshot summarizes a method at deployment time.
type MethodSnapshot struct {
	AuthorizationType string `json:"authorizationType,omitempty" yaml:"authorizationType,omitempty"`
	APIKeyRequired    bool   `json:"apiKeyRequired,omitempty"    yaml:"apiKeyRequired,omitempty"`
}

// Deployment is an immutable snapshot of a REST API.
type Deployment struct {
	ID          string                               `json:"id"                    yaml:"id"`
	Description string                               `json:"description,omitempty" yaml:"description,omitempty"`
	CreatedDate *Timestamp                           `json:"createdDate,omitempty" yaml:"createdDate,omitempty"`
	APISummary  map[string]map[string]MethodSnapshot `json:"apiSummary,omitempty"  yaml:"apiSummary,omitempty"`
}

// DeploymentCanarySettings configures a canary release for a new deployment.
type DeploymentCanarySettings struct {
	PercentTraffic         float64           `json:"percentTraffic,omitempty"         yaml:"percentTraffic,omitempty"`
	StageVariableOverrides map[string]string `json:"stageVariableOverrides,omitempty" yaml:"stageVariableOverrides,omitempty"`
	UseStageCache          bool              `json:"useStageCache,omitempty"          yaml:"useStageCache,omitempty"`
}

// DeploymentCreateRequest is the body of CreateDeployment.
type DeploymentCreateRequest struct {
	StageName           string                    `json:"stageName,omitempty"           yaml:"stageName,omitempty"`
	StageDescription    string                    `json:"stageDescription,omitempty"    yaml:"stageDescription,omitempty"`
	Description         string                    `json:"description,omitempty"         yaml:"description,omitempty"`
	CacheClusterEnabled *bool                     `json:"cacheClusterEnabled,omitempty" yaml:"cacheClusterEnabled,omitempty"`
	CacheClusterSize    string                    `json:"cacheClusterSize,omitempty"    yaml:"cacheClusterSize,omitempty"`
	Variables           map[string]string         `json:"variables,omitempty"           yaml:"variables,omitempty"`
	CanarySettings      *DeploymentCanarySettings `json:"canarySettings,omitempty"      yaml:"canarySettings,omitempty"`
	TracingEnabled      *bool                     `json:"tracingEnabled,omitempty"      yaml:"tracingEnabled,omitempty"`
}

// Stages

// MethodSetting holds per-method stage settings.
type MethodSetting struct {
	MetricsEnabled                         bool    `json:"metricsEnabled"                                   yaml:"metricsEnabled"`
	LoggingLevel                           string  `json:"loggingLevel,omitempty"                           yaml:"loggingLevel,omitempty"`
	DataTraceEnabled                       bool    `json:"dataTraceEnabled"                                 yaml:"dataTraceEnabled"`
	ThrottlingBurstLimit                   int     `json:"throttlingBurstLimit"                             yaml:"throttlingBurstLimit"`
	ThrottlingRateLimit                    float64 `json:"throttlingRateLimit"                              yaml:"throttlingRateLimit"`
	CachingEnabled                         bool    `json:"cachingEnabled"                                   yaml:"cachingEnabled"`
	CacheTTLInSeconds                      int     `json:"cacheTtlInSeconds"                                yaml:"cacheTtlInSeconds"`
	CacheDataEncrypted                     bool    `json:"cacheDataEncrypted"                               yaml:"cacheDataEncrypted"`
	RequireAuthorizationForCacheControl    bool    `json:"requireAuthorizationForCacheControl"              yaml:"requireAuthorizationForCacheControl"`
	UnauthorizedCacheControlHeaderStrategy string  `json:"unauthorizedCacheControlHeaderStrategy,omitempty" yaml:"unauthorizedCacheControlHeaderStrategy,omitempty"`
}

// AccessLogSettings configures stage access logging.
type AccessLogSettings struct {
	Format         string `json:"format,omitempty"         yaml:"format,omitempty"`
	DestinationArn string `json:"destinationArn,omitempty" yaml:"destinationArn,omitempty"`
}

// CanarySettings configures the canary of a stage.
type CanarySettings struct {
	PercentTraffic         float64           `json:"percentTraffic,omitempty"         yaml:"percentTraffic,omitempty"`
	DeploymentID           string            `json:"deploymentId,omitempty"           yaml:"deploymentId,omitempty"`
	StageVariableOverrides map[string]string `json:"stageVariableOverrides,omitempty" yaml:"stageVariableOverrides,omitempty"`
	UseStageCache          bool              `json:"useStageCache,omitempty"          yaml:"useStageCache,omitempty"`
}

// Stage is a named reference to a deployment.
type Stage struct {
	DeploymentID         string                   `json:"deploymentId,omitempty"         yaml:"deploymentId,omitempty"`
	ClientCertificateID  string                   `json:"clientCertificateId,omitempty"  yaml:"clientCertificateId,omitempty"`
	StageName            string                   `json:"stageName"                      yaml:"stageName"`
	Description          string                   `json:"description,omitempty"          yaml:"description,omitempty"`
	CacheClusterEnabled  bool                     `json:"cacheClusterEnabled,omitempty"  yaml:"cacheClusterEnabled,omitempty"`
	CacheClusterSize     string                   `json:"cacheClusterSize,omitempty"     yaml:"cacheClusterSize,omitempty"`
	CacheClusterStatus   string                   `json:"cacheClusterStatus,omitempty"   yaml:"cacheClusterStatus,omitempty"`
	MethodSettings       map[string]MethodSetting `json:"methodSettings,omitempty"       yaml:"methodSettings,omitempty"`
	Variables            map[string]string        `json:"variables,omitempty"            yaml:"variables,omitempty"`
	DocumentationVersion string                   `json:"documentationVersion,omitempty" yaml:"documentationVersion,omitempty"`
	AccessLogSettings    *AccessLogSettings       `json:"accessLogSettings,omitempty"    yaml:"accessLogSettings,omitempty"`
	CanarySettings       *CanarySettings          `json:"canarySettings,omitempty"       yaml:"canarySettings,omitempty"`
	TracingEnabled       bool                     `json:"tracingEnabled,omitempty"       yaml:"tracingEnabled,omitempty"`
	WebACLArn            string                   `json:"webAclArn,omitempty"            yaml:"webAclArn,omitempty"`
	Tags                 Tags                     `json:"tags,omitempty"                 yaml:"tags,omitempty"`
	CreatedDate          *Timestamp               `json:"createdDate,omitempty"          yaml:"createdDate,omitempty"`
	LastUpdatedDate      *Timestamp               `json:"lastUpdatedDate,omitempty"      yaml:"lastUpdatedDate,omitempty"`
}

// StageCreateRequest is the body of CreateStage.
type StageCreateRequest struct {
	StageName            string            `json:"stageName"                      yaml:"stageName"`
	DeploymentID         string            `json:"deploymentId"                   yaml:"deploymentId"`
	Description          string            `json:"description,omitempty"          yaml:"description,omitempty"`
	CacheClusterEnabled  bool              `json:"cacheClusterEnabled,omitempty"  yaml:"cacheClusterEnabled,omitempty"`
	CacheClusterSize     string            `json:"cacheClusterSize,omitempty"     yaml:"cacheClusterSize,omitempty"`
	Variables            map[string]string `json:"variables,omitempty"            yaml:"variables,omitempty"`
	DocumentationVersion string            `json:"documentationVersion,omitempty" yaml:"documentationVersion,omitempty"`
	CanarySettings       *CanarySettings   `json:"canarySettings,omitempty"       yaml:"canarySettings,omitempty"`
	TracingEnabled       bool              `json:"tracingEnabled,omitempty"       yaml:"tracingEnabled,omitempty"`
	Tags                 Tags              `json:"tags,omitempty"                 yaml:"tags,omitempty"`
}

// stageList is the wire shape of GetStages, which is not paginated.
type stageList struct {
	Item []Stage `json:"item"`
}

// DecodeStageList decodes a GetStages response body.
func DecodeStageList(data []byte) ([]Stage, error) {
	var list stageList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decoding stage list: %w", err)
	}

	return list.Item, nil
}

// Authorizers

// Authorizer is a custom or Cognito authorizer of a REST API.
type Authorizer struct {
	ID                           string   `json:"id"                                     yaml:"id"`
	Name                         string   `json:"name"                                   yaml:"name"`
	Type                         string   `json:"type"                                   yaml:"type"`
	ProviderARNs                 []string `json:"providerARNs,omitempty"                 yaml:"providerARNs,omitempty"`
	AuthType                     string   `json:"authType,omitempty"                     yaml:"authType,omitempty"`
	AuthorizerURI                string   `json:"authorizerUri,omitempty"                yaml:"authorizerUri,omitempty"`
	AuthorizerCredentials        string   `json:"authorizerCredentials,omitempty"        yaml:"authorizerCredentials,omitempty"`
	IdentitySource               string   `json:"identitySource,omitempty"               yaml:"identitySource,omitempty"`
	IdentityValidationExpression string   `json:"identityValidationExpression,omitempty" yaml:"identityValidationExpression,omitempty"`
	AuthorizerResultTTLInSeconds *int     `json:"authorizerResultTtlInSeconds,omitempty" yaml:"authorizerResultTtlInSeconds,omitempty"`
}

// Authorizer types.
const (
	AuthorizerTypeToken           = "TOKEN"
	AuthorizerTypeRequest         = "REQUEST"
	AuthorizerTypeCognitoUserPool = "COGNITO_USER_POOLS"
)

// AuthorizerCreateRequest is the body of CreateAuthorizer.
type AuthorizerCreateRequest struct {
	Name                         string   `json:"name"                                   yaml:"name"`
	Type                         string   `json:"type"                                   yaml:"type"`
	ProviderARNs                 []string `json:"providerARNs,omitempty"                 yaml:"providerARNs,omitempty"`
	AuthType                     string   `json:"authType,omitempty"                     yaml:"authType,omitempty"`
	AuthorizerURI                string   `json:"authorizerUri,omitempty"                yaml:"authorizerUri,omitempty"`
	AuthorizerCredentials        string   `json:"authorizerCredentials,omitempty"        yaml:"authorizerCredentials,omitempty"`
	IdentitySource               string   `json:"identitySource,omitempty"               yaml:"identitySource,omitempty"`
	IdentityValidationExpression string   `json:"identityValidationExpression,omitempty" yaml:"identityValidationExpression,omitempty"`
	AuthorizerResultTTLInSeconds *int     `json:"authorizerResultTtlInSeconds,omitempty" yaml:"authorizerResultTtlInSeconds,omitempty"`
}

// TestInvokeAuthorizerRequest is the body of TestInvokeAuthorizer.
type TestInvokeAuthorizerRequest struct {
	Headers             map[string]string   `json:"headers,omitempty"             yaml:"headers,omitempty"`
	MultiValueHeaders   map[string][]string `json:"multiValueHeaders,omitempty"   yaml:"multiValueHeaders,omitempty"`
	PathWithQueryString string              `json:"pathWithQueryString,omitempty" yaml:"pathWithQueryString,omitempty"`
	Body                string              `json:"body,omitempty"                yaml:"body,omitempty"`
	StageVariables      map[string]string   `json:"stageVariables,omitempty"      yaml:"stageVariables,omitempty"`
	AdditionalContext   map[string]string   `json:"additionalContext,omitempty"   yaml:"additionalContext,omitempty"`
}

// TestInvokeAuthorizerResult is the result of TestInvokeAuthorizer.
type TestInvokeAuthorizerResult struct {
	ClientStatus  int                 `json:"clientStatus"            yaml:"clientStatus"`
	Log           string              `json:"log,omitempty"           yaml:"log,omitempty"`
	Latency       int64               `json:"latency"                 yaml:"latency"`
	PrincipalID   string              `json:"principalId,omitempty"   yaml:"principalId,omitempty"`
	Policy        string              `json:"policy,omitempty"        yaml:"policy,omitempty"`
	Authorization map[string][]string `json:"authorization,omitempty" yaml:"authorization,omitempty"`
	Claims        map[string]string   `json:"claims,omitempty"        yaml:"claims,omitempty"`
}

// Models

// Model is a data schema of a REST API.
type Model struct {
	ID          string `json:"id"                    yaml:"id"`
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Schema      string `json:"schema,omitempty"      yaml:"schema,omitempty"`
	ContentType string `json:"contentType,omitempty" yaml:"contentType,omitempty"`
}

// ModelCreateRequest is the body of CreateModel.
type ModelCreateRequest struct {
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Schema      string `json:"schema,omitempty"      yaml:"schema,omitempty"`
	ContentType string `json:"contentType"           yaml:"contentType"`
}

// Template is a mapping template generated from a model.
type Template struct {
	Value string `json:"value" yaml:"value"`
}

// Request validators

// RequestValidator validates method requests.
type RequestValidator struct {
	ID                        string `json:"id"                        yaml:"id"`
	Name                      string `json:"name"                      yaml:"name"`
	ValidateRequestBody       bool   `json:"validateRequestBody"       yaml:"validateRequestBody"`
	ValidateRequestParameters bool   `json:"validateRequestParameters" yaml:"validateRequestParameters"`
}

// RequestValidatorCreateRequest is the body of CreateRequestValidator.
type RequestValidatorCreateRequest struct {
	Name                      string `json:"name,omitempty"            yaml:"name,omitempty"`
	ValidateRequestBody       bool   `json:"validateRequestBody"       yaml:"validateRequestBody"`
	ValidateRequestParameters bool   `json:"validateRequestParameters" yaml:"validateRequestParameters"`
}

// Gateway responses

// GatewayResponse customizes a response generated by API Gateway itself.
type GatewayResponse struct {
	ResponseType       string            `json:"responseType"                 yaml:"responseType"`
	StatusCode         string            `json:"statusCode,omitempty"         yaml:"statusCode,omitempty"`
	ResponseParameters map[string]string `json:"responseParameters,omitempty" yaml:"responseParameters,omitempty"`
	ResponseTemplates  map[string]string `json:"responseTemplates,omitempty"  yaml:"responseTemplates,omitempty"`
	DefaultResponse    bool              `json:"defaultResponse"              yaml:"defaultResponse"`
}

// GatewayResponsePutRequest is the body of PutGatewayResponse.
type GatewayResponsePutRequest struct {
	StatusCode         string            `json:"statusCode,omitempty"         yaml:"statusCode,omitempty"`
	ResponseParameters map[string]string `json:"responseParameters,omitempty" yaml:"responseParameters,omitempty"`
	ResponseTemplates  map[string]string `json:"responseTemplates,omitempty"  yaml:"responseTemplates,omitempty"`
}

// API keys

// APIKey is an API key used to meter and throttle clients.
type APIKey struct {
	ID              string     `json:"id"                        yaml:"id"`
	Value           string     `json:"value,omitempty"           yaml:"value,omitempty"`
	Name            string     `json:"name,omitempty"            yaml:"name,omitempty"`
	CustomerID      string     `json:"customerId,omitempty"      yaml:"customerId,omitempty"`
	Description     string     `json:"description,omitempty"     yaml:"description,omitempty"`
	Enabled         bool       `json:"enabled"                   yaml:"enabled"`
	CreatedDate     *Timestamp `json:"createdDate,omitempty"     yaml:"createdDate,omitempty"`
	LastUpdatedDate *Timestamp `json:"lastUpdatedDate,omitempty" yaml:"lastUpdatedDate,omitempty"`
	StageKeys       []string   `json:"stageKeys,omitempty"       yaml:"stageKeys,omitempty"`
	Tags            Tags       `json:"tags,omitempty"            yaml:"tags,omitempty"`
}

// StageKey references a stage of a REST API.
type StageKey struct {
	RestAPIID string `json:"restApiId" yaml:"restApiId"`
	StageName string `json:"stageName" yaml:"stageName"`
}

// APIKeyCreateRequest is the body of CreateApiKey.
type APIKeyCreateRequest struct {
	Name               string     `json:"name,omitempty"               yaml:"name,omitempty"`
	Description        string     `json:"description,omitempty"        yaml:"description,omitempty"`
	Enabled            bool       `json:"enabled"                      yaml:"enabled"`
	GenerateDistinctID bool       `json:"generateDistinctId,omitempty" yaml:"generateDistinctId,omitempty"`
	Value              string     `json:"value,omitempty"              yaml:"value,omitempty"`
	StageKeys          []StageKey `json:"stageKeys,omitempty"          yaml:"stageKeys,omitempty"`
	CustomerID         string     `json:"customerId,omitempty"         yaml:"customerId,omitempty"`
	Tags               Tags       `json:"tags,omitempty"               yaml:"tags,omitempty"`
}

// APIKeyListOptions are the options of GetApiKeys.
type APIKeyListOptions struct {
	ListOptions
	NameQuery     string
	CustomerID    string
	IncludeValues bool
}

// APIKeyIDs is the result of ImportApiKeys.
type APIKeyIDs struct {
	IDs      []string `json:"ids,omitempty"      yaml:"ids,omitempty"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Usage plans

// ThrottleSettings limits the request rate.
type ThrottleSettings struct {
	BurstLimit int     `json:"burstLimit,omitempty" yaml:"burstLimit,omitempty"`
	RateLimit  float64 `json:"rateLimit,omitempty"  yaml:"rateLimit,omitempty"`
}

// QuotaSettings limits the number of requests per period.
type QuotaSettings struct {
	Limit  int    `json:"limit,omitempty"  yaml:"limit,omitempty"`
	Offset int    `json:"offset,omitempty" yaml:"offset,omitempty"`
	Period string `json:"period,omitempty" yaml:"period,omitempty"`
}

// Quota periods.
const (
	QuotaPeriodDay   = "DAY"
	QuotaPeriodWeek  = "WEEK"
	QuotaPeriodMonth = "MONTH"
)

// APIStage associates a usage plan with a stage.
type APIStage struct {
	APIID    string                      `json:"apiId,omitempty"    yaml:"apiId,omitempty"`
	Stage    string                      `json:"stage,omitempty"    yaml:"stage,omitempty"`
	Throttle map[string]ThrottleSettings `json:"throttle,omitempty" yaml:"throttle,omitempty"`
}

// UsagePlan meters and throttles API keys.
type UsagePlan struct {
	ID          string            `json:"id"                    yaml:"id"`
	Name        string            `json:"name"                  yaml:"name"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	APIStages   []APIStage        `json:"apiStages,omitempty"   yaml:"apiStages,omitempty"`
	Throttle    *ThrottleSettings `json:"throttle,omitempty"    yaml:"throttle,omitempty"`
	Quota       *QuotaSettings    `json:"quota,omitempty"       yaml:"quota,omitempty"`
	ProductCode string            `json:"productCode,omitempty" yaml:"productCode,omitempty"`
	Tags        Tags              `json:"tags,omitempty"        yaml:"tags,omitempty"`
}

// UsagePlanCreateRequest is the body of CreateUsagePlan.
type UsagePlanCreateRequest struct {
	Name        string            `json:"name"                  yaml:"name"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	APIStages   []APIStage        `json:"apiStages,omitempty"   yaml:"apiStages,omitempty"`
	Throttle    *ThrottleSettings `json:"throttle,omitempty"    yaml:"throttle,omitempty"`
	Quota       *QuotaSettings    `json:"quota,omitempty"       yaml:"quota,omitempty"`
	Tags        Tags              `json:"tags,omitempty"        yaml:"tags,omitempty"`
}

// UsagePlanListOptions are the options of GetUsagePlans.
type UsagePlanListOptions struct {
	ListOptions
	KeyID string
}

// UsagePlanKey is an API key attached to a usage plan.
type UsagePlanKey struct {
	ID    string `json:"id"              yaml:"id"`
	Type  string `json:"type,omitempty"  yaml:"type,omitempty"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	Name  string `json:"name,omitempty"  yaml:"name,omitempty"`
}

// UsagePlanKeyCreateRequest is the body of CreateUsagePlanKey.
type UsagePlanKeyCreateRequest struct {
	KeyID   string `json:"keyId"   yaml:"keyId"`
	KeyType string `json:"keyType" yaml:"keyType"`
}

// KeyTypeAPIKey is the only supported usage plan key type.
const KeyTypeAPIKey = "API_KEY"

// UsagePlanKeyListOptions are the options of GetUsagePlanKeys.
type UsagePlanKeyListOptions struct {
	ListOptions
	NameQuery string
}

// UsageOptions are the options of GetUsage. Dates use the yyyy-MM-dd format.
type UsageOptions struct {
	ListOptions
	StartDate string
	EndDate   string
	KeyID     string
}

// Usage is the usage data of a usage plan. Items maps an API key ID to daily
// [used, remaining] pairs.
type Usage struct {
	UsagePlanID string               `json:"usagePlanId,omitempty" yaml:"usagePlanId,omitempty"`
	StartDate   string               `json:"startDate,omitempty"   yaml:"startDate,omitempty"`
	EndDate     string               `json:"endDate,omitempty"     yaml:"endDate,omitempty"`
	Position    string               `json:"position,omitempty"    yaml:"position,omitempty"`
	Items       map[string][][]int64 `json:"values,omitempty"      yaml:"items,omitempty"`
}

// Domain names

// DomainName is a custom domain name.
type DomainName struct {
	DomainName               string                 `json:"domainName"                         yaml:"domainName"`
	CertificateName          string                 `json:"certificateName,omitempty"          yaml:"certificateName,omitempty"`
	CertificateArn           string                 `json:"certificateArn,omitempty"           yaml:"certificateArn,omitempty"`
	CertificateUploadDate    *Timestamp             `json:"certificateUploadDate,omitempty"    yaml:"certificateUploadDate,omitempty"`
	RegionalDomainName       string                 `json:"regionalDomainName,omitempty"       yaml:"regionalDomainName,omitempty"`
	RegionalHostedZoneID     string                 `json:"regionalHostedZoneId,omitempty"     yaml:"regionalHostedZoneId,omitempty"`
	RegionalCertificateName  string                 `json:"regionalCertificateName,omitempty"  yaml:"regionalCertificateName,omitempty"`
	RegionalCertificateArn   string                 `json:"regionalCertificateArn,omitempty"   yaml:"regionalCertificateArn,omitempty"`
	DistributionDomainName   string                 `json:"distributionDomainName,omitempty"   yaml:"distributionDomainName,omitempty"`
	DistributionHostedZoneID string                 `json:"distributionHostedZoneId,omitempty" yaml:"distributionHostedZoneId,omitempty"`
	EndpointConfiguration    *EndpointConfiguration `json:"endpointConfiguration,omitempty"    yaml:"endpointConfiguration,omitempty"`
	DomainNameStatus         string                 `json:"domainNameStatus,omitempty"         yaml:"domainNameStatus,omitempty"`
	DomainNameStatusMessage  string                 `json:"domainNameStatusMessage,omitempty"  yaml:"domainNameStatusMessage,omitempty"`
	SecurityPolicy           string                 `json:"securityPolicy,omitempty"           yaml:"securityPolicy,omitempty"`
	Tags                     Tags                   `json:"tags,omitempty"                     yaml:"tags,omitempty"`
}

// DomainNameCreateRequest is the body of CreateDomainName.
type DomainNameCreateRequest struct {
	DomainName              string                 `json:"domainName"                        yaml:"domainName"`
	CertificateName         string                 `json:"certificateName,omitempty"         yaml:"certificateName,omitempty"`
	CertificateBody         string                 `json:"certificateBody,omitempty"         yaml:"certificateBody,omitempty"`
	CertificatePrivateKey   string                 `json:"certificatePrivateKey,omitempty"   yaml:"-"`
	CertificateChain        string                 `json:"certificateChain,omitempty"        yaml:"certificateChain,omitempty"`
	CertificateArn          string                 `json:"certificateArn,omitempty"          yaml:"certificateArn,omitempty"`
	RegionalCertificateName string                 `json:"regionalCertificateName,omitempty" yaml:"regionalCertificateName,omitempty"`
	RegionalCertificateArn  string                 `json:"regionalCertificateArn,omitempty"  yaml:"regionalCertificateArn,omitempty"`
	EndpointConfiguration   *EndpointConfiguration `json:"endpointConfiguration,omitempty"   yaml:"endpointConfiguration,omitempty"`
	SecurityPolicy          string                 `json:"securityPolicy,omitempty"          yaml:"securityPolicy,omitempty"`
	Tags                    Tags                   `json:"tags,omitempty"                    yaml:"tags,omitempty"`
}

// BasePathMapping maps a path of a custom domain to a stage.
type BasePathMapping struct {
	BasePath  string `json:"basePath"            yaml:"basePath"`
	RestAPIID string `json:"restApiId"           yaml:"restApiId"`
	Stage     string `json:"stage,omitempty"     yaml:"stage,omitempty"`
}

// BasePathMappingCreateRequest is the body of CreateBasePathMapping.
type BasePathMappingCreateRequest struct {
	BasePath  string `json:"basePath,omitempty" yaml:"basePath,omitempty"`
	RestAPIID string `json:"restApiId"          yaml:"restApiId"`
	Stage     string `json:"stage,omitempty"    yaml:"stage,omitempty"`
}

// EmptyBasePath is the base path value that addresses the root mapping.
const EmptyBasePath = "(none)"

// VPC links

// VpcLink connects API Gateway to network load balancers in a VPC.
type VpcLink struct {
	ID            string   `json:"id"                      yaml:"id"`
	Name          string   `json:"name"                    yaml:"name"`
	Description   string   `json:"description,omitempty"   yaml:"description,omitempty"`
	TargetArns    []string `json:"targetArns,omitempty"    yaml:"targetArns,omitempty"`
	Status        string   `json:"status,omitempty"        yaml:"status,omitempty"`
	StatusMessage string   `json:"statusMessage,omitempty" yaml:"statusMessage,omitempty"`
	Tags          Tags     `json:"tags,omitempty"          yaml:"tags,omitempty"`
}

// VPC link statuses.
const (
	VpcLinkStatusAvailable = "AVAILABLE"
	VpcLinkStatusPending   = "PENDING"
	VpcLinkStatusDeleting  = "DELETING"
	VpcLinkStatusFailed    = "FAILED"
)

// VpcLinkCreateRequest is the body of CreateVpcLink.
type VpcLinkCreateRequest struct {
	Name        string   `json:"name"                  yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	TargetArns  []string `json:"targetArns"            yaml:"targetArns"`
	Tags        Tags     `json:"tags,omitempty"        yaml:"tags,omitempty"`
}

// Client certificates

// ClientCertificate is used by API Gateway to authenticate to backends.
type ClientCertificate struct {
	ClientCertificateID   string     `json:"clientCertificateId"             yaml:"clientCertificateId"`
	Description           string     `json:"description,omitempty"           yaml:"description,omitempty"`
	PemEncodedCertificate string     `json:"pemEncodedCertificate,omitempty" yaml:"pemEncodedCertificate,omitempty"`
	CreatedDate           *Timestamp `json:"createdDate,omitempty"           yaml:"createdDate,omitempty"`
	ExpirationDate        *Timestamp `json:"expirationDate,omitempty"        yaml:"expirationDate,omitempty"`
	Tags                  Tags       `json:"tags,omitempty"                  yaml:"tags,omitempty"`
}

// ClientCertificateGenerateRequest is the body of GenerateClientCertificate.
type ClientCertificateGenerateRequest struct {
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        Tags   `json:"tags,omitempty"        yaml:"tags,omitempty"`
}

// Account

// Account holds account-level API Gateway settings.
type Account struct {
	CloudwatchRoleArn string            `json:"cloudwatchRoleArn,omitempty" yaml:"cloudwatchRoleArn,omitempty"`
	ThrottleSettings  *ThrottleSettings `json:"throttleSettings,omitempty"  yaml:"throttleSettings,omitempty"`
	Features          []string          `json:"features,omitempty"          yaml:"features,omitempty"`
	APIKeyVersion     string            `json:"apiKeyVersion,omitempty"     yaml:"apiKeyVersion,omitempty"`
}

// tagsBody is the wire shape of GetTags and TagResource.
type tagsBody struct {
	Tags Tags `json:"tags"`
}

// NewTagsBody wraps tags in the wire shape used by the tagging operations.
func NewTagsBody(tags Tags) interface{} {
	return &tagsBody{Tags: tags}
}

// DecodeTags decodes a GetTags response body.
func DecodeTags(data []byte) (Tags, error) {
	var body tagsBody
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("decoding tags: %w", err)
	}

	if body.Tags == nil {
		body.Tags = Tags{}
	}

	return body.Tags, nil
}

// Documentation

// DocumentationPartLocation identifies the API entity a documentation part
// applies to.
type DocumentationPartLocation struct {
	Type       string `json:"type"                 yaml:"type"`
	Path       string `json:"path,omitempty"       yaml:"path,omitempty"`
	Method     string `json:"method,omitempty"     yaml:"method,omitempty"`
	StatusCode string `json:"statusCode,omitempty" yaml:"statusCode,omitempty"`
	Name       string `json:"name,omitempty"       yaml:"name,omitempty"`
}

// DocumentationPart is a piece of API documentation.
type DocumentationPart struct {
	ID         string                    `json:"id"                   yaml:"id"`
	Location   DocumentationPartLocation `json:"location"             yaml:"location"`
	Properties string                    `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// DocumentationPartCreateRequest is the body of CreateDocumentationPart.
type DocumentationPartCreateRequest struct {
	Location   DocumentationPartLocation `json:"location"   yaml:"location"`
	Properties string                    `json:"properties" yaml:"properties"`
}

// DocumentationPartListOptions are the options of GetDocumentationParts.
type DocumentationPartListOptions struct {
	ListOptions
	Type           string
	NameQuery      string
	Path           string
	LocationStatus string
}

// DocumentationPartIDs is the result of ImportDocumentationParts.
type DocumentationPartIDs struct {
	IDs      []string `json:"ids,omitempty"      yaml:"ids,omitempty"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// DocumentationVersion is a published snapshot of documentation.
type DocumentationVersion struct {
	Version     string     `json:"version"               yaml:"version"`
	CreatedDate *Timestamp `json:"createdDate,omitempty" yaml:"createdDate,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
}

// DocumentationVersionCreateRequest is the body of CreateDocumentationVersion.
type DocumentationVersionCreateRequest struct {
	DocumentationVersion string `json:"documentationVersion"  yaml:"documentationVersion"`
	StageName            string `json:"stageName,omitempty"   yaml:"stageName,omitempty"`
	Description          string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Exports and SDKs

// ExportResult is an exported API definition or a generated SDK.
type ExportResult struct {
	ContentType        string `json:"contentType"                  yaml:"contentType"`
	ContentDisposition string `json:"contentDisposition,omitempty" yaml:"contentDisposition,omitempty"`
	Body               []byte `json:"-"                            yaml:"-"`
}

// ExportOptions are the options of GetExport.
type ExportOptions struct {
	// Accepts is the requested content type, "application/json" or
	// "application/yaml".
	Accepts    string
	Parameters map[string]string
}

// Export types.
const (
	ExportTypeOAS30   = "oas30"
	ExportTypeSwagger = "swagger"
)

// SdkConfigurationProperty describes a configuration input of an SDK type.
type SdkConfigurationProperty struct {
	Name         string `json:"name"                   yaml:"name"`
	FriendlyName string `json:"friendlyName,omitempty" yaml:"friendlyName,omitempty"`
	Description  string `json:"description,omitempty"  yaml:"description,omitempty"`
	Required     bool   `json:"required"               yaml:"required"`
	DefaultValue string `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
}

// SdkType is an SDK platform that can be generated.
type SdkType struct {
	ID                      string                     `json:"id"                                yaml:"id"`
	FriendlyName            string                     `json:"friendlyName,omitempty"            yaml:"friendlyName,omitempty"`
	Description             string                     `json:"description,omitempty"             yaml:"description,omitempty"`
	ConfigurationProperties []SdkConfigurationProperty `json:"configurationProperties,omitempty" yaml:"configurationProperties,omitempty"`
}

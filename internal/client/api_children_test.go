package client

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

func TestDeploymentsClient(t *testing.T) {
	t.Parallel()

	deployment := map[string]interface{}{"id": "d1", "description": "first", "createdDate": 1700000000}

	RunOperationTests(t, []TestOperation{
		{
			Name:       "create",
			Method:     http.MethodPost,
			Path:       "/restapis/a1/deployments",
			Body:       `{"stageName":"prod","description":"first"}`,
			StatusCode: http.StatusCreated,
			Response:   deployment,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Deployments().Create(ctx, "a1", &apigw.DeploymentCreateRequest{StageName: "prod", Description: "first"})
			},
		},
		{
			Name:       "create with nil request",
			Method:     http.MethodPost,
			Path:       "/restapis/a1/deployments",
			Body:       `{}`,
			StatusCode: http.StatusCreated,
			Response:   deployment,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Deployments().Create(ctx, "a1", nil)
			},
		},
		{
			Name:   "get with api summary",
			Method: http.MethodGet,
			Path:   "/restapis/a1/deployments/d1",
			Query:  url.Values{"embed": {"apisummary"}},
			Response: map[string]interface{}{
				"id": "d1",
				"apiSummary": map[string]interface{}{
					"/orders": map[string]interface{}{"GET": map[string]interface{}{"authorizationType": "NONE"}},
				},
			},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Deployments().Get(ctx, "a1", "d1", "apisummary")
			},
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				got, ok := result.(*apigw.Deployment)
				require.True(t, ok)
				assert.Equal(t, "NONE", got.APISummary["/orders"]["GET"].AuthorizationType)
			},
		},
		{
			Name:     "list",
			Method:   http.MethodGet,
			Path:     "/restapis/a1/deployments",
			Response: map[string]interface{}{"item": []interface{}{deployment}},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Deployments().List(ctx, "a1", nil)
			},
		},
		{
			Name:     "update",
			Method:   http.MethodPatch,
			Path:     "/restapis/a1/deployments/d1",
			Body:     patchName,
			Response: deployment,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Deployments().Update(ctx, "a1", "d1", renamePatch())
			},
		},
		{
			Name:       "delete",
			Method:     http.MethodDelete,
			Path:       "/restapis/a1/deployments/d1",
			StatusCode: http.StatusAccepted,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return nil, c.Deployments().Delete(ctx, "a1", "d1")
			},
		},
	})
}

func TestStagesClient(t *testing.T) {
	t.Parallel()

	stage := map[string]interface{}{"stageName": "prod", "deploymentId": "d1", "variables": map[string]string{"env": "prod"}}

	RunOperationTests(t, []TestOperation{
		{
			Name:       "create",
			Method:     http.MethodPost,
			Path:       "/restapis/a1/stages",
			Body:       `{"stageName":"prod","deploymentId":"d1"}`,
			StatusCode: http.StatusCreated,
			Response:   stage,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Stages().Create(ctx, "a1", &apigw.StageCreateRequest{StageName: "prod", DeploymentID: "d1"})
			},
		},
		{
			Name:     "get",
			Method:   http.MethodGet,
			Path:     "/restapis/a1/stages/prod",
			Response: stage,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Stages().Get(ctx, "a1", "prod")
			},
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				got, ok := result.(*apigw.Stage)
				require.True(t, ok)
				assert.Equal(t, "prod", got.Variables["env"])
			},
		},
		{
			Name:     "list by deployment",
			Method:   http.MethodGet,
			Path:     "/restapis/a1/stages",
			Query:    url.Values{"deploymentId": {"d1"}},
			Response: map[string]interface{}{"item": []interface{}{stage, map[string]interface{}{"stageName": "dev", "deploymentId": "d1"}}},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Stages().List(ctx, "a1", "d1")
			},
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				stages, ok := result.([]apigw.Stage)
				require.True(t, ok)
				require.Len(t, stages, 2)
				assert.Equal(t, "dev", stages[1].StageName)
			},
		},
		{
			Name:     "update",
			Method:   http.MethodPatch,
			Path:     "/restapis/a1/stages/prod",
			Body:     patchName,
			Response: stage,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Stages().Update(ctx, "a1", "prod", renamePatch())
			},
		},
		{
			Name:       "delete",
			Method:     http.MethodDelete,
			Path:       "/restapis/a1/stages/prod",
			StatusCode: http.StatusAccepted,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return nil, c.Stages().Delete(ctx, "a1", "prod")
			},
		},
		{
			Name:       "flush cache",
			Method:     http.MethodDelete,
			Path:       "/restapis/a1/stages/prod/cache/data",
			StatusCode: http.StatusAccepted,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return nil, c.Stages().FlushCache(ctx, "a1", "prod")
			},
		},
		{
			Name:       "flush authorizers cache",
			Method:     http.MethodDelete,
			Path:       "/restapis/a1/stages/prod/cache/authorizers",
			StatusCode: http.StatusAccepted,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return nil, c.Stages().FlushAuthorizersCache(ctx, "a1", "prod")
			},
		},
	})
}

func TestAuthorizersClient(t *testing.T) {
	t.Parallel()

	authorizer := map[string]interface{}{"id": "au1", "name": "jwt", "type": "TOKEN", "identitySource": "method.request.header.Authorization"}

	RunOperationTests(t, []TestOperation{
		{
			Name:       "create",
			Method:     http.MethodPost,
			Path:       "/restapis/a1/authorizers",
			Body:       `{"name":"jwt","type":"TOKEN","identitySource":"method.request.header.Authorization"}`,
			StatusCode: http.StatusCreated,
			Response:   authorizer,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Authorizers().Create(ctx, "a1", &apigw.AuthorizerCreateRequest{
					Name:           "jwt",
					Type:           apigw.AuthorizerTypeToken,
					IdentitySource: "method.request.header.Authorization",
				})
			},
		},
		{
			Name:     "get",
			Method:   http.MethodGet,
			Path:     "/restapis/a1/authorizers/au1",
			Response: authorizer,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Authorizers().Get(ctx, "a1", "au1")
			},
		},
		{
			Name:     "list",
			Method:   http.MethodGet,
			Path:     "/restapis/a1/authorizers",
			Query:    url.Values{"limit": {"5"}},
			Response: map[string]interface{}{"item": []interface{}{authorizer}},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Authorizers().List(ctx, "a1", apigw.NewListOptions().WithLimit(5))
			},
		},
		{
			Name:     "update",
			Method:   http.MethodPatch,
			Path:     "/restapis/a1/authorizers/au1",
			Body:     patchName,
			Response: authorizer,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Authorizers().Update(ctx, "a1", "au1", renamePatch())
			},
		},
		{
			Name:       "delete",
			Method:     http.MethodDelete,
			Path:       "/restapis/a1/authorizers/au1",
			StatusCode: http.StatusAccepted,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return nil, c.Authorizers().Delete(ctx, "a1", "au1")
			},
		},
		{
			Name:     "test invoke",
			Method:   http.MethodPost,
			Path:     "/restapis/a1/authorizers/au1",
			Body:     `{"headers":{"Authorization":"Bearer t"}}`,
			Response: map[string]interface{}{"clientStatus": 200, "principalId": "user-1"},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Authorizers().TestInvoke(ctx, "a1", "au1", &apigw.TestInvokeAuthorizerRequest{
					Headers: map[string]string{"Authorization": "Bearer t"},
				})
			},
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				got, ok := result.(*apigw.TestInvokeAuthorizerResult)
				require.True(t, ok)
				assert.Equal(t, "user-1", got.PrincipalID)
			},
		},
	})
}

func TestModelsClient(t *testing.T) {
	t.Parallel()

	model := map[string]interface{}{"id": "m1", "name": "Order", "contentType": "application/json", "schema": "{}"}

	RunOperationTests(t, []TestOperation{
		{
			Name:       "create",
			Method:     http.MethodPost,
			Path:       "/restapis/a1/models",
			Body:       `{"name":"Order","contentType":"application/json","schema":"{}"}`,
			StatusCode: http.StatusCreated,
			Response:   model,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Models().Create(ctx, "a1", &apigw.ModelCreateRequest{Name: "Order", ContentType: "application/json", Schema: "{}"})
			},
		},
		{
			Name:     "get flattened",
			Method:   http.MethodGet,
			Path:     "/restapis/a1/models/Order",
			Query:    url.Values{"flatten": {"true"}},
			Response: model,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Models().Get(ctx, "a1", "Order", true)
			},
		},
		{
			Name:     "list",
			Method:   http.MethodGet,
			Path:     "/restapis/a1/models",
			Response: map[string]interface{}{"item": []interface{}{model}},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Models().List(ctx, "a1", nil)
			},
		},
		{
			Name:     "update",
			Method:   http.MethodPatch,
			Path:     "/restapis/a1/models/Order",
			Body:     patchName,
			Response: model,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Models().Update(ctx, "a1", "Order", renamePatch())
			},
		},
		{
			Name:       "delete",
			Method:     http.MethodDelete,
			Path:       "/restapis/a1/models/Order",
			StatusCode: http.StatusAccepted,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return nil, c.Models().Delete(ctx, "a1", "Order")
			},
		},
		{
			Name:     "template",
			Method:   http.MethodGet,
			Path:     "/restapis/a1/models/Order/default_template",
			Response: map[string]interface{}{"value": "#set($inputRoot = $input.path('$'))"},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Models().GetTemplate(ctx, "a1", "Order")
			},
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				got, ok := result.(*apigw.Template)
				require.True(t, ok)
				assert.Contains(t, got.Value, "$inputRoot")
			},
		},
	})
}

func TestRequestValidatorsClient(t *testing.T) {
	t.Parallel()

	validator := map[string]interface{}{"id": "v1", "name": "body-only", "validateRequestBody": true}

	RunOperationTests(t, []TestOperation{
		{
			Name:       "create",
			Method:     http.MethodPost,
			Path:       "/restapis/a1/requestvalidators",
			Body:       `{"name":"body-only","validateRequestBody":true,"validateRequestParameters":false}`,
			StatusCode: http.StatusCreated,
			Response:   validator,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.RequestValidators().Create(ctx, "a1", &apigw.RequestValidatorCreateRequest{Name: "body-only", ValidateRequestBody: true})
			},
		},
		{
			Name:     "get",
			Method:   http.MethodGet,
			Path:     "/restapis/a1/requestvalidators/v1",
			Response: validator,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.RequestValidators().Get(ctx, "a1", "v1")
			},
		},
		{
			Name:     "list",
			Method:   http.MethodGet,
			Path:     "/restapis/a1/requestvalidators",
			Response: map[string]interface{}{"item": []interface{}{validator}},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.RequestValidators().List(ctx, "a1", nil)
			},
		},
		{
			Name:     "update",
			Method:   http.MethodPatch,
			Path:     "/restapis/a1/requestvalidators/v1",
			Body:     patchName,
			Response: validator,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.RequestValidators().Update(ctx, "a1", "v1", renamePatch())
			},
		},
		{
			Name:       "delete",
			Method:     http.MethodDelete,
			Path:       "/restapis/a1/requestvalidators/v1",
			StatusCode: http.StatusAccepted,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return nil, c.RequestValidators().Delete(ctx, "a1", "v1")
			},
		},
	})
}

func TestGatewayResponsesClient(t *testing.T) {
	t.Parallel()

	response := map[string]interface{}{"responseType": "DEFAULT_4XX", "statusCode": "400", "defaultResponse": false}

	RunOperationTests(t, []TestOperation{
		{
			Name:       "put",
			Method:     http.MethodPut,
			Path:       "/restapis/a1/gatewayresponses/DEFAULT_4XX",
			Body:       `{"statusCode":"400","responseTemplates":{"application/json":"{\"message\":$context.error.messageString}"}}`,
			StatusCode: http.StatusCreated,
			Response:   response,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.GatewayResponses().Put(ctx, "a1", "DEFAULT_4XX", &apigw.GatewayResponsePutRequest{
					StatusCode:        "400",
					ResponseTemplates: map[string]string{"application/json": `{"message":$context.error.messageString}`},
				})
			},
		},
		{
			Name:     "get",
			Method:   http.MethodGet,
			Path:     "/restapis/a1/gatewayresponses/DEFAULT_4XX",
			Response: response,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.GatewayResponses().Get(ctx, "a1", "DEFAULT_4XX")
			},
		},
		{
			Name:     "list",
			Method:   http.MethodGet,
			Path:     "/restapis/a1/gatewayresponses",
			Response: map[string]interface{}{"item": []interface{}{response}},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.GatewayResponses().List(ctx, "a1", nil)
			},
		},
		{
			Name:     "update",
			Method:   http.MethodPatch,
			Path:     "/restapis/a1/gatewayresponses/DEFAULT_4XX",
			Body:     patchName,
			Response: response,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.GatewayResponses().Update(ctx, "a1", "DEFAULT_4XX", renamePatch())
			},
		},
		{
			Name:       "delete",
			Method:     http.MethodDelete,
			Path:       "/restapis/a1/gatewayresponses/DEFAULT_4XX",
			StatusCode: http.StatusAccepted,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return nil, c.GatewayResponses().Delete(ctx, "a1", "DEFAULT_4XX")
			},
		},
	})
}

func TestDocumentationClient(t *testing.T) {
	t.Parallel()

	part := map[string]interface{}{"id": "dp1", "location": map[string]string{"type": "API"}, "properties": `{"info":"orders"}`}
	version := map[string]interface{}{"version": "v1", "createdDate": 1700000000}

	RunOperationTests(t, []TestOperation{
		{
			Name:       "create part",
			Method:     http.MethodPost,
			Path:       "/restapis/a1/documentation/parts",
			Body:       `{"location":{"type":"API"},"properties":"{\"info\":\"orders\"}"}`,
			StatusCode: http.StatusCreated,
			Response:   part,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Documentation().CreatePart(ctx, "a1", &apigw.DocumentationPartCreateRequest{
					Location:   apigw.DocumentationPartLocation{Type: "API"},
					Properties: `{"info":"orders"}`,
				})
			},
		},
		{
			Name:     "get part",
			Method:   http.MethodGet,
			Path:     "/restapis/a1/documentation/parts/dp1",
			Response: part,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Documentation().GetPart(ctx, "a1", "dp1")
			},
		},
		{
			Name:     "list parts with filters",
			Method:   http.MethodGet,
			Path:     "/restapis/a1/documentation/parts",
			Query:    url.Values{"type": {"METHOD"}, "path": {"/orders"}, "locationStatus": {"DOCUMENTED"}},
			Response: map[string]interface{}{"item": []interface{}{part}},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Documentation().ListParts(ctx, "a1", &apigw.DocumentationPartListOptions{
					Type:           "METHOD",
					Path:           "/orders",
					LocationStatus: "DOCUMENTED",
				})
			},
		},
		{
			Name:     "update part",
			Method:   http.MethodPatch,
			Path:     "/restapis/a1/documentation/parts/dp1",
			Body:     patchName,
			Response: part,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Documentation().UpdatePart(ctx, "a1", "dp1", renamePatch())
			},
		},
		{
			Name:       "delete part",
			Method:     http.MethodDelete,
			Path:       "/restapis/a1/documentation/parts/dp1",
			StatusCode: http.StatusAccepted,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return nil, c.Documentation().DeletePart(ctx, "a1", "dp1")
			},
		},
		{
			Name:     "import parts",
			Method:   http.MethodPut,
			Path:     "/restapis/a1/documentation/parts",
			Query:    url.Values{"mode": {"overwrite"}, "failonwarnings": {"true"}},
			RawBody:  `{"swagger":"2.0"}`,
			Response: map[string]interface{}{"ids": []string{"dp1", "dp2"}, "warnings": []string{"unused"}},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Documentation().ImportParts(ctx, "a1", []byte(`{"swagger":"2.0"}`), apigw.ImportModeOverwrite, true)
			},
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				got, ok := result.(*apigw.DocumentationPartIDs)
				require.True(t, ok)
				assert.Equal(t, []string{"dp1", "dp2"}, got.IDs)
				assert.Equal(t, []string{"unused"}, got.Warnings)
			},
		},
		{
			Name:       "create version",
			Method:     http.MethodPost,
			Path:       "/restapis/a1/documentation/versions",
			Body:       `{"documentationVersion":"v1","stageName":"prod"}`,
			StatusCode: http.StatusCreated,
			Response:   version,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Documentation().CreateVersion(ctx, "a1", &apigw.DocumentationVersionCreateRequest{DocumentationVersion: "v1", StageName: "prod"})
			},
		},
		{
			Name:     "get version",
			Method:   http.MethodGet,
			Path:     "/restapis/a1/documentation/versions/v1",
			Response: version,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Documentation().GetVersion(ctx, "a1", "v1")
			},
		},
		{
			Name:     "list versions",
			Method:   http.MethodGet,
			Path:     "/restapis/a1/documentation/versions",
			Response: map[string]interface{}{"item": []interface{}{version}},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Documentation().ListVersions(ctx, "a1", nil)
			},
		},
		{
			Name:     "update version",
			Method:   http.MethodPatch,
			Path:     "/restapis/a1/documentation/versions/v1",
			Body:     patchName,
			Response: version,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Documentation().UpdateVersion(ctx, "a1", "v1", renamePatch())
			},
		},
		{
			Name:       "delete version",
			Method:     http.MethodDelete,
			Path:       "/restapis/a1/documentation/versions/v1",
			StatusCode: http.StatusAccepted,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return nil, c.Documentation().DeleteVersion(ctx, "a1", "v1")
			},
		},
	})
}

func TestExportsClient(t *testing.T) {
	t.Parallel()

	RunOperationTests(t, []TestOperation{
		{
			Name:     "export as yaml",
			Method:   http.MethodGet,
			Path:     "/restapis/a1/stages/prod/exports/oas30",
			Query:    url.Values{"extensions": {"apigateway"}},
			Header:   map[string]string{"Accept": "application/yaml"},
			Response: "openapi: 3.0.1\n",
			ResponseHeaders: map[string]string{
				"Content-Type":        "application/yaml",
				"Content-Disposition": `attachment; filename="orders-prod-oas30.yaml"`,
			},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Exports().GetExport(ctx, "a1", "prod", apigw.ExportTypeOAS30, &apigw.ExportOptions{
					Accepts:    "application/yaml",
					Parameters: map[string]string{"extensions": "apigateway"},
				})
			},
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				got, ok := result.(*apigw.ExportResult)
				require.True(t, ok)
				assert.Equal(t, "application/yaml", got.ContentType)
				assert.Contains(t, got.ContentDisposition, "orders-prod-oas30.yaml")
				assert.Equal(t, "openapi: 3.0.1\n", string(got.Body))
			},
		},
		{
			Name:            "sdk",
			Method:          http.MethodGet,
			Path:            "/restapis/a1/stages/prod/sdks/javascript",
			Response:        "PK\x03\x04",
			ResponseHeaders: map[string]string{"Content-Type": "application/octet-stream"},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Exports().GetSdk(ctx, "a1", "prod", "javascript", nil)
			},
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				got, ok := result.(*apigw.ExportResult)
				require.True(t, ok)
				assert.Equal(t, "PK\x03\x04", string(got.Body))
			},
		},
		{
			Name:     "sdk type",
			Method:   http.MethodGet,
			Path:     "/sdktypes/java",
			Response: map[string]interface{}{"id": "java", "friendlyName": "Java SDK"},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Exports().GetSdkType(ctx, "java")
			},
		},
		{
			Name:     "sdk types",
			Method:   http.MethodGet,
			Path:     "/sdktypes",
			Response: map[string]interface{}{"item": []interface{}{map[string]string{"id": "java"}, map[string]string{"id": "ruby"}}},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Exports().ListSdkTypes(ctx, nil)
			},
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				got, ok := result.(*apigw.Page[apigw.SdkType])
				require.True(t, ok)
				assert.Len(t, got.Items, 2)
			},
		},
	})
}

func TestAPIChildClients_MissingParams(t *testing.T) {
	t.Parallel()

	RunMissingParamTests(t, []TestMissingParam{
		{Name: "deployment", Param: "deploymentId", Call: func(ctx context.Context, c *Client) error {
			return c.Deployments().Delete(ctx, "a1", "")
		}},
		{Name: "stage", Param: "stageName", Call: func(ctx context.Context, c *Client) error {
			return c.Stages().FlushCache(ctx, "a1", "")
		}},
		{Name: "stages list", Param: "restApiId", Call: func(ctx context.Context, c *Client) error {
			_, err := c.Stages().List(ctx, "", "")

			return err
		}},
		{Name: "authorizer", Param: "authorizerId", Call: func(ctx context.Context, c *Client) error {
			_, err := c.Authorizers().TestInvoke(ctx, "a1", "", nil)

			return err
		}},
		{Name: "model", Param: "modelName", Call: func(ctx context.Context, c *Client) error {
			_, err := c.Models().GetTemplate(ctx, "a1", "")

			return err
		}},
		{Name: "gateway response", Param: "responseType", Call: func(ctx context.Context, c *Client) error {
			_, err := c.GatewayResponses().Get(ctx, "a1", "")

			return err
		}},
		{Name: "documentation import body", Param: "body", Call: func(ctx context.Context, c *Client) error {
			_, err := c.Documentation().ImportParts(ctx, "a1", nil, "", false)

			return err
		}},
		{Name: "export type", Param: "exportType", Call: func(ctx context.Context, c *Client) error {
			_, err := c.Exports().GetExport(ctx, "a1", "prod", "", nil)

			return err
		}},
	})
}

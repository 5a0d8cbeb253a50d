// Package apigwclient provides the primary entry point for constructing an
// API Gateway control-plane client that implements the apigw.Client interface.
//
// It layers configuration, credential resolution and the signing HTTP
// transport on top of the resource interfaces and types defined in the apigw
// package. Most applications build a client here, then use the returned
// apigw.Client to reach the resource clients, for example RestAPIs(),
// Stages() or UsagePlans().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/apigw/pkg/apigw"
//	  "github.com/fivetwenty-io/apigw/pkg/apigwclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Credentials from the environment or ~/.aws, region from AWS_REGION.
//	  cli, err := apigwclient.New(ctx, &apigw.Config{})
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with fixed keys:
//	  cli, err = apigwclient.NewWithStaticCredentials(ctx, "eu-west-1", "AKIA...", "secret")
//	  if err != nil { log.Fatal(err) }
//
//	  page, err := cli.RestAPIs().List(ctx, apigw.NewListOptions().WithLimit(25))
//	  if err != nil { log.Fatal(err) }
//	  _ = page
//	}
//
// # Endpoints
//
// Without Config.APIEndpoint the endpoint is derived from the region. An
// endpoint without a scheme is completed with "https://". NewWithEndpoint
// builds an unsigned client, useful against LocalStack and similar emulators.
//
// # Asynchronous calls
//
// Every resource call is synchronous. Wrap it in an apigw.ReturningRunnable to
// run it on a goroutine and collect the result later.
package apigwclient

// Command lookup-lambda serves the Roblox lookup endpoint as an API Gateway
// v2 (HTTP API) lambda integration.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"github.com/prognoshealth/rbxlookup/config"
	"github.com/prognoshealth/rbxlookup/lambdautils"
	"github.com/prognoshealth/rbxlookup/lookup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed loading configuration")
	}

	if err := lambdautils.SetupLogging(nil, cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("failed setting up logging")
	}

	router := lookup.NewRouter(cfg.NewHandler())
	if !router.Valid() {
		log.Fatal().Err(router.BuildErrors()).Msg("failed building router")
	}

	lambda.Start(func(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayProxyResponse, error) {
		return router.Route(lambdautils.WithLogger(ctx), request)
	})
}

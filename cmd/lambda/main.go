// Package main is the entry point for the personajes Lambda function.
package main

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"

	"github.com/Cali99-droid/technical-test-smrtl/internal/config"
	"github.com/Cali99-droid/technical-test-smrtl/internal/handler"
	"github.com/Cali99-droid/technical-test-smrtl/internal/logger"
	"github.com/Cali99-droid/technical-test-smrtl/internal/router"
	"github.com/Cali99-droid/technical-test-smrtl/internal/store"
	"github.com/Cali99-droid/technical-test-smrtl/internal/swapi"
)

type app struct {
	router *router.Router
	log    *zap.Logger
}

func main() {
	ctx := context.Background()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	defer log.Sync()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatal("no se pudo cargar la configuración de AWS", zap.Error(err))
	}

	repo := store.New(dynamodb.NewFromConfig(awsCfg), cfg.TableName)
	catalog := swapi.New(cfg.CatalogBaseURL, cfg.CatalogTimeout)
	h := handler.New(catalog, repo, log, cfg.IsProd())

	a := &app{router: router.New(h), log: log}
	lambda.Start(a.handleRequest)
}

func (a *app) handleRequest(ctx context.Context, event json.RawMessage) (interface{}, error) {
	// Warmup pings are not API Gateway requests; handle them first.
	if warmup, ok := IsWarmupEvent(event); ok {
		return HandleWarmup(ctx, warmup)
	}

	var req events.APIGatewayProxyRequest
	if err := json.Unmarshal(event, &req); err != nil {
		return nil, err
	}

	a.log.Info("petición recibida",
		zap.String("method", req.HTTPMethod),
		zap.String("path", req.Path))

	return a.router.Dispatch(ctx, req), nil
}

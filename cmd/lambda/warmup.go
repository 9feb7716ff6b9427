package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

// CloudWatch Events ping the function periodically with {"source":"warmup"}
// so instances stay warm between real requests.
const (
	warmupSource = "warmup"

	// Instances must overlap briefly for extra concurrency to take hold.
	warmupDelay = 75 * time.Millisecond
)

type warmupEvent struct {
	Source      string `json:"source"`
	Concurrency int    `json:"concurrency"`
}

type warmupResult struct {
	Status          string `json:"status"`
	InstancesWarmed int    `json:"instancesWarmed"`
}

// IsWarmupEvent reports whether the raw event is a warmup ping rather
// than an API Gateway request.
func IsWarmupEvent(event json.RawMessage) (*warmupEvent, bool) {
	var w warmupEvent
	if err := json.Unmarshal(event, &w); err != nil {
		return nil, false
	}
	if w.Source != warmupSource {
		return nil, false
	}
	return &w, true
}

// HandleWarmup answers a warmup ping. When the ping asks for extra
// concurrency, the function re-invokes itself asynchronously that many
// times; the children carry concurrency 0 so the fan-out stops there.
func HandleWarmup(ctx context.Context, w *warmupEvent) (interface{}, error) {
	warmed := 1 // this instance

	if w.Concurrency > 0 {
		if n, err := spawnWarmInstances(ctx, w.Concurrency); err == nil {
			warmed += n
		}
	}

	time.Sleep(warmupDelay)

	return map[string]interface{}{
		"statusCode": 200,
		"body":       warmupResult{Status: "warm", InstancesWarmed: warmed},
	}, nil
}

func spawnWarmInstances(ctx context.Context, count int) (int, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return 0, err
	}
	client := lambdasdk.NewFromConfig(cfg)

	payload, err := json.Marshal(warmupEvent{Source: warmupSource})
	if err != nil {
		return 0, err
	}

	functionName := os.Getenv("AWS_LAMBDA_FUNCTION_NAME")

	spawned := 0
	for i := 0; i < count; i++ {
		_, err := client.Invoke(ctx, &lambdasdk.InvokeInput{
			FunctionName:   aws.String(functionName),
			InvocationType: types.InvocationTypeEvent,
			Payload:        payload,
		})
		if err != nil {
			return spawned, err
		}
		spawned++
	}
	return spawned, nil
}

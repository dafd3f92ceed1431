package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/ShareFrame/order-handler/config"
	"github.com/ShareFrame/order-handler/logger"
	"github.com/ShareFrame/order-handler/processor"
	"github.com/ShareFrame/order-handler/storage"
)

// handler is built once per cold start and reused by every invocation.
var handler *processor.Processor

func init() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}

	client, err := storage.NewDynamoClient(context.TODO(), cfg.AWS.Region, cfg.AWS.DynamoDBEndpoint)
	if err != nil {
		zl.Fatal("failed to create dynamodb client", zap.Error(err))
	}

	table := storage.NewOrderTable(client, cfg.Orders.TableName)
	handler = processor.New(table, zl)

	zl.Info("order handler initialised",
		zap.String("region", cfg.AWS.Region),
		zap.String("table", table.TableName()),
	)
}

func main() {
	lambda.Start(handler.HandleSQSEvent)
}

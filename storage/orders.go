package storage

import (
	"context"
	"fmt"

	"github.com/ShareFrame/order-handler/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDBAPI is the subset of the DynamoDB client the order table uses.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// NewDynamoClient loads the default AWS credential chain for region. A
// non-empty endpoint points the client at e.g. DynamoDB Local.
func NewDynamoClient(ctx context.Context, region, endpoint string) (*dynamodb.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

// OrderTable writes order records with PutItem, so a second write for the
// same orderId replaces the whole item.
type OrderTable struct {
	client    DynamoDBAPI
	tableName string
}

func NewOrderTable(client DynamoDBAPI, tableName string) *OrderTable {
	return &OrderTable{client: client, tableName: tableName}
}

func (t *OrderTable) TableName() string {
	return t.tableName
}

// PutInput builds the request PutOrder sends.
func (t *OrderTable) PutInput(rec models.OrderRecord) (*dynamodb.PutItemInput, error) {
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal order %q: %w", rec.OrderID, err)
	}
	return &dynamodb.PutItemInput{
		TableName: aws.String(t.tableName),
		Item:      item,
	}, nil
}

func (t *OrderTable) PutOrder(ctx context.Context, rec models.OrderRecord) error {
	input, err := t.PutInput(rec)
	if err != nil {
		return err
	}
	if _, err := t.client.PutItem(ctx, input); err != nil {
		return fmt.Errorf("dynamodb put item error: %w", err)
	}
	return nil
}

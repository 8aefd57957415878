package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCountersTableName = "counters"

// idCounter hands out monotonic integer ids via an atomic ADD on the counters
// table. The wire contract predates this service and requires numeric order
// and user ids, which DynamoDB does not generate natively.
//
// Table requirements:
//   - PK: name (string), one item per sequence
type idCounter struct {
	ddb       *dynamodb.Client
	tableName string
}

func newIDCounter(ddb *dynamodb.Client) *idCounter {
	return &idCounter{
		ddb:       ddb,
		tableName: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (c *idCounter) Next(ctx context.Context, sequence string) (int, error) {
	out, err := c.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(c.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: sequence},
		},
		UpdateExpression: aws.String("ADD #current :one"),
		ExpressionAttributeNames: map[string]string{
			"#current": "current",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	attr, ok := out.Attributes["current"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter %q returned no numeric value", sequence)
	}
	return strconv.Atoi(attr.Value)
}

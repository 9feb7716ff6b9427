// Package store persists personaje records in DynamoDB, keyed by id.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"

	"github.com/Cali99-droid/technical-test-smrtl/internal/apperr"
	"github.com/Cali99-droid/technical-test-smrtl/internal/domain"
)

// DynamoAPI is the slice of the DynamoDB client the store uses.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// Store is the DynamoDB-backed record store.
type Store struct {
	db    DynamoAPI
	table string
}

// New builds a Store over the given client and table. An empty table name
// is tolerated here and reported as a Configuration failure on first use.
func New(db DynamoAPI, table string) *Store {
	return &Store{db: db, table: table}
}

// Create persists a record only if no record with the same id exists.
// A duplicate id surfaces as a Conflict.
func (s *Store) Create(ctx context.Context, record map[string]interface{}) error {
	if err := s.ready(); err != nil {
		return err
	}

	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return apperr.Wrap(apperr.Unknown, "no se pudo serializar el personaje", err)
	}

	_, err = s.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		var conflict *types.ConditionalCheckFailedException
		if errors.As(err, &conflict) {
			return apperr.Newf(apperr.Conflict, "ya existe un personaje con el id %v", record[domain.FieldID])
		}
		return s.classify(err)
	}
	return nil
}

// Get returns the record with the given id, or (nil, nil) when absent.
func (s *Store) Get(ctx context.Context, id string) (map[string]interface{}, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	out, err := s.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key:       key(id),
	})
	if err != nil {
		return nil, s.classify(err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	return unmarshalRecord(out.Item)
}

// List returns up to limit records. The limit caps items examined by the
// scan; no pagination token is produced.
func (s *Store) List(ctx context.Context, limit int32) ([]map[string]interface{}, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	out, err := s.db.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.table),
		Limit:     aws.Int32(limit),
	})
	if err != nil {
		return nil, s.classify(err)
	}

	records := make([]map[string]interface{}, 0, len(out.Items))
	for _, item := range out.Items {
		record, err := unmarshalRecord(item)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// Update overwrites the given fields of an existing record. The caller
// is expected to include a fresh editado timestamp among the fields.
// Not reachable through the HTTP surface.
func (s *Store) Update(ctx context.Context, id string, fields map[string]interface{}) (map[string]interface{}, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, apperr.New(apperr.Validation, "no hay campos para actualizar")
	}

	expr := "SET"
	names := make(map[string]string, len(fields))
	values := make(map[string]types.AttributeValue, len(fields))
	i := 0
	for field, value := range fields {
		av, err := attributevalue.Marshal(value)
		if err != nil {
			return nil, apperr.Wrap(apperr.Unknown, "no se pudo serializar el personaje", err)
		}
		if i > 0 {
			expr += ","
		}
		expr += fmt.Sprintf(" #f%d = :v%d", i, i)
		names[fmt.Sprintf("#f%d", i)] = field
		values[fmt.Sprintf(":v%d", i)] = av
		i++
	}

	out, err := s.db.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.table),
		Key:                       key(id),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ConditionExpression:       aws.String("attribute_exists(id)"),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var missing *types.ConditionalCheckFailedException
		if errors.As(err, &missing) {
			return nil, apperr.Newf(apperr.NotFound, "no existe un personaje con el id %s", id)
		}
		return nil, s.classify(err)
	}

	return unmarshalRecord(out.Attributes)
}

// Delete removes a record by id. Not reachable through the HTTP surface.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}

	_, err := s.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key:       key(id),
	})
	if err != nil {
		return s.classify(err)
	}
	return nil
}

func (s *Store) ready() error {
	if s.table == "" {
		return apperr.New(apperr.Configuration, "la variable de entorno PERSONAJES_TABLE no está definida")
	}
	return nil
}

// classify maps an SDK failure to a tagged kind: a modeled API error
// means DynamoDB answered and rejected the call, anything else means it
// could not be reached.
func (s *Store) classify(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apperr.Wrap(apperr.Unknown, "DynamoDB rechazó la operación", err)
	}
	return apperr.Wrap(apperr.Unavailable, "no se pudo contactar DynamoDB", err)
}

func key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		domain.FieldID: &types.AttributeValueMemberS{Value: id},
	}
}

func unmarshalRecord(item map[string]types.AttributeValue) (map[string]interface{}, error) {
	var record map[string]interface{}
	if err := attributevalue.UnmarshalMap(item, &record); err != nil {
		return nil, apperr.Wrap(apperr.Unknown, "no se pudo deserializar el personaje", err)
	}
	return record, nil
}

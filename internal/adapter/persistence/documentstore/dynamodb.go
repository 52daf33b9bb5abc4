package documentstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"limpeza_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultDocumentsTable = "documents"
	collectionIndex       = "collection-index"

	pathAttr       = "path"
	collectionAttr = "collection"
)

// DynamoStore keeps every document in a single DynamoDB table.
//
// Table requirements:
//   - PK: path (string)
//   - GSI: collection-index (PK: collection)
type DynamoStore struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDocumentStore = (*DynamoStore)(nil)

func NewDynamoStore(ddb *dynamodb.Client, tableName string) *DynamoStore {
	if tableName == "" {
		tableName = DefaultDocumentsTable
	}
	return &DynamoStore{ddb: ddb, tableName: tableName}
}

func (s *DynamoStore) Get(ctx context.Context, path string) (map[string]any, error) {
	if err := validatePath(path); err != nil {
		return nil, err
	}
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            pathKey(path),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return fromItem(out.Item)
}

func (s *DynamoStore) Set(ctx context.Context, path string, fields map[string]any, mergeFields bool) error {
	if err := validatePath(path); err != nil {
		return err
	}
	if mergeFields {
		return s.update(ctx, path, fields, false)
	}

	doc, err := normalize(fields)
	if err != nil {
		return err
	}
	doc[pathAttr] = path
	doc[collectionAttr] = collectionOf(path)
	av, err := attributevalue.MarshalMap(doc)
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}

func (s *DynamoStore) Update(ctx context.Context, path string, fields map[string]any) error {
	if err := validatePath(path); err != nil {
		return err
	}
	return s.update(ctx, path, fields, true)
}

func (s *DynamoStore) update(ctx context.Context, path string, fields map[string]any, mustExist bool) error {
	doc, err := normalize(fields)
	if err != nil {
		return err
	}
	doc[collectionAttr] = collectionOf(path)

	expr, names, values, err := buildSetExpression(doc)
	if err != nil {
		return err
	}

	in := &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.tableName),
		Key:                       pathKey(path),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}
	if mustExist {
		in.ConditionExpression = aws.String("attribute_exists(#path)")
		in.ExpressionAttributeNames = mergeNames(names, map[string]string{"#path": pathAttr})
	}

	_, err = s.ddb.UpdateItem(ctx, in)
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrDocumentNotFound
		}
		return err
	}
	return nil
}

func (s *DynamoStore) Delete(ctx context.Context, path string) error {
	if err := validatePath(path); err != nil {
		return err
	}
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key:       pathKey(path),
	})
	return err
}

func (s *DynamoStore) List(ctx context.Context, collectionPath string) ([]map[string]any, error) {
	if err := validateCollection(collectionPath); err != nil {
		return nil, err
	}

	var (
		docs     []map[string]any
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := s.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.tableName),
			IndexName:              aws.String(collectionIndex),
			KeyConditionExpression: aws.String("#collection = :collection"),
			ExpressionAttributeNames: map[string]string{
				"#collection": collectionAttr,
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":collection": &types.AttributeValueMemberS{Value: collectionPath},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			doc, err := fromItem(raw)
			if err != nil {
				return nil, err
			}
			docs = append(docs, doc)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	if docs == nil {
		docs = []map[string]any{}
	}
	return docs, nil
}

// buildSetExpression renders "SET #f0 = :v0, ..." for the given fields with
// deterministic placeholder order.
func buildSetExpression(fields map[string]any) (string, map[string]string, map[string]types.AttributeValue, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	names := make(map[string]string, len(keys))
	values := make(map[string]types.AttributeValue, len(keys))
	parts := make([]string, 0, len(keys))
	for i, k := range keys {
		n := fmt.Sprintf("#f%d", i)
		v := fmt.Sprintf(":v%d", i)
		av, err := attributevalue.Marshal(fields[k])
		if err != nil {
			return "", nil, nil, fmt.Errorf("marshal field %s: %w", k, err)
		}
		names[n] = k
		values[v] = av
		parts = append(parts, n+" = "+v)
	}
	return "SET " + strings.Join(parts, ", "), names, values, nil
}

func pathKey(path string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		pathAttr: &types.AttributeValueMemberS{Value: path},
	}
}

func fromItem(item map[string]types.AttributeValue) (map[string]any, error) {
	doc := map[string]any{}
	if err := attributevalue.UnmarshalMap(item, &doc); err != nil {
		return nil, err
	}
	delete(doc, pathAttr)
	delete(doc, collectionAttr)
	return normalize(doc)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

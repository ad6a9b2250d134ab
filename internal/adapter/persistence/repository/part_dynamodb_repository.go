package repository

import (
	"context"
	"sort"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPartsTableName = "parts"

type partItem struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	Code          string `dynamodbav:"code"`
	CostPrice     string `dynamodbav:"cost_price"`
	SellPrice     string `dynamodbav:"sell_price"`
	Supplier      string `dynamodbav:"supplier"`
	StockQuantity int    `dynamodbav:"stock_quantity"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// PartDynamoRepository persists Part stock entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type PartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPartRepository = (*PartDynamoRepository)(nil)

func NewPartDynamoRepository(ddb *dynamodb.Client) *PartDynamoRepository {
	return &PartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PARTS_TABLE", defaultPartsTableName),
	}
}

func (r *PartDynamoRepository) Create(ctx context.Context, p entities.Part) (entities.Part, error) {
	it := partItem{
		ID:            p.ID,
		Name:          p.Name,
		Code:          p.Code,
		CostPrice:     floatToString(p.CostPrice),
		SellPrice:     floatToString(p.SellPrice),
		Supplier:      p.Supplier,
		StockQuantity: p.StockQuantity,
		CreatedAt:     timeToString(time.Now()),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Part{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Part{}, err
	}
	return p, nil
}

func (r *PartDynamoRepository) GetByID(ctx context.Context, id string) (entities.Part, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Part{}, err
	}
	if len(out.Item) == 0 {
		return entities.Part{}, nil
	}

	var it partItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Part{}, err
	}
	return fromPartItem(it), nil
}

func (r *PartDynamoRepository) List(ctx context.Context) ([]entities.Part, error) {
	items, err := scanAll[partItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt < items[j].CreatedAt })

	out := make([]entities.Part, 0, len(items))
	for _, it := range items {
		out = append(out, fromPartItem(it))
	}
	return out, nil
}

func fromPartItem(it partItem) entities.Part {
	return entities.Part{
		ID:            it.ID,
		Name:          it.Name,
		Code:          it.Code,
		CostPrice:     stringToFloat(it.CostPrice),
		SellPrice:     stringToFloat(it.SellPrice),
		Supplier:      it.Supplier,
		StockQuantity: it.StockQuantity,
	}
}

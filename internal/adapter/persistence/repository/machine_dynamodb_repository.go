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

const defaultMachinesTableName = "machines"

type machineItem struct {
	ID           string `dynamodbav:"id"`
	Brand        string `dynamodbav:"brand"`
	Model        string `dynamodbav:"model"`
	SerialNumber string `dynamodbav:"serial_number"`
	Type         string `dynamodbav:"type"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// MachineDynamoRepository persists Machine entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type MachineDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMachineRepository = (*MachineDynamoRepository)(nil)

func NewMachineDynamoRepository(ddb *dynamodb.Client) *MachineDynamoRepository {
	return &MachineDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MACHINES_TABLE", defaultMachinesTableName),
	}
}

func (r *MachineDynamoRepository) Create(ctx context.Context, m entities.Machine) (entities.Machine, error) {
	it := machineItem{
		ID:           m.ID,
		Brand:        m.Brand,
		Model:        m.Model,
		SerialNumber: m.SerialNumber,
		Type:         m.Type,
		CreatedAt:    timeToString(time.Now()),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Machine{}, err
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
		return entities.Machine{}, err
	}
	return m, nil
}

func (r *MachineDynamoRepository) GetByID(ctx context.Context, id string) (entities.Machine, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Machine{}, err
	}
	if len(out.Item) == 0 {
		return entities.Machine{}, nil
	}

	var it machineItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Machine{}, err
	}
	return fromMachineItem(it), nil
}

func (r *MachineDynamoRepository) List(ctx context.Context) ([]entities.Machine, error) {
	items, err := scanAll[machineItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt < items[j].CreatedAt })

	out := make([]entities.Machine, 0, len(items))
	for _, it := range items {
		out = append(out, fromMachineItem(it))
	}
	return out, nil
}

func fromMachineItem(it machineItem) entities.Machine {
	return entities.Machine{
		ID:           it.ID,
		Brand:        it.Brand,
		Model:        it.Model,
		SerialNumber: it.SerialNumber,
		Type:         it.Type,
	}
}

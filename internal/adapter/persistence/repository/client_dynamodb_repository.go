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

const defaultClientsTableName = "clients"

type addressItem struct {
	ZipCode      string `dynamodbav:"zip_code"`
	Street       string `dynamodbav:"street"`
	Number       string `dynamodbav:"number"`
	Neighborhood string `dynamodbav:"neighborhood"`
	City         string `dynamodbav:"city"`
	State        string `dynamodbav:"state"`
	Complement   string `dynamodbav:"complement,omitempty"`
}

type clientItem struct {
	ID                string      `dynamodbav:"id"`
	Type              string      `dynamodbav:"type"`
	Name              string      `dynamodbav:"name"`
	Document          string      `dynamodbav:"document"`
	StateRegistration string      `dynamodbav:"state_registration,omitempty"`
	Whatsapp          string      `dynamodbav:"whatsapp"`
	Email             string      `dynamodbav:"email,omitempty"`
	Address           addressItem `dynamodbav:"address"`
	CreatedAt         string      `dynamodbav:"created_at"`
}

// ClientDynamoRepository persists Client entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// created_at exists only at the storage layer so Scan results can be put
// back into registration order.

type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	av, err := attributevalue.MarshalMap(toClientItem(c, time.Now()))
	if err != nil {
		return entities.Client{}, err
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
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) List(ctx context.Context) ([]entities.Client, error) {
	items, err := scanAll[clientItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt < items[j].CreatedAt })

	out := make([]entities.Client, 0, len(items))
	for _, it := range items {
		out = append(out, fromClientItem(it))
	}
	return out, nil
}

func toClientItem(c entities.Client, createdAt time.Time) clientItem {
	return clientItem{
		ID:                c.ID,
		Type:              string(c.Type),
		Name:              c.Name,
		Document:          c.Document,
		StateRegistration: c.StateRegistration,
		Whatsapp:          c.Whatsapp,
		Email:             c.Email,
		Address: addressItem{
			ZipCode:      c.Address.ZipCode,
			Street:       c.Address.Street,
			Number:       c.Address.Number,
			Neighborhood: c.Address.Neighborhood,
			City:         c.Address.City,
			State:        c.Address.State,
			Complement:   c.Address.Complement,
		},
		CreatedAt: timeToString(createdAt),
	}
}

func fromClientItem(it clientItem) entities.Client {
	return entities.Client{
		ID:                it.ID,
		Type:              entities.PersonType(it.Type),
		Name:              it.Name,
		Document:          it.Document,
		StateRegistration: it.StateRegistration,
		Whatsapp:          it.Whatsapp,
		Email:             it.Email,
		Address: entities.Address{
			ZipCode:      it.Address.ZipCode,
			Street:       it.Address.Street,
			Number:       it.Address.Number,
			Neighborhood: it.Address.Neighborhood,
			City:         it.Address.City,
			State:        it.Address.State,
			Complement:   it.Address.Complement,
		},
	}
}

package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServiceOrdersTableName = "service_orders"
	serviceOrderShortCodeIndex    = "short_code-index"

	// shortCodeCounterKey is the reserved item holding the short-code
	// sequence. It lives in the orders table so one table serves both.
	shortCodeCounterKey = "_short_code_seq"
	shortCodeSeed       = 4100
)

type budgetItemItem struct {
	ID          string `dynamodbav:"id"`
	Type        string `dynamodbav:"type"`
	Description string `dynamodbav:"description"`
	Quantity    string `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	PartID      string `dynamodbav:"part_id,omitempty"`
}

type equipmentItem struct {
	ID             string           `dynamodbav:"id"`
	MachineID      string           `dynamodbav:"machine_id"`
	DefectReported string           `dynamodbav:"defect_reported"`
	DiagnosisNotes string           `dynamodbav:"diagnosis_notes,omitempty"`
	BudgetItems    []budgetItemItem `dynamodbav:"budget_items"`
}

type paymentItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Method      string `dynamodbav:"method"`
	Amount      string `dynamodbav:"amount"`
	Date        string `dynamodbav:"date"`
}

type historyItem struct {
	Date   string `dynamodbav:"date"`
	Status string `dynamodbav:"status"`
	Note   string `dynamodbav:"note,omitempty"`
}

type serviceOrderItem struct {
	ID           string          `dynamodbav:"id"`
	ShortCode    string          `dynamodbav:"short_code"`
	ClientID     string          `dynamodbav:"client_id"`
	EntryDate    string          `dynamodbav:"entry_date"`
	DeadlineDate string          `dynamodbav:"deadline_date,omitempty"`
	Status       string          `dynamodbav:"status"`
	Equipment    []equipmentItem `dynamodbav:"equipment_items"`
	Discount     string          `dynamodbav:"discount"`
	Payments     []paymentItem   `dynamodbav:"payments"`
	History      []historyItem   `dynamodbav:"history"`
}

// ServiceOrderDynamoRepository persists the whole ServiceOrder aggregate as
// one item: equipment, budget lines, payments and history travel as nested
// lists in their stored order.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: short_code-index (PK: short_code)
//
// Short codes come from an atomic counter item in the same table
// (UpdateItem ADD semantics), replacing the collision-prone random draw the
// shop used before. The GSI cannot enforce uniqueness by itself; the use
// case double-checks the code before the conditional put.

type ServiceOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_ORDERS_TABLE", defaultServiceOrdersTableName),
	}
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceOrder{}, interfaces.ErrDuplicateShortCode
		}
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) GetByShortCode(ctx context.Context, shortCode string) (entities.ServiceOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(serviceOrderShortCodeIndex),
		KeyConditionExpression: aws.String("short_code = :sc"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sc": &types.AttributeValueMemberS{Value: shortCode},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Items) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceOrder{}, nil
		}
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	items, err := scanAll[serviceOrderItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	out := make([]entities.ServiceOrder, 0, len(items))
	for _, it := range items {
		if it.ID == shortCodeCounterKey {
			continue
		}
		out = append(out, fromServiceOrderItem(it))
	}
	// Most recent first for the recency-biased dashboard listing.
	sort.Slice(out, func(i, j int) bool { return out[i].EntryDate.After(out[j].EntryDate) })
	return out, nil
}

func (r *ServiceOrderDynamoRepository) NextShortCode(ctx context.Context) (string, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: shortCodeCounterKey},
		},
		UpdateExpression: aws.String("SET #seq = if_not_exists(#seq, :seed) + :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":seed": &types.AttributeValueMemberN{Value: strconv.Itoa(shortCodeSeed)},
			":one":  &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return "", err
	}

	seq, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return "", errors.New("short code counter attribute missing")
	}
	return seq.Value, nil
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	it := serviceOrderItem{
		ID:        o.ID,
		ShortCode: o.ShortCode,
		ClientID:  o.ClientID,
		EntryDate: timeToString(o.EntryDate),
		Status:    string(o.Status),
		Discount:  floatToString(o.Discount),
		Equipment: make([]equipmentItem, 0, len(o.Equipment)),
		Payments:  make([]paymentItem, 0, len(o.Payments)),
		History:   make([]historyItem, 0, len(o.History)),
	}
	if o.DeadlineDate != nil {
		it.DeadlineDate = timeToString(*o.DeadlineDate)
	}
	for _, eq := range o.Equipment {
		eqIt := equipmentItem{
			ID:             eq.ID,
			MachineID:      eq.MachineID,
			DefectReported: eq.DefectReported,
			DiagnosisNotes: eq.DiagnosisNotes,
			BudgetItems:    make([]budgetItemItem, 0, len(eq.BudgetItems)),
		}
		for _, b := range eq.BudgetItems {
			eqIt.BudgetItems = append(eqIt.BudgetItems, budgetItemItem{
				ID:          b.ID,
				Type:        string(b.Type),
				Description: b.Description,
				Quantity:    floatToString(b.Quantity),
				UnitPrice:   floatToString(b.UnitPrice),
				PartID:      b.PartID,
			})
		}
		it.Equipment = append(it.Equipment, eqIt)
	}
	for _, p := range o.Payments {
		it.Payments = append(it.Payments, paymentItem{
			ID:          p.ID,
			Description: p.Description,
			Method:      string(p.Method),
			Amount:      floatToString(p.Amount),
			Date:        timeToString(p.Date),
		})
	}
	for _, h := range o.History {
		it.History = append(it.History, historyItem{
			Date:   timeToString(h.Date),
			Status: string(h.Status),
			Note:   h.Note,
		})
	}
	return it
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	o := entities.ServiceOrder{
		ID:        it.ID,
		ShortCode: it.ShortCode,
		ClientID:  it.ClientID,
		EntryDate: stringToTime(it.EntryDate),
		Status:    entities.OSStatus(it.Status),
		Discount:  stringToFloat(it.Discount),
	}
	if it.DeadlineDate != "" {
		d := stringToTime(it.DeadlineDate)
		o.DeadlineDate = &d
	}
	for _, eqIt := range it.Equipment {
		eq := entities.OSEquipment{
			ID:             eqIt.ID,
			MachineID:      eqIt.MachineID,
			DefectReported: eqIt.DefectReported,
			DiagnosisNotes: eqIt.DiagnosisNotes,
		}
		for _, b := range eqIt.BudgetItems {
			eq.BudgetItems = append(eq.BudgetItems, entities.BudgetItem{
				ID:          b.ID,
				Type:        entities.BudgetItemType(b.Type),
				Description: b.Description,
				Quantity:    stringToFloat(b.Quantity),
				UnitPrice:   stringToFloat(b.UnitPrice),
				PartID:      b.PartID,
			})
		}
		o.Equipment = append(o.Equipment, eq)
	}
	for _, p := range it.Payments {
		o.Payments = append(o.Payments, entities.Payment{
			ID:          p.ID,
			Description: p.Description,
			Method:      entities.PaymentMethod(p.Method),
			Amount:      stringToFloat(p.Amount),
			Date:        stringToTime(p.Date),
		})
	}
	for _, h := range it.History {
		o.History = append(o.History, entities.HistoryEntry{
			Date:   stringToTime(h.Date),
			Status: entities.OSStatus(h.Status),
			Note:   h.Note,
		})
	}
	return o
}

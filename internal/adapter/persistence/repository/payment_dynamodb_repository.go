package repository

import (
	"context"
	"encoding/json"
	"time"

	"barcraft/internal/domain/entities"
	"barcraft/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsOrderIDIndex     = "order_id-index"
)

type paymentItem struct {
	IntentID  string `dynamodbav:"intent_id"`
	OrderID   string `dynamodbav:"order_id"`
	Amount    string `dynamodbav:"amount"`
	Currency  string `dynamodbav:"currency"`
	Status    string `dynamodbav:"status"`
	Raw       string `dynamodbav:"raw,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists payment ledger rows in DynamoDB.
//
// Table requirements:
//   - PK: intent_id (string)
//   - GSI: order_id-index (PK: order_id)
//
// Upsert leans on UpdateItem's create-or-update semantics: a redelivered
// event for the same intent id rewrites amount/status/raw in place, and
// if_not_exists keeps the original created_at.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Upsert(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"intent_id": &types.AttributeValueMemberS{Value: p.IntentID},
		},
		UpdateExpression: aws.String("SET #order_id = :order_id, #amount = :amount, #currency = :currency, #status = :status, #raw = :raw, #updated_at = :updated_at, #created_at = if_not_exists(#created_at, :created_at)"),
		ExpressionAttributeNames: map[string]string{
			"#order_id":   "order_id",
			"#amount":     "amount",
			"#currency":   "currency",
			"#status":     "status",
			"#raw":        "raw",
			"#updated_at": "updated_at",
			"#created_at": "created_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_id":   &types.AttributeValueMemberS{Value: p.OrderID},
			":amount":     &types.AttributeValueMemberS{Value: p.Amount.String()},
			":currency":   &types.AttributeValueMemberS{Value: p.Currency},
			":status":     &types.AttributeValueMemberS{Value: p.Status},
			":raw":        &types.AttributeValueMemberS{Value: string(p.Raw)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
			":created_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Payment{}, err
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) GetByIntentID(ctx context.Context, intentID string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"intent_id": &types.AttributeValueMemberS{Value: intentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	return items, nil
}

func fromPaymentItem(it paymentItem) entities.Payment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	amount, _ := decimal.NewFromString(it.Amount)
	return entities.Payment{
		IntentID:  it.IntentID,
		OrderID:   it.OrderID,
		Amount:    amount,
		Currency:  it.Currency,
		Status:    it.Status,
		Raw:       json.RawMessage(it.Raw),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

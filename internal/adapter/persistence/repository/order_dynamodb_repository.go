package repository

import (
	"context"
	"errors"
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
	defaultOrdersTableName = "orders"
	ordersVenueIDIndex     = "venue_id-index"
	sessionClaimPrefix     = "session#"
)

type orderItem struct {
	ID                string `dynamodbav:"id"`
	VenueID           string `dynamodbav:"venue_id"`
	SessionID         string `dynamodbav:"session_id"`
	RecipeID          string `dynamodbav:"recipe_id,omitempty"`
	Amount            string `dynamodbav:"amount"`
	Currency          string `dynamodbav:"currency"`
	Status            string `dynamodbav:"status"`
	CheckoutSessionID string `dynamodbav:"checkout_session_id,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	FulfilledAt       string `dynamodbav:"fulfilled_at,omitempty"`
}

// OrderDynamoRepository persists orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: venue_id-index (PK: venue_id, SK: created_at)
//
// At most one order per session is guaranteed by a session#<session_id> claim
// item written transactionally with the order; claim items carry no venue_id
// so they never surface in the listing GSI.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) CreateForSession(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}
	claim := map[string]types.AttributeValue{
		"id":       &types.AttributeValueMemberS{Value: sessionClaimPrefix + o.SessionID},
		"order_id": &types.AttributeValueMemberS{Value: o.ID},
	}
	notExists := aws.String("attribute_not_exists(#id)")
	names := map[string]string{"#id": "id"}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      notExists,
				ExpressionAttributeNames: names,
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     claim,
				ConditionExpression:      notExists,
				ExpressionAttributeNames: names,
			}},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
					return entities.Order{}, interfaces.ErrSessionOrderExists
				}
			}
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) GetBySessionID(ctx context.Context, sessionID string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: sessionClaimPrefix + sessionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	orderID, ok := out.Item["order_id"].(*types.AttributeValueMemberS)
	if !ok || orderID.Value == "" {
		return entities.Order{}, nil
	}
	return r.GetByID(ctx, orderID.Value)
}

func (r *OrderDynamoRepository) DeleteWithSessionClaim(ctx context.Context, orderID, sessionID string) error {
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Delete: &types.Delete{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: orderID},
				},
			}},
			{Delete: &types.Delete{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: sessionClaimPrefix + sessionID},
				},
			}},
		},
	})
	return err
}

func (r *OrderDynamoRepository) AttachRecipe(ctx context.Context, orderID, recipeID string) (entities.Order, error) {
	return r.update(ctx, orderID, "attribute_exists(#id)",
		"SET #recipe_id = :recipe_id",
		map[string]string{"#recipe_id": "recipe_id"},
		map[string]types.AttributeValue{
			":recipe_id": &types.AttributeValueMemberS{Value: recipeID},
		})
}

func (r *OrderDynamoRepository) SetCheckoutSession(ctx context.Context, orderID, checkoutSessionID, currency string) (entities.Order, error) {
	return r.update(ctx, orderID, "attribute_exists(#id)",
		"SET #checkout_session_id = :cs, #currency = :currency",
		map[string]string{"#checkout_session_id": "checkout_session_id", "#currency": "currency"},
		map[string]types.AttributeValue{
			":cs":       &types.AttributeValueMemberS{Value: checkoutSessionID},
			":currency": &types.AttributeValueMemberS{Value: currency},
		})
}

func (r *OrderDynamoRepository) UpdateAmount(ctx context.Context, orderID string, amount decimal.Decimal, currency string) (entities.Order, error) {
	return r.update(ctx, orderID, "attribute_exists(#id)",
		"SET #amount = :amount, #currency = :currency",
		map[string]string{"#amount": "amount", "#currency": "currency"},
		map[string]types.AttributeValue{
			":amount":   &types.AttributeValueMemberS{Value: amount.String()},
			":currency": &types.AttributeValueMemberS{Value: currency},
		})
}

func (r *OrderDynamoRepository) TransitionStatus(ctx context.Context, orderID string, from, to entities.OrderStatus) (entities.Order, error) {
	return r.update(ctx, orderID, "attribute_exists(#id) AND #status = :from",
		"SET #status = :to",
		map[string]string{"#status": "status"},
		map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(to)},
		})
}

func (r *OrderDynamoRepository) Fulfill(ctx context.Context, orderID string, at time.Time) (entities.Order, error) {
	return r.update(ctx, orderID, "attribute_exists(#id) AND #status = :paid",
		"SET #status = :fulfilled, #fulfilled_at = :at",
		map[string]string{"#status": "status", "#fulfilled_at": "fulfilled_at"},
		map[string]types.AttributeValue{
			":paid":      &types.AttributeValueMemberS{Value: string(entities.OrderStatusPaid)},
			":fulfilled": &types.AttributeValueMemberS{Value: string(entities.OrderStatusFulfilled)},
			":at":        &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
		})
}

func (r *OrderDynamoRepository) SetFulfilledAt(ctx context.Context, orderID string, at time.Time) (entities.Order, error) {
	return r.update(ctx, orderID, "attribute_exists(#id) AND #status = :fulfilled AND attribute_not_exists(#fulfilled_at)",
		"SET #fulfilled_at = :at",
		map[string]string{"#status": "status", "#fulfilled_at": "fulfilled_at"},
		map[string]types.AttributeValue{
			":fulfilled": &types.AttributeValueMemberS{Value: string(entities.OrderStatusFulfilled)},
			":at":        &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
		})
}

func (r *OrderDynamoRepository) ListByVenueID(ctx context.Context, venueID string, status *entities.OrderStatus, limit int32) ([]entities.Order, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersVenueIDIndex),
		KeyConditionExpression: aws.String("venue_id = :vid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":vid": &types.AttributeValueMemberS{Value: venueID},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(limit),
	}
	if status != nil {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: string(*status)}
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromOrderItem(it))
	}
	return items, nil
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	condition string,
	updateExpr string,
	names map[string]string,
	values map[string]types.AttributeValue,
) (entities.Order, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:                o.ID,
		VenueID:           o.VenueID,
		SessionID:         o.SessionID,
		RecipeID:          o.RecipeID,
		Amount:            o.Amount.String(),
		Currency:          o.Currency,
		Status:            string(o.Status),
		CheckoutSessionID: o.CheckoutSessionID,
		CreatedAt:         o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.FulfilledAt != nil {
		it.FulfilledAt = o.FulfilledAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	amount, _ := decimal.NewFromString(it.Amount)
	o := entities.Order{
		ID:                it.ID,
		VenueID:           it.VenueID,
		SessionID:         it.SessionID,
		RecipeID:          it.RecipeID,
		Amount:            amount,
		Currency:          it.Currency,
		Status:            entities.OrderStatus(it.Status),
		CheckoutSessionID: it.CheckoutSessionID,
		CreatedAt:         createdAt,
	}
	if it.FulfilledAt != "" {
		if at, err := time.Parse(time.RFC3339Nano, it.FulfilledAt); err == nil {
			o.FulfilledAt = &at
		}
	}
	return o
}

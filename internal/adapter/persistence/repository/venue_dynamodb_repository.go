package repository

import (
	"context"
	"time"

	"barcraft/internal/domain/entities"
	"barcraft/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultVenuesTableName = "venues"

type venueItem struct {
	ID          string   `dynamodbav:"id"`
	Name        string   `dynamodbav:"name"`
	DrinkPrice  string   `dynamodbav:"drink_price,omitempty"`
	Currency    string   `dynamodbav:"currency,omitempty"`
	Ingredients []string `dynamodbav:"ingredients,omitempty"`
	CreatedAt   string   `dynamodbav:"created_at"`
	UpdatedAt   string   `dynamodbav:"updated_at"`
}

// VenueDynamoRepository reads venue settings from DynamoDB. The venue record
// is owned by a collaborating admin service; this repository exists for the
// pricing/whitelist reads the order flow needs, plus Put for seeding.
//
// Table requirements:
//   - PK: id (string)

type VenueDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVenueRepository = (*VenueDynamoRepository)(nil)

func NewVenueDynamoRepository(ddb *dynamodb.Client) *VenueDynamoRepository {
	return &VenueDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VENUES_TABLE", defaultVenuesTableName),
	}
}

func (r *VenueDynamoRepository) GetByID(ctx context.Context, id string) (entities.Venue, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Venue{}, err
	}
	if len(out.Item) == 0 {
		return entities.Venue{}, nil
	}

	var it venueItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Venue{}, err
	}
	return fromVenueItem(it), nil
}

func (r *VenueDynamoRepository) Put(ctx context.Context, v entities.Venue) (entities.Venue, error) {
	av, err := attributevalue.MarshalMap(toVenueItem(v))
	if err != nil {
		return entities.Venue{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Venue{}, err
	}
	return v, nil
}

func toVenueItem(v entities.Venue) venueItem {
	it := venueItem{
		ID:          v.ID,
		Name:        v.Name,
		Currency:    v.Currency,
		Ingredients: v.Ingredients,
		CreatedAt:   v.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   v.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if v.DrinkPrice.GreaterThan(decimal.Zero) {
		it.DrinkPrice = v.DrinkPrice.String()
	}
	return it
}

func fromVenueItem(it venueItem) entities.Venue {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	price, _ := decimal.NewFromString(it.DrinkPrice)
	return entities.Venue{
		ID:          it.ID,
		Name:        it.Name,
		DrinkPrice:  price,
		Currency:    it.Currency,
		Ingredients: it.Ingredients,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

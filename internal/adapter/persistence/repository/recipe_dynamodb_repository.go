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
)

const defaultRecipesTableName = "recipes"

type ingredientItem struct {
	Name     string `dynamodbav:"name"`
	Quantity string `dynamodbav:"quantity,omitempty"`
}

type recipeItem struct {
	ID          string           `dynamodbav:"id"`
	SessionID   string           `dynamodbav:"session_id"`
	Name        string           `dynamodbav:"name"`
	Description string           `dynamodbav:"description,omitempty"`
	Ingredients []ingredientItem `dynamodbav:"ingredients"`
	Method      string           `dynamodbav:"method"`
	Glassware   string           `dynamodbav:"glassware"`
	Garnish     string           `dynamodbav:"garnish"`
	Warnings    []string         `dynamodbav:"warnings,omitempty"`
	Notes       string           `dynamodbav:"notes,omitempty"`
	Raw         string           `dynamodbav:"raw,omitempty"`
	CreatedAt   string           `dynamodbav:"created_at"`
}

// RecipeDynamoRepository persists generated recipes in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Recipes are immutable: the conditional put rejects overwrites, and no
// update method exists.

type RecipeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRecipeRepository = (*RecipeDynamoRepository)(nil)

func NewRecipeDynamoRepository(ddb *dynamodb.Client) *RecipeDynamoRepository {
	return &RecipeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RECIPES_TABLE", defaultRecipesTableName),
	}
}

func (r *RecipeDynamoRepository) Create(ctx context.Context, rec entities.Recipe) (entities.Recipe, error) {
	av, err := attributevalue.MarshalMap(toRecipeItem(rec))
	if err != nil {
		return entities.Recipe{}, err
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
		return entities.Recipe{}, err
	}
	return rec, nil
}

func (r *RecipeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Recipe, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Recipe{}, err
	}
	if len(out.Item) == 0 {
		return entities.Recipe{}, nil
	}

	var it recipeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Recipe{}, err
	}
	return fromRecipeItem(it), nil
}

func toRecipeItem(rec entities.Recipe) recipeItem {
	ingredients := make([]ingredientItem, 0, len(rec.Spec.Ingredients))
	for _, ing := range rec.Spec.Ingredients {
		ingredients = append(ingredients, ingredientItem{Name: ing.Name, Quantity: ing.Quantity})
	}
	return recipeItem{
		ID:          rec.ID,
		SessionID:   rec.SessionID,
		Name:        rec.Name,
		Description: rec.Description,
		Ingredients: ingredients,
		Method:      rec.Spec.Method,
		Glassware:   rec.Spec.Glassware,
		Garnish:     rec.Spec.Garnish,
		Warnings:    rec.Spec.Warnings,
		Notes:       rec.Spec.Notes,
		Raw:         string(rec.Raw),
		CreatedAt:   rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromRecipeItem(it recipeItem) entities.Recipe {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	ingredients := make([]entities.IngredientEntry, 0, len(it.Ingredients))
	for _, ing := range it.Ingredients {
		ingredients = append(ingredients, entities.IngredientEntry{Name: ing.Name, Quantity: ing.Quantity})
	}
	return entities.Recipe{
		ID:          it.ID,
		SessionID:   it.SessionID,
		Name:        it.Name,
		Description: it.Description,
		Spec: entities.RecipeSpec{
			Ingredients: ingredients,
			Method:      it.Method,
			Glassware:   it.Glassware,
			Garnish:     it.Garnish,
			Warnings:    it.Warnings,
			Notes:       it.Notes,
		},
		Raw:       json.RawMessage(it.Raw),
		CreatedAt: createdAt,
	}
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"barcraft/internal/domain/entities"
	"barcraft/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSessionsTableName = "sessions"

type answerValueItem struct {
	Choice string `dynamodbav:"choice"`
}

type sessionItem struct {
	ID        string                     `dynamodbav:"id"`
	VenueID   string                     `dynamodbav:"venue_id"`
	Status    string                     `dynamodbav:"status"`
	Answers   map[string]answerValueItem `dynamodbav:"answers"`
	CreatedAt string                     `dynamodbav:"created_at"`
	UpdatedAt string                     `dynamodbav:"updated_at"`
}

// SessionDynamoRepository persists quiz sessions in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Answers live in a map attribute; MergeAnswers updates individual map paths
// so concurrent answer batches merge by key with last write wins.

type SessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb *dynamodb.Client) *SessionDynamoRepository {
	return &SessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SESSIONS_TABLE", defaultSessionsTableName),
	}
}

func (r *SessionDynamoRepository) Create(ctx context.Context, s entities.Session) (entities.Session, error) {
	it := toSessionItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Session{}, err
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
		return entities.Session{}, err
	}
	return s, nil
}

func (r *SessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Session, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Session{}, err
	}
	if len(out.Item) == 0 {
		return entities.Session{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Session{}, err
	}
	return fromSessionItem(it), nil
}

func (r *SessionDynamoRepository) MergeAnswers(ctx context.Context, id string, answers map[string]entities.AnswerValue) (entities.Session, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	names := map[string]string{
		"#id":         "id",
		"#answers":    "answers",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	parts := []string{"#updated_at = :updated_at"}

	i := 0
	for qid, v := range answers {
		nameKey := fmt.Sprintf("#q%d", i)
		valueKey := fmt.Sprintf(":v%d", i)
		names[nameKey] = qid

		av, err := attributevalue.Marshal(answerValueItem{Choice: v.Choice})
		if err != nil {
			return entities.Session{}, err
		}
		values[valueKey] = av
		parts = append(parts, fmt.Sprintf("#answers.%s = %s", nameKey, valueKey))
		i++
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String("SET " + strings.Join(parts, ", ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Session{}, nil
		}
		return entities.Session{}, err
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Session{}, err
	}
	return fromSessionItem(it), nil
}

func (r *SessionDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.SessionStatus) (entities.Session, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Session{}, nil
		}
		return entities.Session{}, err
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Session{}, err
	}
	return fromSessionItem(it), nil
}

func toSessionItem(s entities.Session) sessionItem {
	answers := make(map[string]answerValueItem, len(s.Answers))
	for qid, v := range s.Answers {
		answers[qid] = answerValueItem{Choice: v.Choice}
	}
	return sessionItem{
		ID:        s.ID,
		VenueID:   s.VenueID,
		Status:    string(s.Status),
		Answers:   answers,
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSessionItem(it sessionItem) entities.Session {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	answers := make(map[string]entities.AnswerValue, len(it.Answers))
	for qid, v := range it.Answers {
		answers[qid] = entities.AnswerValue{Choice: v.Choice}
	}
	return entities.Session{
		ID:        it.ID,
		VenueID:   it.VenueID,
		Status:    entities.SessionStatus(it.Status),
		Answers:   answers,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

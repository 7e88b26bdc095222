package repository

import (
	"context"
	"strconv"
	"time"

	"grafica_xpto/internal/domain/entities"
	"grafica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSessionsTableName = "conversion_sessions"

type groupRecord struct {
	ID                     string           `dynamodbav:"id"`
	Name                   string           `dynamodbav:"name"`
	Items                  []lineItemRecord `dynamodbav:"items"`
	UrgencyLevel           string           `dynamodbav:"urgency_level"`
	ExpectedProductionDays int              `dynamodbav:"expected_production_days"`
	DesignApprovalRequired bool             `dynamodbav:"design_approval_required"`
	SpecialInstructions    string           `dynamodbav:"special_instructions,omitempty"`
	EstimatedValue         string           `dynamodbav:"estimated_value"`
}

type sessionItem struct {
	ID                      string        `dynamodbav:"id"`
	QuoteID                 string        `dynamodbav:"quote_id"`
	Strategy                string        `dynamodbav:"strategy"`
	Groups                  []groupRecord `dynamodbav:"groups"`
	DuplicationAcknowledged bool          `dynamodbav:"duplication_acknowledged"`
	Status                  string        `dynamodbav:"status"`
	CreatedAt               string        `dynamodbav:"created_at"`
	UpdatedAt               string        `dynamodbav:"updated_at"`
}

// SessionDynamoRepository persists ConversionSession entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)
//
// Updates replace the full session document. Group sets are small (one per
// quote line item at worst) and the use case layer works functionally, so a
// whole-document replace is simpler and safer than per-field updates.

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

func (r *SessionDynamoRepository) Create(ctx context.Context, s entities.ConversionSession) (entities.ConversionSession, error) {
	av, err := attributevalue.MarshalMap(toSessionItem(s))
	if err != nil {
		return entities.ConversionSession{}, err
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
		return entities.ConversionSession{}, err
	}
	return s, nil
}

func (r *SessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.ConversionSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ConversionSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.ConversionSession{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ConversionSession{}, err
	}
	return fromSessionItem(it), nil
}

func (r *SessionDynamoRepository) Update(ctx context.Context, s entities.ConversionSession) (entities.ConversionSession, error) {
	av, err := attributevalue.MarshalMap(toSessionItem(s))
	if err != nil {
		return entities.ConversionSession{}, err
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
		return entities.ConversionSession{}, err
	}
	return s, nil
}

func toSessionItem(s entities.ConversionSession) sessionItem {
	groups := make([]groupRecord, 0, len(s.Groups))
	for _, g := range s.Groups {
		groups = append(groups, groupRecord{
			ID:                     g.ID,
			Name:                   g.Name,
			Items:                  toLineItemRecords(g.Items),
			UrgencyLevel:           string(g.UrgencyLevel),
			ExpectedProductionDays: g.ExpectedProductionDays,
			DesignApprovalRequired: g.DesignApprovalRequired,
			SpecialInstructions:    g.SpecialInstructions,
			EstimatedValue:         floatToString(g.EstimatedValue),
		})
	}
	return sessionItem{
		ID:                      s.ID,
		QuoteID:                 s.QuoteID,
		Strategy:                string(s.Strategy),
		Groups:                  groups,
		DuplicationAcknowledged: s.DuplicationAcknowledged,
		Status:                  string(s.Status),
		CreatedAt:               s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:               s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSessionItem(it sessionItem) entities.ConversionSession {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	groups := make([]entities.Group, 0, len(it.Groups))
	for _, g := range it.Groups {
		value, _ := strconv.ParseFloat(g.EstimatedValue, 64)
		groups = append(groups, entities.Group{
			ID:                     g.ID,
			Name:                   g.Name,
			Items:                  fromLineItemRecords(g.Items),
			UrgencyLevel:           entities.UrgencyLevel(g.UrgencyLevel),
			ExpectedProductionDays: g.ExpectedProductionDays,
			DesignApprovalRequired: g.DesignApprovalRequired,
			SpecialInstructions:    g.SpecialInstructions,
			EstimatedValue:         value,
		})
	}

	return entities.ConversionSession{
		ID:                      it.ID,
		QuoteID:                 it.QuoteID,
		Strategy:                entities.PartitionStrategy(it.Strategy),
		Groups:                  groups,
		DuplicationAcknowledged: it.DuplicationAcknowledged,
		Status:                  entities.SessionStatus(it.Status),
		CreatedAt:               createdAt,
		UpdatedAt:               updatedAt,
	}
}

func toLineItemRecords(items []entities.LineItem) []lineItemRecord {
	out := make([]lineItemRecord, 0, len(items))
	for _, it := range items {
		out = append(out, lineItemRecord{
			ID:             it.ID,
			ProductName:    it.ProductName,
			Quantity:       it.Quantity,
			UnitPrice:      floatToString(it.UnitPrice),
			TotalPrice:     floatToString(it.TotalPrice),
			Specifications: it.Specifications,
		})
	}
	return out
}

func fromLineItemRecords(records []lineItemRecord) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(records))
	for _, rec := range records {
		unit, _ := strconv.ParseFloat(rec.UnitPrice, 64)
		total, _ := strconv.ParseFloat(rec.TotalPrice, 64)
		out = append(out, entities.LineItem{
			ID:             rec.ID,
			ProductName:    rec.ProductName,
			Quantity:       rec.Quantity,
			UnitPrice:      unit,
			TotalPrice:     total,
			Specifications: rec.Specifications,
		})
	}
	return out
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

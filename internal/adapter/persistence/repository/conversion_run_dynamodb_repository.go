package repository

import (
	"context"
	"time"

	"grafica_xpto/internal/domain/entities"
	"grafica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRunsTableName = "conversion_runs"

type conversionResultRecord struct {
	GroupID     string `dynamodbav:"group_id"`
	GroupName   string `dynamodbav:"group_name"`
	Status      string `dynamodbav:"status"`
	OrderID     string `dynamodbav:"order_id,omitempty"`
	OrderNumber string `dynamodbav:"order_number,omitempty"`
	Error       string `dynamodbav:"error,omitempty"`
}

type conversionRunItem struct {
	ID         string                   `dynamodbav:"id"`
	SessionID  string                   `dynamodbav:"session_id"`
	Results    []conversionResultRecord `dynamodbav:"results"`
	Progress   int                      `dynamodbav:"progress"`
	Status     string                   `dynamodbav:"status"`
	StartedAt  string                   `dynamodbav:"started_at"`
	FinishedAt string                   `dynamodbav:"finished_at,omitempty"`
}

// ConversionRunDynamoRepository persists ConversionRun entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: session_id-index (PK: session_id)
//
// The run document is replaced after every attempted group; GET /runs/:id
// serves whatever snapshot was persisted last.

type ConversionRunDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IConversionRunRepository = (*ConversionRunDynamoRepository)(nil)

func NewConversionRunDynamoRepository(ddb *dynamodb.Client) *ConversionRunDynamoRepository {
	return &ConversionRunDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RUNS_TABLE", defaultRunsTableName),
	}
}

func (r *ConversionRunDynamoRepository) Create(ctx context.Context, run entities.ConversionRun) (entities.ConversionRun, error) {
	av, err := attributevalue.MarshalMap(toConversionRunItem(run))
	if err != nil {
		return entities.ConversionRun{}, err
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
		return entities.ConversionRun{}, err
	}
	return run, nil
}

func (r *ConversionRunDynamoRepository) GetByID(ctx context.Context, id string) (entities.ConversionRun, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ConversionRun{}, err
	}
	if len(out.Item) == 0 {
		return entities.ConversionRun{}, nil
	}

	var it conversionRunItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ConversionRun{}, err
	}
	return fromConversionRunItem(it), nil
}

func (r *ConversionRunDynamoRepository) Update(ctx context.Context, run entities.ConversionRun) (entities.ConversionRun, error) {
	av, err := attributevalue.MarshalMap(toConversionRunItem(run))
	if err != nil {
		return entities.ConversionRun{}, err
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
		return entities.ConversionRun{}, err
	}
	return run, nil
}

func toConversionRunItem(run entities.ConversionRun) conversionRunItem {
	results := make([]conversionResultRecord, 0, len(run.Results))
	for _, res := range run.Results {
		results = append(results, conversionResultRecord{
			GroupID:     res.GroupID,
			GroupName:   res.GroupName,
			Status:      string(res.Status),
			OrderID:     res.OrderID,
			OrderNumber: res.OrderNumber,
			Error:       res.Error,
		})
	}

	it := conversionRunItem{
		ID:        run.ID,
		SessionID: run.SessionID,
		Results:   results,
		Progress:  run.Progress,
		Status:    string(run.Status),
		StartedAt: run.StartedAt.UTC().Format(time.RFC3339Nano),
	}
	if !run.FinishedAt.IsZero() {
		it.FinishedAt = run.FinishedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromConversionRunItem(it conversionRunItem) entities.ConversionRun {
	startedAt, _ := time.Parse(time.RFC3339Nano, it.StartedAt)

	results := make([]entities.ConversionResult, 0, len(it.Results))
	for _, rec := range it.Results {
		results = append(results, entities.ConversionResult{
			GroupID:     rec.GroupID,
			GroupName:   rec.GroupName,
			Status:      entities.ResultStatus(rec.Status),
			OrderID:     rec.OrderID,
			OrderNumber: rec.OrderNumber,
			Error:       rec.Error,
		})
	}

	run := entities.ConversionRun{
		ID:        it.ID,
		SessionID: it.SessionID,
		Results:   results,
		Progress:  it.Progress,
		Status:    entities.RunStatus(it.Status),
		StartedAt: startedAt,
	}
	if it.FinishedAt != "" {
		run.FinishedAt, _ = time.Parse(time.RFC3339Nano, it.FinishedAt)
	}
	return run
}

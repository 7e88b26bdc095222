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

const defaultQuotesTableName = "quotes"

type lineItemRecord struct {
	ID             string         `dynamodbav:"id"`
	ProductName    string         `dynamodbav:"product_name"`
	Quantity       int            `dynamodbav:"quantity"`
	UnitPrice      string         `dynamodbav:"unit_price"`
	TotalPrice     string         `dynamodbav:"total_price"`
	Specifications map[string]any `dynamodbav:"specifications,omitempty"`
}

type quoteItem struct {
	ID           string           `dynamodbav:"id"`
	QuoteNumber  string           `dynamodbav:"quote_number"`
	CustomerID   string           `dynamodbav:"customer_id"`
	CustomerName string           `dynamodbav:"customer_name"`
	Items        []lineItemRecord `dynamodbav:"items"`
	TotalAmount  string           `dynamodbav:"total_amount"`
	Notes        string           `dynamodbav:"notes,omitempty"`
	Status       string           `dynamodbav:"status"`
	CreatedAt    string           `dynamodbav:"created_at"`
	UpdatedAt    string           `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository reads Quote entities from the storefront's quotes
// table.
//
// Table requirements:
//   - PK: id (string)
//
// The storefront owns writes; this service only reads, so the repository
// implements nothing beyond GetByID on purpose.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	total, _ := strconv.ParseFloat(it.TotalAmount, 64)

	items := make([]entities.LineItem, 0, len(it.Items))
	for _, li := range it.Items {
		unit, _ := strconv.ParseFloat(li.UnitPrice, 64)
		lineTotal, _ := strconv.ParseFloat(li.TotalPrice, 64)
		items = append(items, entities.LineItem{
			ID:             li.ID,
			ProductName:    li.ProductName,
			Quantity:       li.Quantity,
			UnitPrice:      unit,
			TotalPrice:     lineTotal,
			Specifications: li.Specifications,
		})
	}

	return entities.Quote{
		ID:           it.ID,
		QuoteNumber:  it.QuoteNumber,
		CustomerID:   it.CustomerID,
		CustomerName: it.CustomerName,
		Items:        items,
		TotalAmount:  total,
		Notes:        it.Notes,
		Status:       entities.QuoteStatus(it.Status),
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

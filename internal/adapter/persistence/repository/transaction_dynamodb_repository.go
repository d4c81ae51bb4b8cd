package repository

import (
	"context"
	"encoding/json"

	"construtora_api/internal/domain/entities"
	"construtora_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionsTableName = "transactions"
	transactionsWorkIDIndex      = "related_work_id-index"
)

type transactionItem struct {
	ID                 string  `dynamodbav:"id"`
	Kind               string  `dynamodbav:"kind"`
	Status             string  `dynamodbav:"status"`
	Category           string  `dynamodbav:"category,omitempty"`
	Description        string  `dynamodbav:"description,omitempty"`
	Method             string  `dynamodbav:"method,omitempty"`
	Amount             float64 `dynamodbav:"amount"`
	Date               string  `dynamodbav:"date"`
	RelatedClientID    string  `dynamodbav:"related_client_id,omitempty"`
	RelatedWorkID      string  `dynamodbav:"related_work_id,omitempty"`
	ProviderPaymentID  string  `dynamodbav:"provider_payment_id,omitempty"`
	ProviderPayloadRaw string  `dynamodbav:"provider_payload_raw,omitempty"`
	CreatedAt          string  `dynamodbav:"created_at"`
	UpdatedAt          string  `dynamodbav:"updated_at"`
}

// TransactionDynamoRepository persists Transaction entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: related_work_id-index (PK: related_work_id)
type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	av, err := attributevalue.MarshalMap(toTransactionItem(t))
	if err != nil {
		return entities.Transaction{}, err
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
		return entities.Transaction{}, err
	}
	return t, nil
}

func (r *TransactionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) ListAll(ctx context.Context) ([]entities.Transaction, error) {
	var transactions []entities.Transaction
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []transactionItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			transactions = append(transactions, fromTransactionItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return transactions, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *TransactionDynamoRepository) ListByWorkID(ctx context.Context, workID string) ([]entities.Transaction, error) {
	var transactions []entities.Transaction
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(transactionsWorkIDIndex),
			KeyConditionExpression: aws.String("#related_work_id = :related_work_id"),
			ExpressionAttributeNames: map[string]string{
				"#related_work_id": "related_work_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":related_work_id": &types.AttributeValueMemberS{Value: workID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []transactionItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			transactions = append(transactions, fromTransactionItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return transactions, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *TransactionDynamoRepository) Update(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	t.UpdatedAt = nowUTC()
	av, err := attributevalue.MarshalMap(toTransactionItem(t))
	if err != nil {
		return entities.Transaction{}, err
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
		return entities.Transaction{}, err
	}
	return t, nil
}

func (r *TransactionDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func toTransactionItem(t entities.Transaction) transactionItem {
	return transactionItem{
		ID:                 t.ID,
		Kind:               string(t.Kind),
		Status:             string(t.Status),
		Category:           t.Category,
		Description:        t.Description,
		Method:             t.Method,
		Amount:             t.Amount,
		Date:               formatTime(t.Date),
		RelatedClientID:    t.RelatedClientID,
		RelatedWorkID:      t.RelatedWorkID,
		ProviderPaymentID:  t.ProviderPaymentID,
		ProviderPayloadRaw: string(t.ProviderPayloadRaw),
		CreatedAt:          formatTime(t.CreatedAt),
		UpdatedAt:          formatTime(t.UpdatedAt),
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	t := entities.Transaction{
		ID:                it.ID,
		Kind:              entities.TransactionKind(it.Kind),
		Status:            entities.TransactionStatus(it.Status),
		Category:          it.Category,
		Description:       it.Description,
		Method:            it.Method,
		Amount:            it.Amount,
		Date:              parseTime(it.Date),
		RelatedClientID:   it.RelatedClientID,
		RelatedWorkID:     it.RelatedWorkID,
		ProviderPaymentID: it.ProviderPaymentID,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
	if it.ProviderPayloadRaw != "" {
		t.ProviderPayloadRaw = json.RawMessage(it.ProviderPayloadRaw)
	}
	return t
}

package repository

import (
	"context"

	"construtora_api/internal/domain/entities"
	"construtora_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBudgetPresetsTableName = "budget_presets"

type presetMaterialItem struct {
	ID         string  `dynamodbav:"id"`
	Name       string  `dynamodbav:"name"`
	PricePerM2 float64 `dynamodbav:"price_per_m2"`
	M2         float64 `dynamodbav:"m2"`
}

type presetLaborItem struct {
	ID    string  `dynamodbav:"id"`
	Name  string  `dynamodbav:"name"`
	Value float64 `dynamodbav:"value"`
}

type budgetPresetItem struct {
	ID        string               `dynamodbav:"id"`
	Name      string               `dynamodbav:"name"`
	Materials []presetMaterialItem `dynamodbav:"materials"`
	Labor     []presetLaborItem    `dynamodbav:"labor"`
	Discount  float64              `dynamodbav:"discount"`
	CreatedAt string               `dynamodbav:"created_at"`
	UpdatedAt string               `dynamodbav:"updated_at"`
}

// BudgetPresetDynamoRepository persists BudgetPreset entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type BudgetPresetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetPresetRepository = (*BudgetPresetDynamoRepository)(nil)

func NewBudgetPresetDynamoRepository(ddb *dynamodb.Client) *BudgetPresetDynamoRepository {
	return &BudgetPresetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGET_PRESETS_TABLE", defaultBudgetPresetsTableName),
	}
}

func (r *BudgetPresetDynamoRepository) Create(ctx context.Context, p entities.BudgetPreset) (entities.BudgetPreset, error) {
	av, err := attributevalue.MarshalMap(toBudgetPresetItem(p))
	if err != nil {
		return entities.BudgetPreset{}, err
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
		return entities.BudgetPreset{}, err
	}
	return p, nil
}

func (r *BudgetPresetDynamoRepository) GetByID(ctx context.Context, id string) (entities.BudgetPreset, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BudgetPreset{}, err
	}
	if len(out.Item) == 0 {
		return entities.BudgetPreset{}, nil
	}

	var it budgetPresetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BudgetPreset{}, err
	}
	return fromBudgetPresetItem(it), nil
}

func (r *BudgetPresetDynamoRepository) ListAll(ctx context.Context) ([]entities.BudgetPreset, error) {
	var presets []entities.BudgetPreset
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []budgetPresetItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			presets = append(presets, fromBudgetPresetItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return presets, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *BudgetPresetDynamoRepository) Update(ctx context.Context, p entities.BudgetPreset) (entities.BudgetPreset, error) {
	p.UpdatedAt = nowUTC()
	av, err := attributevalue.MarshalMap(toBudgetPresetItem(p))
	if err != nil {
		return entities.BudgetPreset{}, err
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
		return entities.BudgetPreset{}, err
	}
	return p, nil
}

func (r *BudgetPresetDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toBudgetPresetItem(p entities.BudgetPreset) budgetPresetItem {
	it := budgetPresetItem{
		ID:        p.ID,
		Name:      p.Name,
		Materials: make([]presetMaterialItem, 0, len(p.Materials)),
		Labor:     make([]presetLaborItem, 0, len(p.Labor)),
		Discount:  p.Discount,
		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatTime(p.UpdatedAt),
	}
	for _, m := range p.Materials {
		it.Materials = append(it.Materials, presetMaterialItem{ID: m.ID, Name: m.Name, PricePerM2: m.PricePerM2, M2: m.M2})
	}
	for _, l := range p.Labor {
		it.Labor = append(it.Labor, presetLaborItem{ID: l.ID, Name: l.Name, Value: l.Value})
	}
	return it
}

func fromBudgetPresetItem(it budgetPresetItem) entities.BudgetPreset {
	p := entities.BudgetPreset{
		ID:        it.ID,
		Name:      it.Name,
		Materials: make([]entities.PresetMaterial, 0, len(it.Materials)),
		Labor:     make([]entities.PresetLabor, 0, len(it.Labor)),
		Discount:  it.Discount,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
	for _, m := range it.Materials {
		p.Materials = append(p.Materials, entities.PresetMaterial{ID: m.ID, Name: m.Name, PricePerM2: m.PricePerM2, M2: m.M2})
	}
	for _, l := range it.Labor {
		p.Labor = append(p.Labor, entities.PresetLabor{ID: l.ID, Name: l.Name, Value: l.Value})
	}
	return p
}

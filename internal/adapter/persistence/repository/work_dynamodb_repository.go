package repository

import (
	"context"
	"errors"

	"construtora_api/internal/domain/entities"
	"construtora_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWorksTableName = "works"
	worksClientIDIndex    = "client_id-index"
)

type checklistEntryItem struct {
	ID        string `dynamodbav:"id"`
	Title     string `dynamodbav:"title"`
	Done      bool   `dynamodbav:"done"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type manualMaterialItem struct {
	ID         string  `dynamodbav:"id"`
	Name       string  `dynamodbav:"name"`
	PricePerM2 float64 `dynamodbav:"price_per_m2"`
	AreaM2     float64 `dynamodbav:"area_m2"`
}

type manualLaborItem struct {
	ID    string  `dynamodbav:"id"`
	Name  string  `dynamodbav:"name"`
	Price float64 `dynamodbav:"price"`
}

type budgetManualItem struct {
	Materials []manualMaterialItem `dynamodbav:"materials"`
	Labor     []manualLaborItem    `dynamodbav:"labor"`
	Discount  float64              `dynamodbav:"discount"`
}

type clientSnapshotItem struct {
	Name    string `dynamodbav:"name"`
	Email   string `dynamodbav:"email,omitempty"`
	Phone   string `dynamodbav:"phone,omitempty"`
	Company string `dynamodbav:"company,omitempty"`
}

type workItem struct {
	ID              string               `dynamodbav:"id"`
	Title           string               `dynamodbav:"title"`
	ResponsibleName string               `dynamodbav:"responsible_name"`
	ClientID        string               `dynamodbav:"client_id,omitempty"`
	ClientSnapshot  *clientSnapshotItem  `dynamodbav:"client_snapshot,omitempty"`
	Status          string               `dynamodbav:"status"`
	BudgetKind      string               `dynamodbav:"budget_kind"`
	BudgetPresetID  string               `dynamodbav:"budget_preset_id,omitempty"`
	BudgetManual    *budgetManualItem    `dynamodbav:"budget_manual,omitempty"`
	Checklist       []checklistEntryItem `dynamodbav:"checklist"`
	CreatedAt       string               `dynamodbav:"created_at"`
	UpdatedAt       string               `dynamodbav:"updated_at"`
	Version         int64                `dynamodbav:"version"`
}

// WorkDynamoRepository persists Work aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
//
// The whole aggregate (checklist included) lives in a single item, so every
// checklist mutation is one conditional write. Updates CAS on the version
// attribute and bump it; progress is derived and never stored.
type WorkDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkRepository = (*WorkDynamoRepository)(nil)

func NewWorkDynamoRepository(ddb *dynamodb.Client) *WorkDynamoRepository {
	return &WorkDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORKS_TABLE", defaultWorksTableName),
	}
}

func (r *WorkDynamoRepository) Create(ctx context.Context, w entities.Work) (entities.Work, error) {
	av, err := attributevalue.MarshalMap(toWorkItem(w))
	if err != nil {
		return entities.Work{}, err
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
		return entities.Work{}, err
	}
	return w, nil
}

func (r *WorkDynamoRepository) GetByID(ctx context.Context, id string) (entities.Work, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Work{}, err
	}
	if len(out.Item) == 0 {
		return entities.Work{}, nil
	}

	var it workItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Work{}, err
	}
	return fromWorkItem(it), nil
}

func (r *WorkDynamoRepository) ListAll(ctx context.Context) ([]entities.Work, error) {
	var works []entities.Work
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []workItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			works = append(works, fromWorkItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return works, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *WorkDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Work, error) {
	var works []entities.Work
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(worksClientIDIndex),
			KeyConditionExpression: aws.String("#client_id = :client_id"),
			ExpressionAttributeNames: map[string]string{
				"#client_id": "client_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":client_id": &types.AttributeValueMemberS{Value: clientID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []workItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			works = append(works, fromWorkItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return works, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// Update writes the whole aggregate conditioned on the version the caller
// read, bumping it by one. A failed condition maps to ErrVersionConflict so
// callers can reload and retry.
func (r *WorkDynamoRepository) Update(ctx context.Context, w entities.Work) (entities.Work, error) {
	readVersion := w.Version
	w.Version = readVersion + 1
	w.UpdatedAt = nowUTC()

	av, err := attributevalue.MarshalMap(toWorkItem(w))
	if err != nil {
		return entities.Work{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :version"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":version": &types.AttributeValueMemberN{Value: int64ToString(readVersion)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Work{}, interfaces.ErrVersionConflict
		}
		return entities.Work{}, err
	}
	return w, nil
}

func (r *WorkDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toWorkItem(w entities.Work) workItem {
	it := workItem{
		ID:              w.ID,
		Title:           w.Title,
		ResponsibleName: w.ResponsibleName,
		ClientID:        w.ClientID,
		Status:          w.Status,
		BudgetKind:      string(w.Budget.Kind),
		BudgetPresetID:  w.Budget.PresetID,
		Checklist:       make([]checklistEntryItem, 0, len(w.Checklist)),
		CreatedAt:       formatTime(w.CreatedAt),
		UpdatedAt:       formatTime(w.UpdatedAt),
		Version:         w.Version,
	}
	if it.BudgetKind == "" {
		it.BudgetKind = string(entities.BudgetKindNone)
	}
	if w.ClientSnapshot != nil {
		it.ClientSnapshot = &clientSnapshotItem{
			Name:    w.ClientSnapshot.Name,
			Email:   w.ClientSnapshot.Email,
			Phone:   w.ClientSnapshot.Phone,
			Company: w.ClientSnapshot.Company,
		}
	}
	if w.Budget.Manual != nil {
		manual := budgetManualItem{
			Materials: make([]manualMaterialItem, 0, len(w.Budget.Manual.Materials)),
			Labor:     make([]manualLaborItem, 0, len(w.Budget.Manual.Labor)),
			Discount:  w.Budget.Manual.Discount,
		}
		for _, m := range w.Budget.Manual.Materials {
			manual.Materials = append(manual.Materials, manualMaterialItem{ID: m.ID, Name: m.Name, PricePerM2: m.PricePerM2, AreaM2: m.AreaM2})
		}
		for _, l := range w.Budget.Manual.Labor {
			manual.Labor = append(manual.Labor, manualLaborItem{ID: l.ID, Name: l.Name, Price: l.Price})
		}
		it.BudgetManual = &manual
	}
	for _, c := range w.Checklist {
		it.Checklist = append(it.Checklist, checklistEntryItem{
			ID:        c.ID,
			Title:     c.Title,
			Done:      c.Done,
			CreatedAt: formatTime(c.CreatedAt),
			UpdatedAt: formatTime(c.UpdatedAt),
		})
	}
	return it
}

func fromWorkItem(it workItem) entities.Work {
	w := entities.Work{
		ID:              it.ID,
		Title:           it.Title,
		ResponsibleName: it.ResponsibleName,
		ClientID:        it.ClientID,
		Status:          it.Status,
		Budget:          entities.Budget{Kind: entities.BudgetKind(it.BudgetKind), PresetID: it.BudgetPresetID},
		Checklist:       make([]entities.ChecklistItem, 0, len(it.Checklist)),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
		Version:         it.Version,
	}
	if w.Budget.Kind == "" {
		w.Budget.Kind = entities.BudgetKindNone
	}
	if it.ClientSnapshot != nil {
		w.ClientSnapshot = &entities.ClientSnapshot{
			Name:    it.ClientSnapshot.Name,
			Email:   it.ClientSnapshot.Email,
			Phone:   it.ClientSnapshot.Phone,
			Company: it.ClientSnapshot.Company,
		}
	}
	if it.BudgetManual != nil {
		manual := entities.BudgetManual{
			Materials: make([]entities.ManualMaterial, 0, len(it.BudgetManual.Materials)),
			Labor:     make([]entities.ManualLabor, 0, len(it.BudgetManual.Labor)),
			Discount:  it.BudgetManual.Discount,
		}
		for _, m := range it.BudgetManual.Materials {
			manual.Materials = append(manual.Materials, entities.ManualMaterial{ID: m.ID, Name: m.Name, PricePerM2: m.PricePerM2, AreaM2: m.AreaM2})
		}
		for _, l := range it.BudgetManual.Labor {
			manual.Labor = append(manual.Labor, entities.ManualLabor{ID: l.ID, Name: l.Name, Price: l.Price})
		}
		w.Budget.Manual = &manual
	}
	for _, c := range it.Checklist {
		w.Checklist = append(w.Checklist, entities.ChecklistItem{
			ID:        c.ID,
			Title:     c.Title,
			Done:      c.Done,
			CreatedAt: parseTime(c.CreatedAt),
			UpdatedAt: parseTime(c.UpdatedAt),
		})
	}
	return w
}

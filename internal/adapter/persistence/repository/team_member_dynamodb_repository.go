package repository

import (
	"context"
	"time"

	"construtora_api/internal/domain/entities"
	"construtora_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTeamMembersTableName = "team_members"

type teamMemberItem struct {
	ID           string `dynamodbav:"id"`
	FirstName    string `dynamodbav:"first_name"`
	LastName     string `dynamodbav:"last_name"`
	BirthDate    string `dynamodbav:"birth_date,omitempty"`
	Role         string `dynamodbav:"role,omitempty"`
	Phone        string `dynamodbav:"phone,omitempty"`
	Email        string `dynamodbav:"email,omitempty"`
	ContactPhone string `dynamodbav:"contact_phone,omitempty"`
	Status       string `dynamodbav:"status"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// TeamMemberDynamoRepository persists TeamMember entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type TeamMemberDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITeamMemberRepository = (*TeamMemberDynamoRepository)(nil)

func NewTeamMemberDynamoRepository(ddb *dynamodb.Client) *TeamMemberDynamoRepository {
	return &TeamMemberDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TEAM_MEMBERS_TABLE", defaultTeamMembersTableName),
	}
}

func (r *TeamMemberDynamoRepository) Create(ctx context.Context, m entities.TeamMember) (entities.TeamMember, error) {
	av, err := attributevalue.MarshalMap(toTeamMemberItem(m))
	if err != nil {
		return entities.TeamMember{}, err
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
		return entities.TeamMember{}, err
	}
	return m, nil
}

func (r *TeamMemberDynamoRepository) GetByID(ctx context.Context, id string) (entities.TeamMember, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TeamMember{}, err
	}
	if len(out.Item) == 0 {
		return entities.TeamMember{}, nil
	}

	var it teamMemberItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TeamMember{}, err
	}
	return fromTeamMemberItem(it), nil
}

func (r *TeamMemberDynamoRepository) ListAll(ctx context.Context) ([]entities.TeamMember, error) {
	var members []entities.TeamMember
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []teamMemberItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			members = append(members, fromTeamMemberItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return members, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *TeamMemberDynamoRepository) Update(ctx context.Context, m entities.TeamMember) (entities.TeamMember, error) {
	m.UpdatedAt = nowUTC()
	av, err := attributevalue.MarshalMap(toTeamMemberItem(m))
	if err != nil {
		return entities.TeamMember{}, err
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
		return entities.TeamMember{}, err
	}
	return m, nil
}

func (r *TeamMemberDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toTeamMemberItem(m entities.TeamMember) teamMemberItem {
	it := teamMemberItem{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Role:         m.Role,
		Phone:        m.Phone,
		Email:        m.Email,
		ContactPhone: m.ContactPhone,
		Status:       string(m.Status),
		CreatedAt:    formatTime(m.CreatedAt),
		UpdatedAt:    formatTime(m.UpdatedAt),
	}
	if m.BirthDate != nil {
		it.BirthDate = formatTime(*m.BirthDate)
	}
	return it
}

func fromTeamMemberItem(it teamMemberItem) entities.TeamMember {
	m := entities.TeamMember{
		ID:           it.ID,
		FirstName:    it.FirstName,
		LastName:     it.LastName,
		Role:         it.Role,
		Phone:        it.Phone,
		Email:        it.Email,
		ContactPhone: it.ContactPhone,
		Status:       entities.TeamMemberStatus(it.Status),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
	if it.BirthDate != "" {
		if d, err := time.Parse(time.RFC3339Nano, it.BirthDate); err == nil {
			m.BirthDate = &d
		}
	}
	return m
}

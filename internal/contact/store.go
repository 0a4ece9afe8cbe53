package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/connectingthedots/contact-api/pkg/logging"
)

// Store is the persistence port for submissions. Put is the only operation
// the intake path uses; Get and List exist for tests and operator tooling.
type Store interface {
	Put(ctx context.Context, sub *Submission) error
	Get(ctx context.Context, email string) (*Submission, error)
	List(ctx context.Context) ([]Submission, error)
}

type dynamoAPI interface {
	PutItem(context.Context, *dynamodb.PutItemInput, ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(context.Context, *dynamodb.GetItemInput, ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(context.Context, *dynamodb.ScanInput, ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DynamoStore persists submissions to a DynamoDB table partitioned by email.
type DynamoStore struct {
	client    dynamoAPI
	tableName string
	logger    *logging.Logger
}

var _ Store = (*DynamoStore)(nil)

// NewDynamoStore builds a store backed by the provided DynamoDB client.
func NewDynamoStore(client dynamoAPI, tableName string, logger *logging.Logger) *DynamoStore {
	if client == nil {
		panic("contact: dynamodb client cannot be nil")
	}
	if tableName == "" {
		panic("contact: table name cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &DynamoStore{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// Put writes a submission, replacing any existing record with the same
// email. The put is unconditional: last write wins, and a platform retry of
// the same submission is a harmless re-put.
func (s *DynamoStore) Put(ctx context.Context, sub *Submission) error {
	if sub == nil {
		return errors.New("contact: submission cannot be nil")
	}
	if sub.Email == "" {
		return errors.New("contact: submission email cannot be empty")
	}

	item, err := attributevalue.MarshalMap(sub)
	if err != nil {
		return fmt.Errorf("contact: failed to marshal submission: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("contact: failed to persist submission: %w", err)
	}

	s.logger.Info("submission stored", "email", sub.Email)
	return nil
}

// Get fetches a submission by email.
func (s *DynamoStore) Get(ctx context.Context, email string) (*Submission, error) {
	if email == "" {
		return nil, errors.New("contact: email required")
	}
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			FieldEmail: &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("contact: failed to fetch submission: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, ErrNotFound
	}

	var sub Submission
	if err := attributevalue.UnmarshalMap(out.Item, &sub); err != nil {
		return nil, fmt.Errorf("contact: failed to decode submission: %w", err)
	}
	return &sub, nil
}

// List scans the whole table. Operator tooling only; the intake path never
// reads before writing.
func (s *DynamoStore) List(ctx context.Context) ([]Submission, error) {
	var subs []Submission
	var startKey map[string]types.AttributeValue
	for {
		out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(s.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("contact: failed to scan submissions: %w", err)
		}

		var page []Submission
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("contact: failed to decode submissions: %w", err)
		}
		subs = append(subs, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return subs, nil
}

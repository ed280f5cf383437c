package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"controle_financeiro/internal/config"
	"controle_financeiro/internal/domain/entities"
	"controle_financeiro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultContasTableName = "contas"

	// counterItemID is the key of the item holding the id sequence. Real
	// contas start at 1, like SERIAL.
	counterItemID = 0

	tableWaitTimeout = 2 * time.Minute

	// Column widths of the SQL table, in characters.
	maxTextLen   = 255
	maxStatusLen = 50
)

// DynamoAPI is the subset of *dynamodb.Client used by ContaDynamoRepository.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DeleteTable(ctx context.Context, params *dynamodb.DeleteTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteTableOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

type contaItem struct {
	ID         int64  `dynamodbav:"id"`
	Nome       string `dynamodbav:"nome"`
	Valor      string `dynamodbav:"valor"`
	Vencimento string `dynamodbav:"vencimento"`
	Status     string `dynamodbav:"status"`
}

// ContaDynamoRepository persists contas in a DynamoDB table.
//
// Table requirements:
//   - PK: id (number)
//
// DynamoDB has no SERIAL nor column constraints, so the repository keeps an
// atomic counter item (id 0) and checks the SQL constraints itself (see
// checkConstraints), returning the errors Postgres would produce.
type ContaDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var (
	_ interfaces.IContaRepository = (*ContaDynamoRepository)(nil)
	_ SchemaManager               = (*ContaDynamoRepository)(nil)
)

func NewContaDynamoRepository(ddb DynamoAPI, tableName string) *ContaDynamoRepository {
	if strings.TrimSpace(tableName) == "" {
		tableName = defaultContasTableName
	}
	return &ContaDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ContaDynamoRepository) Insert(ctx context.Context, in entities.ContaInput) (entities.Conta, error) {
	if err := checkConstraints(in); err != nil {
		return entities.Conta{}, err
	}

	id, err := r.nextID(ctx)
	if err != nil {
		return entities.Conta{}, err
	}

	it := contaItem{ID: id, Nome: in.Nome, Valor: in.Valor, Vencimento: in.Vencimento, Status: string(in.Status)}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Conta{}, fmt.Errorf("%w: marshal conta: %w", entities.ErrStorage, err)
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
		return entities.Conta{}, fmt.Errorf("%w: insert: %w", entities.ErrStorage, err)
	}
	return fromContaItem(it), nil
}

func (r *ContaDynamoRepository) ListAll(ctx context.Context) ([]entities.Conta, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#id > :counter"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":counter": &types.AttributeValueMemberN{Value: strconv.Itoa(counterItemID)},
		},
		ConsistentRead: aws.Bool(true),
	})

	contas := []entities.Conta{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: list: %w", entities.ErrStorage, err)
		}
		var items []contaItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("%w: unmarshal contas: %w", entities.ErrStorage, err)
		}
		for _, it := range items {
			contas = append(contas, fromContaItem(it))
		}
	}

	// Scan order is hash order; keep the insertion order a SERIAL table gives.
	sort.Slice(contas, func(i, j int) bool { return contas[i].ID < contas[j].ID })
	return contas, nil
}

func (r *ContaDynamoRepository) Update(ctx context.Context, id int64, in entities.ContaInput) (entities.Conta, error) {
	if id <= counterItemID {
		return entities.Conta{}, fmt.Errorf("%w: id %d", entities.ErrContaNotFound, id)
	}
	if err := checkConstraints(in); err != nil {
		return entities.Conta{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 contaKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #nome = :nome, #valor = :valor, #vencimento = :vencimento, #status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#nome":       "nome",
			"#valor":      "valor",
			"#vencimento": "vencimento",
			"#status":     "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":nome":       &types.AttributeValueMemberS{Value: in.Nome},
			":valor":      &types.AttributeValueMemberS{Value: in.Valor},
			":vencimento": &types.AttributeValueMemberS{Value: in.Vencimento},
			":status":     &types.AttributeValueMemberS{Value: string(in.Status)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Conta{}, fmt.Errorf("%w: id %d", entities.ErrContaNotFound, id)
		}
		return entities.Conta{}, fmt.Errorf("%w: update: %w", entities.ErrStorage, err)
	}

	var it contaItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Conta{}, fmt.Errorf("%w: unmarshal conta: %w", entities.ErrStorage, err)
	}
	return fromContaItem(it), nil
}

func (r *ContaDynamoRepository) Delete(ctx context.Context, id int64) error {
	if id <= counterItemID {
		return fmt.Errorf("%w: id %d", entities.ErrContaNotFound, id)
	}

	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 contaKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return fmt.Errorf("%w: id %d", entities.ErrContaNotFound, id)
		}
		return fmt.Errorf("%w: delete: %w", entities.ErrStorage, err)
	}
	return nil
}

func (r *ContaDynamoRepository) ResetAll(ctx context.Context) error {
	return r.EnsureSchema(ctx, config.SchemaModeRecreate)
}

// EnsureSchema creates the table and waits until it is ACTIVE.
// Recreate mode deletes an existing table first, which also resets the id counter.
func (r *ContaDynamoRepository) EnsureSchema(ctx context.Context, mode config.SchemaMode) error {
	if mode == config.SchemaModeRecreate {
		if err := r.dropTable(ctx); err != nil {
			return err
		}
	}

	_, err := r.ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(r.tableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeN},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		var inUse *types.ResourceInUseException
		if !(mode == config.SchemaModePreserve && errors.As(err, &inUse)) {
			return fmt.Errorf("%w: create table: %w", entities.ErrStorage, err)
		}
	}

	waiter := dynamodb.NewTableExistsWaiter(r.ddb)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(r.tableName)}, tableWaitTimeout); err != nil {
		return fmt.Errorf("%w: wait table: %w", entities.ErrStorage, err)
	}
	return nil
}

func (r *ContaDynamoRepository) dropTable(ctx context.Context) error {
	_, err := r.ddb.DeleteTable(ctx, &dynamodb.DeleteTableInput{TableName: aws.String(r.tableName)})
	if err != nil {
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("%w: drop table: %w", entities.ErrStorage, err)
	}

	waiter := dynamodb.NewTableNotExistsWaiter(r.ddb)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(r.tableName)}, tableWaitTimeout); err != nil {
		return fmt.Errorf("%w: wait table deletion: %w", entities.ErrStorage, err)
	}
	return nil
}

func (r *ContaDynamoRepository) nextID(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              contaKey(counterItemID),
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: next id: %w", entities.ErrStorage, err)
	}

	var counter struct {
		Seq int64 `dynamodbav:"seq"`
	}
	if err := attributevalue.UnmarshalMap(out.Attributes, &counter); err != nil {
		return 0, fmt.Errorf("%w: unmarshal counter: %w", entities.ErrStorage, err)
	}
	if counter.Seq <= counterItemID {
		return 0, fmt.Errorf("%w: invalid sequence value %d", entities.ErrStorage, counter.Seq)
	}
	return counter.Seq, nil
}

// checkConstraints mirrors the SQL table: NOT NULL columns, VARCHAR widths
// and the status CHECK constraint.
func checkConstraints(in entities.ContaInput) error {
	if missing := in.MissingFields(); len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", entities.ErrConstraintViolation, strings.Join(missing, ", "))
	}
	for _, f := range []struct {
		name  string
		value string
		max   int
	}{
		{"nome", in.Nome, maxTextLen},
		{"valor", in.Valor, maxTextLen},
		{"vencimento", in.Vencimento, maxTextLen},
		{"status", string(in.Status), maxStatusLen},
	} {
		if n := utf8.RuneCountInString(f.value); n > f.max {
			return fmt.Errorf("%w: %s has %d characters, max %d", entities.ErrConstraintViolation, f.name, n, f.max)
		}
	}
	if !in.Status.IsValid() {
		return fmt.Errorf("%w: status %q", entities.ErrConstraintViolation, in.Status)
	}
	return nil
}

func contaKey(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
	}
}

func fromContaItem(it contaItem) entities.Conta {
	return entities.Conta{
		ID:         it.ID,
		Nome:       it.Nome,
		Valor:      it.Valor,
		Vencimento: it.Vencimento,
		Status:     entities.ContaStatus(it.Status),
	}
}

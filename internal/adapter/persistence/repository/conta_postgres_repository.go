package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"controle_financeiro/internal/config"
	"controle_financeiro/internal/domain/entities"
	"controle_financeiro/internal/usecase/interfaces"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	dropContasTableSQL = `DROP TABLE IF EXISTS contas`

	createContasTableSQL = `CREATE TABLE contas (
		id SERIAL PRIMARY KEY,
		nome VARCHAR(255) NOT NULL,
		valor VARCHAR(255) NOT NULL,
		vencimento VARCHAR(255) NOT NULL,
		status VARCHAR(50) NOT NULL CHECK (status IN ('vencida', 'paga', 'a vencer'))
	)`

	createContasTableIfNotExistsSQL = `CREATE TABLE IF NOT EXISTS contas (
		id SERIAL PRIMARY KEY,
		nome VARCHAR(255) NOT NULL,
		valor VARCHAR(255) NOT NULL,
		vencimento VARCHAR(255) NOT NULL,
		status VARCHAR(50) NOT NULL CHECK (status IN ('vencida', 'paga', 'a vencer'))
	)`

	insertContaSQL = `
		INSERT INTO contas (nome, valor, vencimento, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, nome, valor, vencimento, status
	`

	listContasSQL = `SELECT id, nome, valor, vencimento, status FROM contas`

	updateContaSQL = `
		UPDATE contas
		SET nome = $1, valor = $2, vencimento = $3, status = $4
		WHERE id = $5
		RETURNING id, nome, valor, vencimento, status
	`

	deleteContaSQL = `DELETE FROM contas WHERE id = $1`
)

const defaultQueryTimeout = 5 * time.Second

// maxSerialID is the largest value a SERIAL (int4) id can hold.
const maxSerialID = math.MaxInt32

// ContaPostgresRepository persists contas in PostgreSQL.
//
// Every method runs a single auto-committed statement; the pool handles
// concurrent access.
type ContaPostgresRepository struct {
	db           DB
	queryTimeout time.Duration
}

var (
	_ interfaces.IContaRepository = (*ContaPostgresRepository)(nil)
	_ SchemaManager               = (*ContaPostgresRepository)(nil)
)

func NewContaPostgresRepository(db DB, queryTimeout time.Duration) *ContaPostgresRepository {
	if queryTimeout <= 0 {
		queryTimeout = defaultQueryTimeout
	}
	return &ContaPostgresRepository{db: db, queryTimeout: queryTimeout}
}

func (r *ContaPostgresRepository) Insert(ctx context.Context, in entities.ContaInput) (entities.Conta, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	row := r.db.QueryRow(ctx, insertContaSQL, contaArgs(in)...)
	conta, err := scanConta(row)
	if err != nil {
		return entities.Conta{}, translateError("insert", err)
	}
	return conta, nil
}

func (r *ContaPostgresRepository) ListAll(ctx context.Context) ([]entities.Conta, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, listContasSQL)
	if err != nil {
		return nil, translateError("list", err)
	}
	defer rows.Close()

	contas := []entities.Conta{}
	for rows.Next() {
		conta, err := scanConta(rows)
		if err != nil {
			return nil, translateError("list", err)
		}
		contas = append(contas, conta)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("list", err)
	}
	return contas, nil
}

func (r *ContaPostgresRepository) Update(ctx context.Context, id int64, in entities.ContaInput) (entities.Conta, error) {
	if !serialID(id) {
		return entities.Conta{}, fmt.Errorf("%w: id %d", entities.ErrContaNotFound, id)
	}

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	args := append(contaArgs(in), id)
	conta, err := scanConta(r.db.QueryRow(ctx, updateContaSQL, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Conta{}, fmt.Errorf("%w: id %d", entities.ErrContaNotFound, id)
		}
		return entities.Conta{}, translateError("update", err)
	}
	return conta, nil
}

func (r *ContaPostgresRepository) Delete(ctx context.Context, id int64) error {
	if !serialID(id) {
		return fmt.Errorf("%w: id %d", entities.ErrContaNotFound, id)
	}

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, deleteContaSQL, id)
	if err != nil {
		return translateError("delete", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", entities.ErrContaNotFound, id)
	}
	return nil
}

// ResetAll drops and recreates the table unconditionally.
func (r *ContaPostgresRepository) ResetAll(ctx context.Context) error {
	return r.EnsureSchema(ctx, config.SchemaModeRecreate)
}

// EnsureSchema creates the contas table. Recreate mode drops it first.
func (r *ContaPostgresRepository) EnsureSchema(ctx context.Context, mode config.SchemaMode) error {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	if mode == config.SchemaModePreserve {
		if _, err := r.db.Exec(ctx, createContasTableIfNotExistsSQL); err != nil {
			return translateError("create table", err)
		}
		return nil
	}

	if _, err := r.db.Exec(ctx, dropContasTableSQL); err != nil {
		return translateError("drop table", err)
	}
	if _, err := r.db.Exec(ctx, createContasTableSQL); err != nil {
		return translateError("create table", err)
	}
	return nil
}

// contaArgs maps empty fields to NULL so the NOT NULL constraints reject them.
func contaArgs(in entities.ContaInput) []any {
	return []any{
		nullIfEmpty(in.Nome),
		nullIfEmpty(in.Valor),
		nullIfEmpty(in.Vencimento),
		nullIfEmpty(string(in.Status)),
	}
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// serialID reports whether id fits the int4 column. pgx refuses to encode
// larger values, and no stored row can carry one.
func serialID(id int64) bool {
	return id > 0 && id <= maxSerialID
}

func scanConta(row pgx.Row) (entities.Conta, error) {
	var (
		conta  entities.Conta
		status string
	)
	if err := row.Scan(&conta.ID, &conta.Nome, &conta.Valor, &conta.Vencimento, &status); err != nil {
		return entities.Conta{}, err
	}
	conta.Status = entities.ContaStatus(status)
	return conta, nil
}

func translateError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation, pgerrcode.StringDataRightTruncationDataException:
			return fmt.Errorf("%w: %s: %s", entities.ErrConstraintViolation, op, pgErr.Message)
		}
	}
	return fmt.Errorf("%w: %s: %w", entities.ErrStorage, op, err)
}

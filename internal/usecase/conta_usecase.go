package usecase

import (
	"context"
	"errors"
	"fmt"

	"controle_financeiro/internal/domain/entities"
	"controle_financeiro/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

const contaUseCaseComponent = "[conta][usecase]"

// IContaUseCase exposes the operations behind the /api/v1 routes.
//
//go:generate mockgen -source=conta_usecase.go -destination=../adapter/http/handlers/mocks/mock_conta_usecase.go -package=mocks
type IContaUseCase interface {
	Insert(ctx context.Context, in entities.ContaInput) (entities.Conta, error)
	List(ctx context.Context) ([]entities.Conta, error)
	Update(ctx context.Context, id int64, in entities.ContaInput) (entities.Conta, error)
	Delete(ctx context.Context, id int64) error
	Reset(ctx context.Context) error
}

type ContaUseCase struct {
	repo interfaces.IContaRepository
}

var _ IContaUseCase = (*ContaUseCase)(nil)

func NewContaUseCase(repo interfaces.IContaRepository) *ContaUseCase {
	return &ContaUseCase{repo: repo}
}

// Insert stores a new conta. Fields are not validated here: the storage
// constraints decide (absent field or unknown status -> ErrConstraintViolation).
func (u *ContaUseCase) Insert(ctx context.Context, in entities.ContaInput) (entities.Conta, error) {
	logger := zerolog.Ctx(ctx).With().Str("component", contaUseCaseComponent).Logger()

	conta, err := u.repo.Insert(ctx, in)
	if err != nil {
		err = normalizeError(err)
		logger.Error().Err(err).Str("nome", in.Nome).Str("status", string(in.Status)).Msg("insert failed")
		return entities.Conta{}, err
	}

	logger.Info().Int64("id", conta.ID).Str("nome", conta.Nome).Str("valor", conta.Valor).
		Str("vencimento", conta.Vencimento).Str("status", string(conta.Status)).Msg("conta inserted")
	return conta, nil
}

// List returns every conta in storage order. The result is never nil.
func (u *ContaUseCase) List(ctx context.Context) ([]entities.Conta, error) {
	logger := zerolog.Ctx(ctx).With().Str("component", contaUseCaseComponent).Logger()

	contas, err := u.repo.ListAll(ctx)
	if err != nil {
		err = normalizeError(err)
		logger.Error().Err(err).Msg("list failed")
		return nil, err
	}
	if contas == nil {
		contas = []entities.Conta{}
	}

	logger.Debug().Int("count", len(contas)).Msg("contas listed")
	return contas, nil
}

// Update overwrites every mutable field of the conta identified by id.
func (u *ContaUseCase) Update(ctx context.Context, id int64, in entities.ContaInput) (entities.Conta, error) {
	logger := zerolog.Ctx(ctx).With().Str("component", contaUseCaseComponent).Int64("id", id).Logger()

	// ids are assigned from 1; anything else can never match a row.
	if id <= 0 {
		logger.Warn().Msg("update of unknown id")
		return entities.Conta{}, fmt.Errorf("%w: id %d", entities.ErrContaNotFound, id)
	}

	conta, err := u.repo.Update(ctx, id, in)
	if err != nil {
		err = normalizeError(err)
		if errors.Is(err, entities.ErrContaNotFound) {
			logger.Warn().Msg("update of unknown id")
		} else {
			logger.Error().Err(err).Msg("update failed")
		}
		return entities.Conta{}, err
	}

	logger.Info().Str("nome", conta.Nome).Str("valor", conta.Valor).
		Str("vencimento", conta.Vencimento).Str("status", string(conta.Status)).Msg("conta updated")
	return conta, nil
}

func (u *ContaUseCase) Delete(ctx context.Context, id int64) error {
	logger := zerolog.Ctx(ctx).With().Str("component", contaUseCaseComponent).Int64("id", id).Logger()

	if id <= 0 {
		logger.Warn().Msg("delete of unknown id")
		return fmt.Errorf("%w: id %d", entities.ErrContaNotFound, id)
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		err = normalizeError(err)
		if errors.Is(err, entities.ErrContaNotFound) {
			logger.Warn().Msg("delete of unknown id")
		} else {
			logger.Error().Err(err).Msg("delete failed")
		}
		return err
	}

	logger.Info().Msg("conta deleted")
	return nil
}

// Reset drops and recreates the contas table. Every row is lost.
func (u *ContaUseCase) Reset(ctx context.Context) error {
	logger := zerolog.Ctx(ctx).With().Str("component", contaUseCaseComponent).Logger()

	if err := u.repo.ResetAll(ctx); err != nil {
		err = normalizeError(err)
		logger.Error().Err(err).Msg("reset failed")
		return err
	}

	logger.Warn().Msg("database reset")
	return nil
}

// normalizeError keeps the domain taxonomy and folds anything unknown into ErrStorage.
func normalizeError(err error) error {
	switch {
	case errors.Is(err, entities.ErrContaNotFound),
		errors.Is(err, entities.ErrConstraintViolation),
		errors.Is(err, entities.ErrStorage):
		return err
	default:
		return fmt.Errorf("%w: %w", entities.ErrStorage, err)
	}
}

package interfaces

import (
	"context"
	"controle_financeiro/internal/domain/entities"
)

// IContaRepository abstracts persistence of the contas table.
//
// Implementations must report:
//   - entities.ErrContaNotFound when update/delete match no row
//   - entities.ErrConstraintViolation when a required field is absent or the
//     status is outside the accepted set
//   - entities.ErrStorage for anything else
//
//go:generate mockgen -source=conta_repository_interface.go -destination=mocks/mock_conta_repository.go -package=mock_interfaces

type IContaRepository interface {
	Insert(ctx context.Context, in entities.ContaInput) (entities.Conta, error)
	ListAll(ctx context.Context) ([]entities.Conta, error)
	Update(ctx context.Context, id int64, in entities.ContaInput) (entities.Conta, error)
	Delete(ctx context.Context, id int64) error
	ResetAll(ctx context.Context) error
}

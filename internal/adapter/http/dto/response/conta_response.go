package response

import "controle_financeiro/internal/domain/entities"

type ContaResponse struct {
	ID         int64  `json:"id"`
	Nome       string `json:"nome"`
	Valor      string `json:"valor"`
	Vencimento string `json:"vencimento"`
	Status     string `json:"status"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromConta(c entities.Conta) ContaResponse {
	return ContaResponse{
		ID:         c.ID,
		Nome:       c.Nome,
		Valor:      c.Valor,
		Vencimento: c.Vencimento,
		Status:     string(c.Status),
	}
}

// FromContas never returns nil so an empty table is rendered as [].
func FromContas(contas []entities.Conta) []ContaResponse {
	out := make([]ContaResponse, 0, len(contas))
	for _, c := range contas {
		out = append(out, FromConta(c))
	}
	return out
}

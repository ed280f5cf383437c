package entities

// ContaStatus is the lifecycle state of a bill.
//
// The storage layer enforces this set with a check constraint; values outside
// it must make the write fail, never be coerced.
type ContaStatus string

const (
	ContaStatusVencida ContaStatus = "vencida"
	ContaStatusPaga    ContaStatus = "paga"
	ContaStatusAVencer ContaStatus = "a vencer"
)

// ContaStatuses lists every accepted status, in the order used by the check constraint.
var ContaStatuses = []ContaStatus{ContaStatusVencida, ContaStatusPaga, ContaStatusAVencer}

func (s ContaStatus) IsValid() bool {
	for _, v := range ContaStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Conta is a bill (financial obligation) row of the contas table.
//
// Valor and Vencimento are opaque text: the table stores them as VARCHAR and
// nothing parses them.
type Conta struct {
	ID         int64       `json:"id"`
	Nome       string      `json:"nome"`
	Valor      string      `json:"valor"`
	Vencimento string      `json:"vencimento"`
	Status     ContaStatus `json:"status"`
}

// ContaInput holds the mutable fields of a Conta. An empty field means
// "absent" and is rejected by the NOT NULL constraints.
type ContaInput struct {
	Nome       string
	Valor      string
	Vencimento string
	Status     ContaStatus
}

// MissingFields reports the names of required fields left empty.
func (in ContaInput) MissingFields() []string {
	var missing []string
	if in.Nome == "" {
		missing = append(missing, "nome")
	}
	if in.Valor == "" {
		missing = append(missing, "valor")
	}
	if in.Vencimento == "" {
		missing = append(missing, "vencimento")
	}
	if in.Status == "" {
		missing = append(missing, "status")
	}
	return missing
}

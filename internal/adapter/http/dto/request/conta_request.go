package request

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"controle_financeiro/internal/domain/entities"
)

var jsonNull = []byte("null")

// Text is a column value sent by the contas form. Browsers post strings, but
// valor often arrives as a JSON number; both are stored verbatim as text.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, jsonNull) {
		*t = ""
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
	case 't', 'f':
		var v bool
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*t = Text(strconv.FormatBool(v))
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*t = Text(n.String())
	}
	return nil
}

// ContaID accepts a JSON number or a numeric string. Anything that is not an
// integer resolves to 0, which matches no row.
type ContaID int64

func (id *ContaID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*id = 0
	if len(b) == 0 || bytes.Equal(b, jsonNull) {
		return nil
	}

	var raw any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	var s string
	switch v := raw.(type) {
	case json.Number:
		s = v.String()
	case string:
		s = strings.TrimSpace(v)
	default:
		return nil
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*id = ContaID(n)
	}
	return nil
}

// ContaRequest is the body of /conta/inserir, /conta/atualizar and
// /conta/excluir. ID is ignored on insert; excluir only reads ID.
type ContaRequest struct {
	ID         ContaID `json:"id" swaggertype:"integer"`
	Nome       Text    `json:"nome" swaggertype:"string"`
	Valor      Text    `json:"valor" swaggertype:"string"`
	Vencimento Text    `json:"vencimento" swaggertype:"string"`
	Status     Text    `json:"status" swaggertype:"string" enums:"vencida,paga,a vencer"`
}

func (r ContaRequest) ResolveID() int64 {
	return int64(r.ID)
}

func (r ContaRequest) ToInput() entities.ContaInput {
	return entities.ContaInput{
		Nome:       string(r.Nome),
		Valor:      string(r.Valor),
		Vencimento: string(r.Vencimento),
		Status:     entities.ContaStatus(r.Status),
	}
}

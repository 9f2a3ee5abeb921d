package domain

import "time"

// Convidado is an invited guest as the registry API returns it. The
// invitation code (codigo_unico) is the only external lookup key.
type Convidado struct {
	ID           int64     `json:"id"`
	Nome         string    `json:"nome"`
	CodigoUnico  string    `json:"codigo_unico"`
	Email        string    `json:"email,omitempty"`
	Telefone     string    `json:"telefone,omitempty"`
	Observacoes  string    `json:"observacoes,omitempty"`
	CriadoEm     time.Time `json:"criado_em"`
	AtualizadoEm time.Time `json:"atualizado_em"`
}

// ItemResgatado is the minimal item reference carried inside guest stats.
type ItemResgatado struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome,omitempty"`
}

// ConvidadoStats is the derived per-guest snapshot: whether the guest has
// an attendance confirmation and which items they have claimed. It is
// always replaced wholesale, never patched.
type ConvidadoStats struct {
	TemConfirmacao  bool            `json:"tem_confirmacao"`
	Confirmacao     *Confirmacao    `json:"confirmacao,omitempty"`
	ItensResgatados []ItemResgatado `json:"itens_resgatados"`
}

// ResgatouItem reports whether the guest holds the claim on item id.
// Safe on a nil receiver so pages render before a session resolves.
func (s *ConvidadoStats) ResgatouItem(id int64) bool {
	if s == nil {
		return false
	}
	for _, it := range s.ItensResgatados {
		if it.ID == id {
			return true
		}
	}
	return false
}

type CreateConvidadoInput struct {
	Nome        string
	Email       string
	Telefone    string
	Observacoes string
}

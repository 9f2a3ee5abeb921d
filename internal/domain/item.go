package domain

import "time"

// Item is a registry gift item owned by the upstream API. The front-end
// consumes it read-only apart from the claim/unclaim transitions.
type Item struct {
	ID           int64      `json:"id"`
	Nome         string     `json:"nome"`
	Descricao    string     `json:"descricao"`
	Categoria    string     `json:"categoria"`
	Preco        float64    `json:"preco"`
	ImagemURL    string     `json:"imagem_url"`
	LinkURL      string     `json:"link_url,omitempty"`
	Resgatado    bool       `json:"resgatado"`
	ResgatadoPor string     `json:"resgatado_por,omitempty"`
	ResgatadoEm  *time.Time `json:"resgatado_em,omitempty"`
	CriadoEm     time.Time  `json:"criado_em"`
	AtualizadoEm time.Time  `json:"atualizado_em"`
}

// ResgateInput is the claim payload: the claimant's display name plus the
// invitation code when a guest session is resolved.
type ResgateInput struct {
	Nome            string `json:"nome"`
	CodigoConvidado string `json:"codigo_convidado,omitempty"`
}

type CreateItemInput struct {
	Nome      string
	Descricao string
	Categoria string
	Preco     float64
	ImagemURL string
	LinkURL   string
}

package domain

import "time"

// Confirmacao is an attendance confirmation (adult/child headcount).
type Confirmacao struct {
	ID                 int64     `json:"id"`
	Nome               string    `json:"nome"`
	QuantidadeAdultos  int       `json:"quantidade_adultos"`
	QuantidadeCriancas int       `json:"quantidade_criancas"`
	CriadaEm           time.Time `json:"criada_em"`
}

type CreateConfirmacaoInput struct {
	Nome               string
	QuantidadeAdultos  int
	QuantidadeCriancas int
	CodigoConvidado    string
}

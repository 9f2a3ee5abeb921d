package domain

import "time"

// Mensagem is a well-wishes mural message. Only approved messages are
// served to guests; approval is an admin action on the upstream.
type Mensagem struct {
	ID           int64     `json:"id"`
	Nome         string    `json:"nome"`
	Mensagem     string    `json:"mensagem"`
	Aprovada     bool      `json:"aprovada"`
	CriadaEm     time.Time `json:"criada_em"`
	AtualizadaEm time.Time `json:"atualizada_em"`
}

type CreateMensagemInput struct {
	Nome     string
	Mensagem string
}

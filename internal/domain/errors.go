package domain

import "errors"

var (
	ErrConvidadoNotFound   = errors.New("convidado not found")
	ErrItemNotFound        = errors.New("item not found")
	ErrMensagemNotFound    = errors.New("mensagem not found")
	ErrConfirmacaoNotFound = errors.New("confirmacao not found")
	ErrSessionNotFound     = errors.New("session not found")
)

var (
	ErrItemJaResgatado = errors.New("item already claimed")
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrUpstream     = errors.New("registry upstream error")
)

var (
	ErrValidation = errors.New("validation error")
)

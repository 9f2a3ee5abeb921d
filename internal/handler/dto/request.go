package dto

type ResolveSessionRequest struct {
	Codigo string `json:"codigo" binding:"required"`
}

// ResgateRequest carries the claimant name for anonymous visitors only; a
// resolved guest is attributed server-side and the field is ignored.
type ResgateRequest struct {
	Nome string `json:"nome"`
}

// ConfirmacaoRequest counts are clamped server-side (adults floor 1,
// children floor 0) rather than rejected.
type ConfirmacaoRequest struct {
	Nome               string `json:"nome"`
	QuantidadeAdultos  int    `json:"quantidade_adultos"`
	QuantidadeCriancas int    `json:"quantidade_criancas"`
}

type MensagemRequest struct {
	Nome     string `json:"nome" binding:"required"`
	Mensagem string `json:"mensagem" binding:"required"`
}

type ItemRequest struct {
	Nome      string  `json:"nome" binding:"required"`
	Descricao string  `json:"descricao"`
	Categoria string  `json:"categoria" binding:"required"`
	Preco     float64 `json:"preco" binding:"min=0"`
	ImagemURL string  `json:"imagem_url"`
	LinkURL   string  `json:"link_url"`
}

type ConvidadoRequest struct {
	Nome        string `json:"nome" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	Telefone    string `json:"telefone"`
	Observacoes string `json:"observacoes"`
}

type EventoRequest struct {
	Data         string `json:"data" binding:"required"`
	Horario      string `json:"horario" binding:"required"`
	Local        string `json:"local" binding:"required"`
	LocalMapsURL string `json:"local_maps_url"`
}

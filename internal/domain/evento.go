package domain

import "time"

// EventoInfo is the public event metadata block (date, time, venue).
type EventoInfo struct {
	Data         string    `json:"data"`
	Horario      string    `json:"horario"`
	Local        string    `json:"local"`
	LocalMapsURL string    `json:"local_maps_url,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UpdateEventoInput struct {
	Data         string
	Horario      string
	Local        string
	LocalMapsURL string
}

// Estatisticas is the public progress summary shown on the home page.
type Estatisticas struct {
	TotalItens           int     `json:"total_itens"`
	ItensResgatados      int     `json:"itens_resgatados"`
	TotalMensagens       int     `json:"total_mensagens"`
	TotalConvidados      int     `json:"total_convidados"`
	PorcentagemConcluida float64 `json:"porcentagem_concluida"`
}

// CategoriaStats is the per-category breakdown inside the detailed stats.
type CategoriaStats struct {
	Categoria   string  `json:"categoria"`
	Total       int     `json:"total"`
	Resgatados  int     `json:"resgatados"`
	Porcentagem float64 `json:"porcentagem"`
}

// EstatisticasDetalhadas is the admin-scoped stats view.
type EstatisticasDetalhadas struct {
	TotalItens           int              `json:"total_itens"`
	ItensResgatados      int              `json:"itens_resgatados"`
	TotalMensagens       int              `json:"total_mensagens"`
	TotalConvidados      int              `json:"total_convidados"`
	TotalConfirmacoes    int              `json:"total_confirmacoes"`
	ValorTotalItens      float64          `json:"valor_total_itens"`
	PorcentagemConcluida float64          `json:"porcentagem_concluida"`
	MensagensPendentes   int              `json:"mensagens_pendentes"`
	Categorias           []CategoriaStats `json:"categorias"`
}

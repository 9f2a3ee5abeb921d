package dto

import (
	"time"

	"github.com/CristianSsousa/new-kitchen-web/internal/domain"
	"github.com/CristianSsousa/new-kitchen-web/internal/entitlement"
	"github.com/CristianSsousa/new-kitchen-web/internal/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type ConvidadoResponse struct {
	ID          int64  `json:"id"`
	Nome        string `json:"nome"`
	CodigoUnico string `json:"codigo_unico"`
	Email       string `json:"email,omitempty"`
	Telefone    string `json:"telefone,omitempty"`
	Observacoes string `json:"observacoes,omitempty"`
	CriadoEm    string `json:"criado_em"`
}

type ConfirmacaoResponse struct {
	ID                 int64  `json:"id"`
	Nome               string `json:"nome"`
	QuantidadeAdultos  int    `json:"quantidade_adultos"`
	QuantidadeCriancas int    `json:"quantidade_criancas"`
	CriadaEm           string `json:"criada_em"`
}

type StatsResponse struct {
	TemConfirmacao  bool                   `json:"tem_confirmacao"`
	Confirmacao     *ConfirmacaoResponse   `json:"confirmacao,omitempty"`
	ItensResgatados []domain.ItemResgatado `json:"itens_resgatados"`
}

type SessionResponse struct {
	Logado    bool               `json:"logado"`
	Convidado *ConvidadoResponse `json:"convidado,omitempty"`
	Stats     *StatsResponse     `json:"stats,omitempty"`
}

type ItemResponse struct {
	ID           int64   `json:"id"`
	Nome         string  `json:"nome"`
	Descricao    string  `json:"descricao"`
	Categoria    string  `json:"categoria"`
	Preco        float64 `json:"preco"`
	ImagemURL    string  `json:"imagem_url"`
	LinkURL      string  `json:"link_url,omitempty"`
	Resgatado    bool    `json:"resgatado"`
	ResgatadoPor string  `json:"resgatado_por,omitempty"`
	Meu          bool    `json:"meu"`
}

type ItemListResponse struct {
	Items      []ItemResponse `json:"items"`
	Categorias []string       `json:"categorias"`
}

type ClaimResponse struct {
	Item  ItemResponse   `json:"item"`
	Stats *StatsResponse `json:"stats,omitempty"`
}

type MensagemResponse struct {
	ID       int64                 `json:"id"`
	Nome     string                `json:"nome"`
	Mensagem string                `json:"mensagem"`
	CriadaEm string                `json:"criada_em"`
	Estilo   entitlement.CardStyle `json:"estilo"`
}

type ConfirmacaoViewResponse struct {
	Confirmado         bool `json:"confirmado"`
	QuantidadeAdultos  int  `json:"quantidade_adultos"`
	QuantidadeCriancas int  `json:"quantidade_criancas"`
}

func ToConvidadoResponse(c *domain.Convidado) *ConvidadoResponse {
	if c == nil {
		return nil
	}
	return &ConvidadoResponse{
		ID:          c.ID,
		Nome:        c.Nome,
		CodigoUnico: c.CodigoUnico,
		Email:       c.Email,
		Telefone:    c.Telefone,
		Observacoes: c.Observacoes,
		CriadoEm:    c.CriadoEm.Format(time.RFC3339),
	}
}

func ToConfirmacaoResponse(c *domain.Confirmacao) *ConfirmacaoResponse {
	if c == nil {
		return nil
	}
	return &ConfirmacaoResponse{
		ID:                 c.ID,
		Nome:               c.Nome,
		QuantidadeAdultos:  c.QuantidadeAdultos,
		QuantidadeCriancas: c.QuantidadeCriancas,
		CriadaEm:           c.CriadaEm.Format(time.RFC3339),
	}
}

func ToStatsResponse(s *domain.ConvidadoStats) *StatsResponse {
	if s == nil {
		return nil
	}
	itens := s.ItensResgatados
	if itens == nil {
		itens = []domain.ItemResgatado{}
	}
	return &StatsResponse{
		TemConfirmacao:  s.TemConfirmacao,
		Confirmacao:     ToConfirmacaoResponse(s.Confirmacao),
		ItensResgatados: itens,
	}
}

func ToSessionResponse(state *domain.SessionState) SessionResponse {
	if !state.Resolved() {
		return SessionResponse{}
	}
	return SessionResponse{
		Logado:    true,
		Convidado: ToConvidadoResponse(state.Convidado),
		Stats:     ToStatsResponse(state.Stats),
	}
}

func ToItemResponse(item domain.Item, stats *domain.ConvidadoStats) ItemResponse {
	return ItemResponse{
		ID:           item.ID,
		Nome:         item.Nome,
		Descricao:    item.Descricao,
		Categoria:    item.Categoria,
		Preco:        item.Preco,
		ImagemURL:    item.ImagemURL,
		LinkURL:      item.LinkURL,
		Resgatado:    item.Resgatado,
		ResgatadoPor: item.ResgatadoPor,
		Meu:          entitlement.IsMine(item, stats),
	}
}

func ToItemListResponse(listing *service.Listing, stats *domain.ConvidadoStats) ItemListResponse {
	items := make([]ItemResponse, 0, len(listing.Items))
	for _, item := range listing.Items {
		items = append(items, ToItemResponse(item, stats))
	}
	return ItemListResponse{
		Items:      items,
		Categorias: listing.Categorias,
	}
}

func ToMensagemResponse(m domain.Mensagem) MensagemResponse {
	return MensagemResponse{
		ID:       m.ID,
		Nome:     m.Nome,
		Mensagem: m.Mensagem,
		CriadaEm: m.CriadaEm.Format(time.RFC3339),
		Estilo:   entitlement.CardStyleFor(m),
	}
}

func ToConfirmacaoViewResponse(v entitlement.ConfirmationView) ConfirmacaoViewResponse {
	return ConfirmacaoViewResponse{
		Confirmado:         v.Confirmado,
		QuantidadeAdultos:  v.QuantidadeAdultos,
		QuantidadeCriancas: v.QuantidadeCriancas,
	}
}

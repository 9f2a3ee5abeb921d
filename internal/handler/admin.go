package handler

import (
	"context"
	"net/http"

	"github.com/CristianSsousa/new-kitchen-web/internal/domain"
	"github.com/CristianSsousa/new-kitchen-web/internal/handler/dto"
	"github.com/CristianSsousa/new-kitchen-web/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type AdminSvc interface {
	ListItems(ctx context.Context, token string) ([]domain.Item, error)
	GetItem(ctx context.Context, token string, id int64) (*domain.Item, error)
	CreateItem(ctx context.Context, token string, input domain.CreateItemInput) (*domain.Item, error)
	UpdateItem(ctx context.Context, token string, id int64, input domain.CreateItemInput) (*domain.Item, error)
	DeleteItem(ctx context.Context, token string, id int64) error

	ListMensagens(ctx context.Context, token string) ([]domain.Mensagem, error)
	AprovarMensagem(ctx context.Context, token string, id int64) (*domain.Mensagem, error)
	DeleteMensagem(ctx context.Context, token string, id int64) error

	ListConfirmacoes(ctx context.Context, token string) ([]domain.Confirmacao, error)
	UpdateConfirmacao(ctx context.Context, token string, id int64, input domain.CreateConfirmacaoInput) (*domain.Confirmacao, error)
	DeleteConfirmacao(ctx context.Context, token string, id int64) error

	ListConvidados(ctx context.Context, token string) ([]domain.Convidado, error)
	CreateConvidado(ctx context.Context, token string, input domain.CreateConvidadoInput) (*domain.Convidado, error)
	UpdateConvidado(ctx context.Context, token string, id int64, input domain.CreateConvidadoInput) (*domain.Convidado, error)
	DeleteConvidado(ctx context.Context, token string, id int64) error
	RegenerarCodigo(ctx context.Context, token string, id int64) (string, error)

	StatsDetalhadas(ctx context.Context, token string) (*domain.EstatisticasDetalhadas, error)
	UpdateEvento(ctx context.Context, token string, input domain.UpdateEventoInput) (*domain.EventoInfo, error)
}

// ---- Itens ----

func (h *Handler) AdminListItems(c *ginext.Context) {
	items, err := h.admin.ListItems(c.Request.Context(), middleware.AdminToken(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) AdminGetItem(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.admin.GetItem(c.Request.Context(), middleware.AdminToken(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *Handler) AdminCreateItem(c *ginext.Context) {
	var req dto.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	item, err := h.admin.CreateItem(c.Request.Context(), middleware.AdminToken(c), domain.CreateItemInput{
		Nome:      req.Nome,
		Descricao: req.Descricao,
		Categoria: req.Categoria,
		Preco:     req.Preco,
		ImagemURL: req.ImagemURL,
		LinkURL:   req.LinkURL,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *Handler) AdminUpdateItem(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	item, err := h.admin.UpdateItem(c.Request.Context(), middleware.AdminToken(c), id, domain.CreateItemInput{
		Nome:      req.Nome,
		Descricao: req.Descricao,
		Categoria: req.Categoria,
		Preco:     req.Preco,
		ImagemURL: req.ImagemURL,
		LinkURL:   req.LinkURL,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *Handler) AdminDeleteItem(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.admin.DeleteItem(c.Request.Context(), middleware.AdminToken(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ---- Mensagens ----

func (h *Handler) AdminListMensagens(c *ginext.Context) {
	msgs, err := h.admin.ListMensagens(c.Request.Context(), middleware.AdminToken(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, msgs)
}

func (h *Handler) AdminAprovarMensagem(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	msg, err := h.admin.AprovarMensagem(c.Request.Context(), middleware.AdminToken(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, msg)
}

func (h *Handler) AdminDeleteMensagem(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.admin.DeleteMensagem(c.Request.Context(), middleware.AdminToken(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ---- Confirmacoes ----

func (h *Handler) AdminListConfirmacoes(c *ginext.Context) {
	confs, err := h.admin.ListConfirmacoes(c.Request.Context(), middleware.AdminToken(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, confs)
}

func (h *Handler) AdminUpdateConfirmacao(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.ConfirmacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	conf, err := h.admin.UpdateConfirmacao(c.Request.Context(), middleware.AdminToken(c), id, domain.CreateConfirmacaoInput{
		Nome:               req.Nome,
		QuantidadeAdultos:  req.QuantidadeAdultos,
		QuantidadeCriancas: req.QuantidadeCriancas,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, conf)
}

func (h *Handler) AdminDeleteConfirmacao(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.admin.DeleteConfirmacao(c.Request.Context(), middleware.AdminToken(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ---- Convidados ----

func (h *Handler) AdminListConvidados(c *ginext.Context) {
	convs, err := h.admin.ListConvidados(c.Request.Context(), middleware.AdminToken(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, convs)
}

func (h *Handler) AdminCreateConvidado(c *ginext.Context) {
	var req dto.ConvidadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	conv, err := h.admin.CreateConvidado(c.Request.Context(), middleware.AdminToken(c), domain.CreateConvidadoInput{
		Nome:        req.Nome,
		Email:       req.Email,
		Telefone:    req.Telefone,
		Observacoes: req.Observacoes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, conv)
}

func (h *Handler) AdminUpdateConvidado(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.ConvidadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	conv, err := h.admin.UpdateConvidado(c.Request.Context(), middleware.AdminToken(c), id, domain.CreateConvidadoInput{
		Nome:        req.Nome,
		Email:       req.Email,
		Telefone:    req.Telefone,
		Observacoes: req.Observacoes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, conv)
}

func (h *Handler) AdminDeleteConvidado(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.admin.DeleteConvidado(c.Request.Context(), middleware.AdminToken(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) AdminRegenerarCodigo(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	codigo, err := h.admin.RegenerarCodigo(c.Request.Context(), middleware.AdminToken(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"codigo": codigo})
}

// ---- Evento e estatisticas ----

func (h *Handler) AdminStatsDetalhadas(c *ginext.Context) {
	stats, err := h.admin.StatsDetalhadas(c.Request.Context(), middleware.AdminToken(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) AdminUpdateEvento(c *ginext.Context) {
	var req dto.EventoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	info, err := h.admin.UpdateEvento(c.Request.Context(), middleware.AdminToken(c), domain.UpdateEventoInput{
		Data:         req.Data,
		Horario:      req.Horario,
		Local:        req.Local,
		LocalMapsURL: req.LocalMapsURL,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

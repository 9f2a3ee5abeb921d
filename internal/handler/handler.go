package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/CristianSsousa/new-kitchen-web/internal/domain"
	"github.com/CristianSsousa/new-kitchen-web/internal/entitlement"
	"github.com/CristianSsousa/new-kitchen-web/internal/handler/dto"
	"github.com/CristianSsousa/new-kitchen-web/internal/middleware"
	"github.com/CristianSsousa/new-kitchen-web/internal/service"
	"github.com/CristianSsousa/new-kitchen-web/internal/session"
	"github.com/wb-go/wbf/ginext"
)

type SessionSvc interface {
	ResolveByCode(ctx context.Context, token, codigo string) (*domain.SessionState, error)
	Current(ctx context.Context, token string) *domain.SessionState
	Clear(ctx context.Context, token string) error
	RefreshStats(ctx context.Context, token string) (*domain.ConvidadoStats, bool)
}

type ItemSvc interface {
	List(ctx context.Context, state *domain.SessionState, f entitlement.Filter) (*service.Listing, error)
	Claim(ctx context.Context, state *domain.SessionState, id int64, fallbackNome string) (*domain.Item, error)
	CancelClaim(ctx context.Context, id int64) (*domain.Item, error)
}

type MessageSvc interface {
	ListApproved(ctx context.Context) ([]domain.Mensagem, error)
	Create(ctx context.Context, input domain.CreateMensagemInput) (*domain.Mensagem, error)
}

type ConfirmationSvc interface {
	View(state *domain.SessionState) entitlement.ConfirmationView
	Confirm(ctx context.Context, state *domain.SessionState, input domain.CreateConfirmacaoInput) (*domain.Confirmacao, error)
}

type EventSvc interface {
	Info(ctx context.Context) (*domain.EventoInfo, error)
	Stats(ctx context.Context) (*domain.Estatisticas, error)
}

type Handler struct {
	sessions     SessionSvc
	items        ItemSvc
	mensagens    MessageSvc
	confirmacoes ConfirmationSvc
	evento       EventSvc
	admin        AdminSvc
}

func NewHandler(
	sessions SessionSvc,
	items ItemSvc,
	mensagens MessageSvc,
	confirmacoes ConfirmationSvc,
	evento EventSvc,
	admin AdminSvc,
) *Handler {
	return &Handler{
		sessions:     sessions,
		items:        items,
		mensagens:    mensagens,
		confirmacoes: confirmacoes,
		evento:       evento,
		admin:        admin,
	}
}

// Sessao

func (h *Handler) ResolveSession(c *ginext.Context) {
	var req dto.ResolveSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	// Human-typed codes are normalized; URL auto-login (ConviteAutoLogin)
	// deliberately is not.
	codigo := session.NormalizeCodigo(req.Codigo)
	if codigo == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "codigo is required"})
		return
	}

	state, err := h.sessions.ResolveByCode(c.Request.Context(), middleware.Token(c), codigo)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(state))
}

func (h *Handler) ConviteAutoLogin(c *ginext.Context) {
	codigo := c.Param("codigo")

	if _, err := h.sessions.ResolveByCode(c.Request.Context(), middleware.Token(c), codigo); err != nil {
		c.Redirect(http.StatusFound, "/login?codigo="+url.QueryEscape(codigo))
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) CurrentSession(c *ginext.Context) {
	state := h.sessions.Current(c.Request.Context(), middleware.Token(c))
	c.JSON(http.StatusOK, dto.ToSessionResponse(state))
}

func (h *Handler) ClearSession(c *ginext.Context) {
	if err := h.sessions.Clear(c.Request.Context(), middleware.Token(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) RefreshSession(c *ginext.Context) {
	stats, ok := h.sessions.RefreshStats(c.Request.Context(), middleware.Token(c))
	if !ok {
		// Transient refresh failure. Answer without a snapshot so the
		// client keeps the stale one instead of wiping it with null.
		c.JSON(http.StatusOK, ginext.H{})
		return
	}

	c.JSON(http.StatusOK, ginext.H{"stats": dto.ToStatsResponse(stats)})
}

// Itens

func (h *Handler) ListItems(c *ginext.Context) {
	state := h.sessions.Current(c.Request.Context(), middleware.Token(c))

	f := entitlement.Filter{
		Busca:             c.Query("busca"),
		Categoria:         c.DefaultQuery("categoria", entitlement.CategoriaTodos),
		MostrarResgatados: c.Query("mostrar_resgatados") == "true",
	}

	listing, err := h.items.List(c.Request.Context(), state, f)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemListResponse(listing, state.Stats))
}

func (h *Handler) ClaimItem(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	// Body is optional: resolved guests send none.
	var req dto.ResgateRequest
	_ = c.ShouldBindJSON(&req)

	ctx := c.Request.Context()
	token := middleware.Token(c)
	state := h.sessions.Current(ctx, token)

	item, err := h.items.Claim(ctx, state, id, req.Nome)
	if err != nil {
		h.handleError(c, err)
		return
	}

	stats := h.refreshedStats(ctx, token, state)

	c.JSON(http.StatusOK, dto.ClaimResponse{
		Item:  dto.ToItemResponse(*item, stats),
		Stats: dto.ToStatsResponse(stats),
	})
}

func (h *Handler) CancelClaim(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	token := middleware.Token(c)
	state := h.sessions.Current(ctx, token)

	item, err := h.items.CancelClaim(ctx, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	stats := h.refreshedStats(ctx, token, state)

	c.JSON(http.StatusOK, dto.ClaimResponse{
		Item:  dto.ToItemResponse(*item, stats),
		Stats: dto.ToStatsResponse(stats),
	})
}

// Confirmacao

func (h *Handler) GetConfirmacao(c *ginext.Context) {
	state := h.sessions.Current(c.Request.Context(), middleware.Token(c))
	view := h.confirmacoes.View(state)
	c.JSON(http.StatusOK, dto.ToConfirmacaoViewResponse(view))
}

func (h *Handler) CreateConfirmacao(c *ginext.Context) {
	var req dto.ConfirmacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	token := middleware.Token(c)
	state := h.sessions.Current(ctx, token)

	conf, err := h.confirmacoes.Confirm(ctx, state, domain.CreateConfirmacaoInput{
		Nome:               req.Nome,
		QuantidadeAdultos:  req.QuantidadeAdultos,
		QuantidadeCriancas: req.QuantidadeCriancas,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	stats := h.refreshedStats(ctx, token, state)

	c.JSON(http.StatusCreated, ginext.H{
		"confirmacao": dto.ToConfirmacaoResponse(conf),
		"stats":       dto.ToStatsResponse(stats),
	})
}

// Mensagens

func (h *Handler) ListMensagens(c *ginext.Context) {
	msgs, err := h.mensagens.ListApproved(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.MensagemResponse, 0, len(msgs))
	for _, m := range msgs {
		resp = append(resp, dto.ToMensagemResponse(m))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateMensagem(c *ginext.Context) {
	var req dto.MensagemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	msg, err := h.mensagens.Create(c.Request.Context(), domain.CreateMensagemInput{
		Nome:     req.Nome,
		Mensagem: req.Mensagem,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMensagemResponse(*msg))
}

// Evento e estatisticas

func (h *Handler) GetEvento(c *ginext.Context) {
	info, err := h.evento.Info(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

func (h *Handler) GetStats(c *ginext.Context) {
	stats, err := h.evento.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// refreshedStats returns the post-mutation stats snapshot for a resolved
// guest. When the refresh fails it falls back to the pre-mutation snapshot:
// stale stats beat wiping the client's state over a transient blip.
func (h *Handler) refreshedStats(ctx context.Context, token string, state *domain.SessionState) *domain.ConvidadoStats {
	if !state.Resolved() {
		return nil
	}

	stats, ok := h.sessions.RefreshStats(ctx, token)
	if !ok {
		return state.Stats
	}
	return stats
}

func parseID(c *ginext.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrConvidadoNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrMensagemNotFound),
		errors.Is(err, domain.ErrConfirmacaoNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrItemJaResgatado):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

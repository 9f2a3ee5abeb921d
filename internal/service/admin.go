package service

import (
	"context"
	"fmt"

	"github.com/CristianSsousa/new-kitchen-web/internal/cache"
	"github.com/CristianSsousa/new-kitchen-web/internal/domain"
	"github.com/CristianSsousa/new-kitchen-web/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// AdminService proxies the panel to the admin-scoped upstream surface,
// forwarding the panel's bearer token and keeping the guest-facing caches
// coherent with admin mutations.
type AdminService struct {
	registry ports.AdminRegistry
	cache    ports.CollectionCache
	logger   logger.Logger
}

func NewAdminService(registry ports.AdminRegistry, cache ports.CollectionCache, logger logger.Logger) *AdminService {
	return &AdminService{registry: registry, cache: cache, logger: logger}
}

// ---- Itens ----

func (s *AdminService) ListItems(ctx context.Context, token string) ([]domain.Item, error) {
	return s.registry.AdminListItems(ctx, token)
}

func (s *AdminService) GetItem(ctx context.Context, token string, id int64) (*domain.Item, error) {
	return s.registry.AdminGetItem(ctx, token, id)
}

func (s *AdminService) CreateItem(ctx context.Context, token string, input domain.CreateItemInput) (*domain.Item, error) {
	if input.Nome == "" {
		return nil, fmt.Errorf("%w: nome is required", domain.ErrValidation)
	}
	if input.Preco < 0 {
		return nil, fmt.Errorf("%w: preco must not be negative", domain.ErrValidation)
	}

	item, err := s.registry.AdminCreateItem(ctx, token, input)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cache.KeyItems, cache.KeyStats)
	return item, nil
}

func (s *AdminService) UpdateItem(ctx context.Context, token string, id int64, input domain.CreateItemInput) (*domain.Item, error) {
	item, err := s.registry.AdminUpdateItem(ctx, token, id, input)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cache.KeyItems, cache.KeyStats)
	return item, nil
}

func (s *AdminService) DeleteItem(ctx context.Context, token string, id int64) error {
	if err := s.registry.AdminDeleteItem(ctx, token, id); err != nil {
		return err
	}

	s.invalidate(ctx, cache.KeyItems, cache.KeyStats)
	return nil
}

// ---- Mensagens ----

func (s *AdminService) ListMensagens(ctx context.Context, token string) ([]domain.Mensagem, error) {
	return s.registry.AdminListMensagens(ctx, token)
}

func (s *AdminService) AprovarMensagem(ctx context.Context, token string, id int64) (*domain.Mensagem, error) {
	msg, err := s.registry.AdminAprovarMensagem(ctx, token, id)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cache.KeyMensagens, cache.KeyStats)
	return msg, nil
}

func (s *AdminService) DeleteMensagem(ctx context.Context, token string, id int64) error {
	if err := s.registry.AdminDeleteMensagem(ctx, token, id); err != nil {
		return err
	}

	s.invalidate(ctx, cache.KeyMensagens, cache.KeyStats)
	return nil
}

// ---- Confirmacoes ----

func (s *AdminService) ListConfirmacoes(ctx context.Context, token string) ([]domain.Confirmacao, error) {
	return s.registry.AdminListConfirmacoes(ctx, token)
}

func (s *AdminService) UpdateConfirmacao(ctx context.Context, token string, id int64, input domain.CreateConfirmacaoInput) (*domain.Confirmacao, error) {
	conf, err := s.registry.AdminUpdateConfirmacao(ctx, token, id, input)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cache.KeyStats)
	return conf, nil
}

func (s *AdminService) DeleteConfirmacao(ctx context.Context, token string, id int64) error {
	if err := s.registry.AdminDeleteConfirmacao(ctx, token, id); err != nil {
		return err
	}

	s.invalidate(ctx, cache.KeyStats)
	return nil
}

// ---- Convidados ----

func (s *AdminService) ListConvidados(ctx context.Context, token string) ([]domain.Convidado, error) {
	return s.registry.AdminListConvidados(ctx, token)
}

func (s *AdminService) CreateConvidado(ctx context.Context, token string, input domain.CreateConvidadoInput) (*domain.Convidado, error) {
	if input.Nome == "" {
		return nil, fmt.Errorf("%w: nome is required", domain.ErrValidation)
	}

	conv, err := s.registry.AdminCreateConvidado(ctx, token, input)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cache.KeyStats)
	return conv, nil
}

func (s *AdminService) UpdateConvidado(ctx context.Context, token string, id int64, input domain.CreateConvidadoInput) (*domain.Convidado, error) {
	return s.registry.AdminUpdateConvidado(ctx, token, id, input)
}

func (s *AdminService) DeleteConvidado(ctx context.Context, token string, id int64) error {
	if err := s.registry.AdminDeleteConvidado(ctx, token, id); err != nil {
		return err
	}

	s.invalidate(ctx, cache.KeyStats)
	return nil
}

// RegenerarCodigo rotates a guest's invitation code upstream. Sessions
// holding the old code are not revalidated proactively; they fail on
// their next resolution attempt.
func (s *AdminService) RegenerarCodigo(ctx context.Context, token string, id int64) (string, error) {
	codigo, err := s.registry.AdminRegenerarCodigo(ctx, token, id)
	if err != nil {
		return "", err
	}

	s.logger.Info("codigo regenerated", logger.Int64("convidado_id", id))
	return codigo, nil
}

// ---- Evento e estatisticas ----

func (s *AdminService) StatsDetalhadas(ctx context.Context, token string) (*domain.EstatisticasDetalhadas, error) {
	return s.registry.AdminStatsDetalhadas(ctx, token)
}

func (s *AdminService) UpdateEvento(ctx context.Context, token string, input domain.UpdateEventoInput) (*domain.EventoInfo, error) {
	info, err := s.registry.AdminUpdateEvento(ctx, token, input)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cache.KeyEvento)
	return info, nil
}

func (s *AdminService) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		s.logger.Error("admin cache invalidate", logger.String("error", err.Error()))
	}
}

package service

import (
	"context"
	"fmt"

	"github.com/CristianSsousa/new-kitchen-web/internal/cache"
	"github.com/CristianSsousa/new-kitchen-web/internal/domain"
	"github.com/CristianSsousa/new-kitchen-web/internal/entitlement"
	"github.com/CristianSsousa/new-kitchen-web/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ItemService struct {
	catalog  ports.Catalog
	cache    ports.CollectionCache
	notifier ports.AdminNotifier
	logger   logger.Logger
}

func NewItemService(
	catalog ports.Catalog,
	cache ports.CollectionCache,
	notifier ports.AdminNotifier,
	logger logger.Logger,
) *ItemService {
	return &ItemService{
		catalog:  catalog,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
	}
}

// Listing is the browse view: entitlement-filtered items plus the category
// choices derived from the unfiltered collection.
type Listing struct {
	Items      []domain.Item
	Categorias []string
}

func (s *ItemService) List(ctx context.Context, state *domain.SessionState, f entitlement.Filter) (*Listing, error) {
	items, err := s.fetchItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return &Listing{
		Items:      entitlement.VisibleItems(items, sessionStats(state), f),
		Categorias: entitlement.Categorias(items),
	}, nil
}

// Claim reserves an item. A resolved guest is attributed from their own
// identity; an anonymous visitor must have supplied a name, otherwise the
// claim is rejected before any upstream call.
func (s *ItemService) Claim(ctx context.Context, state *domain.SessionState, id int64, fallbackNome string) (*domain.Item, error) {
	var conv *domain.Convidado
	if state.Resolved() {
		conv = state.Convidado
	}

	input, err := entitlement.ClaimAttribution(conv, fallbackNome)
	if err != nil {
		return nil, fmt.Errorf("%w: nome is required", domain.ErrValidation)
	}

	item, err := s.catalog.ClaimItem(ctx, id, input)
	if err != nil {
		return nil, fmt.Errorf("claim item: %w", err)
	}

	s.invalidate(ctx)
	s.logger.Info("item claimed",
		logger.Int64("item_id", item.ID),
		logger.String("nome", input.Nome),
	)

	go s.notifier.NotifyResgate(context.WithoutCancel(ctx), item, input.Nome)

	return item, nil
}

// CancelClaim releases a claim. Ownership is not checked here: the
// upstream accepts the call unauthenticated and entitlement flags already
// decide whether the action is offered.
func (s *ItemService) CancelClaim(ctx context.Context, id int64) (*domain.Item, error) {
	item, err := s.catalog.CancelClaim(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cancel claim: %w", err)
	}

	s.invalidate(ctx)
	s.logger.Info("item claim cancelled", logger.Int64("item_id", item.ID))

	return item, nil
}

func (s *ItemService) fetchItems(ctx context.Context) ([]domain.Item, error) {
	var items []domain.Item
	ok, err := s.cache.GetJSON(ctx, cache.KeyItems, &items)
	if err != nil {
		s.logger.Error("items cache read", logger.String("error", err.Error()))
	} else if ok {
		return items, nil
	}

	items, err = s.catalog.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, cache.KeyItems, items); err != nil {
		s.logger.Error("items cache write", logger.String("error", err.Error()))
	}

	return items, nil
}

func (s *ItemService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, cache.KeyItems, cache.KeyStats); err != nil {
		s.logger.Error("items cache invalidate", logger.String("error", err.Error()))
	}
}

func sessionStats(state *domain.SessionState) *domain.ConvidadoStats {
	if state == nil {
		return nil
	}
	return state.Stats
}

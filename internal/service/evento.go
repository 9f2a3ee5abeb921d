package service

import (
	"context"
	"fmt"

	"github.com/CristianSsousa/new-kitchen-web/internal/cache"
	"github.com/CristianSsousa/new-kitchen-web/internal/domain"
	"github.com/CristianSsousa/new-kitchen-web/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// EventService serves the public event metadata and progress stats, both
// cached passthroughs of the upstream.
type EventService struct {
	source ports.EventSource
	cache  ports.CollectionCache
	logger logger.Logger
}

func NewEventService(source ports.EventSource, cache ports.CollectionCache, logger logger.Logger) *EventService {
	return &EventService{source: source, cache: cache, logger: logger}
}

func (s *EventService) Info(ctx context.Context) (*domain.EventoInfo, error) {
	var info domain.EventoInfo
	ok, err := s.cache.GetJSON(ctx, cache.KeyEvento, &info)
	if err != nil {
		s.logger.Error("evento cache read", logger.String("error", err.Error()))
	} else if ok {
		return &info, nil
	}

	fresh, err := s.source.EventoInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("get evento info: %w", err)
	}

	if err := s.cache.SetJSON(ctx, cache.KeyEvento, fresh); err != nil {
		s.logger.Error("evento cache write", logger.String("error", err.Error()))
	}

	return fresh, nil
}

func (s *EventService) Stats(ctx context.Context) (*domain.Estatisticas, error) {
	var stats domain.Estatisticas
	ok, err := s.cache.GetJSON(ctx, cache.KeyStats, &stats)
	if err != nil {
		s.logger.Error("stats cache read", logger.String("error", err.Error()))
	} else if ok {
		return &stats, nil
	}

	fresh, err := s.source.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}

	if err := s.cache.SetJSON(ctx, cache.KeyStats, fresh); err != nil {
		s.logger.Error("stats cache write", logger.String("error", err.Error()))
	}

	return fresh, nil
}

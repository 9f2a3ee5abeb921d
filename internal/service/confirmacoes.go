package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/CristianSsousa/new-kitchen-web/internal/cache"
	"github.com/CristianSsousa/new-kitchen-web/internal/domain"
	"github.com/CristianSsousa/new-kitchen-web/internal/entitlement"
	"github.com/CristianSsousa/new-kitchen-web/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ConfirmationService struct {
	confirmations ports.Confirmations
	cache         ports.CollectionCache
	notifier      ports.AdminNotifier
	logger        logger.Logger
}

func NewConfirmationService(
	confirmations ports.Confirmations,
	cache ports.CollectionCache,
	notifier ports.AdminNotifier,
	logger logger.Logger,
) *ConfirmationService {
	return &ConfirmationService{
		confirmations: confirmations,
		cache:         cache,
		notifier:      notifier,
		logger:        logger,
	}
}

// View returns the confirmation page state for the session: a read-only
// summary once confirmed, otherwise the form defaults.
func (s *ConfirmationService) View(state *domain.SessionState) entitlement.ConfirmationView {
	return entitlement.ViewConfirmation(sessionStats(state))
}

// Confirm submits an attendance confirmation. Counts are clamped to their
// floors; a resolved guest is attributed from their identity and their
// code rides along so the upstream can link the confirmation.
func (s *ConfirmationService) Confirm(ctx context.Context, state *domain.SessionState, input domain.CreateConfirmacaoInput) (*domain.Confirmacao, error) {
	in := domain.CreateConfirmacaoInput{
		QuantidadeAdultos:  entitlement.ClampAdultos(input.QuantidadeAdultos),
		QuantidadeCriancas: entitlement.ClampCriancas(input.QuantidadeCriancas),
	}

	if state.Resolved() {
		in.Nome = state.Convidado.Nome
		in.CodigoConvidado = state.Convidado.CodigoUnico
	} else {
		in.Nome = strings.TrimSpace(input.Nome)
		if in.Nome == "" {
			return nil, fmt.Errorf("%w: nome is required", domain.ErrValidation)
		}
	}

	conf, err := s.confirmations.CreateConfirmacao(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create confirmacao: %w", err)
	}

	if err := s.cache.Invalidate(ctx, cache.KeyStats); err != nil {
		s.logger.Error("stats cache invalidate", logger.String("error", err.Error()))
	}

	s.logger.Info("confirmacao received",
		logger.Int64("confirmacao_id", conf.ID),
		logger.Int("adultos", conf.QuantidadeAdultos),
		logger.Int("criancas", conf.QuantidadeCriancas),
	)

	go s.notifier.NotifyConfirmacao(context.WithoutCancel(ctx), conf)

	return conf, nil
}

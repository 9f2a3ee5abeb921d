package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/CristianSsousa/new-kitchen-web/internal/cache"
	"github.com/CristianSsousa/new-kitchen-web/internal/domain"
	"github.com/CristianSsousa/new-kitchen-web/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type MessageService struct {
	board    ports.MessageBoard
	cache    ports.CollectionCache
	notifier ports.AdminNotifier
	logger   logger.Logger
}

func NewMessageService(
	board ports.MessageBoard,
	cache ports.CollectionCache,
	notifier ports.AdminNotifier,
	logger logger.Logger,
) *MessageService {
	return &MessageService{
		board:    board,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *MessageService) ListApproved(ctx context.Context) ([]domain.Mensagem, error) {
	var msgs []domain.Mensagem
	ok, err := s.cache.GetJSON(ctx, cache.KeyMensagens, &msgs)
	if err != nil {
		s.logger.Error("mensagens cache read", logger.String("error", err.Error()))
	} else if ok {
		return msgs, nil
	}

	msgs, err = s.board.ListMensagens(ctx)
	if err != nil {
		return nil, fmt.Errorf("list mensagens: %w", err)
	}

	if err := s.cache.SetJSON(ctx, cache.KeyMensagens, msgs); err != nil {
		s.logger.Error("mensagens cache write", logger.String("error", err.Error()))
	}

	return msgs, nil
}

// Create submits a mural message. It lands unapproved, so the approved
// list served to guests is untouched until an admin approves it.
func (s *MessageService) Create(ctx context.Context, input domain.CreateMensagemInput) (*domain.Mensagem, error) {
	input.Nome = strings.TrimSpace(input.Nome)
	input.Mensagem = strings.TrimSpace(input.Mensagem)
	if input.Nome == "" || input.Mensagem == "" {
		return nil, fmt.Errorf("%w: nome and mensagem are required", domain.ErrValidation)
	}

	msg, err := s.board.CreateMensagem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("create mensagem: %w", err)
	}

	s.logger.Info("mensagem submitted", logger.Int64("mensagem_id", msg.ID))

	go s.notifier.NotifyMensagem(context.WithoutCancel(ctx), msg)

	return msg, nil
}

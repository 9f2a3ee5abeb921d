package service

import (
	"context"
	"testing"
	"time"

	"github.com/CristianSsousa/new-kitchen-web/internal/cache"
	"github.com/CristianSsousa/new-kitchen-web/internal/domain"
	"github.com/CristianSsousa/new-kitchen-web/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfirmationService_View(t *testing.T) {
	confirmations := mocks.NewMockConfirmations(t)
	cc := mocks.NewMockCollectionCache(t)
	notifier := mocks.NewMockAdminNotifier(t)

	svc := NewConfirmationService(confirmations, cc, notifier, newTestLogger(t))

	state := &domain.SessionState{
		Convidado: &domain.Convidado{ID: 7},
		Stats: &domain.ConvidadoStats{
			TemConfirmacao: true,
			Confirmacao:    &domain.Confirmacao{QuantidadeAdultos: 2, QuantidadeCriancas: 1},
		},
	}

	view := svc.View(state)

	assert.True(t, view.Confirmado)
	assert.Equal(t, 2, view.QuantidadeAdultos)

	assert.False(t, svc.View(nil).Confirmado)
	assert.Equal(t, 1, svc.View(nil).QuantidadeAdultos)
}

func TestConfirmationService_Confirm_ResolvedGuest(t *testing.T) {
	confirmations := mocks.NewMockConfirmations(t)
	cc := mocks.NewMockCollectionCache(t)
	notifier := mocks.NewMockAdminNotifier(t)

	svc := NewConfirmationService(confirmations, cc, notifier, newTestLogger(t))

	created := &domain.Confirmacao{ID: 3, Nome: "Ana", QuantidadeAdultos: 2, QuantidadeCriancas: 0}
	confirmations.EXPECT().CreateConfirmacao(mock.Anything, domain.CreateConfirmacaoInput{
		Nome:               "Ana",
		QuantidadeAdultos:  2,
		QuantidadeCriancas: 0,
		CodigoConvidado:    "ABC123",
	}).Return(created, nil)
	cc.EXPECT().Invalidate(mock.Anything, cache.KeyStats).Return(nil)
	notifier.EXPECT().NotifyConfirmacao(mock.Anything, created).Return()

	conf, err := svc.Confirm(context.Background(), resolvedState(), domain.CreateConfirmacaoInput{
		Nome:               "someone else",
		QuantidadeAdultos:  2,
		QuantidadeCriancas: -1,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), conf.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestConfirmationService_Confirm_ClampsCounts(t *testing.T) {
	confirmations := mocks.NewMockConfirmations(t)
	cc := mocks.NewMockCollectionCache(t)
	notifier := mocks.NewMockAdminNotifier(t)

	svc := NewConfirmationService(confirmations, cc, notifier, newTestLogger(t))

	created := &domain.Confirmacao{ID: 3, QuantidadeAdultos: 1}
	confirmations.EXPECT().CreateConfirmacao(mock.Anything, domain.CreateConfirmacaoInput{
		Nome:               "Carlos",
		QuantidadeAdultos:  1,
		QuantidadeCriancas: 0,
	}).Return(created, nil)
	cc.EXPECT().Invalidate(mock.Anything, cache.KeyStats).Return(nil)
	notifier.EXPECT().NotifyConfirmacao(mock.Anything, created).Return()

	_, err := svc.Confirm(context.Background(), &domain.SessionState{}, domain.CreateConfirmacaoInput{
		Nome:               "Carlos",
		QuantidadeAdultos:  0,
		QuantidadeCriancas: -3,
	})

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestConfirmationService_Confirm_AnonymousRequiresName(t *testing.T) {
	confirmations := mocks.NewMockConfirmations(t)
	cc := mocks.NewMockCollectionCache(t)
	notifier := mocks.NewMockAdminNotifier(t)

	svc := NewConfirmationService(confirmations, cc, notifier, newTestLogger(t))

	_, err := svc.Confirm(context.Background(), &domain.SessionState{}, domain.CreateConfirmacaoInput{
		Nome:              "   ",
		QuantidadeAdultos: 2,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	confirmations.AssertNotCalled(t, "CreateConfirmacao", mock.Anything, mock.Anything)
}

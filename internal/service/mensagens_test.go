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

func TestMessageService_ListApproved(t *testing.T) {
	board := mocks.NewMockMessageBoard(t)
	cc := mocks.NewMockCollectionCache(t)
	notifier := mocks.NewMockAdminNotifier(t)

	svc := NewMessageService(board, cc, notifier, newTestLogger(t))

	msgs := []domain.Mensagem{{ID: 1, Nome: "Ana", Mensagem: "Felicidades!", Aprovada: true}}

	cc.EXPECT().GetJSON(mock.Anything, cache.KeyMensagens, mock.Anything).Return(false, nil)
	board.EXPECT().ListMensagens(mock.Anything).Return(msgs, nil)
	cc.EXPECT().SetJSON(mock.Anything, cache.KeyMensagens, msgs).Return(nil)

	got, err := svc.ListApproved(context.Background())

	require.NoError(t, err)
	assert.Equal(t, msgs, got)
}

func TestMessageService_Create_TrimsAndNotifies(t *testing.T) {
	board := mocks.NewMockMessageBoard(t)
	cc := mocks.NewMockCollectionCache(t)
	notifier := mocks.NewMockAdminNotifier(t)

	svc := NewMessageService(board, cc, notifier, newTestLogger(t))

	created := &domain.Mensagem{ID: 9, Nome: "Ana", Mensagem: "Felicidades!"}
	board.EXPECT().CreateMensagem(mock.Anything, domain.CreateMensagemInput{
		Nome:     "Ana",
		Mensagem: "Felicidades!",
	}).Return(created, nil)
	notifier.EXPECT().NotifyMensagem(mock.Anything, created).Return()

	msg, err := svc.Create(context.Background(), domain.CreateMensagemInput{
		Nome:     "  Ana  ",
		Mensagem: " Felicidades! ",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(9), msg.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestMessageService_Create_RequiresBothFields(t *testing.T) {
	board := mocks.NewMockMessageBoard(t)
	cc := mocks.NewMockCollectionCache(t)
	notifier := mocks.NewMockAdminNotifier(t)

	svc := NewMessageService(board, cc, notifier, newTestLogger(t))

	tests := []struct {
		name  string
		input domain.CreateMensagemInput
	}{
		{"empty nome", domain.CreateMensagemInput{Mensagem: "oi"}},
		{"empty mensagem", domain.CreateMensagemInput{Nome: "Ana"}},
		{"whitespace only", domain.CreateMensagemInput{Nome: "  ", Mensagem: "\t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	board.AssertNotCalled(t, "CreateMensagem", mock.Anything, mock.Anything)
}

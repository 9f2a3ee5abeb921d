package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/CristianSsousa/new-kitchen-web/internal/domain"
	"github.com/CristianSsousa/new-kitchen-web/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestNormalizeCodigo(t *testing.T) {
	assert.Equal(t, "ABC123", NormalizeCodigo("  abc123  "))
	assert.Equal(t, "", NormalizeCodigo("   "))
}

func TestResolver_ResolveByCode_Success(t *testing.T) {
	guests := mocks.NewMockGuestDirectory(t)
	store := mocks.NewMockSessionStore(t)

	r := NewResolver(guests, store, time.Hour, newTestLogger(t))

	conv := &domain.Convidado{ID: 7, Nome: "Ana", CodigoUnico: "ABC123"}
	stats := &domain.ConvidadoStats{TemConfirmacao: true}

	guests.EXPECT().GuestByCode(mock.Anything, "ABC123").Return(conv, nil)
	guests.EXPECT().GuestStatsByCode(mock.Anything, "ABC123").Return(stats, nil)
	store.EXPECT().Save(mock.Anything, "tok-1", "ABC123").Return(nil)

	state, err := r.ResolveByCode(context.Background(), "tok-1", "ABC123")

	require.NoError(t, err)
	assert.True(t, state.Resolved())
	assert.Equal(t, conv, state.Convidado)
	assert.Equal(t, stats, state.Stats)
}

func TestResolver_ResolveByCode_UnknownCodeDiscardsSession(t *testing.T) {
	guests := mocks.NewMockGuestDirectory(t)
	store := mocks.NewMockSessionStore(t)

	r := NewResolver(guests, store, time.Hour, newTestLogger(t))

	guests.EXPECT().GuestByCode(mock.Anything, "NOPE").Return(nil, domain.ErrConvidadoNotFound)
	store.EXPECT().Delete(mock.Anything, "tok-1").Return(nil)

	state, err := r.ResolveByCode(context.Background(), "tok-1", "NOPE")

	assert.ErrorIs(t, err, domain.ErrConvidadoNotFound)
	assert.Nil(t, state)
	guests.AssertNotCalled(t, "GuestStatsByCode", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolver_ResolveByCode_StatsFailureDiscardsSession(t *testing.T) {
	guests := mocks.NewMockGuestDirectory(t)
	store := mocks.NewMockSessionStore(t)

	r := NewResolver(guests, store, time.Hour, newTestLogger(t))

	conv := &domain.Convidado{ID: 7, CodigoUnico: "ABC123"}
	guests.EXPECT().GuestByCode(mock.Anything, "ABC123").Return(conv, nil)
	guests.EXPECT().GuestStatsByCode(mock.Anything, "ABC123").Return(nil, errors.New("upstream down"))
	store.EXPECT().Delete(mock.Anything, "tok-1").Return(nil)

	_, err := r.ResolveByCode(context.Background(), "tok-1", "ABC123")

	assert.ErrorIs(t, err, domain.ErrConvidadoNotFound)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolver_ResolveByCode_PersistFailureStillResolves(t *testing.T) {
	guests := mocks.NewMockGuestDirectory(t)
	store := mocks.NewMockSessionStore(t)

	r := NewResolver(guests, store, time.Hour, newTestLogger(t))

	conv := &domain.Convidado{ID: 7, CodigoUnico: "ABC123"}
	guests.EXPECT().GuestByCode(mock.Anything, "ABC123").Return(conv, nil)
	guests.EXPECT().GuestStatsByCode(mock.Anything, "ABC123").Return(&domain.ConvidadoStats{}, nil)
	store.EXPECT().Save(mock.Anything, "tok-1", "ABC123").Return(errors.New("db down"))

	state, err := r.ResolveByCode(context.Background(), "tok-1", "ABC123")

	require.NoError(t, err)
	assert.True(t, state.Resolved())
}

func TestResolver_ResolveByCode_LastSaveWins(t *testing.T) {
	guests := mocks.NewMockGuestDirectory(t)
	store := mocks.NewMockSessionStore(t)

	r := NewResolver(guests, store, time.Hour, newTestLogger(t))

	guests.EXPECT().GuestByCode(mock.Anything, "ABC123").Return(&domain.Convidado{ID: 7, CodigoUnico: "ABC123"}, nil)
	guests.EXPECT().GuestStatsByCode(mock.Anything, "ABC123").Return(&domain.ConvidadoStats{}, nil)
	guests.EXPECT().GuestByCode(mock.Anything, "XYZ789").Return(&domain.Convidado{ID: 8, CodigoUnico: "XYZ789"}, nil)
	guests.EXPECT().GuestStatsByCode(mock.Anything, "XYZ789").Return(&domain.ConvidadoStats{}, nil)

	var saved []string
	store.EXPECT().Save(mock.Anything, "tok-1", mock.Anything).
		Run(func(_ context.Context, _ string, codigo string) {
			saved = append(saved, codigo)
		}).
		Return(nil).
		Twice()

	_, err := r.ResolveByCode(context.Background(), "tok-1", "ABC123")
	require.NoError(t, err)
	_, err = r.ResolveByCode(context.Background(), "tok-1", "XYZ789")
	require.NoError(t, err)

	// Two resolutions for the same browser token both upsert; the code
	// persisted last is the one issued last.
	require.Equal(t, []string{"ABC123", "XYZ789"}, saved)
	assert.Equal(t, "XYZ789", saved[len(saved)-1])
}

func TestResolver_Current_RestoresFromStoredCode(t *testing.T) {
	guests := mocks.NewMockGuestDirectory(t)
	store := mocks.NewMockSessionStore(t)

	r := NewResolver(guests, store, time.Hour, newTestLogger(t))

	conv := &domain.Convidado{ID: 7, CodigoUnico: "ABC123"}
	store.EXPECT().Codigo(mock.Anything, "tok-1").Return("ABC123", nil)
	guests.EXPECT().GuestByCode(mock.Anything, "ABC123").Return(conv, nil)
	guests.EXPECT().GuestStatsByCode(mock.Anything, "ABC123").Return(&domain.ConvidadoStats{}, nil)
	store.EXPECT().Save(mock.Anything, "tok-1", "ABC123").Return(nil)

	state := r.Current(context.Background(), "tok-1")

	assert.True(t, state.Resolved())
	assert.Equal(t, conv, state.Convidado)
}

func TestResolver_Current_AnonymousOnMissingSession(t *testing.T) {
	guests := mocks.NewMockGuestDirectory(t)
	store := mocks.NewMockSessionStore(t)

	r := NewResolver(guests, store, time.Hour, newTestLogger(t))

	store.EXPECT().Codigo(mock.Anything, "tok-1").Return("", domain.ErrSessionNotFound)

	state := r.Current(context.Background(), "tok-1")

	require.NotNil(t, state)
	assert.False(t, state.Resolved())
}

func TestResolver_Current_StaleCodeDegradesToAnonymous(t *testing.T) {
	guests := mocks.NewMockGuestDirectory(t)
	store := mocks.NewMockSessionStore(t)

	r := NewResolver(guests, store, time.Hour, newTestLogger(t))

	// The stored code was rotated by an admin; resolution fails and the
	// stale row is discarded.
	store.EXPECT().Codigo(mock.Anything, "tok-1").Return("OLD123", nil)
	guests.EXPECT().GuestByCode(mock.Anything, "OLD123").Return(nil, domain.ErrConvidadoNotFound)
	store.EXPECT().Delete(mock.Anything, "tok-1").Return(nil)

	state := r.Current(context.Background(), "tok-1")

	require.NotNil(t, state)
	assert.False(t, state.Resolved())
}

func TestResolver_Current_EmptyToken(t *testing.T) {
	guests := mocks.NewMockGuestDirectory(t)
	store := mocks.NewMockSessionStore(t)

	r := NewResolver(guests, store, time.Hour, newTestLogger(t))

	state := r.Current(context.Background(), "")

	require.NotNil(t, state)
	assert.False(t, state.Resolved())
	store.AssertNotCalled(t, "Codigo", mock.Anything, mock.Anything)
}

func TestResolver_Clear_Idempotent(t *testing.T) {
	guests := mocks.NewMockGuestDirectory(t)
	store := mocks.NewMockSessionStore(t)

	r := NewResolver(guests, store, time.Hour, newTestLogger(t))

	store.EXPECT().Delete(mock.Anything, "tok-1").Return(nil).Twice()

	require.NoError(t, r.Clear(context.Background(), "tok-1"))
	require.NoError(t, r.Clear(context.Background(), "tok-1"))
	require.NoError(t, r.Clear(context.Background(), ""))
}

func TestResolver_RefreshStats_FailureIsNotAuthoritative(t *testing.T) {
	guests := mocks.NewMockGuestDirectory(t)
	store := mocks.NewMockSessionStore(t)

	r := NewResolver(guests, store, time.Hour, newTestLogger(t))

	store.EXPECT().Codigo(mock.Anything, "tok-1").Return("ABC123", nil)
	guests.EXPECT().GuestStatsByCode(mock.Anything, "ABC123").Return(nil, errors.New("upstream down"))

	stats, ok := r.RefreshStats(context.Background(), "tok-1")

	assert.Nil(t, stats)
	assert.False(t, ok, "a failed refresh must not read as an anonymous session")
}

func TestResolver_RefreshStats_StoreFailureIsNotAuthoritative(t *testing.T) {
	guests := mocks.NewMockGuestDirectory(t)
	store := mocks.NewMockSessionStore(t)

	r := NewResolver(guests, store, time.Hour, newTestLogger(t))

	store.EXPECT().Codigo(mock.Anything, "tok-1").Return("", errors.New("db down"))

	stats, ok := r.RefreshStats(context.Background(), "tok-1")

	assert.Nil(t, stats)
	assert.False(t, ok)
	guests.AssertNotCalled(t, "GuestStatsByCode", mock.Anything, mock.Anything)
}

func TestResolver_RefreshStats_NoSessionIsAuthoritativeNil(t *testing.T) {
	guests := mocks.NewMockGuestDirectory(t)
	store := mocks.NewMockSessionStore(t)

	r := NewResolver(guests, store, time.Hour, newTestLogger(t))

	store.EXPECT().Codigo(mock.Anything, "tok-1").Return("", domain.ErrSessionNotFound)

	stats, ok := r.RefreshStats(context.Background(), "tok-1")
	assert.Nil(t, stats)
	assert.True(t, ok)

	stats, ok = r.RefreshStats(context.Background(), "")
	assert.Nil(t, stats)
	assert.True(t, ok)

	guests.AssertNotCalled(t, "GuestStatsByCode", mock.Anything, mock.Anything)
}

func TestResolver_RefreshStats_ReturnsFreshSnapshot(t *testing.T) {
	guests := mocks.NewMockGuestDirectory(t)
	store := mocks.NewMockSessionStore(t)

	r := NewResolver(guests, store, time.Hour, newTestLogger(t))

	fresh := &domain.ConvidadoStats{
		ItensResgatados: []domain.ItemResgatado{{ID: 4, Nome: "Faqueiro"}},
	}
	store.EXPECT().Codigo(mock.Anything, "tok-1").Return("ABC123", nil)
	guests.EXPECT().GuestStatsByCode(mock.Anything, "ABC123").Return(fresh, nil)

	stats, ok := r.RefreshStats(context.Background(), "tok-1")

	require.NotNil(t, stats)
	assert.True(t, ok)
	assert.True(t, stats.ResgatouItem(4))
}

func TestResolver_PurgeExpired(t *testing.T) {
	guests := mocks.NewMockGuestDirectory(t)
	store := mocks.NewMockSessionStore(t)

	r := NewResolver(guests, store, 720*time.Hour, newTestLogger(t))

	store.EXPECT().DeleteExpired(mock.Anything, 720*time.Hour).Return(int64(3), nil)

	n, err := r.PurgeExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

package registry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CristianSsousa/new-kitchen-web/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, time.Second)
}

func TestClient_GuestByCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/convidados/ABC123", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(domain.Convidado{ID: 7, Nome: "Ana", CodigoUnico: "ABC123"})
	})

	conv, err := client.GuestByCode(context.Background(), "ABC123")

	require.NoError(t, err)
	assert.Equal(t, int64(7), conv.ID)
	assert.Equal(t, "Ana", conv.Nome)
}

func TestClient_GuestByCode_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "convidado nao encontrado"})
	})

	conv, err := client.GuestByCode(context.Background(), "NOPE")

	assert.Nil(t, conv)
	assert.ErrorIs(t, err, domain.ErrConvidadoNotFound)
}

func TestClient_GuestByCode_EscapesPath(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/convidados/a%2Fb", r.URL.EscapedPath())
		_ = json.NewEncoder(w).Encode(domain.Convidado{ID: 1})
	})

	_, err := client.GuestByCode(context.Background(), "a/b")

	require.NoError(t, err)
}

func TestClient_ClaimItem(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/items/3/resgate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var input domain.ResgateInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, "Ana", input.Nome)
		assert.Equal(t, "ABC123", input.CodigoConvidado)

		_ = json.NewEncoder(w).Encode(domain.Item{ID: 3, Resgatado: true, ResgatadoPor: "Ana"})
	})

	item, err := client.ClaimItem(context.Background(), 3, domain.ResgateInput{Nome: "Ana", CodigoConvidado: "ABC123"})

	require.NoError(t, err)
	assert.True(t, item.Resgatado)
	assert.Equal(t, "Ana", item.ResgatadoPor)
}

func TestClient_ClaimItem_Conflict(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "item ja resgatado"})
	})

	item, err := client.ClaimItem(context.Background(), 3, domain.ResgateInput{Nome: "Ana"})

	assert.Nil(t, item)
	assert.ErrorIs(t, err, domain.ErrItemJaResgatado)
}

func TestClient_ClaimItem_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.ClaimItem(context.Background(), 99, domain.ResgateInput{Nome: "Ana"})

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestClient_ListItems_UpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "database down"})
	})

	items, err := client.ListItems(context.Background())

	assert.Nil(t, items)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Contains(t, err.Error(), "database down")
}

func TestClient_ListItems_BadBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	_, err := client.ListItems(context.Background())

	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestClient_CreateMensagem(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mensagens", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Bia", body["nome"])
		assert.Equal(t, "Felicidades!", body["mensagem"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(domain.Mensagem{ID: 12, Nome: "Bia", Mensagem: "Felicidades!"})
	})

	msg, err := client.CreateMensagem(context.Background(), domain.CreateMensagemInput{Nome: "Bia", Mensagem: "Felicidades!"})

	require.NoError(t, err)
	assert.Equal(t, int64(12), msg.ID)
}

func TestClient_CreateConfirmacao_OmitsEmptyCodigo(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "codigo_convidado")

		_ = json.NewEncoder(w).Encode(domain.Confirmacao{ID: 1, Nome: "Carlos"})
	})

	_, err := client.CreateConfirmacao(context.Background(), domain.CreateConfirmacaoInput{
		Nome:              "Carlos",
		QuantidadeAdultos: 2,
	})

	require.NoError(t, err)
}

func TestClient_AdminForwardsBearerToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer s3cret", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]domain.Item{})
	})

	_, err := client.AdminListItems(context.Background(), "s3cret")

	require.NoError(t, err)
}

func TestClient_AdminUnauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid token"})
	})

	_, err := client.AdminListItems(context.Background(), "bad")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestClient_AdminRegenerarCodigo(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/convidados/7/regenerar-codigo", r.URL.Path)
		assert.Equal(t, "Bearer s3cret", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]string{"codigo": "XYZ789"})
	})

	codigo, err := client.AdminRegenerarCodigo(context.Background(), "s3cret", 7)

	require.NoError(t, err)
	assert.Equal(t, "XYZ789", codigo)
}

func TestClient_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := New(srv.URL, 100*time.Millisecond)

	_, err := client.ListItems(context.Background())

	assert.ErrorIs(t, err, domain.ErrUpstream)
}

package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/CristianSsousa/new-kitchen-web/internal/domain"
)

// Client talks to the upstream registry REST API, the owner of every
// durable registry fact. Calls carry no retries: resolution semantics
// require a single attempt, and timeouts are the transport's own.
type Client struct {
	base string
	http *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

// ---- Convidados (public) ----

func (c *Client) GuestByCode(ctx context.Context, codigo string) (*domain.Convidado, error) {
	var conv domain.Convidado
	path := "/convidados/" + url.PathEscape(codigo)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &conv, domain.ErrConvidadoNotFound); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (c *Client) GuestStatsByCode(ctx context.Context, codigo string) (*domain.ConvidadoStats, error) {
	var stats domain.ConvidadoStats
	path := "/convidados/" + url.PathEscape(codigo) + "/stats"
	if err := c.do(ctx, http.MethodGet, path, "", nil, &stats, domain.ErrConvidadoNotFound); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ---- Itens (public) ----

func (c *Client) ListItems(ctx context.Context) ([]domain.Item, error) {
	var items []domain.Item
	if err := c.do(ctx, http.MethodGet, "/items", "", nil, &items, nil); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) ClaimItem(ctx context.Context, id int64, input domain.ResgateInput) (*domain.Item, error) {
	var item domain.Item
	path := fmt.Sprintf("/items/%d/resgate", id)
	if err := c.do(ctx, http.MethodPost, path, "", input, &item, domain.ErrItemNotFound); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) CancelClaim(ctx context.Context, id int64) (*domain.Item, error) {
	var item domain.Item
	path := fmt.Sprintf("/items/%d/cancela-resgate", id)
	if err := c.do(ctx, http.MethodPost, path, "", nil, &item, domain.ErrItemNotFound); err != nil {
		return nil, err
	}
	return &item, nil
}

// ---- Mensagens (public) ----

func (c *Client) ListMensagens(ctx context.Context) ([]domain.Mensagem, error) {
	var msgs []domain.Mensagem
	if err := c.do(ctx, http.MethodGet, "/mensagens", "", nil, &msgs, nil); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (c *Client) CreateMensagem(ctx context.Context, input domain.CreateMensagemInput) (*domain.Mensagem, error) {
	var msg domain.Mensagem
	body := map[string]string{"nome": input.Nome, "mensagem": input.Mensagem}
	if err := c.do(ctx, http.MethodPost, "/mensagens", "", body, &msg, nil); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ---- Confirmacoes (public) ----

func (c *Client) CreateConfirmacao(ctx context.Context, input domain.CreateConfirmacaoInput) (*domain.Confirmacao, error) {
	var conf domain.Confirmacao
	body := map[string]any{
		"nome":                input.Nome,
		"quantidade_adultos":  input.QuantidadeAdultos,
		"quantidade_criancas": input.QuantidadeCriancas,
	}
	if input.CodigoConvidado != "" {
		body["codigo_convidado"] = input.CodigoConvidado
	}
	if err := c.do(ctx, http.MethodPost, "/confirmacoes", "", body, &conf, nil); err != nil {
		return nil, err
	}
	return &conf, nil
}

// ---- Evento e estatisticas (public) ----

func (c *Client) EventoInfo(ctx context.Context) (*domain.EventoInfo, error) {
	var info domain.EventoInfo
	if err := c.do(ctx, http.MethodGet, "/evento", "", nil, &info, nil); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) Stats(ctx context.Context) (*domain.Estatisticas, error) {
	var stats domain.Estatisticas
	if err := c.do(ctx, http.MethodGet, "/stats", "", nil, &stats, nil); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ---- Admin surface ----
// The bearer token comes from the panel request and is forwarded verbatim;
// the upstream owns the credential check.

func (c *Client) AdminListItems(ctx context.Context, token string) ([]domain.Item, error) {
	var items []domain.Item
	if err := c.do(ctx, http.MethodGet, "/admin/items", token, nil, &items, nil); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) AdminGetItem(ctx context.Context, token string, id int64) (*domain.Item, error) {
	var item domain.Item
	path := fmt.Sprintf("/admin/items/%d", id)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &item, domain.ErrItemNotFound); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) AdminCreateItem(ctx context.Context, token string, input domain.CreateItemInput) (*domain.Item, error) {
	var item domain.Item
	if err := c.do(ctx, http.MethodPost, "/admin/items", token, itemBody(input), &item, nil); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) AdminUpdateItem(ctx context.Context, token string, id int64, input domain.CreateItemInput) (*domain.Item, error) {
	var item domain.Item
	path := fmt.Sprintf("/admin/items/%d", id)
	if err := c.do(ctx, http.MethodPut, path, token, itemBody(input), &item, domain.ErrItemNotFound); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) AdminDeleteItem(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/admin/items/%d", id)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil, domain.ErrItemNotFound)
}

func (c *Client) AdminListMensagens(ctx context.Context, token string) ([]domain.Mensagem, error) {
	var msgs []domain.Mensagem
	if err := c.do(ctx, http.MethodGet, "/admin/mensagens", token, nil, &msgs, nil); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (c *Client) AdminAprovarMensagem(ctx context.Context, token string, id int64) (*domain.Mensagem, error) {
	var msg domain.Mensagem
	path := fmt.Sprintf("/admin/mensagens/%d/aprovar", id)
	if err := c.do(ctx, http.MethodPost, path, token, nil, &msg, domain.ErrMensagemNotFound); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *Client) AdminDeleteMensagem(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/admin/mensagens/%d", id)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil, domain.ErrMensagemNotFound)
}

func (c *Client) AdminListConfirmacoes(ctx context.Context, token string) ([]domain.Confirmacao, error) {
	var confs []domain.Confirmacao
	if err := c.do(ctx, http.MethodGet, "/admin/confirmacoes", token, nil, &confs, nil); err != nil {
		return nil, err
	}
	return confs, nil
}

func (c *Client) AdminUpdateConfirmacao(ctx context.Context, token string, id int64, input domain.CreateConfirmacaoInput) (*domain.Confirmacao, error) {
	var conf domain.Confirmacao
	path := fmt.Sprintf("/admin/confirmacoes/%d", id)
	body := map[string]any{
		"nome":                input.Nome,
		"quantidade_adultos":  input.QuantidadeAdultos,
		"quantidade_criancas": input.QuantidadeCriancas,
	}
	if err := c.do(ctx, http.MethodPut, path, token, body, &conf, domain.ErrConfirmacaoNotFound); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (c *Client) AdminDeleteConfirmacao(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/admin/confirmacoes/%d", id)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil, domain.ErrConfirmacaoNotFound)
}

func (c *Client) AdminListConvidados(ctx context.Context, token string) ([]domain.Convidado, error) {
	var convs []domain.Convidado
	if err := c.do(ctx, http.MethodGet, "/admin/convidados", token, nil, &convs, nil); err != nil {
		return nil, err
	}
	return convs, nil
}

func (c *Client) AdminCreateConvidado(ctx context.Context, token string, input domain.CreateConvidadoInput) (*domain.Convidado, error) {
	var conv domain.Convidado
	if err := c.do(ctx, http.MethodPost, "/admin/convidados", token, convidadoBody(input), &conv, nil); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (c *Client) AdminUpdateConvidado(ctx context.Context, token string, id int64, input domain.CreateConvidadoInput) (*domain.Convidado, error) {
	var conv domain.Convidado
	path := fmt.Sprintf("/admin/convidados/%d", id)
	if err := c.do(ctx, http.MethodPut, path, token, convidadoBody(input), &conv, domain.ErrConvidadoNotFound); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (c *Client) AdminDeleteConvidado(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/admin/convidados/%d", id)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil, domain.ErrConvidadoNotFound)
}

// AdminRegenerarCodigo rotates a guest's invitation code. The old code is
// dead upstream the moment this returns; stale sessions only notice on
// their next resolution.
func (c *Client) AdminRegenerarCodigo(ctx context.Context, token string, id int64) (string, error) {
	var resp struct {
		Codigo string `json:"codigo"`
	}
	path := fmt.Sprintf("/admin/convidados/%d/regenerar-codigo", id)
	if err := c.do(ctx, http.MethodPost, path, token, nil, &resp, domain.ErrConvidadoNotFound); err != nil {
		return "", err
	}
	return resp.Codigo, nil
}

func (c *Client) AdminStatsDetalhadas(ctx context.Context, token string) (*domain.EstatisticasDetalhadas, error) {
	var stats domain.EstatisticasDetalhadas
	if err := c.do(ctx, http.MethodGet, "/admin/stats/detalhadas", token, nil, &stats, nil); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) AdminUpdateEvento(ctx context.Context, token string, input domain.UpdateEventoInput) (*domain.EventoInfo, error) {
	var info domain.EventoInfo
	body := map[string]string{
		"data":    input.Data,
		"horario": input.Horario,
		"local":   input.Local,
	}
	if input.LocalMapsURL != "" {
		body["local_maps_url"] = input.LocalMapsURL
	}
	if err := c.do(ctx, http.MethodPut, "/admin/evento", token, body, &info, nil); err != nil {
		return nil, err
	}
	return &info, nil
}

func itemBody(input domain.CreateItemInput) map[string]any {
	body := map[string]any{
		"nome":       input.Nome,
		"descricao":  input.Descricao,
		"categoria":  input.Categoria,
		"preco":      input.Preco,
		"imagem_url": input.ImagemURL,
	}
	if input.LinkURL != "" {
		body["link_url"] = input.LinkURL
	}
	return body
}

func convidadoBody(input domain.CreateConvidadoInput) map[string]string {
	return map[string]string{
		"nome":        input.Nome,
		"email":       input.Email,
		"telefone":    input.Telefone,
		"observacoes": input.Observacoes,
	}
}

type apiError struct {
	Error string `json:"error"`
}

// do issues one request and maps the response status onto the domain error
// taxonomy. notFound names the sentinel a 404 means for this call.
func (c *Client) do(ctx context.Context, method, path, token string, in, out any, notFound error) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrUpstream, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode %s %s: %v", domain.ErrUpstream, method, path, err)
		}
		return nil
	}

	var ae apiError
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&ae)

	switch resp.StatusCode {
	case http.StatusNotFound:
		if notFound != nil {
			return notFound
		}
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrUnauthorized
	case http.StatusConflict:
		return domain.ErrItemJaResgatado
	}

	if ae.Error != "" {
		return fmt.Errorf("%w: %s %s: status %d: %s", domain.ErrUpstream, method, path, resp.StatusCode, ae.Error)
	}
	return fmt.Errorf("%w: %s %s: status %d", domain.ErrUpstream, method, path, resp.StatusCode)
}

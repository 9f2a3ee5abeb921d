package ports

import (
	"context"

	"github.com/CristianSsousa/new-kitchen-web/internal/domain"
)

// GuestDirectory is the code-addressed guest lookup surface of the
// upstream API. Both calls take the invitation code, never the guest id.
type GuestDirectory interface {
	GuestByCode(ctx context.Context, codigo string) (*domain.Convidado, error)
	GuestStatsByCode(ctx context.Context, codigo string) (*domain.ConvidadoStats, error)
}

type Catalog interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	ClaimItem(ctx context.Context, id int64, input domain.ResgateInput) (*domain.Item, error)
	CancelClaim(ctx context.Context, id int64) (*domain.Item, error)
}

type MessageBoard interface {
	ListMensagens(ctx context.Context) ([]domain.Mensagem, error)
	CreateMensagem(ctx context.Context, input domain.CreateMensagemInput) (*domain.Mensagem, error)
}

type Confirmations interface {
	CreateConfirmacao(ctx context.Context, input domain.CreateConfirmacaoInput) (*domain.Confirmacao, error)
}

type EventSource interface {
	EventoInfo(ctx context.Context) (*domain.EventoInfo, error)
	Stats(ctx context.Context) (*domain.Estatisticas, error)
}

// AdminRegistry is the admin-scoped upstream surface. Every call forwards
// the panel's bearer token.
type AdminRegistry interface {
	AdminListItems(ctx context.Context, token string) ([]domain.Item, error)
	AdminGetItem(ctx context.Context, token string, id int64) (*domain.Item, error)
	AdminCreateItem(ctx context.Context, token string, input domain.CreateItemInput) (*domain.Item, error)
	AdminUpdateItem(ctx context.Context, token string, id int64, input domain.CreateItemInput) (*domain.Item, error)
	AdminDeleteItem(ctx context.Context, token string, id int64) error
	AdminListMensagens(ctx context.Context, token string) ([]domain.Mensagem, error)
	AdminAprovarMensagem(ctx context.Context, token string, id int64) (*domain.Mensagem, error)
	AdminDeleteMensagem(ctx context.Context, token string, id int64) error
	AdminListConfirmacoes(ctx context.Context, token string) ([]domain.Confirmacao, error)
	AdminUpdateConfirmacao(ctx context.Context, token string, id int64, input domain.CreateConfirmacaoInput) (*domain.Confirmacao, error)
	AdminDeleteConfirmacao(ctx context.Context, token string, id int64) error
	AdminListConvidados(ctx context.Context, token string) ([]domain.Convidado, error)
	AdminCreateConvidado(ctx context.Context, token string, input domain.CreateConvidadoInput) (*domain.Convidado, error)
	AdminUpdateConvidado(ctx context.Context, token string, id int64, input domain.CreateConvidadoInput) (*domain.Convidado, error)
	AdminDeleteConvidado(ctx context.Context, token string, id int64) error
	AdminRegenerarCodigo(ctx context.Context, token string, id int64) (string, error)
	AdminStatsDetalhadas(ctx context.Context, token string) (*domain.EstatisticasDetalhadas, error)
	AdminUpdateEvento(ctx context.Context, token string, input domain.UpdateEventoInput) (*domain.EventoInfo, error)
}

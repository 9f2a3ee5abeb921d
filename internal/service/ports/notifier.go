package ports

import (
	"context"

	"github.com/CristianSsousa/new-kitchen-web/internal/domain"
)

// AdminNotifier pushes best-effort alerts to the hosts' channel. Calls
// never fail the triggering request.
type AdminNotifier interface {
	NotifyConfirmacao(ctx context.Context, conf *domain.Confirmacao)
	NotifyMensagem(ctx context.Context, msg *domain.Mensagem)
	NotifyResgate(ctx context.Context, item *domain.Item, nome string)
}

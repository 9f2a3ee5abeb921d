package notification

import (
	"context"
	"fmt"

	"github.com/CristianSsousa/new-kitchen-web/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier pushes admin alerts (new confirmations, mural messages
// and claims) to the hosts' chat. With an empty token it degrades to a
// no-op so local setups run without a bot.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyConfirmacao(ctx context.Context, conf *domain.Confirmacao) {
	text := fmt.Sprintf(
		"*Nova confirmação de presença!*\n\n"+"Nome: %s\n"+"Adultos: %d\n"+"Crianças: %d",
		conf.Nome, conf.QuantidadeAdultos, conf.QuantidadeCriancas,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyMensagem(ctx context.Context, msg *domain.Mensagem) {
	text := fmt.Sprintf(
		"*Nova mensagem no mural (aguardando aprovação)*\n\n"+"De: %s\n\n%s",
		msg.Nome, msg.Mensagem,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyResgate(ctx context.Context, item *domain.Item, nome string) {
	text := fmt.Sprintf(
		"*Presente reservado!*\n\n"+"Item: %s\n"+"Por: %s",
		item.Nome, nome,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}

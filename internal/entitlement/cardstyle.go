package entitlement

import "github.com/CristianSsousa/new-kitchen-web/internal/domain"

// Mural cards get a slightly scattered look. The style is a pure function
// of the message id so the same card always renders the same way and tests
// can assert the output.
var (
	cardRotations = []string{
		"-rotate-2 translate-y-2",
		"rotate-1",
		"-rotate-1 -translate-y-2",
		"rotate-2 translate-y-1",
		"-rotate-3 translate-x-1",
		"rotate-1 -translate-x-1",
	}
	cardSizes = []string{
		"min-h-[200px]",
		"min-h-[250px]",
		"min-h-[300px]",
		"min-h-[180px]",
	}
	cardWidths = []string{
		"",
		"md:w-[120%]",
		"md:w-[110%]",
		"md:w-[90%]",
	}
)

type CardStyle struct {
	Rotation string `json:"rotation"`
	Size     string `json:"size"`
	Width    string `json:"width"`
}

func CardStyleFor(msg domain.Mensagem) CardStyle {
	id := msg.ID
	if id < 0 {
		id = -id
	}

	return CardStyle{
		Rotation: cardRotations[id%int64(len(cardRotations))],
		Size:     cardSizes[(id/3)%int64(len(cardSizes))],
		Width:    cardWidths[(id/7)%int64(len(cardWidths))],
	}
}

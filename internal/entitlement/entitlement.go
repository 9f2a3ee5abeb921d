// Package entitlement derives view-relevant flags from a guest session and
// independently fetched registry collections. Everything here is pure and
// nil-tolerant: absent stats behave as a guest with no claims and no
// confirmation, so pages render before a session resolves.
package entitlement

import (
	"strings"

	"github.com/CristianSsousa/new-kitchen-web/internal/domain"
)

// CategoriaTodos is the sentinel that disables category filtering.
const CategoriaTodos = "Todos"

// Filter holds the browse predicates a guest can set on the gift list.
type Filter struct {
	Busca             string
	Categoria         string
	MostrarResgatados bool
}

// VisibleItems applies search, category and claim-visibility rules. An
// item claimed by someone else is hidden unless MostrarResgatados is set;
// the guest's own claims are always visible. Idempotent under
// re-application with the same arguments.
func VisibleItems(items []domain.Item, stats *domain.ConvidadoStats, f Filter) []domain.Item {
	termo := strings.ToLower(f.Busca)

	out := make([]domain.Item, 0, len(items))
	for _, item := range items {
		matchesBusca := termo == "" ||
			strings.Contains(strings.ToLower(item.Nome), termo) ||
			strings.Contains(strings.ToLower(item.Descricao), termo)
		matchesCategoria := f.Categoria == "" ||
			f.Categoria == CategoriaTodos ||
			item.Categoria == f.Categoria
		matchesResgatados := f.MostrarResgatados ||
			!item.Resgatado ||
			stats.ResgatouItem(item.ID)

		if matchesBusca && matchesCategoria && matchesResgatados {
			out = append(out, item)
		}
	}

	return out
}

// IsMine reports whether the current guest holds the claim on item. It
// drives whether an unclaim action is offered on an otherwise-claimed item.
func IsMine(item domain.Item, stats *domain.ConvidadoStats) bool {
	return stats.ResgatouItem(item.ID)
}

// Categorias returns the category choices for the list: the "Todos"
// sentinel followed by each distinct category in first-seen order.
func Categorias(items []domain.Item) []string {
	out := []string{CategoriaTodos}
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.Categoria == "" || seen[item.Categoria] {
			continue
		}
		seen[item.Categoria] = true
		out = append(out, item.Categoria)
	}

	return out
}

// ConfirmationView is the gate for the confirmation page: a read-only
// summary once the guest has confirmed, an editable form otherwise.
type ConfirmationView struct {
	Confirmado         bool
	QuantidadeAdultos  int
	QuantidadeCriancas int
}

// ViewConfirmation returns the summary state iff the stats carry an
// existing confirmation; otherwise the form defaults (1 adult, 0 children).
func ViewConfirmation(stats *domain.ConvidadoStats) ConfirmationView {
	if stats != nil && stats.TemConfirmacao && stats.Confirmacao != nil {
		return ConfirmationView{
			Confirmado:         true,
			QuantidadeAdultos:  stats.Confirmacao.QuantidadeAdultos,
			QuantidadeCriancas: stats.Confirmacao.QuantidadeCriancas,
		}
	}

	return ConfirmationView{QuantidadeAdultos: 1}
}

// ClampAdultos floors the adult count at 1.
func ClampAdultos(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// ClampCriancas floors the child count at 0.
func ClampCriancas(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// ClaimAttribution decides the claimant name and code for a claim. A
// resolved guest is attributed unconditionally from their own identity; an
// anonymous visitor must supply a non-empty name before any call is made.
func ClaimAttribution(convidado *domain.Convidado, fallbackNome string) (domain.ResgateInput, error) {
	if convidado != nil {
		return domain.ResgateInput{
			Nome:            convidado.Nome,
			CodigoConvidado: convidado.CodigoUnico,
		}, nil
	}

	nome := strings.TrimSpace(fallbackNome)
	if nome == "" {
		return domain.ResgateInput{}, domain.ErrValidation
	}

	return domain.ResgateInput{Nome: nome}, nil
}

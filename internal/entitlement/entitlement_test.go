package entitlement

import (
	"testing"

	"github.com/CristianSsousa/new-kitchen-web/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() []domain.Item {
	return []domain.Item{
		{ID: 1, Nome: "Jogo de Panelas", Descricao: "Antiaderente", Categoria: "Cozinha"},
		{ID: 2, Nome: "Liquidificador", Descricao: "600W", Categoria: "Eletrodomésticos"},
		{ID: 3, Nome: "Toalha de Banho", Descricao: "Algodão", Categoria: "Banheiro", Resgatado: true, ResgatadoPor: "Maria"},
		{ID: 4, Nome: "Faqueiro", Descricao: "24 peças inox", Categoria: "Cozinha", Resgatado: true, ResgatadoPor: "João"},
	}
}

func TestVisibleItems_HidesClaimedByDefault(t *testing.T) {
	items := VisibleItems(testItems(), nil, Filter{Categoria: CategoriaTodos})

	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(2), items[1].ID)
}

func TestVisibleItems_MostrarResgatadosShowsAll(t *testing.T) {
	items := VisibleItems(testItems(), nil, Filter{Categoria: CategoriaTodos, MostrarResgatados: true})

	assert.Len(t, items, 4)
}

func TestVisibleItems_OwnClaimAlwaysVisible(t *testing.T) {
	stats := &domain.ConvidadoStats{
		ItensResgatados: []domain.ItemResgatado{{ID: 4}},
	}

	items := VisibleItems(testItems(), stats, Filter{Categoria: CategoriaTodos})

	require.Len(t, items, 3)
	assert.Equal(t, int64(4), items[2].ID)
}

func TestVisibleItems_BuscaMatchesNomeAndDescricao(t *testing.T) {
	tests := []struct {
		name  string
		busca string
		want  []int64
	}{
		{"nome case-insensitive", "liquidi", []int64{2}},
		{"descricao", "inox", []int64{4}},
		{"uppercase input", "FAQUEIRO", []int64{4}},
		{"no match", "churrasqueira", nil},
		{"empty matches all", "", []int64{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := VisibleItems(testItems(), nil, Filter{
				Busca:             tt.busca,
				Categoria:         CategoriaTodos,
				MostrarResgatados: true,
			})

			got := make([]int64, 0, len(items))
			for _, it := range items {
				got = append(got, it.ID)
			}
			if tt.want == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestVisibleItems_CategoriaFilter(t *testing.T) {
	items := VisibleItems(testItems(), nil, Filter{Categoria: "Cozinha", MostrarResgatados: true})

	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(4), items[1].ID)
}

func TestVisibleItems_Idempotent(t *testing.T) {
	f := Filter{Busca: "a", Categoria: CategoriaTodos}

	once := VisibleItems(testItems(), nil, f)
	twice := VisibleItems(once, nil, f)

	assert.Equal(t, once, twice)
}

func TestIsMine(t *testing.T) {
	item := domain.Item{ID: 3, Resgatado: true}
	stats := &domain.ConvidadoStats{ItensResgatados: []domain.ItemResgatado{{ID: 3}}}

	assert.True(t, IsMine(item, stats))
	assert.False(t, IsMine(domain.Item{ID: 9}, stats))
	assert.False(t, IsMine(item, nil))
}

func TestCategorias_SentinelFirstThenFirstSeenOrder(t *testing.T) {
	categorias := Categorias(testItems())

	assert.Equal(t, []string{CategoriaTodos, "Cozinha", "Eletrodomésticos", "Banheiro"}, categorias)
}

func TestCategorias_SkipsEmptyAndDuplicates(t *testing.T) {
	categorias := Categorias([]domain.Item{
		{ID: 1, Categoria: ""},
		{ID: 2, Categoria: "Cozinha"},
		{ID: 3, Categoria: "Cozinha"},
	})

	assert.Equal(t, []string{CategoriaTodos, "Cozinha"}, categorias)
}

func TestViewConfirmation_SummaryOnlyWithConfirmation(t *testing.T) {
	stats := &domain.ConvidadoStats{
		TemConfirmacao: true,
		Confirmacao: &domain.Confirmacao{
			QuantidadeAdultos:  2,
			QuantidadeCriancas: 1,
		},
	}

	view := ViewConfirmation(stats)

	assert.True(t, view.Confirmado)
	assert.Equal(t, 2, view.QuantidadeAdultos)
	assert.Equal(t, 1, view.QuantidadeCriancas)
}

func TestViewConfirmation_FormDefaults(t *testing.T) {
	tests := []struct {
		name  string
		stats *domain.ConvidadoStats
	}{
		{"nil stats", nil},
		{"no confirmation", &domain.ConvidadoStats{}},
		{"flag without payload", &domain.ConvidadoStats{TemConfirmacao: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := ViewConfirmation(tt.stats)

			assert.False(t, view.Confirmado)
			assert.Equal(t, 1, view.QuantidadeAdultos)
			assert.Equal(t, 0, view.QuantidadeCriancas)
		})
	}
}

func TestClamps(t *testing.T) {
	assert.Equal(t, 1, ClampAdultos(0))
	assert.Equal(t, 1, ClampAdultos(-5))
	assert.Equal(t, 3, ClampAdultos(3))

	assert.Equal(t, 0, ClampCriancas(-1))
	assert.Equal(t, 0, ClampCriancas(0))
	assert.Equal(t, 2, ClampCriancas(2))
}

func TestClaimAttribution_ResolvedGuestIgnoresFallback(t *testing.T) {
	conv := &domain.Convidado{Nome: "Ana", CodigoUnico: "ABC123"}

	input, err := ClaimAttribution(conv, "alguém")

	require.NoError(t, err)
	assert.Equal(t, "Ana", input.Nome)
	assert.Equal(t, "ABC123", input.CodigoConvidado)
}

func TestClaimAttribution_AnonymousRequiresName(t *testing.T) {
	_, err := ClaimAttribution(nil, "   ")
	assert.ErrorIs(t, err, domain.ErrValidation)

	input, err := ClaimAttribution(nil, "  Carlos  ")
	require.NoError(t, err)
	assert.Equal(t, "Carlos", input.Nome)
	assert.Empty(t, input.CodigoConvidado)
}

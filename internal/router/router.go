package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ResolveSession(c *ginext.Context)
	CurrentSession(c *ginext.Context)
	ClearSession(c *ginext.Context)
	RefreshSession(c *ginext.Context)
	ConviteAutoLogin(c *ginext.Context)

	ListItems(c *ginext.Context)
	ClaimItem(c *ginext.Context)
	CancelClaim(c *ginext.Context)

	GetConfirmacao(c *ginext.Context)
	CreateConfirmacao(c *ginext.Context)

	ListMensagens(c *ginext.Context)
	CreateMensagem(c *ginext.Context)

	GetEvento(c *ginext.Context)
	GetStats(c *ginext.Context)

	AdminListItems(c *ginext.Context)
	AdminGetItem(c *ginext.Context)
	AdminCreateItem(c *ginext.Context)
	AdminUpdateItem(c *ginext.Context)
	AdminDeleteItem(c *ginext.Context)

	AdminListMensagens(c *ginext.Context)
	AdminAprovarMensagem(c *ginext.Context)
	AdminDeleteMensagem(c *ginext.Context)

	AdminListConfirmacoes(c *ginext.Context)
	AdminUpdateConfirmacao(c *ginext.Context)
	AdminDeleteConfirmacao(c *ginext.Context)

	AdminListConvidados(c *ginext.Context)
	AdminCreateConvidado(c *ginext.Context)
	AdminUpdateConvidado(c *ginext.Context)
	AdminDeleteConvidado(c *ginext.Context)
	AdminRegenerarCodigo(c *ginext.Context)

	AdminStatsDetalhadas(c *ginext.Context)
	AdminUpdateEvento(c *ginext.Context)
}

func InitRouter(mode string, h Handler, session ginext.HandlerFunc, adminAuth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api", session)
	{
		// Sessao
		api.POST("/session", h.ResolveSession)
		api.GET("/session", h.CurrentSession)
		api.DELETE("/session", h.ClearSession)
		api.POST("/session/refresh", h.RefreshSession)

		// Itens
		api.GET("/items", h.ListItems)
		api.POST("/items/:id/resgate", h.ClaimItem)
		api.POST("/items/:id/cancela-resgate", h.CancelClaim)

		// Confirmacao de presenca
		api.GET("/confirmacao", h.GetConfirmacao)
		api.POST("/confirmacoes", h.CreateConfirmacao)

		// Mural de mensagens
		api.GET("/mensagens", h.ListMensagens)
		api.POST("/mensagens", h.CreateMensagem)

		// Evento
		api.GET("/evento", h.GetEvento)
		api.GET("/stats", h.GetStats)
	}

	admin := router.Group("/api/admin", adminAuth)
	{
		admin.GET("/items", h.AdminListItems)
		admin.GET("/items/:id", h.AdminGetItem)
		admin.POST("/items", h.AdminCreateItem)
		admin.PUT("/items/:id", h.AdminUpdateItem)
		admin.DELETE("/items/:id", h.AdminDeleteItem)

		admin.GET("/mensagens", h.AdminListMensagens)
		admin.PUT("/mensagens/:id/aprovar", h.AdminAprovarMensagem)
		admin.DELETE("/mensagens/:id", h.AdminDeleteMensagem)

		admin.GET("/confirmacoes", h.AdminListConfirmacoes)
		admin.PUT("/confirmacoes/:id", h.AdminUpdateConfirmacao)
		admin.DELETE("/confirmacoes/:id", h.AdminDeleteConfirmacao)

		admin.GET("/convidados", h.AdminListConvidados)
		admin.POST("/convidados", h.AdminCreateConvidado)
		admin.PUT("/convidados/:id", h.AdminUpdateConvidado)
		admin.DELETE("/convidados/:id", h.AdminDeleteConvidado)
		admin.POST("/convidados/:id/regenerar-codigo", h.AdminRegenerarCodigo)

		admin.GET("/stats/detalhadas", h.AdminStatsDetalhadas)
		admin.PUT("/evento", h.AdminUpdateEvento)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.LoadHTMLGlob("web/templates/*")
	router.Static("/static", "web/static")

	router.GET("/", func(c *ginext.Context) {
		c.HTML(http.StatusOK, "index.html", nil)
	})
	router.GET("/login", func(c *ginext.Context) {
		c.HTML(http.StatusOK, "index.html", nil)
	})

	// Invitation deep link: resolves the code and lands on the home page.
	router.GET("/convite/:codigo", session, h.ConviteAutoLogin)

	return router
}

package routes

import (
	"html/template"

	"frontend/client"
	"frontend/config"
	"frontend/controller"
	"frontend/middleware"
	"frontend/service"
	"frontend/templates"

	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.SystemConfigs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	tmpl := template.Must(template.New("").ParseFS(templates.FS, "*.html"))
	r.SetHTMLTemplate(tmpl)

	// --- 1. Clients ---
	apiClient := client.NewStockAPIClient(cfg.Config.ApiBaseUrl)

	// --- 2. Services (Dependency Injection) ---
	userSvc := service.NewUserService(apiClient)
	stockSvc := service.NewStockService(apiClient)

	// --- 3. Routes & Controllers ---
	controller.NewHealthController().RegisterRoutes(&r.RouterGroup)
	controller.NewSignupController(userSvc).RegisterRoutes(&r.RouterGroup)

	// Everything under /stocks requires a stored identifier; the guard
	// redirects to signup before any upstream call happens.
	stocks := r.Group("/stocks", middleware.SessionGuard())
	{
		controller.NewStockListController(stockSvc).RegisterRoutes(stocks)
		controller.NewStockDetailController(stockSvc).RegisterRoutes(stocks)
	}

	return r
}

package handlers

import (
	"fmt"
	"html/template"
	"time"

	"car_rental/internal/metrics"
	"car_rental/internal/services"
	"car_rental/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups everything RegisterRoutes mounts.
type Handlers struct {
	Pages   *PageHandler
	Records *RecordHandler
	Reports *ReportHandler
	Health  *HealthHandler
	Metrics *metrics.Metrics
}

func RegisterRoutes(router *gin.Engine, h Handlers) {
	router.StaticFS("/static", web.Static())

	router.GET("/", h.Pages.Index)
	router.GET("/data", h.Pages.Data)
	router.POST("/data", h.Pages.Data)

	adders := map[services.View]gin.HandlerFunc{
		services.ViewCars:      h.Records.AddCar,
		services.ViewModels:    h.Records.AddModel,
		services.ViewBrands:    h.Records.AddBrand,
		services.ViewClasses:   h.Records.AddClass,
		services.ViewClients:   h.Records.AddClient,
		services.ViewJobs:      h.Records.AddJob,
		services.ViewWorkers:   h.Records.AddEmployee,
		services.ViewPriceList: h.Records.AddPriceList,
		services.ViewRentals:   h.Records.AddRental,
		services.ViewOrders:    h.Records.AddOrder,
		services.ViewPayments:  h.Records.AddPayment,
	}
	for _, view := range services.Views() {
		group := router.Group(view.Path())
		{
			group.GET("", h.Pages.List(view))
			group.POST("/add", adders[view])
			group.POST("/delete/:id", h.Records.Delete(view))
		}
	}

	available := router.Group("/available_cars")
	{
		available.GET("", h.Reports.AvailableCars)
		available.POST("/search", h.Reports.SearchAvailableCars)
	}

	popular := router.Group("/popular_cars")
	{
		popular.GET("", h.Reports.PopularCars)
		popular.POST("/search", h.Reports.SearchPopularCars)
	}

	incomes := router.Group("/incomes")
	{
		incomes.GET("", h.Reports.Incomes)
		incomes.GET("/all", h.Reports.FinancialReport)
		incomes.GET("/all/export", h.Reports.ExportFinancialReport)
	}

	getModels := router.Group("/get_models")
	getModels.Use(setupCORS())
	{
		getModels.GET("/:brand_id", h.Reports.GetModels)
	}

	if h.Health != nil {
		router.GET("/healthz", h.Health.Healthz)
	}
	if h.Metrics != nil {
		router.GET("/metrics", gin.WrapH(h.Metrics.Handler()))
	}
}

func setupCORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	})
}

// LoadTemplates parses the embedded page templates into router.
func LoadTemplates(router *gin.Engine) error {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)
	return nil
}

var templateFuncs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"date":  func(t time.Time) string { return t.Format("2006-01-02") },
	"cell":  func(v any) string { return fmt.Sprint(v) },
}

package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"car_rental/internal/flash"
	"car_rental/internal/services"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	availableCarsLabels = []string{"ID", "Model", "Marka", "Numer rejestracyjny", "Klasa"}
	modelCountLabels    = []string{"Marka", "Model", "Ilość"}
	brandCountLabels    = []string{"Marka", "Ilość"}
	popularLabels       = []string{"Model", "Marka", "Liczba wypożyczeń"}
	classRevenueLabels  = []string{"Klasa", "Liczba wypożyczeń", "Całkowity przychód"}
	summaryLabels       = []string{"Całkowity przychód", "Średni przychód"}
)

// ReportHandler serves the pages backed by stored routines. Database
// failures are shown as an error page, not as flash messages.
type ReportHandler struct {
	responder
	reports services.ReportService
}

func NewReportHandler(reports services.ReportService, flashes flash.Store) *ReportHandler {
	return &ReportHandler{responder: responder{flashes: flashes}, reports: reports}
}

func (h *ReportHandler) AvailableCars(c *gin.Context) {
	h.render(c, http.StatusOK, "available_cars.html", gin.H{"Title": "Dostępność aut", "Views": services.Views()})
}

func (h *ReportHandler) SearchAvailableCars(c *gin.Context) {
	var form availabilityForm
	if err := bindForm(c, &form); err != nil {
		h.push(c, services.ErrorNotice(err))
		c.Redirect(http.StatusFound, "/available_cars")
		return
	}

	result, err := h.reports.Availability(c.Request.Context(), form.StartDate, form.EndDate)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	h.render(c, http.StatusOK, "available_cars.html", gin.H{
		"Title":       "Dostępność aut",
		"Result":      result,
		"Labels":      availableCarsLabels,
		"ModelLabels": modelCountLabels,
		"BrandLabels": brandCountLabels,
		"Views":       services.Views(),
	})
}

func (h *ReportHandler) PopularCars(c *gin.Context) {
	h.render(c, http.StatusOK, "popular_cars.html", gin.H{"Title": "Wyszukaj najpopularniejsze modele", "Views": services.Views()})
}

func (h *ReportHandler) SearchPopularCars(c *gin.Context) {
	var form popularForm
	if err := bindForm(c, &form); err != nil {
		h.push(c, services.ErrorNotice(err))
		c.Redirect(http.StatusFound, "/popular_cars")
		return
	}

	popular, err := h.reports.PopularModels(c.Request.Context(), *form.Threshold)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	h.render(c, http.StatusOK, "popular_cars.html", gin.H{
		"Title":     "Najpopularniejsze modele",
		"Threshold": *form.Threshold,
		"Popular":   popular,
		"Labels":    popularLabels,
		"Views":     services.Views(),
	})
}

func (h *ReportHandler) Incomes(c *gin.Context) {
	h.render(c, http.StatusOK, "incomes.html", gin.H{"Title": "Przychody", "Views": services.Views()})
}

func (h *ReportHandler) FinancialReport(c *gin.Context) {
	report, err := h.reports.Financial(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	h.render(c, http.StatusOK, "incomes.html", gin.H{
		"Title":         "Podsumowanie finansowe",
		"Report":        report,
		"Labels":        classRevenueLabels,
		"SummaryLabels": summaryLabels,
		"Views":         services.Views(),
	})
}

func (h *ReportHandler) ExportFinancialReport(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.reports.ExportFinancial(c.Request.Context(), &buf); err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="raport_finansowy.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// GetModels lists the models of one brand as JSON for the order form.
func (h *ReportHandler) GetModels(c *gin.Context) {
	brandID, err := strconv.Atoi(c.Param("brand_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand id"})
		return
	}

	options, err := h.reports.ModelsByBrand(c.Request.Context(), brandID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, options)
}

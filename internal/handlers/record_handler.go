package handlers

import (
	"context"
	"net/http"
	"strconv"

	"car_rental/internal/flash"
	"car_rental/internal/mutation"
	"car_rental/internal/services"

	"github.com/gin-gonic/gin"
)

// RecordHandler serves the add and delete forms. Every request ends in a
// redirect to the list page, carrying the outcome as a flash message.
type RecordHandler struct {
	responder
	records services.RecordService
}

func NewRecordHandler(records services.RecordService, flashes flash.Store) *RecordHandler {
	return &RecordHandler{responder: responder{flashes: flashes}, records: records}
}

func (h *RecordHandler) add(c *gin.Context, view services.View, form any, create func(context.Context) flash.Message) {
	if err := bindForm(c, form); err != nil {
		h.push(c, services.ErrorNotice(err))
	} else {
		h.push(c, create(c.Request.Context()))
	}
	c.Redirect(http.StatusFound, view.Path())
}

func (h *RecordHandler) AddCar(c *gin.Context) {
	var form carForm
	h.add(c, services.ViewCars, &form, func(ctx context.Context) flash.Message {
		return h.records.AddCar(ctx, form.model())
	})
}

func (h *RecordHandler) AddModel(c *gin.Context) {
	var form modelForm
	h.add(c, services.ViewModels, &form, func(ctx context.Context) flash.Message {
		return h.records.AddModel(ctx, form.model())
	})
}

func (h *RecordHandler) AddBrand(c *gin.Context) {
	var form brandForm
	h.add(c, services.ViewBrands, &form, func(ctx context.Context) flash.Message {
		return h.records.AddBrand(ctx, form.model())
	})
}

func (h *RecordHandler) AddClass(c *gin.Context) {
	var form classForm
	h.add(c, services.ViewClasses, &form, func(ctx context.Context) flash.Message {
		return h.records.AddClass(ctx, form.model())
	})
}

func (h *RecordHandler) AddClient(c *gin.Context) {
	var form clientForm
	h.add(c, services.ViewClients, &form, func(ctx context.Context) flash.Message {
		return h.records.AddClient(ctx, form.model())
	})
}

func (h *RecordHandler) AddJob(c *gin.Context) {
	var form jobForm
	h.add(c, services.ViewJobs, &form, func(ctx context.Context) flash.Message {
		return h.records.AddJob(ctx, form.model())
	})
}

func (h *RecordHandler) AddEmployee(c *gin.Context) {
	var form employeeForm
	h.add(c, services.ViewWorkers, &form, func(ctx context.Context) flash.Message {
		return h.records.AddEmployee(ctx, form.model())
	})
}

func (h *RecordHandler) AddPriceList(c *gin.Context) {
	var form priceListForm
	h.add(c, services.ViewPriceList, &form, func(ctx context.Context) flash.Message {
		return h.records.AddPriceList(ctx, form.model())
	})
}

func (h *RecordHandler) AddRental(c *gin.Context) {
	var form rentalForm
	h.add(c, services.ViewRentals, &form, func(ctx context.Context) flash.Message {
		return h.records.AddRental(ctx, form.model())
	})
}

func (h *RecordHandler) AddOrder(c *gin.Context) {
	var form orderForm
	h.add(c, services.ViewOrders, &form, func(ctx context.Context) flash.Message {
		return h.records.AddOrder(ctx, form.model())
	})
}

func (h *RecordHandler) AddPayment(c *gin.Context) {
	var form paymentForm
	h.add(c, services.ViewPayments, &form, func(ctx context.Context) flash.Message {
		return h.records.AddPayment(ctx, form.model())
	})
}

// Delete returns the handler removing one row of view's table by the :id
// path parameter.
func (h *RecordHandler) Delete(view services.View) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			h.push(c, services.ErrorNotice(mutation.ValidationError("id", mutation.ErrNotInteger)))
		} else {
			h.push(c, h.records.Delete(c.Request.Context(), view, id))
		}
		c.Redirect(http.StatusFound, view.Path())
	}
}

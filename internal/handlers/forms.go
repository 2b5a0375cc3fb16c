package handlers

import (
	"errors"
	"strconv"
	"time"

	"car_rental/internal/models"
	"car_rental/internal/mutation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

// bindForm binds the posted form into dst and reports problems as
// validation errors, before anything reaches the database.
func bindForm(c *gin.Context, dst any) error {
	err := c.ShouldBind(dst)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return mutation.ValidationError(fieldErrs[0].Field(), mutation.ErrMissingField)
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && numErr.Func == "ParseInt" {
		return mutation.ValidationError("", mutation.ErrNotInteger)
	}
	return mutation.ValidationError("", mutation.ErrInvalidValue)
}

type carForm struct {
	Registration string `form:"registration" binding:"required"`
	Year         int    `form:"rok" binding:"required"`
	ModelID      int    `form:"model_id" binding:"required"`
}

func (f carForm) model() models.Car {
	return models.Car{ModelID: f.ModelID, RegistrationNumber: f.Registration, Year: f.Year}
}

type modelForm struct {
	Name    string `form:"models_model_name" binding:"required"`
	BrandID int    `form:"model_brand_id" binding:"required"`
	ClassID int    `form:"class_id" binding:"required"`
}

func (f modelForm) model() models.Model {
	return models.Model{Name: f.Name, BrandID: f.BrandID, ClassID: f.ClassID}
}

type brandForm struct {
	Name string `form:"brands_brand_name" binding:"required"`
}

func (f brandForm) model() models.Brand {
	return models.Brand{Name: f.Name}
}

type classForm struct {
	Name        string `form:"classes_class_name" binding:"required"`
	Description string `form:"description"`
}

func (f classForm) model() models.CarClass {
	class := models.CarClass{Name: f.Name}
	if f.Description != "" {
		description := f.Description
		class.Description = &description
	}
	return class
}

type clientForm struct {
	FirstName string `form:"clients_name" binding:"required"`
	LastName  string `form:"clients_surname" binding:"required"`
	Phone     string `form:"clients_phone" binding:"required"`
}

func (f clientForm) model() models.Client {
	return models.Client{FirstName: f.FirstName, LastName: f.LastName, Phone: f.Phone}
}

// Salary is a pointer so that zero reaches the database check instead of
// being reported as missing.
type jobForm struct {
	Name    string   `form:"role_name" binding:"required"`
	Salary  *float64 `form:"role_salary" binding:"required"`
	CanRent string   `form:"can_rent_id"`
}

func (f jobForm) model() models.Job {
	return models.Job{Name: f.Name, Salary: *f.Salary, CanRent: f.CanRent == "True"}
}

type employeeForm struct {
	FirstName string `form:"workers_name" binding:"required"`
	LastName  string `form:"workers_surname" binding:"required"`
	Phone     string `form:"workers_phone" binding:"required"`
	JobID     int    `form:"role_id" binding:"required"`
}

func (f employeeForm) model() models.Employee {
	return models.Employee{FirstName: f.FirstName, LastName: f.LastName, Phone: f.Phone, JobID: f.JobID}
}

type priceListForm struct {
	ClassID   int      `form:"pricelist_class_id" binding:"required"`
	DailyRate *float64 `form:"daily_rate" binding:"required"`
}

func (f priceListForm) model() models.PriceList {
	return models.PriceList{ClassID: f.ClassID, DailyRate: *f.DailyRate}
}

type rentalForm struct {
	ClientID   int       `form:"client_id" binding:"required"`
	CarID      int       `form:"car_id" binding:"required"`
	EmployeeID int       `form:"employee_id" binding:"required"`
	StartDate  time.Time `form:"start_rental_date" time_format:"2006-01-02" binding:"required"`
	EndDate    time.Time `form:"end_rental_date" time_format:"2006-01-02" binding:"required"`
}

func (f rentalForm) model() models.Rental {
	return models.Rental{
		ClientID:   f.ClientID,
		CarID:      f.CarID,
		EmployeeID: f.EmployeeID,
		StartDate:  datatypes.Date(f.StartDate),
		EndDate:    datatypes.Date(f.EndDate),
	}
}

type orderForm struct {
	ClientID  int       `form:"client_id" binding:"required"`
	ModelID   int       `form:"rental_model_id" binding:"required"`
	StartDate time.Time `form:"start_rental_date" time_format:"2006-01-02" binding:"required"`
	EndDate   time.Time `form:"end_rental_date" time_format:"2006-01-02" binding:"required"`
}

func (f orderForm) model() models.Order {
	return models.Order{
		ClientID:  f.ClientID,
		ModelID:   f.ModelID,
		StartDate: datatypes.Date(f.StartDate),
		EndDate:   datatypes.Date(f.EndDate),
	}
}

type paymentForm struct {
	RentalID int      `form:"rental_id" binding:"required"`
	Amount   *float64 `form:"amount" binding:"required"`
}

func (f paymentForm) model() models.Payment {
	return models.Payment{RentalID: f.RentalID, Amount: *f.Amount}
}

type availabilityForm struct {
	StartDate time.Time `form:"search_start_date" time_format:"2006-01-02" binding:"required"`
	EndDate   time.Time `form:"search_end_date" time_format:"2006-01-02" binding:"required"`
}

type popularForm struct {
	Threshold *int `form:"rental_amount" binding:"required"`
}

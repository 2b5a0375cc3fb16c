package services

import (
	"context"
	"fmt"

	"car_rental/internal/flash"
	"car_rental/internal/models"
)

// Mutator is the transactional write path. *mutation.Protocol implements it.
type Mutator interface {
	Create(ctx context.Context, entity string, row any) error
	CreateReturning(ctx context.Context, entity string, row any) error
	Delete(ctx context.Context, table models.Table, id int) (bool, error)
}

// RecordService adds and removes single rows and describes the outcome as a
// flash message. It never returns an error: every failure becomes a notice.
type RecordService interface {
	AddCar(ctx context.Context, car models.Car) flash.Message
	AddModel(ctx context.Context, model models.Model) flash.Message
	AddBrand(ctx context.Context, brand models.Brand) flash.Message
	AddClass(ctx context.Context, class models.CarClass) flash.Message
	AddClient(ctx context.Context, client models.Client) flash.Message
	AddJob(ctx context.Context, job models.Job) flash.Message
	AddEmployee(ctx context.Context, employee models.Employee) flash.Message
	AddPriceList(ctx context.Context, entry models.PriceList) flash.Message
	AddRental(ctx context.Context, rental models.Rental) flash.Message
	AddOrder(ctx context.Context, order models.Order) flash.Message
	AddPayment(ctx context.Context, payment models.Payment) flash.Message
	Delete(ctx context.Context, view View, id int) flash.Message
}

type recordService struct {
	mutator Mutator
}

func NewRecordService(mutator Mutator) RecordService {
	return &recordService{mutator: mutator}
}

func (s *recordService) AddCar(ctx context.Context, car models.Car) flash.Message {
	err := s.mutator.Create(ctx, models.CarsTable.Entity, &car)
	return createNotice(err, "Samochód został pomyślnie dodany!", carMessages(car))
}

func (s *recordService) AddModel(ctx context.Context, model models.Model) flash.Message {
	err := s.mutator.Create(ctx, models.ModelsTable.Entity, &model)
	return createNotice(err, "Model został pomyślnie dodany!", nil)
}

func (s *recordService) AddBrand(ctx context.Context, brand models.Brand) flash.Message {
	err := s.mutator.Create(ctx, models.BrandsTable.Entity, &brand)
	return createNotice(err, fmt.Sprintf("Marka %s została pomyślnie dodana!", brand.Name), brandMessages(brand))
}

func (s *recordService) AddClass(ctx context.Context, class models.CarClass) flash.Message {
	err := s.mutator.Create(ctx, models.ClassesTable.Entity, &class)
	return createNotice(err, fmt.Sprintf("Klasa %s została pomyślnie dodana!", class.Name), classMessages(class))
}

func (s *recordService) AddClient(ctx context.Context, client models.Client) flash.Message {
	err := s.mutator.Create(ctx, models.ClientsTable.Entity, &client)
	success := fmt.Sprintf("Klient/ka %s %s został/a pomyślnie dodany/a!", client.FirstName, client.LastName)
	return createNotice(err, success, clientMessages(client))
}

func (s *recordService) AddJob(ctx context.Context, job models.Job) flash.Message {
	err := s.mutator.Create(ctx, models.JobsTable.Entity, &job)
	return createNotice(err, fmt.Sprintf("Stanowisko %s zostało pomyślnie dodane", job.Name), jobMessages(job))
}

func (s *recordService) AddEmployee(ctx context.Context, employee models.Employee) flash.Message {
	err := s.mutator.Create(ctx, models.EmployeesTable.Entity, &employee)
	success := fmt.Sprintf("Pracownik %s %s został/a pomyślnie dodany/a", employee.FirstName, employee.LastName)
	return createNotice(err, success, employeeMessages(employee))
}

func (s *recordService) AddPriceList(ctx context.Context, entry models.PriceList) flash.Message {
	err := s.mutator.Create(ctx, models.PriceListTable.Entity, &entry)
	return createNotice(err, "Stawka została pomyślnie dodana do cennika", nil)
}

func (s *recordService) AddRental(ctx context.Context, rental models.Rental) flash.Message {
	err := s.mutator.Create(ctx, models.RentalsTable.Entity, &rental)
	return createNotice(err, "Wypożyczenie zostało pomyślnie dodane", dateOrderMessages)
}

// AddOrder reads the inserted row back: the availability trigger may have
// marked the order as failed even though the insert committed.
func (s *recordService) AddOrder(ctx context.Context, order models.Order) flash.Message {
	if err := s.mutator.CreateReturning(ctx, models.OrdersTable.Entity, &order); err != nil {
		return createNotice(err, "", dateOrderMessages)
	}
	if order.Status == models.OrderFailed {
		return flash.Error(msgNoCarsAvailable)
	}
	return flash.Success("Zamówienie zostało pomyślnie dodane")
}

func (s *recordService) AddPayment(ctx context.Context, payment models.Payment) flash.Message {
	err := s.mutator.Create(ctx, models.PaymentsTable.Entity, &payment)
	return createNotice(err, "Płatność została pomyślnie dodana", nil)
}

func (s *recordService) Delete(ctx context.Context, view View, id int) flash.Message {
	deleted, err := s.mutator.Delete(ctx, view.Table(), id)
	return deleteNotice(view, id, deleted, err)
}

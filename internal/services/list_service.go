package services

import (
	"context"
	"fmt"
	"time"

	"car_rental/internal/models"
	"car_rental/internal/repository"

	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

// Listing is one rendered list page.
type Listing struct {
	View   View
	Title  string
	Labels []string
	Rows   [][]any
}

// FormOptions holds the related rows offered as choices on an add form.
// Only the lists the view's form uses are filled.
type FormOptions struct {
	Brands    []models.Brand
	Classes   []models.CarClass
	Models    []models.Model
	Cars      []models.CarDetails
	Clients   []models.Client
	Jobs      []models.Job
	Employees []models.Employee
	Rentals   []models.Rental
}

type ListService interface {
	List(ctx context.Context, view View) (*Listing, error)
	Options(ctx context.Context, view View) (*FormOptions, error)
}

type listService struct {
	fleetRepo  repository.FleetRepository
	peopleRepo repository.PeopleRepository
	rentalRepo repository.RentalRepository
}

func NewListService(fleetRepo repository.FleetRepository, peopleRepo repository.PeopleRepository, rentalRepo repository.RentalRepository) ListService {
	return &listService{fleetRepo: fleetRepo, peopleRepo: peopleRepo, rentalRepo: rentalRepo}
}

func (s *listService) List(ctx context.Context, view View) (*Listing, error) {
	rows, err := s.rows(ctx, view)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", view, err)
	}
	return &Listing{View: view, Title: view.Title(), Labels: view.Labels(), Rows: rows}, nil
}

func (s *listService) rows(ctx context.Context, view View) ([][]any, error) {
	var out [][]any
	switch view {
	case ViewCars:
		cars, err := s.fleetRepo.ListCars(ctx)
		if err != nil {
			return nil, err
		}
		for _, c := range cars {
			out = append(out, []any{c.ID, c.ModelName, c.BrandName, c.RegistrationNumber, c.ClassName})
		}
	case ViewModels:
		list, err := s.fleetRepo.ListModels(ctx)
		if err != nil {
			return nil, err
		}
		for _, m := range list {
			out = append(out, []any{m.ID, m.BrandName, m.ModelName})
		}
	case ViewBrands:
		brands, err := s.fleetRepo.ListBrands(ctx)
		if err != nil {
			return nil, err
		}
		for _, b := range brands {
			out = append(out, []any{b.ID, b.Name})
		}
	case ViewClasses:
		classes, err := s.fleetRepo.ListClasses(ctx)
		if err != nil {
			return nil, err
		}
		for _, c := range classes {
			description := ""
			if c.Description != nil {
				description = *c.Description
			}
			out = append(out, []any{c.ID, c.Name, description})
		}
	case ViewClients:
		clients, err := s.peopleRepo.ListClients(ctx)
		if err != nil {
			return nil, err
		}
		for _, c := range clients {
			out = append(out, []any{c.ID, c.FirstName, c.LastName, c.Phone})
		}
	case ViewJobs:
		jobs, err := s.peopleRepo.ListJobs(ctx)
		if err != nil {
			return nil, err
		}
		for _, j := range jobs {
			out = append(out, []any{j.ID, j.Name, money(j.Salary), yesNo(j.CanRent)})
		}
	case ViewWorkers:
		employees, err := s.peopleRepo.ListEmployees(ctx)
		if err != nil {
			return nil, err
		}
		for _, e := range employees {
			out = append(out, []any{e.ID, e.FirstName, e.LastName, e.Phone, e.JobName})
		}
	case ViewPriceList:
		entries, err := s.fleetRepo.ListPriceList(ctx)
		if err != nil {
			return nil, err
		}
		for _, p := range entries {
			out = append(out, []any{p.ID, p.ClassName, money(p.DailyRate)})
		}
	case ViewRentals:
		rentals, err := s.rentalRepo.ListRentals(ctx)
		if err != nil {
			return nil, err
		}
		for _, r := range rentals {
			out = append(out, []any{r.ID, r.Client, r.RegistrationNumber, r.BrandName, r.ModelName,
				date(r.StartDate), date(r.EndDate), r.Employee})
		}
	case ViewOrders:
		orders, err := s.rentalRepo.ListOrders(ctx)
		if err != nil {
			return nil, err
		}
		for _, o := range orders {
			out = append(out, []any{o.ID, o.Client, o.ModelName, date(o.StartDate), date(o.EndDate), string(o.Status)})
		}
	case ViewPayments:
		payments, err := s.rentalRepo.ListPayments(ctx)
		if err != nil {
			return nil, err
		}
		for _, p := range payments {
			out = append(out, []any{p.ID, p.RentalID, money(p.Amount)})
		}
	default:
		return nil, fmt.Errorf("unknown view %d", int(view))
	}
	return out, nil
}

func (s *listService) Options(ctx context.Context, view View) (*FormOptions, error) {
	opts := &FormOptions{}
	var err error

	load := func(fn func() error) {
		if err == nil {
			err = fn()
		}
	}
	brands := func() (e error) { opts.Brands, e = s.fleetRepo.ListBrands(ctx); return }
	classes := func() (e error) { opts.Classes, e = s.fleetRepo.ListClasses(ctx); return }
	modelList := func() (e error) { opts.Models, e = s.fleetRepo.ModelOptions(ctx); return }
	cars := func() (e error) { opts.Cars, e = s.fleetRepo.ListCars(ctx); return }
	clients := func() (e error) { opts.Clients, e = s.peopleRepo.ListClients(ctx); return }
	jobs := func() (e error) { opts.Jobs, e = s.peopleRepo.ListJobs(ctx); return }
	employees := func() (e error) { opts.Employees, e = s.peopleRepo.EmployeeOptions(ctx); return }
	rentals := func() (e error) { opts.Rentals, e = s.rentalRepo.RentalOptions(ctx); return }

	switch view {
	case ViewCars:
		load(modelList)
		load(brands)
	case ViewModels:
		load(brands)
		load(classes)
	case ViewWorkers:
		load(jobs)
	case ViewPriceList:
		load(classes)
	case ViewRentals:
		load(clients)
		load(cars)
		load(employees)
	case ViewOrders:
		load(clients)
		load(modelList)
		load(brands)
	case ViewPayments:
		load(rentals)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load form options for %s: %w", view, err)
	}
	return opts, nil
}

func yesNo(b bool) string {
	if b {
		return "Tak"
	}
	return "Nie"
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func date(d datatypes.Date) string {
	return time.Time(d).Format(dateLayout)
}

package services

import (
	"car_rental/internal/models"
	"car_rental/internal/mutation"
)

// View names one list page and the entity behind it.
type View int

const (
	ViewCars View = iota + 1
	ViewModels
	ViewBrands
	ViewClasses
	ViewClients
	ViewJobs
	ViewWorkers
	ViewPriceList
	ViewRentals
	ViewOrders
	ViewPayments
)

type viewDef struct {
	name   string
	title  string
	labels []string
	table  models.Table
}

var viewDefs = map[View]viewDef{
	ViewCars:      {"cars", "Auta", []string{"ID", "Model", "Marka", "Numer rejestracyjny", "Klasa"}, models.CarsTable},
	ViewModels:    {"models", "Modele", []string{"ID", "Marka", "Model"}, models.ModelsTable},
	ViewBrands:    {"brands", "Marki", []string{"ID", "Marka"}, models.BrandsTable},
	ViewClasses:   {"classes", "Klasy aut", []string{"ID", "Klasa", "Opis"}, models.ClassesTable},
	ViewClients:   {"clients", "Klienci", []string{"ID", "Imie", "Nazwisko", "Telefon"}, models.ClientsTable},
	ViewJobs:      {"jobs", "Stanowiska", []string{"ID", "Nazwa stanowiska", "Wypłata", "Może wynajmować auta"}, models.JobsTable},
	ViewWorkers:   {"workers", "Pracownicy", []string{"ID", "Imie", "Nazwisko", "Telefon", "Stanowisko"}, models.EmployeesTable},
	ViewPriceList: {"pricelist", "Cennik", []string{"ID", "Klasa", "Stawka za dzień"}, models.PriceListTable},
	ViewRentals:   {"rentals", "Wypożyczenia", []string{"ID", "Klient", "Numer rejestracyjny", "Marka", "Model", "Początek", "Koniec", "Pracownik wynajmujący"}, models.RentalsTable},
	ViewOrders:    {"orders", "Zamówienia", []string{"ID", "Klient", "Model", "Początek", "Koniec", "Status"}, models.OrdersTable},
	ViewPayments:  {"payments", "Płatności", []string{"ID", "ID wypozyczenia", "Kwota"}, models.PaymentsTable},
}

// Views lists every view in navigation order.
func Views() []View {
	return []View{
		ViewCars, ViewModels, ViewBrands, ViewClasses, ViewClients, ViewJobs,
		ViewWorkers, ViewPriceList, ViewRentals, ViewOrders, ViewPayments,
	}
}

// ParseView resolves a view by its URL name. Unknown names are validation
// errors on the "context" field.
func ParseView(name string) (View, error) {
	for v, def := range viewDefs {
		if def.name == name {
			return v, nil
		}
	}
	return 0, mutation.ValidationError("context", mutation.ErrInvalidValue)
}

func (v View) String() string   { return viewDefs[v].name }
func (v View) Title() string    { return viewDefs[v].title }
func (v View) Labels() []string { return viewDefs[v].labels }
func (v View) Path() string     { return "/" + viewDefs[v].name }

// Table is the entity deleted from this view.
func (v View) Table() models.Table { return viewDefs[v].table }

// Valid reports whether v is one of the declared views.
func (v View) Valid() bool {
	_, ok := viewDefs[v]
	return ok
}

package models

// Schema is the namespace holding every table, view and stored routine.
const Schema = "wypozyczalnia"

// Table identifies a deletable entity by its table and primary key column.
type Table struct {
	Entity     string
	PrimaryKey string
	New        func() any
}

var (
	BrandsTable    = Table{Entity: "brand", PrimaryKey: "id_marka", New: func() any { return &Brand{} }}
	ModelsTable    = Table{Entity: "model", PrimaryKey: "id_model", New: func() any { return &Model{} }}
	ClassesTable   = Table{Entity: "class", PrimaryKey: "id_klasa", New: func() any { return &CarClass{} }}
	CarsTable      = Table{Entity: "car", PrimaryKey: "id_auto", New: func() any { return &Car{} }}
	ClientsTable   = Table{Entity: "client", PrimaryKey: "id_klient", New: func() any { return &Client{} }}
	JobsTable      = Table{Entity: "job", PrimaryKey: "id_rola", New: func() any { return &Job{} }}
	EmployeesTable = Table{Entity: "employee", PrimaryKey: "id_pracownik", New: func() any { return &Employee{} }}
	PriceListTable = Table{Entity: "pricelist", PrimaryKey: "id_cennik", New: func() any { return &PriceList{} }}
	RentalsTable   = Table{Entity: "rental", PrimaryKey: "id_wypozyczenia", New: func() any { return &Rental{} }}
	OrdersTable    = Table{Entity: "order", PrimaryKey: "id_zamowienia", New: func() any { return &Order{} }}
	PaymentsTable  = Table{Entity: "payment", PrimaryKey: "id_platnosc", New: func() any { return &Payment{} }}
)

// Tables lists every writable table, in dependency order (leaves first).
func Tables() []Table {
	return []Table{
		BrandsTable,
		ClassesTable,
		ModelsTable,
		CarsTable,
		ClientsTable,
		JobsTable,
		EmployeesTable,
		PriceListTable,
		RentalsTable,
		OrdersTable,
		PaymentsTable,
	}
}

// Relations returns the table and view names expected in Schema.
func Relations() []string {
	return []string{
		"marki", "modele", "klasa", "auta", "klienci", "role", "pracownicy",
		"cennik", "wypozyczenia", "zamowienia", "platnosci",
		"szczegoly_aut", "szczegoly_wypozyczenia",
	}
}

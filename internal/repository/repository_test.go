package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"car_rental/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return db, mock
}

func TestFleetRepository_ListBrands(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFleetRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "wypozyczalnia"."marki"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id_marka", "nazwa_marki"}).
			AddRow(1, "Toyota").
			AddRow(2, "Skoda"))

	brands, err := repo.ListBrands(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(brands) != 2 || brands[1].Name != "Skoda" {
		t.Fatalf("unexpected brands: %+v", brands)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFleetRepository_ListModelsJoinsBrand(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFleetRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT m.id_model, b.nazwa_marki, m.nazwa_modelu FROM wypozyczalnia.modele AS m`) +
		`.*` + regexp.QuoteMeta(`JOIN wypozyczalnia.marki AS b ON m.id_marka = b.id_marka`)).
		WillReturnRows(sqlmock.NewRows([]string{"id_model", "nazwa_marki", "nazwa_modelu"}).
			AddRow(5, "Toyota", "Corolla"))

	rows, err := repo.ListModels(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0] != (ModelRow{ID: 5, BrandName: "Toyota", ModelName: "Corolla"}) {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestFleetRepository_ListCarsFromView(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFleetRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "wypozyczalnia"."szczegoly_aut"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id_auto", "nazwa_modelu", "nazwa_marki", "numer_rejestracyjny", "id_klasa", "nazwa_klasy"}).
			AddRow(41, "Corolla", "Toyota", "ABC1234X", 2, "Kompakt"))

	cars, err := repo.ListCars(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cars) != 1 || cars[0].RegistrationNumber != "ABC1234X" || cars[0].ClassName != "Kompakt" {
		t.Fatalf("unexpected cars: %+v", cars)
	}
}

func TestFleetRepository_ListPriceList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFleetRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT c.id_cennik, k.nazwa, c.stawka_za_dzien FROM wypozyczalnia.cennik AS c`)).
		WillReturnRows(sqlmock.NewRows([]string{"id_cennik", "nazwa", "stawka_za_dzien"}).AddRow(1, "Premium", 350.5))

	rows, err := repo.ListPriceList(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].DailyRate != 350.5 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestPeopleRepository_ListEmployeesJoinsJob(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPeopleRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT p.id_pracownik, p.imie, p.nazwisko, p.telefon, r.nazwa AS stanowisko FROM wypozyczalnia.pracownicy AS p`)).
		WillReturnRows(sqlmock.NewRows([]string{"id_pracownik", "imie", "nazwisko", "telefon", "stanowisko"}).
			AddRow(1, "Anna", "Kowalska", "500600700", "Kierownik"))

	rows, err := repo.ListEmployees(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].JobName != "Kierownik" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestPeopleRepository_ListJobs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPeopleRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "wypozyczalnia"."role"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id_rola", "nazwa", "wyplata", "czy_moze_wynajmowac"}).
			AddRow(1, "Kierownik", 7500.0, true).
			AddRow(2, "Mechanik", 5200.0, false))

	jobs, err := repo.ListJobs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 2 || !jobs[0].CanRent || jobs[1].CanRent {
		t.Fatalf("unexpected jobs: %+v", jobs)
	}
}

func TestRentalRepository_ListOrders(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRentalRepository(db)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT z.id_zamowienia, CONCAT(k.imie, ' ', k.nazwisko) AS klient`) +
		`.*` + regexp.QuoteMeta(`JOIN wypozyczalnia.klienci AS k ON z.id_klient = k.id_klient`) +
		`.*` + regexp.QuoteMeta(`JOIN wypozyczalnia.modele AS m ON z.id_model = m.id_model`)).
		WillReturnRows(sqlmock.NewRows([]string{"id_zamowienia", "klient", "nazwa_modelu", "data_rozpoczecia", "data_zakonczenia", "status"}).
			AddRow(12, "Jan Nowak", "Corolla", start, end, "udane"))

	rows, err := repo.ListOrders(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Client != "Jan Nowak" || rows[0].Status != models.OrderSucceeded {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
	if !time.Time(rows[0].StartDate).Equal(start) {
		t.Fatalf("unexpected start date %v", time.Time(rows[0].StartDate))
	}
}

func TestRentalRepository_ReadErrorPropagates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRentalRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "wypozyczalnia"."platnosci"`)).
		WillReturnError(sqlmock.ErrCancelled)

	if _, err := repo.ListPayments(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

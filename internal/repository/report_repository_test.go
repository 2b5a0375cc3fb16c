package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

var (
	searchStart = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	searchEnd   = time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
)

func TestReportRepository_AvailableCars(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReportRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(sqlAvailableCars)).
		WithArgs(searchStart, searchEnd).
		WillReturnRows(pgxmock.NewRows([]string{"id_auto", "nazwa_modelu", "nazwa_marki", "numer_rejestracyjny", "nazwa_klasy"}).
			AddRow(7, "Octavia", "Skoda", "WGM123AB", "Kompakt").
			AddRow(3, "Corolla", "Toyota", "ABC1234X", "Kompakt"))

	cars, err := repo.AvailableCars(context.Background(), searchStart, searchEnd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cars) != 2 {
		t.Fatalf("expected 2 cars, got %d", len(cars))
	}
	// database order is kept
	if cars[0].ID != 7 || cars[1].ID != 3 {
		t.Fatalf("unexpected order: %+v", cars)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReportRepository_AvailabilityCounts(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReportRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(sqlCountAvailableCars)).
		WithArgs(searchStart, searchEnd).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))
	mock.ExpectQuery(regexp.QuoteMeta(sqlCountAvailableModel)).
		WithArgs(searchStart, searchEnd).
		WillReturnRows(pgxmock.NewRows([]string{"nazwa_marki", "nazwa_modelu", "ilosc"}).
			AddRow("Skoda", "Octavia", int64(1)).
			AddRow("Toyota", "Corolla", int64(1)))
	mock.ExpectQuery(regexp.QuoteMeta(sqlCountAvailableBrand)).
		WithArgs(searchStart, searchEnd).
		WillReturnRows(pgxmock.NewRows([]string{"nazwa_marki", "ilosc"}).AddRow("Skoda", int64(1)))

	count, err := repo.CountAvailableCars(ctx, searchStart, searchEnd)
	if err != nil || count != 2 {
		t.Fatalf("unexpected count %d, err %v", count, err)
	}
	modelCounts, err := repo.CountAvailableModels(ctx, searchStart, searchEnd)
	if err != nil || len(modelCounts) != 2 || modelCounts[1].ModelName != "Corolla" {
		t.Fatalf("unexpected model counts %+v, err %v", modelCounts, err)
	}
	brandCounts, err := repo.CountAvailableBrands(ctx, searchStart, searchEnd)
	if err != nil || len(brandCounts) != 1 || brandCounts[0].Count != 1 {
		t.Fatalf("unexpected brand counts %+v, err %v", brandCounts, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReportRepository_PopularModels(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReportRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(sqlPopularModels)).
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows([]string{"nazwa_modelu", "nazwa_marki", "liczba_wypozyczen"}).
			AddRow("Corolla", "Toyota", int64(9)))

	models, err := repo.PopularModels(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(models) != 1 || models[0].Rentals != 9 {
		t.Fatalf("unexpected models: %+v", models)
	}
}

func TestReportRepository_FinancialSummary(t *testing.T) {
	total, average := 12500.0, 625.0

	t.Run("values", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewReportRepository(mock)
		mock.ExpectQuery(regexp.QuoteMeta(sqlFinancialSummary)).
			WillReturnRows(pgxmock.NewRows([]string{"calkowity_przychod", "sredni_przychod"}).AddRow(&total, &average))

		summary, err := repo.FinancialSummary(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.TotalRevenue != total || summary.AverageRevenue != average {
			t.Fatalf("unexpected summary: %+v", summary)
		}
	})

	t.Run("no payments", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewReportRepository(mock)
		mock.ExpectQuery(regexp.QuoteMeta(sqlFinancialSummary)).
			WillReturnRows(pgxmock.NewRows([]string{"calkowity_przychod", "sredni_przychod"}).AddRow((*float64)(nil), (*float64)(nil)))

		summary, err := repo.FinancialSummary(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary != (FinancialSummary{}) {
			t.Fatalf("expected zero summary, got %+v", summary)
		}
	})
}

func TestReportRepository_RevenueByClass(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReportRepository(mock)
	revenue := 4200.0

	mock.ExpectQuery(regexp.QuoteMeta(sqlRevenueByClass)).
		WillReturnRows(pgxmock.NewRows([]string{"nazwa", "liczba_wypozyczen", "przychod"}).
			AddRow("Premium", int64(4), &revenue).
			AddRow("Ekonomiczna", int64(0), (*float64)(nil)))

	rows, err := repo.RevenueByClass(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 || rows[0].Revenue != revenue || rows[1].Revenue != 0 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestReportRepository_ModelsByBrand(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReportRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(sqlModelsByBrand)).
		WithArgs(2).
		WillReturnRows(pgxmock.NewRows([]string{"id_model", "nazwa_modelu"}).AddRow(5, "Corolla"))

	options, err := repo.ModelsByBrand(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(options) != 1 || options[0] != (ModelOption{ID: 5, Name: "Corolla"}) {
		t.Fatalf("unexpected options: %+v", options)
	}
}

func TestReportRepository_ErrorsPropagate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReportRepository(mock)
	boom := errors.New("function wypozyczalnia.najpopularniejsze_modele(integer) does not exist")

	mock.ExpectQuery(regexp.QuoteMeta(sqlPopularModels)).WithArgs(1).WillReturnError(boom)

	if _, err := repo.PopularModels(context.Background(), 1); !errors.Is(err, boom) {
		t.Fatalf("expected the database error, got %v", err)
	}
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// Querier is the part of pgxpool.Pool the report routines need.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

const (
	sqlAvailableCars       = "SELECT * FROM wypozyczalnia.dostepne_auta_w_danym_terminie($1, $2)"
	sqlCountAvailableCars  = "SELECT * FROM wypozyczalnia.policz_auta_dostepne_w_danym_terminie($1, $2)"
	sqlCountAvailableModel = "SELECT * FROM wypozyczalnia.policz_modele_auta_dostepne_w_danym_terminie($1, $2)"
	sqlCountAvailableBrand = "SELECT * FROM wypozyczalnia.policz_marki_auta_dostepne_w_danym_terminie($1, $2)"
	sqlPopularModels       = "SELECT * FROM wypozyczalnia.najpopularniejsze_modele($1)"
	sqlFinancialSummary    = "SELECT * FROM wypozyczalnia.raport_finansowy"
	sqlRevenueByClass      = "SELECT * FROM wypozyczalnia.przychody_na_klasy_aut()"
	sqlModelsByBrand       = "SELECT * FROM wypozyczalnia.wyszukaj_modele($1)"
)

type AvailableCar struct {
	ID                 int
	ModelName          string
	BrandName          string
	RegistrationNumber string
	ClassName          string
}

type ModelCount struct {
	BrandName string
	ModelName string
	Count     int64
}

type BrandCount struct {
	BrandName string
	Count     int64
}

type PopularModel struct {
	ModelName string
	BrandName string
	Rentals   int64
}

// FinancialSummary is the single row of the financial report view. Both
// values are zero when no payments exist.
type FinancialSummary struct {
	TotalRevenue   float64
	AverageRevenue float64
}

type ClassRevenue struct {
	ClassName string
	Rentals   int64
	Revenue   float64
}

type ModelOption struct {
	ID   int    `json:"id_model"`
	Name string `json:"nazwa_model"`
}

// ReportRepository calls the stored routines and views of the schema and
// returns their rows in database order without further processing.
type ReportRepository interface {
	AvailableCars(ctx context.Context, start, end time.Time) ([]AvailableCar, error)
	CountAvailableCars(ctx context.Context, start, end time.Time) (int64, error)
	CountAvailableModels(ctx context.Context, start, end time.Time) ([]ModelCount, error)
	CountAvailableBrands(ctx context.Context, start, end time.Time) ([]BrandCount, error)
	PopularModels(ctx context.Context, threshold int) ([]PopularModel, error)
	FinancialSummary(ctx context.Context) (FinancialSummary, error)
	RevenueByClass(ctx context.Context) ([]ClassRevenue, error)
	ModelsByBrand(ctx context.Context, brandID int) ([]ModelOption, error)
}

type reportRepository struct {
	pool Querier
}

func NewReportRepository(pool Querier) ReportRepository {
	return &reportRepository{pool: pool}
}

func (r *reportRepository) AvailableCars(ctx context.Context, start, end time.Time) ([]AvailableCar, error) {
	rows, err := r.pool.Query(ctx, sqlAvailableCars, start, end)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.Rows) (AvailableCar, error) {
		var c AvailableCar
		err := row.Scan(&c.ID, &c.ModelName, &c.BrandName, &c.RegistrationNumber, &c.ClassName)
		return c, err
	})
}

func (r *reportRepository) CountAvailableCars(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, sqlCountAvailableCars, start, end).Scan(&count)
	return count, err
}

func (r *reportRepository) CountAvailableModels(ctx context.Context, start, end time.Time) ([]ModelCount, error) {
	rows, err := r.pool.Query(ctx, sqlCountAvailableModel, start, end)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.Rows) (ModelCount, error) {
		var c ModelCount
		err := row.Scan(&c.BrandName, &c.ModelName, &c.Count)
		return c, err
	})
}

func (r *reportRepository) CountAvailableBrands(ctx context.Context, start, end time.Time) ([]BrandCount, error) {
	rows, err := r.pool.Query(ctx, sqlCountAvailableBrand, start, end)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.Rows) (BrandCount, error) {
		var c BrandCount
		err := row.Scan(&c.BrandName, &c.Count)
		return c, err
	})
}

func (r *reportRepository) PopularModels(ctx context.Context, threshold int) ([]PopularModel, error) {
	rows, err := r.pool.Query(ctx, sqlPopularModels, threshold)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.Rows) (PopularModel, error) {
		var m PopularModel
		err := row.Scan(&m.ModelName, &m.BrandName, &m.Rentals)
		return m, err
	})
}

func (r *reportRepository) FinancialSummary(ctx context.Context) (FinancialSummary, error) {
	var total, average *float64
	if err := r.pool.QueryRow(ctx, sqlFinancialSummary).Scan(&total, &average); err != nil {
		return FinancialSummary{}, err
	}
	return FinancialSummary{TotalRevenue: deref(total), AverageRevenue: deref(average)}, nil
}

func (r *reportRepository) RevenueByClass(ctx context.Context) ([]ClassRevenue, error) {
	rows, err := r.pool.Query(ctx, sqlRevenueByClass)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.Rows) (ClassRevenue, error) {
		var c ClassRevenue
		var revenue *float64
		err := row.Scan(&c.ClassName, &c.Rentals, &revenue)
		c.Revenue = deref(revenue)
		return c, err
	})
}

func (r *reportRepository) ModelsByBrand(ctx context.Context, brandID int) ([]ModelOption, error) {
	rows, err := r.pool.Query(ctx, sqlModelsByBrand, brandID)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.Rows) (ModelOption, error) {
		var m ModelOption
		err := row.Scan(&m.ID, &m.Name)
		return m, err
	})
}

// collect scans every row and closes rows, returning the connection to the pool.
func collect[T any](rows pgx.Rows, scan func(pgx.Rows) (T, error)) ([]T, error) {
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

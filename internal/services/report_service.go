package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"car_rental/internal/repository"

	"github.com/xuri/excelize/v2"
)

// Availability is everything the availability search page shows for one
// date range.
type Availability struct {
	Start  time.Time
	End    time.Time
	Cars   []repository.AvailableCar
	Count  int64
	Models []repository.ModelCount
	Brands []repository.BrandCount
}

type FinancialReport struct {
	Summary repository.FinancialSummary
	Classes []repository.ClassRevenue
}

// ReportService exposes the database-side reports. Errors are returned as
// they come from the database.
type ReportService interface {
	Availability(ctx context.Context, start, end time.Time) (*Availability, error)
	PopularModels(ctx context.Context, threshold int) ([]repository.PopularModel, error)
	Financial(ctx context.Context) (*FinancialReport, error)
	ExportFinancial(ctx context.Context, w io.Writer) error
	ModelsByBrand(ctx context.Context, brandID int) ([]repository.ModelOption, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
}

func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) Availability(ctx context.Context, start, end time.Time) (*Availability, error) {
	cars, err := s.reportRepo.AvailableCars(ctx, start, end)
	if err != nil {
		return nil, err
	}
	count, err := s.reportRepo.CountAvailableCars(ctx, start, end)
	if err != nil {
		return nil, err
	}
	modelCounts, err := s.reportRepo.CountAvailableModels(ctx, start, end)
	if err != nil {
		return nil, err
	}
	brandCounts, err := s.reportRepo.CountAvailableBrands(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return &Availability{
		Start:  start,
		End:    end,
		Cars:   cars,
		Count:  count,
		Models: modelCounts,
		Brands: brandCounts,
	}, nil
}

func (s *reportService) PopularModels(ctx context.Context, threshold int) ([]repository.PopularModel, error) {
	return s.reportRepo.PopularModels(ctx, threshold)
}

func (s *reportService) Financial(ctx context.Context) (*FinancialReport, error) {
	summary, err := s.reportRepo.FinancialSummary(ctx)
	if err != nil {
		return nil, err
	}
	classes, err := s.reportRepo.RevenueByClass(ctx)
	if err != nil {
		return nil, err
	}
	return &FinancialReport{Summary: summary, Classes: classes}, nil
}

const (
	summarySheet = "Podsumowanie"
	classesSheet = "Klasy"
)

// ExportFinancial writes the financial report as an XLSX workbook with a
// summary sheet and a per-class sheet.
func (s *reportService) ExportFinancial(ctx context.Context, w io.Writer) error {
	report, err := s.Financial(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(summarySheet, "A1", &[]any{"Całkowity przychód", "Średni przychód"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetSheetRow(summarySheet, "A2", &[]any{report.Summary.TotalRevenue, report.Summary.AverageRevenue}); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	if _, err := f.NewSheet(classesSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.SetSheetRow(classesSheet, "A1", &[]any{"Klasa", "Liczba wypożyczeń", "Całkowity przychód"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, c := range report.Classes {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(classesSheet, cell, &[]any{c.ClassName, c.Rentals, c.Revenue}); err != nil {
			return fmt.Errorf("failed to write class row: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func (s *reportService) ModelsByBrand(ctx context.Context, brandID int) ([]repository.ModelOption, error) {
	return s.reportRepo.ModelsByBrand(ctx, brandID)
}

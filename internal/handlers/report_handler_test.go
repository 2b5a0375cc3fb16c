package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"car_rental/internal/repository"
	"car_rental/internal/services"

	"go.uber.org/mock/gomock"
)

func TestReportHandler_GetModels(t *testing.T) {
	t.Run("lists models of a brand", func(t *testing.T) {
		s := newTestServer(t)
		s.reports.EXPECT().ModelsByBrand(gomock.Any(), 3).Return([]repository.ModelOption{
			{ID: 1, Name: "Corolla"},
			{ID: 2, Name: "Yaris"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/get_models/3", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := s.do(req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(got) != 2 || got[0]["nazwa_model"] != "Corolla" || got[1]["id_model"] != float64(2) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
		if w.Header().Get("Access-Control-Allow-Origin") == "" {
			t.Fatal("expected CORS headers")
		}
	})

	t.Run("invalid brand id", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(httptest.NewRequest(http.MethodGet, "/get_models/toyota", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("database error", func(t *testing.T) {
		s := newTestServer(t)
		s.reports.EXPECT().ModelsByBrand(gomock.Any(), 3).Return(nil, errors.New("function does not exist"))

		w := s.do(httptest.NewRequest(http.MethodGet, "/get_models/3", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestReportHandler_SearchAvailableCars(t *testing.T) {
	t.Run("renders every section", func(t *testing.T) {
		s := newTestServer(t)
		s.reports.EXPECT().Availability(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, start, end time.Time) (*services.Availability, error) {
				if start.Format("2006-01-02") != "2025-06-01" || end.Format("2006-01-02") != "2025-06-05" {
					t.Errorf("unexpected range %s - %s", start, end)
				}
				return &services.Availability{
					Start:  start,
					End:    end,
					Cars:   []repository.AvailableCar{{ID: 1, ModelName: "Corolla", BrandName: "Toyota", RegistrationNumber: "ABC1234X", ClassName: "Ekonomiczna"}},
					Count:  1,
					Models: []repository.ModelCount{{BrandName: "Toyota", ModelName: "Corolla", Count: 1}},
					Brands: []repository.BrandCount{{BrandName: "Toyota", Count: 1}},
				}, nil
			})

		w := s.do(postForm("/available_cars/search", url.Values{
			"search_start_date": {"2025-06-01"},
			"search_end_date":   {"2025-06-05"},
		}))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "od 2025-06-01 do 2025-06-05: 1") {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(postForm("/available_cars/search", url.Values{
			"search_start_date": {"01.06.2025"},
			"search_end_date":   {"2025-06-05"},
		}))

		expectRedirect(t, w, "/available_cars")
	})
}

func TestReportHandler_SearchPopularCars(t *testing.T) {
	t.Run("threshold", func(t *testing.T) {
		s := newTestServer(t)
		s.reports.EXPECT().PopularModels(gomock.Any(), 2).Return([]repository.PopularModel{
			{ModelName: "Corolla", BrandName: "Toyota", Rentals: 4},
		}, nil)

		w := s.do(postForm("/popular_cars/search", url.Values{"rental_amount": {"2"}}))

		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "<td>Corolla</td><td>Toyota</td><td>4</td>") {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("non integer threshold", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(postForm("/popular_cars/search", url.Values{"rental_amount": {"dużo"}}))

		expectRedirect(t, w, "/popular_cars")
		if msg := s.popFlash(t, w); msg.Text != "Błąd: Podano nieprawidłowe dane. Oczekiwano liczby całkowitej." {
			t.Fatalf("unexpected flash %+v", msg)
		}
	})

	t.Run("database error", func(t *testing.T) {
		s := newTestServer(t)
		s.reports.EXPECT().PopularModels(gomock.Any(), 2).Return(nil, errors.New("timeout"))

		w := s.do(postForm("/popular_cars/search", url.Values{"rental_amount": {"2"}}))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestReportHandler_FinancialReport(t *testing.T) {
	s := newTestServer(t)
	s.reports.EXPECT().Financial(gomock.Any()).Return(&services.FinancialReport{
		Summary: repository.FinancialSummary{TotalRevenue: 1500, AverageRevenue: 375},
		Classes: []repository.ClassRevenue{{ClassName: "SUV", Rentals: 2, Revenue: 900}},
	}, nil)

	w := s.do(httptest.NewRequest(http.MethodGet, "/incomes/all", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	for _, want := range []string{"1500.00", "375.00", "<td>SUV</td><td>2</td><td>900.00</td>"} {
		if !strings.Contains(w.Body.String(), want) {
			t.Fatalf("expected %q in body", want)
		}
	}
}

func TestReportHandler_ExportFinancialReport(t *testing.T) {
	t.Run("attachment", func(t *testing.T) {
		s := newTestServer(t)
		s.reports.EXPECT().ExportFinancial(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w io.Writer) error {
			_, err := w.Write([]byte("PK"))
			return err
		})

		w := s.do(httptest.NewRequest(http.MethodGet, "/incomes/all/export", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Type"); got != xlsxContentType {
			t.Fatalf("unexpected content type %s", got)
		}
		if !strings.Contains(w.Header().Get("Content-Disposition"), "raport_finansowy.xlsx") {
			t.Fatal("expected attachment file name")
		}
		if w.Body.String() != "PK" {
			t.Fatalf("unexpected body %q", w.Body.String())
		}
	})

	t.Run("failure writes no partial file", func(t *testing.T) {
		s := newTestServer(t)
		s.reports.EXPECT().ExportFinancial(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w io.Writer) error {
			_, _ = w.Write([]byte("PK"))
			return errors.New("view missing")
		})

		w := s.do(httptest.NewRequest(http.MethodGet, "/incomes/all/export", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if w.Header().Get("Content-Type") == xlsxContentType {
			t.Fatal("error page must not be served as a spreadsheet")
		}
	})
}

package repository

import (
	"context"

	"car_rental/internal/models"

	"gorm.io/gorm"
)

// ModelRow is a model joined to its brand for display.
type ModelRow struct {
	ID        int    `gorm:"column:id_model"`
	BrandName string `gorm:"column:nazwa_marki"`
	ModelName string `gorm:"column:nazwa_modelu"`
}

// PriceListRow is a price list entry joined to its car class.
type PriceListRow struct {
	ID        int     `gorm:"column:id_cennik"`
	ClassName string  `gorm:"column:nazwa"`
	DailyRate float64 `gorm:"column:stawka_za_dzien"`
}

type FleetRepository interface {
	ListBrands(ctx context.Context) ([]models.Brand, error)
	ListModels(ctx context.Context) ([]ModelRow, error)
	ListClasses(ctx context.Context) ([]models.CarClass, error)
	ListCars(ctx context.Context) ([]models.CarDetails, error)
	ListPriceList(ctx context.Context) ([]PriceListRow, error)
	ModelOptions(ctx context.Context) ([]models.Model, error)
}

type fleetRepository struct {
	db *gorm.DB
}

func NewFleetRepository(db *gorm.DB) FleetRepository {
	return &fleetRepository{db: db}
}

func (r *fleetRepository) ListBrands(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	err := r.db.WithContext(ctx).Find(&brands).Error
	return brands, err
}

func (r *fleetRepository) ListModels(ctx context.Context) ([]ModelRow, error) {
	var rows []ModelRow
	err := r.db.WithContext(ctx).
		Table("wypozyczalnia.modele AS m").
		Select("m.id_model, b.nazwa_marki, m.nazwa_modelu").
		Joins("JOIN wypozyczalnia.marki AS b ON m.id_marka = b.id_marka").
		Scan(&rows).Error
	return rows, err
}

func (r *fleetRepository) ListClasses(ctx context.Context) ([]models.CarClass, error) {
	var classes []models.CarClass
	err := r.db.WithContext(ctx).Find(&classes).Error
	return classes, err
}

func (r *fleetRepository) ListCars(ctx context.Context) ([]models.CarDetails, error) {
	var cars []models.CarDetails
	err := r.db.WithContext(ctx).Find(&cars).Error
	return cars, err
}

func (r *fleetRepository) ListPriceList(ctx context.Context) ([]PriceListRow, error) {
	var rows []PriceListRow
	err := r.db.WithContext(ctx).
		Table("wypozyczalnia.cennik AS c").
		Select("c.id_cennik, k.nazwa, c.stawka_za_dzien").
		Joins("JOIN wypozyczalnia.klasa AS k ON c.id_klasa = k.id_klasa").
		Scan(&rows).Error
	return rows, err
}

func (r *fleetRepository) ModelOptions(ctx context.Context) ([]models.Model, error) {
	var list []models.Model
	err := r.db.WithContext(ctx).Find(&list).Error
	return list, err
}

package repository

import (
	"context"

	"car_rental/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderRow is an order joined to its client and model.
type OrderRow struct {
	ID        int                `gorm:"column:id_zamowienia"`
	Client    string             `gorm:"column:klient"`
	ModelName string             `gorm:"column:nazwa_modelu"`
	StartDate datatypes.Date     `gorm:"column:data_rozpoczecia"`
	EndDate   datatypes.Date     `gorm:"column:data_zakonczenia"`
	Status    models.OrderStatus `gorm:"column:status"`
}

type RentalRepository interface {
	ListRentals(ctx context.Context) ([]models.RentalDetails, error)
	ListOrders(ctx context.Context) ([]OrderRow, error)
	ListPayments(ctx context.Context) ([]models.Payment, error)
	RentalOptions(ctx context.Context) ([]models.Rental, error)
}

type rentalRepository struct {
	db *gorm.DB
}

func NewRentalRepository(db *gorm.DB) RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) ListRentals(ctx context.Context) ([]models.RentalDetails, error) {
	var rentals []models.RentalDetails
	err := r.db.WithContext(ctx).Find(&rentals).Error
	return rentals, err
}

func (r *rentalRepository) ListOrders(ctx context.Context) ([]OrderRow, error) {
	var rows []OrderRow
	err := r.db.WithContext(ctx).
		Table("wypozyczalnia.zamowienia AS z").
		Select("z.id_zamowienia, CONCAT(k.imie, ' ', k.nazwisko) AS klient, m.nazwa_modelu, z.data_rozpoczecia, z.data_zakonczenia, z.status").
		Joins("JOIN wypozyczalnia.klienci AS k ON z.id_klient = k.id_klient").
		Joins("JOIN wypozyczalnia.modele AS m ON z.id_model = m.id_model").
		Scan(&rows).Error
	return rows, err
}

func (r *rentalRepository) ListPayments(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.WithContext(ctx).Find(&payments).Error
	return payments, err
}

func (r *rentalRepository) RentalOptions(ctx context.Context) ([]models.Rental, error) {
	var rentals []models.Rental
	err := r.db.WithContext(ctx).Find(&rentals).Error
	return rentals, err
}

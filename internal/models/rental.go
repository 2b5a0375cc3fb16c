package models

import (
	"gorm.io/datatypes"
)

type Rental struct {
	ID         int            `json:"id_wypozyczenia" gorm:"column:id_wypozyczenia;primaryKey"`
	StartDate  datatypes.Date `json:"data_wypozyczenia" gorm:"column:data_wypozyczenia;not null"`
	EndDate    datatypes.Date `json:"data_oddania" gorm:"column:data_oddania;not null;check:check_data_oddania,data_oddania > data_wypozyczenia"`
	ClientID   int            `json:"id_klient" gorm:"column:id_klient;not null"`
	CarID      int            `json:"id_auto" gorm:"column:id_auto;not null"`
	EmployeeID int            `json:"id_pracownik" gorm:"column:id_pracownik;not null"`
}

func (Rental) TableName() string { return Schema + ".wypozyczenia" }

type OrderStatus string

const (
	OrderSucceeded OrderStatus = "udane"
	OrderFailed    OrderStatus = "nieudane"
	OrderPending   OrderStatus = "oczekujące"
)

// Order status is never written by the application: the column default and
// the availability trigger decide it on insert.
type Order struct {
	ID        int            `json:"id_zamowienia" gorm:"column:id_zamowienia;primaryKey"`
	ClientID  int            `json:"id_klient" gorm:"column:id_klient;not null"`
	ModelID   int            `json:"id_model" gorm:"column:id_model;not null"`
	StartDate datatypes.Date `json:"data_rozpoczecia" gorm:"column:data_rozpoczecia;not null"`
	EndDate   datatypes.Date `json:"data_zakonczenia" gorm:"column:data_zakonczenia;not null;check:check_data_zakonczenia,data_zakonczenia > data_rozpoczecia"`
	Status    OrderStatus    `json:"status" gorm:"column:status;type:wypozyczalnia.status_enum;<-:false"`
}

func (Order) TableName() string { return Schema + ".zamowienia" }

type Payment struct {
	ID       int     `json:"id_platnosc" gorm:"column:id_platnosc;primaryKey"`
	RentalID int     `json:"id_wypozyczenia" gorm:"column:id_wypozyczenia;not null"`
	Amount   float64 `json:"kwota" gorm:"column:kwota;type:numeric(10,2);not null"`
}

func (Payment) TableName() string { return Schema + ".platnosci" }

// RentalDetails is the read-only szczegoly_wypozyczenia view.
type RentalDetails struct {
	ID                 int            `json:"id_wypozyczenia" gorm:"column:id_wypozyczenia;primaryKey"`
	ClientID           int            `json:"id_klient" gorm:"column:id_klient"`
	Client             string         `json:"klient" gorm:"column:klient"`
	CarID              int            `json:"id_auto" gorm:"column:id_auto"`
	BrandName          string         `json:"nazwa_marki" gorm:"column:nazwa_marki"`
	ModelName          string         `json:"nazwa_modelu" gorm:"column:nazwa_modelu"`
	RegistrationNumber string         `json:"numer_rejestracyjny" gorm:"column:numer_rejestracyjny"`
	StartDate          datatypes.Date `json:"data_wypozyczenia" gorm:"column:data_wypozyczenia"`
	EndDate            datatypes.Date `json:"data_oddania" gorm:"column:data_oddania"`
	EmployeeID         int            `json:"id_pracownik" gorm:"column:id_pracownik"`
	Employee           string         `json:"pracownik" gorm:"column:pracownik"`
}

func (RentalDetails) TableName() string { return Schema + ".szczegoly_wypozyczenia" }

package models

// Client phone numbers must be nine digits; the database enforces the format.
type Client struct {
	ID        int    `json:"id_klient" gorm:"column:id_klient;primaryKey"`
	FirstName string `json:"imie" gorm:"column:imie;type:varchar(64);not null"`
	LastName  string `json:"nazwisko" gorm:"column:nazwisko;type:varchar(64);not null"`
	Phone     string `json:"telefon" gorm:"column:telefon;type:varchar(20);not null;unique"`
}

func (Client) TableName() string { return Schema + ".klienci" }

type Job struct {
	ID      int     `json:"id_rola" gorm:"column:id_rola;primaryKey"`
	Name    string  `json:"nazwa" gorm:"column:nazwa;type:varchar(64);not null"`
	Salary  float64 `json:"wyplata" gorm:"column:wyplata;type:numeric(10,2);not null;check:check_wyplata_positive,wyplata > 0"`
	CanRent bool    `json:"czy_moze_wynajmowac" gorm:"column:czy_moze_wynajmowac;not null"`
}

func (Job) TableName() string { return Schema + ".role" }

type Employee struct {
	ID        int    `json:"id_pracownik" gorm:"column:id_pracownik;primaryKey"`
	FirstName string `json:"imie" gorm:"column:imie;type:varchar(64);not null"`
	LastName  string `json:"nazwisko" gorm:"column:nazwisko;type:varchar(64);not null"`
	Phone     string `json:"telefon" gorm:"column:telefon;type:varchar(20);not null;unique"`
	JobID     int    `json:"id_rola" gorm:"column:id_rola;not null"`
}

func (Employee) TableName() string { return Schema + ".pracownicy" }

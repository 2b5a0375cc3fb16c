package models

type Brand struct {
	ID   int    `json:"id_marka" gorm:"column:id_marka;primaryKey"`
	Name string `json:"nazwa_marki" gorm:"column:nazwa_marki;type:varchar(64);not null;unique"`
}

func (Brand) TableName() string { return Schema + ".marki" }

type Model struct {
	ID      int    `json:"id_model" gorm:"column:id_model;primaryKey"`
	Name    string `json:"nazwa_modelu" gorm:"column:nazwa_modelu;type:varchar(64);not null"`
	BrandID int    `json:"id_marka" gorm:"column:id_marka;not null"`
	ClassID int    `json:"id_klasa" gorm:"column:id_klasa;not null"`
}

func (Model) TableName() string { return Schema + ".modele" }

type CarClass struct {
	ID          int     `json:"id_klasa" gorm:"column:id_klasa;primaryKey"`
	Name        string  `json:"nazwa" gorm:"column:nazwa;type:varchar(32);not null;unique"`
	Description *string `json:"opis" gorm:"column:opis;type:text"`
}

func (CarClass) TableName() string { return Schema + ".klasa" }

// Car registration numbers are checked against the registration domain by the
// database; a rejected value surfaces as a domain format violation.
type Car struct {
	ID                 int    `json:"id_auto" gorm:"column:id_auto;primaryKey"`
	ModelID            int    `json:"id_model" gorm:"column:id_model;not null"`
	RegistrationNumber string `json:"numer_rejestracyjny" gorm:"column:numer_rejestracyjny;type:varchar(50);not null;unique"`
	Year               int    `json:"rok" gorm:"column:rok;not null"`
}

func (Car) TableName() string { return Schema + ".auta" }

type PriceList struct {
	ID        int     `json:"id_cennik" gorm:"column:id_cennik;primaryKey"`
	ClassID   int     `json:"id_klasa" gorm:"column:id_klasa;not null"`
	DailyRate float64 `json:"stawka_za_dzien" gorm:"column:stawka_za_dzien;type:numeric(10,2);not null"`
}

func (PriceList) TableName() string { return Schema + ".cennik" }

// CarDetails is the read-only szczegoly_aut view.
type CarDetails struct {
	ID                 int    `json:"id_auto" gorm:"column:id_auto;primaryKey"`
	ModelName          string `json:"nazwa_modelu" gorm:"column:nazwa_modelu"`
	BrandName          string `json:"nazwa_marki" gorm:"column:nazwa_marki"`
	RegistrationNumber string `json:"numer_rejestracyjny" gorm:"column:numer_rejestracyjny"`
	ClassID            int    `json:"id_klasa" gorm:"column:id_klasa"`
	ClassName          string `json:"nazwa_klasy" gorm:"column:nazwa_klasy"`
}

func (CarDetails) TableName() string { return Schema + ".szczegoly_aut" }

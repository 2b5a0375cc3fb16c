package repository

import (
	"context"

	"car_rental/internal/models"

	"gorm.io/gorm"
)

// EmployeeRow is an employee joined to the name of their job.
type EmployeeRow struct {
	ID        int    `gorm:"column:id_pracownik"`
	FirstName string `gorm:"column:imie"`
	LastName  string `gorm:"column:nazwisko"`
	Phone     string `gorm:"column:telefon"`
	JobName   string `gorm:"column:stanowisko"`
}

type PeopleRepository interface {
	ListClients(ctx context.Context) ([]models.Client, error)
	ListJobs(ctx context.Context) ([]models.Job, error)
	ListEmployees(ctx context.Context) ([]EmployeeRow, error)
	EmployeeOptions(ctx context.Context) ([]models.Employee, error)
}

type peopleRepository struct {
	db *gorm.DB
}

func NewPeopleRepository(db *gorm.DB) PeopleRepository {
	return &peopleRepository{db: db}
}

func (r *peopleRepository) ListClients(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	err := r.db.WithContext(ctx).Find(&clients).Error
	return clients, err
}

func (r *peopleRepository) ListJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).Find(&jobs).Error
	return jobs, err
}

func (r *peopleRepository) ListEmployees(ctx context.Context) ([]EmployeeRow, error) {
	var rows []EmployeeRow
	err := r.db.WithContext(ctx).
		Table("wypozyczalnia.pracownicy AS p").
		Select("p.id_pracownik, p.imie, p.nazwisko, p.telefon, r.nazwa AS stanowisko").
		Joins("JOIN wypozyczalnia.role AS r ON p.id_rola = r.id_rola").
		Scan(&rows).Error
	return rows, err
}

func (r *peopleRepository) EmployeeOptions(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.WithContext(ctx).Find(&employees).Error
	return employees, err
}

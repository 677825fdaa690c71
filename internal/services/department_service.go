package services

import (
	"strings"

	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/models"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/store"
)

// DepartmentService provides the admin CRUD over departments. Deleting a
// department does not check for employees still referencing it; their rows
// degrade to an "Unknown" department name.
type DepartmentService interface {
	ListDepartments() []models.Department
	CreateDepartment(name, description string) (models.Department, error)
	UpdateDepartment(id int64, name, description string) (models.Department, error)
	DeleteDepartment(id int64, confirmed bool) error
}

type departmentService struct {
	store *store.Store
}

// NewDepartmentService creates a new instance of DepartmentService
func NewDepartmentService(st *store.Store) DepartmentService {
	return &departmentService{store: st}
}

func (s *departmentService) ListDepartments() []models.Department {
	var departments []models.Department
	s.store.View(func(doc *models.Document) {
		departments = append([]models.Department{}, doc.Departments...)
	})
	return departments
}

func (s *departmentService) CreateDepartment(name, description string) (models.Department, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" {
		return models.Department{}, models.NewDomainError(models.ErrValidationFailed, "Name and description are required.")
	}

	department := models.Department{
		ID:          store.NextID(),
		Name:        name,
		Description: description,
	}
	err := s.store.Update(func(doc *models.Document) error {
		doc.Departments = append(doc.Departments, department)
		return nil
	})
	if err != nil {
		return models.Department{}, err
	}
	return department, nil
}

func (s *departmentService) UpdateDepartment(id int64, name, description string) (models.Department, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" {
		return models.Department{}, models.NewDomainError(models.ErrValidationFailed, "Name and description are required.")
	}

	var updated models.Department
	err := s.store.Update(func(doc *models.Document) error {
		department := doc.FindDepartmentByID(id)
		if department == nil {
			return models.NewDomainError(models.ErrNotFound, "Department not found.")
		}
		department.Name = name
		department.Description = description
		updated = *department
		return nil
	})
	if err != nil {
		return models.Department{}, err
	}
	return updated, nil
}

func (s *departmentService) DeleteDepartment(id int64, confirmed bool) error {
	if !confirmed {
		return models.NewDomainError(models.ErrConfirmationRequired, "Deleting a department requires confirmation.")
	}
	return s.store.Update(func(doc *models.Document) error {
		for i := range doc.Departments {
			if doc.Departments[i].ID == id {
				doc.Departments = append(doc.Departments[:i], doc.Departments[i+1:]...)
				return nil
			}
		}
		return models.NewDomainError(models.ErrNotFound, "Department not found.")
	})
}

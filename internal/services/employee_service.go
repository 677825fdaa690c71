package services

import (
	"strings"

	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/models"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/store"
)

// EmployeeInput carries the employee creation form fields.
type EmployeeInput struct {
	EmployeeID string `json:"employeeId"`
	UserEmail  string `json:"userEmail"`
	Position   string `json:"position"`
	DeptID     int64  `json:"deptId"`
	HireDate   string `json:"hireDate"`
}

// EmployeeRecord is an employee row with its department name resolved for
// display. A dangling department reference resolves to "Unknown".
type EmployeeRecord struct {
	models.Employee
	DepartmentName string `json:"departmentName"`
}

// EmployeeService provides the admin operations over employee records.
// There is no update operation: records are created and deleted whole.
type EmployeeService interface {
	ListEmployees() []EmployeeRecord
	CreateEmployee(in EmployeeInput) (models.Employee, error)
	DeleteEmployee(id int64, confirmed bool) error
}

type employeeService struct {
	store *store.Store
}

// NewEmployeeService creates a new instance of EmployeeService
func NewEmployeeService(st *store.Store) EmployeeService {
	return &employeeService{store: st}
}

func (s *employeeService) ListEmployees() []EmployeeRecord {
	var records []EmployeeRecord
	s.store.View(func(doc *models.Document) {
		records = make([]EmployeeRecord, 0, len(doc.Employees))
		for _, emp := range doc.Employees {
			name := "Unknown"
			if dept := doc.FindDepartmentByID(emp.DeptID); dept != nil {
				name = dept.Name
			}
			records = append(records, EmployeeRecord{Employee: emp, DepartmentName: name})
		}
	})
	return records
}

func (s *employeeService) CreateEmployee(in EmployeeInput) (models.Employee, error) {
	in.EmployeeID = strings.TrimSpace(in.EmployeeID)
	in.UserEmail = strings.TrimSpace(in.UserEmail)
	in.Position = strings.TrimSpace(in.Position)

	if in.EmployeeID == "" || in.UserEmail == "" || in.Position == "" || in.HireDate == "" {
		return models.Employee{}, models.NewDomainError(models.ErrValidationFailed, "All fields are required.")
	}

	employee := models.Employee{
		ID:         store.NextID(),
		EmployeeID: in.EmployeeID,
		UserEmail:  in.UserEmail,
		Position:   in.Position,
		DeptID:     in.DeptID,
		HireDate:   in.HireDate,
	}

	err := s.store.Update(func(doc *models.Document) error {
		if doc.FindAccountByEmail(in.UserEmail) == nil {
			return models.NewDomainError(models.ErrUnknownAccount, "No account found with that email!")
		}
		doc.Employees = append(doc.Employees, employee)
		return nil
	})
	if err != nil {
		return models.Employee{}, err
	}
	return employee, nil
}

func (s *employeeService) DeleteEmployee(id int64, confirmed bool) error {
	if !confirmed {
		return models.NewDomainError(models.ErrConfirmationRequired, "Deleting an employee record requires confirmation.")
	}
	return s.store.Update(func(doc *models.Document) error {
		for i := range doc.Employees {
			if doc.Employees[i].ID == id {
				doc.Employees = append(doc.Employees[:i], doc.Employees[i+1:]...)
				return nil
			}
		}
		return models.NewDomainError(models.ErrNotFound, "Employee record not found.")
	})
}

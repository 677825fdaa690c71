package models

// Employee links an account (by email) to a department and position.
// EmployeeID is a free-text external code, distinct from the record id.
type Employee struct {
	ID         int64  `json:"id"`
	EmployeeID string `json:"employeeId"`
	UserEmail  string `json:"userEmail"`
	Position   string `json:"position"`
	DeptID     int64  `json:"deptId"`
	HireDate   string `json:"hireDate"`
}

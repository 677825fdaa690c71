package models

// Request statuses. Requests are created Pending and there is no
// approve/reject path anywhere in the system.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// RequestItem is one line of a purchase request.
type RequestItem struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// Request is a purchase request owned by the submitting account
// (EmployeeEmail). Lists are always filtered to the owner.
type Request struct {
	ID            int64         `json:"id"`
	Type          string        `json:"type"`
	Items         []RequestItem `json:"items"`
	Status        string        `json:"status"`
	Date          string        `json:"date"`
	EmployeeEmail string        `json:"employeeEmail"`
}

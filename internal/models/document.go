package models

// Document is the whole persisted state: four ordered collections,
// serialized wholesale to the durable store after every mutation.
type Document struct {
	Accounts    []Account    `json:"accounts"`
	Departments []Department `json:"departments"`
	Employees   []Employee   `json:"employees"`
	Requests    []Request    `json:"requests"`
}

// FindAccountByEmail returns the first account with an exactly equal email,
// or nil. Email matching is case-sensitive throughout.
func (d *Document) FindAccountByEmail(email string) *Account {
	for i := range d.Accounts {
		if d.Accounts[i].Email == email {
			return &d.Accounts[i]
		}
	}
	return nil
}

// FindAccountByID returns the account with the given id, or nil.
func (d *Document) FindAccountByID(id int64) *Account {
	for i := range d.Accounts {
		if d.Accounts[i].ID == id {
			return &d.Accounts[i]
		}
	}
	return nil
}

// FindDepartmentByID returns the department with the given id, or nil.
func (d *Document) FindDepartmentByID(id int64) *Department {
	for i := range d.Departments {
		if d.Departments[i].ID == id {
			return &d.Departments[i]
		}
	}
	return nil
}

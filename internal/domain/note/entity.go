package note

import "time"

// Note is a free-text remark attached to an employee.
type Note struct {
	ID         string
	EmployeeID string
	Content    string
	CreatedAt  time.Time
}

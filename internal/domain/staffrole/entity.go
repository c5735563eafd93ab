package staffrole

import "time"

// Role is a staff role badge (e.g. "Bar", "Kitchen") assignable to
// employees and attachable to shifts.
type Role struct {
	ID        string
	Name      string
	Color     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

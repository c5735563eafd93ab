package shift

import "time"

// Shift is one scheduled work interval for one employee on one calendar
// day. Date is the owning calendar day's local midnight; Start and End are
// the worked interval, all in epoch-seconds. A zero Start or End means the
// time was never set. End <= Start with both set is a shift crossing
// midnight and is accepted as-is by the display path.
type Shift struct {
	ID         string
	EmployeeID string
	RoleID     *string
	Date       int64
	Start      int64
	End        int64
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined for responses.
	RoleName *string
}

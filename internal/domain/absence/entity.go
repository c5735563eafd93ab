package absence

import "time"

type Kind string

const (
	KindVacation Kind = "vacation"
	KindSick     Kind = "sick"
)

var KindValues = []string{string(KindVacation), string(KindSick)}

// Absence is one vacation or sick-leave window for one employee, a closed
// date range in epoch-seconds. At rest the bounds are BIGINT
// epoch-milliseconds; the postgresql repository converts on scan and
// insert so everything above it speaks seconds.
type Absence struct {
	ID         string
	EmployeeID string
	Kind       Kind
	Start      int64
	End        int64
	CreatedAt  time.Time
}

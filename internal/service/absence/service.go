package absence

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffhub/staffhub-backend-go/internal/domain/absence"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/timekit"
	"github.com/staffhub/staffhub-backend-go/internal/repository/postgresql"
)

type AbsenceServiceImpl struct {
	db *database.DB
	absence.AbsenceRepository
	employee.EmployeeRepository
}

func NewAbsenceService(db *database.DB, absenceRepository absence.AbsenceRepository, employeeRepository employee.EmployeeRepository) absence.AbsenceService {
	return &AbsenceServiceImpl{
		db:                 db,
		AbsenceRepository:  absenceRepository,
		EmployeeRepository: employeeRepository,
	}
}

func toAbsenceResponse(a absence.Absence) (absence.AbsenceResponse, error) {
	days, err := (timekit.Window{Start: a.Start, End: a.End}).Days()
	if err != nil {
		return absence.AbsenceResponse{}, err
	}
	return absence.AbsenceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Kind:       string(a.Kind),
		Start:      a.Start,
		End:        a.End,
		StartDate:  timekit.FormatDate(a.Start),
		EndDate:    timekit.FormatDate(a.End),
		Days:       days,
	}, nil
}

// Create implements absence.AbsenceService. Vacation windows decrement the
// employee's vacation-day balance inside the same transaction as the
// window insert, so the balance and the stored windows never drift apart.
func (s *AbsenceServiceImpl) Create(ctx context.Context, employeeID string, req absence.CreateAbsenceRequest) (absence.AbsenceResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.AbsenceResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return absence.AbsenceResponse{}, err
	}

	days, err := (timekit.Window{Start: req.Start, End: req.End}).Days()
	if err != nil {
		return absence.AbsenceResponse{}, err
	}

	var resp absence.AbsenceResponse
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		created, err := s.AbsenceRepository.Create(txCtx, absence.Absence{
			EmployeeID: employeeID,
			Kind:       absence.Kind(req.Kind),
			Start:      req.Start,
			End:        req.End,
		})
		if err != nil {
			return err
		}

		resp, err = toAbsenceResponse(created)
		if err != nil {
			return err
		}

		if created.Kind == absence.KindVacation {
			balance, err := s.EmployeeRepository.AdjustVacationBalance(txCtx, employeeID, -days)
			if err != nil {
				return fmt.Errorf("failed to adjust vacation balance: %w", err)
			}
			if balance < 0 {
				// Roll the whole window back rather than store a debt.
				return absence.ErrInsufficientBalance
			}
			resp.Balance = &balance
		}
		return nil
	})
	if err != nil {
		return absence.AbsenceResponse{}, err
	}

	return resp, nil
}

// Delete implements absence.AbsenceService. Deleting a vacation window
// restores the days it consumed, again in one transaction.
func (s *AbsenceServiceImpl) Delete(ctx context.Context, id string) error {
	a, err := s.AbsenceRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	days, err := (timekit.Window{Start: a.Start, End: a.End}).Days()
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		if err := s.AbsenceRepository.Delete(txCtx, id); err != nil {
			return err
		}
		if a.Kind == absence.KindVacation {
			if _, err := s.EmployeeRepository.AdjustVacationBalance(txCtx, a.EmployeeID, days); err != nil {
				return fmt.Errorf("failed to restore vacation balance: %w", err)
			}
		}
		return nil
	})
}

// ListByEmployee implements absence.AbsenceService.
func (s *AbsenceServiceImpl) ListByEmployee(ctx context.Context, employeeID string, kind *absence.Kind) ([]absence.AbsenceResponse, error) {
	absences, err := s.AbsenceRepository.ListByEmployee(ctx, employeeID, kind)
	if err != nil {
		return nil, err
	}

	resp := make([]absence.AbsenceResponse, 0, len(absences))
	for _, a := range absences {
		r, err := toAbsenceResponse(a)
		if err != nil {
			return nil, err
		}
		resp = append(resp, r)
	}
	return resp, nil
}

// Status implements absence.AbsenceService.
func (s *AbsenceServiceImpl) Status(ctx context.Context, employeeID string, now time.Time) (absence.StatusResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return absence.StatusResponse{}, err
	}

	absences, err := s.AbsenceRepository.ListByEmployee(ctx, employeeID, nil)
	if err != nil {
		return absence.StatusResponse{}, err
	}

	// Several absences can share the exact same bounds (a vacation and a
	// sick leave over the same days), so each window value maps to a queue
	// of absences consumed in classification order.
	windows := make([]timekit.Window, len(absences))
	byWindow := make(map[timekit.Window][]absence.Absence, len(absences))
	for i, a := range absences {
		w := timekit.Window{Start: a.Start, End: a.End}
		windows[i] = w
		byWindow[w] = append(byWindow[w], a)
	}
	take := func(w timekit.Window) absence.Absence {
		queue := byWindow[w]
		a := queue[0]
		byWindow[w] = queue[1:]
		return a
	}

	nowUnix := now.Unix()
	classified, err := timekit.Classify(windows, nowUnix)
	if err != nil {
		return absence.StatusResponse{}, err
	}

	resp := absence.StatusResponse{
		Past:     make([]absence.AbsenceResponse, 0, len(classified.Past)),
		Upcoming: make([]absence.AbsenceResponse, 0, len(classified.Future)),
	}
	// The current window is the first one containing now, so it consumes
	// its queue slot before any equal-bounded past/future sibling.
	if classified.Current != nil {
		r, err := toAbsenceResponse(take(*classified.Current))
		if err != nil {
			return absence.StatusResponse{}, err
		}
		resp.Current = &r
		remaining := int((classified.Current.End - nowUnix) / (24 * 60 * 60))
		resp.EndsInDays = &remaining
	}
	for _, w := range classified.Past {
		r, err := toAbsenceResponse(take(w))
		if err != nil {
			return absence.StatusResponse{}, err
		}
		resp.Past = append(resp.Past, r)
	}
	for _, w := range classified.Future {
		r, err := toAbsenceResponse(take(w))
		if err != nil {
			return absence.StatusResponse{}, err
		}
		resp.Upcoming = append(resp.Upcoming, r)
	}
	return resp, nil
}

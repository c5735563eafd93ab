package staffrole

import "context"

type RoleRepository interface {
	Create(ctx context.Context, role Role) (Role, error)
	GetByID(ctx context.Context, id string) (Role, error)
	List(ctx context.Context) ([]Role, error)
	Update(ctx context.Context, role Role) error
	Delete(ctx context.Context, id string) error

	// Employee assignment (employee_roles join table).
	AssignToEmployee(ctx context.Context, roleID, employeeID string) error
	RemoveFromEmployee(ctx context.Context, roleID, employeeID string) error
	ListByEmployee(ctx context.Context, employeeID string) ([]Role, error)
}

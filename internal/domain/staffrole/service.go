package staffrole

import "context"

type RoleService interface {
	Create(ctx context.Context, req CreateRoleRequest) (RoleResponse, error)
	GetByID(ctx context.Context, id string) (RoleResponse, error)
	List(ctx context.Context) ([]RoleResponse, error)
	Update(ctx context.Context, id string, req UpdateRoleRequest) (RoleResponse, error)
	Delete(ctx context.Context, id string) error

	Assign(ctx context.Context, roleID, employeeID string) error
	Remove(ctx context.Context, roleID, employeeID string) error
	ListByEmployee(ctx context.Context, employeeID string) ([]RoleResponse, error)
}

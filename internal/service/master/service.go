// Package master implements the master-data services: staff roles and
// shift models, the reference records the scheduling screens draw from.
package master

import (
	"context"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/staffrole"
)

type RoleServiceImpl struct {
	staffrole.RoleRepository
	employee.EmployeeRepository
}

func NewRoleService(roleRepository staffrole.RoleRepository, employeeRepository employee.EmployeeRepository) staffrole.RoleService {
	return &RoleServiceImpl{
		RoleRepository:     roleRepository,
		EmployeeRepository: employeeRepository,
	}
}

func toRoleResponse(r staffrole.Role) staffrole.RoleResponse {
	return staffrole.RoleResponse{
		ID:        r.ID,
		Name:      r.Name,
		Color:     r.Color,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
	}
}

// Create implements staffrole.RoleService.
func (s *RoleServiceImpl) Create(ctx context.Context, req staffrole.CreateRoleRequest) (staffrole.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return staffrole.RoleResponse{}, err
	}

	created, err := s.RoleRepository.Create(ctx, staffrole.Role{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		return staffrole.RoleResponse{}, err
	}
	return toRoleResponse(created), nil
}

// GetByID implements staffrole.RoleService.
func (s *RoleServiceImpl) GetByID(ctx context.Context, id string) (staffrole.RoleResponse, error) {
	role, err := s.RoleRepository.GetByID(ctx, id)
	if err != nil {
		return staffrole.RoleResponse{}, err
	}
	return toRoleResponse(role), nil
}

// List implements staffrole.RoleService.
func (s *RoleServiceImpl) List(ctx context.Context) ([]staffrole.RoleResponse, error) {
	roles, err := s.RoleRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]staffrole.RoleResponse, 0, len(roles))
	for _, r := range roles {
		resp = append(resp, toRoleResponse(r))
	}
	return resp, nil
}

// Update implements staffrole.RoleService.
func (s *RoleServiceImpl) Update(ctx context.Context, id string, req staffrole.UpdateRoleRequest) (staffrole.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return staffrole.RoleResponse{}, err
	}

	role, err := s.RoleRepository.GetByID(ctx, id)
	if err != nil {
		return staffrole.RoleResponse{}, err
	}
	if req.Name != nil {
		role.Name = *req.Name
	}
	if req.Color != nil {
		role.Color = req.Color
	}

	if err := s.RoleRepository.Update(ctx, role); err != nil {
		return staffrole.RoleResponse{}, err
	}
	return s.GetByID(ctx, id)
}

// Delete implements staffrole.RoleService.
func (s *RoleServiceImpl) Delete(ctx context.Context, id string) error {
	return s.RoleRepository.Delete(ctx, id)
}

// Assign implements staffrole.RoleService.
func (s *RoleServiceImpl) Assign(ctx context.Context, roleID, employeeID string) error {
	if _, err := s.RoleRepository.GetByID(ctx, roleID); err != nil {
		return err
	}
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return err
	}
	return s.RoleRepository.AssignToEmployee(ctx, roleID, employeeID)
}

// Remove implements staffrole.RoleService.
func (s *RoleServiceImpl) Remove(ctx context.Context, roleID, employeeID string) error {
	return s.RoleRepository.RemoveFromEmployee(ctx, roleID, employeeID)
}

// ListByEmployee implements staffrole.RoleService.
func (s *RoleServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]staffrole.RoleResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	roles, err := s.RoleRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	resp := make([]staffrole.RoleResponse, 0, len(roles))
	for _, r := range roles {
		resp = append(resp, toRoleResponse(r))
	}
	return resp, nil
}

package staffrole

import "github.com/staffhub/staffhub-backend-go/internal/pkg/validator"

type CreateRoleRequest struct {
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

func (r *CreateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.Color != nil && !validator.IsValidColor(*r.Color) {
		errs = append(errs, validator.ValidationError{
			Field:   "color",
			Message: "color must be a #RRGGBB hex value",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRoleRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

func (r *UpdateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Color != nil && !validator.IsValidColor(*r.Color) {
		errs = append(errs, validator.ValidationError{
			Field:   "color",
			Message: "color must be a #RRGGBB hex value",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RoleResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Color     *string `json:"color,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

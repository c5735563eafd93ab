package staffrole

import "errors"

var (
	ErrRoleNotFound   = errors.New("staff role not found")
	ErrRoleNameExists = errors.New("staff role name already exists")
)

package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/staffhub-backend-go/internal/domain/absence"
	"github.com/staffhub/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/roster"
	"github.com/staffhub/staffhub-backend-go/internal/domain/shift"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/timekit"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

func TestHandleErrorStatusCodes(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{auth.ErrInvalidCredentials, 401},
		{auth.ErrTokenExpired, 401},
		{user.ErrAdminPrivilegeRequired, 403},
		{user.ErrEmailExists, 409},
		{employee.ErrEmployeeNotFound, 404},
		{shift.ErrShiftExists, 409},
		{absence.ErrInsufficientBalance, 400},
		{roster.ErrMonthNotSeeded, 404},
		{timekit.ErrInvalidRange, 400},
		{errors.New("pool exhausted"), 500},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		HandleError(rec, tc.err)
		assert.Equal(t, tc.code, rec.Code, "error %v", tc.err)
	}
}

func TestHandleErrorWrappedSentinel(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, fmt.Errorf("failed to load shift: %w", shift.ErrShiftNotFound))

	assert.Equal(t, 404, rec.Code)
}

func TestHandleErrorValidation(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "name", Message: "name is required"},
	}

	rec := httptest.NewRecorder()
	HandleError(rec, errs)

	require.Equal(t, 422, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
}

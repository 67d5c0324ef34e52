package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erasmusedu/erasmus-portal/internal/app/models"
	"github.com/erasmusedu/erasmus-portal/internal/app/models/dto"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/apperrors"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/validation"
	"github.com/erasmusedu/erasmus-portal/internal/registry"
	"github.com/erasmusedu/erasmus-portal/internal/seed"
)

func newTestUserService(t *testing.T) (UserService, *registry.Registry) {
	t.Helper()
	reg := registry.New()
	seed.Apply(reg)
	return NewUserService(reg), reg
}

func TestCreateUserAppendsWithFreshID(t *testing.T) {
	svc, _ := newTestUserService(t)
	before := len(svc.ListUsers())

	user, err := svc.CreateUser(dto.UserRequest{
		Name:  "Profª Julia",
		Email: "julia@erasmus.com",
		Role:  models.RoleTeacher,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)

	users := svc.ListUsers()
	require.Len(t, users, before+1)
	assert.Equal(t, user.ID, users[len(users)-1].ID)
}

func TestListStaffExcludesParents(t *testing.T) {
	svc, _ := newTestUserService(t)

	staff := svc.ListStaff()
	require.Len(t, staff, len(svc.ListUsers())-1, "the seed holds exactly one parent account")
	for _, u := range staff {
		assert.NotEqual(t, models.RoleParent, u.Role)
	}
}

func TestCreateUserReportsAllMissingFields(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.CreateUser(dto.UserRequest{Email: "not-an-email", Role: "JANITOR"})
	require.Error(t, err)

	var fieldsErr *validation.FieldsError
	require.True(t, errors.As(err, &fieldsErr))
	assert.ElementsMatch(t, []string{"name", "email", "role"}, fieldsErr.Fields)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateUserPreservesOrder(t *testing.T) {
	svc, _ := newTestUserService(t)

	updated, err := svc.UpdateUser("teacher-1", dto.UserRequest{
		Name:  "Prof. Ricardo Mendes",
		Email: "ricardo@erasmus.com",
		Role:  models.RoleTeacher,
	})
	require.NoError(t, err)
	assert.Equal(t, "teacher-1", updated.ID)

	users := svc.ListUsers()
	assert.Equal(t, "teacher-1", users[2].ID, "update must not move the record")
	assert.Equal(t, "Prof. Ricardo Mendes", users[2].Name)
}

func TestDeleteUserLeavesReferencesDangling(t *testing.T) {
	svc, reg := newTestUserService(t)

	require.NoError(t, svc.DeleteUser("teacher-1"))

	_, err := svc.GetUser("teacher-1")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	// The class keeps its teacherId even though the account is gone.
	classes := reg.Classes()
	require.NotEmpty(t, classes)
	assert.Equal(t, "teacher-1", classes[0].TeacherID)
}

func TestDeleteUnknownUser(t *testing.T) {
	svc, _ := newTestUserService(t)
	assert.ErrorIs(t, svc.DeleteUser("missing"), apperrors.ErrUserNotFound)
}

// A created account can log in immediately: create-then-login end to end.
func TestCreatedUserCanResolveByEmail(t *testing.T) {
	svc, reg := newTestUserService(t)

	created, err := svc.CreateUser(dto.UserRequest{
		Name:  "Novo Colaborador",
		Email: "novo@erasmus.com",
		Role:  models.RoleStaff,
	})
	require.NoError(t, err)

	var found *models.User
	for _, u := range reg.Users() {
		if u.Email == "novo@erasmus.com" {
			found = &u
			break
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
}

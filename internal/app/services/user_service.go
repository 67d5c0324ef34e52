package services

import (
	"github.com/google/uuid"

	"github.com/erasmusedu/erasmus-portal/internal/app/models"
	"github.com/erasmusedu/erasmus-portal/internal/app/models/dto"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/apperrors"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/validation"
	"github.com/erasmusedu/erasmus-portal/internal/registry"
)

// UserService implements the admin dashboard's user management. Mutations run
// atomically through the registry's update mutators.
type UserService interface {
	ListUsers() []models.User
	// ListStaff returns every non-parent account, for the director's
	// read-only staff view.
	ListStaff() []models.User
	GetUser(id string) (*models.User, error)
	CreateUser(req dto.UserRequest) (*models.User, error)
	UpdateUser(id string, req dto.UserRequest) (*models.User, error)
	DeleteUser(id string) error
}

type userServiceImpl struct {
	reg *registry.Registry
}

// NewUserService creates the user view-model over the shared registry.
func NewUserService(reg *registry.Registry) UserService {
	return &userServiceImpl{reg: reg}
}

func (s *userServiceImpl) ListUsers() []models.User {
	return s.reg.Users()
}

func (s *userServiceImpl) ListStaff() []models.User {
	staff := make([]models.User, 0)
	for _, u := range s.reg.Users() {
		if u.Role != models.RoleParent {
			staff = append(staff, u)
		}
	}
	return staff
}

func (s *userServiceImpl) GetUser(id string) (*models.User, error) {
	for _, u := range s.reg.Users() {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func buildUser(req dto.UserRequest) (models.User, error) {
	b := validation.NewBuilder("user")
	name := b.Require("name", req.Name)
	email := b.RequireEmail("email", req.Email)
	b.Check("role", req.Role.Valid())
	if err := b.Finalize(); err != nil {
		return models.User{}, err
	}

	return models.User{
		Name:      name,
		Email:     email,
		Role:      req.Role,
		Phone:     req.Phone,
		Address:   req.Address,
		Position:  req.Position,
		StudentID: req.StudentID,
	}, nil
}

// CreateUser validates the request, assigns a fresh id and appends the user.
func (s *userServiceImpl) CreateUser(req dto.UserRequest) (*models.User, error) {
	user, err := buildUser(req)
	if err != nil {
		return nil, err
	}
	user.ID = uuid.NewString()

	s.reg.UpdateUsers(func(users []models.User) []models.User {
		return append(users, user)
	})
	return &user, nil
}

// UpdateUser replaces the matching user's fields in place, preserving order.
func (s *userServiceImpl) UpdateUser(id string, req dto.UserRequest) (*models.User, error) {
	user, err := buildUser(req)
	if err != nil {
		return nil, err
	}
	user.ID = id

	found := false
	s.reg.UpdateUsers(func(users []models.User) []models.User {
		for i := range users {
			if users[i].ID == id {
				users[i] = user
				found = true
				break
			}
		}
		return users
	})
	if !found {
		return nil, apperrors.ErrUserNotFound
	}
	return &user, nil
}

// DeleteUser removes exactly one user by id. Dangling references (a parent
// link, a class teacherId) are left as-is under the orphan policy.
func (s *userServiceImpl) DeleteUser(id string) error {
	removed := false
	s.reg.UpdateUsers(func(users []models.User) []models.User {
		kept := make([]models.User, 0, len(users))
		for _, u := range users {
			if !removed && u.ID == id {
				removed = true
				continue
			}
			kept = append(kept, u)
		}
		return kept
	})
	if !removed {
		return apperrors.ErrUserNotFound
	}
	return nil
}

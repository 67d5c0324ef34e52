package services

import (
	"github.com/google/uuid"

	"github.com/erasmusedu/erasmus-portal/internal/app/models"
	"github.com/erasmusedu/erasmus-portal/internal/app/models/dto"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/apperrors"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/validation"
	"github.com/erasmusedu/erasmus-portal/internal/registry"
)

// DeletePolicy decides what happens to students still referencing a class
// that is being deleted.
type DeletePolicy string

const (
	// PolicyOrphan leaves dependents with a dangling classId.
	PolicyOrphan DeletePolicy = "orphan"
	// PolicyBlock refuses the delete while students reference the class.
	PolicyBlock DeletePolicy = "block"
	// PolicyCascade clears the classId of dependent students.
	PolicyCascade DeletePolicy = "cascade"
)

// ClassService implements the admin dashboard's class management.
type ClassService interface {
	ListClasses() []models.Class
	GetClass(id string) (*models.Class, error)
	CreateClass(req dto.ClassRequest) (*models.Class, error)
	UpdateClass(id string, req dto.ClassRequest) (*models.Class, error)
	DeleteClass(id string) error
}

type classServiceImpl struct {
	reg    *registry.Registry
	policy DeletePolicy
}

// NewClassService creates the class view-model. The delete policy is an
// explicit choice; the historical behavior is PolicyOrphan.
func NewClassService(reg *registry.Registry, policy DeletePolicy) ClassService {
	if policy == "" {
		policy = PolicyOrphan
	}
	return &classServiceImpl{reg: reg, policy: policy}
}

func (s *classServiceImpl) ListClasses() []models.Class {
	return s.reg.Classes()
}

func (s *classServiceImpl) GetClass(id string) (*models.Class, error) {
	for _, c := range s.reg.Classes() {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, apperrors.ErrClassNotFound
}

func buildClass(req dto.ClassRequest) (models.Class, error) {
	b := validation.NewBuilder("class")
	name := b.Require("name", req.Name)
	room := b.Require("room", req.Room)
	b.RequirePositive("capacity", float64(req.Capacity))
	if err := b.Finalize(); err != nil {
		return models.Class{}, err
	}

	return models.Class{
		Name:            name,
		TeacherID:       req.TeacherID,
		Room:            room,
		Capacity:        req.Capacity,
		CurrentStudents: req.CurrentStudents,
	}, nil
}

func (s *classServiceImpl) CreateClass(req dto.ClassRequest) (*models.Class, error) {
	class, err := buildClass(req)
	if err != nil {
		return nil, err
	}
	class.ID = uuid.NewString()

	s.reg.UpdateClasses(func(classes []models.Class) []models.Class {
		return append(classes, class)
	})
	return &class, nil
}

func (s *classServiceImpl) UpdateClass(id string, req dto.ClassRequest) (*models.Class, error) {
	class, err := buildClass(req)
	if err != nil {
		return nil, err
	}
	class.ID = id

	found := false
	s.reg.UpdateClasses(func(classes []models.Class) []models.Class {
		for i := range classes {
			if classes[i].ID == id {
				classes[i] = class
				found = true
				break
			}
		}
		return classes
	})
	if !found {
		return nil, apperrors.ErrClassNotFound
	}
	return &class, nil
}

// DeleteClass removes exactly one class, applying the configured policy to
// students still referencing it.
func (s *classServiceImpl) DeleteClass(id string) error {
	if _, err := s.GetClass(id); err != nil {
		return err
	}

	switch s.policy {
	case PolicyBlock:
		for _, st := range s.reg.Students() {
			if st.ClassID == id {
				return apperrors.ErrClassHasStudents
			}
		}
	case PolicyCascade:
		s.reg.UpdateStudents(func(students []models.Student) []models.Student {
			for i := range students {
				if students[i].ClassID == id {
					students[i].ClassID = ""
				}
			}
			return students
		})
	}

	removed := false
	s.reg.UpdateClasses(func(classes []models.Class) []models.Class {
		kept := make([]models.Class, 0, len(classes))
		for _, c := range classes {
			if !removed && c.ID == id {
				removed = true
				continue
			}
			kept = append(kept, c)
		}
		return kept
	})
	if !removed {
		return apperrors.ErrClassNotFound
	}
	return nil
}

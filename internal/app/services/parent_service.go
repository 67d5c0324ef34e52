package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/erasmusedu/erasmus-portal/internal/app/models"
	"github.com/erasmusedu/erasmus-portal/internal/app/models/dto"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/apperrors"
	"github.com/erasmusedu/erasmus-portal/internal/registry"
)

// ParentService implements the parent dashboard: the linked child's grades
// and attendance, plus a message board. Messages are process-lifetime state;
// nothing delivers them anywhere.
type ParentService interface {
	Child(parent *models.User) (*models.Student, error)
	ChildGrades(parent *models.User) (*dto.StudentGradesResponse, error)
	PostMessage(parent *models.User, text string) (*dto.Message, error)
	Messages(parent *models.User) []dto.Message
}

type parentServiceImpl struct {
	reg *registry.Registry

	mu       sync.Mutex
	messages map[string][]dto.Message
}

// NewParentService creates the parent view-model over the shared registry.
func NewParentService(reg *registry.Registry) ParentService {
	return &parentServiceImpl{
		reg:      reg,
		messages: make(map[string][]dto.Message),
	}
}

// Child resolves the parent's linked student. An account without a studentId
// link is a data problem surfaced as ErrNoLinkedStudent.
func (s *parentServiceImpl) Child(parent *models.User) (*models.Student, error) {
	if parent == nil || parent.StudentID == "" {
		return nil, apperrors.ErrNoLinkedStudent
	}
	for _, st := range s.reg.Students() {
		if st.ID == parent.StudentID {
			return &st, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (s *parentServiceImpl) ChildGrades(parent *models.User) (*dto.StudentGradesResponse, error) {
	child, err := s.Child(parent)
	if err != nil {
		return nil, err
	}
	return &dto.StudentGradesResponse{
		Student: *child,
		Average: child.Grades.QuarterAverage(),
	}, nil
}

func (s *parentServiceImpl) PostMessage(parent *models.User, text string) (*dto.Message, error) {
	if parent == nil {
		return nil, apperrors.ErrPermissionDenied
	}
	msg := dto.Message{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	s.messages[parent.ID] = append(s.messages[parent.ID], msg)
	s.mu.Unlock()
	return &msg, nil
}

func (s *parentServiceImpl) Messages(parent *models.User) []dto.Message {
	if parent == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]dto.Message, len(s.messages[parent.ID]))
	copy(out, s.messages[parent.ID])
	return out
}

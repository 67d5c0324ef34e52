package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erasmusedu/erasmus-portal/internal/app/models"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/apperrors"
	"github.com/erasmusedu/erasmus-portal/internal/registry"
	"github.com/erasmusedu/erasmus-portal/internal/seed"
)

func newTestParentService(t *testing.T) (ParentService, *registry.Registry) {
	t.Helper()
	reg := registry.New()
	seed.Apply(reg)
	return NewParentService(reg), reg
}

func seedParent() *models.User {
	return &models.User{ID: "parent-1", Role: models.RoleParent, StudentID: "s1"}
}

func TestChildResolvesLinkedStudent(t *testing.T) {
	svc, _ := newTestParentService(t)

	child, err := svc.Child(seedParent())
	require.NoError(t, err)
	assert.Equal(t, "Alice Santos", child.Name)
}

func TestChildWithoutLink(t *testing.T) {
	svc, _ := newTestParentService(t)

	_, err := svc.Child(&models.User{ID: "parent-2", Role: models.RoleParent})
	assert.ErrorIs(t, err, apperrors.ErrNoLinkedStudent)
}

func TestChildLinkToMissingStudent(t *testing.T) {
	svc, _ := newTestParentService(t)

	_, err := svc.Child(&models.User{ID: "parent-3", Role: models.RoleParent, StudentID: "ghost"})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestChildGradesAverageSkipsEmptyQuarters(t *testing.T) {
	svc, _ := newTestParentService(t)

	// Seed grades are Q1=18, Q2=15, Q3=0: the average divides by the two
	// graded quarters, not three.
	grades, err := svc.ChildGrades(seedParent())
	require.NoError(t, err)
	assert.InDelta(t, 16.5, grades.Average, 0.001)
}

func TestMessagesArePerParent(t *testing.T) {
	svc, _ := newTestParentService(t)
	other := &models.User{ID: "parent-9", Role: models.RoleParent, StudentID: "s1"}

	_, err := svc.PostMessage(seedParent(), "A Alice vai faltar amanhã.")
	require.NoError(t, err)

	assert.Len(t, svc.Messages(seedParent()), 1)
	assert.Empty(t, svc.Messages(other))
}

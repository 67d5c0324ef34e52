package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erasmusedu/erasmus-portal/internal/app/models/dto"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/apperrors"
	"github.com/erasmusedu/erasmus-portal/internal/registry"
	"github.com/erasmusedu/erasmus-portal/internal/seed"
)

func newTestClassService(t *testing.T, policy DeletePolicy) (ClassService, *registry.Registry) {
	t.Helper()
	reg := registry.New()
	seed.Apply(reg)
	return NewClassService(reg, policy), reg
}

func TestCreateAndGetClass(t *testing.T) {
	svc, _ := newTestClassService(t, PolicyOrphan)

	created, err := svc.CreateClass(dto.ClassRequest{
		Name:      "Iniciação B",
		TeacherID: "teacher-1",
		Room:      "Sala 02",
		Capacity:  18,
	})
	require.NoError(t, err)

	got, err := svc.GetClass(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Iniciação B", got.Name)
}

func TestCreateClassValidation(t *testing.T) {
	svc, _ := newTestClassService(t, PolicyOrphan)

	_, err := svc.CreateClass(dto.ClassRequest{Name: "Sem Sala", Capacity: 0})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDeleteClassOrphanPolicy(t *testing.T) {
	svc, reg := newTestClassService(t, PolicyOrphan)

	require.NoError(t, svc.DeleteClass("c1"))

	// The student keeps its dangling classId.
	students := reg.Students()
	require.NotEmpty(t, students)
	assert.Equal(t, "c1", students[0].ClassID)
}

func TestDeleteClassBlockPolicy(t *testing.T) {
	svc, _ := newTestClassService(t, PolicyBlock)

	err := svc.DeleteClass("c1")
	assert.ErrorIs(t, err, apperrors.ErrClassHasStudents)

	// The class survives the refused delete.
	_, err = svc.GetClass("c1")
	assert.NoError(t, err)
}

func TestDeleteClassCascadePolicy(t *testing.T) {
	svc, reg := newTestClassService(t, PolicyCascade)

	require.NoError(t, svc.DeleteClass("c1"))

	students := reg.Students()
	require.NotEmpty(t, students)
	assert.Empty(t, students[0].ClassID)
}

func TestDeleteUnknownClass(t *testing.T) {
	svc, _ := newTestClassService(t, PolicyOrphan)
	assert.ErrorIs(t, svc.DeleteClass("missing"), apperrors.ErrClassNotFound)
}

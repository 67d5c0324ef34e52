package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erasmusedu/erasmus-portal/internal/app/models"
	"github.com/erasmusedu/erasmus-portal/internal/app/models/dto"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/apperrors"
	"github.com/erasmusedu/erasmus-portal/internal/registry"
	"github.com/erasmusedu/erasmus-portal/internal/seed"
)

func newTestStudentService(t *testing.T) (StudentService, *registry.Registry) {
	t.Helper()
	reg := registry.New()
	seed.Apply(reg)
	return NewStudentService(reg), reg
}

func seedTeacher() *models.User {
	return &models.User{ID: "teacher-1", Role: models.RoleTeacher}
}

func TestEnrollDefaultsToActive(t *testing.T) {
	svc, _ := newTestStudentService(t)

	student, err := svc.Enroll(dto.EnrollStudentRequest{
		Name:       "Bruno Costa",
		Age:        7,
		ClassID:    "c1",
		ParentName: "Sra. Costa",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StudentActive, student.Status)
	assert.Zero(t, student.Grades, "a new student starts with an empty grade record")
}

func TestEnrollValidation(t *testing.T) {
	svc, _ := newTestStudentService(t)

	_, err := svc.Enroll(dto.EnrollStudentRequest{Age: 0})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateStudentKeepsGrades(t *testing.T) {
	svc, _ := newTestStudentService(t)

	updated, err := svc.UpdateStudent("s1", dto.EnrollStudentRequest{
		Name:       "Alice Santos",
		Age:        7,
		ClassID:    "c1",
		ParentName: "Sr. Silva",
		Status:     models.StudentActive,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Age)
	assert.InDelta(t, 18, updated.Grades.Q1, 0.001, "enrollment edits must not reset grades")
}

func TestUpdateGradesByOwnTeacher(t *testing.T) {
	svc, _ := newTestStudentService(t)

	student, err := svc.UpdateGrades(seedTeacher(), "s1", dto.GradesRequest{
		Q1: 18, Q2: 15, Q3: 17, Exam: 16, Absences: 2,
	})
	require.NoError(t, err)
	assert.InDelta(t, 17, student.Grades.Q3, 0.001)
	assert.Equal(t, 2, student.Grades.Absences)
}

func TestUpdateGradesByOtherTeacherIsForbidden(t *testing.T) {
	svc, _ := newTestStudentService(t)
	other := &models.User{ID: "teacher-2", Role: models.RoleTeacher}

	_, err := svc.UpdateGrades(other, "s1", dto.GradesRequest{Q1: 10})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestUpdateGradesUnknownStudent(t *testing.T) {
	svc, _ := newTestStudentService(t)

	_, err := svc.UpdateGrades(seedTeacher(), "missing", dto.GradesRequest{})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestListByClass(t *testing.T) {
	svc, _ := newTestStudentService(t)

	_, err := svc.Enroll(dto.EnrollStudentRequest{
		Name: "Bruno Costa", Age: 7, ClassID: "c2", ParentName: "Sra. Costa",
	})
	require.NoError(t, err)

	inC1 := svc.ListByClass("c1")
	require.Len(t, inC1, 1)
	assert.Equal(t, "s1", inC1[0].ID)
	assert.Len(t, svc.ListByClass("c2"), 1)
	assert.Empty(t, svc.ListByClass("c3"))
}

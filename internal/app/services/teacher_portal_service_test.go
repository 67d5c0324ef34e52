package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erasmusedu/erasmus-portal/internal/app/models"
	"github.com/erasmusedu/erasmus-portal/internal/app/models/dto"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/apperrors"
	"github.com/erasmusedu/erasmus-portal/internal/registry"
	"github.com/erasmusedu/erasmus-portal/internal/seed"
)

type fakeGenerator struct {
	configured bool
	generate   func(ctx context.Context, prompt string) (string, error)
}

func (f *fakeGenerator) Configured() bool { return f.configured }

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return f.generate(ctx, prompt)
}

func newTestPortal(t *testing.T, gen insightGenerator) (TeacherPortalService, *registry.Registry) {
	t.Helper()
	reg := registry.New()
	seed.Apply(reg)
	if gen == nil {
		gen = &fakeGenerator{configured: false}
	}
	return NewTeacherPortalService(reg, gen), reg
}

func portalTeacher() *models.User {
	return &models.User{ID: "teacher-1", Role: models.RoleTeacher}
}

func waitReady(t *testing.T, svc TeacherPortalService, teacher *models.User) dto.InsightResponse {
	t.Helper()
	var state dto.InsightResponse
	require.Eventually(t, func() bool {
		state = svc.Insight(teacher)
		return state.Status == "ready"
	}, 2*time.Second, 5*time.Millisecond)
	return state
}

func TestClassesForOnlyOwnClasses(t *testing.T) {
	svc, _ := newTestPortal(t, nil)

	assert.Len(t, svc.ClassesFor(portalTeacher()), 1)
	assert.Empty(t, svc.ClassesFor(&models.User{ID: "teacher-2", Role: models.RoleTeacher}))
}

func TestStudentsForForeignClassIsForbidden(t *testing.T) {
	svc, _ := newTestPortal(t, nil)

	_, err := svc.StudentsFor(&models.User{ID: "teacher-2"}, "c1")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	students, err := svc.StudentsFor(portalTeacher(), "c1")
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "s1", students[0].ID)
}

func TestToggleAttendanceDefaultsToAbsent(t *testing.T) {
	svc, _ := newTestPortal(t, nil)

	// No entry means present; the first toggle therefore marks an absence.
	resp, err := svc.ToggleAttendance(portalTeacher(), dto.AttendanceToggleRequest{StudentID: "s1", Date: "2024-03-11"})
	require.NoError(t, err)
	assert.False(t, resp.Present["s1"])

	resp, err = svc.ToggleAttendance(portalTeacher(), dto.AttendanceToggleRequest{StudentID: "s1", Date: "2024-03-11"})
	require.NoError(t, err)
	assert.True(t, resp.Present["s1"])

	// Another day is untouched.
	other := svc.Attendance("2024-03-12")
	assert.Empty(t, other.Present)
}

func TestInsightFallbackWhenUnconfigured(t *testing.T) {
	svc, _ := newTestPortal(t, &fakeGenerator{configured: false})

	pending, err := svc.RequestInsight(portalTeacher(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "pending", pending.Status)

	state := waitReady(t, svc, portalTeacher())
	assert.Equal(t, insightUnavailableText, state.Text)
	assert.Equal(t, "s1", state.StudentID)
}

func TestInsightErrorFallback(t *testing.T) {
	gen := &fakeGenerator{
		configured: true,
		generate: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("boom")
		},
	}
	svc, _ := newTestPortal(t, gen)

	_, err := svc.RequestInsight(portalTeacher(), "s1")
	require.NoError(t, err)

	state := waitReady(t, svc, portalTeacher())
	assert.Equal(t, insightErrorText, state.Text)
}

func TestInsightStaleResultIsDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var calls int32
	gen := &fakeGenerator{
		configured: true,
		generate: func(ctx context.Context, prompt string) (string, error) {
			// The first call blocks until released; later calls answer at once.
			if atomic.AddInt32(&calls, 1) == 1 {
				close(started)
				<-release
				return "primeira análise", nil
			}
			return "segunda análise", nil
		},
	}
	svc, _ := newTestPortal(t, gen)
	teacher := portalTeacher()

	_, err := svc.RequestInsight(teacher, "s1")
	require.NoError(t, err)
	<-started
	_, err = svc.RequestInsight(teacher, "s1")
	require.NoError(t, err)

	state := waitReady(t, svc, teacher)
	assert.Equal(t, "segunda análise", state.Text)

	// Let the superseded request land; it must not overwrite the result.
	close(release)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, "segunda análise", svc.Insight(teacher).Text)
}

func TestRequestInsightForeignStudent(t *testing.T) {
	svc, reg := newTestPortal(t, nil)

	students := append(reg.Students(), models.Student{ID: "s2", Name: "Bruno", ClassID: "c9"})
	reg.SetStudents(students)

	_, err := svc.RequestInsight(portalTeacher(), "s2")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestGenerateNewsletter(t *testing.T) {
	gen := &fakeGenerator{
		configured: true,
		generate: func(ctx context.Context, prompt string) (string, error) {
			assert.Contains(t, prompt, "Feira de Ciências")
			return "Caros pais, ...", nil
		},
	}
	svc, _ := newTestPortal(t, gen)

	resp := svc.GenerateNewsletter(context.Background(), []string{"Feira de Ciências"})
	assert.Equal(t, "Caros pais, ...", resp.Text)
}

func TestGenerateNewsletterFallsBackWhenUnconfigured(t *testing.T) {
	svc, _ := newTestPortal(t, &fakeGenerator{configured: false})

	resp := svc.GenerateNewsletter(context.Background(), []string{"Evento"})
	assert.Equal(t, insightUnavailableText, resp.Text)
}

func TestAnnouncementsNewestFirst(t *testing.T) {
	svc, _ := newTestPortal(t, nil)

	svc.PostAnnouncement("primeiro aviso")
	svc.PostAnnouncement("segundo aviso")

	anns := svc.Announcements()
	require.Len(t, anns, 2)
	assert.Equal(t, "segundo aviso", anns[0].Text)
}

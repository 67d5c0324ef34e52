package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/erasmusedu/erasmus-portal/internal/app/models"
	"github.com/erasmusedu/erasmus-portal/internal/app/models/dto"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/apperrors"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/logger"
	"github.com/erasmusedu/erasmus-portal/internal/registry"
)

// Fallback texts shown to the teacher when generation is unavailable or
// fails. The portal never surfaces a raw provider error.
const (
	insightUnavailableText = "Não foi possível gerar a análise no momento."
	insightErrorText       = "O Mentor IA encontrou um erro técnico."
)

// insightGenerator is the slice of the genai client the portal needs.
type insightGenerator interface {
	Configured() bool
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// TeacherPortalService implements the teacher dashboard: the teacher's own
// classes, day attendance, announcements and the AI mentor. Attendance,
// announcements and insight state live in the service for the process
// lifetime and are never written to the registry.
type TeacherPortalService interface {
	ClassesFor(teacher *models.User) []models.Class
	StudentsFor(teacher *models.User, classID string) ([]models.Student, error)
	ToggleAttendance(teacher *models.User, req dto.AttendanceToggleRequest) (*dto.AttendanceResponse, error)
	Attendance(date string) dto.AttendanceResponse
	PostAnnouncement(text string) dto.Announcement
	Announcements() []dto.Announcement
	// RequestInsight starts an asynchronous analysis of one student and
	// returns the pending state. A newer request supersedes an in-flight one;
	// the superseded result is discarded when it lands.
	RequestInsight(teacher *models.User, studentID string) (*dto.InsightResponse, error)
	Insight(teacher *models.User) dto.InsightResponse
	GenerateNewsletter(ctx context.Context, events []string) dto.NewsletterResponse
}

type insightState struct {
	seq       uint64
	studentID string
	status    string
	text      string
}

type teacherPortalServiceImpl struct {
	reg *registry.Registry
	gen insightGenerator

	mu            sync.Mutex
	attendance    map[string]map[string]bool
	announcements []dto.Announcement
	insights      map[string]*insightState
}

// NewTeacherPortalService creates the teacher portal over the shared registry
// and a generation client. The client may be unconfigured; the portal then
// answers with the unavailable fallback.
func NewTeacherPortalService(reg *registry.Registry, gen insightGenerator) TeacherPortalService {
	return &teacherPortalServiceImpl{
		reg:        reg,
		gen:        gen,
		attendance: make(map[string]map[string]bool),
		insights:   make(map[string]*insightState),
	}
}

func (s *teacherPortalServiceImpl) ClassesFor(teacher *models.User) []models.Class {
	var out []models.Class
	if teacher == nil {
		return out
	}
	for _, c := range s.reg.Classes() {
		if c.TeacherID == teacher.ID {
			out = append(out, c)
		}
	}
	return out
}

func (s *teacherPortalServiceImpl) StudentsFor(teacher *models.User, classID string) ([]models.Student, error) {
	if !s.teaches(teacher, classID) {
		return nil, apperrors.NewForbiddenError("class is not assigned to you")
	}
	var out []models.Student
	for _, st := range s.reg.Students() {
		if st.ClassID == classID {
			out = append(out, st)
		}
	}
	return out, nil
}

func (s *teacherPortalServiceImpl) teaches(teacher *models.User, classID string) bool {
	if teacher == nil {
		return false
	}
	for _, c := range s.reg.Classes() {
		if c.ID == classID && c.TeacherID == teacher.ID {
			return true
		}
	}
	return false
}

// ToggleAttendance flips one student's presence for a day. A student with no
// entry counts as present, so the first toggle marks an absence.
func (s *teacherPortalServiceImpl) ToggleAttendance(teacher *models.User, req dto.AttendanceToggleRequest) (*dto.AttendanceResponse, error) {
	student, classID := s.findStudent(req.StudentID)
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	if !s.teaches(teacher, classID) {
		return nil, apperrors.NewForbiddenError("student is not in one of your classes")
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	day := s.attendance[date]
	if day == nil {
		day = make(map[string]bool)
		s.attendance[date] = day
	}
	if present, ok := day[req.StudentID]; ok {
		day[req.StudentID] = !present
	} else {
		day[req.StudentID] = false
	}

	return &dto.AttendanceResponse{Date: date, Present: copyPresence(day)}, nil
}

func (s *teacherPortalServiceImpl) Attendance(date string) dto.AttendanceResponse {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return dto.AttendanceResponse{Date: date, Present: copyPresence(s.attendance[date])}
}

func copyPresence(day map[string]bool) map[string]bool {
	out := make(map[string]bool, len(day))
	for id, present := range day {
		out[id] = present
	}
	return out
}

func (s *teacherPortalServiceImpl) findStudent(id string) (*models.Student, string) {
	for _, st := range s.reg.Students() {
		if st.ID == id {
			return &st, st.ClassID
		}
	}
	return nil, ""
}

func (s *teacherPortalServiceImpl) PostAnnouncement(text string) dto.Announcement {
	ann := dto.Announcement{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	s.announcements = append([]dto.Announcement{ann}, s.announcements...)
	s.mu.Unlock()
	return ann
}

func (s *teacherPortalServiceImpl) Announcements() []dto.Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]dto.Announcement, len(s.announcements))
	copy(out, s.announcements)
	return out
}

func (s *teacherPortalServiceImpl) RequestInsight(teacher *models.User, studentID string) (*dto.InsightResponse, error) {
	if teacher == nil {
		return nil, apperrors.ErrPermissionDenied
	}
	student, classID := s.findStudent(studentID)
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	if !s.teaches(teacher, classID) {
		return nil, apperrors.NewForbiddenError("student is not in one of your classes")
	}

	s.mu.Lock()
	state := s.insights[teacher.ID]
	if state == nil {
		state = &insightState{}
		s.insights[teacher.ID] = state
	}
	state.seq++
	seq := state.seq
	state.studentID = studentID
	state.status = "pending"
	state.text = ""
	s.mu.Unlock()

	go s.generateInsight(teacher.ID, seq, *student)

	return &dto.InsightResponse{Status: "pending", StudentID: studentID}, nil
}

func (s *teacherPortalServiceImpl) generateInsight(teacherID string, seq uint64, student models.Student) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	text := insightUnavailableText
	if s.gen.Configured() {
		result, err := s.gen.GenerateContent(ctx, insightPrompt(student))
		switch {
		case err != nil:
			logger.Error().Err(err).Str("studentId", student.ID).Msg("Insight generation failed")
			text = insightErrorText
		case strings.TrimSpace(result) == "":
			text = insightUnavailableText
		default:
			text = result
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.insights[teacherID]
	if state == nil || state.seq != seq {
		// A newer request superseded this one.
		return
	}
	state.status = "ready"
	state.text = text
}

func (s *teacherPortalServiceImpl) Insight(teacher *models.User) dto.InsightResponse {
	if teacher == nil {
		return dto.InsightResponse{Status: "idle"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.insights[teacher.ID]
	if state == nil {
		return dto.InsightResponse{Status: "idle"}
	}
	return dto.InsightResponse{Status: state.status, StudentID: state.studentID, Text: state.text}
}

func insightPrompt(student models.Student) string {
	var sb strings.Builder
	sb.WriteString("Atue como um mentor pedagógico experiente de uma escola primária em Angola. ")
	sb.WriteString("Analise o desempenho do seguinte aluno e escreva uma análise curta e acionável ")
	sb.WriteString("para o professor, em português, com sugestões concretas de acompanhamento.\n\n")
	fmt.Fprintf(&sb, "Aluno: %s, %d anos.\n", student.Name, student.Age)
	fmt.Fprintf(&sb, "Notas: 1º trimestre %.1f, 2º trimestre %.1f, 3º trimestre %.1f, exame %.1f.\n",
		student.Grades.Q1, student.Grades.Q2, student.Grades.Q3, student.Grades.Exam)
	fmt.Fprintf(&sb, "Faltas: %d. Assiduidade: %d%%. Aproveitamento: %d%%.\n",
		student.Grades.Absences, student.Attendance, student.Performance)
	return sb.String()
}

// GenerateNewsletter produces a parent-facing newsletter from a list of
// school events. Unlike the insight this call is synchronous; failures fall
// back to the same degraded texts.
func (s *teacherPortalServiceImpl) GenerateNewsletter(ctx context.Context, events []string) dto.NewsletterResponse {
	if !s.gen.Configured() {
		return dto.NewsletterResponse{Text: insightUnavailableText}
	}

	var sb strings.Builder
	sb.WriteString("Escreva um boletim informativo curto e caloroso, em português, para os pais ")
	sb.WriteString("dos alunos do Complexo Erasmus, resumindo os seguintes eventos da escola:\n")
	for _, ev := range events {
		fmt.Fprintf(&sb, "- %s\n", ev)
	}

	text, err := s.gen.GenerateContent(ctx, sb.String())
	if err != nil {
		logger.Error().Err(err).Msg("Newsletter generation failed")
		return dto.NewsletterResponse{Text: insightErrorText}
	}
	if strings.TrimSpace(text) == "" {
		return dto.NewsletterResponse{Text: insightUnavailableText}
	}
	return dto.NewsletterResponse{Text: text}
}

package services

import (
	"github.com/google/uuid"

	"github.com/erasmusedu/erasmus-portal/internal/app/models"
	"github.com/erasmusedu/erasmus-portal/internal/app/models/dto"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/apperrors"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/validation"
	"github.com/erasmusedu/erasmus-portal/internal/registry"
)

// StudentService implements enrollment (staff dashboard) and grade editing
// (teacher portal) over the shared student collection.
type StudentService interface {
	ListStudents() []models.Student
	ListByClass(classID string) []models.Student
	GetStudent(id string) (*models.Student, error)
	Enroll(req dto.EnrollStudentRequest) (*models.Student, error)
	UpdateStudent(id string, req dto.EnrollStudentRequest) (*models.Student, error)
	// UpdateGrades replaces a student's grade record. The teacher may only
	// grade students of classes assigned to them.
	UpdateGrades(teacher *models.User, studentID string, req dto.GradesRequest) (*models.Student, error)
}

type studentServiceImpl struct {
	reg *registry.Registry
}

// NewStudentService creates the student view-model over the shared registry.
func NewStudentService(reg *registry.Registry) StudentService {
	return &studentServiceImpl{reg: reg}
}

func (s *studentServiceImpl) ListStudents() []models.Student {
	return s.reg.Students()
}

func (s *studentServiceImpl) ListByClass(classID string) []models.Student {
	var out []models.Student
	for _, st := range s.reg.Students() {
		if st.ClassID == classID {
			out = append(out, st)
		}
	}
	return out
}

func (s *studentServiceImpl) GetStudent(id string) (*models.Student, error) {
	for _, st := range s.reg.Students() {
		if st.ID == id {
			return &st, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func buildStudent(req dto.EnrollStudentRequest) (models.Student, error) {
	b := validation.NewBuilder("student")
	name := b.Require("name", req.Name)
	parent := b.Require("parentName", req.ParentName)
	b.RequirePositive("age", float64(req.Age))
	status := req.Status
	if status == "" {
		status = models.StudentActive
	}
	b.RequireOneOf("status", string(status), string(models.StudentActive), string(models.StudentInactive))
	if err := b.Finalize(); err != nil {
		return models.Student{}, err
	}

	return models.Student{
		Name:        name,
		Age:         req.Age,
		ClassID:     req.ClassID,
		ParentName:  parent,
		Status:      status,
		Attendance:  req.Attendance,
		Performance: req.Performance,
	}, nil
}

// Enroll validates the request, assigns a fresh id and appends the student
// with an empty grade record.
func (s *studentServiceImpl) Enroll(req dto.EnrollStudentRequest) (*models.Student, error) {
	student, err := buildStudent(req)
	if err != nil {
		return nil, err
	}
	student.ID = uuid.NewString()

	s.reg.UpdateStudents(func(students []models.Student) []models.Student {
		return append(students, student)
	})
	return &student, nil
}

// UpdateStudent replaces enrollment fields, keeping the grade record intact.
func (s *studentServiceImpl) UpdateStudent(id string, req dto.EnrollStudentRequest) (*models.Student, error) {
	student, err := buildStudent(req)
	if err != nil {
		return nil, err
	}
	student.ID = id

	found := false
	s.reg.UpdateStudents(func(students []models.Student) []models.Student {
		for i := range students {
			if students[i].ID == id {
				student.Grades = students[i].Grades
				students[i] = student
				found = true
				break
			}
		}
		return students
	})
	if !found {
		return nil, apperrors.ErrStudentNotFound
	}
	return &student, nil
}

func (s *studentServiceImpl) UpdateGrades(teacher *models.User, studentID string, req dto.GradesRequest) (*models.Student, error) {
	// The ownership check needs the class collection, which the transform
	// must not touch. Snapshot the taught classes up front.
	taught := s.taughtClassIDs(teacher)

	var updated *models.Student
	forbidden := false
	s.reg.UpdateStudents(func(students []models.Student) []models.Student {
		for i := range students {
			if students[i].ID != studentID {
				continue
			}
			if !taught[students[i].ClassID] {
				forbidden = true
				return students
			}
			students[i].Grades = models.GradeRecord{
				Q1:       req.Q1,
				Q2:       req.Q2,
				Q3:       req.Q3,
				Exam:     req.Exam,
				Absences: req.Absences,
			}
			st := students[i]
			updated = &st
			return students
		}
		return students
	})

	if forbidden {
		return nil, apperrors.NewForbiddenError("student is not in one of your classes")
	}
	if updated == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return updated, nil
}

func (s *studentServiceImpl) taughtClassIDs(teacher *models.User) map[string]bool {
	ids := make(map[string]bool)
	if teacher == nil {
		return ids
	}
	for _, c := range s.reg.Classes() {
		if c.TeacherID == teacher.ID {
			ids[c.ID] = true
		}
	}
	return ids
}

package dto

import "github.com/erasmusedu/erasmus-portal/internal/app/models"

// EnrollStudentRequest carries enrollment fields for create and update.
type EnrollStudentRequest struct {
	Name        string               `json:"name" example:"Alice Santos"`
	Age         int                  `json:"age" example:"6"`
	ClassID     string               `json:"classId" example:"c1"`
	ParentName  string               `json:"parentName" example:"Sr. Silva"`
	Status      models.StudentStatus `json:"status" example:"active"`
	Attendance  int                  `json:"attendance,omitempty"`
	Performance int                  `json:"performance,omitempty"`
}

// GradesRequest replaces a student's grade record.
type GradesRequest struct {
	Q1       float64 `json:"q1"`
	Q2       float64 `json:"q2"`
	Q3       float64 `json:"q3"`
	Exam     float64 `json:"exam"`
	Absences int     `json:"absences"`
}

// StudentGradesResponse is the parent-facing grades view.
type StudentGradesResponse struct {
	Student models.Student `json:"student"`
	Average float64        `json:"average"`
}

package dto

import "github.com/erasmusedu/erasmus-portal/internal/app/models"

// UserRequest carries user fields for create and update. Required-field
// checks happen in the service so a failed create reports every missing
// field at once.
type UserRequest struct {
	Name      string      `json:"name" example:"Prof. Ricardo"`
	Email     string      `json:"email" example:"ricardo@erasmus.com"`
	Role      models.Role `json:"role" example:"TEACHER"`
	Phone     string      `json:"phone,omitempty"`
	Address   string      `json:"address,omitempty"`
	Position  string      `json:"position,omitempty"`
	StudentID string      `json:"studentId,omitempty"`
}

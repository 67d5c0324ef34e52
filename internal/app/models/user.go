package models

// User is an account that can log into one of the dashboards. A Parent-role
// user references the student it is responsible for through StudentID; the
// reference is resolved by linear scan and is not enforced by the registry.
type User struct {
	ID        string `json:"id" example:"admin-1"`
	Name      string `json:"name" example:"Administrador Geral"`
	Email     string `json:"email" example:"admin@erasmus.com"`
	Role      Role   `json:"role" example:"ADMIN"`
	Phone     string `json:"phone,omitempty" example:"923111000"`
	Address   string `json:"address,omitempty"`
	Position  string `json:"position,omitempty"`
	StudentID string `json:"studentId,omitempty" example:"s1"` // Parent-role link to the child
}

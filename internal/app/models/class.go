package models

// Class is a school class. TeacherID should reference a Teacher-role user and
// CurrentStudents is a display count; neither is enforced against the actual
// student membership.
type Class struct {
	ID              string `json:"id" example:"c1"`
	Name            string `json:"name" example:"Pré-Escolar A"`
	TeacherID       string `json:"teacherId" example:"teacher-1"`
	Room            string `json:"room" example:"Sala 05"`
	Capacity        int    `json:"capacity" example:"20"`
	CurrentStudents int    `json:"currentStudents" example:"15"`
}

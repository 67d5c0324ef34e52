package dto

// ClassRequest carries class fields for create and update.
type ClassRequest struct {
	Name            string `json:"name" example:"Pré-Escolar A"`
	TeacherID       string `json:"teacherId" example:"teacher-1"`
	Room            string `json:"room" example:"Sala 05"`
	Capacity        int    `json:"capacity" example:"20"`
	CurrentStudents int    `json:"currentStudents" example:"15"`
}

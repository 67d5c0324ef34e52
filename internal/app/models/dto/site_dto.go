package dto

// SitePageRequest carries page fields for create and update.
type SitePageRequest struct {
	Title   string `json:"title" example:"Processo de Matrícula"`
	Slug    string `json:"slug" example:"matricula"`
	Content string `json:"content"`
	Active  bool   `json:"active" example:"true"`
}

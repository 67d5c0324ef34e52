package models

// SitePage is an extra public page owned by the site content aggregate.
type SitePage struct {
	ID      string `json:"id" example:"p1"`
	Title   string `json:"title" example:"Processo de Matrícula"`
	Slug    string `json:"slug" example:"matricula"`
	Content string `json:"content"`
	Active  bool   `json:"active" example:"true"`
}

// SiteSlide is one hero carousel slide.
type SiteSlide struct {
	ID       string `json:"id"`
	Image    string `json:"image"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// SiteTeacher is a staff member featured on the public site.
type SiteTeacher struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Photo string `json:"photo"`
}

// SiteContact holds the public contact block.
type SiteContact struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	MapURL  string `json:"mapUrl,omitempty"`
}

// SiteSocials holds optional social links for the footer.
type SiteSocials struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

// SiteFooter is the public site footer.
type SiteFooter struct {
	Text    string      `json:"text"`
	Socials SiteSocials `json:"socials"`
}

// SiteContent is the singleton aggregate backing the public marketing site.
// It is edited only by the admin dashboard and read by everyone.
type SiteContent struct {
	InstitutionName string        `json:"institutionName" example:"Complexo Erasmus"`
	Logo            string        `json:"logo" example:"ERASMUS"`
	HeroTitle       string        `json:"heroTitle"`
	HeroSubtitle    string        `json:"heroSubtitle"`
	AboutText       string        `json:"aboutText"`
	Slides          []SiteSlide   `json:"slides"`
	Gallery         []string      `json:"gallery"`
	Teachers        []SiteTeacher `json:"teachers"`
	Pages           []SitePage    `json:"pages"`
	Contact         SiteContact   `json:"contact"`
	Footer          SiteFooter    `json:"footer"`
}

// Package seed provides the initial dataset loaded into the registry when no
// persisted state exists. The content mirrors the school's current marketing
// material and a minimal set of accounts, one per role family.
package seed

import (
	"github.com/erasmusedu/erasmus-portal/internal/app/models"
	"github.com/erasmusedu/erasmus-portal/internal/registry"
)

// Users returns the default account list.
func Users() []models.User {
	return []models.User{
		{ID: "admin-1", Name: "Administrador Geral", Email: "admin@erasmus.com", Role: models.RoleAdmin, Phone: "923111000"},
		{ID: "director-1", Name: "Dra. Ana Paula", Email: "direcao@erasmus.com", Role: models.RoleDirector, Phone: "923444000", Position: "Diretora Pedagógica"},
		{ID: "teacher-1", Name: "Prof. Ricardo", Email: "ricardo@erasmus.com", Role: models.RoleTeacher, Phone: "923222000"},
		{ID: "staff-1", Name: "Sra. Beatriz", Email: "secretaria@erasmus.com", Role: models.RoleStaff, Phone: "923555000", Position: "Secretária"},
		{ID: "parent-1", Name: "Sr. Silva", Email: "pai@email.com", Role: models.RoleParent, StudentID: "s1", Phone: "923333000"},
	}
}

// Students returns the default student list.
func Students() []models.Student {
	return []models.Student{
		{
			ID:          "s1",
			Name:        "Alice Santos",
			Age:         6,
			ClassID:     "c1",
			ParentName:  "Sr. Silva",
			Status:      models.StudentActive,
			Grades:      models.GradeRecord{Q1: 18, Q2: 15, Q3: 0, Exam: 0, Absences: 1},
			Attendance:  98,
			Performance: 92,
		},
	}
}

// Classes returns the default class list.
func Classes() []models.Class {
	return []models.Class{
		{ID: "c1", Name: "Pré-Escolar A", TeacherID: "teacher-1", Room: "Sala 05", Capacity: 20, CurrentStudents: 15},
	}
}

// FinancialRecords returns the opening ledger.
func FinancialRecords() []models.FinancialRecord {
	return []models.FinancialRecord{
		{ID: "f1", Type: models.RecordIncome, Category: "Propinas", Description: "Mensalidade Março - Alice S.", Amount: 150000, Date: "2024-03-01"},
		{ID: "f2", Type: models.RecordExpense, Category: "Salários", Description: "Folha de Pagamento - Docentes", Amount: 850000, Date: "2024-03-05"},
		{ID: "f3", Type: models.RecordExpense, Category: "Stock", Description: "Material de Limpeza e Papelaria", Amount: 45000, Date: "2024-03-10"},
	}
}

// InventoryItems returns the default stock list.
func InventoryItems() []models.InventoryItem {
	return []models.InventoryItem{
		{ID: "i1", Name: "Resmas de Papel A4", Quantity: 45, MinQuantity: 10, Category: "Escritório"},
	}
}

// SiteContent returns the public site aggregate.
func SiteContent() models.SiteContent {
	return models.SiteContent{
		InstitutionName: "Complexo Erasmus",
		Logo:            "ERASMUS",
		HeroTitle:       "Educação que Constrói o Futuro",
		HeroSubtitle:    "Onde cada criança descobre o seu potencial máximo através do afeto e da tecnologia.",
		AboutText:       "O Complexo Erasmus é referência em Luanda, oferecendo um currículo inovador focado no bilinguismo e competências do século XXI.",
		Slides: []models.SiteSlide{
			{ID: "1", Image: "https://images.unsplash.com/photo-1503676260728-1c00da094a0b?auto=format&fit=crop&q=80&w=1200", Title: "Espaço Criativo", Subtitle: "Ambientes desenhados para a imaginação."},
			{ID: "2", Image: "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?auto=format&fit=crop&q=80&w=1200", Title: "Esporte e Lazer", Subtitle: "Desenvolvimento físico e social integral."},
		},
		Gallery: []string{
			"https://images.unsplash.com/photo-1587654780291-39c9404d746b?auto=format&fit=crop&q=80&w=600",
			"https://images.unsplash.com/photo-1516627145497-ae6968895b74?auto=format&fit=crop&q=80&w=600",
			"https://images.unsplash.com/photo-1502086223501-7ea6ecd79368?auto=format&fit=crop&q=80&w=600",
		},
		Teachers: []models.SiteTeacher{
			{ID: "t1", Name: "Dra. Ana Paula", Role: "Diretora Pedagógica", Photo: "https://i.pravatar.cc/150?u=ana"},
			{ID: "t2", Name: "Mestre Carlos", Role: "Inovação Tech", Photo: "https://i.pravatar.cc/150?u=carlos"},
			{ID: "t3", Name: "Profª Julia", Role: "Artes e Cultura", Photo: "https://i.pravatar.cc/150?u=julia"},
		},
		Pages: []models.SitePage{
			{ID: "p1", Title: "Processo de Matrícula", Slug: "matricula", Content: "O processo de matrícula para o ano letivo 2024/25 está aberto. Documentos necessários: Cópia do boletim de nascimento, 2 fotos tipo passe, e atestado de vacina atualizado.", Active: true},
			{ID: "p2", Title: "Políticas de Privacidade", Slug: "privacidade", Content: "Garantimos a segurança total dos dados dos nossos alunos e encarregados de educação.", Active: true},
		},
		Contact: models.SiteContact{
			Address: "Rua Comandante Gika, Luanda, Angola",
			Phone:   "+244 923 000 000",
			Email:   "secretaria@erasmus.ao",
		},
		Footer: models.SiteFooter{
			Text:    "© 2024 Complexo Erasmus - Excelência em Educação Infantil.",
			Socials: models.SiteSocials{Facebook: "#", Instagram: "#", LinkedIn: "#"},
		},
	}
}

// Apply fills an empty registry with the default dataset.
func Apply(reg *registry.Registry) {
	reg.SetUsers(Users())
	reg.SetStudents(Students())
	reg.SetClasses(Classes())
	reg.SetFinancialRecords(FinancialRecords())
	reg.SetInventoryItems(InventoryItems())
	reg.SetSite(SiteContent())
}

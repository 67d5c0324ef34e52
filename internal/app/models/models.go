package models

// Role defines the user role type
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleDirector Role = "DIRECTOR"
	RoleTeacher  Role = "TEACHER"
	RoleStaff    Role = "STAFF"
	RoleParent   Role = "PARENT"
	RolePublic   Role = "PUBLIC"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDirector, RoleTeacher, RoleStaff, RoleParent, RolePublic:
		return true
	}
	return false
}

// View is a navigation token. The public site and the login form are the only
// views reachable without an identity; each role maps to exactly one dashboard.
type View string

const (
	ViewHome     View = "home"
	ViewLogin    View = "login"
	ViewAdmin    View = "admin"
	ViewDirector View = "director"
	ViewTeacher  View = "teacher"
	ViewParent   View = "parent"
	ViewStaff    View = "staff"
)

// DashboardFor returns the dashboard view owned by a role. Roles without a
// dashboard (PUBLIC or unknown) fall back to the public site.
func DashboardFor(role Role) View {
	switch role {
	case RoleAdmin:
		return ViewAdmin
	case RoleDirector:
		return ViewDirector
	case RoleTeacher:
		return ViewTeacher
	case RoleParent:
		return ViewParent
	case RoleStaff:
		return ViewStaff
	default:
		return ViewHome
	}
}

// StudentStatus is the enrollment status of a student.
type StudentStatus string

const (
	StudentActive   StudentStatus = "active"
	StudentInactive StudentStatus = "inactive"
)

// RecordType distinguishes ledger entries.
type RecordType string

const (
	RecordIncome  RecordType = "income"
	RecordExpense RecordType = "expense"
)

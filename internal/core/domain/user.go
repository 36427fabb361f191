package domain

// User is an authenticated account. Each user is a tenant: every party,
// product and fact row carries the owning user's ID and every query is scoped
// by it.
type User struct {
	UserID       string `json:"userID"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	AuditFields
}

package domain

// AdminRole is the privilege level of a studio administrator.
type AdminRole string

const (
	RoleAdmin      AdminRole = "admin"
	RoleSuperAdmin AdminRole = "superadmin"
)

// Admin is a dashboard operator. Admins are seed data in the local backend
// and are never created at runtime.
type Admin struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Role     AdminRole `json:"role"`
}

func (a *Admin) Principal() *Principal {
	return &Principal{
		Kind:  KindAdmin,
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
		Role:  a.Role,
	}
}

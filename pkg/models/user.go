package models

// Role is the access level a user holds. Enforcement is server-side; the
// client uses it only to decide which screens to offer.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCashier Role = "cashier"
	RoleViewer  Role = "viewer"
)

// User is the minimal profile the backend returns at login.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// LoginRequest is the payload for POST /users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the successful login envelope.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// CanManageInventory reports whether the role may mutate operational
// records: open bulk stock, register customers, update sale statuses.
func (r Role) CanManageInventory() bool {
	return r == RoleAdmin || r == RoleCashier
}

// CanManageUsers reports whether the role may administer users and suppliers.
func (r Role) CanManageUsers() bool {
	return r == RoleAdmin
}

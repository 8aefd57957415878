package entities

// User is a technician or administrator account.
//
// The password travels and is stored in plaintext, mirroring the behavior this
// system replaces. The admin user listing exposes it on purpose (demo mode);
// production deployments must hash credentials before this field ever leaves
// the register handler.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminUsername is the reserved account that carries administrator capability.
const AdminUsername = "admin"

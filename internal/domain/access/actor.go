package access

type Role string

const (
	RoleProvider  Role = "provider"
	RoleScheduler Role = "scheduler"
	RoleAdmin     Role = "admin"
)

// Actor is the authenticated caller resolved by the auth middleware.
type Actor struct {
	UserID   uint
	TenantID uint
	Role     Role
}

// IsSchedulerPrivileged reports whether the actor may act on assignments
// and events it does not own.
func (a Actor) IsSchedulerPrivileged() bool {
	return a.Role == RoleScheduler || a.Role == RoleAdmin
}

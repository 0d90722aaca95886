package config

// Permission keys understood by the route table. Kept in one place so the
// admin screen can offer the full catalog when editing a user.
var PermissionCatalog = []string{
	"bookings:read",
	"bookings:create",
	"bookings:update",
	"bookings:delete",
	"bookings:flags",
	"bookings:export",
	"completed:read",
	"completed:invoice",
	"masters:read",
	"masters:manage",
	"customers:read",
	"customers:manage",
	"localcharges:read",
	"localcharges:manage",
	"requests:read",
	"requests:manage",
	"mail:send",
	"users:manage",
}

// DefaultUserPermissions is assigned to newly registered non-admin users.
var DefaultUserPermissions = []string{
	"bookings:read",
	"bookings:create",
	"bookings:update",
	"bookings:flags",
	"bookings:export",
	"completed:read",
	"masters:read",
	"customers:read",
	"localcharges:read",
	"requests:read",
}

package endpoints

// Permission names checked by the endpoints. The catalog rows seeded into
// permission_definitions mirror this list.
const (
	PermRolesRead     = "roles:read"
	PermRolesManage   = "roles:manage"
	PermRolesAssign   = "roles:assign"
	PermUsersRead     = "users:read"
	PermContentRead   = "content:read"
	PermContentManage = "content:manage"
	PermAttemptsRead  = "attempts:read"
)

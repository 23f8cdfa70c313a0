package rbac

//go:generate go run github.com/dmarkham/enumer -type Scope -trimprefix Scope -transform lower -json -text -output scope.gen.go

// Scope is the context at which a role assignment applies.
type Scope int

const (
	// ScopeGlobal applies everywhere. As a requested scope in
	// CheckPermission it means "no scope requested".
	ScopeGlobal Scope = iota
	ScopeOrganization
	ScopeGroup
)

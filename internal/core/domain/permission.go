package domain

// PermissionSet is the fixed group of capability flags gating UI actions.
// It is derived state, never independently authoritative.
type PermissionSet struct {
	CanUpload  bool `json:"canUpload"`
	CanComment bool `json:"canComment"`
	CanRate    bool `json:"canRate"`
}

// PermissionSource is the tagged union of the two places capabilities can
// come from: an explicit payload supplied by the backend at login, or the
// user's role when no payload is present.
type PermissionSource interface {
	permissionSource()
}

// ExplicitPermissions carries the backend's capability payload verbatim.
type ExplicitPermissions struct {
	Set PermissionSet
}

// RoleDerivedPermissions applies the fallback role rule.
type RoleDerivedPermissions struct {
	Role Role
}

func (ExplicitPermissions) permissionSource()    {}
func (RoleDerivedPermissions) permissionSource() {}

// ResolvePermissions resolves a PermissionSource with a single exhaustive
// match. The fallback rule denies creators commenting and rating
// unconditionally; callers must not soften this without a backend change.
func ResolvePermissions(src PermissionSource) PermissionSet {
	switch s := src.(type) {
	case ExplicitPermissions:
		return s.Set
	case RoleDerivedPermissions:
		return PermissionSet{
			CanUpload:  s.Role == RoleCreator,
			CanComment: s.Role == RoleConsumer,
			CanRate:    s.Role == RoleConsumer,
		}
	default:
		return PermissionSet{}
	}
}

// DerivePermissions maps a user to its capability flags. Pure and
// synchronous; never called as part of a network round trip.
func DerivePermissions(user *User) PermissionSet {
	if user == nil {
		return PermissionSet{}
	}
	if user.Permissions != nil {
		return ResolvePermissions(ExplicitPermissions{Set: *user.Permissions})
	}
	return ResolvePermissions(RoleDerivedPermissions{Role: user.Role})
}

package domain

type UserID string

// Role is the account type assigned at registration. Consumers watch, rate
// and comment; creators upload.
type Role string

const (
	RoleConsumer Role = "consumer"
	RoleCreator  Role = "creator"
)

// ParseRole converts a string to a Role, defaulting to consumer.
func ParseRole(s string) Role {
	if s == string(RoleCreator) {
		return RoleCreator
	}
	return RoleConsumer
}

// Valid returns true if the role is a recognised value.
func (r Role) Valid() bool {
	return r == RoleConsumer || r == RoleCreator
}

// User is the backend's account record. It is replaced wholesale on login
// and never partially mutated. Permissions is the optional explicit
// capability payload some backends attach to the login response.
type User struct {
	ID          UserID         `json:"id"`
	Username    string         `json:"username"`
	Email       string         `json:"email"`
	Role        Role           `json:"role"`
	Permissions *PermissionSet `json:"permissions,omitempty"`
}

package identity

// Role distinguishes the fixed administrator from a club member.
type Role string

const (
	RoleAdmin  Role = "admin"
	RolePlayer Role = "player"
)

// Identity is the result of credential resolution. PlayerID is set only for
// the player role.
type Identity struct {
	Role     Role
	Username string
	PlayerID string
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

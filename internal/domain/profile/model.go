package profile

import (
	"fmt"
	"strings"
	"time"
)

// Role grants increasing capability: player < moderator < admin.
type Role string

const (
	RolePlayer    Role = "player"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

var roleRank = map[Role]int{
	RolePlayer:    1,
	RoleModerator: 2,
	RoleAdmin:     3,
}

func ParseRole(v string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(v)))
	if _, ok := roleRank[role]; !ok {
		return "", fmt.Errorf("invalid role %q: valid values are %s, %s, %s", v, RolePlayer, RoleModerator, RoleAdmin)
	}
	return role, nil
}

// AtLeast reports whether the role grants the capabilities of min.
func (r Role) AtLeast(min Role) bool {
	return roleRank[r] >= roleRank[min]
}

func (r Role) CanModerate() bool {
	return r.AtLeast(RoleModerator)
}

func (r Role) CanAdminister() bool {
	return r.AtLeast(RoleAdmin)
}

// Profile is a community member identity.
type Profile struct {
	ID        string
	Username  string
	AvatarURL string
	Bio       string
	Role      Role
	CreatedAt time.Time
}

func (p Profile) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("profile id is required")
	}
	if p.Username == "" {
		return fmt.Errorf("profile username is required")
	}
	if _, err := ParseRole(string(p.Role)); err != nil {
		return err
	}

	return nil
}

// Principal is the resolved identity of an authenticated caller, produced by
// the account service introspection and carried through request context.
type Principal struct {
	UserID   string
	Username string
	Role     Role
}

package models

import (
	"time"

	"github.com/uptrace/bun"

	groupuserv1 "github.com/murmur-im/groupuser/api/groupuser/v1"
)

// Role is the stored membership role. The set is closed; anything else
// in the column is a data corruption caught by Valid().
type Role string

const (
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
	RoleMember  Role = "member"
)

// Valid reports whether r is inside the closed role domain.
func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleManager || r == RoleMember
}

// Rank returns the authority order of the role: owner > manager >
// member. Unknown roles rank below member.
func (r Role) Rank() int {
	switch r {
	case RoleOwner:
		return 3
	case RoleManager:
		return 2
	case RoleMember:
		return 1
	default:
		return 0
	}
}

// Wire converts the stored role to its wire enum value.
func (r Role) Wire() groupuserv1.MemberType {
	switch r {
	case RoleOwner:
		return groupuserv1.MemberTypeOwner
	case RoleManager:
		return groupuserv1.MemberTypeManager
	default:
		return groupuserv1.MemberTypeMember
	}
}

// RoleFromWire converts a wire enum value to the stored role. The
// second return is false when the value is outside the closed domain.
func RoleFromWire(t groupuserv1.MemberType) (Role, bool) {
	switch t {
	case groupuserv1.MemberTypeOwner:
		return RoleOwner, true
	case groupuserv1.MemberTypeManager:
		return RoleManager, true
	case groupuserv1.MemberTypeMember:
		return RoleMember, true
	default:
		return "", false
	}
}

// Group is a named container of memberships with an optional join
// password. PasswordHash is a bcrypt hash of the join password; the
// empty join password is hashed too, so the column is never empty.
type Group struct {
	bun.BaseModel `bun:"table:groups,alias:g"`

	ID           int64     `bun:"id,pk,autoincrement"`
	Name         string    `bun:"name,notnull"`
	PasswordHash string    `bun:"password_hash,notnull"`
	OwnerUID     int64     `bun:"owner_uid,notnull"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// GroupMember is one (group, user) membership row. The unique index on
// (group_id, uid) is the storage-level duplicate-membership backstop.
type GroupMember struct {
	bun.BaseModel `bun:"table:group_members,alias:gm"`

	ID       int64     `bun:"id,pk,autoincrement"`
	GroupID  int64     `bun:"group_id,notnull"`
	UID      int64     `bun:"uid,notnull"`
	Role     Role      `bun:"role,notnull"`
	JoinedAt time.Time `bun:"joined_at,notnull,default:current_timestamp"`
}

// Package repository exposes persistence operations for groups and
// their memberships. Implementations must make each operation atomic
// with respect to a single group; callers needing compound
// check-then-mutate sequences serialize them with the group service's
// per-group lock.
package repository

import (
	"context"
	"errors"

	"github.com/murmur-im/groupuser/internal/db/models"
)

var (
	// ErrGroupNotFound is returned when a group id has no row.
	ErrGroupNotFound = errors.New("group not found")

	// ErrNotMember is returned when a (group, uid) membership is absent.
	ErrNotMember = errors.New("user is not a member of the group")

	// ErrAlreadyMember is returned on duplicate membership inserts.
	ErrAlreadyMember = errors.New("user is already a member of the group")
)

// GroupRepository exposes persistence operations for groups.
type GroupRepository interface {
	// CreateGroup inserts the group row and the owner membership in one
	// transaction and returns the stored group with its assigned id.
	CreateGroup(ctx context.Context, name, passwordHash string, ownerUID int64) (*models.Group, error)

	GetGroup(ctx context.Context, groupID int64) (*models.Group, error)
	UpdateGroupName(ctx context.Context, groupID int64, name string) error
	UpdateGroupPassword(ctx context.Context, groupID int64, passwordHash string) error

	ListMembers(ctx context.Context, groupID int64) ([]models.GroupMember, error)
	GetMembership(ctx context.Context, groupID, uid int64) (*models.GroupMember, error)
	AddMembership(ctx context.Context, groupID, uid int64, role models.Role) error
	RemoveMembership(ctx context.Context, groupID, uid int64) error
	SetMembershipRole(ctx context.Context, groupID, uid int64, role models.Role) error

	// ListGroupsByUID returns the groups a user belongs to. Unknown uids
	// yield an empty slice, not an error.
	ListGroupsByUID(ctx context.Context, uid int64) ([]models.Group, error)
}

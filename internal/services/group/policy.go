package group

import (
	"github.com/murmur-im/groupuser/internal/db/models"
)

// Authority rules, centralized so handlers never compare role names.
// The role order is owner > manager > member > none; models.Role.Rank
// encodes it.

// canManageGroup reports whether role may rename the group.
func canManageGroup(role models.Role) bool {
	return role.Rank() >= models.RoleManager.Rank()
}

// canChangePassword reports whether role may change the join password.
// Owner only: managers administer membership, not the group's lock.
func canChangePassword(role models.Role) bool {
	return role == models.RoleOwner
}

// canAssignRoles reports whether role may promote or demote members.
func canAssignRoles(role models.Role) bool {
	return role == models.RoleOwner
}

// canKick reports whether a caller may remove target from the group.
// Self-removal (leave) is always permitted, for the owner too. Beyond
// that the owner removes any non-owner, and a manager removes plain
// members only.
func canKick(caller, target models.Role, self bool) bool {
	if self {
		return true
	}
	if target == models.RoleOwner {
		return false
	}
	if caller == models.RoleOwner {
		return true
	}
	return caller == models.RoleManager && target == models.RoleMember
}

// assignableRole reports whether a role may be given via SetUserType.
// Ownership is not transferable through this operation.
func assignableRole(role models.Role) bool {
	return role == models.RoleManager || role == models.RoleMember
}

// Package group implements the group-membership state machine: the
// policy engine deciding who may change what, backed by the repository
// for persistence and the resolver for identity lookups.
//
// Every mutating operation runs under a per-group exclusive lock, so
// compound check-then-mutate sequences observe a stable group. All
// authority checks happen before any state mutation; on a denial the
// group is untouched.
package group

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/murmur-im/groupuser/internal/db/models"
	"github.com/murmur-im/groupuser/internal/repository"
	"github.com/murmur-im/groupuser/internal/resolver"
)

// MemberInfo is one resolved roster entry: the membership row joined
// with the username from the User service.
type MemberInfo struct {
	UID      int64
	Username string
	Role     models.Role
}

// Service is the policy engine for groups and memberships.
type Service struct {
	repo  repository.GroupRepository
	users resolver.Resolver

	roster *rosterCache
	locks  *keyedMutex
}

// NewService constructs the group service.
func NewService(repo repository.GroupRepository, users resolver.Resolver) *Service {
	return &Service{
		repo:   repo,
		users:  users,
		roster: newRosterCache(),
		locks:  newKeyedMutex(),
	}
}

// Create makes a new group owned by uid. The group starts with the
// empty join password ("open join"). The owner must exist in the User
// service.
func (s *Service) Create(ctx context.Context, name string, uid int64) (*models.Group, error) {
	if _, err := s.users.UsernameByUID(ctx, uid); err != nil {
		return nil, fmt.Errorf("resolve owner: %w", err)
	}

	hash, err := hashPassword("")
	if err != nil {
		return nil, err
	}
	group, err := s.repo.CreateGroup(ctx, name, hash, uid)
	if err != nil {
		return nil, err
	}
	return group, nil
}

// PublicInfo returns the group row. No authorization: name and
// creation time are public.
func (s *Service) PublicInfo(ctx context.Context, groupID int64) (*models.Group, error) {
	return s.repo.GetGroup(ctx, groupID)
}

// Roster returns the resolved member list. The caller must be a member
// of the group.
func (s *Service) Roster(ctx context.Context, groupID, callerUID int64) ([]MemberInfo, error) {
	if _, err := s.repo.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	members, err := s.loadRoster(ctx, groupID)
	if err != nil {
		return nil, err
	}

	caller := findMember(members, callerUID)
	if caller == nil {
		return nil, ErrPermissionDenied
	}

	infos := make([]MemberInfo, 0, len(members))
	for _, m := range members {
		name, err := s.users.UsernameByUID(ctx, m.UID)
		if err != nil {
			return nil, fmt.Errorf("resolve member %d: %w", m.UID, err)
		}
		infos = append(infos, MemberInfo{UID: m.UID, Username: name, Role: m.Role})
	}
	return infos, nil
}

// Join adds uid to the group as a plain member after an exact password
// match. The empty password admits only when the group's password is
// empty too.
func (s *Service) Join(ctx context.Context, groupID int64, password string, uid int64) error {
	unlock := s.locks.Lock(groupID)
	defer unlock()

	group, err := s.repo.GetGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if err := checkPassword(group.PasswordHash, password); err != nil {
		return err
	}
	if _, err := s.users.UsernameByUID(ctx, uid); err != nil {
		return fmt.Errorf("resolve joiner: %w", err)
	}
	if err := s.repo.AddMembership(ctx, groupID, uid, models.RoleMember); err != nil {
		return err
	}
	s.roster.Invalidate(groupID)
	return nil
}

// Invite adds the named user to the group as a plain member, bypassing
// the join password. Any current member may invite; the target must
// exist and must not be a member yet (inviting yourself is a duplicate
// by definition).
func (s *Service) Invite(ctx context.Context, groupID, callerUID int64, targetUsername string) error {
	unlock := s.locks.Lock(groupID)
	defer unlock()

	targetUID, err := s.users.UIDByUsername(ctx, targetUsername)
	if err != nil {
		return fmt.Errorf("resolve invitee: %w", err)
	}
	if _, err := s.repo.GetGroup(ctx, groupID); err != nil {
		return err
	}
	if _, err := s.callerMembership(ctx, groupID, callerUID); err != nil {
		return err
	}
	if err := s.repo.AddMembership(ctx, groupID, targetUID, models.RoleMember); err != nil {
		return err
	}
	s.roster.Invalidate(groupID)
	return nil
}

// Kick removes the named user from the group. Leaving is kicking
// yourself; the same authority table covers both (see canKick).
func (s *Service) Kick(ctx context.Context, groupID, callerUID int64, targetUsername string) error {
	unlock := s.locks.Lock(groupID)
	defer unlock()

	targetUID, err := s.users.UIDByUsername(ctx, targetUsername)
	if err != nil {
		return fmt.Errorf("resolve kick target: %w", err)
	}
	if _, err := s.repo.GetGroup(ctx, groupID); err != nil {
		return err
	}
	caller, err := s.callerMembership(ctx, groupID, callerUID)
	if err != nil {
		return err
	}
	target, err := s.repo.GetMembership(ctx, groupID, targetUID)
	if err != nil {
		return err
	}
	if !canKick(caller.Role, target.Role, callerUID == targetUID) {
		return ErrPermissionDenied
	}
	if err := s.repo.RemoveMembership(ctx, groupID, targetUID); err != nil {
		return err
	}
	s.roster.Invalidate(groupID)
	return nil
}

// Rename changes the group name. Managers and the owner may rename.
func (s *Service) Rename(ctx context.Context, groupID, callerUID int64, name string) error {
	unlock := s.locks.Lock(groupID)
	defer unlock()

	if _, err := s.repo.GetGroup(ctx, groupID); err != nil {
		return err
	}
	caller, err := s.callerMembership(ctx, groupID, callerUID)
	if err != nil {
		return err
	}
	if !canManageGroup(caller.Role) {
		return ErrPermissionDenied
	}
	return s.repo.UpdateGroupName(ctx, groupID, name)
}

// ChangePassword replaces the join password. Owner only.
func (s *Service) ChangePassword(ctx context.Context, groupID, callerUID int64, password string) error {
	unlock := s.locks.Lock(groupID)
	defer unlock()

	if _, err := s.repo.GetGroup(ctx, groupID); err != nil {
		return err
	}
	caller, err := s.callerMembership(ctx, groupID, callerUID)
	if err != nil {
		return err
	}
	if !canChangePassword(caller.Role) {
		return ErrPermissionDenied
	}
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	return s.repo.UpdateGroupPassword(ctx, groupID, hash)
}

// SetRole promotes or demotes the named member. Owner only; ownership
// itself is not assignable and the owner cannot retype themselves.
func (s *Service) SetRole(ctx context.Context, groupID, callerUID int64, targetUsername string, role models.Role) error {
	if !assignableRole(role) {
		return ErrInvalidRole
	}

	unlock := s.locks.Lock(groupID)
	defer unlock()

	if _, err := s.repo.GetGroup(ctx, groupID); err != nil {
		return err
	}
	caller, err := s.callerMembership(ctx, groupID, callerUID)
	if err != nil {
		return err
	}
	if !canAssignRoles(caller.Role) {
		return ErrPermissionDenied
	}
	targetUID, err := s.users.UIDByUsername(ctx, targetUsername)
	if err != nil {
		return fmt.Errorf("resolve role target: %w", err)
	}
	if targetUID == callerUID {
		return ErrPermissionDenied
	}
	if _, err := s.repo.GetMembership(ctx, groupID, targetUID); err != nil {
		return err
	}
	if err := s.repo.SetMembershipRole(ctx, groupID, targetUID, role); err != nil {
		return err
	}
	s.roster.Invalidate(groupID)
	return nil
}

// GroupsByUID lists the groups a user belongs to. Unknown uids yield
// an empty list without consulting the resolver.
func (s *Service) GroupsByUID(ctx context.Context, uid int64) ([]models.Group, error) {
	return s.repo.ListGroupsByUID(ctx, uid)
}

// loadRoster returns the member snapshot for the group, from cache
// when fresh. The miss path reads and stores under the group lock:
// a fill that ran unlocked could snapshot the pre-mutation roster,
// lose the CPU while a mutation commits and invalidates, and then
// store the stale snapshot for a full TTL. Holding the lock across
// read+store means no mutation can interleave, so a stored snapshot
// always reflects every committed mutation.
func (s *Service) loadRoster(ctx context.Context, groupID int64) ([]models.GroupMember, error) {
	if members, ok := s.roster.Get(groupID); ok {
		return members, nil
	}

	unlock := s.locks.Lock(groupID)
	defer unlock()

	if members, ok := s.roster.Get(groupID); ok {
		return members, nil
	}
	members, err := s.repo.ListMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}
	s.roster.Put(groupID, members)
	return members, nil
}

// callerMembership loads the caller's membership row, mapping absence
// to a permission denial: outsiders get the same answer as members
// lacking authority.
func (s *Service) callerMembership(ctx context.Context, groupID, uid int64) (*models.GroupMember, error) {
	member, err := s.repo.GetMembership(ctx, groupID, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotMember) {
			return nil, ErrPermissionDenied
		}
		return nil, err
	}
	return member, nil
}

func findMember(members []models.GroupMember, uid int64) *models.GroupMember {
	for i := range members {
		if members[i].UID == uid {
			return &members[i]
		}
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func checkPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrWrongPassword
		}
		return fmt.Errorf("check password: %w", err)
	}
	return nil
}

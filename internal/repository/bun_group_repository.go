package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/murmur-im/groupuser/internal/db/models"
)

// BunGroupRepository implements GroupRepository using Bun ORM.
type BunGroupRepository struct {
	db *bun.DB
}

// NewBunGroupRepository creates a new Bun-based group repository.
func NewBunGroupRepository(db *bun.DB) *BunGroupRepository {
	return &BunGroupRepository{db: db}
}

// CreateGroup inserts the group row and the owner membership in one
// transaction. A failed owner insert rolls back the group row, so a
// group is never visible without its owner.
func (r *BunGroupRepository) CreateGroup(ctx context.Context, name, passwordHash string, ownerUID int64) (*models.Group, error) {
	group := &models.Group{
		Name:         name,
		PasswordHash: passwordHash,
		OwnerUID:     ownerUID,
		CreatedAt:    time.Now(),
	}

	err := r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(group).Exec(ctx); err != nil {
			return fmt.Errorf("insert group: %w", err)
		}
		owner := &models.GroupMember{
			GroupID:  group.ID,
			UID:      ownerUID,
			Role:     models.RoleOwner,
			JoinedAt: group.CreatedAt,
		}
		if _, err := tx.NewInsert().Model(owner).Exec(ctx); err != nil {
			return fmt.Errorf("insert owner membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create group: %w", err)
	}
	return group, nil
}

// GetGroup retrieves a group by id.
func (r *BunGroupRepository) GetGroup(ctx context.Context, groupID int64) (*models.Group, error) {
	group := new(models.Group)
	err := r.db.NewSelect().
		Model(group).
		Where("id = ?", groupID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("get group: %w", err)
	}
	return group, nil
}

// UpdateGroupName renames a group.
func (r *BunGroupRepository) UpdateGroupName(ctx context.Context, groupID int64, name string) error {
	res, err := r.db.NewUpdate().
		Model((*models.Group)(nil)).
		Set("name = ?", name).
		Where("id = ?", groupID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update group name: %w", err)
	}
	return requireRows(res, ErrGroupNotFound)
}

// UpdateGroupPassword replaces the stored join-password hash.
func (r *BunGroupRepository) UpdateGroupPassword(ctx context.Context, groupID int64, passwordHash string) error {
	res, err := r.db.NewUpdate().
		Model((*models.Group)(nil)).
		Set("password_hash = ?", passwordHash).
		Where("id = ?", groupID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update group password: %w", err)
	}
	return requireRows(res, ErrGroupNotFound)
}

// ListMembers returns every membership row of a group. Order is
// unspecified; callers sort if they need determinism.
func (r *BunGroupRepository) ListMembers(ctx context.Context, groupID int64) ([]models.GroupMember, error) {
	var members []models.GroupMember
	err := r.db.NewSelect().
		Model(&members).
		Where("group_id = ?", groupID).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

// GetMembership retrieves a single membership row.
func (r *BunGroupRepository) GetMembership(ctx context.Context, groupID, uid int64) (*models.GroupMember, error) {
	member := new(models.GroupMember)
	err := r.db.NewSelect().
		Model(member).
		Where("group_id = ?", groupID).
		Where("uid = ?", uid).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotMember
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}
	return member, nil
}

// AddMembership inserts a membership row, failing with ErrAlreadyMember
// when the (group, uid) pair exists. The check and insert run in one
// transaction; the unique index is the backstop against writers that
// bypass the per-group lock.
func (r *BunGroupRepository) AddMembership(ctx context.Context, groupID, uid int64, role models.Role) error {
	err := r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*models.GroupMember)(nil)).
			Where("group_id = ?", groupID).
			Where("uid = ?", uid).
			Exists(ctx)
		if err != nil {
			return fmt.Errorf("check membership: %w", err)
		}
		if exists {
			return ErrAlreadyMember
		}
		member := &models.GroupMember{
			GroupID:  groupID,
			UID:      uid,
			Role:     role,
			JoinedAt: time.Now(),
		}
		if _, err := tx.NewInsert().Model(member).Exec(ctx); err != nil {
			return fmt.Errorf("insert membership: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyMember) {
			return ErrAlreadyMember
		}
		return fmt.Errorf("add membership: %w", err)
	}
	return nil
}

// RemoveMembership deletes a membership row.
func (r *BunGroupRepository) RemoveMembership(ctx context.Context, groupID, uid int64) error {
	res, err := r.db.NewDelete().
		Model((*models.GroupMember)(nil)).
		Where("group_id = ?", groupID).
		Where("uid = ?", uid).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("remove membership: %w", err)
	}
	return requireRows(res, ErrNotMember)
}

// SetMembershipRole updates the role of an existing membership.
func (r *BunGroupRepository) SetMembershipRole(ctx context.Context, groupID, uid int64, role models.Role) error {
	res, err := r.db.NewUpdate().
		Model((*models.GroupMember)(nil)).
		Set("role = ?", role).
		Where("group_id = ?", groupID).
		Where("uid = ?", uid).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set membership role: %w", err)
	}
	return requireRows(res, ErrNotMember)
}

// ListGroupsByUID returns the groups a user belongs to, newest first.
func (r *BunGroupRepository) ListGroupsByUID(ctx context.Context, uid int64) ([]models.Group, error) {
	var groups []models.Group
	err := r.db.NewSelect().
		Model(&groups).
		Join("JOIN group_members AS gm ON gm.group_id = g.id").
		Where("gm.uid = ?", uid).
		Order("g.id DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list groups by uid: %w", err)
	}
	return groups, nil
}

// requireRows maps a zero-row mutation onto the given sentinel.
func requireRows(res sql.Result, missing error) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return missing
	}
	return nil
}

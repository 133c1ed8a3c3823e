package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	"github.com/murmur-im/groupuser/internal/db/bunx"
	"github.com/murmur-im/groupuser/internal/db/models"
	"github.com/murmur-im/groupuser/internal/migrations"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *bun.DB {
	t.Helper()

	db, err := bunx.NewDB(":memory:", 0)
	require.NoError(t, err)
	t.Cleanup(func() { bunx.Close(db) })

	ctx := context.Background()
	migrator := migrate.NewMigrator(db, migrations.Migrations)
	require.NoError(t, migrator.Init(ctx))
	_, err = migrator.Migrate(ctx)
	require.NoError(t, err)

	return db
}

func TestBunGroupRepository_CreateGroup(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBunGroupRepository(db)
	ctx := context.Background()

	group, err := repo.CreateGroup(ctx, "alpha", "hash", 101)
	require.NoError(t, err)
	assert.NotZero(t, group.ID)
	assert.Equal(t, "alpha", group.Name)
	assert.Equal(t, int64(101), group.OwnerUID)

	// Creator must be the sole owner membership.
	members, err := repo.ListMembers(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, int64(101), members[0].UID)
	assert.Equal(t, models.RoleOwner, members[0].Role)

	// Fresh ids per group.
	second, err := repo.CreateGroup(ctx, "beta", "hash", 101)
	require.NoError(t, err)
	assert.NotEqual(t, group.ID, second.ID)
}

func TestBunGroupRepository_GetGroup(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBunGroupRepository(db)
	ctx := context.Background()

	group, err := repo.CreateGroup(ctx, "alpha", "hash", 101)
	require.NoError(t, err)

	got, err := repo.GetGroup(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, group.Name, got.Name)
	assert.Equal(t, group.PasswordHash, got.PasswordHash)

	_, err = repo.GetGroup(ctx, 1145141919)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestBunGroupRepository_UpdateGroup(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBunGroupRepository(db)
	ctx := context.Background()

	group, err := repo.CreateGroup(ctx, "alpha", "hash", 101)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateGroupName(ctx, group.ID, "renamed"))
	require.NoError(t, repo.UpdateGroupPassword(ctx, group.ID, "newhash"))

	got, err := repo.GetGroup(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
	assert.Equal(t, "newhash", got.PasswordHash)

	assert.ErrorIs(t, repo.UpdateGroupName(ctx, 9999, "x"), ErrGroupNotFound)
	assert.ErrorIs(t, repo.UpdateGroupPassword(ctx, 9999, "x"), ErrGroupNotFound)
}

func TestBunGroupRepository_Memberships(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBunGroupRepository(db)
	ctx := context.Background()

	group, err := repo.CreateGroup(ctx, "alpha", "hash", 101)
	require.NoError(t, err)

	require.NoError(t, repo.AddMembership(ctx, group.ID, 102, models.RoleMember))

	t.Run("duplicate add fails without altering state", func(t *testing.T) {
		err := repo.AddMembership(ctx, group.ID, 102, models.RoleMember)
		assert.ErrorIs(t, err, ErrAlreadyMember)

		members, err := repo.ListMembers(ctx, group.ID)
		require.NoError(t, err)
		assert.Len(t, members, 2)
	})

	t.Run("get membership", func(t *testing.T) {
		member, err := repo.GetMembership(ctx, group.ID, 102)
		require.NoError(t, err)
		assert.Equal(t, models.RoleMember, member.Role)

		_, err = repo.GetMembership(ctx, group.ID, 999)
		assert.ErrorIs(t, err, ErrNotMember)
	})

	t.Run("set role", func(t *testing.T) {
		require.NoError(t, repo.SetMembershipRole(ctx, group.ID, 102, models.RoleManager))
		member, err := repo.GetMembership(ctx, group.ID, 102)
		require.NoError(t, err)
		assert.Equal(t, models.RoleManager, member.Role)

		err = repo.SetMembershipRole(ctx, group.ID, 999, models.RoleManager)
		assert.ErrorIs(t, err, ErrNotMember)
	})

	t.Run("remove membership", func(t *testing.T) {
		require.NoError(t, repo.RemoveMembership(ctx, group.ID, 102))
		_, err := repo.GetMembership(ctx, group.ID, 102)
		assert.ErrorIs(t, err, ErrNotMember)

		err = repo.RemoveMembership(ctx, group.ID, 102)
		assert.ErrorIs(t, err, ErrNotMember)
	})
}

func TestBunGroupRepository_ListGroupsByUID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBunGroupRepository(db)
	ctx := context.Background()

	first, err := repo.CreateGroup(ctx, "alpha", "hash", 104)
	require.NoError(t, err)
	second, err := repo.CreateGroup(ctx, "beta", "hash", 101)
	require.NoError(t, err)
	require.NoError(t, repo.AddMembership(ctx, second.ID, 104, models.RoleMember))

	groups, err := repo.ListGroupsByUID(ctx, 104)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	ids := []int64{groups[0].ID, groups[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)

	// Unknown uid is an empty list, not an error.
	groups, err = repo.ListGroupsByUID(ctx, 424242)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

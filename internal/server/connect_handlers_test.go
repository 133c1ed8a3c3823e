package server

import (
	"context"
	"fmt"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun/migrate"

	groupuserv1 "github.com/murmur-im/groupuser/api/groupuser/v1"
	"github.com/murmur-im/groupuser/internal/db/bunx"
	"github.com/murmur-im/groupuser/internal/migrations"
	"github.com/murmur-im/groupuser/internal/repository"
	"github.com/murmur-im/groupuser/internal/resolver"
	groupsvc "github.com/murmur-im/groupuser/internal/services/group"
)

// fakeResolver is a User service double with a static population. When
// down is set, every lookup fails as unavailable.
type fakeResolver struct {
	byName map[string]int64
	byUID  map[int64]string
	down   bool
}

func newFakeResolver(users map[string]int64) *fakeResolver {
	r := &fakeResolver{byName: users, byUID: make(map[int64]string, len(users))}
	for name, uid := range users {
		r.byUID[uid] = name
	}
	return r
}

func (r *fakeResolver) UIDByUsername(_ context.Context, username string) (int64, error) {
	if r.down {
		return 0, fmt.Errorf("%w: connection refused", resolver.ErrUnavailable)
	}
	uid, ok := r.byName[username]
	if !ok {
		return 0, fmt.Errorf("%w: %s", resolver.ErrUnknownUser, username)
	}
	return uid, nil
}

func (r *fakeResolver) UsernameByUID(_ context.Context, uid int64) (string, error) {
	if r.down {
		return "", fmt.Errorf("%w: connection refused", resolver.ErrUnavailable)
	}
	name, ok := r.byUID[uid]
	if !ok {
		return "", fmt.Errorf("%w: uid %d", resolver.ErrUnknownUser, uid)
	}
	return name, nil
}

// setupHandler wires a handler over an in-memory SQLite store and a
// static user population.
func setupHandler(t *testing.T) (*GroupUserServiceHandler, *fakeResolver) {
	t.Helper()

	db, err := bunx.NewDB(":memory:", 0)
	require.NoError(t, err)
	t.Cleanup(func() { bunx.Close(db) })

	ctx := context.Background()
	migrator := migrate.NewMigrator(db, migrations.Migrations)
	require.NoError(t, migrator.Init(ctx))
	_, err = migrator.Migrate(ctx)
	require.NoError(t, err)

	res := newFakeResolver(map[string]int64{
		"alice": 1,
		"bob":   2,
		"carol": 3,
	})
	svc := groupsvc.NewService(repository.NewBunGroupRepository(db), res)
	return NewGroupUserServiceHandler(svc), res
}

// mustCreateGroup creates a group through the handler and returns its id.
func mustCreateGroup(t *testing.T, h *GroupUserServiceHandler, name string, uid int64) int64 {
	t.Helper()
	resp, err := h.CreateGroup(context.Background(), connect.NewRequest(&groupuserv1.CreateGroupRequest{
		Name: name,
		UID:  uid,
	}))
	require.NoError(t, err)
	require.Equal(t, groupuserv1.CodeSuccess, resp.Msg.Result.Code, resp.Msg.Result.Msg)
	return resp.Msg.GroupID
}

func TestPing(t *testing.T) {
	h, _ := setupHandler(t)

	resp, err := h.Ping(context.Background(), connect.NewRequest(&groupuserv1.PingRequest{}))
	require.NoError(t, err)
	assert.NotNil(t, resp.Msg)
}

func TestCreateGroupHandler(t *testing.T) {
	h, _ := setupHandler(t)
	ctx := context.Background()

	groupID := mustCreateGroup(t, h, "reading club", 1)
	assert.Positive(t, groupID)

	// Missing fields never reach the service.
	resp, err := h.CreateGroup(ctx, connect.NewRequest(&groupuserv1.CreateGroupRequest{UID: 1}))
	require.NoError(t, err)
	assert.Equal(t, groupuserv1.CodeBadArgument, resp.Msg.Result.Code)

	// Unregistered owners are rejected.
	resp, err = h.CreateGroup(ctx, connect.NewRequest(&groupuserv1.CreateGroupRequest{Name: "x", UID: 999}))
	require.NoError(t, err)
	assert.Equal(t, groupuserv1.CodeNotFound, resp.Msg.Result.Code)
}

func TestGetGroupPublicInfoHandler(t *testing.T) {
	h, _ := setupHandler(t)
	ctx := context.Background()

	groupID := mustCreateGroup(t, h, "announcements", 1)

	resp, err := h.GetGroupPublicInfo(ctx, connect.NewRequest(&groupuserv1.GetGroupPublicInfoRequest{
		GroupID: groupID,
	}))
	require.NoError(t, err)
	require.Equal(t, groupuserv1.CodeSuccess, resp.Msg.Result.Code)
	assert.Equal(t, groupID, resp.Msg.GroupID)
	assert.Equal(t, "announcements", resp.Msg.Name)
	assert.NotZero(t, resp.Msg.CreatedAt)

	resp, err = h.GetGroupPublicInfo(ctx, connect.NewRequest(&groupuserv1.GetGroupPublicInfoRequest{
		GroupID: 1145141919,
	}))
	require.NoError(t, err)
	assert.Equal(t, groupuserv1.CodeNotFound, resp.Msg.Result.Code)
}

func TestJoinGroupHandler(t *testing.T) {
	h, _ := setupHandler(t)
	ctx := context.Background()

	groupID := mustCreateGroup(t, h, "open door", 1)

	resp, err := h.JoinGroup(ctx, connect.NewRequest(&groupuserv1.JoinGroupRequest{
		GroupID: groupID, UID: 2,
	}))
	require.NoError(t, err)
	assert.Equal(t, groupuserv1.CodeSuccess, resp.Msg.Result.Code)

	// Second join is a duplicate.
	resp, err = h.JoinGroup(ctx, connect.NewRequest(&groupuserv1.JoinGroupRequest{
		GroupID: groupID, UID: 2,
	}))
	require.NoError(t, err)
	assert.Equal(t, groupuserv1.CodeAlreadyMember, resp.Msg.Result.Code)

	// Wrong password after the owner locks the group.
	lock, err := h.ChangeGroupPassword(ctx, connect.NewRequest(&groupuserv1.ChangeGroupPasswordRequest{
		GroupID: groupID, UID: 1, Password: "sesame",
	}))
	require.NoError(t, err)
	require.Equal(t, groupuserv1.CodeSuccess, lock.Msg.Result.Code)

	resp, err = h.JoinGroup(ctx, connect.NewRequest(&groupuserv1.JoinGroupRequest{
		GroupID: groupID, UID: 3, Password: "wrong",
	}))
	require.NoError(t, err)
	assert.Equal(t, groupuserv1.CodeWrongPassword, resp.Msg.Result.Code)
}

func TestGetGroupInfoHandler(t *testing.T) {
	h, _ := setupHandler(t)
	ctx := context.Background()

	groupID := mustCreateGroup(t, h, "roll call", 1)
	join, err := h.JoinGroup(ctx, connect.NewRequest(&groupuserv1.JoinGroupRequest{
		GroupID: groupID, UID: 2,
	}))
	require.NoError(t, err)
	require.Equal(t, groupuserv1.CodeSuccess, join.Msg.Result.Code)

	resp, err := h.GetGroupInfo(ctx, connect.NewRequest(&groupuserv1.GetGroupInfoRequest{
		GroupID: groupID, UID: 1,
	}))
	require.NoError(t, err)
	require.Equal(t, groupuserv1.CodeSuccess, resp.Msg.Result.Code)
	require.Len(t, resp.Msg.Members, 2)

	byName := make(map[string]groupuserv1.MemberType, 2)
	for _, m := range resp.Msg.Members {
		byName[m.Name] = m.Type
	}
	assert.Equal(t, groupuserv1.MemberTypeOwner, byName["alice"])
	assert.Equal(t, groupuserv1.MemberTypeMember, byName["bob"])

	// Outsiders cannot read the roster.
	resp, err = h.GetGroupInfo(ctx, connect.NewRequest(&groupuserv1.GetGroupInfoRequest{
		GroupID: groupID, UID: 3,
	}))
	require.NoError(t, err)
	assert.Equal(t, groupuserv1.CodeAuthDenied, resp.Msg.Result.Code)
}

func TestInviteGroupHandler(t *testing.T) {
	h, _ := setupHandler(t)
	ctx := context.Background()

	groupID := mustCreateGroup(t, h, "invitees", 1)

	resp, err := h.InviteGroup(ctx, connect.NewRequest(&groupuserv1.InviteGroupRequest{
		GroupID: groupID, UID: 1, Username: "bob",
	}))
	require.NoError(t, err)
	assert.Equal(t, groupuserv1.CodeSuccess, resp.Msg.Result.Code)

	// Unknown target username.
	resp, err = h.InviteGroup(ctx, connect.NewRequest(&groupuserv1.InviteGroupRequest{
		GroupID: groupID, UID: 1, Username: "nobody",
	}))
	require.NoError(t, err)
	assert.Equal(t, groupuserv1.CodeNotFound, resp.Msg.Result.Code)

	// Outsider caller.
	resp, err = h.InviteGroup(ctx, connect.NewRequest(&groupuserv1.InviteGroupRequest{
		GroupID: groupID, UID: 3, Username: "carol",
	}))
	require.NoError(t, err)
	assert.Equal(t, groupuserv1.CodeAuthDenied, resp.Msg.Result.Code)
}

func TestKickUserHandler(t *testing.T) {
	h, _ := setupHandler(t)
	ctx := context.Background()

	groupID := mustCreateGroup(t, h, "court", 1)
	join, err := h.JoinGroup(ctx, connect.NewRequest(&groupuserv1.JoinGroupRequest{
		GroupID: groupID, UID: 2,
	}))
	require.NoError(t, err)
	require.Equal(t, groupuserv1.CodeSuccess, join.Msg.Result.Code)

	// A plain member cannot kick the owner.
	resp, err := h.KickUser(ctx, connect.NewRequest(&groupuserv1.KickUserRequest{
		GroupID: groupID, UID: 2, Username: "alice",
	}))
	require.NoError(t, err)
	assert.Equal(t, groupuserv1.CodeAuthDenied, resp.Msg.Result.Code)

	// Kicking a non-member.
	resp, err = h.KickUser(ctx, connect.NewRequest(&groupuserv1.KickUserRequest{
		GroupID: groupID, UID: 1, Username: "carol",
	}))
	require.NoError(t, err)
	assert.Equal(t, groupuserv1.CodeNotMember, resp.Msg.Result.Code)

	// Self-kick is leaving.
	resp, err = h.KickUser(ctx, connect.NewRequest(&groupuserv1.KickUserRequest{
		GroupID: groupID, UID: 2, Username: "bob",
	}))
	require.NoError(t, err)
	assert.Equal(t, groupuserv1.CodeSuccess, resp.Msg.Result.Code)
}

func TestChangeGroupNameHandler(t *testing.T) {
	h, _ := setupHandler(t)
	ctx := context.Background()

	groupID := mustCreateGroup(t, h, "old", 1)
	join, err := h.JoinGroup(ctx, connect.NewRequest(&groupuserv1.JoinGroupRequest{
		GroupID: groupID, UID: 2,
	}))
	require.NoError(t, err)
	require.Equal(t, groupuserv1.CodeSuccess, join.Msg.Result.Code)

	// Plain members may not rename.
	resp, err := h.ChangeGroupName(ctx, connect.NewRequest(&groupuserv1.ChangeGroupNameRequest{
		GroupID: groupID, UID: 2, Name: "nope",
	}))
	require.NoError(t, err)
	assert.Equal(t, groupuserv1.CodeAuthDenied, resp.Msg.Result.Code)

	resp, err = h.ChangeGroupName(ctx, connect.NewRequest(&groupuserv1.ChangeGroupNameRequest{
		GroupID: groupID, UID: 1, Name: "new",
	}))
	require.NoError(t, err)
	assert.Equal(t, groupuserv1.CodeSuccess, resp.Msg.Result.Code)

	info, err := h.GetGroupPublicInfo(ctx, connect.NewRequest(&groupuserv1.GetGroupPublicInfoRequest{
		GroupID: groupID,
	}))
	require.NoError(t, err)
	assert.Equal(t, "new", info.Msg.Name)
}

func TestSetUserTypeHandler(t *testing.T) {
	h, _ := setupHandler(t)
	ctx := context.Background()

	groupID := mustCreateGroup(t, h, "ladder", 1)
	join, err := h.JoinGroup(ctx, connect.NewRequest(&groupuserv1.JoinGroupRequest{
		GroupID: groupID, UID: 2,
	}))
	require.NoError(t, err)
	require.Equal(t, groupuserv1.CodeSuccess, join.Msg.Result.Code)

	resp, err := h.SetUserType(ctx, connect.NewRequest(&groupuserv1.SetUserTypeRequest{
		GroupID: groupID, UID: 1, Username: "bob", Type: groupuserv1.MemberTypeManager,
	}))
	require.NoError(t, err)
	assert.Equal(t, groupuserv1.CodeSuccess, resp.Msg.Result.Code)

	// Ownership is not assignable.
	resp, err = h.SetUserType(ctx, connect.NewRequest(&groupuserv1.SetUserTypeRequest{
		GroupID: groupID, UID: 1, Username: "bob", Type: groupuserv1.MemberTypeOwner,
	}))
	require.NoError(t, err)
	assert.Equal(t, groupuserv1.CodeBadArgument, resp.Msg.Result.Code)

	// Values outside the enum are rejected before the service runs.
	resp, err = h.SetUserType(ctx, connect.NewRequest(&groupuserv1.SetUserTypeRequest{
		GroupID: groupID, UID: 1, Username: "bob", Type: groupuserv1.MemberType(42),
	}))
	require.NoError(t, err)
	assert.Equal(t, groupuserv1.CodeBadArgument, resp.Msg.Result.Code)
}

func TestGetGroupsByUIDHandler(t *testing.T) {
	h, _ := setupHandler(t)
	ctx := context.Background()

	g1 := mustCreateGroup(t, h, "first", 1)
	g2 := mustCreateGroup(t, h, "second", 1)

	resp, err := h.GetGroupsByUID(ctx, connect.NewRequest(&groupuserv1.GetGroupsByUIDRequest{UID: 1}))
	require.NoError(t, err)
	require.Equal(t, groupuserv1.CodeSuccess, resp.Msg.Result.Code)
	require.Len(t, resp.Msg.Groups, 2)

	ids := []int64{resp.Msg.Groups[0].GroupID, resp.Msg.Groups[1].GroupID}
	assert.ElementsMatch(t, []int64{g1, g2}, ids)

	// A uid with no memberships is an empty success.
	resp, err = h.GetGroupsByUID(ctx, connect.NewRequest(&groupuserv1.GetGroupsByUIDRequest{UID: 2}))
	require.NoError(t, err)
	assert.Equal(t, groupuserv1.CodeSuccess, resp.Msg.Result.Code)
	assert.Empty(t, resp.Msg.Groups)
}

func TestUpstreamOutageMapsToUpstreamCode(t *testing.T) {
	h, res := setupHandler(t)
	ctx := context.Background()

	groupID := mustCreateGroup(t, h, "fragile", 1)

	res.down = true
	resp, err := h.InviteGroup(ctx, connect.NewRequest(&groupuserv1.InviteGroupRequest{
		GroupID: groupID, UID: 1, Username: "bob",
	}))
	require.NoError(t, err)
	assert.Equal(t, groupuserv1.CodeUpstream, resp.Msg.Result.Code)
}

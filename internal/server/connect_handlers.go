package server

import (
	"context"
	"log"

	"connectrpc.com/connect"

	groupuserv1 "github.com/murmur-im/groupuser/api/groupuser/v1"
	"github.com/murmur-im/groupuser/internal/db/models"
	groupsvc "github.com/murmur-im/groupuser/internal/services/group"
)

// GroupUserServiceHandler wires the group service to the Connect RPC
// contract. It validates request shape, delegates to the service, and
// folds the outcome into the Result envelope; the RPC layer itself only
// fails on transport or codec problems.
type GroupUserServiceHandler struct {
	service *groupsvc.Service
}

// NewGroupUserServiceHandler constructs a handler backed by the
// provided service.
func NewGroupUserServiceHandler(service *groupsvc.Service) *GroupUserServiceHandler {
	return &GroupUserServiceHandler{service: service}
}

// Ping is the liveness probe.
func (h *GroupUserServiceHandler) Ping(
	_ context.Context,
	_ *connect.Request[groupuserv1.PingRequest],
) (*connect.Response[groupuserv1.Pong], error) {
	return connect.NewResponse(&groupuserv1.Pong{}), nil
}

// CreateGroup creates a group owned by the requesting uid.
func (h *GroupUserServiceHandler) CreateGroup(
	ctx context.Context,
	req *connect.Request[groupuserv1.CreateGroupRequest],
) (*connect.Response[groupuserv1.CreateGroupResponse], error) {
	if req.Msg.Name == "" || req.Msg.UID <= 0 {
		return connect.NewResponse(&groupuserv1.CreateGroupResponse{
			Result: badArgument("name and uid are required"),
		}), nil
	}

	group, err := h.service.Create(ctx, req.Msg.Name, req.Msg.UID)
	if err != nil {
		return connect.NewResponse(&groupuserv1.CreateGroupResponse{
			Result: h.failure("CreateGroup", err),
		}), nil
	}
	return connect.NewResponse(&groupuserv1.CreateGroupResponse{
		Result:  groupuserv1.Success(),
		GroupID: group.ID,
	}), nil
}

// GetGroupPublicInfo returns the group's public fields. No caller
// identity is required.
func (h *GroupUserServiceHandler) GetGroupPublicInfo(
	ctx context.Context,
	req *connect.Request[groupuserv1.GetGroupPublicInfoRequest],
) (*connect.Response[groupuserv1.GetGroupPublicInfoResponse], error) {
	if req.Msg.GroupID <= 0 {
		return connect.NewResponse(&groupuserv1.GetGroupPublicInfoResponse{
			Result: badArgument("group_id is required"),
		}), nil
	}

	group, err := h.service.PublicInfo(ctx, req.Msg.GroupID)
	if err != nil {
		return connect.NewResponse(&groupuserv1.GetGroupPublicInfoResponse{
			Result: h.failure("GetGroupPublicInfo", err),
		}), nil
	}
	return connect.NewResponse(&groupuserv1.GetGroupPublicInfoResponse{
		Result:    groupuserv1.Success(),
		GroupID:   group.ID,
		Name:      group.Name,
		CreatedAt: group.CreatedAt.Unix(),
	}), nil
}

// GetGroupInfo returns the resolved roster, members only.
func (h *GroupUserServiceHandler) GetGroupInfo(
	ctx context.Context,
	req *connect.Request[groupuserv1.GetGroupInfoRequest],
) (*connect.Response[groupuserv1.GetGroupInfoResponse], error) {
	if req.Msg.GroupID <= 0 || req.Msg.UID <= 0 {
		return connect.NewResponse(&groupuserv1.GetGroupInfoResponse{
			Result: badArgument("group_id and uid are required"),
		}), nil
	}

	members, err := h.service.Roster(ctx, req.Msg.GroupID, req.Msg.UID)
	if err != nil {
		return connect.NewResponse(&groupuserv1.GetGroupInfoResponse{
			Result: h.failure("GetGroupInfo", err),
		}), nil
	}

	objects := make([]*groupuserv1.MemberObject, 0, len(members))
	for _, m := range members {
		objects = append(objects, &groupuserv1.MemberObject{
			Name: m.Username,
			Type: m.Role.Wire(),
		})
	}
	return connect.NewResponse(&groupuserv1.GetGroupInfoResponse{
		Result:  groupuserv1.Success(),
		Members: objects,
	}), nil
}

// JoinGroup admits the caller after a password check.
func (h *GroupUserServiceHandler) JoinGroup(
	ctx context.Context,
	req *connect.Request[groupuserv1.JoinGroupRequest],
) (*connect.Response[groupuserv1.JoinGroupResponse], error) {
	if req.Msg.GroupID <= 0 || req.Msg.UID <= 0 {
		return connect.NewResponse(&groupuserv1.JoinGroupResponse{
			Result: badArgument("group_id and uid are required"),
		}), nil
	}

	err := h.service.Join(ctx, req.Msg.GroupID, req.Msg.Password, req.Msg.UID)
	return connect.NewResponse(&groupuserv1.JoinGroupResponse{
		Result: h.outcome("JoinGroup", err),
	}), nil
}

// InviteGroup adds the named user on behalf of a current member.
func (h *GroupUserServiceHandler) InviteGroup(
	ctx context.Context,
	req *connect.Request[groupuserv1.InviteGroupRequest],
) (*connect.Response[groupuserv1.InviteGroupResponse], error) {
	if req.Msg.GroupID <= 0 || req.Msg.UID <= 0 || req.Msg.Username == "" {
		return connect.NewResponse(&groupuserv1.InviteGroupResponse{
			Result: badArgument("group_id, uid and username are required"),
		}), nil
	}

	err := h.service.Invite(ctx, req.Msg.GroupID, req.Msg.UID, req.Msg.Username)
	return connect.NewResponse(&groupuserv1.InviteGroupResponse{
		Result: h.outcome("InviteGroup", err),
	}), nil
}

// KickUser removes the named user; kicking yourself is leaving.
func (h *GroupUserServiceHandler) KickUser(
	ctx context.Context,
	req *connect.Request[groupuserv1.KickUserRequest],
) (*connect.Response[groupuserv1.KickUserResponse], error) {
	if req.Msg.GroupID <= 0 || req.Msg.UID <= 0 || req.Msg.Username == "" {
		return connect.NewResponse(&groupuserv1.KickUserResponse{
			Result: badArgument("group_id, uid and username are required"),
		}), nil
	}

	err := h.service.Kick(ctx, req.Msg.GroupID, req.Msg.UID, req.Msg.Username)
	return connect.NewResponse(&groupuserv1.KickUserResponse{
		Result: h.outcome("KickUser", err),
	}), nil
}

// ChangeGroupName renames the group.
func (h *GroupUserServiceHandler) ChangeGroupName(
	ctx context.Context,
	req *connect.Request[groupuserv1.ChangeGroupNameRequest],
) (*connect.Response[groupuserv1.ChangeGroupNameResponse], error) {
	if req.Msg.GroupID <= 0 || req.Msg.UID <= 0 || req.Msg.Name == "" {
		return connect.NewResponse(&groupuserv1.ChangeGroupNameResponse{
			Result: badArgument("group_id, uid and name are required"),
		}), nil
	}

	err := h.service.Rename(ctx, req.Msg.GroupID, req.Msg.UID, req.Msg.Name)
	return connect.NewResponse(&groupuserv1.ChangeGroupNameResponse{
		Result: h.outcome("ChangeGroupName", err),
	}), nil
}

// ChangeGroupPassword replaces the join password. The empty password is
// a valid value (open join), so only ids are validated.
func (h *GroupUserServiceHandler) ChangeGroupPassword(
	ctx context.Context,
	req *connect.Request[groupuserv1.ChangeGroupPasswordRequest],
) (*connect.Response[groupuserv1.ChangeGroupPasswordResponse], error) {
	if req.Msg.GroupID <= 0 || req.Msg.UID <= 0 {
		return connect.NewResponse(&groupuserv1.ChangeGroupPasswordResponse{
			Result: badArgument("group_id and uid are required"),
		}), nil
	}

	err := h.service.ChangePassword(ctx, req.Msg.GroupID, req.Msg.UID, req.Msg.Password)
	return connect.NewResponse(&groupuserv1.ChangeGroupPasswordResponse{
		Result: h.outcome("ChangeGroupPassword", err),
	}), nil
}

// SetUserType promotes or demotes the named member.
func (h *GroupUserServiceHandler) SetUserType(
	ctx context.Context,
	req *connect.Request[groupuserv1.SetUserTypeRequest],
) (*connect.Response[groupuserv1.SetUserTypeResponse], error) {
	if req.Msg.GroupID <= 0 || req.Msg.UID <= 0 || req.Msg.Username == "" {
		return connect.NewResponse(&groupuserv1.SetUserTypeResponse{
			Result: badArgument("group_id, uid and username are required"),
		}), nil
	}
	role, ok := models.RoleFromWire(req.Msg.Type)
	if !ok {
		return connect.NewResponse(&groupuserv1.SetUserTypeResponse{
			Result: badArgument("invalid member type"),
		}), nil
	}

	err := h.service.SetRole(ctx, req.Msg.GroupID, req.Msg.UID, req.Msg.Username, role)
	return connect.NewResponse(&groupuserv1.SetUserTypeResponse{
		Result: h.outcome("SetUserType", err),
	}), nil
}

// GetGroupsByUID lists the caller's groups. Unknown uids get an empty
// list, so polling clients see registration without error handling.
func (h *GroupUserServiceHandler) GetGroupsByUID(
	ctx context.Context,
	req *connect.Request[groupuserv1.GetGroupsByUIDRequest],
) (*connect.Response[groupuserv1.GetGroupsByUIDResponse], error) {
	if req.Msg.UID <= 0 {
		return connect.NewResponse(&groupuserv1.GetGroupsByUIDResponse{
			Result: badArgument("uid is required"),
		}), nil
	}

	groups, err := h.service.GroupsByUID(ctx, req.Msg.UID)
	if err != nil {
		return connect.NewResponse(&groupuserv1.GetGroupsByUIDResponse{
			Result: h.failure("GetGroupsByUID", err),
		}), nil
	}

	summaries := make([]*groupuserv1.GroupSummary, 0, len(groups))
	for _, g := range groups {
		summaries = append(summaries, &groupuserv1.GroupSummary{
			GroupID: g.ID,
			Name:    g.Name,
		})
	}
	return connect.NewResponse(&groupuserv1.GetGroupsByUIDResponse{
		Result: groupuserv1.Success(),
		Groups: summaries,
	}), nil
}

// outcome folds a possibly-nil service error into an envelope.
func (h *GroupUserServiceHandler) outcome(op string, err error) *groupuserv1.Result {
	if err == nil {
		return groupuserv1.Success()
	}
	return h.failure(op, err)
}

// failure maps err and logs the ones that indicate a fault in the
// service or its dependencies rather than in the request.
func (h *GroupUserServiceHandler) failure(op string, err error) *groupuserv1.Result {
	result := resultFromError(err)
	if result.Code == groupuserv1.CodeInternal || result.Code == groupuserv1.CodeUpstream {
		log.Printf("%s: %v", op, err)
	}
	return result
}

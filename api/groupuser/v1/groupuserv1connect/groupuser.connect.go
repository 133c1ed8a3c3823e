// Package groupuserv1connect provides Connect bindings for the
// GroupUser service. The bindings are hand-maintained rather than
// generated: messages are plain structs encoded with the msgpack codec
// from the parent package, which every constructor installs by default.
package groupuserv1connect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	groupuserv1 "github.com/murmur-im/groupuser/api/groupuser/v1"
)

// GroupUserServiceName is the fully-qualified service name.
const GroupUserServiceName = "groupuser.v1.GroupUserService"

// Procedure paths, one per RPC. These are the request URLs under the
// mount returned by NewGroupUserServiceHandler.
const (
	GroupUserServicePingProcedure                = "/groupuser.v1.GroupUserService/Ping"
	GroupUserServiceCreateGroupProcedure         = "/groupuser.v1.GroupUserService/CreateGroup"
	GroupUserServiceGetGroupPublicInfoProcedure  = "/groupuser.v1.GroupUserService/GetGroupPublicInfo"
	GroupUserServiceGetGroupInfoProcedure        = "/groupuser.v1.GroupUserService/GetGroupInfo"
	GroupUserServiceJoinGroupProcedure           = "/groupuser.v1.GroupUserService/JoinGroup"
	GroupUserServiceInviteGroupProcedure         = "/groupuser.v1.GroupUserService/InviteGroup"
	GroupUserServiceKickUserProcedure            = "/groupuser.v1.GroupUserService/KickUser"
	GroupUserServiceChangeGroupNameProcedure     = "/groupuser.v1.GroupUserService/ChangeGroupName"
	GroupUserServiceChangeGroupPasswordProcedure = "/groupuser.v1.GroupUserService/ChangeGroupPassword"
	GroupUserServiceSetUserTypeProcedure         = "/groupuser.v1.GroupUserService/SetUserType"
	GroupUserServiceGetGroupsByUIDProcedure      = "/groupuser.v1.GroupUserService/GetGroupsByUID"
)

// GroupUserServiceHandler is the server-side contract.
type GroupUserServiceHandler interface {
	Ping(context.Context, *connect.Request[groupuserv1.PingRequest]) (*connect.Response[groupuserv1.Pong], error)
	CreateGroup(context.Context, *connect.Request[groupuserv1.CreateGroupRequest]) (*connect.Response[groupuserv1.CreateGroupResponse], error)
	GetGroupPublicInfo(context.Context, *connect.Request[groupuserv1.GetGroupPublicInfoRequest]) (*connect.Response[groupuserv1.GetGroupPublicInfoResponse], error)
	GetGroupInfo(context.Context, *connect.Request[groupuserv1.GetGroupInfoRequest]) (*connect.Response[groupuserv1.GetGroupInfoResponse], error)
	JoinGroup(context.Context, *connect.Request[groupuserv1.JoinGroupRequest]) (*connect.Response[groupuserv1.JoinGroupResponse], error)
	InviteGroup(context.Context, *connect.Request[groupuserv1.InviteGroupRequest]) (*connect.Response[groupuserv1.InviteGroupResponse], error)
	KickUser(context.Context, *connect.Request[groupuserv1.KickUserRequest]) (*connect.Response[groupuserv1.KickUserResponse], error)
	ChangeGroupName(context.Context, *connect.Request[groupuserv1.ChangeGroupNameRequest]) (*connect.Response[groupuserv1.ChangeGroupNameResponse], error)
	ChangeGroupPassword(context.Context, *connect.Request[groupuserv1.ChangeGroupPasswordRequest]) (*connect.Response[groupuserv1.ChangeGroupPasswordResponse], error)
	SetUserType(context.Context, *connect.Request[groupuserv1.SetUserTypeRequest]) (*connect.Response[groupuserv1.SetUserTypeResponse], error)
	GetGroupsByUID(context.Context, *connect.Request[groupuserv1.GetGroupsByUIDRequest]) (*connect.Response[groupuserv1.GetGroupsByUIDResponse], error)
}

// NewGroupUserServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and
// the handler itself. The msgpack codec is installed first so callers
// may still append interceptors or other options.
func NewGroupUserServiceHandler(svc GroupUserServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(groupuserv1.MsgpackCodec{})}, opts...)
	mux := http.NewServeMux()
	mux.Handle(GroupUserServicePingProcedure, connect.NewUnaryHandler(
		GroupUserServicePingProcedure, svc.Ping, opts...))
	mux.Handle(GroupUserServiceCreateGroupProcedure, connect.NewUnaryHandler(
		GroupUserServiceCreateGroupProcedure, svc.CreateGroup, opts...))
	mux.Handle(GroupUserServiceGetGroupPublicInfoProcedure, connect.NewUnaryHandler(
		GroupUserServiceGetGroupPublicInfoProcedure, svc.GetGroupPublicInfo, opts...))
	mux.Handle(GroupUserServiceGetGroupInfoProcedure, connect.NewUnaryHandler(
		GroupUserServiceGetGroupInfoProcedure, svc.GetGroupInfo, opts...))
	mux.Handle(GroupUserServiceJoinGroupProcedure, connect.NewUnaryHandler(
		GroupUserServiceJoinGroupProcedure, svc.JoinGroup, opts...))
	mux.Handle(GroupUserServiceInviteGroupProcedure, connect.NewUnaryHandler(
		GroupUserServiceInviteGroupProcedure, svc.InviteGroup, opts...))
	mux.Handle(GroupUserServiceKickUserProcedure, connect.NewUnaryHandler(
		GroupUserServiceKickUserProcedure, svc.KickUser, opts...))
	mux.Handle(GroupUserServiceChangeGroupNameProcedure, connect.NewUnaryHandler(
		GroupUserServiceChangeGroupNameProcedure, svc.ChangeGroupName, opts...))
	mux.Handle(GroupUserServiceChangeGroupPasswordProcedure, connect.NewUnaryHandler(
		GroupUserServiceChangeGroupPasswordProcedure, svc.ChangeGroupPassword, opts...))
	mux.Handle(GroupUserServiceSetUserTypeProcedure, connect.NewUnaryHandler(
		GroupUserServiceSetUserTypeProcedure, svc.SetUserType, opts...))
	mux.Handle(GroupUserServiceGetGroupsByUIDProcedure, connect.NewUnaryHandler(
		GroupUserServiceGetGroupsByUIDProcedure, svc.GetGroupsByUID, opts...))
	return "/groupuser.v1.GroupUserService/", mux
}

// GroupUserServiceClient is the client-side contract.
type GroupUserServiceClient interface {
	Ping(context.Context, *connect.Request[groupuserv1.PingRequest]) (*connect.Response[groupuserv1.Pong], error)
	CreateGroup(context.Context, *connect.Request[groupuserv1.CreateGroupRequest]) (*connect.Response[groupuserv1.CreateGroupResponse], error)
	GetGroupPublicInfo(context.Context, *connect.Request[groupuserv1.GetGroupPublicInfoRequest]) (*connect.Response[groupuserv1.GetGroupPublicInfoResponse], error)
	GetGroupInfo(context.Context, *connect.Request[groupuserv1.GetGroupInfoRequest]) (*connect.Response[groupuserv1.GetGroupInfoResponse], error)
	JoinGroup(context.Context, *connect.Request[groupuserv1.JoinGroupRequest]) (*connect.Response[groupuserv1.JoinGroupResponse], error)
	InviteGroup(context.Context, *connect.Request[groupuserv1.InviteGroupRequest]) (*connect.Response[groupuserv1.InviteGroupResponse], error)
	KickUser(context.Context, *connect.Request[groupuserv1.KickUserRequest]) (*connect.Response[groupuserv1.KickUserResponse], error)
	ChangeGroupName(context.Context, *connect.Request[groupuserv1.ChangeGroupNameRequest]) (*connect.Response[groupuserv1.ChangeGroupNameResponse], error)
	ChangeGroupPassword(context.Context, *connect.Request[groupuserv1.ChangeGroupPasswordRequest]) (*connect.Response[groupuserv1.ChangeGroupPasswordResponse], error)
	SetUserType(context.Context, *connect.Request[groupuserv1.SetUserTypeRequest]) (*connect.Response[groupuserv1.SetUserTypeResponse], error)
	GetGroupsByUID(context.Context, *connect.Request[groupuserv1.GetGroupsByUIDRequest]) (*connect.Response[groupuserv1.GetGroupsByUIDResponse], error)
}

// NewGroupUserServiceClient builds a client that speaks the gRPC
// protocol (length-prefixed binary frames over HTTP/2) with msgpack
// payloads. Options are appended after the defaults and may override
// the protocol.
func NewGroupUserServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) GroupUserServiceClient {
	opts = append([]connect.ClientOption{
		connect.WithGRPC(),
		connect.WithCodec(groupuserv1.MsgpackCodec{}),
	}, opts...)
	return &groupUserServiceClient{
		ping:                connect.NewClient[groupuserv1.PingRequest, groupuserv1.Pong](httpClient, baseURL+GroupUserServicePingProcedure, opts...),
		createGroup:         connect.NewClient[groupuserv1.CreateGroupRequest, groupuserv1.CreateGroupResponse](httpClient, baseURL+GroupUserServiceCreateGroupProcedure, opts...),
		getGroupPublicInfo:  connect.NewClient[groupuserv1.GetGroupPublicInfoRequest, groupuserv1.GetGroupPublicInfoResponse](httpClient, baseURL+GroupUserServiceGetGroupPublicInfoProcedure, opts...),
		getGroupInfo:        connect.NewClient[groupuserv1.GetGroupInfoRequest, groupuserv1.GetGroupInfoResponse](httpClient, baseURL+GroupUserServiceGetGroupInfoProcedure, opts...),
		joinGroup:           connect.NewClient[groupuserv1.JoinGroupRequest, groupuserv1.JoinGroupResponse](httpClient, baseURL+GroupUserServiceJoinGroupProcedure, opts...),
		inviteGroup:         connect.NewClient[groupuserv1.InviteGroupRequest, groupuserv1.InviteGroupResponse](httpClient, baseURL+GroupUserServiceInviteGroupProcedure, opts...),
		kickUser:            connect.NewClient[groupuserv1.KickUserRequest, groupuserv1.KickUserResponse](httpClient, baseURL+GroupUserServiceKickUserProcedure, opts...),
		changeGroupName:     connect.NewClient[groupuserv1.ChangeGroupNameRequest, groupuserv1.ChangeGroupNameResponse](httpClient, baseURL+GroupUserServiceChangeGroupNameProcedure, opts...),
		changeGroupPassword: connect.NewClient[groupuserv1.ChangeGroupPasswordRequest, groupuserv1.ChangeGroupPasswordResponse](httpClient, baseURL+GroupUserServiceChangeGroupPasswordProcedure, opts...),
		setUserType:         connect.NewClient[groupuserv1.SetUserTypeRequest, groupuserv1.SetUserTypeResponse](httpClient, baseURL+GroupUserServiceSetUserTypeProcedure, opts...),
		getGroupsByUID:      connect.NewClient[groupuserv1.GetGroupsByUIDRequest, groupuserv1.GetGroupsByUIDResponse](httpClient, baseURL+GroupUserServiceGetGroupsByUIDProcedure, opts...),
	}
}

type groupUserServiceClient struct {
	ping                *connect.Client[groupuserv1.PingRequest, groupuserv1.Pong]
	createGroup         *connect.Client[groupuserv1.CreateGroupRequest, groupuserv1.CreateGroupResponse]
	getGroupPublicInfo  *connect.Client[groupuserv1.GetGroupPublicInfoRequest, groupuserv1.GetGroupPublicInfoResponse]
	getGroupInfo        *connect.Client[groupuserv1.GetGroupInfoRequest, groupuserv1.GetGroupInfoResponse]
	joinGroup           *connect.Client[groupuserv1.JoinGroupRequest, groupuserv1.JoinGroupResponse]
	inviteGroup         *connect.Client[groupuserv1.InviteGroupRequest, groupuserv1.InviteGroupResponse]
	kickUser            *connect.Client[groupuserv1.KickUserRequest, groupuserv1.KickUserResponse]
	changeGroupName     *connect.Client[groupuserv1.ChangeGroupNameRequest, groupuserv1.ChangeGroupNameResponse]
	changeGroupPassword *connect.Client[groupuserv1.ChangeGroupPasswordRequest, groupuserv1.ChangeGroupPasswordResponse]
	setUserType         *connect.Client[groupuserv1.SetUserTypeRequest, groupuserv1.SetUserTypeResponse]
	getGroupsByUID      *connect.Client[groupuserv1.GetGroupsByUIDRequest, groupuserv1.GetGroupsByUIDResponse]
}

func (c *groupUserServiceClient) Ping(ctx context.Context, req *connect.Request[groupuserv1.PingRequest]) (*connect.Response[groupuserv1.Pong], error) {
	return c.ping.CallUnary(ctx, req)
}

func (c *groupUserServiceClient) CreateGroup(ctx context.Context, req *connect.Request[groupuserv1.CreateGroupRequest]) (*connect.Response[groupuserv1.CreateGroupResponse], error) {
	return c.createGroup.CallUnary(ctx, req)
}

func (c *groupUserServiceClient) GetGroupPublicInfo(ctx context.Context, req *connect.Request[groupuserv1.GetGroupPublicInfoRequest]) (*connect.Response[groupuserv1.GetGroupPublicInfoResponse], error) {
	return c.getGroupPublicInfo.CallUnary(ctx, req)
}

func (c *groupUserServiceClient) GetGroupInfo(ctx context.Context, req *connect.Request[groupuserv1.GetGroupInfoRequest]) (*connect.Response[groupuserv1.GetGroupInfoResponse], error) {
	return c.getGroupInfo.CallUnary(ctx, req)
}

func (c *groupUserServiceClient) JoinGroup(ctx context.Context, req *connect.Request[groupuserv1.JoinGroupRequest]) (*connect.Response[groupuserv1.JoinGroupResponse], error) {
	return c.joinGroup.CallUnary(ctx, req)
}

func (c *groupUserServiceClient) InviteGroup(ctx context.Context, req *connect.Request[groupuserv1.InviteGroupRequest]) (*connect.Response[groupuserv1.InviteGroupResponse], error) {
	return c.inviteGroup.CallUnary(ctx, req)
}

func (c *groupUserServiceClient) KickUser(ctx context.Context, req *connect.Request[groupuserv1.KickUserRequest]) (*connect.Response[groupuserv1.KickUserResponse], error) {
	return c.kickUser.CallUnary(ctx, req)
}

func (c *groupUserServiceClient) ChangeGroupName(ctx context.Context, req *connect.Request[groupuserv1.ChangeGroupNameRequest]) (*connect.Response[groupuserv1.ChangeGroupNameResponse], error) {
	return c.changeGroupName.CallUnary(ctx, req)
}

func (c *groupUserServiceClient) ChangeGroupPassword(ctx context.Context, req *connect.Request[groupuserv1.ChangeGroupPasswordRequest]) (*connect.Response[groupuserv1.ChangeGroupPasswordResponse], error) {
	return c.changeGroupPassword.CallUnary(ctx, req)
}

func (c *groupUserServiceClient) SetUserType(ctx context.Context, req *connect.Request[groupuserv1.SetUserTypeRequest]) (*connect.Response[groupuserv1.SetUserTypeResponse], error) {
	return c.setUserType.CallUnary(ctx, req)
}

func (c *groupUserServiceClient) GetGroupsByUID(ctx context.Context, req *connect.Request[groupuserv1.GetGroupsByUIDRequest]) (*connect.Response[groupuserv1.GetGroupsByUIDResponse], error) {
	return c.getGroupsByUID.CallUnary(ctx, req)
}

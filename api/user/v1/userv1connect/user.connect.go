// Package userv1connect provides the client-side Connect binding for
// the User service lookup procedures.
package userv1connect

import (
	"context"

	"connectrpc.com/connect"

	groupuserv1 "github.com/murmur-im/groupuser/api/groupuser/v1"
	userv1 "github.com/murmur-im/groupuser/api/user/v1"
)

// UserServiceName is the fully-qualified service name.
const UserServiceName = "user.v1.UserService"

const (
	UserServiceGetUIDByUsernameProcedure = "/user.v1.UserService/GetUIDByUsername"
	UserServiceGetUsernameByUIDProcedure = "/user.v1.UserService/GetUsernameByUID"
)

// UserServiceClient is the lookup contract consumed by the resolver.
type UserServiceClient interface {
	GetUIDByUsername(context.Context, *connect.Request[userv1.GetUIDByUsernameRequest]) (*connect.Response[userv1.GetUIDByUsernameResponse], error)
	GetUsernameByUID(context.Context, *connect.Request[userv1.GetUsernameByUIDRequest]) (*connect.Response[userv1.GetUsernameByUIDResponse], error)
}

// NewUserServiceClient builds a gRPC-protocol client with the shared
// msgpack codec.
func NewUserServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) UserServiceClient {
	opts = append([]connect.ClientOption{
		connect.WithGRPC(),
		connect.WithCodec(groupuserv1.MsgpackCodec{}),
	}, opts...)
	return &userServiceClient{
		getUIDByUsername: connect.NewClient[userv1.GetUIDByUsernameRequest, userv1.GetUIDByUsernameResponse](httpClient, baseURL+UserServiceGetUIDByUsernameProcedure, opts...),
		getUsernameByUID: connect.NewClient[userv1.GetUsernameByUIDRequest, userv1.GetUsernameByUIDResponse](httpClient, baseURL+UserServiceGetUsernameByUIDProcedure, opts...),
	}
}

type userServiceClient struct {
	getUIDByUsername *connect.Client[userv1.GetUIDByUsernameRequest, userv1.GetUIDByUsernameResponse]
	getUsernameByUID *connect.Client[userv1.GetUsernameByUIDRequest, userv1.GetUsernameByUIDResponse]
}

func (c *userServiceClient) GetUIDByUsername(ctx context.Context, req *connect.Request[userv1.GetUIDByUsernameRequest]) (*connect.Response[userv1.GetUIDByUsernameResponse], error) {
	return c.getUIDByUsername.CallUnary(ctx, req)
}

func (c *userServiceClient) GetUsernameByUID(ctx context.Context, req *connect.Request[userv1.GetUsernameByUIDRequest]) (*connect.Response[userv1.GetUsernameByUIDResponse], error) {
	return c.getUsernameByUID.CallUnary(ctx, req)
}

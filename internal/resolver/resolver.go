// Package resolver translates between usernames and uids by consulting
// the external User service. It is the only component that carries
// network-failure semantics: an unreachable User service surfaces as
// ErrUnavailable, never as "unknown user".
package resolver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/hashicorp/golang-lru/v2/expirable"

	userv1 "github.com/murmur-im/groupuser/api/user/v1"
	"github.com/murmur-im/groupuser/api/user/v1/userv1connect"
)

var (
	// ErrUnknownUser is returned when the User service has no account
	// for the queried name or uid.
	ErrUnknownUser = errors.New("unknown user")

	// ErrUnavailable is returned when the User service cannot be
	// reached or fails. Distinct from ErrUnknownUser: callers must not
	// treat an outage as a missing account.
	ErrUnavailable = errors.New("user service unavailable")
)

// Resolver is the narrow identity lookup contract the group service
// depends on. Tests substitute an in-memory double.
type Resolver interface {
	// UIDByUsername resolves a username to its uid.
	UIDByUsername(ctx context.Context, username string) (int64, error)

	// UsernameByUID resolves a uid to its username.
	UsernameByUID(ctx context.Context, uid int64) (string, error)
}

const (
	cacheSize  = 4096
	defaultTTL = time.Minute
)

// Client resolves identities over Connect and caches positive results
// for a small TTL. Negative results are never cached: a user may
// register between calls.
type Client struct {
	users userv1connect.UserServiceClient

	uidByName *expirable.LRU[string, int64]
	nameByUID *expirable.LRU[int64, string]
}

// New creates a resolver talking to the User service at baseURL.
func New(baseURL string) *Client {
	return NewWithClient(userv1connect.NewUserServiceClient(http.DefaultClient, baseURL))
}

// NewWithClient wraps an existing User service client.
func NewWithClient(users userv1connect.UserServiceClient) *Client {
	return &Client{
		users:     users,
		uidByName: expirable.NewLRU[string, int64](cacheSize, nil, defaultTTL),
		nameByUID: expirable.NewLRU[int64, string](cacheSize, nil, defaultTTL),
	}
}

// UIDByUsername implements Resolver.
func (c *Client) UIDByUsername(ctx context.Context, username string) (int64, error) {
	if uid, ok := c.uidByName.Get(username); ok {
		return uid, nil
	}

	resp, err := c.users.GetUIDByUsername(ctx, connect.NewRequest(&userv1.GetUIDByUsernameRequest{
		Username: username,
	}))
	if err != nil {
		return 0, fmt.Errorf("%w: get uid by username: %v", ErrUnavailable, err)
	}
	if resp.Msg.Result == nil || resp.Msg.Result.Code != userv1.CodeSuccess || resp.Msg.UserID == 0 {
		return 0, ErrUnknownUser
	}

	c.uidByName.Add(username, resp.Msg.UserID)
	return resp.Msg.UserID, nil
}

// UsernameByUID implements Resolver.
func (c *Client) UsernameByUID(ctx context.Context, uid int64) (string, error) {
	if name, ok := c.nameByUID.Get(uid); ok {
		return name, nil
	}

	resp, err := c.users.GetUsernameByUID(ctx, connect.NewRequest(&userv1.GetUsernameByUIDRequest{
		UID: uid,
	}))
	if err != nil {
		return "", fmt.Errorf("%w: get username by uid: %v", ErrUnavailable, err)
	}
	if resp.Msg.Result == nil || resp.Msg.Result.Code != userv1.CodeSuccess || resp.Msg.Username == "" {
		return "", ErrUnknownUser
	}

	c.nameByUID.Add(uid, resp.Msg.Username)
	return resp.Msg.Username, nil
}

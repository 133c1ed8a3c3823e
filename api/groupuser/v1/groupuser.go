// Package groupuserv1 defines the wire contract of the GroupUser
// service: request/response messages, the MemberType enum, and the
// Result envelope carried by every response.
//
// The binding is hand-maintained (see groupuserv1connect); messages
// travel as msgpack payloads over Connect, so field numbering is
// expressed with explicit msgpack tags rather than protobuf
// descriptors. Renaming a tag is a wire-breaking change.
package groupuserv1

// MemberType is the role a user holds inside a group. The ordinal
// values are part of the wire contract; numeric order is authority
// order (owner outranks manager outranks member).
type MemberType int32

const (
	MemberTypeMember  MemberType = 0
	MemberTypeManager MemberType = 1
	MemberTypeOwner   MemberType = 2
)

// String returns the symbolic name used in storage and logs.
func (t MemberType) String() string {
	switch t {
	case MemberTypeOwner:
		return "owner"
	case MemberTypeManager:
		return "manager"
	case MemberTypeMember:
		return "member"
	default:
		return "unknown"
	}
}

// Valid reports whether t is inside the closed role domain.
func (t MemberType) Valid() bool {
	return t == MemberTypeMember || t == MemberTypeManager || t == MemberTypeOwner
}

// Result is the status envelope present on every response. Code
// CodeSuccess (800) is the single success sentinel; any other value is
// a failure and Msg carries a human-readable explanation.
type Result struct {
	Code uint32 `msgpack:"code"`
	Msg  string `msgpack:"msg"`
}

// OK reports whether the result carries the success sentinel.
func (r *Result) OK() bool {
	return r != nil && r.Code == CodeSuccess
}

type PingRequest struct{}

// Pong is the empty reply to Ping.
type Pong struct{}

type CreateGroupRequest struct {
	Name string `msgpack:"name"`
	UID  int64  `msgpack:"uid"`
}

type CreateGroupResponse struct {
	Result  *Result `msgpack:"result"`
	GroupID int64   `msgpack:"group_id"`
}

type GetGroupPublicInfoRequest struct {
	GroupID int64 `msgpack:"group_id"`
}

type GetGroupPublicInfoResponse struct {
	Result    *Result `msgpack:"result"`
	GroupID   int64   `msgpack:"group_id"`
	Name      string  `msgpack:"name"`
	CreatedAt int64   `msgpack:"created_at"` // unix seconds
}

type GetGroupInfoRequest struct {
	GroupID int64 `msgpack:"group_id"`
	UID     int64 `msgpack:"uid"`
}

// MemberObject is one roster entry in GetGroupInfo.
type MemberObject struct {
	Name string     `msgpack:"name"`
	Type MemberType `msgpack:"type"`
}

type GetGroupInfoResponse struct {
	Result  *Result         `msgpack:"result"`
	Members []*MemberObject `msgpack:"members"`
}

type JoinGroupRequest struct {
	GroupID  int64  `msgpack:"group_id"`
	Password string `msgpack:"password"`
	UID      int64  `msgpack:"uid"`
}

type JoinGroupResponse struct {
	Result *Result `msgpack:"result"`
}

type InviteGroupRequest struct {
	GroupID  int64  `msgpack:"group_id"`
	UID      int64  `msgpack:"uid"`
	Username string `msgpack:"username"`
}

type InviteGroupResponse struct {
	Result *Result `msgpack:"result"`
}

type KickUserRequest struct {
	GroupID  int64  `msgpack:"group_id"`
	UID      int64  `msgpack:"uid"`
	Username string `msgpack:"username"`
}

type KickUserResponse struct {
	Result *Result `msgpack:"result"`
}

type ChangeGroupNameRequest struct {
	GroupID int64  `msgpack:"group_id"`
	UID     int64  `msgpack:"uid"`
	Name    string `msgpack:"name"`
}

type ChangeGroupNameResponse struct {
	Result *Result `msgpack:"result"`
}

type ChangeGroupPasswordRequest struct {
	GroupID  int64  `msgpack:"group_id"`
	Password string `msgpack:"password"`
	UID      int64  `msgpack:"uid"`
}

type ChangeGroupPasswordResponse struct {
	Result *Result `msgpack:"result"`
}

type SetUserTypeRequest struct {
	GroupID  int64      `msgpack:"group_id"`
	UID      int64      `msgpack:"uid"`
	Username string     `msgpack:"username"`
	Type     MemberType `msgpack:"type"`
}

type SetUserTypeResponse struct {
	Result *Result `msgpack:"result"`
}

type GetGroupsByUIDRequest struct {
	UID int64 `msgpack:"uid"`
}

// GroupSummary is one entry in the per-user group list.
type GroupSummary struct {
	GroupID int64  `msgpack:"group_id"`
	Name    string `msgpack:"name"`
}

type GetGroupsByUIDResponse struct {
	Result *Result         `msgpack:"result"`
	Groups []*GroupSummary `msgpack:"groups"`
}

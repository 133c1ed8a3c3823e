// Package userv1 holds the subset of the User service wire contract
// this service consumes: username/uid translation. The User service
// owns registration and credentials; only its lookup procedures are
// bound here.
package userv1

// Result mirrors the platform-wide status envelope (800 = success).
type Result struct {
	Code uint32 `msgpack:"code"`
	Msg  string `msgpack:"msg"`
}

// CodeSuccess is the shared success sentinel.
const CodeSuccess uint32 = 800

type GetUIDByUsernameRequest struct {
	Username string `msgpack:"username"`
}

type GetUIDByUsernameResponse struct {
	Result *Result `msgpack:"result"`
	UserID int64   `msgpack:"user_id"`
}

type GetUsernameByUIDRequest struct {
	UID int64 `msgpack:"uid"`
}

type GetUsernameByUIDResponse struct {
	Result   *Result `msgpack:"result"`
	Username string  `msgpack:"username"`
}

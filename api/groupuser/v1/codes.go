package groupuserv1

// Result codes. CodeSuccess is compatibility-critical: clients test
// result.code == 800 for success. Failure codes are grouped by class:
// 14xx are caller faults, 15xx are service/upstream faults.
const (
	CodeSuccess uint32 = 800

	CodeBadArgument   uint32 = 1400
	CodeWrongPassword uint32 = 1401
	CodeAuthDenied    uint32 = 1403
	CodeNotFound      uint32 = 1404
	CodeAlreadyMember uint32 = 1409
	CodeNotMember     uint32 = 1410

	CodeInternal uint32 = 1500
	CodeUpstream uint32 = 1502
)

// Success returns the shared OK envelope.
func Success() *Result {
	return &Result{Code: CodeSuccess}
}

// Failure builds a failure envelope with the given code and message.
func Failure(code uint32, msg string) *Result {
	return &Result{Code: code, Msg: msg}
}

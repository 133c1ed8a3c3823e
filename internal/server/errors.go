package server

import (
	"errors"

	groupuserv1 "github.com/murmur-im/groupuser/api/groupuser/v1"
	"github.com/murmur-im/groupuser/internal/repository"
	"github.com/murmur-im/groupuser/internal/resolver"
	groupsvc "github.com/murmur-im/groupuser/internal/services/group"
)

// resultFromError translates a service error into the wire Result
// envelope. Domain failures are responses, not transport errors, so
// every mapped error yields a Result and the RPC itself succeeds.
func resultFromError(err error) *groupuserv1.Result {
	switch {
	case err == nil:
		return groupuserv1.Success()
	case errors.Is(err, repository.ErrGroupNotFound):
		return groupuserv1.Failure(groupuserv1.CodeNotFound, "group not found")
	case errors.Is(err, resolver.ErrUnknownUser):
		return groupuserv1.Failure(groupuserv1.CodeNotFound, "user not found")
	case errors.Is(err, repository.ErrAlreadyMember):
		return groupuserv1.Failure(groupuserv1.CodeAlreadyMember, "user is already a member of the group")
	case errors.Is(err, repository.ErrNotMember):
		return groupuserv1.Failure(groupuserv1.CodeNotMember, "user is not a member of the group")
	case errors.Is(err, groupsvc.ErrWrongPassword):
		return groupuserv1.Failure(groupuserv1.CodeWrongPassword, "password incorrect")
	case errors.Is(err, groupsvc.ErrPermissionDenied):
		return groupuserv1.Failure(groupuserv1.CodeAuthDenied, "permission denied")
	case errors.Is(err, groupsvc.ErrInvalidRole):
		return groupuserv1.Failure(groupuserv1.CodeBadArgument, "invalid member type")
	case errors.Is(err, resolver.ErrUnavailable):
		return groupuserv1.Failure(groupuserv1.CodeUpstream, "user service unavailable")
	default:
		return groupuserv1.Failure(groupuserv1.CodeInternal, "internal error")
	}
}

func badArgument(msg string) *groupuserv1.Result {
	return groupuserv1.Failure(groupuserv1.CodeBadArgument, msg)
}

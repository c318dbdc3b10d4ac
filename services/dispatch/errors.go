package dispatch

import (
	"errors"
)

// Sentinel errors translated to HTTP statuses by the controllers.
var (
	ErrRequestNotFound     = errors.New("request not found")
	ErrBranchNotFound      = errors.New("branch not found")
	ErrServiceTypeNotFound = errors.New("service type not found")
	ErrTeamNotFound        = errors.New("team not found")
	ErrEmptyPatch          = errors.New("no updatable fields supplied")
)

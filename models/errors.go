package models

// Typed errors so the HTTP helper can map failures to status codes
// without string matching in every handler.

type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string {
	return e.Message
}

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string {
	return e.Message
}

type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string {
	return e.Message
}

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	return e.Message
}

// ErrorConflict signals a concurrent modification detected by the store.
// Callers may retry after re-fetching.
type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string {
	return e.Message
}

// ErrorInvalidState signals a transition out of a terminal state, e.g.
// approving an already-rejected pending edit.
type ErrorInvalidState struct {
	Message string
}

func (e ErrorInvalidState) Error() string {
	return e.Message
}

// ErrorCorruptProposal signals a stored proposal snapshot that no longer
// parses. The pending edit is left untouched for an operator to resolve.
type ErrorCorruptProposal struct {
	Message string
}

func (e ErrorCorruptProposal) Error() string {
	return e.Message
}

type ErrorInternalServer struct {
	Message string
}

func (e ErrorInternalServer) Error() string {
	return e.Message
}

package core

import (
	"fmt"
)

type ErrorNotFound struct {
}

func (e ErrorNotFound) Error() string {
	return "Not Found"
}

func NewErrorNotFound() ErrorNotFound {
	return ErrorNotFound{}
}

type ErrorAlreadyDeleted struct {
}

func (e ErrorAlreadyDeleted) Error() string {
	return "Already Deleted"
}

func NewErrorAlreadyDeleted() ErrorAlreadyDeleted {
	return ErrorAlreadyDeleted{}
}

type ErrorPermissionDenied struct {
}

func (e ErrorPermissionDenied) Error() string {
	return "Permission Denied"
}

func NewErrorPermissionDenied() ErrorPermissionDenied {
	return ErrorPermissionDenied{}
}

// ErrorTimelineNotExist is a not-found error for timelines
type ErrorTimelineNotExist struct {
	TimelineID string
}

func (e ErrorTimelineNotExist) Error() string {
	return fmt.Sprintf("timeline %s does not exist", e.TimelineID)
}

func (e ErrorTimelineNotExist) Is(target error) bool {
	_, ok := target.(ErrorNotFound)
	return ok
}

// ErrorPostNotExist is returned for missing posts and, with Deleted set, for tombstones.
type ErrorPostNotExist struct {
	TimelineID string
	LocalID    int64
	Deleted    bool
}

func (e ErrorPostNotExist) Error() string {
	if e.Deleted {
		return fmt.Sprintf("post %d of timeline %s is already deleted", e.LocalID, e.TimelineID)
	}
	return fmt.Sprintf("post %d of timeline %s does not exist", e.LocalID, e.TimelineID)
}

func (e ErrorPostNotExist) Is(target error) bool {
	switch target.(type) {
	case ErrorNotFound:
		return true
	case ErrorAlreadyDeleted:
		return e.Deleted
	}
	return false
}

type ErrorPostDataNotExist struct {
	TimelineID string
	LocalID    int64
	Index      int
}

func (e ErrorPostDataNotExist) Error() string {
	return fmt.Sprintf("data %d of post %d of timeline %s does not exist", e.Index, e.LocalID, e.TimelineID)
}

func (e ErrorPostDataNotExist) Is(target error) bool {
	_, ok := target.(ErrorNotFound)
	return ok
}

type ErrorDataNotExist struct {
	Tag string
}

func (e ErrorDataNotExist) Error() string {
	return fmt.Sprintf("data %s does not exist", e.Tag)
}

func (e ErrorDataNotExist) Is(target error) bool {
	_, ok := target.(ErrorNotFound)
	return ok
}

type ErrorUserNotExist struct {
	UserID uint
}

func (e ErrorUserNotExist) Error() string {
	return fmt.Sprintf("user %d does not exist", e.UserID)
}

func (e ErrorUserNotExist) Is(target error) bool {
	_, ok := target.(ErrorNotFound)
	return ok
}

// ErrorBadFormat reports malformed client input such as conditional request headers
type ErrorBadFormat struct {
	Subject string
	Value   string
}

func (e ErrorBadFormat) Error() string {
	return fmt.Sprintf("%s is of bad format: %q", e.Subject, e.Value)
}

func NewErrorBadFormat(subject, value string) ErrorBadFormat {
	return ErrorBadFormat{Subject: subject, Value: value}
}

// ErrorInvalidArgument reports a request rejected by validation.
// Index is the offending data part or -1.
type ErrorInvalidArgument struct {
	Field   string
	Index   int
	Message string
}

func (e ErrorInvalidArgument) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid %s[%d]: %s", e.Field, e.Index, e.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func NewErrorInvalidArgument(field, message string) ErrorInvalidArgument {
	return ErrorInvalidArgument{Field: field, Index: -1, Message: message}
}

// ErrorConcurrencyConflict means two posts were about to share a LocalID.
// Allocation is serialized, so seeing this is a bug.
type ErrorConcurrencyConflict struct {
	TimelineID string
	LocalID    int64
}

func (e ErrorConcurrencyConflict) Error() string {
	return fmt.Sprintf("local id %d of timeline %s is already taken", e.LocalID, e.TimelineID)
}

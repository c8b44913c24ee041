package core

import (
	"time"
)

type PostCreateRequestData struct {
	Kind PostDataKind
	Data []byte
}

// PostCreateRequest describes a new post. Time defaults to now.
type PostCreateRequest struct {
	Time     *time.Time
	Color    *string
	DataList []PostCreateRequestData
}

// PostPatchRequest updates only the non-nil fields
type PostPatchRequest struct {
	Time  *time.Time
	Color *string
}

// DataDigest is what a conditional request is validated against
type DataDigest struct {
	ETag         string
	LastModified time.Time
}

type ByteData struct {
	Data []byte
	Kind PostDataKind
}

// UserProfile is the public part of a user directory record
type UserProfile struct {
	Username string `json:"username"`
	Nickname string `json:"nickname"`
}

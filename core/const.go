package core

const (
	RequesterIdCtxKey = "tl-requesterId"
)

const (
	RequesterIdHeader = "tl-requester-id"
)

const (
	UserDeletedChannel = "user:deleted"
)

// Error codes carried in ErrorResponse. Format: 1bbbccdd
const (
	ErrorCodeInvalidModel             = 1_000_00_01
	ErrorCodeForbid                   = 1_000_00_02
	ErrorCodeInternal                 = 1_000_00_99
	ErrorCodeIfNoneMatchBadFormat     = 1_000_01_01
	ErrorCodeIfModifiedSinceBadFormat = 1_000_01_02
	ErrorCodeUserNotExist             = 1_001_00_01
	ErrorCodeTimelineNotExist         = 1_104_02_01
	ErrorCodePostNotExist             = 1_106_01_01
	ErrorCodePostDataNotExist         = 1_106_01_02
	ErrorCodePostCreateDataInvalid    = 1_106_02_01
	ErrorCodePostConcurrencyConflict  = 1_106_03_01
)

package core

import (
	"time"
)

// Timeline is a named feed of posts owned by a user
// mutable
type Timeline struct {
	ID           string    `json:"id" gorm:"primaryKey;type:char(20)"`
	Name         string    `json:"name" gorm:"type:text;not null"`
	Owner        uint      `json:"owner" gorm:"index;not null"`
	NextLocalID  int64     `json:"-" gorm:"type:bigint;not null;default:1"`
	CDate        time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	LastModified time.Time `json:"lastModified" gorm:"type:timestamp with time zone;not null"`
}

// Post is a single timeline entry identified by its per-timeline LocalID.
// The row survives deletion as a tombstone.
type Post struct {
	ID          uint           `json:"-" gorm:"primaryKey;auto_increment"`
	TimelineID  string         `json:"timeline" gorm:"type:char(20);not null;uniqueIndex:idx_post_timeline_local"`
	LocalID     int64          `json:"id" gorm:"type:bigint;not null;uniqueIndex:idx_post_timeline_local"`
	AuthorID    *uint          `json:"author" gorm:"index"`
	Time        time.Time      `json:"time" gorm:"type:timestamp with time zone;not null"`
	Color       string         `json:"color,omitempty" gorm:"type:text"`
	Deleted     bool           `json:"deleted" gorm:"type:boolean;not null;default:false"`
	LastUpdated time.Time      `json:"lastUpdated" gorm:"type:timestamp with time zone;not null"`
	DataList    []PostDataPart `json:"dataList" gorm:"foreignKey:PostID"`
}

// PostDataPart is one content item of a post.
// Tag is a weak reference into the content store.
type PostDataPart struct {
	ID          uint         `json:"-" gorm:"primaryKey;auto_increment"`
	PostID      uint         `json:"-" gorm:"not null;uniqueIndex:idx_post_data_index"`
	Index       int          `json:"index" gorm:"column:data_index;not null;uniqueIndex:idx_post_data_index"`
	Kind        PostDataKind `json:"kind" gorm:"type:text;not null"`
	Tag         string       `json:"-" gorm:"type:char(64);not null;index"`
	ETag        string       `json:"etag" gorm:"type:text;not null"`
	LastUpdated time.Time    `json:"lastUpdated" gorm:"type:timestamp with time zone;not null"`
}

// Blob is an immutable content-addressed payload
type Blob struct {
	Tag   string    `json:"tag" gorm:"primaryKey;type:char(64)"`
	Bytes []byte    `json:"-" gorm:"type:bytea;not null"`
	Ref   int64     `json:"ref" gorm:"type:bigint;not null;default:0"`
	CDate time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	// LastRetained moves on every new reference
	LastRetained time.Time `json:"lastRetained" gorm:"type:timestamp with time zone;not null;default:clock_timestamp()"`
}

// User is the minimal user directory record.
// UsernameChangeTime is bumped only when Username changes,
// LastModified on every profile change.
type User struct {
	ID                 uint      `json:"id" gorm:"primaryKey;auto_increment"`
	Username           string    `json:"username" gorm:"type:text;not null;uniqueIndex"`
	Nickname           string    `json:"nickname" gorm:"type:text"`
	UsernameChangeTime time.Time `json:"usernameChangeTime" gorm:"type:timestamp with time zone;not null"`
	LastModified       time.Time `json:"lastModified" gorm:"type:timestamp with time zone;not null"`
}

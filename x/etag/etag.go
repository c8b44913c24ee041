// Package etag computes entity tags and answers conditional requests
package etag

import (
	"encoding/base64"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/totegamma/timeline/core"
)

// ComputeETag derives the validator of a representation from its bytes only
func ComputeETag(data []byte) string {
	sum := sha3.Sum256(data)
	return base64.RawStdEncoding.EncodeToString(sum[:])
}

// Quote renders an etag value as a strong entity tag header value
func Quote(etag string) string {
	return `"` + etag + `"`
}

// IfNoneMatch is a parsed If-None-Match header
type IfNoneMatch struct {
	Any  bool
	Tags []string
}

// ParseIfNoneMatch accepts `*` or a comma separated list of "..." / W/"..." entity tags.
// Commas inside a quoted tag belong to the tag.
func ParseIfNoneMatch(value string) (IfNoneMatch, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return IfNoneMatch{}, core.NewErrorBadFormat("If-None-Match", value)
	}
	if trimmed == "*" {
		return IfNoneMatch{Any: true}, nil
	}

	var result IfNoneMatch
	rest := trimmed
	for {
		rest = strings.TrimPrefix(rest, "W/")
		if !strings.HasPrefix(rest, `"`) {
			return IfNoneMatch{}, core.NewErrorBadFormat("If-None-Match", value)
		}
		end := strings.IndexByte(rest[1:], '"')
		if end < 0 {
			return IfNoneMatch{}, core.NewErrorBadFormat("If-None-Match", value)
		}
		opaque := rest[1 : 1+end]
		if !isETagValue(opaque) {
			return IfNoneMatch{}, core.NewErrorBadFormat("If-None-Match", value)
		}
		result.Tags = append(result.Tags, opaque)

		rest = strings.TrimLeft(rest[2+end:], " \t")
		if rest == "" {
			break
		}
		if rest[0] != ',' {
			return IfNoneMatch{}, core.NewErrorBadFormat("If-None-Match", value)
		}
		rest = strings.TrimLeft(rest[1:], " \t")
	}

	return result, nil
}

// isETagValue reports whether every byte is an etagc: %x21 / %x23-7E / obs-text
func isETagValue(opaque string) bool {
	for i := 0; i < len(opaque); i++ {
		c := opaque[i]
		if c == 0x21 || (c >= 0x23 && c != 0x7f) {
			continue
		}
		return false
	}
	return true
}

// Matches uses weak comparison. etag is the unquoted value.
func Matches(etag string, ifNoneMatch IfNoneMatch) bool {
	if ifNoneMatch.Any {
		return true
	}
	for _, tag := range ifNoneMatch.Tags {
		if tag == etag {
			return true
		}
	}
	return false
}

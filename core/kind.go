package core

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
)

// PostDataKind is the content type of a post data part
type PostDataKind string

const (
	KindTextPlain    PostDataKind = "text/plain"
	KindTextMarkdown PostDataKind = "text/markdown"
	KindImagePng     PostDataKind = "image/png"
	KindImageJpeg    PostDataKind = "image/jpeg"
	KindImageGif     PostDataKind = "image/gif"
	KindImageWebp    PostDataKind = "image/webp"
)

// ContentValidator is implemented by every supported kind
type ContentValidator interface {
	Validate(data []byte) error
	DefaultKind() PostDataKind
}

type textValidator struct {
	kind PostDataKind
}

func (v textValidator) Validate(data []byte) error {
	if !utf8.Valid(data) {
		return errors.New("text is not a valid utf-8 sequence")
	}
	return nil
}

func (v textValidator) DefaultKind() PostDataKind {
	return v.kind
}

type imageValidator struct {
	kind PostDataKind
}

func (v imageValidator) Validate(data []byte) error {
	if len(data) == 0 {
		return errors.New("image is empty")
	}
	detected := mimetype.Detect(data)
	if !detected.Is(string(v.kind)) {
		return fmt.Errorf("image is %s, not %s", detected.String(), v.kind)
	}
	return nil
}

func (v imageValidator) DefaultKind() PostDataKind {
	return v.kind
}

var contentValidators = map[PostDataKind]ContentValidator{
	KindTextPlain:    textValidator{KindTextPlain},
	KindTextMarkdown: textValidator{KindTextMarkdown},
	KindImagePng:     imageValidator{KindImagePng},
	KindImageJpeg:    imageValidator{KindImageJpeg},
	KindImageGif:     imageValidator{KindImageGif},
	KindImageWebp:    imageValidator{KindImageWebp},
}

// LookupKind returns the validator of a kind, or false for unsupported kinds
func LookupKind(kind PostDataKind) (ContentValidator, bool) {
	v, ok := contentValidators[kind]
	return v, ok
}

func (k PostDataKind) IsImage() bool {
	_, ok := contentValidators[k].(imageValidator)
	return ok
}

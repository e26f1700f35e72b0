package editor

import (
	"encoding/base64"
	"errors"
	"strings"
)

// MaxImageBytes caps embedded images at 5 MB, matching the admin panel's
// upload limit.
const MaxImageBytes = 5 * 1024 * 1024

var (
	ErrImageTooLarge = errors.New("image is larger than 5MB")
	ErrNotAnImage    = errors.New("file is not an image")
)

// ImageDataURI validates an uploaded file and returns it as an embedded data
// URI suitable for the profileImage field or a project image. Oversized or
// non-image files are rejected with no state change.
func ImageDataURI(contentType string, data []byte) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}
	if len(data) > MaxImageBytes {
		return "", ErrImageTooLarge
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// AttachProfileImage validates the file and sets the profile image to its
// embedded representation.
func (e *Editor) AttachProfileImage(contentType string, data []byte) error {
	uri, err := ImageDataURI(contentType, data)
	if err != nil {
		return err
	}

	e.SetProfileImage(uri)
	return nil
}

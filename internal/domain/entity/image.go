package entity

import (
	"slices"
	"strings"
)

// Bucket names an object storage bucket.
type Bucket string

const (
	BucketProfileImages  Bucket = "profile-images"
	BucketClothingImages Bucket = "clothing-images"
)

func (b Bucket) String() string {
	return string(b)
}

// IsValid checks if the Bucket is one the service writes to.
func (b Bucket) IsValid() bool {
	switch b {
	case BucketProfileImages, BucketClothingImages:
		return true
	default:
		return false
	}
}

// ImageRole is the garment slot an image fills in a combination.
type ImageRole string

const (
	ImageRoleUpper ImageRole = "upper"
	ImageRoleLower ImageRole = "lower"

	// ImageRoleProfile is used for profile pictures, which are not part of a combination.
	ImageRoleProfile ImageRole = "profile"
)

func (r ImageRole) String() string {
	return string(r)
}

// CombinationImageRoles lists the slots in the order they are processed.
var CombinationImageRoles = []ImageRole{ImageRoleUpper, ImageRoleLower}

var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

var allowedFileExtensions = []string{"jpg", "jpeg", "png", "gif", "webp"}

// ImageUpload is a decoded image ready to be stored.
type ImageUpload struct {
	Data        []byte
	ContentType string
	Filename    string
}

// MediaType returns the content type without parameters, lower-cased.
func (u *ImageUpload) MediaType() string {
	mediaType, _, _ := strings.Cut(u.ContentType, ";")

	return strings.ToLower(strings.TrimSpace(mediaType))
}

// IsAllowedType checks the declared content type and, when present, the file extension.
func (u *ImageUpload) IsAllowedType() bool {
	if _, ok := imageExtensions[u.MediaType()]; !ok {
		return false
	}

	if idx := strings.LastIndex(u.Filename, "."); idx >= 0 {
		ext := strings.ToLower(u.Filename[idx+1:])

		return slices.Contains(allowedFileExtensions, ext)
	}

	return true
}

// Extension returns the storage key extension for the declared content type.
func (u *ImageUpload) Extension() string {
	return imageExtensions[u.MediaType()]
}

// Size is the payload length in bytes.
func (u *ImageUpload) Size() int64 {
	return int64(len(u.Data))
}

package services

import (
	"net/url"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/api/uploader"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"framekart-io/api/helper"
	"framekart-io/api/models"
)

var validate = validator.New()

// FileUpload pushes an avatar image to cloudinary and returns the upload
// result with its hosted URL.
func FileUpload(file models.File) (uploader.UploadResult, error) {
	err := validate.Struct(file)
	if err != nil {
		return uploader.UploadResult{}, err
	}

	uploadRes, err := helper.ImageUploadHelper(file.File)
	if err != nil {
		return uploader.UploadResult{}, err
	}

	return uploadRes, nil
}

// RemoteUpload imports an image from a remote URL into cloudinary.
func RemoteUpload(url models.Url) (uploader.UploadResult, error) {
	err := validate.Struct(url)
	if err != nil {
		return uploader.UploadResult{}, err
	}

	uploadRes, err := helper.ImageUploadHelper(url.Url)
	if err != nil {
		return uploader.UploadResult{}, err
	}

	return uploadRes, nil
}

// DestroyMedia removes a hosted asset by its public id. Called when an
// avatar upload is orphaned or replaced.
func DestroyMedia(id string) (string, error) {
	if id == "" {
		return "", errors.New("media public id is required")
	}

	return helper.ImageDeletionHelper(uploader.DestroyParams{PublicID: id, Invalidate: true})
}

// PublicIDFromURL recovers the public id from a hosted asset URL: the
// path segments after the version marker, minus the file extension.
// Returns "" for URLs that do not carry a version marker.
func PublicIDFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	for i, seg := range segments {
		if !isVersionSegment(seg) || i+1 >= len(segments) {
			continue
		}
		rest := strings.Join(segments[i+1:], "/")
		return strings.TrimSuffix(rest, path.Ext(rest))
	}

	return ""
}

func isVersionSegment(seg string) bool {
	if len(seg) < 2 || seg[0] != 'v' {
		return false
	}
	for _, r := range seg[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

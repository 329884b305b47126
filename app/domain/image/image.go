package image

import (
	"context"

	"jajresources.com/image-gateway/app/utils/functional"
)

// NameAttributeKey is the context attribute holding the human assigned label.
const NameAttributeKey = "instrument_name"

type Image struct {
	PublicID  string   `json:"public_id"`
	SecureURL string   `json:"secure_url"`
	Tags      []string `json:"tags"`
	Name      string   `json:"instrument_name,omitempty"`
}

// DisplayName returns the assigned name, or the public id when none is set.
func (i Image) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return i.PublicID
}

func (i Image) HasTag(tag string) bool {
	return functional.Contains(i.Tags, tag)
}

type ImageFile struct {
	Data     []byte
	MimeType string
}

// ImageSource carries either uploaded bytes or a remote URL.
type ImageSource struct {
	File *ImageFile
	URL  string
}

type UploadRequest struct {
	Source ImageSource
	// Tags is nil when the tags parameter must be omitted.
	Tags []string
	// Name is omitted when empty.
	Name string
}

type UpdateRequest struct {
	PublicID string
	// Tags is always sent; empty clears the remote tag set.
	Tags []string
	Name string
}

type ImageFilter struct {
	Tag *string
}

// ImageStore is the remote asset store holding the images.
type ImageStore interface {
	ListAll(ctx context.Context) ([]Image, error)
	Upload(ctx context.Context, req UploadRequest) (*Image, error)
	UpdateTags(ctx context.Context, req UpdateRequest) (*Image, error)
	Delete(ctx context.Context, publicID string) error
}

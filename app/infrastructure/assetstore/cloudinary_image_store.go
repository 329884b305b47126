package assetstore

import (
	"context"
	"errors"

	"github.com/gabriel-vasile/mimetype"
	"jajresources.com/image-gateway/app/domain/image"
	"jajresources.com/image-gateway/app/utils/httpclients/cloudinary"
)

// CloudinaryImageStore implements image.ImageStore on the Cloudinary REST API
type CloudinaryImageStore struct {
	client *cloudinary.Client
}

func NewCloudinaryImageStore(client *cloudinary.Client) *CloudinaryImageStore {
	return &CloudinaryImageStore{
		client: client,
	}
}

func (s *CloudinaryImageStore) ListAll(ctx context.Context) ([]image.Image, error) {
	resources, err := s.client.ListAllResources(ctx)
	if err != nil {
		return nil, err
	}
	images := make([]image.Image, len(resources))
	for i, resource := range resources {
		images[i] = toImage(resource)
	}
	return images, nil
}

func (s *CloudinaryImageStore) Upload(ctx context.Context, req image.UploadRequest) (*image.Image, error) {
	source, err := uploadSource(req.Source)
	if err != nil {
		return nil, err
	}
	resource, err := s.client.Upload(ctx, cloudinary.UploadParams{
		File:    source,
		Tags:    req.Tags,
		Context: nameContext(req.Name),
	})
	if err != nil {
		return nil, err
	}
	created := toImage(*resource)
	return &created, nil
}

func (s *CloudinaryImageStore) UpdateTags(ctx context.Context, req image.UpdateRequest) (*image.Image, error) {
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	resource, err := s.client.Explicit(ctx, cloudinary.ExplicitParams{
		PublicID: req.PublicID,
		Tags:     tags,
		Context:  nameContext(req.Name),
	})
	if err != nil {
		return nil, err
	}
	updated := toImage(*resource)
	return &updated, nil
}

func (s *CloudinaryImageStore) Delete(ctx context.Context, publicID string) error {
	return s.client.Destroy(ctx, publicID)
}

// Ping reports whether the Cloudinary API is reachable with the configured credentials
func (s *CloudinaryImageStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func toImage(resource cloudinary.Resource) image.Image {
	return image.Image{
		PublicID:  resource.PublicID,
		SecureURL: resource.SecureURL,
		Tags:      image.CleanTags(resource.Tags),
		Name:      resource.Context.Value(image.NameAttributeKey),
	}
}

// nameContext is nil for an empty name so the context parameter is omitted.
func nameContext(name string) map[string]string {
	if name == "" {
		return nil
	}
	return map[string]string{image.NameAttributeKey: name}
}

func uploadSource(source image.ImageSource) (string, error) {
	if source.File == nil {
		if source.URL == "" {
			return "", errors.New("upload source is empty")
		}
		return source.URL, nil
	}
	return cloudinary.DataURI(detectMimeType(source.File), source.File.Data), nil
}

// detectMimeType trusts the declared type unless it is missing or generic.
func detectMimeType(file *image.ImageFile) string {
	declared := file.MimeType
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	return mimetype.Detect(file.Data).String()
}

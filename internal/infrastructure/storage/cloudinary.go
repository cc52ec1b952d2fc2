package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"regexp"
	"strings"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore uploads documents to a Cloudinary folder.
type CloudinaryStore struct {
	cld    *cld.Cloudinary
	folder string
}

func NewCloudinaryStore(url, folder string) (*CloudinaryStore, error) {
	c, err := cld.NewFromURL(url)
	if err != nil {
		return nil, err
	}
	return &CloudinaryStore{cld: c, folder: folder}, nil
}

func (s *CloudinaryStore) Save(ctx context.Context, name, _ string, r io.Reader) (string, error) {
	obj := objectName(name)
	res, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:       s.folder,
		PublicID:     strings.TrimSuffix(obj, path.Ext(obj)),
		ResourceType: "auto",
	})
	if err != nil {
		return "", err
	}
	if res.Error.Message != "" {
		return "", errors.New(res.Error.Message)
	}
	return res.SecureURL, nil
}

func (s *CloudinaryStore) Delete(ctx context.Context, url string) error {
	resourceType, publicID, ok := parseDeliveryURL(url)
	if !ok {
		return ErrForeignURL
	}
	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		return err
	}
	if res.Error.Message != "" {
		return errors.New(res.Error.Message)
	}
	return nil
}

var deliveryURL = regexp.MustCompile(`/(image|raw|video)/upload/(?:v\d+/)?(.+)$`)

// parseDeliveryURL extracts resource type and public id from a secure URL such
// as https://res.cloudinary.com/demo/image/upload/v17/admission/abc.pdf.
func parseDeliveryURL(url string) (resourceType, publicID string, ok bool) {
	m := deliveryURL.FindStringSubmatch(url)
	if m == nil {
		return "", "", false
	}
	publicID = m[2]
	if m[1] != "raw" {
		publicID = strings.TrimSuffix(publicID, path.Ext(publicID))
	}
	return m[1], publicID, publicID != ""
}

package facades

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sbilibin2017/gw-contacts/internal/config"
	"github.com/sbilibin2017/gw-contacts/internal/logger"
)

// ObjectPutter is the subset of the minio client used for avatars.
type ObjectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// AvatarMinioFacade stores avatars in an S3-compatible bucket.
type AvatarMinioFacade struct {
	client    ObjectPutter
	bucket    string
	publicURL string
}

// NewAvatarMinioFacade creates a new facade over a minio client.
func NewAvatarMinioFacade(client ObjectPutter, bucket, publicURL string) *AvatarMinioFacade {
	return &AvatarMinioFacade{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

// Upload overwrites the object at key and returns its public URL. The ETag
// is appended as a version so clients do not keep a stale image cached.
func (f *AvatarMinioFacade) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	info, err := f.client.PutObject(ctx, f.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		logger.Log.Errorw("failed to upload avatar", "bucket", f.bucket, "key", key, "error", err)
		return "", fmt.Errorf("failed to put object %s: %w", key, err)
	}

	u := f.publicURL + "/" + f.bucket + "/" + key
	if info.ETag != "" {
		u += "?v=" + url.QueryEscape(info.ETag)
	}
	return u, nil
}

// NewMinioClient connects to the object store and creates the bucket if missing.
func NewMinioClient(ctx context.Context, cfg config.Minio) (*minio.Client, error) {
	// minio-go expects host:port
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
	}

	return client, nil
}

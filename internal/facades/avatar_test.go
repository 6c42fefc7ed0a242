package facades

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Fake object store ---
type fakeObjectPutter struct {
	bucket      string
	key         string
	body        string
	contentType string
	etag        string
	err         error
}

func (f *fakeObjectPutter) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.err != nil {
		return minio.UploadInfo{}, f.err
	}
	data, _ := io.ReadAll(reader)
	f.bucket = bucketName
	f.key = objectName
	f.body = string(data)
	f.contentType = opts.ContentType
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, ETag: f.etag, Size: objectSize}, nil
}

// --- Tests ---
func TestAvatarMinioFacade_Upload(t *testing.T) {
	tests := []struct {
		name    string
		etag    string
		wantURL string
	}{
		{name: "versioned by etag", etag: "abc123", wantURL: "http://localhost:9000/avatars/UsersApp/alice?v=abc123"},
		{name: "no etag", wantURL: "http://localhost:9000/avatars/UsersApp/alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeObjectPutter{etag: tt.etag}
			facade := NewAvatarMinioFacade(client, "avatars", "http://localhost:9000/")

			got, err := facade.Upload(context.Background(), "UsersApp/alice", strings.NewReader("png"), 3, "image/png")
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, got)
			assert.Equal(t, "avatars", client.bucket)
			assert.Equal(t, "UsersApp/alice", client.key)
			assert.Equal(t, "png", client.body)
			assert.Equal(t, "image/png", client.contentType)
		})
	}
}

func TestAvatarMinioFacade_UploadError(t *testing.T) {
	storeErr := errors.New("access denied")
	facade := NewAvatarMinioFacade(&fakeObjectPutter{err: storeErr}, "avatars", "http://localhost:9000")

	got, err := facade.Upload(context.Background(), "UsersApp/alice", strings.NewReader("png"), 3, "image/png")
	assert.ErrorIs(t, err, storeErr)
	assert.Empty(t, got)
}

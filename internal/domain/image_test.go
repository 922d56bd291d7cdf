package domain

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/zogakzip-lab/backend/internal/model"
	"github.com/zogakzip-lab/backend/pkg/storage"
	"github.com/zogakzip-lab/backend/pkg/testutil"
	"github.com/zogakzip-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newImageUploadContext(t *testing.T, fieldName, mime string) context.Context {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="photo.png"`)
	header.Set("Content-Type", mime)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)

	_, err = part.Write([]byte("not really a png"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	request := httptest.NewRequest(http.MethodPost, "/uploadImage", body)
	request.Header.Set("Content-Type", writer.FormDataContentType())

	return xcontext.WithHTTPRequest(testutil.MockContext(), request)
}

func Test_imageDomain_Upload(t *testing.T) {
	mockStorage := &testutil.MockStorage{
		UploadFunc: func(_ context.Context, obj *storage.UploadObject) (*storage.UploadResponse, error) {
			require.Equal(t, "photo.png", obj.FileName)
			require.Equal(t, "image/png", obj.Mime)
			return &storage.UploadResponse{
				Url:      "https://cdn.example.com/images/photo.png",
				FileName: obj.FileName,
			}, nil
		},
	}

	domain := NewImageDomain(mockStorage)

	ctx := newImageUploadContext(t, "image", "image/png")
	resp, err := domain.Upload(ctx, &model.UploadImageRequest{})
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/images/photo.png", resp.URL)
}

func Test_imageDomain_Upload_invalid(t *testing.T) {
	domain := NewImageDomain(&testutil.MockStorage{})

	// Wrong field name.
	ctx := newImageUploadContext(t, "file", "image/png")
	_, err := domain.Upload(ctx, &model.UploadImageRequest{})
	require.Error(t, err)

	// Not an image.
	ctx = newImageUploadContext(t, "image", "text/plain")
	_, err = domain.Upload(ctx, &model.UploadImageRequest{})
	require.Error(t, err)
}

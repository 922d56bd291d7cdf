package domain

import (
	"context"
	"io"
	"strings"

	"github.com/zogakzip-lab/backend/internal/model"
	"github.com/zogakzip-lab/backend/pkg/errorx"
	"github.com/zogakzip-lab/backend/pkg/storage"
	"github.com/zogakzip-lab/backend/pkg/xcontext"
)

type ImageDomain interface {
	Upload(context.Context, *model.UploadImageRequest) (*model.UploadImageResponse, error)
}

type imageDomain struct {
	storage storage.Storage
}

func NewImageDomain(storage storage.Storage) ImageDomain {
	return &imageDomain{storage: storage}
}

func (d *imageDomain) Upload(
	ctx context.Context, _ *model.UploadImageRequest,
) (*model.UploadImageResponse, error) {
	httpReq := xcontext.HTTPRequest(ctx)
	if err := httpReq.ParseMultipartForm(xcontext.Configs(ctx).File.MaxSize); err != nil {
		return nil, errorx.New(errorx.BadRequest, "Request must be multipart form")
	}

	file, header, err := httpReq.FormFile("image")
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get the image: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Cannot get the image")
	}
	defer file.Close()

	mime := header.Header.Get("Content-Type")
	if !strings.HasPrefix(mime, "image/") {
		return nil, errorx.New(errorx.BadRequest, "Unsupported file type %s", mime)
	}

	content, err := io.ReadAll(file)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot read the image: %v", err)
		return nil, errorx.Unknown
	}

	resp, err := d.storage.Upload(ctx, &storage.UploadObject{
		Bucket:   xcontext.Configs(ctx).Storage.Bucket,
		Prefix:   "images",
		FileName: header.Filename,
		Mime:     mime,
		Data:     content,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upload the image: %v", err)
		return nil, errorx.New(errorx.Internal, "Unable to upload image")
	}

	return &model.UploadImageResponse{URL: resp.Url}, nil
}

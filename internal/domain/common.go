package domain

import (
	"context"
	"time"

	"github.com/zogakzip-lab/backend/internal/domain/badge"
	"github.com/zogakzip-lab/backend/pkg/errorx"
	"github.com/zogakzip-lab/backend/pkg/xcontext"
)

const momentLayout = "2006-01-02"

// assertBadges runs badge assertion after a primary write. Failures are
// logged and swallowed so a badge subsystem problem never fails the
// user-facing operation that triggered it.
func assertBadges(ctx context.Context, manager *badge.Manager, targetID string, contents ...string) {
	if err := manager.WithBadges(contents...).ScanAndAward(ctx, targetID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot scan and award badges of %s: %v", targetID, err)
	}
}

// normalizePagination applies the configured default and maximum page
// sizes and converts the 1-based page to an offset.
func normalizePagination(ctx context.Context, page, pageSize int) (offset, limit int, err error) {
	cfg := xcontext.Configs(ctx).ApiServer
	if page <= 0 {
		page = 1
	}

	if pageSize == 0 {
		pageSize = cfg.DefaultLimit
	}

	if pageSize < 0 {
		return 0, 0, errorx.New(errorx.BadRequest, "Page size must be positive")
	}

	if cfg.MaxLimit > 0 && pageSize > cfg.MaxLimit {
		return 0, 0, errorx.New(errorx.BadRequest, "Exceed the maximum of page size (%d)", cfg.MaxLimit)
	}

	return (page - 1) * pageSize, pageSize, nil
}

func totalPages(totalItemCount int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}

	return int((totalItemCount + int64(pageSize) - 1) / int64(pageSize))
}

// parseIsPublic converts the optional "true"/"false" query value into a
// filter; an empty value means no filtering.
func parseIsPublic(value string) *bool {
	switch value {
	case "true":
		b := true
		return &b
	case "false":
		b := false
		return &b
	}

	return nil
}

func parseMoment(value string) (time.Time, error) {
	moment, err := time.Parse(momentLayout, value)
	if err != nil {
		return time.Time{}, errorx.New(errorx.BadRequest, "Invalid moment date %s", value)
	}

	return moment, nil
}

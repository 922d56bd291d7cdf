package badge

import (
	"context"
	"errors"
	"time"

	"github.com/zogakzip-lab/backend/internal/repository"
	"github.com/zogakzip-lab/backend/pkg/dateutil"
	"github.com/zogakzip-lab/backend/pkg/errorx"
	"github.com/zogakzip-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// anniversaryScanner checks that a full calendar year has passed since the
// group was created. The boundary is inclusive: a group created at
// 2023-03-15T09:00 is eligible from 2024-03-15T09:00 on.
type anniversaryScanner struct {
	groupRepo repository.GroupRepository
	now       func() time.Time
}

func NewAnniversaryScanner(groupRepo repository.GroupRepository) *anniversaryScanner {
	return &anniversaryScanner{groupRepo: groupRepo, now: time.Now}
}

func (*anniversaryScanner) Content() string {
	return OneYearActivityBadge
}

func (s *anniversaryScanner) Scan(ctx context.Context, groupID string) (Result, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Result{}, errorx.New(errorx.NotFound, "Not found group")
		}

		xcontext.Logger(ctx).Errorf("Cannot get group: %v", err)
		return Result{}, errorx.Unknown
	}

	anniversary := dateutil.Anniversary(group.CreatedAt, 1)
	return Result{
		GroupID:  groupID,
		Eligible: !s.now().Before(anniversary),
	}, nil
}

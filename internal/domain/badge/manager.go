package badge

import (
	"context"
	"errors"

	"github.com/zogakzip-lab/backend/internal/entity"
	"github.com/zogakzip-lab/backend/internal/repository"
	"github.com/zogakzip-lab/backend/pkg/errorx"
	"github.com/zogakzip-lab/backend/pkg/metric"
	"github.com/zogakzip-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type Manager struct {
	// This field is only written at initialization. After that, it is
	// readonly, so no synchronization is needed.
	scanners map[string]Scanner

	badgeRepo      repository.BadgeRepository
	groupBadgeRepo repository.GroupBadgeRepository
}

func NewManager(
	badgeRepo repository.BadgeRepository,
	groupBadgeRepo repository.GroupBadgeRepository,
	scanners ...Scanner,
) *Manager {
	manager := &Manager{
		badgeRepo:      badgeRepo,
		groupBadgeRepo: groupBadgeRepo,
		scanners:       make(map[string]Scanner),
	}

	for _, s := range scanners {
		manager.scanners[s.Content()] = s
	}

	return manager
}

func (m *Manager) WithBadges(contents ...string) *contextManager {
	return &contextManager{
		manager:  m,
		contents: contents,
	}
}

type contextManager struct {
	manager  *Manager
	contents []string
}

// ScanAndAward evaluates each selected badge against current aggregate
// state and grants the award if the threshold is newly crossed. It is
// idempotent: re-asserting an already awarded badge is a no-op, and the
// ledger's conflict-ignore insert keeps concurrent assertions from
// producing a duplicate row.
func (c *contextManager) ScanAndAward(ctx context.Context, targetID string) error {
	for _, content := range c.contents {
		scanner, ok := c.manager.scanners[content]
		if !ok {
			xcontext.Logger(ctx).Errorf("Not found badge scanner of %s", content)
			return errorx.Unknown
		}

		result, err := scanner.Scan(ctx, targetID)
		if err != nil {
			return err
		}

		if !result.Eligible {
			continue
		}

		badge, err := c.manager.badgeRepo.GetByContent(ctx, content)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// The catalog was never seeded, a configuration error.
				xcontext.Logger(ctx).Errorf("Badge catalog misses %s", content)
				return errorx.New(errorx.NotFound, "Not found badge %s", content)
			}

			xcontext.Logger(ctx).Errorf("Cannot get badge %s: %v", content, err)
			return errorx.Unknown
		}

		has, err := c.manager.groupBadgeRepo.Has(ctx, result.GroupID, badge.ID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot check the awarded badge: %v", err)
			return errorx.Unknown
		}

		if has {
			continue
		}

		groupBadge := &entity.GroupBadge{
			GroupID: result.GroupID,
			BadgeID: badge.ID,
		}

		if err := c.manager.groupBadgeRepo.Create(ctx, groupBadge); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot award badge to group: %v", err)
			return errorx.Unknown
		}

		metric.PromCounters[metric.BadgeAwardTotal].WithLabelValues(content).Inc()
		xcontext.Logger(ctx).Infof("Awarded badge %s to group %s", content, result.GroupID)
	}

	return nil
}

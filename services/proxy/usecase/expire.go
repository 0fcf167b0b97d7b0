package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/proxline/proxline/internal/pkg/logger"
)

// DeactivateExpired flips active off for leases whose expiry already
// passed and returns how many were deactivated. Each candidate is
// confirmed against the upstream market first: a lease renewed out of
// band still reports alive there and is left untouched until the local
// expiry catches up.
func (uc *ProxyUC) DeactivateExpired(ctx context.Context) (int, error) {
	expired, err := uc.proxyRepo.ListActiveExpired(ctx, time.Now().Unix())
	if err != nil {
		return 0, err
	}
	if len(expired) == 0 {
		return 0, nil
	}

	ids := make([]uuid.UUID, 0, len(expired))
	for _, p := range expired {
		alive, err := uc.marketGW.Check(ctx, p.ItemID)
		if err != nil {
			// Local expiry is authoritative when upstream is unreachable.
			logger.Warn("Upstream check failed, deactivating on local expiry",
				logger.String("item_id", p.ItemID),
				logger.Err(err))
		} else if alive {
			logger.Info("Lease still alive upstream, skipping deactivation",
				logger.String("item_id", p.ItemID))
			continue
		}
		ids = append(ids, p.ID)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	n, err := uc.proxyRepo.Deactivate(ctx, ids)
	if err != nil {
		return 0, err
	}

	logger.Info("Expired leases deactivated", logger.Int("count", n))
	return n, nil
}

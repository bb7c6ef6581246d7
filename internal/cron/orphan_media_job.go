package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/mlefevre-dev/vitrine-backend/pkg/logger"
)

const defaultRetentionDays = 7

type orphanReclaimer interface {
	ReclaimOrphans(ctx context.Context, retention time.Duration) (int, error)
}

// OrphanMediaJobParams configure the orphaned upload sweep.
type OrphanMediaJobParams struct {
	Logger        *logger.Logger
	Media         orphanReclaimer
	RetentionDays int
}

// NewOrphanMediaJob builds the job that removes uploads which were never
// committed to a record, or were detached and never re-used, once they are
// older than the retention window.
func NewOrphanMediaJob(params OrphanMediaJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Media == nil {
		return nil, fmt.Errorf("media service required")
	}
	retention := params.RetentionDays
	if retention <= 0 {
		retention = defaultRetentionDays
	}
	return &orphanMediaJob{
		logg:          params.Logger,
		media:         params.Media,
		retentionDays: retention,
	}, nil
}

type orphanMediaJob struct {
	logg          *logger.Logger
	media         orphanReclaimer
	retentionDays int
}

func (j *orphanMediaJob) Name() string { return "orphan-media-reclaim" }

func (j *orphanMediaJob) Run(ctx context.Context) error {
	retention := time.Duration(j.retentionDays) * 24 * time.Hour
	reclaimed, err := j.media.ReclaimOrphans(ctx, retention)
	if err != nil {
		return fmt.Errorf("reclaim orphans: %w", err)
	}
	ctx = j.logg.WithField(ctx, "reclaimed", reclaimed)
	j.logg.Info(ctx, "orphaned uploads reclaimed")
	return nil
}

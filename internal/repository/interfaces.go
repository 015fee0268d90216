package repository

import (
	"context"

	"github.com/ganot/landlord/internal/domain/activity"
)

// ActivityRepository manages the activity journal of store mutations.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.ActivityEntry) error
	List(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}

var _ activity.Repository = ActivityRepository(nil)

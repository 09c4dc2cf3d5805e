package ports

import (
	"time"

	"github.com/jovens-paroquia/membership/internal/core/domain"
)

// Navigator moves the view between logical pages.
type Navigator interface {
	Navigate(dest domain.Destination)
	Current() domain.Destination
}

// Scheduler runs tasks on the cooperative event loop, one at a time, in order.
type Scheduler interface {
	Post(task func())
	PostAfter(delay time.Duration, task func())
}

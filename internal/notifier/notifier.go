package notifier

import (
	"github.com/orgball2608/insta-virality-exporter/internal/domain"
)

// Client delivers run lifecycle notifications. Implementations must never
// fail the scrape: delivery problems are logged, not returned.
type Client interface {
	// NotifyRunFinished reports a completed run. previous is the run recorded
	// before this one for the same profile, nil when there is none; it feeds
	// the follower-delta line of the message.
	NotifyRunFinished(run, previous *domain.ScrapeRun, topPostURL string)

	NotifyRunFailed(username string, err error)
}

package config

// Freshness Window Constants
const (
	// DefaultMinutesLastDays is the trailing window for minutes documents
	DefaultMinutesLastDays = 7

	// DefaultAgendasLastDays is the trailing window for agenda documents
	DefaultAgendasLastDays = 7

	// DefaultAgendasNextDays is the leading window for agenda documents
	DefaultAgendasNextDays = 10
)

// Scheduling Constants
const (
	// DefaultCooldownHours is the minimum gap between two posts from the same source
	DefaultCooldownHours = 6

	// DefaultCadenceHours is the global gap between consecutive posts
	DefaultCadenceHours = 1

	// DefaultMaxPostsPerRun caps the queue size built in a single run
	DefaultMaxPostsPerRun = 24
)

// File Constants
const (
	// DefaultResultsFile is the scraper output consumed by the scheduler
	DefaultResultsFile = "scraper_results.json"

	// DefaultPostedFile tracks documents already posted across runs
	DefaultPostedFile = "posted_bluesky.json"
)

// Post Constants
const (
	// MaxSummaryChars bounds the reply paragraph
	MaxSummaryChars = 280

	// SummaryMinScore is the default notability threshold for summary bullets
	SummaryMinScore = 3
)

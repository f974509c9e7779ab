package config

import "time"

// PipelineConfig contains the timing and limit settings that drive the
// monitoring pipeline: how often the coordinator re-spawns stage tasks,
// how often timeouts are enforced, and the pacing applied to upstream
// requests.
type PipelineConfig struct {
	// TriggerInterval is how often the coordinator scans RUNNING
	// processes and re-spawns finished stage tasks.
	TriggerInterval time.Duration

	// TimeoutInterval is how often the timeout enforcer scans for
	// processes past their expiry.
	TimeoutInterval time.Duration

	// PreparationDelay is the pause between successive article fetches
	// during preparation, to avoid hammering the upstream platform.
	PreparationDelay time.Duration

	// PostingDelay is the pause between successive comment posts.
	PostingDelay time.Duration

	// MaxPostRetries is how many times a transient posting failure is
	// retried before the work record is marked failed.
	MaxPostRetries int

	// MaxProcessesPerUser caps concurrently RUNNING processes per user.
	MaxProcessesPerUser int

	// CommentPrefix is prepended to every generated comment so readers
	// can tell AI comments apart from human ones. Posting refuses any
	// comment that does not start with it.
	CommentPrefix string
}

// DefaultCommentPrefix marks AI-generated comments on the platform.
const DefaultCommentPrefix = "[Dieser Kommentar stammt von einem KI-ChatBot.] "

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		TriggerInterval:     60 * time.Second,
		TimeoutInterval:     30 * time.Second,
		PreparationDelay:    2 * time.Second,
		PostingDelay:        30 * time.Second,
		MaxPostRetries:      3,
		MaxProcessesPerUser: 10,
		CommentPrefix:       DefaultCommentPrefix,
	}
}

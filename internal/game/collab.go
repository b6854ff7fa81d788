package game

// Narrow capability interfaces the core calls out to. Rendering, score
// persistence, menu wiring and audio/haptic playback all live behind these;
// the core never imports their implementations.

// ScoreDisplay receives score updates for presentation.
type ScoreDisplay interface {
	Update(score int)
}

// LeaderboardSink persists a finished level's score. Idempotence of repeated
// submissions is the sink's responsibility, not the session's.
type LeaderboardSink interface {
	Submit(playerName string, score int) error
}

// UIControl switches the hosting UI between its top-level views.
type UIControl interface {
	ShowLeaderboard()
	ShowStartMenu()
}

// FeedbackChannel plays audible and tactile cues.
type FeedbackChannel interface {
	PlayHitSound()
	TriggerHapticPulse()
}

// Collaborators bundles the session-facing capabilities. Nil fields are
// replaced with no-op implementations so the core runs headless.
type Collaborators struct {
	Display     ScoreDisplay
	Leaderboard LeaderboardSink
	UI          UIControl
}

func (c Collaborators) withDefaults() Collaborators {
	if c.Display == nil {
		c.Display = NopDisplay{}
	}
	if c.Leaderboard == nil {
		c.Leaderboard = NopLeaderboard{}
	}
	if c.UI == nil {
		c.UI = NopUI{}
	}
	return c
}

// NopDisplay discards score updates.
type NopDisplay struct{}

func (NopDisplay) Update(int) {}

// NopLeaderboard discards score submissions.
type NopLeaderboard struct{}

func (NopLeaderboard) Submit(string, int) error { return nil }

// NopUI ignores view switches.
type NopUI struct{}

func (NopUI) ShowLeaderboard() {}
func (NopUI) ShowStartMenu()   {}

// NopFeedback ignores feedback cues.
type NopFeedback struct{}

func (NopFeedback) PlayHitSound()       {}
func (NopFeedback) TriggerHapticPulse() {}

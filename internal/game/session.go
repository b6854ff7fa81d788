package game

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/beatfall/internal/config"
)

// LevelSpawner materializes the targets for a level. *Generator is the
// production implementation; tests substitute fakes.
type LevelSpawner interface {
	Generate(level int) error
}

// Session owns score, level, remaining target count and player identity.
// Every mutation goes through clamped setters, so score and the remaining
// count are never observably negative and the level never drops below 1.
// A session is active exactly while the player name is non-empty.
type Session struct {
	level               int
	score               int
	pointsPerTarget     int
	objectivesRemaining int
	playerName          string

	curve   Curve
	spawner LevelSpawner
	hub     *Hub
	collab  Collaborators
	logger  *log.Logger
}

// NewSession creates a session with construction defaults: level 1, score 0,
// no remaining targets, no player. The spawner is attached separately at the
// composition root because generator and session reference each other.
func NewSession(cfg config.GameConfig, hub *Hub, collab Collaborators, logger *log.Logger) *Session {
	points := cfg.Targets.PointsPerTarget
	if points < 1 {
		points = 1
	}
	return &Session{
		level:           1,
		pointsPerTarget: points,
		curve:           NewCurve(cfg),
		hub:             hub,
		collab:          collab.withDefaults(),
		logger:          logger,
	}
}

// AttachSpawner wires the level spawner in. Must be called before StartLevel.
func (s *Session) AttachSpawner(sp LevelSpawner) {
	s.spawner = sp
}

// Level returns the current level number.
func (s *Session) Level() int { return s.level }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// PointsPerTarget returns the score delta awarded per hit.
func (s *Session) PointsPerTarget() int { return s.pointsPerTarget }

// ObjectivesRemaining returns how many targets are left in the level.
func (s *Session) ObjectivesRemaining() int { return s.objectivesRemaining }

// PlayerName returns the active player's name, empty if no session.
func (s *Session) PlayerName() string { return s.playerName }

// Active reports whether a session is in progress.
func (s *Session) Active() bool { return s.playerName != "" }

func (s *Session) setScore(v int) {
	if v < 0 {
		v = 0
	}
	if v == s.score {
		return
	}
	s.score = v
	s.hub.emitScoreChanged(v)
	s.collab.Display.Update(v)
}

func (s *Session) setLevel(v int) {
	if v < 1 {
		v = 1
	}
	if v == s.level {
		return
	}
	s.level = v
	s.hub.emitLevelChanged(v)
}

func (s *Session) setObjectivesRemaining(v int) {
	if v < 0 {
		v = 0
	}
	if v == s.objectivesRemaining {
		return
	}
	s.objectivesRemaining = v
	s.hub.emitObjectivesChanged(v)
}

// SetPlayerName stores the trimmed name and starts a session. An empty or
// whitespace-only name is rejected with no mutation.
func (s *Session) SetPlayerName(name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		s.logger.Warn("rejected empty player name")
		return false
	}
	s.playerName = trimmed
	s.hub.emitPlayerNameChanged(trimmed)
	return true
}

// StartLevel resets the score, derives the level's target count and asks the
// spawner to generate the level. Requires an active session.
func (s *Session) StartLevel() bool {
	if !s.Active() {
		s.logger.Warn("cannot start level without a player")
		return false
	}
	s.setScore(0)
	s.setObjectivesRemaining(s.curve.TargetCount(s.level))

	if s.spawner == nil {
		s.logger.Warn("no level spawner attached")
	} else if err := s.spawner.Generate(s.level); err != nil {
		// Already surfaced as a generationError notification by the spawner.
		s.logger.Error("level generation failed", "level", s.level, "error", err)
	}

	s.hub.emitGameStarted()
	return true
}

// ObjectiveHit awards points for one hit target and decrements the remaining
// count, ending the level when it reaches zero. Requires an active session
// with targets remaining.
func (s *Session) ObjectiveHit() bool {
	if !s.Active() {
		s.logger.Warn("objective hit without an active session")
		return false
	}
	if s.objectivesRemaining <= 0 {
		s.logger.Warn("objective hit with no objectives remaining")
		return false
	}

	s.setScore(s.score + s.pointsPerTarget)
	s.setObjectivesRemaining(s.objectivesRemaining - 1)

	if s.objectivesRemaining == 0 {
		s.EndLevel()
	}
	return true
}

// AddScore grants bonus points. The remaining count is untouched, so bonus
// score can never complete a level; only ObjectiveHit can.
func (s *Session) AddScore(amount int) bool {
	if amount <= 0 {
		s.logger.Warn("rejected non-positive score delta", "amount", amount)
		return false
	}
	s.setScore(s.score + amount)
	return true
}

// AdvanceToNextLevel bumps the level and starts it.
func (s *Session) AdvanceToNextLevel() {
	s.setLevel(s.level + 1)
	s.StartLevel()
}

// RestartLevel starts the current level over.
func (s *Session) RestartLevel() {
	s.StartLevel()
}

// EndLevel completes the level: requires every target hit. Submits the score
// to the leaderboard and brings up the leaderboard view. A second call still
// satisfies the precondition and resubmits; deduplication is the sink's
// concern.
func (s *Session) EndLevel() bool {
	if s.objectivesRemaining != 0 {
		s.logger.Warn("cannot end level with objectives remaining", "remaining", s.objectivesRemaining)
		return false
	}

	s.hub.emitLevelCompleted()

	if s.playerName != "" {
		if err := s.collab.Leaderboard.Submit(s.playerName, s.score); err != nil {
			s.logger.Warn("leaderboard submit failed", "player", s.playerName, "error", err)
		}
	}
	s.collab.UI.ShowLeaderboard()
	return true
}

// ResetGame restores construction defaults and returns to the start menu.
func (s *Session) ResetGame() {
	s.setLevel(1)
	s.setScore(0)
	s.setObjectivesRemaining(0)
	s.playerName = ""
	s.collab.UI.ShowStartMenu()
}

package game

import (
	"testing"

	"github.com/vovakirdan/beatfall/internal/config"
)

// Wires the real session, generator and clock together the way the
// composition root does and plays a full level through target hits.
func TestFullLevelWiring(t *testing.T) {
	cfg := config.DefaultConfig()
	hub := NewHub()
	logger := testLogger()

	board := &fakeLeaderboard{}
	ui := &fakeUI{}

	clock := NewBeatClock(cfg.Beat, hub, NopFeedback{}, logger)
	sess := NewSession(cfg, hub, Collaborators{Leaderboard: board, UI: ui}, logger)
	gen := NewGenerator(cfg, clock, sess, hub, NopFeedback{}, 99, logger)
	sess.AttachSpawner(gen)

	completed := 0
	hub.OnLevelCompleted(func() { completed++ })

	sess.SetPlayerName("Alice")
	sess.StartLevel()
	clock.Start()

	objs := gen.Objectives()
	if len(objs) != sess.ObjectivesRemaining() {
		t.Fatalf("generator spawned %d targets but session expects %d", len(objs), sess.ObjectivesRemaining())
	}

	// Hit every target; each one reports back into the session.
	for _, obj := range objs {
		if !obj.Hit() {
			t.Fatalf("Hit() on objective %d failed", obj.ID)
		}
	}

	if sess.Score() != 30 {
		t.Errorf("Score = %d, want 30", sess.Score())
	}
	if sess.ObjectivesRemaining() != 0 {
		t.Errorf("ObjectivesRemaining = %d, want 0", sess.ObjectivesRemaining())
	}
	if completed != 1 {
		t.Errorf("levelCompleted notifications = %d, want 1", completed)
	}
	if len(board.scores) != 1 || board.scores[0] != 30 {
		t.Errorf("leaderboard submissions = %v, want [30]", board.scores)
	}

	// Hit targets are pruned after their destroy delay.
	gen.Tick(cfg.Objective.DestroyDelay + 0.1)
	if len(gen.Objectives()) != 0 {
		t.Errorf("spawn list has %d targets after destruction, want 0", len(gen.Objectives()))
	}

	// Advancing regenerates with the next level's parameters.
	sess.AdvanceToNextLevel()
	if len(gen.Objectives()) != 5 {
		t.Errorf("level 2 spawned %d targets, want 5", len(gen.Objectives()))
	}
	if sess.ObjectivesRemaining() != 5 {
		t.Errorf("ObjectivesRemaining = %d, want 5", sess.ObjectivesRemaining())
	}
}

// Score and remaining count stay non-negative across arbitrary operation
// sequences, including ones that hammer the rejection paths.
func TestInvariantsUnderOperationSequences(t *testing.T) {
	cfg := config.DefaultConfig()
	hub := NewHub()
	logger := testLogger()

	clock := NewBeatClock(cfg.Beat, hub, NopFeedback{}, logger)
	sess := NewSession(cfg, hub, Collaborators{}, logger)
	gen := NewGenerator(cfg, clock, sess, hub, NopFeedback{}, 1, logger)
	sess.AttachSpawner(gen)

	check := func(step string) {
		if sess.Score() < 0 {
			t.Fatalf("%s: score went negative: %d", step, sess.Score())
		}
		if sess.ObjectivesRemaining() < 0 {
			t.Fatalf("%s: remaining went negative: %d", step, sess.ObjectivesRemaining())
		}
		if sess.Level() < 1 {
			t.Fatalf("%s: level dropped below 1: %d", step, sess.Level())
		}
	}

	ops := []struct {
		name string
		run  func()
	}{
		{"hit before start", func() { sess.ObjectiveHit() }},
		{"bad bonus", func() { sess.AddScore(-100) }},
		{"end too early", func() { sess.EndLevel() }},
		{"name", func() { sess.SetPlayerName("Mallory") }},
		{"start", func() { sess.StartLevel() }},
		{"end too early again", func() { sess.EndLevel() }},
		{"hit", func() { sess.ObjectiveHit() }},
		{"restart", func() { sess.RestartLevel() }},
		{"drain level", func() {
			for sess.ObjectivesRemaining() > 0 {
				sess.ObjectiveHit()
			}
		}},
		{"hit after drain", func() { sess.ObjectiveHit() }},
		{"advance", func() { sess.AdvanceToNextLevel() }},
		{"reset", func() { sess.ResetGame() }},
		{"hit after reset", func() { sess.ObjectiveHit() }},
	}

	for _, op := range ops {
		op.run()
		check(op.name)
	}
}

package game

import (
	"testing"

	"github.com/vovakirdan/beatfall/internal/config"
)

type fakeSpawner struct {
	levels []int
	err    error
}

func (f *fakeSpawner) Generate(level int) error {
	f.levels = append(f.levels, level)
	return f.err
}

type fakeLeaderboard struct {
	names  []string
	scores []int
}

func (f *fakeLeaderboard) Submit(name string, score int) error {
	f.names = append(f.names, name)
	f.scores = append(f.scores, score)
	return nil
}

type fakeUI struct {
	leaderboardShown int
	startMenuShown   int
}

func (f *fakeUI) ShowLeaderboard() { f.leaderboardShown++ }
func (f *fakeUI) ShowStartMenu()   { f.startMenuShown++ }

func newTestSession(hub *Hub) (*Session, *fakeSpawner, *fakeLeaderboard, *fakeUI) {
	spawner := &fakeSpawner{}
	board := &fakeLeaderboard{}
	ui := &fakeUI{}
	sess := NewSession(config.DefaultConfig(), hub, Collaborators{
		Leaderboard: board,
		UI:          ui,
	}, testLogger())
	sess.AttachSpawner(spawner)
	return sess, spawner, board, ui
}

func TestSessionDefaults(t *testing.T) {
	sess, _, _, _ := newTestSession(NewHub())

	if sess.Level() != 1 {
		t.Errorf("Level = %d, want 1", sess.Level())
	}
	if sess.Score() != 0 {
		t.Errorf("Score = %d, want 0", sess.Score())
	}
	if sess.PointsPerTarget() != 10 {
		t.Errorf("PointsPerTarget = %d, want 10", sess.PointsPerTarget())
	}
	if sess.ObjectivesRemaining() != 0 {
		t.Errorf("ObjectivesRemaining = %d, want 0", sess.ObjectivesRemaining())
	}
	if sess.Active() {
		t.Error("fresh session should not be active")
	}
}

func TestSetPlayerName(t *testing.T) {
	hub := NewHub()
	sess, _, _, _ := newTestSession(hub)

	var named []string
	hub.OnPlayerNameChanged(func(name string) { named = append(named, name) })

	if sess.SetPlayerName("") {
		t.Error("empty name should be rejected")
	}
	if sess.SetPlayerName("   ") {
		t.Error("whitespace-only name should be rejected")
	}
	if sess.Active() {
		t.Error("rejected names must not activate the session")
	}

	if !sess.SetPlayerName("  Alice  ") {
		t.Fatal("valid name should be accepted")
	}
	if sess.PlayerName() != "Alice" {
		t.Errorf("PlayerName = %q, want trimmed %q", sess.PlayerName(), "Alice")
	}
	if len(named) != 1 || named[0] != "Alice" {
		t.Errorf("name notifications = %v, want [Alice]", named)
	}
}

func TestStartLevelRequiresActiveSession(t *testing.T) {
	sess, spawner, _, _ := newTestSession(NewHub())

	if sess.StartLevel() {
		t.Error("StartLevel without a player should be a no-op")
	}
	if len(spawner.levels) != 0 {
		t.Errorf("spawner was called %d times, want 0", len(spawner.levels))
	}
}

func TestLevelPlaythrough(t *testing.T) {
	hub := NewHub()
	sess, spawner, board, ui := newTestSession(hub)

	completed := 0
	hub.OnLevelCompleted(func() { completed++ })
	started := 0
	hub.OnGameStarted(func() { started++ })

	sess.SetPlayerName("Alice")
	if !sess.StartLevel() {
		t.Fatal("StartLevel failed")
	}

	if started != 1 {
		t.Errorf("gameStarted notifications = %d, want 1", started)
	}
	if len(spawner.levels) != 1 || spawner.levels[0] != 1 {
		t.Errorf("spawner levels = %v, want [1]", spawner.levels)
	}
	if sess.ObjectivesRemaining() != 3 {
		t.Fatalf("ObjectivesRemaining = %d, want 3", sess.ObjectivesRemaining())
	}

	sess.ObjectiveHit()
	sess.ObjectiveHit()
	if completed != 0 {
		t.Fatalf("level completed after %d hits, want completion only on the last", 2)
	}

	sess.ObjectiveHit()

	if sess.Score() != 30 {
		t.Errorf("Score = %d, want 30", sess.Score())
	}
	if sess.ObjectivesRemaining() != 0 {
		t.Errorf("ObjectivesRemaining = %d, want 0", sess.ObjectivesRemaining())
	}
	if completed != 1 {
		t.Errorf("levelCompleted notifications = %d, want exactly 1", completed)
	}
	if len(board.names) != 1 || board.names[0] != "Alice" || board.scores[0] != 30 {
		t.Errorf("leaderboard submissions = %v %v, want [Alice] [30]", board.names, board.scores)
	}
	if ui.leaderboardShown != 1 {
		t.Errorf("leaderboard shown %d times, want 1", ui.leaderboardShown)
	}

	// A fourth hit has nothing left to consume.
	if sess.ObjectiveHit() {
		t.Error("ObjectiveHit with no objectives remaining should be rejected")
	}
	if sess.Score() != 30 {
		t.Errorf("rejected hit changed score to %d", sess.Score())
	}
}

func TestObjectiveHitRequiresActiveSession(t *testing.T) {
	sess, _, _, _ := newTestSession(NewHub())
	if sess.ObjectiveHit() {
		t.Error("ObjectiveHit without a session should be rejected")
	}
}

func TestAddScore(t *testing.T) {
	hub := NewHub()
	sess, _, _, _ := newTestSession(hub)

	completed := 0
	hub.OnLevelCompleted(func() { completed++ })

	sess.SetPlayerName("Alice")
	sess.StartLevel()

	if sess.AddScore(0) {
		t.Error("AddScore(0) should be rejected")
	}
	if sess.AddScore(-10) {
		t.Error("AddScore(-10) should be rejected")
	}
	if !sess.AddScore(25) {
		t.Error("AddScore(25) should succeed")
	}

	if sess.Score() != 25 {
		t.Errorf("Score = %d, want 25", sess.Score())
	}

	// Bonus score never touches the remaining count, so it can never
	// complete a level by itself.
	if sess.ObjectivesRemaining() != 3 {
		t.Errorf("ObjectivesRemaining = %d, want 3", sess.ObjectivesRemaining())
	}
	if completed != 0 {
		t.Errorf("levelCompleted notifications = %d, want 0", completed)
	}
}

func TestAdvanceToNextLevel(t *testing.T) {
	hub := NewHub()
	sess, spawner, _, _ := newTestSession(hub)

	sess.SetPlayerName("Alice")
	sess.StartLevel()
	sess.AddScore(100)

	var levels []int
	hub.OnLevelChanged(func(level int) { levels = append(levels, level) })

	sess.AdvanceToNextLevel()

	if sess.Level() != 2 {
		t.Errorf("Level = %d, want 2", sess.Level())
	}
	if len(levels) != 1 || levels[0] != 2 {
		t.Errorf("levelChanged notifications = %v, want [2]", levels)
	}
	if sess.Score() != 0 {
		t.Errorf("Score = %d, want reset to 0", sess.Score())
	}
	if sess.ObjectivesRemaining() != 5 { // targetCount(2) with defaults
		t.Errorf("ObjectivesRemaining = %d, want 5", sess.ObjectivesRemaining())
	}
	if len(spawner.levels) != 2 || spawner.levels[1] != 2 {
		t.Errorf("spawner levels = %v, want second call with level 2", spawner.levels)
	}
}

func TestRestartLevelKeepsLevel(t *testing.T) {
	sess, spawner, _, _ := newTestSession(NewHub())

	sess.SetPlayerName("Alice")
	sess.StartLevel()
	sess.ObjectiveHit()

	sess.RestartLevel()

	if sess.Level() != 1 {
		t.Errorf("Level = %d, want 1", sess.Level())
	}
	if sess.Score() != 0 {
		t.Errorf("Score = %d, want 0", sess.Score())
	}
	if sess.ObjectivesRemaining() != 3 {
		t.Errorf("ObjectivesRemaining = %d, want 3", sess.ObjectivesRemaining())
	}
	if len(spawner.levels) != 2 || spawner.levels[1] != 1 {
		t.Errorf("spawner levels = %v, want restart at level 1", spawner.levels)
	}
}

func TestEndLevelPrecondition(t *testing.T) {
	sess, _, board, _ := newTestSession(NewHub())

	sess.SetPlayerName("Alice")
	sess.StartLevel()

	if sess.EndLevel() {
		t.Error("EndLevel with objectives remaining should be rejected")
	}
	if len(board.names) != 0 {
		t.Errorf("rejected EndLevel submitted %d scores", len(board.names))
	}
}

func TestEndLevelResubmits(t *testing.T) {
	sess, _, board, _ := newTestSession(NewHub())

	sess.SetPlayerName("Alice")
	sess.StartLevel()
	sess.ObjectiveHit()
	sess.ObjectiveHit()
	sess.ObjectiveHit() // triggers EndLevel internally

	// Objectives are already at zero, so the precondition still holds and
	// the score is submitted again. Deduplication is the sink's problem.
	if !sess.EndLevel() {
		t.Fatal("repeated EndLevel should still satisfy its precondition")
	}
	if len(board.names) != 2 {
		t.Errorf("leaderboard submissions = %d, want 2", len(board.names))
	}
}

func TestResetGame(t *testing.T) {
	sess, _, _, ui := newTestSession(NewHub())

	sess.SetPlayerName("Alice")
	sess.StartLevel()
	sess.ObjectiveHit()
	sess.AdvanceToNextLevel()

	sess.ResetGame()

	if sess.Level() != 1 || sess.Score() != 0 || sess.ObjectivesRemaining() != 0 {
		t.Errorf("state after reset = level %d score %d remaining %d, want 1/0/0",
			sess.Level(), sess.Score(), sess.ObjectivesRemaining())
	}
	if sess.Active() {
		t.Error("session should be inactive after reset")
	}
	if ui.startMenuShown != 1 {
		t.Errorf("start menu shown %d times, want 1", ui.startMenuShown)
	}
}

func TestResetGameReproducesFreshSession(t *testing.T) {
	sess, _, _, _ := newTestSession(NewHub())

	sess.SetPlayerName("Alice")
	sess.StartLevel()
	sess.ObjectiveHit()
	sess.AdvanceToNextLevel()
	sess.ResetGame()

	sess.SetPlayerName("Bob")
	sess.StartLevel()

	fresh, _, _, _ := newTestSession(NewHub())
	fresh.SetPlayerName("Bob")
	fresh.StartLevel()

	if sess.ObjectivesRemaining() != fresh.ObjectivesRemaining() {
		t.Errorf("remaining after reset = %d, fresh session = %d",
			sess.ObjectivesRemaining(), fresh.ObjectivesRemaining())
	}
	if sess.Level() != fresh.Level() {
		t.Errorf("level after reset = %d, fresh session = %d", sess.Level(), fresh.Level())
	}
}

func TestNotificationsFireOnlyOnChange(t *testing.T) {
	hub := NewHub()
	sess, _, _, _ := newTestSession(hub)

	scoreEvents := 0
	hub.OnScoreChanged(func(int) { scoreEvents++ })

	sess.SetPlayerName("Alice")
	sess.StartLevel() // score already 0, no notification

	if scoreEvents != 0 {
		t.Errorf("scoreChanged fired %d times for an unchanged score, want 0", scoreEvents)
	}

	sess.ObjectiveHit()
	if scoreEvents != 1 {
		t.Errorf("scoreChanged fired %d times after one hit, want 1", scoreEvents)
	}

	sess.RestartLevel() // score 10 -> 0, one notification
	if scoreEvents != 2 {
		t.Errorf("scoreChanged fired %d times after restart, want 2", scoreEvents)
	}
}

func TestScoreDisplayUpdates(t *testing.T) {
	hub := NewHub()
	var shown []int
	display := displayFunc(func(score int) { shown = append(shown, score) })

	sess := NewSession(config.DefaultConfig(), hub, Collaborators{Display: display}, testLogger())
	sess.AttachSpawner(&fakeSpawner{})

	sess.SetPlayerName("Alice")
	sess.StartLevel()
	sess.ObjectiveHit()
	sess.AddScore(5)

	want := []int{10, 15}
	if len(shown) != len(want) {
		t.Fatalf("display updates = %v, want %v", shown, want)
	}
	for i := range want {
		if shown[i] != want[i] {
			t.Errorf("display update %d = %d, want %d", i, shown[i], want[i])
		}
	}
}

type displayFunc func(score int)

func (f displayFunc) Update(score int) { f(score) }

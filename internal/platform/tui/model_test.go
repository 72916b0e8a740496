package tui

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/registry"
	"github.com/vovakirdan/arcade-hub/internal/storage"
)

// stubGame starts on Confirm, ends on Down with endScore and counts what it sees.
type stubGame struct {
	core.Session
	order    core.ScoreOrder
	endScore int
	endWon   bool
	panicky  bool
	steps    int
	resets   int
	width    int
	pressed  map[core.Action]int
}

func newStub() *stubGame {
	return &stubGame{pressed: make(map[core.Action]int)}
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.Idle()
	if cfg.Difficulty.Level != "" {
		_ = g.SetDifficulty(cfg.Difficulty)
	}
	g.resets++
	g.width = cfg.ScreenW
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	for a := range in.Actions {
		g.pressed[a]++
	}
	if g.panicky && in.Has(core.ActionFire) {
		panic("boom")
	}
	if g.Control(in, func() {}) && in.Has(core.ActionDown) {
		g.SetScore(g.endScore)
		g.End(g.endWon)
	}
	return g.Result(-1, -1)
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub "+g.Phase().String())
}

func (g *stubGame) State() core.GameState       { return g.Session.State(-1, -1) }
func (g *stubGame) ScoreOrder() core.ScoreOrder { return g.order }

func init() {
	registry.Register("stub", func() registry.Game { return newStub() })
}

type recorder struct {
	played []string
	volume float64
}

func (r *recorder) Play(name string)    { r.played = append(r.played, name) }
func (r *recorder) SetVolume(v float64) { r.volume = min(max(v, 0), 1) }
func (r *recorder) Volume() float64     { return r.volume }

// driver feeds synthetic frames to a model.
type driver struct {
	m   *Model
	now time.Time
}

func start(t *testing.T, g registry.Game, opts Options) *driver {
	t.Helper()
	if opts.Config.ScreenW == 0 {
		opts.Config = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	m := NewModel(g, opts)
	t.Cleanup(m.Close)

	m.Init()
	d := &driver{m: m, now: time.Now()}
	d.m.Update(TickMsg{Token: m.loop.Token(), Time: d.now})
	return d
}

// advance delivers one frame n fixed steps after the previous one.
func (d *driver) advance(n int) tea.Cmd {
	d.now = d.now.Add(time.Duration(n) * d.m.loop.Step())
	_, cmd := d.m.Update(TickMsg{Token: d.m.loop.Token(), Time: d.now})
	return cmd
}

func (d *driver) press(code string) tea.Cmd {
	_, cmd := d.m.Update(keyMsg(code))
	return cmd
}

func keyMsg(code string) tea.KeyMsg {
	switch code {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(code)}
}

func TestFramesRunFixedSteps(t *testing.T) {
	g := newStub()
	d := start(t, g, Options{})

	if g.steps != 0 {
		t.Fatalf("first frame stepped %d times, want 0", g.steps)
	}
	d.advance(6)
	if g.steps != 6 {
		t.Errorf("steps = %d, want 6", g.steps)
	}
	if cmd := d.advance(1); cmd == nil {
		t.Error("running loop should schedule the next frame")
	}
}

func TestStaleFrameIgnored(t *testing.T) {
	g := newStub()
	d := start(t, g, Options{})

	stale := d.m.loop.Token()
	d.m.loop.Stop()
	d.m.loop.Start()

	_, cmd := d.m.Update(TickMsg{Token: stale, Time: d.now.Add(time.Second)})
	if cmd != nil || g.steps != 0 {
		t.Errorf("stale frame ran: cmd=%v steps=%d", cmd != nil, g.steps)
	}
}

func TestKeyPressReachesGameOnce(t *testing.T) {
	g := newStub()
	d := start(t, g, Options{})

	d.press("enter")
	d.advance(3)

	if g.pressed[core.ActionConfirm] != 1 {
		t.Errorf("Confirm seen %d times, want 1", g.pressed[core.ActionConfirm])
	}
	if !g.Playing() {
		t.Errorf("phase = %v, want playing", g.Phase())
	}
}

func TestQuickTapsEachReachGame(t *testing.T) {
	g := newStub()
	d := start(t, g, Options{})

	d.press("left")
	d.advance(1)
	d.press("left")
	d.advance(1)

	if g.pressed[core.ActionLeft] != 2 {
		t.Errorf("Left seen %d times, want 2", g.pressed[core.ActionLeft])
	}
}

func TestFrameRateKeepsGameClock(t *testing.T) {
	g := newStub()
	d := start(t, g, Options{Config: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1, FrameRate: 30}})

	if d.m.interval != time.Second/30 {
		t.Fatalf("frame interval = %v, want %v", d.m.interval, time.Second/30)
	}
	if d.m.loop.Step() != core.DefaultStep {
		t.Fatalf("update step = %v, want %v", d.m.loop.Step(), core.DefaultStep)
	}

	// One wall-clock second of 30 fps frames.
	for range 30 {
		d.now = d.now.Add(d.m.interval)
		d.m.Update(TickMsg{Token: d.m.loop.Token(), Time: d.now})
	}
	if g.steps != 60 {
		t.Errorf("steps in one second = %d, want 60", g.steps)
	}
}

func TestStartSoundPlayed(t *testing.T) {
	g := newStub()
	rec := &recorder{volume: 0.5}
	d := start(t, g, Options{Audio: rec})

	d.press("enter")
	d.advance(1)

	if len(rec.played) == 0 || rec.played[0] != string(core.SoundStart) {
		t.Errorf("played = %v, want start first", rec.played)
	}
}

func TestGameOverRecordsScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	local := storage.NewLocal(store, log.New(io.Discard))

	g := newStub()
	g.endScore = 42
	d := start(t, g, Options{Local: local, Store: store})

	d.press("enter")
	d.advance(1)
	d.press("down")
	d.advance(1)
	d.advance(30)

	if !d.m.State().GameOver() {
		t.Fatalf("state = %+v, want game over", d.m.State())
	}
	if best, ok := local.HighScore("stub", core.LevelMedium); !ok || best != 42 {
		t.Errorf("high score = %d, %v; want 42", best, ok)
	}
	runs, err := store.TopScores("stub", "", core.HigherIsBetter, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Score != 42 || runs[0].RunID == "" {
		t.Errorf("history = %+v, want one run of 42", runs)
	}
}

func TestUnsolvedTimedRunNotRecorded(t *testing.T) {
	local := storage.NewLocal(storage.NewMemory(), log.New(io.Discard))
	g := newStub()
	g.order = core.LowerIsBetter
	g.endScore = 5
	d := start(t, g, Options{Local: local})

	d.press("enter")
	d.advance(1)
	d.press("down")
	d.advance(1)

	if _, ok := local.HighScore("stub", core.LevelMedium); ok {
		t.Error("lost run of a lower-is-better game was stored")
	}

	// A solved run counts.
	g.endWon = true
	d.press("r")
	d.advance(1)
	d.press("s")
	d.advance(1)
	if best, ok := local.HighScore("stub", core.LevelMedium); !ok || best != 5 {
		t.Errorf("high score = %d, %v; want 5", best, ok)
	}
}

func TestDifficultyKeysPersistWhileIdle(t *testing.T) {
	local := storage.NewLocal(storage.NewMemory(), log.New(io.Discard))
	g := newStub()
	d := start(t, g, Options{Local: local})

	d.press("3")
	if got := g.Difficulty().Level; got != core.LevelHard {
		t.Errorf("game level = %s, want hard", got)
	}
	if got := local.Difficulty("stub"); got != core.LevelHard {
		t.Errorf("stored level = %s, want hard", got)
	}

	d.press("tab")
	if got := g.Difficulty().Level; got != core.LevelEasy {
		t.Errorf("after tab level = %s, want easy", got)
	}
}

func TestDifficultyLockedDuringRun(t *testing.T) {
	local := storage.NewLocal(storage.NewMemory(), log.New(io.Discard))
	g := newStub()
	d := start(t, g, Options{Local: local})

	d.press("enter")
	d.advance(1)
	d.press("1")

	if got := g.Difficulty().Level; got != core.LevelMedium {
		t.Errorf("level changed mid-run to %s", got)
	}
	if got := local.Difficulty("stub"); got != core.LevelMedium {
		t.Errorf("stored level = %s, want medium", got)
	}
	if !strings.Contains(d.m.status, "Finish the run") {
		t.Errorf("status = %q", d.m.status)
	}
}

func TestStoredDifficultyUsedOnStart(t *testing.T) {
	local := storage.NewLocal(storage.NewMemory(), log.New(io.Discard))
	local.SetDifficulty("stub", core.LevelEasy)

	g := newStub()
	start(t, g, Options{Local: local})

	if got := g.Difficulty().Level; got != core.LevelEasy {
		t.Errorf("level = %s, want easy", got)
	}
}

func TestVolumeAndMute(t *testing.T) {
	rec := &recorder{volume: 0.5}
	d := start(t, newStub(), Options{Audio: rec})

	d.press("+")
	if rec.volume < 0.59 || rec.volume > 0.61 {
		t.Errorf("volume = %v, want 0.6", rec.volume)
	}
	d.press("m")
	if rec.volume != 0 {
		t.Errorf("muted volume = %v", rec.volume)
	}
	d.press("m")
	if rec.volume < 0.59 || rec.volume > 0.61 {
		t.Errorf("unmuted volume = %v, want 0.6", rec.volume)
	}
	for range 20 {
		d.press("-")
	}
	if rec.volume != 0 {
		t.Errorf("volume = %v, want clamped to 0", rec.volume)
	}
}

func TestPanicHaltsLoop(t *testing.T) {
	g := newStub()
	g.panicky = true
	d := start(t, g, Options{})

	d.press("enter")
	d.advance(1)
	d.press(" ")
	cmd := d.advance(1)

	if cmd != nil {
		t.Error("halted loop scheduled another frame")
	}
	if !errors.Is(d.m.Err(), core.ErrLoopHalted) {
		t.Errorf("Err() = %v, want ErrLoopHalted", d.m.Err())
	}
	if !strings.Contains(d.m.View(), "Something went wrong") {
		t.Error("view does not show the error panel")
	}

	steps := g.steps
	d.advance(5)
	if g.steps != steps {
		t.Error("game stepped after the loop halted")
	}
}

func TestResizeAppliedWhenSettled(t *testing.T) {
	g := newStub()
	d := start(t, g, Options{})
	resets := g.resets

	d.m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != resets {
		t.Fatal("game reset before the resize settled")
	}
	d.m.Update(resizeSettledMsg{})
	if g.width != 100 {
		t.Errorf("game width = %d, want 100", g.width)
	}
}

func TestResizeDeferredDuringRun(t *testing.T) {
	g := newStub()
	g.endScore = 1
	d := start(t, g, Options{})

	d.press("enter")
	d.advance(1)
	d.m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	d.m.Update(resizeSettledMsg{})
	if g.width != 80 {
		t.Fatalf("run was reset by a resize")
	}

	d.press("down")
	d.advance(1)
	if g.width != 80 {
		t.Fatal("game-over screen was reset before a key press")
	}

	d.press("r")
	d.advance(1)
	if g.width != 100 {
		t.Errorf("game width = %d, want 100 after restart", g.width)
	}
	if !g.Playing() {
		t.Errorf("restart after resize left phase %v", g.Phase())
	}
}

func TestQuit(t *testing.T) {
	d := start(t, newStub(), Options{})

	if cmd := d.press("q"); cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if d.m.View() != "" {
		t.Error("view should be empty after quitting")
	}
	if d.m.loop.Running() {
		t.Error("loop still running after quit")
	}
}

func TestViewHasFooter(t *testing.T) {
	d := start(t, newStub(), Options{})
	d.advance(1)

	view := d.m.View()
	if !strings.Contains(view, "stub idle") {
		t.Errorf("view misses game output:\n%s", view)
	}
	if !strings.Contains(view, "medium") {
		t.Errorf("footer misses the level:\n%s", view)
	}
	if got := strings.Count(view, "\n") + 1; got != 24 {
		t.Errorf("view has %d rows, want 24", got)
	}
}

package game

import (
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/vi-pong/audio"
)

// fakeSound records requested cues
type fakeSound struct {
	played []audio.SoundType
	muted  bool
}

func (f *fakeSound) Play(st audio.SoundType) { f.played = append(f.played, st) }
func (f *fakeSound) ToggleMute() bool        { f.muted = !f.muted; return f.muted }
func (f *fakeSound) IsMuted() bool           { return f.muted }

func newTestDriver(t *testing.T) (*Driver, *fakeSound, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 25)
	t.Cleanup(screen.Fini)

	sound := &fakeSound{}
	return NewDriver(screen, 42, sound), sound, screen
}

func key(r rune) tcell.Event {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// TestNewDriverServes verifies the ball is served before the first frame
func TestNewDriverServes(t *testing.T) {
	d, _, _ := newTestDriver(t)
	b := d.World.Ball

	if b.X() != 320 || b.Y() != 240 {
		t.Errorf("Expected centered ball, got (%v,%v)", b.X(), b.Y())
	}
	if math.Abs(b.DX()) != b.Speed {
		t.Errorf("Expected |dx| = %v, got %v", b.Speed, math.Abs(b.DX()))
	}
	// Registered systems move the opponent toward a ball parked above its dead zone
	d.World.Ball.Pos = mgl64.Vec2{320, 60}
	d.World.Ball.Vel = mgl64.Vec2{}
	d.Tick()
	if d.World.Opponent.Y != 185 {
		t.Errorf("Expected opponent system to run, got y=%v", d.World.Opponent.Y)
	}
}

func TestHandleEventQuit(t *testing.T) {
	d, _, _ := newTestDriver(t)

	if d.HandleEvent(key('x')) != true {
		t.Error("Expected unrelated key to keep running")
	}
	if d.HandleEvent(key('q')) != false {
		t.Error("Expected q to quit")
	}
	if d.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) != false {
		t.Error("Expected Esc to quit")
	}
}

// TestMouseMovesPlayer verifies pointer rows map to a centered, clamped paddle
func TestMouseMovesPlayer(t *testing.T) {
	d, _, _ := newTestDriver(t)

	// Row 12 center is y=250 on an 80x25 screen
	d.HandleEvent(tcell.NewEventMouse(10, 12, tcell.ButtonNone, tcell.ModNone))
	if d.World.Player.Y != 200 {
		t.Errorf("Expected player y 200, got %v", d.World.Player.Y)
	}

	// Status row maps below the arena and clamps
	d.HandleEvent(tcell.NewEventMouse(10, 24, tcell.ButtonNone, tcell.ModNone))
	if want := d.World.Arena.Height - d.World.Player.Height; d.World.Player.Y != want {
		t.Errorf("Expected player clamped to %v, got %v", want, d.World.Player.Y)
	}

	// The opponent is never driven by the pointer
	if d.World.Opponent.Y != 190 {
		t.Errorf("Expected opponent untouched, got %v", d.World.Opponent.Y)
	}
}

func TestResizeRemapsPointer(t *testing.T) {
	d, _, _ := newTestDriver(t)

	d.HandleEvent(tcell.NewEventResize(160, 49))
	// 48 arena rows: row 24 center is y=245
	d.HandleEvent(tcell.NewEventMouse(10, 24, tcell.ButtonNone, tcell.ModNone))

	if d.World.Player.Y != 195 {
		t.Errorf("Expected player y 195 after resize, got %v", d.World.Player.Y)
	}
}

func TestPauseSuspendsSteps(t *testing.T) {
	d, _, _ := newTestDriver(t)

	d.Tick()
	if d.World.FrameNumber() != 1 {
		t.Fatalf("Expected frame 1, got %d", d.World.FrameNumber())
	}

	d.HandleEvent(key('p'))
	if !d.IsPaused() {
		t.Fatal("Expected paused")
	}
	ball := d.World.Ball
	d.Tick()
	d.Tick()
	if d.World.FrameNumber() != 1 || d.World.Ball != ball {
		t.Error("Expected no simulation progress while paused")
	}

	d.HandleEvent(key('p'))
	d.Tick()
	if d.World.FrameNumber() != 2 {
		t.Errorf("Expected frame 2 after resume, got %d", d.World.FrameNumber())
	}
}

func TestMuteToggle(t *testing.T) {
	d, sound, _ := newTestDriver(t)
	d.HandleEvent(key('m'))
	if !sound.muted {
		t.Error("Expected m to toggle mute")
	}
}

// TestEventsBecomeSounds verifies step events fan out to the sound player
func TestEventsBecomeSounds(t *testing.T) {
	d, sound, _ := newTestDriver(t)

	d.World.Ball.Pos = mgl64.Vec2{320, 14}
	d.World.Ball.Vel = mgl64.Vec2{6, -5}
	d.Tick()

	d.World.Ball.Pos = mgl64.Vec2{46, d.World.Player.CenterY()}
	d.World.Ball.Vel = mgl64.Vec2{-6, 0}
	d.Tick()

	d.World.Player.Y = 0
	d.World.Ball.Pos = mgl64.Vec2{12, 400}
	d.World.Ball.Vel = mgl64.Vec2{-6, 0}
	d.Tick()

	want := []audio.SoundType{audio.SoundWall, audio.SoundPaddle, audio.SoundReset}
	if len(sound.played) != len(want) {
		t.Fatalf("Expected %v, got %v", want, sound.played)
	}
	for i := range want {
		if sound.played[i] != want[i] {
			t.Errorf("Cue %d: expected %s, got %s", i, want[i], sound.played[i])
		}
	}
	if d.World.Events.Len() != 0 {
		t.Error("Expected event queue drained")
	}
}

// TestRunLoop verifies the single consumer handles both producers and exits on quit
func TestRunLoop(t *testing.T) {
	d, _, _ := newTestDriver(t)

	events := make(chan tcell.Event, 4)
	ticks := make(chan time.Time)
	done := make(chan error, 1)

	go func() { done <- d.Run(events, ticks) }()

	ticks <- time.Now()
	ticks <- time.Now()
	events <- key('q')

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected nil error, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after quit")
	}

	if d.World.FrameNumber() != 2 {
		t.Errorf("Expected 2 frames, got %d", d.World.FrameNumber())
	}
}

func TestRunExitsOnClosedEvents(t *testing.T) {
	d, _, _ := newTestDriver(t)

	events := make(chan tcell.Event)
	close(events)

	if err := d.Run(events, nil); err != nil {
		t.Errorf("Expected nil error, got %v", err)
	}
}

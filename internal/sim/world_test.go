package sim

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tsprite/internal/config"
	"github.com/vovakirdan/tsprite/internal/sprite"
)

func byY(a, b *sprite.Sprite) float64 {
	return b.Y - a.Y
}

func TestStepWallBounce(t *testing.T) {
	w := NewWorld(100, 100)
	s := w.Spawn(10, 10)
	s.MoveTo(85, 50).SetVelocity(100, 0)

	res := w.Step(100)

	if s.X != 90 {
		t.Errorf("X = %v, expected 90 after clamping", s.X)
	}
	if s.VX != -0.1 {
		t.Errorf("VX = %v, expected -0.1 after bounce", s.VX)
	}
	if res.WallHits != 1 || res.Tick != 1 {
		t.Errorf("StepResult = %+v, expected 1 wall hit on tick 1", res)
	}
}

func TestStepCollisionBounce(t *testing.T) {
	w := NewWorld(200, 200)
	a := w.Spawn(20, 20)
	a.MoveTo(10, 10).SetVelocity(100, 0)
	b := w.Spawn(20, 20)
	b.MoveTo(25, 10).SetVelocity(-100, 0)

	res := w.Step(10)

	if len(res.Collisions) != 1 {
		t.Fatalf("collisions = %d, expected 1", len(res.Collisions))
	}
	if res.Collisions[0].A != a || res.Collisions[0].B != b {
		t.Error("collision pair not in sprite order")
	}
	if a.VX >= 0 || b.VX <= 0 {
		t.Errorf("velocities after bounce = %v, %v; expected them to point apart", a.VX, b.VX)
	}
	if a.VY != 0 || b.VY != 0 {
		t.Error("horizontal collision should not flip vertical velocity")
	}
	if w.Stats().Collisions != 1 {
		t.Errorf("Stats().Collisions = %d, expected 1", w.Stats().Collisions)
	}
}

func TestBounceAxis(t *testing.T) {
	ids := sprite.NewIDGen(0)
	tests := []struct {
		name         string
		ox, oy       float64
		flipX, flipY bool
	}{
		{"wider gap on x", 15, 5, true, false},
		{"wider gap on y", 5, 15, false, true},
		{"equal gaps flip x", 10, 10, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := sprite.New(ids, 20, 20).SetVelocity(100, 100)
			other := sprite.New(ids, 20, 20).MoveTo(tc.ox, tc.oy)
			bounce(s, other)
			if (s.VX < 0) != tc.flipX || (s.VY < 0) != tc.flipY {
				t.Errorf("velocity = (%v, %v), expected flipX=%v flipY=%v", s.VX, s.VY, tc.flipX, tc.flipY)
			}
		})
	}
}

func TestStepResortsDrawOrder(t *testing.T) {
	w := NewWorld(200, 200, WithDrawOrder(byY))
	a := w.Spawn(10, 10)
	a.MoveTo(10, 10).SetVelocity(0, 1000)
	w.Spawn(10, 10).MoveTo(100, 50)
	w.DrawOrder.Resort(w.Sprites[1])

	if got := w.DrawOrder.String(); got != "0,1" {
		t.Fatalf("initial order = %q, expected %q", got, "0,1")
	}

	w.Step(50)

	if a.Y != 60 {
		t.Fatalf("Y = %v, expected 60", a.Y)
	}
	if got := w.DrawOrder.String(); got != "1,0" {
		t.Errorf("order after step = %q, expected %q", got, "1,0")
	}

	var drawn []string
	w.Drawables(func(s *sprite.Sprite) { drawn = append(drawn, s.Name) })
	if strings.Join(drawn, ",") != "1,0" {
		t.Errorf("Drawables() order = %v, expected [1 0]", drawn)
	}
}

func TestStepExpiresAndRefills(t *testing.T) {
	spawner := func(w *World) *sprite.Sprite {
		return sprite.New(w.IDs, 10, 10).MoveTo(50, 50)
	}
	w := NewWorld(200, 200, WithSpawner(spawner), WithLifetime(100), WithPopulation(2), WithDrawOrder(byY))
	w.SpawnOne()
	w.SpawnOne()

	res := w.Step(100)

	if res.Purged != 2 {
		t.Errorf("Purged = %d, expected 2", res.Purged)
	}
	if res.Active != 2 || len(w.Sprites) != 2 || w.DrawOrder.Len() != 2 {
		t.Errorf("Active = %d, sprites = %d, draw order = %d; expected 2 each",
			res.Active, len(w.Sprites), w.DrawOrder.Len())
	}
	if w.Sprites[0].UID() != 2 || w.Sprites[1].UID() != 3 {
		t.Errorf("refilled uids = %d, %d; expected 2, 3", w.Sprites[0].UID(), w.Sprites[1].UID())
	}
	if st := w.Stats(); st.Spawned != 4 || st.Purged != 2 {
		t.Errorf("Stats() = %+v, expected 4 spawned and 2 purged", st)
	}
}

func TestStepPurgesDisabled(t *testing.T) {
	w := NewWorld(200, 200, WithDrawOrder(byY))
	a := w.Spawn(10, 10)
	w.Spawn(10, 10).MoveTo(100, 100)
	a.Disable()

	res := w.Step(16)

	if res.Purged != 1 || len(w.Sprites) != 1 || w.DrawOrder.Contains(a) {
		t.Errorf("disabled sprite not purged: %+v", res)
	}
	if w.SpawnOne() != nil {
		t.Error("SpawnOne() without a spawner should return nil")
	}
}

func TestStepRampScalesDelta(t *testing.T) {
	ramp := config.NewRamp(config.RampConfig{Enabled: true, InitialLevel: 1, MaxAt: 1, SpeedMultiplier: 1})
	w := NewWorld(500, 500, WithRamp(ramp))
	s := w.Spawn(10, 10)
	s.MoveTo(100, 100).SetVelocity(100, 0)

	w.Step(100)

	if s.X != 120 {
		t.Errorf("X = %v, expected 120 at double speed", s.X)
	}
}

func TestRemove(t *testing.T) {
	w := NewWorld(100, 100, WithDrawOrder(byY))
	s := w.Spawn(5, 5)

	if !w.Remove(s) {
		t.Fatal("Remove() of a member returned false")
	}
	if w.Remove(s) {
		t.Error("second Remove() returned true")
	}
	if len(w.Sprites) != 0 || !w.DrawOrder.IsEmpty() {
		t.Error("sprite still present after Remove()")
	}
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	w := NewWorld(200, 200, WithLogger(logger))
	w.Spawn(20, 20).MoveTo(10, 10)
	w.Spawn(20, 20).MoveTo(15, 10)

	w.Step(10)
	if buf.Len() != 0 {
		t.Errorf("collision logged without debug: %q", buf.String())
	}

	w.SetDebug(true)
	w.Step(10)
	if !strings.Contains(buf.String(), "collision") {
		t.Errorf("expected a collision line, got %q", buf.String())
	}
}

func TestRun(t *testing.T) {
	w := NewWorld(100, 100)
	w.Spawn(10, 10).SetVelocity(50, 50)

	stats, err := Run(context.Background(), w, 10, 16)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stats.Ticks != 10 || w.Tick() != 10 {
		t.Errorf("Ticks = %d, expected 10", stats.Ticks)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	stats, err = Run(ctx, NewWorld(100, 100), 10, 16)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
	if stats.Ticks != 0 {
		t.Errorf("Ticks = %d after cancellation, expected 0", stats.Ticks)
	}
}

func TestRunBatch(t *testing.T) {
	jobs := make([]Job, 3)
	for i := range jobs {
		w := NewWorld(100, 100)
		w.Spawn(10, 10).SetVelocity(100, 70)
		jobs[i] = Job{Name: string(rune('a' + i)), World: w, Ticks: 5 * (i + 1), DT: 16}
	}

	results, err := RunBatch(context.Background(), jobs, 2)
	if err != nil {
		t.Fatalf("RunBatch() error = %v", err)
	}
	for i, r := range results {
		if r.Name != jobs[i].Name || r.Stats.Ticks != jobs[i].Ticks {
			t.Errorf("results[%d] = %s/%d ticks, expected %s/%d", i, r.Name, r.Stats.Ticks, jobs[i].Name, jobs[i].Ticks)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RunBatch(ctx, jobs, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("RunBatch() error = %v, expected context.Canceled", err)
	}
}

package traffic

import (
	"math/rand"
	"testing"

	"github.com/golangdaddy/synthwave/pkg/projection"
)

func newTestTraffic() *Traffic {
	proj := projection.MustNew(projection.DefaultConfig())
	cfg := Config{
		Appearance: 1500,
		Spacing:    600,
		NearPlane:  0,
		HalfSpread: 480,
		CarWidth:   220,
	}
	return New(proj, cfg, rand.New(rand.NewSource(1)))
}

func TestObstaclePassesAndRetires(t *testing.T) {
	tr := newTestTraffic()
	o := tr.SpawnAt(0, 1500)
	if o == nil {
		t.Fatal("SpawnAt returned nil")
	}

	for i := 1; i <= 300; i++ {
		if retired := tr.Advance(5); len(retired) != 0 {
			t.Fatalf("tick %d: obstacle retired early at y=%f", i, o.Y)
		}
	}
	if o.Y != 0 {
		t.Fatalf("y after 300 ticks = %f, want 0", o.Y)
	}
	if len(tr.Obstacles()) != 1 {
		t.Fatalf("active obstacles = %d, want 1", len(tr.Obstacles()))
	}

	retired := tr.Advance(5)
	if len(retired) != 1 || retired[0] != o {
		t.Fatalf("tick 301 retired %d obstacles, want the spawned one", len(retired))
	}
	if len(tr.Obstacles()) != 0 {
		t.Fatalf("retired obstacle still active")
	}

	if again := tr.Advance(5); len(again) != 0 {
		t.Fatalf("obstacle retired twice")
	}
}

func TestAdvanceKeepsSpawnOrder(t *testing.T) {
	tr := newTestTraffic()
	a := tr.SpawnAt(-100, 50)
	b := tr.SpawnAt(0, 3)
	c := tr.SpawnAt(100, 400)
	d := tr.SpawnAt(200, 2)

	retired := tr.Advance(4)
	if len(retired) != 2 || retired[0] != b || retired[1] != d {
		t.Fatalf("retired = %v, want [b d]", retired)
	}

	got := tr.Obstacles()
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Fatalf("active = %v, want [a c]", got)
	}
}

func TestSpawnPolicyIsEdgeTriggered(t *testing.T) {
	tr := newTestTraffic()

	// An empty road always gets a car
	tr.Step(5, 0)
	if len(tr.Obstacles()) != 1 {
		t.Fatalf("active = %d after first step, want 1", len(tr.Obstacles()))
	}
	first := tr.Obstacles()[0]

	// The first car was spawned after this tick's movement, so it needs 120 more
	// ticks at speed 5 to cover the 600 spacing.
	for i := 1; i < 120; i++ {
		tr.Step(5, 0)
		if len(tr.Obstacles()) != 1 {
			t.Fatalf("tick %d: spawned early, travelled %f", i, first.Travelled())
		}
	}
	tr.Step(5, 0)
	if len(tr.Obstacles()) != 2 {
		t.Fatalf("no spawn when travelled distance reached %f", first.Travelled())
	}

	for i := 0; i < 10; i++ {
		tr.Step(5, 0)
	}
	if len(tr.Obstacles()) != 2 {
		t.Fatalf("spawn repeated after the threshold: %d active", len(tr.Obstacles()))
	}
}

func TestSpawnPolicyWithVariableSpeed(t *testing.T) {
	tr := newTestTraffic()
	tr.Spawn(0)

	spawns := 0
	speeds := []float64{7, 3, 11, 5, 9}
	for i := 0; i < 200; i++ {
		before := len(tr.Obstacles())
		retired := tr.Step(speeds[i%len(speeds)], 0)
		if len(tr.Obstacles())+len(retired) > before {
			spawns++
		}
	}

	// 200 ticks averaging 7 per tick cover 1400, so exactly two spacing crossings
	if spawns != 2 {
		t.Fatalf("spawns = %d, want 2", spawns)
	}
}

func TestSpawnRespectsShiftAndSpread(t *testing.T) {
	tr := newTestTraffic()
	for i := 0; i < 200; i++ {
		o := tr.Spawn(300)
		if o.Y != 1500 || o.Spawn != 1500 {
			t.Fatalf("spawned at y=%f, want 1500", o.Y)
		}
		if o.X < 300-480 || o.X > 300+480 {
			t.Fatalf("spawned at x=%f, outside spread around shift 300", o.X)
		}
	}
}

func TestSpawnAtRejectsNearPlane(t *testing.T) {
	tr := newTestTraffic()
	if o := tr.SpawnAt(0, 0); o != nil {
		t.Fatal("spawn at the near plane should be rejected")
	}
	if o := tr.SpawnAt(0, -20); o != nil {
		t.Fatal("spawn behind the viewer should be rejected")
	}
	if len(tr.Obstacles()) != 0 {
		t.Fatalf("rejected spawns became active")
	}
}

func TestShiftMovesAllObstacles(t *testing.T) {
	tr := newTestTraffic()
	a := tr.SpawnAt(10, 500)
	b := tr.SpawnAt(-40, 900)

	tr.Shift(-5)
	if a.X != 5 || b.X != -45 {
		t.Fatalf("x after shift = %f/%f, want 5/-45", a.X, b.X)
	}
}

func TestPlacement(t *testing.T) {
	tr := newTestTraffic()
	proj := projection.MustNew(projection.DefaultConfig())
	o := tr.SpawnAt(100, 700)

	p := tr.Placement(o)
	if !p.Visible {
		t.Fatal("obstacle ahead should be visible")
	}
	if p.X != proj.GroundXToScreenX(100, 700) || p.Y != proj.GroundYToScreenY(700) {
		t.Fatalf("placement = (%f, %f)", p.X, p.Y)
	}
	if p.Width != proj.ScaleToScreen(220, 700) {
		t.Fatalf("width = %f", p.Width)
	}

	o.Y = -1
	if tr.Placement(o).Visible {
		t.Fatal("obstacle behind the viewer must not be projected")
	}
}

func TestResetClearsObstacles(t *testing.T) {
	tr := newTestTraffic()
	tr.Spawn(0)
	tr.Spawn(0)
	tr.Reset()

	if len(tr.Obstacles()) != 0 {
		t.Fatalf("active = %d after reset", len(tr.Obstacles()))
	}
	tr.Step(5, 0)
	if len(tr.Obstacles()) != 1 {
		t.Fatalf("empty road did not respawn after reset")
	}
}

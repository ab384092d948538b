package engine

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lixenwraith/ant-attack/core"
)

// dummy is a minimal entity recording its callbacks
type dummy struct {
	body     Body
	decided  int
	updated  int
	alerts   []mgl32.Vec2
	onUpdate func()
}

func newDummy(speed float32) *dummy {
	p := &dummy{body: NewBody()}
	p.body.MovementSpeed = speed
	return p
}

func (p *dummy) Body() *Body { return &p.body }

func (p *dummy) Update(dt float32) {
	p.updated++
	if p.onUpdate != nil {
		p.onUpdate()
	}
	p.body.Update(dt)
}

func (p *dummy) Decide()       { p.decided++ }
func (p *dummy) Draw(c Canvas) {}

type alertDummy struct {
	dummy
}

func (a *alertDummy) Alert(p mgl32.Vec2) { a.alerts = append(a.alerts, p) }

func newTestWorld(sx, sy int) *World {
	return NewWorld(NewVoxelGrid(sx, sy), Layout{Castle: core.Area{Width: sx, Height: sy}})
}

func TestVoxelGridBits(t *testing.T) {
	g := NewVoxelGrid(4, 3)

	if err := g.SetSolid(1, 2, 3, true); err != nil {
		t.Fatalf("SetSolid failed: %v", err)
	}
	if err := g.SetSolid(1, 2, 0, true); err != nil {
		t.Fatalf("SetSolid failed: %v", err)
	}

	if solid, _ := g.Solid(1, 2, 3); !solid {
		t.Error("Expected (1,2,3) solid")
	}
	if solid, _ := g.Solid(1, 2, 2); solid {
		t.Error("Expected (1,2,2) empty")
	}

	// Clearing must only drop the one bit
	if err := g.SetSolid(1, 2, 3, false); err != nil {
		t.Fatalf("SetSolid failed: %v", err)
	}
	if mask, _ := g.Column(1, 2); mask != 0x01 {
		t.Errorf("Expected column mask 0x01 after clear, got %#x", mask)
	}
}

func TestVoxelGridOutOfRange(t *testing.T) {
	g := NewVoxelGrid(4, 3)
	tests := []struct {
		name    string
		x, y, z int
	}{
		{"negative x", -1, 0, 0},
		{"past x", 4, 0, 0},
		{"past y", 0, 3, 0},
		{"past z", 0, 0, 8},
		{"negative z", 0, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Solid(tt.x, tt.y, tt.z)
			if !errors.Is(err, core.ErrOutOfRange) {
				t.Errorf("Solid: expected ErrOutOfRange, got %v", err)
			}
			var re *core.RangeError
			if !errors.As(g.SetSolid(tt.x, tt.y, tt.z, true), &re) {
				t.Fatal("SetSolid: expected *RangeError")
			}
			if re.X != tt.x || re.Y != tt.y || re.Z != tt.z {
				t.Errorf("Expected error coords (%d,%d,%d), got (%d,%d,%d)", tt.x, tt.y, tt.z, re.X, re.Y, re.Z)
			}
		})
	}
}

func TestTileIndexClampsAndInverts(t *testing.T) {
	g := NewVoxelGrid(5, 4)

	tile := core.Tile{X: 3, Y: 2, Z: 6}
	if got := g.TileAt(g.TileIndex(tile)); got != tile {
		t.Errorf("Expected round trip %v, got %v", tile, got)
	}

	tests := []struct {
		in, want core.Tile
	}{
		{core.Tile{X: -3, Y: 1, Z: 0}, core.Tile{X: 0, Y: 1, Z: 0}},
		{core.Tile{X: 9, Y: 9, Z: 9}, core.Tile{X: 4, Y: 3, Z: 7}},
		{core.Tile{X: 2, Y: -1, Z: -1}, core.Tile{X: 2, Y: 0, Z: 0}},
	}
	for _, tt := range tests {
		if got := g.TileAt(g.TileIndex(tt.in)); got != tt.want {
			t.Errorf("TileIndex(%v): expected clamp to %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestSlotIndexFirstWriterWins(t *testing.T) {
	s := NewSlotIndex(4)
	a, b := newDummy(1), newDummy(1)

	if !s.Place(a, 2) {
		t.Fatal("Expected first place to succeed")
	}
	if s.Place(b, 2) {
		t.Error("Expected second place on occupied slot to fail")
	}
	if s.At(2) != a {
		t.Error("Expected slot to keep first occupant")
	}

	if s.Vacate(2, b) {
		t.Error("Expected vacate by non-owner to fail")
	}
	if !s.Vacate(2, a) {
		t.Error("Expected vacate by owner to succeed")
	}
	if s.At(2) != nil || s.Occupied() != 0 {
		t.Error("Expected empty index after vacate")
	}
	if s.At(-1) != nil || s.At(99) != nil {
		t.Error("Expected nil for out of range slots")
	}
}

func TestSpawnSingleOccupancy(t *testing.T) {
	w := newTestWorld(4, 4)
	a, b := newDummy(1), newDummy(1)
	tile := core.Tile{X: 1, Y: 1}

	w.Spawn(a, tile)
	w.Spawn(b, tile)

	if w.Count() != 2 {
		t.Errorf("Expected 2 live entities, got %d", w.Count())
	}
	if w.OccupantAt(tile) != a {
		t.Error("Expected first spawned entity to hold the slot")
	}
	if w.Slots().Occupied() != 1 {
		t.Errorf("Expected 1 occupied slot, got %d", w.Slots().Occupied())
	}

	// Respawn is a no-op
	w.Spawn(a, tile)
	if w.Count() != 2 {
		t.Errorf("Expected respawn to keep 2 entities, got %d", w.Count())
	}

	// Once released, the idle loser re-claims on its next update
	w.Despawn(a)
	w.Update(1.0 / 16)
	if w.OccupantAt(tile) != b {
		t.Error("Expected second entity to claim the vacated slot")
	}
}

func TestMarkerBodyHoldsNoSlot(t *testing.T) {
	w := newTestWorld(4, 4)
	marker := &dummy{body: NewMarkerBody()}
	tile := core.Tile{X: 1, Y: 1}

	w.Spawn(marker, tile)
	if w.OccupantAt(tile) != nil || w.IsSolid(tile) {
		t.Fatal("Expected marker to leave its tile free")
	}

	// Walking and settling never claims either
	marker.body.StepIn(core.PositiveX)
	for range 40 {
		w.Update(1.0 / 16)
	}
	next := core.Tile{X: 2, Y: 1}
	if marker.body.Tile() != next {
		t.Fatalf("Expected marker to track %v, at %v", next, marker.body.Tile())
	}
	if w.Slots().Occupied() != 0 {
		t.Errorf("Expected no occupied slots, got %d", w.Slots().Occupied())
	}

	// A regular body takes the tile the marker sits on
	p := newDummy(1)
	w.Spawn(p, next)
	if w.OccupantAt(next) != p {
		t.Error("Expected regular body to claim the marker's tile")
	}
	w.Despawn(marker)
	if w.OccupantAt(next) != p {
		t.Error("Expected marker despawn to keep the other slot")
	}
}

func TestDespawnConservation(t *testing.T) {
	w := newTestWorld(4, 4)
	a := newDummy(1)
	w.Spawn(a, core.Tile{X: 2, Y: 3})

	w.Despawn(a)
	w.Despawn(a)

	if w.Count() != 0 {
		t.Errorf("Expected empty registry, got %d", w.Count())
	}
	if w.Slots().Occupied() != 0 {
		t.Errorf("Expected no occupied slots, got %d", w.Slots().Occupied())
	}
	if a.Body().Spawned() {
		t.Error("Expected despawned body")
	}
}

func TestDespawnKeepsForeignSlot(t *testing.T) {
	w := newTestWorld(4, 4)
	a, b := newDummy(1), newDummy(1)
	tile := core.Tile{X: 0, Y: 0}
	w.Spawn(a, tile)
	w.Spawn(b, tile)

	w.Despawn(b)

	if w.OccupantAt(tile) != a {
		t.Error("Expected despawn of non-owner to leave the slot alone")
	}
}

func TestUpdateSkipsEntitiesDespawnedInTick(t *testing.T) {
	w := newTestWorld(4, 4)
	killer, victim := newDummy(1), newDummy(1)
	w.Spawn(killer, core.Tile{X: 0, Y: 0})
	w.Spawn(victim, core.Tile{X: 1, Y: 0})
	killer.onUpdate = func() { w.Despawn(victim) }

	w.Update(1.0 / 16)

	if victim.updated != 0 {
		t.Errorf("Expected victim to be skipped, updated %d times", victim.updated)
	}
	if killer.updated != 1 {
		t.Errorf("Expected killer updated once, got %d", killer.updated)
	}
}

func TestEntitiesSnapshot(t *testing.T) {
	w := newTestWorld(4, 4)
	a := newDummy(1)
	w.Spawn(a, core.Tile{})

	snap := w.Entities()
	w.Spawn(newDummy(1), core.Tile{X: 1})

	if len(snap) != 1 {
		t.Errorf("Expected snapshot to stay at 1 entity, got %d", len(snap))
	}
}

func TestIsSolid(t *testing.T) {
	w := newTestWorld(4, 4)
	_ = w.Voxels().SetSolid(1, 1, 0, true)

	ghost := newDummy(1)
	ghost.body.Solid = false
	w.Spawn(ghost, core.Tile{X: 2, Y: 2})
	w.Spawn(newDummy(1), core.Tile{X: 3, Y: 3})

	tests := []struct {
		name string
		tile core.Tile
		want bool
	}{
		{"empty", core.Tile{X: 0, Y: 0}, false},
		{"voxel", core.Tile{X: 1, Y: 1}, true},
		{"non-solid occupant", core.Tile{X: 2, Y: 2}, false},
		{"solid occupant", core.Tile{X: 3, Y: 3}, true},
		{"outside grid", core.Tile{X: -1, Y: 0}, true},
		{"below ground", core.Tile{X: 0, Y: 0, Z: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.IsSolid(tt.tile); got != tt.want {
				t.Errorf("IsSolid(%v) = %v, want %v", tt.tile, got, tt.want)
			}
		})
	}
}

func TestAlertAntsCastleAndRadius(t *testing.T) {
	w := NewWorld(NewVoxelGrid(40, 40), Layout{Castle: core.Area{X: 0, Y: 0, Width: 20, Height: 20}})
	near := &alertDummy{dummy: *newDummy(1)}
	far := &alertDummy{dummy: *newDummy(1)}
	w.Spawn(near, core.Tile{X: 3, Y: 3})
	w.Spawn(far, core.Tile{X: 35, Y: 35})

	w.AlertAnts(mgl32.Vec2{2, 2}, 10)
	if len(near.alerts) != 1 {
		t.Errorf("Expected near entity alerted once, got %d", len(near.alerts))
	}
	if len(far.alerts) != 0 {
		t.Errorf("Expected far entity not alerted, got %d", len(far.alerts))
	}

	// Outside the castle nothing propagates
	w.AlertAnts(mgl32.Vec2{30, 30}, 100)
	if len(near.alerts) != 1 || len(far.alerts) != 0 {
		t.Error("Expected pulse outside castle to be ignored")
	}
}

func TestClear(t *testing.T) {
	w := newTestWorld(4, 4)
	a := newDummy(1)
	w.Spawn(a, core.Tile{})
	w.SetPlayer(a)

	w.Clear()

	if w.Count() != 0 || w.Slots().Occupied() != 0 {
		t.Error("Expected clear to drop all entities and slots")
	}
	if w.Player() != nil {
		t.Error("Expected clear to drop the player")
	}
	if a.Body().Spawned() {
		t.Error("Expected cleared body to be unspawned")
	}
}

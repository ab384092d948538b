package engine

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lixenwraith/ant-attack/core"
)

// Layout is the per-level round metadata
type Layout struct {
	Spawn    core.Tile   // Player start tile
	Hostages []core.Tile // One hostage tile per round
	Castle   core.Area   // Alert pulses only propagate inside
}

// World aggregates the voxel grid, the slot index and the live entity registry
// All mutation happens on the simulation goroutine
type World struct {
	Layout Layout

	voxels   *VoxelGrid
	slots    *SlotIndex
	entities []Entity // Insertion ordered, no duplicates

	player Entity

	sound    SoundPlayer
	notifier Notifier
}

// NewWorld creates a world over the given grid with silent services
func NewWorld(voxels *VoxelGrid, layout Layout) *World {
	return &World{
		Layout:   layout,
		voxels:   voxels,
		slots:    NewSlotIndex(voxels.Volume()),
		sound:    nopSound{},
		notifier: nopNotifier{},
	}
}

// SetServices wires the sound and message sinks, nil restores the silent default
func (w *World) SetServices(sound SoundPlayer, notifier Notifier) {
	if sound == nil {
		sound = nopSound{}
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	w.sound = sound
	w.notifier = notifier
}

// Sound returns the sound sink
func (w *World) Sound() SoundPlayer {
	return w.sound
}

// Notifier returns the message sink
func (w *World) Notifier() Notifier {
	return w.notifier
}

// Voxels returns the voxel grid
func (w *World) Voxels() *VoxelGrid {
	return w.voxels
}

// InBounds reports whether the tile lies inside the voxel grid
func (w *World) InBounds(t core.Tile) bool {
	return w.voxels.InBounds(t.X, t.Y, t.Z)
}

// IsSolid reports whether the tile obstructs movement
// Solid voxels, solid occupants and everything outside the grid obstruct
func (w *World) IsSolid(t core.Tile) bool {
	solid, err := w.voxels.Solid(t.X, t.Y, t.Z)
	if err != nil {
		return true
	}
	if solid {
		return true
	}
	if e := w.OccupantAt(t); e != nil {
		return e.Body().Solid
	}
	return false
}

// OccupantAt returns the entity holding the tile slot, nil when empty
// Coordinates are clamped like slot indexing
func (w *World) OccupantAt(t core.Tile) Entity {
	return w.slots.At(w.voxels.TileIndex(t))
}

// Slots exposes the slot index for traversal by the renderer
func (w *World) Slots() *SlotIndex {
	return w.slots
}

// Spawn registers e at tile and claims the slot if empty, marker bodies never claim
// Spawning a live entity again is a no-op
func (w *World) Spawn(e Entity, t core.Tile) {
	b := e.Body()
	if b.spawned && b.world == w {
		return
	}
	b.world = w
	b.owner = e
	b.spawned = true
	b.Position = t.Vec()
	b.slot = w.voxels.TileIndex(t)
	w.entities = append(w.entities, e)
	if !b.noSlot {
		w.slots.Place(e, b.slot)
	}
}

// Despawn removes e from the registry and releases its slot if still held
// Despawning twice is a no-op
func (w *World) Despawn(e Entity) {
	b := e.Body()
	if !b.spawned || b.world != w {
		return
	}
	b.spawned = false
	w.slots.Vacate(b.slot, e)
	if i := slices.Index(w.entities, e); i >= 0 {
		w.entities = slices.Delete(w.entities, i, i+1)
	}
	if w.player == e {
		w.player = nil
	}
}

// Entities returns a snapshot of the live registry in insertion order
func (w *World) Entities() []Entity {
	return slices.Clone(w.entities)
}

// Count returns the number of live entities
func (w *World) Count() int {
	return len(w.entities)
}

// Clear despawns everything and empties every slot
func (w *World) Clear() {
	for _, e := range w.entities {
		e.Body().spawned = false
	}
	w.entities = w.entities[:0]
	w.slots.Clear()
	w.player = nil
}

// Update advances every live entity by dt seconds
// Iterates a snapshot; entities despawned earlier in the same tick are skipped
func (w *World) Update(dt float32) {
	for _, e := range w.Entities() {
		if !e.Body().spawned {
			continue
		}
		e.Update(dt)
	}
}

// AlertAnts pulses every alertable entity within radius of p
// Pulses originating outside the castle are ignored
func (w *World) AlertAnts(p mgl32.Vec2, radius float32) {
	if !w.Layout.Castle.Contains(p) {
		return
	}
	for _, e := range w.Entities() {
		a, ok := e.(Alertable)
		if !ok || !a.Body().spawned {
			continue
		}
		if a.Body().Tile().Vec2().Sub(p).Len() <= radius {
			a.Alert(p)
		}
	}
}

// Player returns the controlled entity, nil between rounds
func (w *World) Player() Entity {
	return w.player
}

// SetPlayer marks e as the entity others follow and chase
func (w *World) SetPlayer(e Entity) {
	w.player = e
}

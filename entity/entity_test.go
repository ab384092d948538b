package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lixenwraith/ant-attack/core"
	"github.com/lixenwraith/ant-attack/engine"
)

const testDt = float32(1.0 / 16)

// recorder captures cues and messages
type recorder struct {
	cues     []core.Cue
	messages []engine.Message
}

func (r *recorder) Play(c core.Cue)           { r.cues = append(r.cues, c) }
func (r *recorder) StopAll()                  {}
func (r *recorder) Notify(msg engine.Message) { r.messages = append(r.messages, msg) }

func (r *recorder) played(s core.SoundType) int {
	return r.count(func(c core.Cue) bool { return c.Sound == s })
}

func (r *recorder) count(match func(core.Cue) bool) int {
	n := 0
	for _, c := range r.cues {
		if match(c) {
			n++
		}
	}
	return n
}

func newTestWorld(sx, sy int) (*engine.World, *recorder) {
	w := engine.NewWorld(engine.NewVoxelGrid(sx, sy), engine.Layout{
		Castle: core.Area{Width: sx, Height: sy},
	})
	rec := &recorder{}
	w.SetServices(rec, rec)
	return w, rec
}

func run(w *engine.World, ticks int) {
	for range ticks {
		w.Update(testDt)
	}
}

func TestHumanHurt(t *testing.T) {
	tests := []struct {
		name      string
		boy       bool
		damage    int
		wantHP    int
		wantCue   core.SoundType
		wantPitch float64
	}{
		{"boy ouch", true, 3, 17, core.SoundOuch, 0},
		{"girl ouch", false, 3, 17, core.SoundOuch, 0.5},
		{"exact kill", true, 20, 0, core.SoundWasted, 0},
		{"overkill floors", false, 50, 0, core.SoundWasted, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, rec := newTestWorld(4, 4)
			h := NewHuman(tt.boy)
			w.Spawn(h, core.Tile{})

			h.Hurt(tt.damage)

			if h.Hitpoints != tt.wantHP {
				t.Errorf("Expected %d hitpoints, got %d", tt.wantHP, h.Hitpoints)
			}
			if len(rec.cues) != 1 {
				t.Fatalf("Expected one cue, got %d", len(rec.cues))
			}
			if rec.cues[0].Sound != tt.wantCue || rec.cues[0].Pitch != tt.wantPitch {
				t.Errorf("Expected %v at pitch %v, got %v at %v", tt.wantCue, tt.wantPitch, rec.cues[0].Sound, rec.cues[0].Pitch)
			}
		})
	}
}

func TestHumanStepInWalkAndClimb(t *testing.T) {
	w, _ := newTestWorld(6, 6)
	_ = w.Voxels().SetSolid(3, 2, 0, true)
	_ = w.Voxels().SetSolid(3, 3, 0, true)
	_ = w.Voxels().SetSolid(3, 3, 1, true)

	h := NewHuman(true)
	w.Spawn(h, core.Tile{X: 2, Y: 2})

	// Blocked at ground, clear above: climb
	h.StepIn(core.PositiveX)
	if h.Body().State != core.AnimClimb {
		t.Fatalf("Expected climb, got %v", h.Body().State)
	}
	if got := h.Body().Tile(); got != (core.Tile{X: 3, Y: 2, Z: 1}) {
		t.Errorf("Expected climb target (3,2,1), got %v", got)
	}

	// Wall two high blocks a fresh human
	w2, _ := newTestWorld(6, 6)
	_ = w2.Voxels().SetColumn(3, 2, 0x03)
	h2 := NewHuman(false)
	w2.Spawn(h2, core.Tile{X: 2, Y: 2})
	h2.StepIn(core.PositiveX)
	if h2.Body().State != core.AnimIdle {
		t.Errorf("Expected blocked human to stay idle, got %v", h2.Body().State)
	}
	if got := h2.Body().Tile(); got != (core.Tile{X: 2, Y: 2}) {
		t.Errorf("Expected blocked human to keep its slot, got %v", got)
	}
}

func TestHumanStepInBounds(t *testing.T) {
	w, _ := newTestWorld(3, 3)
	h := NewHuman(true)
	w.Spawn(h, core.Tile{X: 0, Y: 1})

	h.StepIn(core.NegativeX)

	if h.Body().State != core.AnimIdle {
		t.Errorf("Expected out of bounds step to be refused, got %v", h.Body().State)
	}
}

func TestHumanClimbCompletesAndPlaysJump(t *testing.T) {
	w, rec := newTestWorld(6, 6)
	_ = w.Voxels().SetSolid(3, 2, 0, true)
	h := NewHuman(false)
	w.Spawn(h, core.Tile{X: 2, Y: 2})

	h.StepIn(core.PositiveX)
	run(w, 40)

	if got := h.Body().Tile(); got != (core.Tile{X: 3, Y: 2, Z: 1}) {
		t.Errorf("Expected human on top of block, got %v", got)
	}
	if h.Body().State != core.AnimIdle {
		t.Errorf("Expected idle after climb, got %v", h.Body().State)
	}
	if rec.count(func(c core.Cue) bool { return c.Sound == core.SoundJump && c.Pitch == 0.5 }) != 1 {
		t.Error("Expected one pitched jump cue")
	}
}

func TestHumanFallsWithoutFooting(t *testing.T) {
	w, _ := newTestWorld(6, 6)
	h := NewHuman(true)
	w.Spawn(h, core.Tile{X: 1, Y: 1, Z: 2})

	run(w, 1)
	if h.Body().State != core.AnimFall {
		t.Fatalf("Expected fall, got %v", h.Body().State)
	}

	run(w, 40)
	if got := h.Body().Tile(); got != (core.Tile{X: 1, Y: 1, Z: 0}) {
		t.Errorf("Expected human on the ground, got %v", got)
	}
}

func TestHostageLaysUntilRescued(t *testing.T) {
	w, _ := newTestWorld(6, 6)
	h := NewHuman(false)
	w.Spawn(h, core.Tile{X: 2, Y: 2})
	h.SetHostage()

	run(w, 5)
	if !h.TiedUp() {
		t.Fatal("Expected hostage tied up")
	}

	h.Rescue()
	if h.TiedUp() || h.Body().State != core.AnimIdle {
		t.Error("Expected rescued hostage to stand up")
	}
}

func TestRescuedHostageFollowsPlayer(t *testing.T) {
	w, _ := newTestWorld(10, 4)
	player := NewHuman(true)
	hostage := NewHuman(false)
	w.Spawn(player, core.Tile{X: 3, Y: 1})
	w.Spawn(hostage, core.Tile{X: 4, Y: 1})
	w.SetPlayer(player)
	hostage.SetHostage()
	hostage.Rescue()

	for range 3 {
		player.StepIn(core.NegativeX)
		run(w, 20)
	}

	if got := player.Body().Tile(); got != (core.Tile{X: 0, Y: 1}) {
		t.Fatalf("Expected player at (0,1,0), got %v", got)
	}
	if got := hostage.Body().Tile(); got != (core.Tile{X: 1, Y: 1}) {
		t.Errorf("Expected hostage to follow next to the player, got %v", got)
	}
}

func TestDeadHumanLays(t *testing.T) {
	w, _ := newTestWorld(4, 4)
	h := NewHuman(true)
	w.Spawn(h, core.Tile{})
	h.Hurt(100)

	run(w, 1)

	if h.Body().State != core.AnimLay {
		t.Errorf("Expected dead human to lay, got %v", h.Body().State)
	}
	if h.TiedUp() {
		t.Error("Expected dead human not to count as tied up")
	}
}

func TestAntParalysis(t *testing.T) {
	a := NewAnt(1)

	a.Paralyze(10)
	a.Paralyze(5)
	if a.Paralysis() != 10 {
		t.Errorf("Expected longer paralysis kept, got %d", a.Paralysis())
	}

	w, _ := newTestWorld(4, 4)
	w.Spawn(a, core.Tile{})
	run(w, 10)
	if a.Paralyzed() {
		t.Errorf("Expected paralysis to wear off, %d left", a.Paralysis())
	}
	run(w, 3)
	if a.Paralysis() != 0 {
		t.Errorf("Expected paralysis floored at zero, got %d", a.Paralysis())
	}
}

func TestAntBitesAdjacentHuman(t *testing.T) {
	w, rec := newTestWorld(6, 6)
	h := NewHuman(true)
	a := NewAnt(7)
	w.Spawn(h, core.Tile{X: 2, Y: 2})
	w.Spawn(a, core.Tile{X: 3, Y: 2})

	a.Decide()

	if h.Hitpoints != 19 {
		t.Errorf("Expected 19 hitpoints after bite, got %d", h.Hitpoints)
	}
	if a.Body().State != core.AnimBite {
		t.Errorf("Expected bite animation, got %v", a.Body().State)
	}
	if a.Body().Direction != core.NegativeX {
		t.Errorf("Expected ant facing the victim, got %v", a.Body().Direction)
	}
	if rec.played(core.SoundOuch) != 1 {
		t.Error("Expected ouch cue")
	}
}

func TestParalyzedAntDoesNotBite(t *testing.T) {
	w, _ := newTestWorld(6, 6)
	h := NewHuman(true)
	a := NewAnt(7)
	w.Spawn(h, core.Tile{X: 2, Y: 2})
	w.Spawn(a, core.Tile{X: 2, Y: 3})
	a.Paralyze(100)

	a.Decide()

	if h.Hitpoints != 20 {
		t.Errorf("Expected paralyzed ant not to bite, hitpoints %d", h.Hitpoints)
	}
}

func TestAntChasesAlert(t *testing.T) {
	w, _ := newTestWorld(30, 5)
	a := NewAnt(3)
	w.Spawn(a, core.Tile{X: 1, Y: 2})

	a.Alert(mgl32.Vec2{28, 2})
	if _, ok := a.Target(); !ok {
		t.Fatal("Expected target after alert")
	}

	run(w, 100)

	if got := a.Body().Tile(); got.X <= 1 {
		t.Errorf("Expected ant to advance toward target, at %v", got)
	}
}

func TestAntWithoutTargetStays(t *testing.T) {
	w, _ := newTestWorld(6, 6)
	a := NewAnt(3)
	w.Spawn(a, core.Tile{X: 2, Y: 2})

	run(w, 50)

	if got := a.Body().Tile(); got != (core.Tile{X: 2, Y: 2}) {
		t.Errorf("Expected idle ant to stay put, at %v", got)
	}
}

func TestAntKill(t *testing.T) {
	w, rec := newTestWorld(4, 4)
	a := NewAnt(1)
	w.Spawn(a, core.Tile{X: 1, Y: 1})

	a.Kill()

	if w.Count() != 0 || w.OccupantAt(core.Tile{X: 1, Y: 1}) != nil {
		t.Error("Expected killed ant removed")
	}
	if len(rec.cues) != 1 || rec.cues[0].Volume != 0.4 || rec.cues[0].Pitch != -1 {
		t.Errorf("Expected quiet low wasted cue, got %+v", rec.cues)
	}
}

func TestAntsCannotShareCursorTile(t *testing.T) {
	w, _ := newTestWorld(6, 6)
	c := NewCursor()
	first, second := NewAnt(1), NewAnt(2)
	spot := core.Tile{X: 3, Y: 3}
	w.Spawn(c, spot)
	w.Spawn(first, core.Tile{X: 2, Y: 3})
	w.Spawn(second, core.Tile{X: 4, Y: 3})

	if w.OccupantAt(spot) != nil {
		t.Fatal("Expected cursor to leave its tile slot empty")
	}

	first.Body().StepIn(core.PositiveX)
	if w.OccupantAt(spot) != engine.Entity(first) {
		t.Fatalf("Expected ant to claim the cursor's tile, occupant %v", w.OccupantAt(spot))
	}
	if !w.IsSolid(spot) {
		t.Error("Expected the claimed tile to block")
	}

	// The second ant sees the blocked tile and never dashes into it
	second.Alert(spot.Vec2())
	second.Decide()
	if second.Body().Tile() == spot {
		t.Error("Expected only one ant on the tile")
	}

	// Cursor moves keep out of the slot index
	run(w, 20)
	c.Move(core.PositiveY)
	if w.OccupantAt(core.Tile{X: 3, Y: 4}) == engine.Entity(c) || w.OccupantAt(spot) != engine.Entity(first) {
		t.Error("Expected cursor moves to leave slots alone")
	}
}

func TestBombFlightExplodesOnce(t *testing.T) {
	w, rec := newTestWorld(20, 5)
	b := NewBomb(8)
	b.Body().Direction = core.PositiveX
	w.Spawn(b, core.Tile{X: 1, Y: 2})

	run(w, 200)

	if rec.played(core.SoundBoom) != 1 {
		t.Errorf("Expected one explosion, got %d", rec.played(core.SoundBoom))
	}
	if w.Count() != 0 {
		t.Errorf("Expected bomb cleaned up after explosion, %d entities left", w.Count())
	}
}

func TestBombFlightDistance(t *testing.T) {
	w, _ := newTestWorld(20, 5)
	b := NewBomb(8)
	b.Body().Direction = core.PositiveX
	w.Spawn(b, core.Tile{X: 1, Y: 2})

	for range 200 {
		w.Update(testDt)
		if b.Exploded() {
			break
		}
	}

	if !b.Exploded() {
		t.Fatal("Expected bomb to explode")
	}
	if got := b.Body().Tile(); got != (core.Tile{X: 9, Y: 2}) {
		t.Errorf("Expected explosion 8 tiles out at (9,2,0), got %v", got)
	}
}

func TestBombStopsAtWall(t *testing.T) {
	w, _ := newTestWorld(20, 5)
	_ = w.Voxels().SetColumn(4, 2, 0xff)
	b := NewBomb(8)
	b.Body().Direction = core.PositiveX
	w.Spawn(b, core.Tile{X: 1, Y: 2})

	for range 200 {
		w.Update(testDt)
		if b.Exploded() {
			break
		}
	}

	if got := b.Body().Tile(); got != (core.Tile{X: 3, Y: 2}) {
		t.Errorf("Expected explosion in front of wall at (3,2,0), got %v", got)
	}
}

func TestBombFallsFirst(t *testing.T) {
	w, _ := newTestWorld(20, 5)
	b := NewBomb(2)
	b.Body().Direction = core.PositiveX
	w.Spawn(b, core.Tile{X: 1, Y: 2, Z: 3})

	b.Decide()

	if b.Body().State != core.AnimFall {
		t.Errorf("Expected airborne bomb to fall, got %v", b.Body().State)
	}
	if b.FlyDistance() != 2 {
		t.Errorf("Expected fly distance untouched while falling, got %d", b.FlyDistance())
	}
}

func TestExplosionEffects(t *testing.T) {
	w, rec := newTestWorld(30, 30)
	b := NewBomb(0)
	closeAnt := NewAnt(1)
	near := NewAnt(2)
	far := NewAnt(3)
	h := NewHuman(true)

	w.Spawn(b, core.Tile{X: 10, Y: 10})
	w.Spawn(closeAnt, core.Tile{X: 12, Y: 10}) // 2 away: killed
	w.Spawn(near, core.Tile{X: 10, Y: 15})  // 5 away: paralyzed
	w.Spawn(far, core.Tile{X: 25, Y: 25})   // out of blast
	w.Spawn(h, core.Tile{X: 10, Y: 12})     // 2 away: hurt 2

	b.Explode()
	b.Explode()

	if closeAnt.Body().Spawned() {
		t.Error("Expected close ant killed")
	}
	if near.Paralysis() != 700 {
		t.Errorf("Expected near ant paralyzed 700, got %d", near.Paralysis())
	}
	if far.Paralyzed() {
		t.Error("Expected far ant untouched")
	}
	if h.Hitpoints != 18 {
		t.Errorf("Expected human hurt by 2, has %d", h.Hitpoints)
	}
	if rec.played(core.SoundBoom) != 1 {
		t.Errorf("Expected explosion idempotent, boomed %d times", rec.played(core.SoundBoom))
	}
	if len(rec.messages) != 1 || rec.messages[0].Text != "GOOD SHOT!" {
		t.Errorf("Expected good shot message, got %+v", rec.messages)
	}
	if _, ok := near.Target(); !ok {
		t.Error("Expected explosion to alert near ant")
	}
}

func TestSprites(t *testing.T) {
	boy := NewHuman(true)
	if boy.Sprite() != core.SpriteBoy {
		t.Errorf("Expected idle boy sprite %d, got %d", core.SpriteBoy, boy.Sprite())
	}
	girl := NewHuman(false)
	girl.Body().Direction = core.NegativeX
	if girl.Sprite() != core.SpriteGirl+core.HumanFacingAway {
		t.Errorf("Expected girl facing away, got %d", girl.Sprite())
	}
	girl.SetHostage()
	if girl.Sprite() != core.SpriteGirl+core.HumanLay+core.SpriteID(core.NegativeX) {
		t.Errorf("Expected laying girl sprite, got %d", girl.Sprite())
	}

	b := NewBomb(1)
	if b.Sprite() != core.SpriteBomb {
		t.Errorf("Expected bomb sprite, got %d", b.Sprite())
	}
	b.Body().State = core.AnimExplode
	b.Body().Progress = 0.99
	if b.Sprite() != core.SpriteBoom+3 {
		t.Errorf("Expected last boom frame, got %d", b.Sprite())
	}
}

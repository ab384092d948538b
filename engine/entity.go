package engine

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lixenwraith/ant-attack/core"
)

// Entity is a non-tile object living in the world
// Shared movement and animation live in the Body each variant owns
type Entity interface {
	Body() *Body
	// Update advances the entity by dt seconds, variants wrap Body.Update
	Update(dt float32)
	// Decide runs once per animation cycle when the body resolves to idle
	Decide()
	// Draw emits the entity's sprite for the current frame
	Draw(c Canvas)
}

// Alertable entities react to alert pulses
type Alertable interface {
	Entity
	Alert(p mgl32.Vec2)
}

// Canvas receives sprites from entity draw hooks
type Canvas interface {
	PutSprite(pos mgl32.Vec3, id core.SpriteID)
}

// SoundPlayer fires sound cues, never queried for results
type SoundPlayer interface {
	Play(cue core.Cue)
	StopAll()
}

// MessageStyle selects the colors of a transient message
type MessageStyle uint8

const (
	MessageBanner MessageStyle = iota // Black on yellow
	MessageAlert                      // Red, no background
	MessageInfo                       // Blue, no background
)

// Message is a transient notification shown over gameplay
type Message struct {
	Text     string
	Duration time.Duration
	Freeze   bool // Simulation pauses while shown
	Style    MessageStyle
}

// Notifier is the sink for transient messages
type Notifier interface {
	Notify(msg Message)
}

type nopSound struct{}

func (nopSound) Play(core.Cue) {}
func (nopSound) StopAll()      {}

type nopNotifier struct{}

func (nopNotifier) Notify(Message) {}

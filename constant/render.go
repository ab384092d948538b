package constant

import "time"

// Isometric Projection
// Screen column = IsoColScale*(x-y), row = IsoRowScale*(x+y) - IsoLayerRows*z
const (
	IsoColScale  = 2
	IsoRowScale  = 1
	IsoLayerRows = 2
)

// Layout
const (
	// HUDHeight is the number of rows reserved for the status panel at the bottom
	HUDHeight = 4

	// ViewCenterRowOffset nudges the camera above the HUD
	ViewCenterRowOffset = -2
)

// Lighting
const (
	// DefaultBlockColor is the full-light block color, darkened per layer when shading
	DefaultBlockColor = "#d0a060"

	// LightBase and LightPerLayer shade blocks darker the lower they sit
	LightBase     = 255
	LightPerLayer = 10
)

// Screens
const (
	// ScoreBlinkRate is the score card blink frequency in Hz
	ScoreBlinkRate = 1.5

	// MessageBoxPadding is the horizontal padding around in-game messages
	MessageBoxPadding = 1

	// MessageTop is the screen row of the first message line
	MessageTop = 2
)

// Message durations
const (
	RescueMessageDuration   = 2500 * time.Millisecond
	StompMessageDuration    = 2500 * time.Millisecond
	GoodShotMessageDuration = 2500 * time.Millisecond
	DeathMessageDuration    = 3500 * time.Millisecond
	WinMessageDuration      = 1000 * time.Millisecond
	ScoreDelay              = 3 * time.Second
	RoundStartFreeze        = 1 * time.Second
)

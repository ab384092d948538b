package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/ant-attack/constant"
)

// Palette in the spirit of 8-bit attribute colors
var (
	RgbBackground = tcell.NewRGBColor(200, 200, 200) // Light gray sky
	RgbPanel      = tcell.NewRGBColor(0, 0, 0)       // Black HUD panel
	RgbPanelText  = tcell.NewRGBColor(190, 190, 190) // Gray labels
	RgbMagenta    = tcell.NewRGBColor(205, 0, 205)   // Screen border
	RgbYellow     = tcell.NewRGBColor(205, 205, 0)   // Card paper
	RgbBlue       = tcell.NewRGBColor(0, 0, 205)     // Card accents
	RgbCyan       = tcell.NewRGBColor(0, 205, 205)   // Score blink frame
	RgbRed        = tcell.NewRGBColor(205, 0, 0)     // Alerts
	RgbDebug      = tcell.NewRGBColor(255, 255, 0)   // Debug overlay

	RgbBoy     = tcell.NewRGBColor(0, 90, 200)    // Boy sprite
	RgbGirl    = tcell.NewRGBColor(200, 0, 140)   // Girl sprite
	RgbAnt     = tcell.NewRGBColor(0, 0, 0)       // Ant sprite
	RgbBomb    = tcell.NewRGBColor(40, 40, 40)    // Bomb sprite
	RgbBoom    = tcell.NewRGBColor(255, 120, 0)   // Explosion
	RgbCursor  = tcell.NewRGBColor(255, 0, 0)     // Free-look cursor
	RgbBadTile = tcell.NewRGBColor(255, 0, 255)   // Unmapped sprite
	RgbCharge  = tcell.NewRGBColor(255, 80, 80)   // Bomb charge bar
	RgbGround  = tcell.NewRGBColor(150, 150, 150) // Floor dots
)

// Shade darkens c for a block on layer z, matching the light falloff of lower layers
func Shade(c tcell.Color, z int) tcell.Color {
	light := int32(constant.LightBase + (z-constant.WorldDepth)*constant.LightPerLayer)
	light = max(0, min(light, constant.LightBase))
	r, g, b := c.RGB()
	return tcell.NewRGBColor(r*light/constant.LightBase, g*light/constant.LightBase, b*light/constant.LightBase)
}

// Side returns the darker color of a block's front face
func Side(c tcell.Color) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(r*3/5, g*3/5, b*3/5)
}

// Package render holds the palette shared by the terminal and isometric front ends
package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Creature and scene colors
var (
	HeadColor = colorful.Color{R: 50.0 / 255, G: 200.0 / 255, B: 50.0 / 255} // Bright green
	TailColor = colorful.Color{R: 20.0 / 255, G: 90.0 / 255, B: 110.0 / 255} // Deep teal

	SpineColor        = colorful.Color{R: 1, G: 0, B: 0}                     // Red spine sticks
	LegJointColor     = colorful.Color{R: 0, G: 1, B: 0}                     // Green leg-joint dots
	CoxaColor         = colorful.Color{R: 1, G: 1, B: 1}                     // White coxae
	LegColor          = colorful.Color{R: 1, G: 1, B: 0}                     // Yellow leg links
	JointColor        = colorful.Color{R: 0, G: 1, B: 1}                     // Cyan hip/knee/ankle
	PlantedFootColor  = colorful.Color{R: 1, G: 0, B: 1}                     // Magenta
	SwingFootColor    = colorful.Color{R: 1, G: 0.75, B: 1}                  // Pale magenta
	SegmentJointColor = colorful.Color{R: 0, G: 0, B: 1}                     // Blue segment joints
	DestinationColor  = colorful.Color{R: 1, G: 105.0 / 255, B: 180.0 / 255} // Hot pink marker
	GridColor         = colorful.Color{R: 120.0 / 255, G: 120.0 / 255, B: 120.0 / 255}
	BackgroundColor   = colorful.Color{R: 0, G: 0, B: 0}
	StatusTextColor   = colorful.Color{R: 180.0 / 255, G: 180.0 / 255, B: 180.0 / 255}
)

// GridAlpha is the grid line opacity
const GridAlpha = 150

// SegmentColor blends head to tail in Lab space for segment i of n
func SegmentColor(i, n int) colorful.Color {
	if n <= 1 || i <= 0 {
		return HeadColor
	}
	if i >= n-1 {
		return TailColor
	}
	return HeadColor.BlendLab(TailColor, float64(i)/float64(n-1)).Clamped()
}

// FootColor distinguishes planted from airborne feet
func FootColor(onGround bool) colorful.Color {
	if onGround {
		return PlantedFootColor
	}
	return SwingFootColor
}

// RGBA converts c to a premultiplied image color
func RGBA(c colorful.Color, alpha uint8) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	if alpha == 255 {
		return color.RGBA{R: r, G: g, B: b, A: 255}
	}
	// image/color expects premultiplied components
	return color.RGBA{
		R: uint8(uint16(r) * uint16(alpha) / 255),
		G: uint8(uint16(g) * uint16(alpha) / 255),
		B: uint8(uint16(b) * uint16(alpha) / 255),
		A: alpha,
	}
}

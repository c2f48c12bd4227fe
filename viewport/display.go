// SPDX-License-Identifier: MIT

package viewport

import (
	"fmt"
	"math"

	"github.com/katalvlaran/coordkit/chain"
	"github.com/katalvlaran/coordkit/geom"
	"github.com/katalvlaran/coordkit/transform"
)

// Display describes a screen and the browser window placed on it.
type Display struct {
	ScreenWidth  int `toml:"screen_width" json:"screen_width"`
	ScreenHeight int `toml:"screen_height" json:"screen_height"`

	// Window rectangle in screen pixels.
	WindowX      int `toml:"window_x" json:"window_x"`
	WindowY      int `toml:"window_y" json:"window_y"`
	WindowWidth  int `toml:"window_width" json:"window_width"`
	WindowHeight int `toml:"window_height" json:"window_height"`

	// DPIScale is σ, physical pixels per logical pixel.
	DPIScale float64 `toml:"dpi_scale" json:"dpi_scale"`
}

// Default returns a 1920×1080 screen with a 1600×900 window at (200, 100)
// and σ = 1.5.
func Default() Display {
	return Display{
		ScreenWidth:  1920,
		ScreenHeight: 1080,
		WindowX:      200,
		WindowY:      100,
		WindowWidth:  1600,
		WindowHeight: 900,
		DPIScale:     1.5,
	}
}

// Validate checks that every size and σ are positive.
func (d Display) Validate() error {
	switch {
	case d.ScreenWidth <= 0 || d.ScreenHeight <= 0:
		return fmt.Errorf("screen %dx%d: %w", d.ScreenWidth, d.ScreenHeight, ErrInvalidDisplay)
	case d.WindowWidth <= 0 || d.WindowHeight <= 0:
		return fmt.Errorf("window %dx%d: %w", d.WindowWidth, d.WindowHeight, ErrInvalidDisplay)
	case !(d.DPIScale > 0) || math.IsInf(d.DPIScale, 0):
		return fmt.Errorf("dpi_scale %g: %w", d.DPIScale, ErrInvalidDisplay)
	}

	return nil
}

// Window returns the window's top-left corner and size in screen pixels.
func (d Display) Window() (origin, size geom.Point) {
	return geom.Pt(float64(d.WindowX), float64(d.WindowY)),
		geom.Pt(float64(d.WindowWidth), float64(d.WindowHeight))
}

// Contains reports whether a screen point lies inside the window.
func (d Display) Contains(p geom.Point) bool {
	o, s := d.Window()

	return p.X >= o.X && p.X < o.X+s.X && p.Y >= o.Y && p.Y < o.Y+s.Y
}

// ScreenToBrowser subtracts the window origin.
func (d Display) ScreenToBrowser() transform.Transform {
	return transform.NewOffset(-float64(d.WindowX), -float64(d.WindowY))
}

// BrowserToLogical divides by σ.
func (d Display) BrowserToLogical() transform.Transform {
	return transform.NewScale(1/d.DPIScale, 1/d.DPIScale)
}

// LogicalToNormalized maps logical pixels to screen coordinates over the
// screen size: (σ·x + wx)/W, (σ·y + wy)/H. Composed with the earlier steps
// it equals ScreenToNormalized.
func (d Display) LogicalToNormalized() transform.Transform {
	w, h := float64(d.ScreenWidth), float64(d.ScreenHeight)

	return transform.Scale{
		SX: d.DPIScale / w,
		SY: d.DPIScale / h,
		DX: float64(d.WindowX) / w,
		DY: float64(d.WindowY) / h,
	}
}

// LogicalToViewport divides by the logical viewport size (window size / σ),
// so the window itself spans [0,1]².
func (d Display) LogicalToViewport() transform.Transform {
	return transform.NewScale(d.DPIScale/float64(d.WindowWidth), d.DPIScale/float64(d.WindowHeight))
}

// ScreenToNormalized scales absolute screen pixels by the screen size.
func (d Display) ScreenToNormalized() transform.Transform {
	return transform.NewScale(1/float64(d.ScreenWidth), 1/float64(d.ScreenHeight))
}

// Pipeline returns screen → browser → logical → normalized.
func (d Display) Pipeline() chain.Chain {
	return chain.New(d.ScreenToBrowser(), d.BrowserToLogical(), d.LogicalToNormalized())
}

// ScreenToLogical returns screen → browser → logical.
func (d Display) ScreenToLogical() chain.Chain {
	return chain.New(d.ScreenToBrowser(), d.BrowserToLogical())
}

// SPDX-License-Identifier: MIT

// Package viewport turns a display description (screen size, browser window
// rectangle, DPI scale) into the transforms between the four coordinate
// spaces:
//
//	Screen      absolute physical pixels
//	Browser     relative to the window's top-left corner
//	Logical     browser pixels divided by the DPI scale σ
//	Normalized  screen position over the screen size, [0,1]² on screen
//
// LogicalToViewport gives the window-relative alternative, where the
// browser window spans [0,1]².
//
// A Display is plain data and can be loaded from TOML:
//
//	screen_width  = 1920
//	screen_height = 1080
//	window_x      = 200
//	window_y      = 100
//	window_width  = 1600
//	window_height = 900
//	dpi_scale     = 1.5
//
// Missing keys keep their Default values; unknown keys are rejected.
package viewport

// Package viz renders classroom scenes onto a braille-dot terminal canvas.
//
// [Canvas] packs a 2x4 dot grid into each character cell, giving a
// (Width*2) x (Height*4) monochrome pixel surface. [Viewport] maps world
// coordinates onto that surface so scene code can draw in meters, radii,
// or dollars. [Draw] dispatches to the scene renderer for each simulation.
package viz

// Package viz renders the layout in the terminal. Edge geometry is drawn
// on a braille sub-pixel canvas and nodes as whole-cell glyphs on top; a
// small orbit camera projects the 3D node positions. The live view is a
// bubbletea program that advances the stabilization controller once per
// frame, so the terminal event loop doubles as the animation loop.
package viz

// Package viz animates trajectories in the terminal.
//
// The package implements the display side using the Bubble Tea framework:
//
//   - [Animation]: plays one sample per frame, drawing an orange trail through
//     the samples shown so far and a marker on the current one
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//   - [Viewport]: equal-aspect mapping from metres to canvas dots
//   - Theme selection with 4 built-in colour schemes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Restart from the launch
//	←/→   - Step one frame while paused
//	T     - Cycle colour themes
//	Q     - Quit
//
// Playback never loops: once the last sample is reached the final frame stays
// on screen until the user quits.
package viz

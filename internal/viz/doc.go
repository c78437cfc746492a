// Package viz renders the curve animation in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: animator loop driven by a fixed-period tick
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//   - Theme selection with built-in color schemes
//
// # Key Bindings
//
//	Space - Start/stop the animation
//	G     - Rebuild the trace from the current parameters
//	R     - Rewind to frame 0
//	[]    - Step one frame back/forward
//	Tab   - Select a parameter, Up/Down to tune it
//	V     - Switch between Cartesian and polar view
//	T     - Cycle color themes
//	S     - Save the current frame as SVG
//	?     - Show help overlay
package viz

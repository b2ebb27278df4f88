// Package viz runs the full-screen sweep animation.
//
// The render loop is a Bubble Tea program:
//
//   - [Model]: owns the sweep time and palettes, paints one frame per tick
//   - [Run]: starts the program in the alternate screen and wires the stop flag
//
// # Key Bindings
//
//	q, Q   - Stop
//	Ctrl+C - Stop (same as an interrupt signal)
//
// # Stopping
//
// The q key, SIGINT, SIGTERM and context cancellation all set one atomic stop
// flag. The flag is checked before every frame; once set no further frame is
// drawn. Bubble Tea restores the cursor, leaves the alternate screen and
// disables raw input on every exit path.
package viz

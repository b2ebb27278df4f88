// Package sweep provides the color model behind the diagonal wipe animation.
//
// The package is free of terminal concerns:
//
//   - [Color]: the eight named terminal colors
//   - [Palettes]: incoming/outgoing 7-entry palettes plus the background color
//   - [Pick]: per-cell color selection for a sweep time step
//   - [Timeline]: the stepped, symmetric range of sweep times
//   - [Source]: injectable random source for jitter and rotation
//
// # Bands
//
// [Pick] scans bands from index 6 down to 0 and returns on the first match,
// so the farthest qualifying band wins. Changing the order changes the
// visual output.
package sweep

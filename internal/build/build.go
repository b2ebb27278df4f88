package build

// Version of asciisweep. Set with -ldflags "-X" during release.
var Version = "0.0.0"

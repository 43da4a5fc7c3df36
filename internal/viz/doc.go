// Package viz is the terminal frontend for trajectory playback.
//
// It renders the precomputed path on a Braille pixel [Canvas] inside a
// Bubble Tea program. A fixed-rate tick drives the playback controller;
// keys map to controller events:
//
//	Space - play/pause
//	[ ]   - step one frame back/forward
//	{ }   - latch continuous scrub back/forward (enter releases)
//	Arrows/hjkl - pan
//	+ -   - zoom in/out
//	0     - reset view to fit the whole path
//	g     - toggle grid
//	q/Esc - exit
//
// Terminals deliver no key-release events, so the "held" scrub of the
// graphical frontend is latched here: { or } enters scrubbing and enter
// (or space) leaves it.
package viz

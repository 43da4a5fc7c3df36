// Package kinematics computes differential-drive robot trajectories.
//
// The package turns an ordered script of wheel movement commands into an
// immutable sampled [Path]:
//
//   - [Pose]: 2D position plus heading
//   - [WheelCommand]: which wheel(s) are driven, direction, magnitude
//   - [Params]: static robot geometry (wheel diameter, axle track, step size)
//   - [ComputePath]: integrates commands into an ordered [Path]
//
// Each command resolves to a pair of signed per-wheel distances (dl, dr).
// Over a sub-step the axle midpoint advances by (dl+dr)/2 along a circular
// arc while the heading changes by (dl-dr)/track, the standard two-wheel
// differential-drive model evaluated in closed form per step.
//
// # Conventions
//
// Heading is in radians with 0 pointing along +y and clockwise positive,
// normalized to (-pi, pi] on every emitted sample. Forward motion at heading
// h displaces the robot by (sin h, cos h) per unit distance.
//
// # Determinism
//
// ComputePath is a pure function of its inputs: identical commands, initial
// pose and parameters always yield a bit-identical Path. Computation is
// all-or-nothing; a malformed command or parameter aborts with no partial
// Path.
package kinematics

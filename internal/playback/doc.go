// Package playback drives interactive exploration of a precomputed path.
//
// A [Controller] is a single-writer state machine over a read-only
// [kinematics.Path]: frontends translate input into [Event] values, call
// [Controller.Tick] once per render tick, and draw the [Snapshot] returned
// by [Controller.Frame]. The controller never errors; every transition is a
// total function that clamps instead of failing.
//
// End-of-path behavior is an explicit policy: [Hold] (default) parks on the
// last frame, [Loop] wraps playback to frame zero. Scrubbing always clamps
// at both ends regardless of policy.
package playback

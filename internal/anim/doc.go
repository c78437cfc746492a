// Package anim holds the frame-stepped animation state machine.
//
// A [Controller] owns one generated [Sample] (a full revolution of the
// curve evaluated over equally spaced angles) and a frame cursor into
// it:
//
//   - [Controller.Generate]: evaluate and replace the sample
//   - [Controller.Play] / [Controller.Stop]: transport control
//   - [Controller.Tick]: advance one frame, wrapping at the end
//   - [Controller.Seek]: jump to a frame, wrapping out-of-range indices
//   - [Controller.Frame]: snapshot for a render sink
//
// Playback is fixed-step: every tick moves forward exactly one sample
// regardless of wall-clock drift, so the host drives Tick from a
// fixed-period timer.
//
// # Thread Safety
//
// Controller instances are NOT thread-safe. A concurrent host must
// serialize all calls.
package anim

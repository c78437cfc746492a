// Package analysis characterizes traced curves.
//
//   - [Ratio]: reduced rational approximation of R/r
//   - [ClosureTurns]: revolutions until the trace closes
//   - [ArcLength]: polyline length of a trace
//   - [MaxRadius]: largest distance from the origin
//   - [Summarize]: the standard metric set stored with a saved trace
package analysis

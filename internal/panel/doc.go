// Package panel implements the terminal instrument panel for the radio
// tuner: frequency readout, station name, stereo and mute lamps, a
// 15-segment signal meter and an analog tuning needle.
//
// The package splits into two halves:
//
//   - A pure presentation mapper (Map) that turns one device status
//     snapshot into one VisualState. It clamps the raw signal level into
//     the meter range, interpolates the needle angle across the FM band
//     and substitutes a placeholder for missing station names. Same
//     snapshot in, same visual state out, always.
//
//   - An effectful Bubble Tea model (Model) that drives the refresh loop,
//     dispatches user commands to the device and re-renders the panel as
//     a full overwrite of every visual element on each frame.
//
// # Refresh loop
//
// A fixed-interval tick fetches device status and re-renders. User
// commands (tune, step, mute, unmute, force mono) issue their request and
// then unconditionally re-fetch status, so the panel always converges on
// the device's actual state rather than an assumed post-condition. Ticks
// never overlap their own fetches; a tick that arrives while the previous
// timer fetch is still in flight is skipped, and the following tick
// resumes normally.
//
// Failures are reported to an injectable Reporter and swallowed: a dead
// device degrades the panel to a stale display, and the loop keeps
// polling until the device comes back.
package panel

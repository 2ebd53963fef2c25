// Package tui is the interactive waveform viewer: a parameter form on top
// of a scrollable step plot, built on bubbletea.
//
// Sections:
//
//   - Params: coder selector plus text inputs for bits, tb, v and duty.
//     Every edit is validated through the coder's Set* hooks; a rejected
//     field is flagged and the last valid waveform stays on screen.
//   - Visualizer: the encoded waveform as a step chart, scrolled with
//     left/right through a signal.Viewport.
//   - Help: key bindings.
//
// Keys: Esc quits, Tab toggles help, Shift+Up / Shift+Down switch between
// the parameter and visualizer sections.
package tui

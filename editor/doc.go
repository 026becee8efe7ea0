// Package editor provides a Bubble Tea component that hosts a
// viewport.Viewport.
//
// The component translates key and mouse messages into viewport events,
// renders the window through a sink.Frame and adds an optional status line
// and key help footer. Messages the viewport addresses to its host (leave for
// the picker, quit) come back to the program as MessageMsg commands.
package editor

// Package tui provides the Bubble Tea front end of the sandbox: a live
// viewer that steps a simulation world on a timer, a scenario picker, the
// stored-run browser, and an SSH server that serves them per session.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. ID names the viewer that
// scheduled it, so a replaced viewer's pending tick is dropped.
type TickMsg struct {
	ID   int64
	Time time.Time
}

var viewerIDs atomic.Int64

// nextViewerID returns a process-unique viewer id.
func nextViewerID() int64 {
	return viewerIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages for viewer
// id at the specified rate.
func tickCmd(id int64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

// Package eventlog renders simulation events as JSON lines and appends
// them to the run's textual event record.
package eventlog

import (
	"bufio"
	"encoding/json"
	"os"
	"sync"

	"github.com/talgya/aeternitas/internal/sim"
)

// record is the wire form of one event line. Field names and layout follow
// the historical log format: timestamp and entity id always present, the
// variant payload only when set.
type record struct {
	Timestamp uint64 `json:"timestamp"`
	EntityID  uint64 `json:"entity_id"`
	Type      string `json:"type"`
	ParentID  uint64 `json:"parent_id,omitempty"`
	Genome    string `json:"genome,omitempty"`
	X         *int   `json:"x,omitempty"`
	Y         *int   `json:"y,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// Render returns the single-line JSON form of an event.
func Render(e sim.Event) (string, error) {
	r := record{
		Timestamp: e.Tick,
		EntityID:  e.EntityID,
		Type:      e.Type.String(),
	}
	switch e.Type {
	case sim.EventBirth:
		r.ParentID = e.ParentID
		r.Genome = e.Genome.String()
	case sim.EventMove:
		x, y := e.X, e.Y
		r.X, r.Y = &x, &y
	case sim.EventDeath:
		r.Reason = e.Reason
	}

	b, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Writer is an append-only JSONL event log. Lines are buffered and flushed
// per batch; the file is opened O_APPEND so records from a resumed run
// extend the same record.
type Writer struct {
	mu sync.Mutex
	f  *os.File
	w  *bufio.Writer
}

// NewWriter opens (or creates) the log file at path for appending.
func NewWriter(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &Writer{f: f, w: bufio.NewWriter(f)}, nil
}

// Append writes a batch of events, one line each, and flushes.
func (w *Writer) Append(events []sim.Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, e := range events {
		line, err := Render(e)
		if err != nil {
			return err
		}
		if _, err := w.w.WriteString(line); err != nil {
			return err
		}
		if err := w.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.w.Flush()
}

// Close flushes and closes the underlying file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.w.Flush(); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}

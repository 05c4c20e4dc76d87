package eventlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/talgya/aeternitas/internal/genome"
	"github.com/talgya/aeternitas/internal/sim"
)

func TestRender(t *testing.T) {
	g := genome.Random(7)

	tests := []struct {
		name  string
		event sim.Event
		want  string
	}{
		{
			"genesis",
			sim.NewGenesisEvent(0),
			`{"timestamp":0,"entity_id":0,"type":"Genesis"}`,
		},
		{
			"birth",
			sim.NewBirthEvent(3, 2, 1, g),
			`{"timestamp":3,"entity_id":2,"type":"Birth","parent_id":1,"genome":"` + g.String() + `"}`,
		},
		{
			"death",
			sim.NewDeathEvent(9, 4, "starvation"),
			`{"timestamp":9,"entity_id":4,"type":"Death","reason":"starvation"}`,
		},
		{
			"move",
			sim.NewMoveEvent(5, 2, 6, 0),
			`{"timestamp":5,"entity_id":2,"type":"Move","x":6,"y":0}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.event)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestRenderGenomeHexLength(t *testing.T) {
	line, err := Render(sim.NewBirthEvent(1, 2, 1, genome.Random(1)))
	if err != nil {
		t.Fatal(err)
	}
	start := strings.Index(line, `"genome":"`)
	if start < 0 {
		t.Fatal("birth line missing genome field")
	}
	hex := line[start+len(`"genome":"`):]
	hex = hex[:strings.Index(hex, `"`)]
	if len(hex) != 128 {
		t.Errorf("genome hex length = %d, want 128", len(hex))
	}
	if strings.ToLower(hex) != hex {
		t.Error("genome hex is not lowercase")
	}
}

func TestWriterAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")

	w, err := NewWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	batch1 := []sim.Event{sim.NewGenesisEvent(0), sim.NewMoveEvent(1, 1, 2, 3)}
	if err := w.Append(batch1); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	// Reopen and append: the record must extend, not truncate.
	w, err = NewWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Append([]sim.Event{sim.NewDeathEvent(2, 1, "starvation")}); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i, l := range lines {
		if !strings.HasPrefix(l, `{"timestamp":`) {
			t.Errorf("line %d malformed: %s", i, l)
		}
	}
}

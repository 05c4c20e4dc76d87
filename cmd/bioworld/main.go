// Command bioworld runs the deterministic biosphere simulation: a seeded
// population of simulacra evolving on a bounded grid, with the emitted
// event stream appended to a JSONL record and archived to SQLite.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/talgya/aeternitas/internal/config"
	"github.com/talgya/aeternitas/internal/eventlog"
	"github.com/talgya/aeternitas/internal/genome"
	"github.com/talgya/aeternitas/internal/persistence"
	"github.com/talgya/aeternitas/internal/sim"
	"github.com/talgya/aeternitas/internal/telemetry"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (defaults embedded)")
		seed       = flag.Uint64("seed", 0, "override world seed")
		size       = flag.Int("size", 0, "override grid size")
		ticks      = flag.Uint64("ticks", 0, "override tick count")
		founders   = flag.Int("founders", 0, "override founding population")
		solo       = flag.Bool("solo", false, "run the single-agent metabolic demo")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.World.Seed = *seed
	}
	if *size != 0 {
		cfg.World.Size = *size
	}
	if *ticks != 0 {
		cfg.World.Ticks = *ticks
	}
	if *founders != 0 {
		cfg.World.Founders = *founders
	}

	if *solo {
		runSolo(cfg)
		return
	}
	if err := run(cfg); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	runID := uuid.NewString()
	slog.Info("biosphere starting",
		"run_id", runID,
		"seed", cfg.World.Seed,
		"size", cfg.World.Size,
		"founders", cfg.World.Founders,
		"ticks", cfg.World.Ticks,
	)

	// ── Outputs ───────────────────────────────────────────────────────
	var logWriter *eventlog.Writer
	if cfg.Output.EventLog != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Output.EventLog), 0755); err != nil {
			return fmt.Errorf("event log dir: %w", err)
		}
		w, err := eventlog.NewWriter(cfg.Output.EventLog)
		if err != nil {
			return fmt.Errorf("open event log: %w", err)
		}
		logWriter = w
		defer logWriter.Close()
	}

	var db *persistence.DB
	if cfg.Output.Archive != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Output.Archive), 0755); err != nil {
			return fmt.Errorf("archive dir: %w", err)
		}
		d, err := persistence.Open(cfg.Output.Archive)
		if err != nil {
			return fmt.Errorf("open archive: %w", err)
		}
		db = d
		defer db.Close()
	}

	output, err := telemetry.NewOutputManager(cfg.Telemetry.Dir)
	if err != nil {
		return fmt.Errorf("telemetry output: %w", err)
	}
	defer output.Close()

	// ── World ─────────────────────────────────────────────────────────
	world, genesis := sim.NewWorld(cfg.World.Size, cfg.World.Seed, cfg.SimParams())
	spawner := sim.NewSpawner(cfg.World.Seed)
	births := spawner.SpawnFounders(world, cfg.World.Founders)

	initial := append([]sim.Event{genesis}, births...)
	if err := emit(initial, logWriter, db); err != nil {
		return err
	}
	slog.Info("founding population placed", "agents", world.Population())

	// ── Tick loop ─────────────────────────────────────────────────────
	interval := cfg.Telemetry.Interval
	if interval == 0 {
		interval = 1
	}

	for world.TickCount < cfg.World.Ticks {
		events := world.Tick()
		if err := emit(events, logWriter, db); err != nil {
			return err
		}

		if world.TickCount%interval == 0 {
			stats := telemetry.Collect(world, events)
			if err := output.WriteStats(stats); err != nil {
				return err
			}
		}

		if world.TickCount%1000 == 0 {
			slog.Info("progress",
				"tick", world.TickCount,
				"population", world.Population(),
				"births", world.Stats.Births,
				"deaths", world.Stats.Deaths,
			)
		}

		if world.Population() == 0 {
			slog.Info("population extinct", "tick", world.TickCount)
			break
		}
	}

	if db != nil {
		if err := db.FinalizeRun(runID, cfg.World.Seed, world.TickCount); err != nil {
			return err
		}
	}

	fmt.Printf("\nRun %s complete: %s ticks, %s births, %s deaths, %s survivors.\n",
		runID,
		humanize.Comma(int64(world.TickCount)),
		humanize.Comma(int64(world.Stats.Births)),
		humanize.Comma(int64(world.Stats.Deaths)),
		humanize.Comma(int64(world.Population())),
	)
	return nil
}

// runSolo replays the classic single-agent metabolic demo: one organism
// with a random genome, no field and no movement, aging until starvation.
func runSolo(cfg *config.Config) {
	g := genome.Random(cfg.World.Seed)
	p := g.Decode()
	adam := sim.NewSimulacrum(1, g, sim.Position{}, cfg.SimParams())

	fmt.Println("--- Metabolic Simulation Start ---")
	fmt.Printf("Initial Energy: %.2f J | BMR: %.2f | Mass: %.2f kg | Max Lifespan: %.1f\n",
		adam.Energy, p.BMR, p.BodyMass, p.MaxLifespan)

	senescentReported := false
	for tick := uint64(1); tick <= 2*uint64(p.MaxLifespan); tick++ {
		result := adam.AdvanceTick()

		if result.Telomeres <= 0 && !senescentReported {
			senescentReported = true
			fmt.Printf("WARNING: senescence begins at tick %d\n", tick)
		}

		if tick%100 == 0 || !result.Alive {
			status := "[ALIVE]"
			if !result.Alive {
				status = "[DEAD]"
			} else if result.Telomeres <= 0 {
				status = "[SENESCENT]"
			}
			fmt.Printf("Tick %4d | Energy: %8.2f J | Telo: %6.1f | Status: %s\n",
				tick, adam.Energy, result.Telomeres, status)
		}

		if !result.Alive {
			break
		}
	}
	fmt.Println("--- Metabolic Simulation End ---")
}

// emit appends a batch of events to every enabled sink.
func emit(events []sim.Event, w *eventlog.Writer, db *persistence.DB) error {
	if len(events) == 0 {
		return nil
	}
	if w != nil {
		if err := w.Append(events); err != nil {
			return fmt.Errorf("event log append: %w", err)
		}
	}
	if db != nil {
		if err := db.SaveEvents(events); err != nil {
			return fmt.Errorf("archive events: %w", err)
		}
	}
	return nil
}

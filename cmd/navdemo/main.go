// Command navdemo drives the pathfinding core against a synthetic
// flat-plus-obstacles world and renders the run in a terminal UI, the way
// pkg/helpers.NewClient/Run wires a real connection for the network client.
// There is no server: the "world" is a handful of hand-placed chunk columns
// and the "agent" is the self/physics/world/entities/inventory modules
// wired together in-process instead of fed by packets.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"github.com/go-mclib/client/nav"
	"github.com/go-mclib/client/pkg/client"
	"github.com/go-mclib/client/pkg/client/host"
	"github.com/go-mclib/client/pkg/client/modules/collisions"
	"github.com/go-mclib/client/pkg/client/modules/entities"
	"github.com/go-mclib/client/pkg/client/modules/inventory"
	"github.com/go-mclib/client/pkg/client/modules/physics"
	"github.com/go-mclib/client/pkg/client/modules/self"
	"github.com/go-mclib/client/pkg/client/modules/world"
)

// Flags are navdemo's command-line options, the same RegisterFlags-onto-a-
// struct pattern pkg/helpers.Flags uses, scaled down to what a simulated
// run needs instead of an address/username/reconnect policy.
type Flags struct {
	ConfigPath string
	GoalX      int
	GoalY      int
	GoalZ      int
	MaxTicks   int
}

func RegisterFlags(f *Flags) {
	flag.StringVar(&f.ConfigPath, "config", "", "optional YAML file overriding the default nav.Settings")
	flag.IntVar(&f.GoalX, "x", 38, "goal block X")
	flag.IntVar(&f.GoalY, "y", 63, "goal block Y")
	flag.IntVar(&f.GoalZ, "z", 0, "goal block Z")
	flag.IntVar(&f.MaxTicks, "max-ticks", 4000, "give up and report failure after this many ticks")
}

// loadSettings starts from nav.DefaultSettings and, if path is non-empty,
// overlays a YAML file on top of it — the same config-file-over-defaults
// shape pthm-soup's settings loader uses for its own YAML config.
func loadSettings(path string) (nav.Settings, error) {
	settings := nav.DefaultSettings()
	if path == "" {
		return settings, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &settings); err != nil {
		return settings, fmt.Errorf("parsing config: %w", err)
	}
	settings.Clamp()
	return settings, nil
}

func newAgent() *client.Client {
	c := client.New()
	c.Register(self.New())
	c.Register(world.New())
	c.Register(collisions.New())
	c.Register(entities.New())
	c.Register(inventory.New())
	c.Register(physics.New())
	return c
}

func main() {
	var f Flags
	RegisterFlags(&f)
	flag.Parse()

	settings, err := loadSettings(f.ConfigPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "navdemo:", err)
		os.Exit(1)
	}

	c := newAgent()
	buildWorld(world.From(c))

	selfMod := self.From(c)
	selfMod.SetPosition(0.5, 64, 0.5)

	adapter := host.New(c)
	if adapter == nil {
		fmt.Fprintln(os.Stderr, "navdemo: host adapter construction failed, a required module is unregistered")
		os.Exit(1)
	}

	ctxFunc := func() *nav.CalculationContext {
		return &nav.CalculationContext{
			World:     adapter,
			Settings:  settings,
			Inventory: adapter,
			Entities:  adapter,
			Host:      adapter,
		}
	}

	exec := nav.NewExecutor(adapter, ctxFunc, nav.DefaultSuccessors, nav.DefaultBudget())
	goal := nav.GoalBlock{Target: nav.C(int32(f.GoalX), int32(f.GoalY), int32(f.GoalZ))}

	sim := newSimulation(c, adapter, exec, goal, f.MaxTicks)

	p := tea.NewProgram(newModel(sim))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "navdemo:", err)
		os.Exit(1)
	}
}

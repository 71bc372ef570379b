// Package registry holds the playable modes. Each mode registers a factory
// from its package's init(), so the CLI and menu can list and start modes
// without importing them directly.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/blockfall/internal/core"
)

// ErrUnknownMode is returned by Create for an unregistered ID.
var ErrUnknownMode = errors.New("unknown mode")

// Game is what the platform drives once per frame.
// Implementations hold pure logic and never import Bubble Tea; the platform
// handles key mapping, timing and terminal output.
type Game interface {
	// ID returns the mode identifier used on the command line ("tetris").
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset builds a fresh game for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one frame with the actions pressed during it.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns score and lifecycle flags.
	State() core.GameState

	// Controls returns a one-line control summary.
	Controls() string
}

// Info describes a registered mode.
type Info struct {
	ID       string
	Title    string
	Controls string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]Info)
)

// Register adds a mode. Panics if the ID is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}

	g := f()
	factories[id] = f
	infos[id] = Info{ID: id, Title: g.Title(), Controls: g.Controls()}
}

// List returns all registered modes sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	slices.SortFunc(result, func(a, b Info) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates the mode with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownMode, id)
	}
	return f(), nil
}

// Exists reports whether a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

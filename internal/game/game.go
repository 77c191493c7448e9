package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wildlands/internal/gamedata"
	"github.com/samdwyer/wildlands/internal/telemetry"
	"github.com/samdwyer/wildlands/internal/ui"
)

// Game drives a Session from terminal input.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	running  bool
}

// New creates a game on the terminal.
func New(cfg Config, catalog *gamedata.Catalog) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	g, err := NewWithScreen(cfg, catalog, screen)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a game drawing to an existing screen.
func NewWithScreen(cfg Config, catalog *gamedata.Catalog, screen *ui.Screen) (*Game, error) {
	session, err := NewSession(cfg, catalog)
	if err != nil {
		return nil, err
	}
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, catalog),
		session:  session,
		running:  true,
	}, nil
}

// Session returns the game's session.
func (g *Game) Session() *Session { return g.session }

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	_, initSpan := tracer.Start(ctx, "game.init")
	s := g.session
	initSpan.SetAttributes(
		attribute.String("world.dimension", string(s.Dimension)),
		attribute.String("world.spawn_biome", s.World().BiomeAt(0, 0, s.Dimension).String()),
		attribute.Int("player.inventory_capacity", s.Player.Inventory.Capacity()),
	)
	initSpan.End()

	for g.running {
		g.render()
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// render draws the session's current state.
func (g *Game) render() {
	s := g.session
	frame := ui.Frame{
		World:         s.World(),
		Player:        s.Player,
		Dimension:     s.Dimension,
		Messages:      s.Messages(),
		Discovered:    s.Discovered(),
		NPCsMet:       s.NPCsMet(),
		ShowMap:       s.Mode() == ModeMap,
		ShowInventory: s.InventoryOpen(),
	}
	if npc, line, ok := s.Dialogue(); ok {
		frame.Dialogue = &ui.Dialogue{NPCType: npc.Type, Line: line}
	}
	g.renderer.Render(frame)
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleCommand(ctx, ui.TranslateKey(ev.Key(), ev.Rune()))
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized.
		g.running = false
	}
}

// handleCommand applies one decoded key press to the session.
func (g *Game) handleCommand(ctx context.Context, cmd ui.Command) {
	s := g.session
	switch cmd.Action {
	case ui.ActionQuit:
		g.running = false
	case ui.ActionDismiss:
		if !s.Dismiss() {
			g.running = false
		}
	case ui.ActionMove:
		s.AttemptMove(ctx, cmd.DX, cmd.DY)
	case ui.ActionMine:
		dx, dy := s.Facing()
		s.Mine(ctx, dx, dy)
	case ui.ActionUse:
		s.UseSelected()
	case ui.ActionReturn:
		s.ReturnToOverworld()
	case ui.ActionToggleMap:
		s.ToggleMap()
	case ui.ActionToggleInventory:
		s.ToggleInventory()
	case ui.ActionAdvanceDialogue:
		s.AdvanceDialogue()
	case ui.ActionSelectSlot:
		s.SelectHotbar(cmd.Slot)
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}

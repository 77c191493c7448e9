package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/wildlands/internal/effect"
	"github.com/samdwyer/wildlands/internal/entity"
	"github.com/samdwyer/wildlands/internal/gamedata"
	"github.com/samdwyer/wildlands/internal/item"
	"github.com/samdwyer/wildlands/internal/telemetry"
	"github.com/samdwyer/wildlands/internal/world"
)

// Score bonuses.
const (
	DiscoveryBonus = 500
	PortalBonus    = 3000
	NewNPCBonus    = 150
)

// MaxMessages is how many recent messages a session keeps.
const MaxMessages = 5

// OutcomeKind classifies the result of a move attempt.
type OutcomeKind int

const (
	OutcomeRejected   OutcomeKind = iota // nothing happened
	OutcomeBlocked                       // a modal is open
	OutcomeMoved                         // player stepped onto the tile
	OutcomeTeleported                    // portal switched dimension
	OutcomeDialogue                      // NPC dialogue opened
	OutcomeHazard                        // hazard damaged the player
)

// String returns the outcome name used in traces.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeRejected:
		return "rejected"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeMoved:
		return "moved"
	case OutcomeTeleported:
		return "teleported"
	case OutcomeDialogue:
		return "dialogue"
	case OutcomeHazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// MoveOutcome describes what a move attempt did.
type MoveOutcome struct {
	Kind  OutcomeKind
	Moved bool // position changed by a step

	Messages   []string
	ScoreDelta int
	CoinDelta  int
	Damage     int
	Item       item.Type // item picked up, or item.None

	Dialogue   *world.NPC      // set when a dialogue opened
	Teleported bool            // set when a portal was used
	Dimension  world.Dimension // dimension after the attempt

	// SpeedFactor is the relative movement speed on the destination tile.
	SpeedFactor float64
}

func (o *MoveOutcome) say(msgs ...string) {
	o.Messages = append(o.Messages, msgs...)
}

// Session is the complete state of one play session. All gameplay
// mutations go through its methods.
type Session struct {
	Player    *entity.Player
	Dimension world.Dimension

	store    *world.Store
	resolver *effect.Resolver
	catalog  *gamedata.Catalog

	mode          Mode
	inventoryOpen bool
	activeNPC     *world.NPC
	dialogueIndex int

	discovered      map[world.Biome]bool
	discoveredOrder []world.Biome
	met             map[string]bool
	messages        []string

	facingX, facingY int
	homeX, homeY     int // overworld position saved on portal entry
	warmRadius       int
}

// NewSession creates a session at the overworld origin with the starting
// kit. catalog supplies NPC types, item limits and display names.
func NewSession(cfg Config, catalog *gamedata.Catalog) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if catalog == nil {
		return nil, fmt.Errorf("failed to create session: nil catalog")
	}

	src := world.NewSource(cfg.Seed)
	store, err := world.NewStore(src, world.StoreOptions{
		CacheSize: cfg.CacheSize,
		NPCTypes:  catalog.NPCs.IDs(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create world: %w", err)
	}

	player := entity.NewPlayer(cfg.StartingHealth, cfg.StartingCoins, cfg.InventoryCapacity)
	applyStackLimits(player.Inventory, catalog)

	s := &Session{
		Player:     player,
		Dimension:  world.Overworld,
		store:      store,
		resolver:   effect.NewResolver(src, catalog.Items),
		catalog:    catalog,
		discovered: make(map[world.Biome]bool),
		met:        make(map[string]bool),
		facingY:    1,
		warmRadius: cfg.WarmRadius,
	}
	s.discover(store.BiomeAt(0, 0, world.Overworld))

	for _, kit := range startingKit {
		player.AddItem(kit.Item, kit.Quantity)
	}
	return s, nil
}

var startingKit = []entity.Stack{
	{Item: item.Wood, Quantity: 10},
	{Item: item.Stone, Quantity: 5},
	{Item: item.Apple, Quantity: 3},
	{Item: item.Axe, Quantity: 1},
	{Item: item.Pickaxe, Quantity: 1},
}

func applyStackLimits(inv *entity.Inventory, catalog *gamedata.Catalog) {
	for _, def := range catalog.Items.All() {
		if t, ok := item.FromID(def.ID); ok {
			inv.SetStackLimit(t, def.MaxStack)
		}
	}
}

// =============================================================================
// Accessors
// =============================================================================

// World returns the session's world store.
func (s *Session) World() *world.Store { return s.store }

// Catalog returns the static data the session was created with.
func (s *Session) Catalog() *gamedata.Catalog { return s.catalog }

// Mode returns the current input mode.
func (s *Session) Mode() Mode { return s.mode }

// InventoryOpen reports whether the inventory panel is shown.
func (s *Session) InventoryOpen() bool { return s.inventoryOpen }

// Messages returns the most recent messages, oldest first.
func (s *Session) Messages() []string {
	return append([]string(nil), s.messages...)
}

// Discovered returns the discovered biomes in discovery order.
func (s *Session) Discovered() []world.Biome {
	return append([]world.Biome(nil), s.discoveredOrder...)
}

// HasDiscovered reports whether b has been seen this session.
func (s *Session) HasDiscovered(b world.Biome) bool { return s.discovered[b] }

// NPCsMet returns how many distinct NPCs the player has talked to.
func (s *Session) NPCsMet() int { return len(s.met) }

// Facing returns the direction of the last move attempt.
func (s *Session) Facing() (int, int) { return s.facingX, s.facingY }

// Dialogue returns the NPC being talked to and its current line.
func (s *Session) Dialogue() (*world.NPC, string, bool) {
	if s.mode != ModeDialogue || s.activeNPC == nil {
		return nil, "", false
	}
	line := "..."
	if def := s.catalog.NPCs.GetByID(s.activeNPC.Type); def != nil {
		line = def.Line(s.dialogueIndex)
	}
	return s.activeNPC, line, true
}

// BiomeName returns the display name of a biome.
func (s *Session) BiomeName(b world.Biome) string {
	if def := s.catalog.Biomes.GetByID(b.ID()); def != nil && def.Name != "" {
		return def.Name
	}
	return b.ID()
}

// NPCName returns the display name of an NPC type.
func (s *Session) NPCName(typ string) string {
	if def := s.catalog.NPCs.GetByID(typ); def != nil && def.Name != "" {
		return def.Name
	}
	return typ
}

func (s *Session) addMessages(msgs ...string) {
	s.messages = append(s.messages, msgs...)
	if over := len(s.messages) - MaxMessages; over > 0 {
		s.messages = append([]string(nil), s.messages[over:]...)
	}
}

func (s *Session) discover(b world.Biome) bool {
	if s.discovered[b] {
		return false
	}
	s.discovered[b] = true
	s.discoveredOrder = append(s.discoveredOrder, b)
	return true
}

// =============================================================================
// Movement
// =============================================================================

// AttemptMove tries to move the player one cell in a cardinal direction.
// A rejected move leaves the session unchanged. Any move that reaches the
// tile lookup also records the destination biome as discovered.
func (s *Session) AttemptMove(ctx context.Context, dx, dy int) MoveOutcome {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "player.move")
	defer span.End()

	out := s.attemptMove(ctx, dx, dy)
	s.addMessages(out.Messages...)

	span.SetAttributes(
		attribute.Int("move.dx", dx),
		attribute.Int("move.dy", dy),
		attribute.Int("player.x", s.Player.X),
		attribute.Int("player.y", s.Player.Y),
		attribute.String("player.dimension", string(s.Dimension)),
		attribute.String("move.outcome", out.Kind.String()),
		attribute.Int("move.score_delta", out.ScoreDelta),
	)
	return out
}

func (s *Session) attemptMove(ctx context.Context, dx, dy int) MoveOutcome {
	out := MoveOutcome{Dimension: s.Dimension, SpeedFactor: 1}

	if s.mode.IsModal() {
		out.Kind = OutcomeBlocked
		return out
	}
	if !isCardinalStep(dx, dy) {
		return out
	}
	s.facingX, s.facingY = dx, dy

	nx, ny := s.Player.X+dx, s.Player.Y+dy
	tile := s.store.GetTile(nx, ny, s.Dimension)
	biome := s.store.BiomeAt(nx, ny, s.Dimension)
	out.SpeedFactor = tile.SpeedFactor()

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("move.tile", tile.String()),
		attribute.String("move.biome", biome.String()),
	)

	if s.discover(biome) {
		s.Player.AddScore(DiscoveryBonus)
		out.ScoreDelta += DiscoveryBonus
		out.say(fmt.Sprintf("Discovered %s!", s.BiomeName(biome)))
	}

	switch tile.Trigger() {
	case world.TriggerPortal:
		s.teleport(ctx, nx, ny, &out)
		return out
	case world.TriggerNPC:
		s.openDialogue(nx, ny, &out)
		return out
	}

	switch {
	case tile.IsWalkable():
		res := s.resolver.ResolveStep(tile, nx, ny, world.GroundTile(biome), s.Player)
		if res.Replaced {
			s.store.SetTile(nx, ny, s.Dimension, res.Replace)
		}
		s.Player.Move(dx, dy)
		out.Kind = OutcomeMoved
		out.Moved = true
		out.Item = res.Item
		out.CoinDelta += res.Coins
		out.ScoreDelta += res.Score
		out.say(res.Messages...)

	case tile.IsHazardous():
		res := s.resolver.ResolveHazard(tile, s.Player)
		out.Kind = OutcomeHazard
		out.Damage = res.Damage
		out.say(res.Messages...)
	}
	return out
}

func isCardinalStep(dx, dy int) bool {
	return (dx == 0) != (dy == 0) && dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
}

// teleport sends the player through the portal at (x, y) to the origin of
// an alternate dimension. The player never stands on the portal.
func (s *Session) teleport(ctx context.Context, x, y int, out *MoveOutcome) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "player.teleport")
	defer span.End()

	from := s.Dimension
	dest := world.PortalDestination(s.store.Source(), x, y)
	if from == world.Overworld {
		s.homeX, s.homeY = s.Player.Position()
	}

	s.Dimension = dest
	s.Player.SetPosition(0, 0)
	s.Player.AddScore(PortalBonus)

	out.Kind = OutcomeTeleported
	out.Teleported = true
	out.Dimension = dest
	out.ScoreDelta += PortalBonus
	out.say(fmt.Sprintf("Entered %s!", dest.Name()))

	span.SetAttributes(
		attribute.String("portal.from", string(from)),
		attribute.String("portal.to", string(dest)),
		attribute.Int("portal.x", x),
		attribute.Int("portal.y", y),
	)
	s.warmAround(ctx, span)
}

func (s *Session) warmAround(ctx context.Context, span trace.Span) {
	if s.warmRadius <= 0 {
		return
	}
	x, y := s.Player.Position()
	n, err := s.store.Warm(ctx, s.Dimension, world.RectAround(x, y, s.warmRadius))
	span.SetAttributes(attribute.Int("world.cells_warmed", n))
	if err != nil {
		span.RecordError(err)
	}
}

// openDialogue starts talking to the NPC at (x, y). The player stays put.
func (s *Session) openDialogue(x, y int, out *MoveOutcome) {
	npc := s.store.GetNPC(x, y, s.Dimension)
	if npc == nil {
		return
	}
	key := npc.Key()
	if !s.met[key] {
		s.met[key] = true
		s.Player.AddScore(NewNPCBonus)
		out.ScoreDelta += NewNPCBonus
		out.say(fmt.Sprintf("Met %s!", s.NPCName(npc.Type)))
	}
	s.activeNPC = npc
	s.dialogueIndex = 0
	s.mode = ModeDialogue

	out.Kind = OutcomeDialogue
	out.Dialogue = npc
}

// =============================================================================
// Other actions
// =============================================================================

// Mine harvests the tile adjacent to the player in direction (dx, dy) with
// a tool from the hotbar.
func (s *Session) Mine(ctx context.Context, dx, dy int) bool {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "player.mine")
	defer span.End()

	if s.mode.IsModal() || !isCardinalStep(dx, dy) {
		return false
	}

	x, y := s.Player.X+dx, s.Player.Y+dy
	tile := s.store.GetTile(x, y, s.Dimension)
	ground := world.GroundTile(s.store.BiomeAt(x, y, s.Dimension))

	res := s.resolver.ResolveMine(tile, ground, s.Player)
	if res.Replaced {
		s.store.SetTile(x, y, s.Dimension, res.Replace)
	}
	s.addMessages(res.Messages...)

	span.SetAttributes(
		attribute.String("mine.tile", tile.String()),
		attribute.String("mine.item", res.Item.String()),
		attribute.Bool("mine.success", res.Success),
	)
	return res.Success
}

// UseSelected consumes one unit of the selected hotbar item.
func (s *Session) UseSelected() bool {
	stack, ok := s.Player.Inventory.Selected()
	if !ok {
		s.addMessages("Nothing selected.")
		return false
	}
	res := s.resolver.UseItem(stack.Item, s.Player)
	if res.Success {
		s.Player.Inventory.Remove(stack.Item, 1)
	}
	s.addMessages(res.Messages...)
	return res.Success
}

// SelectHotbar makes slot the selected hotbar slot. It is ignored while the
// inventory panel is open.
func (s *Session) SelectHotbar(slot int) {
	if s.inventoryOpen {
		return
	}
	s.Player.Inventory.Select(slot)
}

// ReturnToOverworld leaves an alternate dimension, restoring the position the
// player had when they entered the portal. It does nothing while a modal is
// open.
func (s *Session) ReturnToOverworld() bool {
	if s.mode.IsModal() || s.Dimension == world.Overworld {
		return false
	}
	s.Dimension = world.Overworld
	s.Player.SetPosition(s.homeX, s.homeY)
	s.addMessages("Returned to Overworld!")
	return true
}

// AdvanceDialogue shows the next line, wrapping to the first.
func (s *Session) AdvanceDialogue() {
	if s.mode != ModeDialogue || s.activeNPC == nil {
		return
	}
	s.dialogueIndex++
	def := s.catalog.NPCs.GetByID(s.activeNPC.Type)
	if def == nil || s.dialogueIndex >= len(def.Dialogue) {
		s.dialogueIndex = 0
	}
}

// CloseDialogue ends the conversation.
func (s *Session) CloseDialogue() {
	if s.mode == ModeDialogue {
		s.mode = ModeExplore
	}
	s.activeNPC = nil
	s.dialogueIndex = 0
}

// ToggleMap opens or closes the discovered-biomes map. It does nothing while
// a dialogue is open.
func (s *Session) ToggleMap() {
	switch s.mode {
	case ModeExplore:
		s.mode = ModeMap
	case ModeMap:
		s.mode = ModeExplore
	}
}

// ToggleInventory shows or hides the inventory panel.
func (s *Session) ToggleInventory() {
	s.inventoryOpen = !s.inventoryOpen
}

// Dismiss closes the topmost modal. It returns false when nothing was open.
func (s *Session) Dismiss() bool {
	switch s.mode {
	case ModeDialogue:
		s.CloseDialogue()
		return true
	case ModeMap:
		s.mode = ModeExplore
		return true
	}
	if s.inventoryOpen {
		s.inventoryOpen = false
		return true
	}
	return false
}

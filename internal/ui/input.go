package ui

import "github.com/gdamore/tcell/v2"

// Action is a player intent decoded from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionMine
	ActionUse
	ActionReturn
	ActionToggleMap
	ActionToggleInventory
	ActionAdvanceDialogue
	ActionDismiss // closes the topmost modal, or quits when none is open
	ActionQuit
	ActionSelectSlot
)

// Command is a decoded key press. DX/DY are set for ActionMove; Slot is set
// for ActionSelectSlot.
type Command struct {
	Action Action
	DX, DY int
	Slot   int
}

// TranslateKey maps a key event to a command. Arrows and WASD move; digits
// select a hotbar slot.
func TranslateKey(key tcell.Key, ch rune) Command {
	switch key {
	case tcell.KeyUp:
		return move(0, -1)
	case tcell.KeyDown:
		return move(0, 1)
	case tcell.KeyLeft:
		return move(-1, 0)
	case tcell.KeyRight:
		return move(1, 0)
	case tcell.KeyEscape:
		return Command{Action: ActionDismiss}
	case tcell.KeyCtrlC:
		return Command{Action: ActionQuit}
	case tcell.KeyEnter:
		return Command{Action: ActionAdvanceDialogue}
	case tcell.KeyRune:
		return translateRune(ch)
	}
	return Command{}
}

func translateRune(ch rune) Command {
	switch ch {
	case 'w', 'W':
		return move(0, -1)
	case 's', 'S':
		return move(0, 1)
	case 'a', 'A':
		return move(-1, 0)
	case 'd', 'D':
		return move(1, 0)
	case 'f', 'F':
		return Command{Action: ActionMine}
	case 'u', 'U':
		return Command{Action: ActionUse}
	case 'e', 'E':
		return Command{Action: ActionReturn}
	case 'm', 'M':
		return Command{Action: ActionToggleMap}
	case 'i', 'I':
		return Command{Action: ActionToggleInventory}
	case ' ':
		return Command{Action: ActionAdvanceDialogue}
	case 'q', 'Q':
		return Command{Action: ActionQuit}
	}
	if ch >= '1' && ch <= '8' {
		return Command{Action: ActionSelectSlot, Slot: int(ch - '1')}
	}
	return Command{}
}

func move(dx, dy int) Command {
	return Command{Action: ActionMove, DX: dx, DY: dy}
}

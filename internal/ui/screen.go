// Package ui provides terminal rendering and key translation using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen wraps tcell.Screen with a simplified interface.
type Screen struct {
	screen tcell.Screen
	closed bool
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return NewScreenFrom(s), nil
}

// NewScreenFrom wraps an already initialized tcell screen, such as a
// simulation screen.
func NewScreenFrom(s tcell.Screen) *Screen {
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{screen: s}
}

// Close finalizes the screen and restores terminal state. Later calls do
// nothing.
func (s *Screen) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.screen.Fini()
}

// PollEvent waits for and returns the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// DrawText writes s starting at (x, y), one cell per rune, clipped at the
// right edge of the screen. It returns the column after the last rune.
func (s *Screen) DrawText(x, y int, text string, style tcell.Style) int {
	w, _ := s.Size()
	for _, ch := range text {
		if x >= w {
			break
		}
		s.SetContent(x, y, ch, style)
		x++
	}
	return x
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}

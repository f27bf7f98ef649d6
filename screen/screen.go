//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package screen

import (
	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
	"github.com/rivo/uniseg"

	"github.com/hectoedit/hecto/types"
)

// A Screen is the terminal, driven through termbox.
type Screen struct {
	pen    types.Position // where the next Print writes
	cursor types.Position // where the visible cursor goes when shown
	fg     termbox.Attribute
	bg     termbox.Attribute
}

// NewScreen puts the terminal in raw mode. Close must be called to
// restore it.
func NewScreen() (*Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetOutputMode(termbox.Output256)
	termbox.SetInputMode(termbox.InputEsc)
	return &Screen{fg: termbox.ColorDefault, bg: termbox.ColorDefault}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Size() types.Size {
	w, h := termbox.Size()
	return types.Size{Width: w, Height: h}
}

// ReadKey blocks until a key is pressed. Resizes are absorbed here.
func (s *Screen) ReadKey() (types.Event, error) {
	for {
		event := termbox.PollEvent()
		switch event.Type {
		case termbox.EventKey:
			return convertKey(event.Key, event.Ch), nil
		case termbox.EventResize:
			termbox.Flush()
		case termbox.EventError:
			return types.Event{}, event.Err
		}
	}
}

func (s *Screen) ClearScreen() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	s.pen = types.Position{}
}

func (s *Screen) ClearCurrentLine() {
	w, _ := termbox.Size()
	for x := 0; x < w; x++ {
		termbox.SetCell(x, s.pen.Y, ' ', termbox.ColorDefault, termbox.ColorDefault)
	}
}

func (s *Screen) CursorPosition(p types.Position) {
	s.pen = p
	s.cursor = p
}

func (s *Screen) CursorHide() {
	termbox.HideCursor()
}

func (s *Screen) CursorShow() {
	termbox.SetCursor(s.cursor.X, s.cursor.Y)
}

// In 256-color mode termbox numbers palette entries from one.
func (s *Screen) SetFgColor(c types.Color) {
	s.fg = termbox.Attribute(c) + 1
}

func (s *Screen) SetBgColor(c types.Color) {
	s.bg = termbox.Attribute(c) + 1
}

func (s *Screen) ResetFgColor() {
	s.fg = termbox.ColorDefault
}

func (s *Screen) ResetBgColor() {
	s.bg = termbox.ColorDefault
}

// Print draws text at the pen, one grapheme cluster per cell group.
// termbox cells hold a single rune, so combining marks are dropped.
func (s *Screen) Print(text string) {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		termbox.SetCell(s.pen.X, s.pen.Y, g.Runes()[0], s.fg, s.bg)
		s.pen.X += max(runewidth.StringWidth(g.Str()), 1)
	}
}

func (s *Screen) Println(text string) {
	s.Print(text)
	s.pen = types.Position{X: 0, Y: s.pen.Y + 1}
}

func (s *Screen) Flush() error {
	return termbox.Flush()
}

// convertKey maps a termbox key to an editor event. Enter, Tab and Space
// are typed characters.
func convertKey(k termbox.Key, ch rune) types.Event {
	if ch != 0 {
		return types.Char(ch)
	}
	switch k {
	case termbox.KeySpace:
		return types.Char(' ')
	case termbox.KeyTab:
		return types.Char('\t')
	case termbox.KeyEnter:
		return types.Char('\n')
	case termbox.KeyEsc:
		return types.Event{Key: types.KeyEsc}
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return types.Event{Key: types.KeyBackspace}
	case termbox.KeyDelete:
		return types.Event{Key: types.KeyDelete}
	case termbox.KeyArrowUp:
		return types.Event{Key: types.KeyUp}
	case termbox.KeyArrowDown:
		return types.Event{Key: types.KeyDown}
	case termbox.KeyArrowLeft:
		return types.Event{Key: types.KeyLeft}
	case termbox.KeyArrowRight:
		return types.Event{Key: types.KeyRight}
	case termbox.KeyPgup:
		return types.Event{Key: types.KeyPageUp}
	case termbox.KeyPgdn:
		return types.Event{Key: types.KeyPageDown}
	case termbox.KeyHome:
		return types.Event{Key: types.KeyHome}
	case termbox.KeyEnd:
		return types.Event{Key: types.KeyEnd}
	}
	if k >= termbox.KeyCtrlA && k <= termbox.KeyCtrlZ {
		return types.Ctrl(rune('a' + k - termbox.KeyCtrlA))
	}
	return types.Event{Key: types.KeyNone}
}

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
package editor

import (
	"fmt"
	"time"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/hectoedit/hecto/types"
)

const helpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit"

// The Editor is an editing session: one document on one terminal, with a
// cursor, a scroll offset and a status message. Each key press is handled
// to completion before the next one is read.
type Editor struct {
	terminal   types.Terminal
	document   *Document
	settings   Settings
	cursor     types.Position // cursor position in the document
	offset     types.Position // document position shown in the top-left cell
	status     StatusMessage
	quitTimes  int // Ctrl-Q presses left before unsaved changes are abandoned
	shouldQuit bool
	now        func() time.Time
}

func NewEditor(t types.Terminal, d *Document, settings Settings) *Editor {
	if d == nil {
		d = NewDocument()
	}
	settings.QuitTimes = max(settings.QuitTimes, 1)
	e := &Editor{
		terminal:  t,
		document:  d,
		settings:  settings,
		quitTimes: settings.QuitTimes,
		now:       time.Now,
	}
	e.status = NewStatusMessage(helpMessage, e.now())
	return e
}

func (e *Editor) Document() *Document {
	return e.document
}

func (e *Editor) Cursor() types.Position {
	return e.cursor
}

func (e *Editor) Offset() types.Position {
	return e.offset
}

func (e *Editor) Status() StatusMessage {
	return e.status
}

func (e *Editor) QuitTimes() int {
	return e.quitTimes
}

func (e *Editor) ShouldQuit() bool {
	return e.shouldQuit
}

func (e *Editor) SetStatus(text string) {
	e.status = NewStatusMessage(text, e.now())
}

// SetCursor moves the cursor to p, clamped to the document, and scrolls
// to keep it visible.
func (e *Editor) SetCursor(p types.Position) {
	y := max(min(p.Y, e.document.Len()), 0)
	x := max(min(p.X, e.document.RowLength(y)), 0)
	e.cursor = types.Position{X: x, Y: y}
	e.scroll()
}

// Run draws the screen and handles key presses until the user quits.
// A terminal failure ends the session with a cleared screen.
func (e *Editor) Run() error {
	for {
		if err := e.RefreshScreen(); err != nil {
			return e.die(err)
		}
		if e.shouldQuit {
			return nil
		}
		event, err := e.terminal.ReadKey()
		if err != nil {
			return e.die(err)
		}
		if err := e.ProcessEvent(event); err != nil {
			return e.die(err)
		}
	}
}

func (e *Editor) die(err error) error {
	e.terminal.ClearScreen()
	e.terminal.Flush()
	log.Error().Err(err).Msg("terminal failure")
	return fmt.Errorf("terminal: %w", err)
}

// ProcessEvent applies one key press. Only terminal errors are returned;
// file errors become status messages.
func (e *Editor) ProcessEvent(event types.Event) error {
	switch event.Key {
	case types.KeyCtrl:
		switch event.Ch {
		case 'q':
			if e.document.IsDirty() && e.quitTimes > 0 {
				e.quitTimes--
				if e.quitTimes > 0 {
					e.SetStatus(fmt.Sprintf(
						"WARN: File has unsaved changes! Press Ctrl-Q %d more times to quit.",
						e.quitTimes))
					log.Debug().Int("remaining", e.quitTimes).Msg("quit with unsaved changes")
					e.scroll()
					return nil
				}
			}
			e.shouldQuit = true
			e.scroll()
			return nil
		case 's':
			if err := e.save(); err != nil {
				return err
			}
		}
	case types.KeyChar:
		e.document.Insert(e.cursor, event.Ch)
		// step over what was just typed
		e.moveCursor(types.KeyRight)
	case types.KeyDelete:
		e.document.Delete(e.cursor)
	case types.KeyBackspace:
		if e.cursor.X > 0 || e.cursor.Y > 0 {
			e.moveCursor(types.KeyLeft)
			e.document.Delete(e.cursor)
		}
	case types.KeyUp, types.KeyDown, types.KeyLeft, types.KeyRight,
		types.KeyPageUp, types.KeyPageDown, types.KeyHome, types.KeyEnd:
		e.moveCursor(event.Key)
	}
	e.scroll()
	// any other key interrupts a pending quit
	if e.quitTimes < e.settings.QuitTimes {
		e.quitTimes = e.settings.QuitTimes
		e.status.Clear(e.now())
	}
	return nil
}

// textSize is the part of the terminal used for document rows; the last
// two lines hold the status bar and the message bar.
func (e *Editor) textSize() types.Size {
	size := e.terminal.Size()
	return types.Size{
		Width:  max(size.Width, 1),
		Height: max(size.Height-2, 1),
	}
}

func (e *Editor) moveCursor(key types.Key) {
	x, y := e.cursor.X, e.cursor.Y
	height := e.textSize().Height
	docHeight := e.document.Len() // one past the last row is allowed
	rowLength := e.document.RowLength(y)
	switch key {
	case types.KeyUp:
		if y > 0 {
			y--
		}
	case types.KeyDown:
		if y < docHeight {
			y++
		}
	case types.KeyLeft:
		if x > 0 {
			x--
		} else if y > 0 {
			y--
			x = e.document.RowLength(y)
		}
	case types.KeyRight:
		if x < rowLength {
			x++
		} else if y < docHeight {
			y++
			x = 0
		}
	case types.KeyPageUp:
		if y > height {
			y -= height
		} else {
			y = 0
		}
	case types.KeyPageDown:
		if y+height < docHeight {
			y += height
		} else {
			y = docHeight
		}
	case types.KeyHome:
		x = 0
	case types.KeyEnd:
		x = rowLength
	}
	// don't go past the end of the new row
	x = min(x, e.document.RowLength(y))
	e.cursor = types.Position{X: x, Y: y}
}

// Recompute the offset so the cursor is on screen, scrolling no further
// than needed.
func (e *Editor) scroll() {
	size := e.textSize()
	if e.cursor.Y < e.offset.Y {
		e.offset.Y = e.cursor.Y
	} else if e.cursor.Y >= e.offset.Y+size.Height {
		e.offset.Y = e.cursor.Y - size.Height + 1
	}
	if e.cursor.X < e.offset.X {
		e.offset.X = e.cursor.X
	} else if e.cursor.X >= e.offset.X+size.Width {
		e.offset.X = e.cursor.X - size.Width + 1
	}
}

func (e *Editor) save() error {
	if e.document.FileName() == "" {
		name, ok, err := e.Prompt("Save as: ")
		if err != nil {
			return err
		}
		if !ok {
			log.Info().Msg("save aborted")
			e.SetStatus("Save aborted.")
			return nil
		}
		e.document.SetFileName(name)
	}
	if err := e.document.Save(); err != nil {
		log.Error().Err(err).Str("path", e.document.FileName()).Msg("save failed")
		e.SetStatus("Error writing file!")
		return nil
	}
	log.Info().
		Str("path", e.document.FileName()).
		Int("rows", e.document.Len()).
		Msg("saved")
	e.SetStatus("File saved successfully.")
	return nil
}

// Prompt reads a line of text in the message bar. It returns false if the
// user pressed Esc or entered nothing.
func (e *Editor) Prompt(label string) (string, bool, error) {
	input := NewRow("")
loop:
	for {
		e.SetStatus(label + input.String())
		if err := e.RefreshScreen(); err != nil {
			return "", false, err
		}
		event, err := e.terminal.ReadKey()
		if err != nil {
			return "", false, err
		}
		switch event.Key {
		case types.KeyBackspace:
			input.Delete(input.Len() - 1)
		case types.KeyEsc:
			input = NewRow("")
			break loop
		case types.KeyChar:
			if event.Ch == '\n' {
				break loop
			}
			if !unicode.IsControl(event.Ch) {
				input.Insert(input.Len(), event.Ch)
			}
		}
	}
	e.status.Clear(e.now())
	if input.IsEmpty() {
		return "", false, nil
	}
	return input.String(), true, nil
}

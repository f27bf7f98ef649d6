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
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/hectoedit/hecto/types"
)

// RefreshScreen draws the visible rows, the status bar and the message
// bar, then places the cursor.
func (e *Editor) RefreshScreen() error {
	t := e.terminal
	t.CursorHide()
	t.CursorPosition(types.Position{})
	if e.shouldQuit {
		t.ClearScreen()
		t.Println("Goodbye.")
	} else {
		e.drawRows()
		e.drawStatusBar()
		e.drawMessageBar()
		t.CursorPosition(types.Position{
			X: e.cursor.X - e.offset.X,
			Y: e.cursor.Y - e.offset.Y,
		})
	}
	t.CursorShow()
	return t.Flush()
}

// Rows past the end of the document are drawn as a tilde.
func (e *Editor) drawRows() {
	size := e.textSize()
	for i := 0; i < size.Height; i++ {
		e.terminal.ClearCurrentLine()
		if row := e.document.Row(e.offset.Y + i); row != nil {
			e.terminal.Println(row.Render(e.offset.X, e.offset.X+size.Width))
		} else if e.document.IsEmpty() && i == size.Height/3 {
			e.terminal.Println(welcomeText(size.Width))
		} else {
			e.terminal.Println("~")
		}
	}
}

func welcomeText(width int) string {
	message := fmt.Sprintf("Hecto editor -- version %s", Version)
	padding := max(width-runewidth.StringWidth(message), 0) / 2
	line := "~" + strings.Repeat(" ", max(padding-1, 0)) + message
	return runewidth.Truncate(line, width, "")
}

func (e *Editor) drawStatusBar() {
	t := e.terminal
	t.ClearCurrentLine()
	t.SetBgColor(e.settings.StatusBg)
	t.SetFgColor(e.settings.StatusFg)
	t.Println(e.statusBarText(e.textSize().Width))
	t.ResetBgColor()
	t.ResetFgColor()
}

// Compute the text to display on the status bar: the file on the left,
// the current line on the right.
func (e *Editor) statusBarText(width int) string {
	d := e.document
	name := "[No Name]"
	if d.FileName() != "" {
		name = runewidth.Truncate(d.FileName(), 20, "")
	}
	modified := ""
	if d.IsDirty() {
		modified = " (modified)"
	}
	text := fmt.Sprintf("%s - %d lines%s", name, d.Len(), modified)
	lineText := fmt.Sprintf("%d/%d", e.cursor.Y+1, d.Len())
	room := max(width-runewidth.StringWidth(lineText), 0)
	text = runewidth.Truncate(text, room, "")
	text += strings.Repeat(" ", room-runewidth.StringWidth(text))
	return text + lineText
}

func (e *Editor) drawMessageBar() {
	e.terminal.ClearCurrentLine()
	if e.status.Visible(e.now(), e.settings.MessageTimeout) {
		e.terminal.Print(runewidth.Truncate(e.status.Text, e.textSize().Width, ""))
	}
}

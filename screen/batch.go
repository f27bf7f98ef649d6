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
	"io"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/hectoedit/hecto/types"
)

// A Batch is a terminal with no device behind it. It replays queued key
// events and keeps what was drawn as plain lines, for scripts and tests.
type Batch struct {
	Lines         []string
	Cursor        types.Position
	CursorVisible bool
	Fg, Bg        types.Color
	Colored       bool // whether a foreground or background color is set
	Flushes       int

	size   types.Size
	events []types.Event
	pen    types.Position
}

func NewBatch(size types.Size, events ...types.Event) *Batch {
	b := &Batch{size: size, Lines: make([]string, size.Height)}
	b.Feed(events...)
	return b
}

// Feed queues events for ReadKey.
func (b *Batch) Feed(events ...types.Event) {
	b.events = append(b.events, events...)
}

// ReadKey returns the next queued event, or io.EOF when there are none.
func (b *Batch) ReadKey() (types.Event, error) {
	if len(b.events) == 0 {
		return types.Event{}, io.EOF
	}
	event := b.events[0]
	b.events = b.events[1:]
	return event, nil
}

func (b *Batch) Size() types.Size {
	return b.size
}

func (b *Batch) ClearScreen() {
	b.Lines = make([]string, b.size.Height)
	b.pen = types.Position{}
}

func (b *Batch) ClearCurrentLine() {
	if b.pen.Y >= 0 && b.pen.Y < len(b.Lines) {
		b.Lines[b.pen.Y] = ""
	}
}

func (b *Batch) CursorPosition(p types.Position) {
	b.pen = p
	b.Cursor = p
}

func (b *Batch) CursorHide() {
	b.CursorVisible = false
}

func (b *Batch) CursorShow() {
	b.CursorVisible = true
}

func (b *Batch) SetFgColor(c types.Color) {
	b.Fg = c
	b.Colored = true
}

func (b *Batch) SetBgColor(c types.Color) {
	b.Bg = c
	b.Colored = true
}

func (b *Batch) ResetFgColor() {
	b.Colored = false
}

func (b *Batch) ResetBgColor() {
	b.Colored = false
}

// Print writes over the current line from the pen, one grapheme cluster
// per cell. Lines outside the screen are dropped.
func (b *Batch) Print(text string) {
	if b.pen.Y < 0 || b.pen.Y >= len(b.Lines) {
		return
	}
	var cells []string
	g := uniseg.NewGraphemes(b.Lines[b.pen.Y])
	for g.Next() {
		cells = append(cells, g.Str())
	}
	for len(cells) < b.pen.X {
		cells = append(cells, " ")
	}
	g = uniseg.NewGraphemes(text)
	for g.Next() {
		if b.pen.X < len(cells) {
			cells[b.pen.X] = g.Str()
		} else {
			cells = append(cells, g.Str())
		}
		b.pen.X++
	}
	b.Lines[b.pen.Y] = strings.Join(cells, "")
}

func (b *Batch) Println(text string) {
	b.Print(text)
	b.pen = types.Position{X: 0, Y: b.pen.Y + 1}
}

func (b *Batch) Flush() error {
	b.Flushes++
	return nil
}

// String returns the drawn lines joined by newlines.
func (b *Batch) String() string {
	return strings.Join(b.Lines, "\n")
}

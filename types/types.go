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
package types

// Keys reported by a Terminal. Printable input, including Enter and Tab,
// arrives as KeyChar with the rune in Event.Ch; control chords arrive as
// KeyCtrl with the lowercase letter in Event.Ch.
type Key int

const (
	KeyNone Key = iota
	KeyChar
	KeyCtrl
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeyEsc
)

// An Event is a single key press.
type Event struct {
	Key Key
	Ch  rune
}

// Char returns the event for typing c.
func Char(c rune) Event {
	return Event{Key: KeyChar, Ch: c}
}

// Ctrl returns the event for a control chord such as Ctrl-Q.
func Ctrl(c rune) Event {
	return Event{Key: KeyCtrl, Ch: c}
}

// Position addresses a grapheme cluster in a document, or a cell on the
// screen. Y is the row, X the column; both are zero-based.
type Position struct {
	X int
	Y int
}

type Size struct {
	Width  int
	Height int
}

// Color is an index into the xterm 256-color palette.
type Color uint8

// A Terminal is the device the editor draws on and reads keys from.
// Output calls write at a pen position that Println advances to the
// start of the next line; nothing is visible until Flush.
type Terminal interface {
	ReadKey() (Event, error)
	Size() Size

	ClearScreen()
	ClearCurrentLine()
	CursorPosition(p Position)
	CursorHide()
	CursorShow()

	SetFgColor(c Color)
	SetBgColor(c Color)
	ResetFgColor()
	ResetBgColor()

	Print(text string)
	Println(text string)
	Flush() error
}

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
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hectoedit/hecto/screen"
	"github.com/hectoedit/hecto/types"
)

// A 20x10 terminal leaves 8 rows for text.
var testSize = types.Size{Width: 20, Height: 10}

func setup(t *testing.T, rows ...string) (*Editor, *screen.Batch) {
	t.Helper()
	b := screen.NewBatch(testSize)
	return NewEditor(b, documentWithRows(rows...), DefaultSettings()), b
}

func press(t *testing.T, e *Editor, events ...types.Event) {
	t.Helper()
	for _, event := range events {
		require.NoError(t, e.ProcessEvent(event))
	}
}

func key(k types.Key) types.Event {
	return types.Event{Key: k}
}

func repeat(event types.Event, n int) []types.Event {
	events := make([]types.Event, n)
	for i := range events {
		events[i] = event
	}
	return events
}

func typed(text string) []types.Event {
	events := make([]types.Event, 0, len(text))
	for _, c := range text {
		events = append(events, types.Char(c))
	}
	return events
}

func numberedRows(n int) []string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = strings.Repeat("x", i%7)
	}
	return rows
}

func TestTyping(t *testing.T) {
	e, _ := setup(t)
	press(t, e, typed("hi")...)
	assert.Equal(t, []string{"hi"}, rowTexts(e.Document()))
	assert.Equal(t, types.Position{X: 2, Y: 0}, e.Cursor())

	press(t, e, types.Char('\n'))
	assert.Equal(t, []string{"hi", ""}, rowTexts(e.Document()))
	assert.Equal(t, types.Position{X: 0, Y: 1}, e.Cursor())

	press(t, e, typed("yo")...)
	press(t, e, key(types.KeyUp), key(types.KeyHome), types.Char('\n'))
	assert.Equal(t, []string{"", "hi", "yo"}, rowTexts(e.Document()))
	assert.Equal(t, types.Position{X: 0, Y: 1}, e.Cursor())
}

func TestRightWrapsToNextRow(t *testing.T) {
	e, _ := setup(t, "ab", "cde")
	e.SetCursor(types.Position{X: 2, Y: 0})
	press(t, e, key(types.KeyRight))
	assert.Equal(t, types.Position{X: 0, Y: 1}, e.Cursor())
}

func TestLeftWrapsToPreviousRow(t *testing.T) {
	e, _ := setup(t, "ab", "cde")
	e.SetCursor(types.Position{X: 0, Y: 1})
	press(t, e, key(types.KeyLeft))
	assert.Equal(t, types.Position{X: 2, Y: 0}, e.Cursor())

	press(t, e, key(types.KeyHome), key(types.KeyLeft))
	assert.Equal(t, types.Position{X: 0, Y: 0}, e.Cursor())
}

func TestVerticalLimits(t *testing.T) {
	e, _ := setup(t, "ab", "cd")
	press(t, e, key(types.KeyUp))
	assert.Equal(t, types.Position{}, e.Cursor())
	press(t, e, repeat(key(types.KeyDown), 5)...)
	assert.Equal(t, types.Position{X: 0, Y: 2}, e.Cursor())
	press(t, e, key(types.KeyRight))
	assert.Equal(t, types.Position{X: 0, Y: 2}, e.Cursor())
}

func TestCursorClampedToShorterRow(t *testing.T) {
	e, _ := setup(t, "abcdef", "ab", "abcd")
	press(t, e, key(types.KeyEnd))
	assert.Equal(t, types.Position{X: 6, Y: 0}, e.Cursor())
	press(t, e, key(types.KeyDown))
	assert.Equal(t, types.Position{X: 2, Y: 1}, e.Cursor())
	press(t, e, key(types.KeyDown))
	assert.Equal(t, types.Position{X: 2, Y: 2}, e.Cursor())
	press(t, e, key(types.KeyDown))
	assert.Equal(t, types.Position{X: 0, Y: 3}, e.Cursor())
}

func TestPaging(t *testing.T) {
	e, _ := setup(t, numberedRows(20)...)
	press(t, e, key(types.KeyPageDown))
	assert.Equal(t, 8, e.Cursor().Y)
	press(t, e, key(types.KeyPageDown))
	assert.Equal(t, 16, e.Cursor().Y)
	press(t, e, key(types.KeyPageDown))
	assert.Equal(t, 20, e.Cursor().Y)

	press(t, e, key(types.KeyPageUp))
	assert.Equal(t, 12, e.Cursor().Y)
	press(t, e, key(types.KeyPageUp))
	assert.Equal(t, 4, e.Cursor().Y)
	press(t, e, key(types.KeyPageUp))
	assert.Equal(t, 0, e.Cursor().Y)
}

func TestHomeEnd(t *testing.T) {
	e, _ := setup(t, "a"+combining+"b")
	press(t, e, key(types.KeyEnd))
	assert.Equal(t, 3, e.Cursor().X)
	press(t, e, key(types.KeyHome))
	assert.Equal(t, 0, e.Cursor().X)
}

func TestDeleteForwardMergesRows(t *testing.T) {
	e, _ := setup(t, "ab", "cd")
	e.SetCursor(types.Position{X: 2, Y: 0})
	press(t, e, key(types.KeyDelete))
	assert.Equal(t, []string{"abcd"}, rowTexts(e.Document()))
	assert.Equal(t, types.Position{X: 2, Y: 0}, e.Cursor())
}

func TestBackspace(t *testing.T) {
	e, _ := setup(t, "ab", "cd")
	press(t, e, key(types.KeyBackspace))
	assert.Equal(t, []string{"ab", "cd"}, rowTexts(e.Document()))
	assert.False(t, e.Document().IsDirty())

	e.SetCursor(types.Position{X: 0, Y: 1})
	press(t, e, key(types.KeyBackspace))
	assert.Equal(t, []string{"abcd"}, rowTexts(e.Document()))
	assert.Equal(t, types.Position{X: 2, Y: 0}, e.Cursor())

	press(t, e, key(types.KeyBackspace))
	assert.Equal(t, []string{"acd"}, rowTexts(e.Document()))
	assert.Equal(t, types.Position{X: 1, Y: 0}, e.Cursor())
}

func TestVerticalScrolling(t *testing.T) {
	e, _ := setup(t, numberedRows(30)...)
	press(t, e, repeat(key(types.KeyDown), 10)...)
	assert.Equal(t, 10, e.Cursor().Y)
	assert.Equal(t, 3, e.Offset().Y)

	press(t, e, repeat(key(types.KeyUp), 5)...)
	assert.Equal(t, 3, e.Offset().Y)
	press(t, e, repeat(key(types.KeyUp), 3)...)
	assert.Equal(t, 2, e.Offset().Y)
}

func TestHorizontalScrolling(t *testing.T) {
	e, _ := setup(t, strings.Repeat("a", 30), "b")
	press(t, e, key(types.KeyEnd))
	assert.Equal(t, 11, e.Offset().X)
	press(t, e, key(types.KeyDown))
	assert.Equal(t, 1, e.Cursor().X)
	assert.Equal(t, 1, e.Offset().X)
	press(t, e, key(types.KeyHome))
	assert.Equal(t, 0, e.Offset().X)
}

func TestQuitConfirmation(t *testing.T) {
	e, _ := setup(t, "ab")
	press(t, e, types.Char('x'))
	require.True(t, e.Document().IsDirty())

	press(t, e, types.Ctrl('q'))
	assert.False(t, e.ShouldQuit())
	assert.Equal(t, 2, e.QuitTimes())
	assert.Contains(t, e.Status().Text, "Press Ctrl-Q 2 more times")

	press(t, e, types.Ctrl('q'))
	assert.False(t, e.ShouldQuit())
	assert.Equal(t, 1, e.QuitTimes())
	assert.Contains(t, e.Status().Text, "Press Ctrl-Q 1 more times")

	// any other key starts the count again
	press(t, e, key(types.KeyDown))
	assert.Equal(t, 3, e.QuitTimes())
	assert.Empty(t, e.Status().Text)

	press(t, e, types.Ctrl('q'), types.Ctrl('q'))
	assert.False(t, e.ShouldQuit())
	press(t, e, types.Ctrl('q'))
	assert.True(t, e.ShouldQuit())
}

func TestQuitCleanDocument(t *testing.T) {
	e, _ := setup(t, "ab")
	press(t, e, key(types.KeyRight), types.Ctrl('q'))
	assert.True(t, e.ShouldQuit())
}

func TestQuitKeepsViewportOnCursor(t *testing.T) {
	e, _ := setup(t, numberedRows(30)...)
	press(t, e, types.Char('x'))
	e.offset = types.Position{X: 0, Y: 12}
	press(t, e, types.Ctrl('q'))
	assert.Equal(t, types.Position{}, e.Offset())

	e.offset = types.Position{X: 0, Y: 12}
	press(t, e, types.Ctrl('q'), types.Ctrl('q'))
	require.True(t, e.ShouldQuit())
	assert.Equal(t, types.Position{}, e.Offset())
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("ab\n"), 0644))
	d, err := Open(path)
	require.NoError(t, err)
	e := NewEditor(screen.NewBatch(testSize), d, DefaultSettings())

	press(t, e, typed("xy")...)
	press(t, e, types.Ctrl('s'))
	assert.Equal(t, "File saved successfully.", e.Status().Text)
	assert.False(t, d.IsDirty())
	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "xyab\n", string(saved))
}

func TestSaveFailureIsReported(t *testing.T) {
	e, _ := setup(t, "ab")
	e.Document().SetFileName(t.TempDir())
	press(t, e, types.Char('x'), types.Ctrl('s'))
	assert.Equal(t, "Error writing file!", e.Status().Text)
	assert.True(t, e.Document().IsDirty())
}

func TestSaveAs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	e, b := setup(t)
	press(t, e, types.Char('x'))

	b.Feed(typed(path + "Z")...)
	b.Feed(key(types.KeyBackspace), key(types.KeyLeft), types.Char('\n'))
	press(t, e, types.Ctrl('s'))

	assert.Equal(t, path, e.Document().FileName())
	assert.Equal(t, "File saved successfully.", e.Status().Text)
	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x\n", string(saved))
}

func TestSaveAsCancelled(t *testing.T) {
	e, b := setup(t)
	press(t, e, types.Char('x'))

	b.Feed(typed("name")...)
	b.Feed(key(types.KeyEsc))
	press(t, e, types.Ctrl('s'))
	assert.Equal(t, "Save aborted.", e.Status().Text)
	assert.Empty(t, e.Document().FileName())
	assert.True(t, e.Document().IsDirty())

	b.Feed(types.Char('\n'))
	press(t, e, types.Ctrl('s'))
	assert.Equal(t, "Save aborted.", e.Status().Text)
}

func TestPromptShowsInput(t *testing.T) {
	e, b := setup(t)
	b.Feed(typed("ab")...)
	b.Feed(types.Char('\t'), types.Char('\n'))
	name, ok, err := e.Prompt("Name: ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ab", name)
	assert.Empty(t, e.Status().Text)
}

func TestPromptTerminalFailure(t *testing.T) {
	e, _ := setup(t)
	press(t, e, types.Char('x'))
	err := e.ProcessEvent(types.Ctrl('s'))
	assert.ErrorIs(t, err, io.EOF)
}

func TestRun(t *testing.T) {
	e, b := setup(t)
	b.Feed(typed("hi")...)
	b.Feed(repeat(types.Ctrl('q'), 3)...)
	require.NoError(t, e.Run())
	assert.Equal(t, []string{"hi"}, rowTexts(e.Document()))
	assert.Equal(t, "Goodbye.", b.Lines[0])
}

func TestRunTerminalFailure(t *testing.T) {
	e, b := setup(t, "ab")
	err := e.Run()
	require.ErrorIs(t, err, io.EOF)
	assert.Empty(t, strings.TrimSpace(b.String()))
}

func TestSetCursorClamps(t *testing.T) {
	e, _ := setup(t, "ab", "c")
	e.SetCursor(types.Position{X: 9, Y: 1})
	assert.Equal(t, types.Position{X: 1, Y: 1}, e.Cursor())
	e.SetCursor(types.Position{X: 9, Y: 9})
	assert.Equal(t, types.Position{X: 0, Y: 2}, e.Cursor())
	e.SetCursor(types.Position{X: -1, Y: -1})
	assert.Equal(t, types.Position{}, e.Cursor())
}

func TestStatusExpires(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	e, b := setup(t)
	e.now = func() time.Time { return clock }
	e.SetStatus("hello")

	require.NoError(t, e.RefreshScreen())
	assert.Equal(t, "hello", b.Lines[9])

	clock = clock.Add(6 * time.Second)
	require.NoError(t, e.RefreshScreen())
	assert.Empty(t, b.Lines[9])
}

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
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/hectoedit/hecto/types"
)

// A Document is the text being edited: an ordered list of rows, the file
// it came from (if any) and whether it has changed since it was loaded
// or saved.
type Document struct {
	rows     []*Row
	fileName string
	dirty    bool
}

func NewDocument() *Document {
	return &Document{rows: make([]*Row, 0)}
}

// Open reads a file into a new Document, one row per line.
func Open(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	d := NewDocument()
	d.LoadBytes(b)
	d.fileName = path
	return d, nil
}

// LoadBytes replaces the contents of the document. A final newline ends
// the last line rather than starting an empty one, and a carriage return
// before a newline is dropped.
func (d *Document) LoadBytes(b []byte) {
	s := string(b)
	s = strings.TrimSuffix(s, "\n")
	d.rows = make([]*Row, 0)
	if len(b) > 0 {
		for _, line := range strings.Split(s, "\n") {
			d.rows = append(d.rows, NewRow(strings.TrimSuffix(line, "\r")))
		}
	}
	d.dirty = false
}

func (d *Document) FileName() string {
	return d.fileName
}

func (d *Document) SetFileName(name string) {
	d.fileName = name
}

// Row returns the row at index, or nil if there is none.
func (d *Document) Row(index int) *Row {
	if index < 0 || index >= len(d.rows) {
		return nil
	}
	return d.rows[index]
}

// RowLength returns the length of a row, treating missing rows as empty.
func (d *Document) RowLength(index int) int {
	if row := d.Row(index); row != nil {
		return row.Len()
	}
	return 0
}

func (d *Document) Len() int {
	return len(d.rows)
}

func (d *Document) IsEmpty() bool {
	return len(d.rows) == 0
}

func (d *Document) IsDirty() bool {
	return d.dirty
}

// Insert adds c at a position. The row just past the last one is a valid
// target and creates a new row; anything further down is ignored.
func (d *Document) Insert(at types.Position, c rune) {
	if at.Y < 0 || at.Y > d.Len() {
		return
	}
	d.dirty = true
	if c == '\n' {
		d.insertNewline(at)
		return
	}
	if at.Y == d.Len() {
		row := NewRow("")
		row.Insert(0, c)
		d.rows = append(d.rows, row)
	} else {
		d.rows[at.Y].Insert(at.X, c)
	}
}

// insertNewline splits the row at the cursor. It leaves the dirty flag to
// the caller.
func (d *Document) insertNewline(at types.Position) {
	if at.Y == d.Len() {
		d.rows = append(d.rows, NewRow(""))
		return
	}
	newRow := d.rows[at.Y].Split(at.X)
	i := at.Y + 1
	d.rows = append(d.rows, nil)
	copy(d.rows[i+1:], d.rows[i:])
	d.rows[i] = newRow
}

// Delete removes the cluster at a position. At the end of a row that has
// a successor, the next row is joined onto this one.
func (d *Document) Delete(at types.Position) {
	if at.Y < 0 || at.Y >= d.Len() {
		return
	}
	d.dirty = true
	row := d.rows[at.Y]
	if at.X == row.Len() && at.Y < d.Len()-1 {
		next := d.rows[at.Y+1]
		d.rows = append(d.rows[:at.Y+1], d.rows[at.Y+2:]...)
		row.Append(next)
	} else {
		row.Delete(at.X)
	}
}

// Bytes returns the file contents Save would write: every row followed
// by a newline.
func (d *Document) Bytes() []byte {
	var sb strings.Builder
	for _, row := range d.rows {
		sb.WriteString(row.String())
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

// Save writes the document to its file. Without a file name it does
// nothing; the editor asks for one first.
func (d *Document) Save() error {
	if d.fileName == "" {
		return nil
	}
	f, err := os.Create(d.fileName)
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	w := bufio.NewWriter(f)
	for _, row := range d.rows {
		w.WriteString(row.String())
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("save document: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	d.dirty = false
	return nil
}

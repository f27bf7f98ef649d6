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
	"strings"

	"github.com/rivo/uniseg"
)

// A Row is one line of text. Columns are grapheme cluster indices, so a
// combining sequence or an emoji with modifiers occupies a single column.
type Row struct {
	text   string
	length int // number of grapheme clusters in text
}

func NewRow(text string) *Row {
	r := &Row{}
	r.setText(text)
	return r
}

func (r *Row) setText(text string) {
	r.text = text
	r.length = uniseg.GraphemeClusterCount(text)
}

func (r *Row) graphemes() []string {
	clusters := make([]string, 0, r.length)
	g := uniseg.NewGraphemes(r.text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	return clusters
}

func (r *Row) Len() int {
	return r.length
}

func (r *Row) IsEmpty() bool {
	return r.length == 0
}

func (r *Row) String() string {
	return r.text
}

func (r *Row) Bytes() []byte {
	return []byte(r.text)
}

// Render returns the clusters in [start, end) for display. Tabs are shown
// as a single space so that one column stays one cell.
func (r *Row) Render(start, end int) string {
	end = min(end, r.length)
	start = max(min(start, end), 0)
	if start >= end {
		return ""
	}
	var sb strings.Builder
	for _, c := range r.graphemes()[start:end] {
		if c == "\t" {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(c)
		}
	}
	return sb.String()
}

// Insert puts c before column at, or at the end of the row if at is past it.
func (r *Row) Insert(at int, c rune) {
	if at >= r.length {
		r.setText(r.text + string(c))
		return
	}
	at = max(at, 0)
	clusters := r.graphemes()
	var sb strings.Builder
	sb.WriteString(strings.Join(clusters[:at], ""))
	sb.WriteRune(c)
	sb.WriteString(strings.Join(clusters[at:], ""))
	r.setText(sb.String())
}

// Delete removes the cluster at column at. Columns past the end are ignored.
func (r *Row) Delete(at int) {
	if at < 0 || at >= r.length {
		return
	}
	clusters := r.graphemes()
	r.setText(strings.Join(clusters[:at], "") + strings.Join(clusters[at+1:], ""))
}

// Append joins other to the end of this row.
func (r *Row) Append(other *Row) {
	r.setText(r.text + other.text)
}

// Split truncates the row to its first at clusters and returns a new row
// holding the rest.
func (r *Row) Split(at int) *Row {
	at = max(min(at, r.length), 0)
	clusters := r.graphemes()
	remainder := strings.Join(clusters[at:], "")
	r.setText(strings.Join(clusters[:at], ""))
	return NewRow(remainder)
}

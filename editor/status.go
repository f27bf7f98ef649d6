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
	"time"

	"github.com/hectoedit/hecto/types"
)

// Version is shown in the welcome banner.
var Version = "0.1.0"

// Settings tune the session. The zero value is not useful; start from
// DefaultSettings.
type Settings struct {
	QuitTimes      int           // Ctrl-Q presses needed to abandon unsaved changes
	MessageTimeout time.Duration // how long a status message stays on screen
	StatusFg       types.Color
	StatusBg       types.Color
}

func DefaultSettings() Settings {
	return Settings{
		QuitTimes:      3,
		MessageTimeout: 5 * time.Second,
		StatusFg:       237,
		StatusBg:       255,
	}
}

// A StatusMessage is shown in the message bar until it expires.
type StatusMessage struct {
	Text string
	Time time.Time
}

func NewStatusMessage(text string, now time.Time) StatusMessage {
	return StatusMessage{Text: text, Time: now}
}

func (m *StatusMessage) Clear(now time.Time) {
	m.Text = ""
	m.Time = now
}

// Visible reports whether the message is still young enough to show.
func (m StatusMessage) Visible(now time.Time, timeout time.Duration) bool {
	return m.Text != "" && now.Sub(m.Time) < timeout
}

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
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	dj "github.com/timburks/djacarta/types"
)

const commandPrompt = " command: "

func isCommandLine(pending string) bool {
	return strings.HasPrefix(pending, ":") || strings.HasPrefix(pending, "(") || strings.HasPrefix(pending, "/")
}

// StatusBarText computes the bottom line: the command being typed or a message
// on the left, the mode and cursor position on the right.
func StatusBarText(m dj.RenderModel, width int) string {
	var left string
	switch {
	case isCommandLine(m.Pending):
		left = commandPrompt + m.Pending
	case m.Message != "":
		left = " " + m.Message
	default:
		name := m.FileName
		if name == "" {
			name = "[no file]"
		}
		left = " -*- " + name
	}
	right := fmt.Sprintf("%s | X:%d Y:%d | LF | T:%d ", m.Mode, m.BufferCursor.Col, m.BufferCursor.Row, m.TabSize)
	if m.Pending != "" && !isCommandLine(m.Pending) {
		right = m.Pending + " " + right
	}
	if m.Boundary {
		right = "! " + right
	}
	room := width - runewidth.StringWidth(right)
	if room < 0 {
		return runewidth.Truncate(right, width, "")
	}
	return runewidth.FillRight(runewidth.Truncate(left, room, ""), room) + right
}

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
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"

	dj "github.com/timburks/djacarta/types"
)

func model() dj.RenderModel {
	return dj.RenderModel{
		BufferCursor: dj.Point{Row: 3, Col: 7},
		Mode:         dj.ModeCommand,
		TabSize:      4,
		FileName:     "notes.txt",
	}
}

func TestStatusBarShowsPosition(t *testing.T) {
	text := StatusBarText(model(), 60)
	assert.Equal(t, 60, runewidth.StringWidth(text))
	assert.True(t, strings.HasPrefix(text, " -*- notes.txt"))
	assert.True(t, strings.HasSuffix(text, "command | X:7 Y:3 | LF | T:4 "))
}

func TestStatusBarWithoutFile(t *testing.T) {
	m := model()
	m.FileName = ""
	assert.True(t, strings.HasPrefix(StatusBarText(m, 60), " -*- [no file]"))
}

func TestStatusBarCommandLine(t *testing.T) {
	m := model()
	m.Pending = ":tabsz 4"
	m.Message = "ignored"
	text := StatusBarText(m, 60)
	assert.True(t, strings.HasPrefix(text, commandPrompt+":tabsz 4"))

	m.Pending = "/needle"
	text = StatusBarText(m, 60)
	assert.True(t, strings.HasPrefix(text, commandPrompt+"/needle"))

	m.Pending = "2d"
	text = StatusBarText(m, 60)
	assert.True(t, strings.HasPrefix(text, " ignored"))
	assert.Contains(t, text, "2d command |")
}

func TestStatusBarBoundary(t *testing.T) {
	m := model()
	m.Boundary = true
	m.Mode = dj.ModeInsert
	assert.Contains(t, StatusBarText(m, 60), "! insert | X:7")
}

func TestStatusBarNarrow(t *testing.T) {
	text := StatusBarText(model(), 10)
	assert.Equal(t, 10, runewidth.StringWidth(text))
	assert.Equal(t, "command | ", text)
}

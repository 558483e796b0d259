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
package commander_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/djacarta/editor"
	dj "github.com/timburks/djacarta/types"
)

func newEditor(lines ...string) *editor.Editor {
	e := editor.NewEditor(editor.Options{Width: 40, Height: 10, TabSize: 8})
	if len(lines) > 0 {
		e.LoadLines(lines)
	}
	return e
}

func keys(e *editor.Editor, text string) dj.RenderModel {
	var m dj.RenderModel
	for _, c := range text {
		m = e.HandleKey(dj.CharEvent(c))
	}
	return m
}

func press(e *editor.Editor, k dj.Key) dj.RenderModel {
	return e.HandleKey(dj.KeyEvent(k))
}

// command types a command line and runs it.
func command(e *editor.Editor, text string) dj.RenderModel {
	keys(e, ":"+text)
	return press(e, dj.KeyEnter)
}

func TestPendingCountAndCancel(t *testing.T) {
	e := newEditor("a", "b", "c")
	m := keys(e, "2")
	assert.Equal(t, "2", m.Pending)
	m = keys(e, "d")
	assert.Equal(t, "2d", m.Pending)
	m = press(e, dj.KeyEsc)
	assert.Empty(t, m.Pending)
	assert.Equal(t, []string{"a", "b", "c"}, e.Lines())

	keys(e, "3")
	m = press(e, dj.KeyBackspace)
	assert.Empty(t, m.Pending)
	assert.Equal(t, dj.Point{}, m.BufferCursor)
}

func TestZeroIsACommandNotACount(t *testing.T) {
	e := newEditor("hello")
	keys(e, "$")
	m := keys(e, "0")
	assert.Equal(t, 0, m.BufferCursor.Col)
	assert.Empty(t, m.Pending)

	// after a count, zero is part of the count
	e = newEditor("1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12")
	m = keys(e, "10j")
	assert.Equal(t, 10, m.BufferCursor.Row)
}

func TestUnknownCommand(t *testing.T) {
	e := newEditor("abc")
	m := keys(e, "q")
	assert.Contains(t, m.Message, "unknown command")
	assert.Empty(t, m.Pending)
	assert.Equal(t, dj.ModeCommand, m.Mode)
	assert.True(t, e.IsRunning())

	m = press(e, dj.KeyEsc)
	assert.Empty(t, m.Message)
}

func TestArrowKeysTakeCount(t *testing.T) {
	e := newEditor("a", "b", "c", "d")
	keys(e, "2")
	m := press(e, dj.KeyArrowDown)
	assert.Equal(t, 2, m.BufferCursor.Row)
	assert.Empty(t, m.Pending)

	m = press(e, dj.KeyEnter)
	assert.Equal(t, dj.Point{Row: 3, Col: 0}, m.BufferCursor)
	m = press(e, dj.KeyEnter)
	assert.True(t, m.Boundary)
}

func TestInsertModeNavigation(t *testing.T) {
	e := newEditor("abc", "def")
	m := keys(e, "a")
	assert.Equal(t, dj.ModeInsert, m.Mode)
	assert.Equal(t, dj.Point{Row: 0, Col: 1}, e.Commander().InsertStart())

	press(e, dj.KeyEnd)
	press(e, dj.KeyArrowDown)
	m = keys(e, "!")
	assert.Equal(t, []string{"abc", "def!"}, e.Lines())
	assert.Equal(t, dj.Point{Row: 1, Col: 4}, m.BufferCursor)

	press(e, dj.KeyHome)
	press(e, dj.KeyDelete)
	press(e, dj.KeyTab)
	m = press(e, dj.KeySpace)
	assert.Equal(t, []string{"abc", "\t ef!"}, e.Lines())
	assert.Equal(t, dj.ModeInsert, m.Mode)
}

func TestInsertAtStartAndEnd(t *testing.T) {
	e := newEditor("  mid")
	keys(e, "ll")
	keys(e, "I>")
	press(e, dj.KeyEsc)
	keys(e, "A<")
	press(e, dj.KeyEsc)
	assert.Equal(t, []string{">  mid<"}, e.Lines())
}

func TestTabOpensCommandLine(t *testing.T) {
	e := newEditor("a", "b", "c")
	m := press(e, dj.KeyTab)
	assert.Equal(t, ":", m.Pending)
	keys(e, "3")
	m = press(e, dj.KeyEnter)
	assert.Equal(t, 2, m.BufferCursor.Row)

	press(e, dj.KeyTab)
	keys(e, "1")
	m = press(e, dj.KeyEsc)
	assert.Empty(t, m.Pending)
	assert.Equal(t, 2, m.BufferCursor.Row)

	// erasing the prompt leaves the command line
	keys(e, ":x")
	press(e, dj.KeyBackspace)
	m = press(e, dj.KeyBackspace)
	assert.Empty(t, m.Pending)
	m = keys(e, "k")
	assert.Equal(t, 1, m.BufferCursor.Row)
}

func TestCommandLineErrors(t *testing.T) {
	e := newEditor("abc")
	m := command(e, "frobnicate")
	assert.Contains(t, m.Message, "unknown command")

	m = command(e, "o")
	assert.Contains(t, m.Message, "requires a file name")

	m = command(e, "s")
	assert.Contains(t, m.Message, "requires a file name")

	m = command(e, "ss")
	assert.Contains(t, m.Message, "no file name")

	m = command(e, "tabsz wide")
	assert.Contains(t, m.Message, "invalid tab size")
	m = command(e, "tabsz 256")
	assert.NotEmpty(t, m.Message)
	assert.Equal(t, 8, m.TabSize)

	m = command(e, "o "+filepath.Join(t.TempDir(), "missing.txt"))
	assert.NotEmpty(t, m.Message)
	assert.Equal(t, []string{"abc"}, e.Lines())
}

func TestInsertCodePoint(t *testing.T) {
	e := newEditor("bc")
	command(e, "u-41")
	m := command(e, "u-e9")
	assert.Equal(t, []string{"Aébc"}, e.Lines())
	assert.Equal(t, dj.Point{Row: 0, Col: 2}, m.BufferCursor)

	m = command(e, "u-zz")
	assert.Contains(t, m.Message, "invalid code point")
	m = command(e, "u-d800")
	assert.Contains(t, m.Message, "invalid code point")

	keys(e, "u")
	assert.Equal(t, []string{"Abc"}, e.Lines())
}

func TestTouchSaveAndSaveAgain(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	e := newEditor()

	command(e, "t "+path)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, b)

	command(e, "o "+path)
	keys(e, "ifirst")
	press(e, dj.KeyEsc)
	m := command(e, "ss")
	assert.Equal(t, "wrote "+path, m.Message)
	b, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\n", string(b))

	other := filepath.Join(dir, "other.txt")
	command(e, "w "+other)
	assert.Equal(t, other, e.FileName())

	command(e, "wq")
	assert.False(t, e.IsRunning())
}

func TestGotoLastLine(t *testing.T) {
	e := newEditor("a", "b", "c")
	m := command(e, "$")
	assert.Equal(t, 2, m.BufferCursor.Row)
	m = command(e, "99")
	assert.Equal(t, 2, m.BufferCursor.Row)
	m = command(e, "1")
	assert.Equal(t, 0, m.BufferCursor.Row)
}

func numberedLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = strconv.Itoa(i)
	}
	return lines
}

func TestAlignCommands(t *testing.T) {
	e := newEditor(numberedLines(30)...)
	m := keys(e, "15j")
	require.Equal(t, 6, m.Top)
	m = command(e, "va")
	assert.Equal(t, 15, m.Top)
	assert.Equal(t, dj.Point{Row: 0, Col: 0}, m.Cursor)

	e = newEditor(strings.Repeat("0123456789", 6))
	m = keys(e, "30l")
	require.Equal(t, 0, m.Left)
	m = command(e, "ha")
	assert.Equal(t, 30, m.Left)
	assert.Equal(t, 0, m.Cursor.Col)
	assert.Equal(t, 30, m.BufferCursor.Col)

	m = command(e, "e")
	assert.Equal(t, 60, m.BufferCursor.Col)
	assert.Equal(t, 60, m.Left)
	assert.True(t, m.CursorOnScreen)

	m = command(e, "h")
	assert.Equal(t, 0, m.BufferCursor.Col)
	assert.Equal(t, 0, m.Left)
}

func TestPageCommands(t *testing.T) {
	e := newEditor(numberedLines(30)...)
	m := command(e, "pd")
	assert.Equal(t, 10, m.BufferCursor.Row)
	m = command(e, "pd")
	assert.Equal(t, 20, m.BufferCursor.Row)
	m = command(e, "pd")
	assert.Equal(t, 29, m.BufferCursor.Row)
	m = command(e, "pd")
	assert.True(t, m.Boundary)

	command(e, "pu")
	command(e, "pu")
	m = command(e, "pu")
	assert.Equal(t, 0, m.BufferCursor.Row)
	m = command(e, "pu")
	assert.True(t, m.Boundary)
	assert.Empty(t, m.Message)
}

func TestGotoRowCommand(t *testing.T) {
	e := newEditor(numberedLines(30)...)
	m := command(e, "g 3")
	assert.Equal(t, dj.Point{Row: 3, Col: 0}, m.BufferCursor)
	assert.Equal(t, 3, m.Top)

	m = command(e, "g 0x10")
	assert.Equal(t, 16, m.BufferCursor.Row)

	m = command(e, "g 30")
	assert.True(t, m.Boundary)
	assert.Equal(t, 16, m.BufferCursor.Row)

	m = command(e, "g x")
	assert.Contains(t, m.Message, "invalid line number")
}

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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dj "github.com/timburks/djacarta/types"
)

func TestLispMotion(t *testing.T) {
	e := newEditor("one", "two", "three")
	c := e.Commander()
	assert.Equal(t, "3", c.ParseEval("(line-count)"))
	assert.Equal(t, "1", c.ParseEval("(down 2)"))
	assert.Equal(t, "3", c.ParseEval("(row)"))
	assert.Equal(t, "0", c.ParseEval("(down)"))
	assert.Equal(t, "2", c.ParseEval("(goto 2 1)"))
	assert.Equal(t, dj.Point{Row: 1, Col: 1}, e.GetCursor())
	assert.Equal(t, "1", c.ParseEval("(col)"))
}

func TestLispEditsUndoAsOneStep(t *testing.T) {
	e := newEditor("ab", "cd")
	c := e.Commander()
	c.ParseEval(`(begin (goto 1 1) (insert "XY") (split-line) (join-line))`)
	assert.Equal(t, []string{"aXY", "bcd"}, e.Lines())

	keys(e, "u")
	assert.Equal(t, []string{"ab", "cd"}, e.Lines())
}

func TestLispDeletes(t *testing.T) {
	e := newEditor("abc", "def", "ghi")
	c := e.Commander()
	c.ParseEval("(begin (goto 1 3) (delete-char 2))")
	assert.Equal(t, []string{"a", "def", "ghi"}, e.Lines())
	c.ParseEval("(begin (goto 2) (delete-line))")
	assert.Equal(t, []string{"a", "ghi"}, e.Lines())
	assert.Equal(t, "0", c.ParseEval("(begin (goto 1 0) (delete-char))"))
}

func TestLispTabSize(t *testing.T) {
	e := newEditor("\tx")
	c := e.Commander()
	assert.Equal(t, "8", c.ParseEval("(tabsize)"))
	assert.Equal(t, "3", c.ParseEval("(tabsize 3)"))
	assert.Equal(t, 3, e.TabSize())
	c.ParseEval("(tabsize 999)")
	assert.Equal(t, 3, e.TabSize())
}

func TestLispFromCommandLine(t *testing.T) {
	e := newEditor("a", "b")
	keys(e, "(line-count)")
	m := press(e, dj.KeyEnter)
	assert.Equal(t, "2", m.Message)
	assert.Empty(t, m.Pending)

	keys(e, "(frobnicate)")
	m = press(e, dj.KeyEnter)
	assert.NotEmpty(t, m.Message)
	assert.Equal(t, []string{"a", "b"}, e.Lines())
}

func TestEvalBuffer(t *testing.T) {
	e := newEditor("(down)", "(insert \"!\")")
	m := command(e, "eval")
	assert.Equal(t, "1", m.Message)
	assert.Equal(t, []string{"(down)", "!(insert \"!\")"}, e.Lines())
}

func TestLispUndoInsideScriptUndoesScriptEdits(t *testing.T) {
	e := newEditor()
	keys(e, "iab")
	press(e, dj.KeyEsc)
	require.Equal(t, []string{"ab"}, e.Lines())

	c := e.Commander()
	assert.Equal(t, "1", c.ParseEval(`(begin (goto 1 0) (insert "x") (undo))`))
	assert.Equal(t, []string{"ab"}, e.Lines())

	keys(e, "u")
	assert.Equal(t, []string{""}, e.Lines())
	press(e, dj.KeyCtrlR)
	assert.Equal(t, []string{"ab"}, e.Lines())
}

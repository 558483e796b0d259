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
package operations_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/djacarta/editor"
	"github.com/timburks/djacarta/operations"
	dj "github.com/timburks/djacarta/types"
)

func setup(lines ...string) *editor.Editor {
	e := editor.NewEditor(editor.Options{Width: 80, Height: 24})
	e.LoadLines(lines)
	return e
}

// check performs op, then its inverse, and expects the original lines and cursor back.
func check(t *testing.T, e *editor.Editor, op dj.Operation, want []string) {
	t.Helper()
	before := e.Lines()
	cursor := e.GetCursor()
	inverse, err := op.Perform(e)
	require.NoError(t, err)
	require.NotNil(t, inverse)
	assert.Equal(t, want, e.Lines())
	_, err = inverse.Perform(e)
	require.NoError(t, err)
	assert.Equal(t, before, e.Lines())
	assert.Equal(t, cursor, e.GetCursor())
}

func TestInsertCharacter(t *testing.T) {
	e := setup("abc")
	e.SetCursor(dj.Point{Row: 0, Col: 1})
	check(t, e, &operations.InsertCharacter{Cursor: e.GetCursor(), Character: 'x'}, []string{"axbc"})
	check(t, e, &operations.InsertCharacter{Cursor: e.GetCursor(), Character: '\n'}, []string{"a", "bc"})
}

func TestDeleteCharacter(t *testing.T) {
	e := setup("abc", "de")
	e.SetCursor(dj.Point{Row: 1, Col: 0})
	check(t, e, &operations.DeleteCharacter{Cursor: e.GetCursor()}, []string{"abcde"})
	e.SetCursor(dj.Point{Row: 0, Col: 1})
	check(t, e, &operations.DeleteCharacter{Cursor: e.GetCursor(), Forward: true}, []string{"ac", "de"})
	e.SetCursor(dj.Point{Row: 0, Col: 3})
	check(t, e, &operations.DeleteCharacter{Cursor: e.GetCursor(), Forward: true}, []string{"abcde"})
}

func TestDeleteCharacterAtBoundary(t *testing.T) {
	e := setup("abc")
	_, err := (&operations.DeleteCharacter{}).Perform(e)
	require.ErrorIs(t, err, dj.ErrBoundary)
	_, err = (&operations.DeleteCharacter{Cursor: dj.Point{Row: 0, Col: 3}, Forward: true}).Perform(e)
	require.ErrorIs(t, err, dj.ErrBoundary)
	assert.Equal(t, []string{"abc"}, e.Lines())
}

func TestLineOperations(t *testing.T) {
	e := setup("one", "two")
	e.SetCursor(dj.Point{Row: 1, Col: 2})
	check(t, e, &operations.InsertLine{Row: 1, Text: "new"}, []string{"one", "new", "two"})
	// line operations leave the cursor at the start of the row they change
	e.SetCursor(dj.Point{Row: 0, Col: 0})
	check(t, e, &operations.DeleteLine{Row: 0}, []string{"two"})
	e.SetCursor(dj.Point{Row: 1, Col: 0})
	check(t, e, &operations.ReplaceLine{Row: 1, Text: "2"}, []string{"one", "2"})
	e.SetCursor(dj.Point{Row: 0, Col: 3})
	check(t, e, &operations.JoinLine{Row: 0}, []string{"onetwo"})

	e = setup("only")
	check(t, e, &operations.DeleteLine{Row: 0}, []string{""})
}

func TestInsertText(t *testing.T) {
	e := setup("ad")
	op := operations.InsertText(dj.Point{Row: 0, Col: 1}, "b\nc")
	check(t, e, op, []string{"ab", "cd"})

	_, err := op.Perform(e)
	require.NoError(t, err)
	assert.Equal(t, dj.Point{Row: 1, Col: 1}, e.GetCursor())
}

func TestSequenceRollsBackOnFailure(t *testing.T) {
	e := setup("abc")
	op := &operations.Sequence{Operations: []dj.Operation{
		&operations.InsertCharacter{Cursor: dj.Point{Row: 0, Col: 0}, Character: 'x'},
		&operations.DeleteLine{Row: 5},
	}}
	_, err := op.Perform(e)
	require.ErrorIs(t, err, dj.ErrOutOfBounds)
	assert.Equal(t, []string{"abc"}, e.Lines())
}

// stuck performs once and returns an inverse that always fails.
type stuck struct{}

func (stuck) Perform(dj.Editable) (dj.Operation, error) {
	return failing{}, nil
}

type failing struct{}

func (failing) Perform(dj.Editable) (dj.Operation, error) {
	return nil, dj.ErrBoundary
}

func TestSequenceReportsFailedRollback(t *testing.T) {
	e := setup("abc")
	op := &operations.Sequence{Operations: []dj.Operation{
		stuck{},
		&operations.DeleteLine{Row: 5},
	}}
	_, err := op.Perform(e)
	require.ErrorIs(t, err, dj.ErrOutOfBounds)
	assert.Contains(t, err.Error(), "rollback failed")
	assert.NotErrorIs(t, err, dj.ErrBoundary)
}

func TestReverse(t *testing.T) {
	e := setup("")
	var inverses []dj.Operation
	for _, c := range "abc" {
		inverse, err := (&operations.InsertCharacter{Cursor: e.GetCursor(), Character: c}).Perform(e)
		require.NoError(t, err)
		inverses = append(inverses, inverse)
	}
	require.Equal(t, []string{"abc"}, e.Lines())
	_, err := operations.Reverse(inverses).Perform(e)
	require.NoError(t, err)
	assert.Equal(t, []string{""}, e.Lines())
}

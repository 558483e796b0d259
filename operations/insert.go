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

package operations

import (
	dj "github.com/timburks/djacarta/types"
)

// InsertCharacter inserts a character at a position and leaves the cursor after it.
// Inserting '\n' splits the line.
type InsertCharacter struct {
	Cursor     dj.Point
	Character  rune
	KeepCursor bool // leave the cursor at Cursor instead of after the new character
}

func (op *InsertCharacter) Perform(e dj.Editable) (dj.Operation, error) {
	var after dj.Point
	var err error
	if op.Character == '\n' {
		after, err = e.SplitLine(op.Cursor)
	} else {
		after, err = e.InsertChar(op.Cursor, op.Character)
	}
	if err != nil {
		return nil, err
	}
	if op.KeepCursor {
		e.SetCursor(op.Cursor)
		return &DeleteCharacter{Cursor: op.Cursor, Forward: true}, nil
	}
	e.SetCursor(after)
	return &DeleteCharacter{Cursor: after}, nil
}

// DeleteCharacter deletes the character before Cursor, or at Cursor when Forward is set.
// Deleting across a line boundary joins the lines.
type DeleteCharacter struct {
	Cursor  dj.Point
	Forward bool
}

func (op *DeleteCharacter) Perform(e dj.Editable) (dj.Operation, error) {
	var after dj.Point
	var c rune
	var err error
	if op.Forward {
		after, c, err = e.DeleteCharForward(op.Cursor)
	} else {
		after, c, err = e.DeleteChar(op.Cursor)
	}
	if err != nil {
		return nil, err
	}
	e.SetCursor(after)
	if op.Forward {
		return &InsertCharacter{Cursor: after, Character: c, KeepCursor: true}, nil
	}
	return &InsertCharacter{Cursor: after, Character: c}, nil
}

// InsertText inserts a string at a position, character by character.
func InsertText(cursor dj.Point, text string) *Sequence {
	ops := make([]dj.Operation, 0, len(text))
	for _, c := range text {
		ops = append(ops, &insertNext{Character: c})
	}
	return &Sequence{Operations: append([]dj.Operation{&moveTo{Cursor: cursor}}, ops...)}
}

// insertNext inserts at whatever the cursor is when it is performed.
type insertNext struct {
	Character rune
}

func (op *insertNext) Perform(e dj.Editable) (dj.Operation, error) {
	insert := &InsertCharacter{Cursor: e.GetCursor(), Character: op.Character}
	return insert.Perform(e)
}

// moveTo positions the cursor; its inverse restores the previous cursor.
type moveTo struct {
	Cursor dj.Point
}

func (op *moveTo) Perform(e dj.Editable) (dj.Operation, error) {
	previous := e.GetCursor()
	e.SetCursor(op.Cursor)
	return &moveTo{Cursor: previous}, nil
}

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

// InsertLine inserts a new line before Row and puts the cursor at its start.
type InsertLine struct {
	Row  int
	Text string
}

func (op *InsertLine) Perform(e dj.Editable) (dj.Operation, error) {
	previous := e.GetCursor()
	if err := e.InsertLine(op.Row, op.Text); err != nil {
		return nil, err
	}
	e.SetCursor(dj.Point{Row: op.Row, Col: 0})
	return &DeleteLine{Row: op.Row, Cursor: &previous}, nil
}

// DeleteLine removes a line. Deleting the only line empties it.
// If Cursor is set the cursor is restored there afterwards.
type DeleteLine struct {
	Row    int
	Cursor *dj.Point
}

func (op *DeleteLine) Perform(e dj.Editable) (dj.Operation, error) {
	count := e.LineCount()
	text, err := e.DeleteLine(op.Row)
	if err != nil {
		return nil, err
	}
	if op.Cursor != nil {
		e.SetCursor(*op.Cursor)
	} else {
		e.SetCursor(dj.Point{Row: op.Row, Col: 0})
	}
	if count == 1 {
		return &ReplaceLine{Row: op.Row, Text: text}, nil
	}
	return &InsertLine{Row: op.Row, Text: text}, nil
}

// ReplaceLine replaces the text of a line.
type ReplaceLine struct {
	Row  int
	Text string
}

func (op *ReplaceLine) Perform(e dj.Editable) (dj.Operation, error) {
	old, err := e.ReplaceLine(op.Row, op.Text)
	if err != nil {
		return nil, err
	}
	e.SetCursor(dj.Point{Row: op.Row, Col: 0})
	return &ReplaceLine{Row: op.Row, Text: old}, nil
}

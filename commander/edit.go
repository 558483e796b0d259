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
package commander

import (
	"unicode"

	"github.com/timburks/djacarta/operations"
	dj "github.com/timburks/djacarta/types"
)

// replaceCharacters overwrites count characters starting at the cursor with ch.
// It does nothing unless the line has that many characters left.
func (c *Commander) replaceCharacters(ch rune) command {
	return func(count int) error {
		e := c.editor
		cursor := e.GetCursor()
		n := times(count)
		if cursor.Col+n > e.LineLength(cursor.Row) {
			return dj.ErrBoundary
		}
		e.BeginGroup()
		defer e.EndGroup()
		for i := 0; i < n; i++ {
			pos := dj.Point{Row: cursor.Row, Col: cursor.Col + i}
			if err := e.Perform(&operations.ReplaceCharacter{Cursor: pos, Character: ch}); err != nil {
				return err
			}
		}
		return nil
	}
}

func toggleCase(ch rune) rune {
	switch {
	case unicode.IsUpper(ch):
		return unicode.ToLower(ch)
	case unicode.IsLower(ch):
		return unicode.ToUpper(ch)
	}
	return ch
}

// reverseCase toggles the case of count characters and moves past them,
// stopping on the last character of the line.
func (c *Commander) reverseCase(count int) error {
	e := c.editor
	cursor := e.GetCursor()
	line := c.runes(cursor.Row)
	if cursor.Col >= len(line) {
		return dj.ErrBoundary
	}
	n := min(times(count), len(line)-cursor.Col)
	e.BeginGroup()
	defer e.EndGroup()
	for i := 0; i < n; i++ {
		pos := dj.Point{Row: cursor.Row, Col: cursor.Col + i}
		if toggled := toggleCase(line[pos.Col]); toggled != line[pos.Col] {
			if err := e.Perform(&operations.ReplaceCharacter{Cursor: pos, Character: toggled}); err != nil {
				return err
			}
		}
	}
	e.SetCursor(dj.Point{Row: cursor.Row, Col: min(cursor.Col+n, len(line)-1)})
	return nil
}

// yankLines copies count lines starting at the cursor line into the register.
func (c *Commander) yankLines(count int) error {
	e := c.editor
	row := e.GetCursor().Row
	last := min(row+times(count), e.LineCount())
	c.register = make([]string, 0, last-row)
	for r := row; r < last; r++ {
		c.register = append(c.register, e.LineText(r))
	}
	return nil
}

// paste inserts the register count times below or above the cursor line
// and moves to the first inserted line.
func (c *Commander) paste(below bool) command {
	return func(count int) error {
		e := c.editor
		if len(c.register) == 0 {
			return dj.ErrBoundary
		}
		row := e.GetCursor().Row
		if below {
			row++
		}
		e.BeginGroup()
		defer e.EndGroup()
		at := row
		for i := 0; i < times(count); i++ {
			for _, text := range c.register {
				if err := e.Perform(&operations.InsertLine{Row: at, Text: text}); err != nil {
					return err
				}
				at++
			}
		}
		e.SetCursor(dj.Point{Row: row, Col: 0})
		return nil
	}
}

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

// Words are runs of characters that are not spaces. An empty line is also a word.

func (c *Commander) runes(row int) []rune {
	return []rune(c.editor.LineText(row))
}

// nextWord returns the start of the word after pos, or the end of the buffer.
func (c *Commander) nextWord(pos dj.Point) dj.Point {
	e := c.editor
	row, col := pos.Row, pos.Col
	line := c.runes(row)
	for col < len(line) && !unicode.IsSpace(line[col]) {
		col++
	}
	for {
		for col < len(line) && unicode.IsSpace(line[col]) {
			col++
		}
		if col < len(line) || row+1 >= e.LineCount() {
			return dj.Point{Row: row, Col: col}
		}
		row++
		col = 0
		line = c.runes(row)
		if len(line) == 0 {
			return dj.Point{Row: row, Col: 0}
		}
	}
}

// previousWord returns the start of the word before pos, or the start of the buffer.
func (c *Commander) previousWord(pos dj.Point) dj.Point {
	row, col := pos.Row, pos.Col
	line := c.runes(row)
	for {
		if col == 0 {
			if row == 0 {
				return dj.Point{}
			}
			row--
			line = c.runes(row)
			col = len(line)
			if col == 0 {
				return dj.Point{Row: row, Col: 0}
			}
			continue
		}
		if !unicode.IsSpace(line[col-1]) {
			break
		}
		col--
	}
	for col > 0 && !unicode.IsSpace(line[col-1]) {
		col--
	}
	return dj.Point{Row: row, Col: col}
}

func (c *Commander) wordMotion(forward bool) command {
	return func(count int) error {
		e := c.editor
		for i := 0; i < times(count); i++ {
			cursor := e.GetCursor()
			next := c.previousWord(cursor)
			if forward {
				next = c.nextWord(cursor)
			}
			if next == cursor {
				if i == 0 {
					return dj.ErrBoundary
				}
				break
			}
			e.SetCursor(next)
		}
		return nil
	}
}

// deleteForward builds one operation that deletes n characters at pos.
func deleteForward(pos dj.Point, n int) dj.Operation {
	ops := make([]dj.Operation, n)
	for i := range ops {
		ops[i] = &operations.DeleteCharacter{Cursor: pos, Forward: true}
	}
	return &operations.Sequence{Operations: ops}
}

// deleteWords deletes to the start of the next word on the same line.
// At the end of a line it joins the next line.
func (c *Commander) deleteWords(count int) error {
	e := c.editor
	return c.repeat(count, func() error {
		cursor := e.GetCursor()
		line := c.runes(cursor.Row)
		if cursor.Col >= len(line) {
			return e.Perform(&operations.DeleteCharacter{Cursor: cursor, Forward: true})
		}
		end := cursor.Col
		for end < len(line) && !unicode.IsSpace(line[end]) {
			end++
		}
		for end < len(line) && unicode.IsSpace(line[end]) {
			end++
		}
		return e.Perform(deleteForward(cursor, end-cursor.Col))
	})
}

// changeWords deletes count words, without the spaces after the last one, and starts an insert.
func (c *Commander) changeWords(count int) error {
	e := c.editor
	if err := c.insert(dj.InsertAtCursor)(0); err != nil {
		return err
	}
	cursor := e.GetCursor()
	line := c.runes(cursor.Row)
	end := cursor.Col
	for i := 0; i < times(count); i++ {
		for end < len(line) && unicode.IsSpace(line[end]) {
			end++
		}
		for end < len(line) && !unicode.IsSpace(line[end]) {
			end++
		}
	}
	if end == cursor.Col {
		return nil
	}
	return e.Perform(deleteForward(cursor, end-cursor.Col))
}

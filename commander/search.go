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
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	dj "github.com/timburks/djacarta/types"
)

// search moves the cursor to the next occurrence of text after the cursor,
// wrapping around the end of the buffer.
func (c *Commander) search(text string) error {
	e := c.editor
	if text == "" {
		text = c.lastSearch
	}
	if text == "" {
		return errors.New("no previous search")
	}
	c.lastSearch = text

	start := e.GetCursor()
	row, col := start.Row, start.Col+1
	for i := 0; i <= e.LineCount(); i++ {
		line := []rune(e.LineText(row))
		if col <= len(line) {
			s := string(line[col:])
			if k := strings.Index(s, text); k != -1 {
				e.SetCursor(dj.Point{Row: row, Col: col + utf8.RuneCountInString(s[:k])})
				return nil
			}
		}
		row++
		col = 0
		if row == e.LineCount() {
			row = 0
		}
	}
	return fmt.Errorf("pattern not found: %s", text)
}

func (c *Commander) searchNext(count int) error {
	if c.lastSearch == "" {
		return errors.New("no previous search")
	}
	for i := 0; i < times(count); i++ {
		if err := c.search(c.lastSearch); err != nil {
			return err
		}
	}
	return nil
}

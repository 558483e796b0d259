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
package editor

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	dj "github.com/timburks/djacarta/types"
)

const (
	DefaultTabSize = 8
	MaxTabSize     = 255
)

// A Viewport is the rectangle of the buffer that is visible on screen.
// Top is a buffer row; Left is a visual column, with tabs expanded.
type Viewport struct {
	Top     int
	Left    int
	Width   int
	Height  int
	TabSize int
}

func NewViewport(width, height, tabSize int) *Viewport {
	v := &Viewport{}
	v.Resize(width, height)
	v.TabSize = tabSize
	if v.TabSize < 1 || v.TabSize > MaxTabSize {
		v.TabSize = DefaultTabSize
	}
	return v
}

func (v *Viewport) Resize(width, height int) {
	v.Width = max(width, 1)
	v.Height = max(height, 1)
}

// cell width of a rune other than tab
func runeWidth(c rune) int {
	w := runewidth.RuneWidth(c)
	if w < 1 {
		return 1
	}
	return w
}

// advance returns the visual column after drawing c at visual column x.
func (v *Viewport) advance(x int, c rune) int {
	if c == '\t' {
		return x + v.TabSize - x%v.TabSize
	}
	return x + runeWidth(c)
}

// VisualColumn returns the screen column of col in line, ignoring Left.
// Tabs advance to the next multiple of TabSize.
func (v *Viewport) VisualColumn(line []rune, col int) int {
	x := 0
	for i := 0; i < col && i < len(line); i++ {
		x = v.advance(x, line[i])
	}
	return x
}

// ColumnForVisual returns the last column in line whose visual column does not exceed x.
func (v *Viewport) ColumnForVisual(line []rune, x int) int {
	visual := 0
	for i, c := range line {
		next := v.advance(visual, c)
		if next > x {
			return i
		}
		visual = next
	}
	return len(line)
}

// BufferToScreen maps a cursor in line to screen coordinates.
// The boolean is false when the result is outside the viewport.
func (v *Viewport) BufferToScreen(line []rune, cursor dj.Point) (dj.Point, bool) {
	p := dj.Point{
		Row: cursor.Row - v.Top,
		Col: v.VisualColumn(line, cursor.Col) - v.Left,
	}
	onScreen := p.Row >= 0 && p.Row < v.Height && p.Col >= 0 && p.Col < v.Width
	return p, onScreen
}

// ScrollToContain moves the viewport as little as possible to put the cursor onscreen.
func (v *Viewport) ScrollToContain(line []rune, cursor dj.Point) {
	if cursor.Row < v.Top {
		// scroll up
		v.Top = cursor.Row
	}
	if cursor.Row-v.Top >= v.Height {
		// scroll down
		v.Top = cursor.Row - v.Height + 1
	}
	x := v.VisualColumn(line, cursor.Col)
	if x < v.Left {
		// scroll left
		v.Left = x
	}
	if x-v.Left >= v.Width {
		// scroll right
		v.Left = x - v.Width + 1
	}
}

// VisibleText returns the part of line between visual columns Left and Left+Width.
// Tabs become spaces; a wide character cut by an edge becomes spaces.
func (v *Viewport) VisibleText(line []rune) string {
	var sb strings.Builder
	right := v.Left + v.Width
	x := 0
	for _, c := range line {
		if x >= right {
			break
		}
		next := v.advance(x, c)
		if c == '\t' || x < v.Left || next > right {
			for k := x; k < next; k++ {
				if k >= v.Left && k < right {
					sb.WriteByte(' ')
				}
			}
		} else {
			if !unicode.IsPrint(c) {
				c = '?'
			}
			sb.WriteRune(c)
		}
		x = next
	}
	return sb.String()
}

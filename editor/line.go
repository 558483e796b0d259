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

// A line of text in the buffer. Lines never contain a line terminator.
type Line struct {
	Text []rune
}

func NewLine(text string) *Line {
	return &Line{Text: []rune(text)}
}

func (l *Line) String() string {
	return string(l.Text)
}

func (l *Line) Length() int {
	return len(l.Text)
}

// The caller validates col.
func (l *Line) InsertChar(col int, c rune) {
	line := make([]rune, 0, len(l.Text)+1)
	line = append(line, l.Text[0:col]...)
	line = append(line, c)
	line = append(line, l.Text[col:]...)
	l.Text = line
}

// delete character at col and return the deleted character
func (l *Line) DeleteChar(col int) rune {
	c := l.Text[col]
	line := make([]rune, 0, len(l.Text)-1)
	line = append(line, l.Text[0:col]...)
	line = append(line, l.Text[col+1:]...)
	l.Text = line
	return c
}

// splits line at col, returns a new line containing the remaining text.
// ReplaceChar replaces the character at col and returns the old one.
func (l *Line) ReplaceChar(col int, c rune) rune {
	old := l.Text[col]
	l.Text[col] = c
	return old
}

func (l *Line) Split(col int) *Line {
	after := make([]rune, len(l.Text)-col)
	copy(after, l.Text[col:])
	l.Text = l.Text[0:col:col]
	return &Line{Text: after}
}

// joins lines by appending the passed-in line to the current line
func (l *Line) Join(other *Line) {
	line := make([]rune, 0, len(l.Text)+len(other.Text))
	line = append(line, l.Text...)
	line = append(line, other.Text...)
	l.Text = line
}

func isLineTerminator(c rune) bool {
	return c == '\n' || c == '\r'
}

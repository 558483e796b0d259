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
	"fmt"
	"strings"

	dj "github.com/timburks/djacarta/types"
)

// A Buffer holds the lines of a file being edited.
// A Buffer always has at least one line; an empty buffer is one empty line.
// Every mutation validates its arguments before changing anything.
type Buffer struct {
	lines    []*Line
	fileName string
}

func NewBuffer() *Buffer {
	return &Buffer{lines: []*Line{NewLine("")}}
}

// NewBufferWithLines creates a buffer holding a copy of lines.
// Line terminators inside a line split it.
func NewBufferWithLines(lines []string) *Buffer {
	b := NewBuffer()
	b.LoadBytes([]byte(strings.Join(lines, "\n")))
	return b
}

func (b *Buffer) FileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

// LoadBytes replaces the buffer contents. Lines never hold a '\r', so all of them are dropped.
func (b *Buffer) LoadBytes(bytes []byte) {
	text := strings.Split(string(bytes), "\n")
	b.lines = make([]*Line, 0, len(text))
	for _, line := range text {
		b.lines = append(b.lines, NewLine(strings.ReplaceAll(line, "\r", "")))
	}
}

func (b *Buffer) Bytes() []byte {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line.Text))
	}
	return []byte(sb.String())
}

func (b *Buffer) LineCount() int {
	return len(b.lines)
}

func (b *Buffer) LineLength(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return b.lines[row].Length()
}

func (b *Buffer) LineText(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row].String()
}

// Runes returns the code points of a line. The slice must not be modified.
func (b *Buffer) Runes(row int) []rune {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return b.lines[row].Text
}

// Lines returns a copy of the buffer's text, one string per line.
func (b *Buffer) Lines() []string {
	result := make([]string, len(b.lines))
	for i, line := range b.lines {
		result[i] = line.String()
	}
	return result
}

func (b *Buffer) checkPosition(pos dj.Point) error {
	if pos.Row < 0 || pos.Row >= len(b.lines) {
		return fmt.Errorf("%w: row %d of %d", dj.ErrOutOfBounds, pos.Row, len(b.lines))
	}
	if pos.Col < 0 || pos.Col > b.lines[pos.Row].Length() {
		return fmt.Errorf("%w: col %d of %d in row %d", dj.ErrOutOfBounds, pos.Col, b.lines[pos.Row].Length(), pos.Row)
	}
	return nil
}

func (b *Buffer) checkRow(row int) error {
	if row < 0 || row >= len(b.lines) {
		return fmt.Errorf("%w: row %d of %d", dj.ErrOutOfBounds, row, len(b.lines))
	}
	return nil
}

// InsertChar inserts c at pos and returns the position just after it.
func (b *Buffer) InsertChar(pos dj.Point, c rune) (dj.Point, error) {
	if err := b.checkPosition(pos); err != nil {
		return pos, err
	}
	if isLineTerminator(c) {
		return pos, fmt.Errorf("%w: %q", dj.ErrLineTerminator, c)
	}
	b.lines[pos.Row].InsertChar(pos.Col, c)
	return dj.Point{Row: pos.Row, Col: pos.Col + 1}, nil
}

// DeleteChar deletes the character before pos (backspace).
// At the start of a line it joins the line to the previous one and reports '\n'.
// At the start of the buffer it returns ErrBoundary.
func (b *Buffer) DeleteChar(pos dj.Point) (dj.Point, rune, error) {
	if err := b.checkPosition(pos); err != nil {
		return pos, 0, err
	}
	if pos.Col > 0 {
		c := b.lines[pos.Row].DeleteChar(pos.Col - 1)
		return dj.Point{Row: pos.Row, Col: pos.Col - 1}, c, nil
	}
	if pos.Row == 0 {
		return pos, 0, dj.ErrBoundary
	}
	newPos, err := b.JoinLine(pos.Row - 1)
	if err != nil {
		return pos, 0, err
	}
	return newPos, '\n', nil
}

// DeleteCharForward deletes the character at pos.
// At the end of a line it joins the next line and reports '\n'.
// At the end of the buffer it returns ErrBoundary.
func (b *Buffer) DeleteCharForward(pos dj.Point) (dj.Point, rune, error) {
	if err := b.checkPosition(pos); err != nil {
		return pos, 0, err
	}
	if pos.Col < b.lines[pos.Row].Length() {
		c := b.lines[pos.Row].DeleteChar(pos.Col)
		return pos, c, nil
	}
	if pos.Row == len(b.lines)-1 {
		return pos, 0, dj.ErrBoundary
	}
	if _, err := b.JoinLine(pos.Row); err != nil {
		return pos, 0, err
	}
	return pos, '\n', nil
}

// SplitLine breaks the line at pos and returns the start of the new line.
// ReplaceChar replaces the character at pos. There is nothing to replace at the end of a line.
func (b *Buffer) ReplaceChar(pos dj.Point, c rune) (rune, error) {
	if err := b.checkPosition(pos); err != nil {
		return 0, err
	}
	if isLineTerminator(c) {
		return 0, fmt.Errorf("%w: %q", dj.ErrLineTerminator, c)
	}
	if pos.Col == b.lines[pos.Row].Length() {
		return 0, dj.ErrBoundary
	}
	return b.lines[pos.Row].ReplaceChar(pos.Col, c), nil
}

func (b *Buffer) SplitLine(pos dj.Point) (dj.Point, error) {
	if err := b.checkPosition(pos); err != nil {
		return pos, err
	}
	newLine := b.lines[pos.Row].Split(pos.Col)
	b.insertLine(pos.Row+1, newLine)
	return dj.Point{Row: pos.Row + 1, Col: 0}, nil
}

// JoinLine appends the line after row to row and returns the join point.
func (b *Buffer) JoinLine(row int) (dj.Point, error) {
	if err := b.checkRow(row); err != nil {
		return dj.Point{Row: row}, err
	}
	if row+1 >= len(b.lines) {
		return dj.Point{Row: row}, fmt.Errorf("%w: no line after row %d", dj.ErrOutOfBounds, row)
	}
	col := b.lines[row].Length()
	b.lines[row].Join(b.lines[row+1])
	b.lines = append(b.lines[0:row+1], b.lines[row+2:]...)
	return dj.Point{Row: row, Col: col}, nil
}

// InsertLine inserts a line before row; row may equal the line count to append.
func (b *Buffer) InsertLine(row int, text string) error {
	if row < 0 || row > len(b.lines) {
		return fmt.Errorf("%w: row %d of %d", dj.ErrOutOfBounds, row, len(b.lines))
	}
	if strings.ContainsAny(text, "\r\n") {
		return dj.ErrLineTerminator
	}
	b.insertLine(row, NewLine(text))
	return nil
}

func (b *Buffer) insertLine(row int, line *Line) {
	b.lines = append(b.lines, nil)
	copy(b.lines[row+1:], b.lines[row:])
	b.lines[row] = line
}

// DeleteLine removes a line and returns its text.
// Deleting the only line leaves one empty line.
func (b *Buffer) DeleteLine(row int) (string, error) {
	if err := b.checkRow(row); err != nil {
		return "", err
	}
	text := b.lines[row].String()
	if len(b.lines) == 1 {
		b.lines[0] = NewLine("")
		return text, nil
	}
	b.lines = append(b.lines[0:row], b.lines[row+1:]...)
	return text, nil
}

// ReplaceLine replaces the text of a line and returns the old text.
func (b *Buffer) ReplaceLine(row int, text string) (string, error) {
	if err := b.checkRow(row); err != nil {
		return "", err
	}
	if strings.ContainsAny(text, "\r\n") {
		return "", dj.ErrLineTerminator
	}
	old := b.lines[row].String()
	b.lines[row] = NewLine(text)
	return old, nil
}

// ClampPosition returns the nearest valid cursor position to pos.
func (b *Buffer) ClampPosition(pos dj.Point) dj.Point {
	pos.Row = clipToRange(pos.Row, 0, len(b.lines)-1)
	pos.Col = clipToRange(pos.Col, 0, b.lines[pos.Row].Length())
	return pos
}

func clipToRange(i, min, max int) int {
	if i > max {
		i = max
	}
	if i < min {
		i = min
	}
	return i
}

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

// Package types holds the values and interfaces shared by the editor,
// the commander, the operations and the screen.
package types

import "errors"

// Editor modes
type Mode int

const (
	ModeCommand Mode = iota
	ModeInsert
)

func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "insert"
	default:
		return "command"
	}
}

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Insert positions
const (
	InsertAtCursor             = 0
	InsertAfterCursor          = 1
	InsertAtStartOfLine        = 2
	InsertAfterEndOfLine       = 3
	InsertAtNewLineBelowCursor = 4
	InsertAtNewLineAboveCursor = 5
)

var (
	// ErrOutOfBounds reports a position outside the addressable buffer.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrBoundary reports an expected edge case, such as moving past the last line.
	ErrBoundary = errors.New("boundary")
	// ErrLineTerminator reports an attempt to put a line terminator inside a line.
	ErrLineTerminator = errors.New("line terminator inside a line")
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// RenderModel is a read-only snapshot of what should be drawn.
type RenderModel struct {
	Lines          []string // visible lines, tabs expanded and clipped to the viewport
	Cursor         Point    // cursor position on screen
	CursorOnScreen bool     // false when the cursor is outside the viewport
	BufferCursor   Point    // cursor position in the buffer
	Mode           Mode
	Pending        string // command text being typed
	Message        string // status message
	Boundary       bool   // the last key hit a boundary and did nothing
	LineCount      int
	TabSize        int
	FileName       string
	Top            int
	Left           int
}

// Operation is an undoable editing unit.
type Operation interface {
	Perform(e Editable) (Operation, error) // performs the operation and returns its inverse
}

// Editable is the set of services the editor provides to the commander and to operations.
type Editable interface {
	GetCursor() Point
	SetCursor(cursor Point)

	LineCount() int
	LineLength(row int) int
	LineText(row int) string
	FileName() string

	InsertChar(pos Point, c rune) (Point, error)
	DeleteChar(pos Point) (Point, rune, error)
	DeleteCharForward(pos Point) (Point, rune, error)
	ReplaceChar(pos Point, c rune) (rune, error)
	SplitLine(pos Point) (Point, error)
	JoinLine(row int) (Point, error)
	InsertLine(row int, text string) error
	DeleteLine(row int) (string, error)
	ReplaceLine(row int, text string) (string, error)

	Perform(op Operation) error
	BeginGroup()
	EndGroup()
	Undo() error
	Redo() error

	MoveCursor(direction int, multiplier int) error
	MoveToBeginningOfLine()
	MoveToEndOfLine()
	MoveToLine(row int) error
	PageUp() error
	PageDown() error
	AlignTop()
	AlignLeft()

	TabSize() int
	SetTabSize(n int) error

	ReadFile(path string) error
	WriteFile(path string) error
	TouchFile(path string) error
	Clear()
}

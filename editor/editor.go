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
	"io"
	"log/slog"

	"github.com/timburks/djacarta/commander"
	"github.com/timburks/djacarta/operations"
	dj "github.com/timburks/djacarta/types"
)

// Options configure a new Editor.
type Options struct {
	Width   int // text area width in cells
	Height  int // text area height in rows
	TabSize int
	Logger  *slog.Logger
}

// The Editor owns a buffer, its cursor and viewport, and the commander
// that turns keys into edits. It handles one event at a time.
type Editor struct {
	buffer     *Buffer
	cursor     dj.Point
	viewport   *Viewport
	commander  *commander.Commander
	wantCol    int            // visual column kept by vertical motion, -1 if none
	undo       []dj.Operation // inverses of performed operations
	redo       []dj.Operation // inverses of undone operations
	group      []dj.Operation // inverses collected while a group is open
	groupDepth int
	logger     *slog.Logger
}

func NewEditor(opts Options) *Editor {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	e := &Editor{
		buffer:   NewBuffer(),
		viewport: NewViewport(opts.Width, opts.Height, opts.TabSize),
		wantCol:  -1,
		logger:   logger,
	}
	e.commander = commander.NewCommander(e, logger)
	return e
}

// LoadLines replaces the buffer contents with lines.
func (e *Editor) LoadLines(lines []string) {
	e.reset(NewBufferWithLines(lines))
}

func (e *Editor) reset(b *Buffer) {
	e.buffer = b
	e.cursor = dj.Point{}
	e.wantCol = -1
	e.viewport.Top = 0
	e.viewport.Left = 0
	e.undo = nil
	e.redo = nil
	e.group = nil
	e.groupDepth = 0
}

// HandleKey processes one event and returns the resulting snapshot.
func (e *Editor) HandleKey(event dj.Event) dj.RenderModel {
	if event.Type == dj.EventResize {
		e.Resize(event.Width, event.Height)
		return e.Render()
	}
	if err := e.commander.ProcessEvent(&event); err != nil {
		e.logger.Error("processing event", "event", fmt.Sprintf("%+v", event), "err", err)
	}
	e.Scroll()
	return e.Render()
}

// Resize changes the viewport dimensions and keeps the cursor visible.
func (e *Editor) Resize(width, height int) {
	e.viewport.Resize(width, height)
	e.Scroll()
}

// Scroll clamps the cursor and moves the viewport to contain it.
func (e *Editor) Scroll() {
	e.cursor = e.buffer.ClampPosition(e.cursor)
	e.viewport.ScrollToContain(e.buffer.Runes(e.cursor.Row), e.cursor)
}

// Render returns a snapshot of the visible state. It does not modify the editor.
func (e *Editor) Render() dj.RenderModel {
	v := e.viewport
	lines := make([]string, 0, v.Height)
	for row := v.Top; row < v.Top+v.Height && row < e.buffer.LineCount(); row++ {
		lines = append(lines, v.VisibleText(e.buffer.Runes(row)))
	}
	screenCursor, onScreen := v.BufferToScreen(e.buffer.Runes(e.cursor.Row), e.cursor)
	return dj.RenderModel{
		Lines:          lines,
		Cursor:         screenCursor,
		CursorOnScreen: onScreen,
		BufferCursor:   e.cursor,
		Mode:           e.commander.GetMode(),
		Pending:        e.commander.GetPendingText(),
		Message:        e.commander.GetMessage(),
		Boundary:       e.commander.GetBoundary(),
		LineCount:      e.buffer.LineCount(),
		TabSize:        v.TabSize,
		FileName:       e.buffer.FileName(),
		Top:            v.Top,
		Left:           v.Left,
	}
}

func (e *Editor) IsRunning() bool {
	return e.commander.IsRunning()
}

func (e *Editor) Mode() dj.Mode {
	return e.commander.GetMode()
}

// Commander returns the commander that interprets keys for this editor.
func (e *Editor) Commander() *commander.Commander {
	return e.commander
}

// Lines returns a copy of the buffer text.
func (e *Editor) Lines() []string {
	return e.buffer.Lines()
}

func (e *Editor) Bytes() []byte {
	return e.buffer.Bytes()
}

// Viewport returns a copy of the current viewport.
func (e *Editor) Viewport() Viewport {
	return *e.viewport
}

// editable

func (e *Editor) GetCursor() dj.Point {
	return e.cursor
}

func (e *Editor) SetCursor(cursor dj.Point) {
	e.cursor = e.buffer.ClampPosition(cursor)
	e.wantCol = -1
}

func (e *Editor) LineCount() int {
	return e.buffer.LineCount()
}

func (e *Editor) LineLength(row int) int {
	return e.buffer.LineLength(row)
}

func (e *Editor) LineText(row int) string {
	return e.buffer.LineText(row)
}

func (e *Editor) FileName() string {
	return e.buffer.FileName()
}

func (e *Editor) InsertChar(pos dj.Point, c rune) (dj.Point, error) {
	return e.buffer.InsertChar(pos, c)
}

func (e *Editor) DeleteChar(pos dj.Point) (dj.Point, rune, error) {
	return e.buffer.DeleteChar(pos)
}

func (e *Editor) DeleteCharForward(pos dj.Point) (dj.Point, rune, error) {
	return e.buffer.DeleteCharForward(pos)
}

func (e *Editor) ReplaceChar(pos dj.Point, c rune) (rune, error) {
	return e.buffer.ReplaceChar(pos, c)
}

func (e *Editor) SplitLine(pos dj.Point) (dj.Point, error) {
	return e.buffer.SplitLine(pos)
}

func (e *Editor) JoinLine(row int) (dj.Point, error) {
	return e.buffer.JoinLine(row)
}

func (e *Editor) InsertLine(row int, text string) error {
	return e.buffer.InsertLine(row, text)
}

func (e *Editor) DeleteLine(row int) (string, error) {
	return e.buffer.DeleteLine(row)
}

func (e *Editor) ReplaceLine(row int, text string) (string, error) {
	return e.buffer.ReplaceLine(row, text)
}

// Perform performs an operation and saves its inverse for undo.
func (e *Editor) Perform(op dj.Operation) error {
	inverse, err := op.Perform(e)
	if err != nil {
		return err
	}
	e.redo = nil
	if inverse == nil {
		return nil
	}
	if e.groupDepth > 0 {
		e.group = append(e.group, inverse)
	} else {
		e.undo = append(e.undo, inverse)
	}
	return nil
}

// BeginGroup starts collecting performed operations into a single undo step.
func (e *Editor) BeginGroup() {
	if e.groupDepth == 0 {
		e.group = nil
	}
	e.groupDepth++
}

func (e *Editor) EndGroup() {
	if e.groupDepth == 0 {
		return
	}
	e.groupDepth--
	if e.groupDepth == 0 && len(e.group) > 0 {
		e.undo = append(e.undo, operations.Reverse(e.group))
		e.group = nil
	}
}

// commitGroup closes the steps collected so far in an open group into one undo step.
// The group stays open and collects whatever is performed next.
func (e *Editor) commitGroup() {
	if len(e.group) > 0 {
		e.undo = append(e.undo, operations.Reverse(e.group))
		e.group = nil
	}
}

func (e *Editor) Undo() error {
	e.commitGroup()
	if len(e.undo) == 0 {
		return dj.ErrBoundary
	}
	last := len(e.undo) - 1
	op := e.undo[last]
	inverse, err := op.Perform(e)
	if err != nil {
		return fmt.Errorf("undo: %w", err)
	}
	e.undo = e.undo[0:last]
	if inverse != nil {
		e.redo = append(e.redo, inverse)
	}
	return nil
}

func (e *Editor) Redo() error {
	e.commitGroup()
	if len(e.redo) == 0 {
		return dj.ErrBoundary
	}
	last := len(e.redo) - 1
	op := e.redo[last]
	inverse, err := op.Perform(e)
	if err != nil {
		return fmt.Errorf("redo: %w", err)
	}
	e.redo = e.redo[0:last]
	if inverse != nil {
		e.undo = append(e.undo, inverse)
	}
	return nil
}

// MoveCursor moves up to multiplier steps. It returns ErrBoundary if the cursor could not move at all.
func (e *Editor) MoveCursor(direction int, multiplier int) error {
	if multiplier < 1 {
		multiplier = 1
	}
	moved := false
	for i := 0; i < multiplier; i++ {
		if !e.step(direction) {
			break
		}
		moved = true
	}
	if !moved {
		return dj.ErrBoundary
	}
	return nil
}

func (e *Editor) step(direction int) bool {
	switch direction {
	case dj.MoveLeft:
		if e.cursor.Col == 0 {
			return false
		}
		e.cursor.Col--
		e.wantCol = -1
	case dj.MoveRight:
		if e.cursor.Col >= e.buffer.LineLength(e.cursor.Row) {
			return false
		}
		e.cursor.Col++
		e.wantCol = -1
	case dj.MoveUp:
		if e.cursor.Row == 0 {
			return false
		}
		e.moveToRow(e.cursor.Row - 1)
	case dj.MoveDown:
		if e.cursor.Row >= e.buffer.LineCount()-1 {
			return false
		}
		e.moveToRow(e.cursor.Row + 1)
	default:
		return false
	}
	return true
}

// moveToRow keeps the visual column of the cursor while changing rows.
func (e *Editor) moveToRow(row int) {
	if e.wantCol < 0 {
		e.wantCol = e.viewport.VisualColumn(e.buffer.Runes(e.cursor.Row), e.cursor.Col)
	}
	e.cursor.Row = row
	e.cursor.Col = e.viewport.ColumnForVisual(e.buffer.Runes(row), e.wantCol)
}

func (e *Editor) MoveToBeginningOfLine() {
	e.SetCursor(dj.Point{Row: e.cursor.Row, Col: 0})
}

func (e *Editor) MoveToEndOfLine() {
	e.SetCursor(dj.Point{Row: e.cursor.Row, Col: e.buffer.LineLength(e.cursor.Row)})
}

// MoveToLine moves to the start of a row, clipped to the buffer.
func (e *Editor) MoveToLine(row int) error {
	row = clipToRange(row, 0, e.buffer.LineCount()-1)
	e.SetCursor(dj.Point{Row: row, Col: 0})
	return nil
}

func (e *Editor) PageUp() error {
	if e.cursor.Row == 0 {
		return dj.ErrBoundary
	}
	e.moveToRow(max(e.cursor.Row-e.viewport.Height, 0))
	return nil
}

func (e *Editor) PageDown() error {
	last := e.buffer.LineCount() - 1
	if e.cursor.Row == last {
		return dj.ErrBoundary
	}
	e.moveToRow(min(e.cursor.Row+e.viewport.Height, last))
	return nil
}

// AlignTop scrolls so that the cursor line is the first visible line.
func (e *Editor) AlignTop() {
	e.viewport.Top = e.cursor.Row
}

// AlignLeft scrolls so that the cursor is in the first visible column.
func (e *Editor) AlignLeft() {
	e.viewport.Left = e.viewport.VisualColumn(e.buffer.Runes(e.cursor.Row), e.cursor.Col)
}

func (e *Editor) TabSize() int {
	return e.viewport.TabSize
}

func (e *Editor) SetTabSize(n int) error {
	if n < 1 || n > MaxTabSize {
		return fmt.Errorf("tab size %d is not between 1 and %d", n, MaxTabSize)
	}
	e.viewport.TabSize = n
	return nil
}

// Clear replaces the buffer with an empty one.
func (e *Editor) Clear() {
	e.reset(NewBuffer())
}

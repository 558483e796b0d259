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
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/timburks/djacarta/operations"
	dj "github.com/timburks/djacarta/types"
)

// A command receives the count typed before it, or 0 if there was none.
type command func(count int) error

// The Commander converts user input into commands for the editor.
type Commander struct {
	editor      dj.Editable
	logger      *slog.Logger
	mode        dj.Mode
	running     bool
	pending     []rune // keys typed in command mode, or a command line starting with ':', '(' or '/'
	message     string // status message
	boundary    bool   // the last key hit a boundary
	insertStart dj.Point
	commands    map[string]command

	register   []string // lines yanked or deleted, for p and P
	lastSearch string

	// repeat
	last      change // the last change, repeated by .
	inserting change // the command that started the current insert session
	replaying bool
}

// A change is a command that modified the buffer. Changes that enter insert
// mode also keep the keys typed before Esc.
type change struct {
	name  string
	count int
	keys  []dj.Event
}

// commands that change the buffer without entering insert mode
var changes = map[string]bool{
	"x": true, "X": true, "J": true, "dd": true, "dw": true, "p": true, "P": true, "~": true,
}

func NewCommander(e dj.Editable, logger *slog.Logger) *Commander {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c := &Commander{editor: e, logger: logger, mode: dj.ModeCommand, running: true}
	c.commands = map[string]command{
		"h":  c.move(dj.MoveLeft),
		"j":  c.move(dj.MoveDown),
		"k":  c.move(dj.MoveUp),
		"l":  c.move(dj.MoveRight),
		"0":  func(int) error { e.MoveToBeginningOfLine(); return nil },
		"$":  func(int) error { e.MoveToEndOfLine(); return nil },
		"i":  c.insert(dj.InsertAtCursor),
		"a":  c.insert(dj.InsertAfterCursor),
		"I":  c.insert(dj.InsertAtStartOfLine),
		"A":  c.insert(dj.InsertAfterEndOfLine),
		"o":  c.insert(dj.InsertAtNewLineBelowCursor),
		"O":  c.insert(dj.InsertAtNewLineAboveCursor),
		"x":  c.deleteCharacters(true),
		"X":  c.deleteCharacters(false),
		"J":  c.joinLines,
		"dd": c.deleteLines,
		"gg": c.gotoLine(0),
		"G":  c.gotoLine(-1),
		"u":  c.undo,
		"~":  c.reverseCase,
		"yy": c.yankLines,
		"p":  c.paste(true),
		"P":  c.paste(false),
		"w":  c.wordMotion(true),
		"b":  c.wordMotion(false),
		"dw": c.deleteWords,
		"cw": c.changeWords,
		"n":  c.searchNext,
		".":  c.repeatChange,
	}
	return c
}

func (c *Commander) GetMode() dj.Mode {
	return c.mode
}

func (c *Commander) IsRunning() bool {
	return c.running
}

func (c *Commander) GetPendingText() string {
	return string(c.pending)
}

func (c *Commander) GetMessage() string {
	return c.message
}

// GetBoundary reports whether the last event was absorbed as a boundary condition.
func (c *Commander) GetBoundary() bool {
	return c.boundary
}

// InsertStart is the cursor position where the current or last insert began.
func (c *Commander) InsertStart() dj.Point {
	return c.insertStart
}

func (c *Commander) ProcessEvent(event *dj.Event) error {
	c.boundary = false
	switch event.Type {
	case dj.EventKey:
		return c.processKey(*event)
	default:
		return nil
	}
}

func (c *Commander) processKey(event dj.Event) error {
	if event.Key == dj.KeySpace {
		event.Key = dj.KeyNone
		event.Ch = ' '
	}
	switch c.mode {
	case dj.ModeInsert:
		return c.processKeyInsertMode(event)
	default:
		if c.inCommandLine() {
			return c.processKeyCommandLine(event)
		}
		return c.processKeyCommandMode(event)
	}
}

// report absorbs boundary conditions and turns other errors into the status message.
func (c *Commander) report(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, dj.ErrBoundary) {
		c.boundary = true
		return nil
	}
	c.message = err.Error()
	return err
}

func (c *Commander) processKeyInsertMode(event dj.Event) error {
	e := c.editor
	var err error
	if event.Key != dj.KeyEsc && !c.replaying {
		c.inserting.keys = append(c.inserting.keys, event)
	}
	switch event.Key {
	case dj.KeyEsc: // end an insert session
		e.EndGroup()
		c.mode = dj.ModeCommand
		if !c.replaying {
			c.last = c.inserting
		}
	case dj.KeyEnter:
		err = e.Perform(&operations.InsertCharacter{Cursor: e.GetCursor(), Character: '\n'})
	case dj.KeyBackspace:
		err = e.Perform(&operations.DeleteCharacter{Cursor: e.GetCursor()})
	case dj.KeyDelete:
		err = e.Perform(&operations.DeleteCharacter{Cursor: e.GetCursor(), Forward: true})
	case dj.KeyTab:
		err = e.Perform(&operations.InsertCharacter{Cursor: e.GetCursor(), Character: '\t'})
	case dj.KeyArrowUp, dj.KeyArrowDown, dj.KeyArrowLeft, dj.KeyArrowRight,
		dj.KeyHome, dj.KeyEnd, dj.KeyPgup, dj.KeyPgdn:
		err = c.navigate(event.Key, 1)
	case dj.KeyNone:
		if event.Ch != 0 {
			err = e.Perform(&operations.InsertCharacter{Cursor: e.GetCursor(), Character: event.Ch})
		}
	}
	return c.report(err)
}

func (c *Commander) processKeyCommandMode(event dj.Event) error {
	e := c.editor
	switch event.Key {
	case dj.KeyNone:
		if event.Ch != 0 {
			return c.appendCommandKey(event.Ch)
		}
		return nil
	case dj.KeyEsc:
		c.pending = nil
		c.message = ""
		return nil
	case dj.KeyTab:
		c.pending = []rune{':'}
		return nil
	case dj.KeyBackspace:
		if len(c.pending) > 0 {
			c.pending = nil
			return nil
		}
		return c.report(e.MoveCursor(dj.MoveLeft, 1))
	}
	count := c.takeCount()
	switch event.Key {
	case dj.KeyEnter:
		err := e.MoveCursor(dj.MoveDown, count)
		if err == nil {
			e.MoveToBeginningOfLine()
		}
		return c.report(err)
	case dj.KeyDelete:
		return c.report(c.commands["x"](count))
	case dj.KeyCtrlR:
		return c.report(c.redo(count))
	default:
		return c.report(c.navigate(event.Key, count))
	}
}

// takeCount clears the pending keys and returns the count they held.
func (c *Commander) takeCount() int {
	count, _ := splitCount(string(c.pending))
	c.pending = nil
	return count
}

func (c *Commander) navigate(key dj.Key, count int) error {
	e := c.editor
	switch key {
	case dj.KeyArrowUp:
		return e.MoveCursor(dj.MoveUp, count)
	case dj.KeyArrowDown:
		return e.MoveCursor(dj.MoveDown, count)
	case dj.KeyArrowLeft:
		return e.MoveCursor(dj.MoveLeft, count)
	case dj.KeyArrowRight:
		return e.MoveCursor(dj.MoveRight, count)
	case dj.KeyHome:
		e.MoveToBeginningOfLine()
	case dj.KeyEnd:
		e.MoveToEndOfLine()
	case dj.KeyPgup:
		return e.PageUp()
	case dj.KeyPgdn:
		return e.PageDown()
	}
	return nil
}

// splitCount separates a leading count from a command name.
// A leading '0' is a command, not a count.
func splitCount(text string) (int, string) {
	i := 0
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		if i == 0 && text[i] == '0' {
			break
		}
		i++
	}
	if i == 0 {
		return 0, text
	}
	n, err := strconv.Atoi(text[0:i])
	if err != nil {
		return 0, text[i:]
	}
	return n, text[i:]
}

func (c *Commander) appendCommandKey(ch rune) error {
	c.pending = append(c.pending, ch)
	text := string(c.pending)
	count, name := splitCount(text)
	switch {
	case name == "":
		// only a count so far
		return nil
	case name == ":" || name == "(" || name == "/":
		c.pending = []rune(name)
		return nil
	case name == "r":
		// waiting for the replacement character
		return nil
	}
	if cmd, ok := c.lookup(name); ok {
		c.pending = nil
		c.logger.Debug("dispatch", "command", name, "count", count)
		err := cmd(count)
		switch {
		case c.mode == dj.ModeInsert:
			c.inserting = change{name: name, count: count}
		case err == nil && (changes[name] || strings.HasPrefix(name, "r")):
			c.last = change{name: name, count: count}
		}
		return c.report(err)
	}
	for known := range c.commands {
		if strings.HasPrefix(known, name) {
			return nil
		}
	}
	c.pending = nil
	c.message = fmt.Sprintf("unknown command %q", text)
	return nil
}

// lookup finds the command for a name. r takes the character that follows it.
func (c *Commander) lookup(name string) (command, bool) {
	if cmd, ok := c.commands[name]; ok {
		return cmd, true
	}
	if r := []rune(name); len(r) == 2 && r[0] == 'r' {
		return c.replaceCharacters(r[1]), true
	}
	return nil, false
}

func times(count int) int {
	if count < 1 {
		return 1
	}
	return count
}

// repeat calls f count times as a single undo step.
// It stops at the first failure, which is reported only if nothing was done.
func (c *Commander) repeat(count int, f func() error) error {
	c.editor.BeginGroup()
	defer c.editor.EndGroup()
	for i := 0; i < times(count); i++ {
		if err := f(); err != nil {
			if i == 0 {
				return err
			}
			break
		}
	}
	return nil
}

func (c *Commander) move(direction int) command {
	return func(count int) error {
		return c.editor.MoveCursor(direction, times(count))
	}
}

func (c *Commander) insert(position int) command {
	return func(int) error {
		e := c.editor
		e.BeginGroup()
		cursor := e.GetCursor()
		var err error
		switch position {
		case dj.InsertAfterCursor:
			if cursor.Col < e.LineLength(cursor.Row) {
				cursor.Col++
			}
			e.SetCursor(cursor)
		case dj.InsertAtStartOfLine:
			e.MoveToBeginningOfLine()
		case dj.InsertAfterEndOfLine:
			e.MoveToEndOfLine()
		case dj.InsertAtNewLineBelowCursor:
			err = e.Perform(&operations.InsertLine{Row: cursor.Row + 1})
		case dj.InsertAtNewLineAboveCursor:
			err = e.Perform(&operations.InsertLine{Row: cursor.Row})
		}
		if err != nil {
			e.EndGroup()
			return err
		}
		c.insertStart = e.GetCursor()
		c.mode = dj.ModeInsert
		c.message = ""
		return nil
	}
}

func (c *Commander) deleteCharacters(forward bool) command {
	return func(count int) error {
		return c.repeat(count, func() error {
			return c.editor.Perform(&operations.DeleteCharacter{Cursor: c.editor.GetCursor(), Forward: forward})
		})
	}
}

func (c *Commander) joinLines(count int) error {
	e := c.editor
	return c.repeat(count, func() error {
		row := e.GetCursor().Row
		if row+1 >= e.LineCount() {
			return dj.ErrBoundary
		}
		return e.Perform(&operations.JoinLine{Row: row})
	})
}

func (c *Commander) deleteLines(count int) error {
	e := c.editor
	var deleted []string
	err := c.repeat(count, func() error {
		if e.LineCount() == 1 && e.LineLength(0) == 0 {
			return dj.ErrBoundary
		}
		row := e.GetCursor().Row
		text := e.LineText(row)
		if err := e.Perform(&operations.DeleteLine{Row: row}); err != nil {
			return err
		}
		deleted = append(deleted, text)
		return nil
	})
	if len(deleted) > 0 {
		c.register = deleted
	}
	return err
}

// gotoLine moves to the line given by the count, or to row when there is no count.
// A negative row means the last line.
func (c *Commander) gotoLine(row int) command {
	return func(count int) error {
		e := c.editor
		target := row
		switch {
		case count > 0:
			target = count - 1
		case row < 0:
			target = e.LineCount() - 1
		}
		return e.MoveToLine(target)
	}
}

func (c *Commander) undo(count int) error {
	for i := 0; i < times(count); i++ {
		if err := c.editor.Undo(); err != nil {
			if i == 0 {
				return err
			}
			break
		}
	}
	return nil
}

// repeatChange performs the last change again, with a new count if one is given.
func (c *Commander) repeatChange(count int) error {
	last := c.last
	if last.name == "" {
		return dj.ErrBoundary
	}
	if count == 0 {
		count = last.count
	}
	cmd, ok := c.lookup(last.name)
	if !ok {
		return fmt.Errorf("cannot repeat %q", last.name)
	}
	c.replaying = true
	defer func() { c.replaying = false }()
	if err := cmd(count); err != nil {
		return err
	}
	if c.mode == dj.ModeInsert {
		for _, event := range last.keys {
			c.processKeyInsertMode(event)
		}
		c.processKeyInsertMode(dj.KeyEvent(dj.KeyEsc))
	}
	c.last = change{name: last.name, count: count, keys: last.keys}
	return nil
}

func (c *Commander) redo(count int) error {
	for i := 0; i < times(count); i++ {
		if err := c.editor.Redo(); err != nil {
			if i == 0 {
				return err
			}
			break
		}
	}
	return nil
}

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
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/timburks/djacarta/operations"
	dj "github.com/timburks/djacarta/types"
)

func (c *Commander) inCommandLine() bool {
	if len(c.pending) == 0 {
		return false
	}
	switch c.pending[0] {
	case ':', '(', '/':
		return true
	}
	return false
}

// processKeyCommandLine edits a ':' command, '(' lisp expression or '/' search until Enter or Esc.
func (c *Commander) processKeyCommandLine(event dj.Event) error {
	switch event.Key {
	case dj.KeyEsc:
		c.pending = nil
	case dj.KeyEnter:
		text := string(c.pending)
		c.pending = nil
		switch text[0] {
		case '(':
			c.message = c.ParseEval(text)
			return nil
		case '/':
			return c.report(c.search(text[1:]))
		}
		return c.report(c.performCommand(text[1:]))
	case dj.KeyBackspace:
		// removing the prompt character cancels the command
		c.pending = c.pending[0 : len(c.pending)-1]
	case dj.KeyNone:
		if event.Ch != 0 {
			c.pending = append(c.pending, event.Ch)
		}
	}
	return nil
}

func (c *Commander) performCommand(text string) error {
	e := c.editor
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	name, arg, _ := strings.Cut(text, " ")
	arg = strings.TrimSpace(arg)
	c.logger.Debug("command", "name", name, "arg", arg)

	if n, err := strconv.Atoi(name); err == nil {
		return e.MoveToLine(n - 1)
	}
	switch name {
	case "q":
		c.running = false
	case "w", "s":
		if name == "s" && arg == "" {
			return errors.New("s requires a file name")
		}
		if err := e.WriteFile(expandPath(arg)); err != nil {
			return err
		}
		c.message = fmt.Sprintf("wrote %s", e.FileName())
	case "ss":
		if e.FileName() == "" {
			return errors.New("no file name")
		}
		if err := e.WriteFile(""); err != nil {
			return err
		}
		c.message = fmt.Sprintf("wrote %s", e.FileName())
	case "wq":
		if err := e.WriteFile(expandPath(arg)); err != nil {
			return err
		}
		c.running = false
	case "o":
		if arg == "" {
			return errors.New("o requires a file name")
		}
		if err := e.ReadFile(expandPath(arg)); err != nil {
			return err
		}
		c.message = fmt.Sprintf("opened %s", e.FileName())
	case "t":
		if arg == "" {
			return errors.New("t requires a file name")
		}
		return e.TouchFile(expandPath(arg))
	case "cls":
		e.Clear()
		c.message = ""
	case "tabsz":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid tab size %q", arg)
		}
		return e.SetTabSize(n)
	case "$":
		return e.MoveToLine(e.LineCount() - 1)
	case "h":
		e.MoveToBeginningOfLine()
	case "e":
		e.MoveToEndOfLine()
		e.AlignLeft()
	case "va":
		e.AlignTop()
	case "ha":
		e.AlignLeft()
	case "pu":
		return e.PageUp()
	case "pd":
		return e.PageDown()
	case "g":
		// rows count from 0 here, as in the status bar
		n, err := strconv.ParseInt(arg, 0, 0)
		if err != nil {
			return fmt.Errorf("invalid line number %q", arg)
		}
		if n < 0 || int(n) >= e.LineCount() {
			return dj.ErrBoundary
		}
		if err := e.MoveToLine(int(n)); err != nil {
			return err
		}
		e.AlignTop()
	case "eval":
		var sb strings.Builder
		for row := 0; row < e.LineCount(); row++ {
			sb.WriteString(e.LineText(row))
			sb.WriteByte('\n')
		}
		c.message = c.ParseEval("(begin " + sb.String() + ")")
	default:
		if hex, ok := strings.CutPrefix(name, "u-"); ok {
			return c.insertCodePoint(hex)
		}
		return fmt.Errorf("unknown command %q", name)
	}
	return nil
}

// insertCodePoint inserts the character with a hexadecimal code point at the cursor.
func (c *Commander) insertCodePoint(hex string) error {
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || !utf8.ValidRune(rune(n)) {
		return fmt.Errorf("invalid code point %q", hex)
	}
	e := c.editor
	return e.Perform(&operations.InsertCharacter{Cursor: e.GetCursor(), Character: rune(n)})
}

// expandPath replaces a leading ~ with the home directory.
func expandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

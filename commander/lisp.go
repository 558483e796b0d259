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
	"sync"

	"github.com/steelseries/golisp"

	"github.com/timburks/djacarta/operations"
	dj "github.com/timburks/djacarta/types"
)

// golisp primitives are global, so they act on the commander currently evaluating.
var (
	evalMutex sync.Mutex
	current   *Commander
)

func init() {
	golisp.MakePrimitiveFunction("up", "*", motion(dj.MoveUp))
	golisp.MakePrimitiveFunction("down", "*", motion(dj.MoveDown))
	golisp.MakePrimitiveFunction("left", "*", motion(dj.MoveLeft))
	golisp.MakePrimitiveFunction("right", "*", motion(dj.MoveRight))
	golisp.MakePrimitiveFunction("goto", "*", gotoImpl)
	golisp.MakePrimitiveFunction("row", "0", rowImpl)
	golisp.MakePrimitiveFunction("col", "0", colImpl)
	golisp.MakePrimitiveFunction("line-count", "0", lineCountImpl)
	golisp.MakePrimitiveFunction("line-text", "*", lineTextImpl)
	golisp.MakePrimitiveFunction("insert", "1", insertImpl)
	golisp.MakePrimitiveFunction("split-line", "0", splitLineImpl)
	golisp.MakePrimitiveFunction("join-line", "0", joinLineImpl)
	golisp.MakePrimitiveFunction("delete-char", "*", deleteCharImpl)
	golisp.MakePrimitiveFunction("delete-line", "0", deleteLineImpl)
	golisp.MakePrimitiveFunction("undo", "0", undoImpl)
	golisp.MakePrimitiveFunction("tabsize", "*", tabSizeImpl)
	golisp.MakePrimitiveFunction("message", "1", messageImpl)
}

// ParseEval evaluates a lisp expression against the editor and returns the printed result.
// All edits made by the expression form a single undo step.
func (c *Commander) ParseEval(text string) string {
	evalMutex.Lock()
	defer evalMutex.Unlock()
	current = c
	defer func() { current = nil }()

	c.editor.BeginGroup()
	defer c.editor.EndGroup()

	value, err := golisp.ParseAndEval(text)
	if err != nil {
		c.logger.Warn("lisp", "text", text, "err", err)
		return err.Error()
	}
	c.logger.Debug("lisp", "text", text, "value", golisp.String(value))
	return golisp.String(value)
}

func editable() (*Commander, error) {
	if current == nil {
		return nil, errors.New("no editor")
	}
	return current, nil
}

// intArg returns the integer value of the nth argument, or def if it is missing.
func intArg(args *golisp.Data, n int, def int) int {
	for i := 0; i < n; i++ {
		args = golisp.Cdr(args)
	}
	value := golisp.Car(args)
	if value == nil {
		return def
	}
	if golisp.IntegerP(value) {
		return int(golisp.IntegerValue(value))
	}
	if golisp.FloatP(value) {
		return int(golisp.FloatValue(value))
	}
	return def
}

// result converts an editing error to a lisp value: 1 on success, 0 at a boundary.
func result(err error) (*golisp.Data, error) {
	if err == nil {
		return golisp.IntegerWithValue(1), nil
	}
	if errors.Is(err, dj.ErrBoundary) {
		return golisp.IntegerWithValue(0), nil
	}
	return nil, err
}

func motion(direction int) func(*golisp.Data, *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		c, err := editable()
		if err != nil {
			return nil, err
		}
		return result(c.editor.MoveCursor(direction, intArg(args, 0, 1)))
	}
}

// (goto row [col]) with a 1-based row and a 0-based column
func gotoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := editable()
	if err != nil {
		return nil, err
	}
	row := intArg(args, 0, 1) - 1
	col := intArg(args, 1, 0)
	c.editor.SetCursor(dj.Point{Row: row, Col: col})
	return golisp.IntegerWithValue(int64(c.editor.GetCursor().Row + 1)), nil
}

func rowImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := editable()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(c.editor.GetCursor().Row + 1)), nil
}

func colImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := editable()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(c.editor.GetCursor().Col)), nil
}

func lineCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := editable()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(c.editor.LineCount())), nil
}

// (line-text [row]) with a 1-based row, defaulting to the cursor row
func lineTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := editable()
	if err != nil {
		return nil, err
	}
	row := intArg(args, 0, c.editor.GetCursor().Row+1) - 1
	return golisp.StringWithValue(c.editor.LineText(row)), nil
}

func insertImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := editable()
	if err != nil {
		return nil, err
	}
	value := golisp.Car(args)
	if !golisp.StringP(value) {
		return nil, errors.New("insert requires a string argument")
	}
	e := c.editor
	return result(e.Perform(operations.InsertText(e.GetCursor(), golisp.StringValue(value))))
}

func splitLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := editable()
	if err != nil {
		return nil, err
	}
	e := c.editor
	return result(e.Perform(&operations.InsertCharacter{Cursor: e.GetCursor(), Character: '\n'}))
}

func joinLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := editable()
	if err != nil {
		return nil, err
	}
	return result(c.joinLines(1))
}

// (delete-char [count]) deletes backwards from the cursor
func deleteCharImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := editable()
	if err != nil {
		return nil, err
	}
	return result(c.deleteCharacters(false)(intArg(args, 0, 1)))
}

func deleteLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := editable()
	if err != nil {
		return nil, err
	}
	return result(c.deleteLines(1))
}

func undoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := editable()
	if err != nil {
		return nil, err
	}
	return result(c.editor.Undo())
}

// (tabsize [n]) sets the tab size if n is given and returns the current tab size
func tabSizeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := editable()
	if err != nil {
		return nil, err
	}
	if n := intArg(args, 0, 0); n != 0 {
		if err := c.editor.SetTabSize(n); err != nil {
			return nil, err
		}
	}
	return golisp.IntegerWithValue(int64(c.editor.TabSize())), nil
}

func messageImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := editable()
	if err != nil {
		return nil, err
	}
	value := golisp.Car(args)
	if golisp.StringP(value) {
		c.message = golisp.StringValue(value)
	} else {
		c.message = golisp.String(value)
	}
	return value, nil
}

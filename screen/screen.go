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
package screen

import (
	"sync"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	dj "github.com/timburks/djacarta/types"
)

// The Screen draws render models to the terminal and reads key events.
// Opening a Screen puts the terminal in raw mode; Close restores it.
type Screen struct {
	statusBar bool
	closeOnce sync.Once
}

func Open(statusBar bool) (*Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	return &Screen{statusBar: statusBar}, nil
}

// Close restores the terminal. It is safe to call more than once.
func (s *Screen) Close() {
	s.closeOnce.Do(termbox.Close)
}

// TextSize returns the size of the area available for buffer text.
func (s *Screen) TextSize() dj.Size {
	cols, rows := termbox.Size()
	return s.textSize(cols, rows)
}

func (s *Screen) textSize(cols, rows int) dj.Size {
	if s.statusBar {
		rows--
	}
	return dj.Size{Rows: max(rows, 1), Cols: max(cols, 1)}
}

func (s *Screen) Render(m dj.RenderModel) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	cols, rows := termbox.Size()
	text := s.textSize(cols, rows)
	for y := 0; y < text.Rows; y++ {
		if y < len(m.Lines) {
			drawText(0, y, m.Lines[y], termbox.ColorDefault, termbox.ColorDefault)
		} else if m.Top+y >= m.LineCount {
			termbox.SetCell(0, y, '~', termbox.ColorBlue, termbox.ColorDefault)
		}
	}
	if s.statusBar {
		bar := StatusBarText(m, cols)
		drawText(0, rows-1, bar, termbox.ColorBlack, termbox.ColorWhite)
	}
	switch {
	case s.statusBar && isCommandLine(m.Pending):
		termbox.SetCursor(runewidth.StringWidth(commandPrompt+m.Pending), rows-1)
	case m.CursorOnScreen:
		termbox.SetCursor(m.Cursor.Col, m.Cursor.Row)
	default:
		termbox.HideCursor()
	}
	termbox.Flush()
}

func drawText(x, y int, text string, fg, bg termbox.Attribute) {
	for _, c := range text {
		termbox.SetCell(x, y, c, fg, bg)
		w := runewidth.RuneWidth(c)
		if w < 1 {
			w = 1
		}
		x += w
	}
}

func (s *Screen) GetNextEvent() dj.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventKey:
		if event.Ch != 0 {
			return dj.CharEvent(event.Ch)
		}
		return dj.KeyEvent(key(event.Key))
	case termbox.EventResize:
		termbox.Flush()
		text := s.textSize(event.Width, event.Height)
		return dj.Event{Type: dj.EventResize, Width: text.Cols, Height: text.Rows}
	default:
		return dj.Event{Type: dj.EventOther}
	}
}

func key(k termbox.Key) dj.Key {
	switch k {
	case termbox.KeyEsc:
		return dj.KeyEsc
	case termbox.KeyEnter:
		return dj.KeyEnter
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return dj.KeyBackspace
	case termbox.KeyTab:
		return dj.KeyTab
	case termbox.KeyDelete:
		return dj.KeyDelete
	case termbox.KeySpace:
		return dj.KeySpace
	case termbox.KeyArrowUp:
		return dj.KeyArrowUp
	case termbox.KeyArrowDown:
		return dj.KeyArrowDown
	case termbox.KeyArrowLeft:
		return dj.KeyArrowLeft
	case termbox.KeyArrowRight:
		return dj.KeyArrowRight
	case termbox.KeyHome:
		return dj.KeyHome
	case termbox.KeyEnd:
		return dj.KeyEnd
	case termbox.KeyPgup:
		return dj.KeyPgup
	case termbox.KeyPgdn:
		return dj.KeyPgdn
	case termbox.KeyCtrlR:
		return dj.KeyCtrlR
	default:
		return dj.KeyUnsupported
	}
}

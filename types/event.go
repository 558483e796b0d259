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

package types

// Event types
const (
	EventKey    = 0
	EventResize = 1
	EventOther  = 2
)

// Key identifies non-printing keys. Printable input arrives in Event.Ch with Key == KeyNone.
type Key int

const (
	KeyNone Key = iota
	KeyEsc
	KeyEnter
	KeyBackspace
	KeyTab
	KeyDelete
	KeySpace
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyCtrlR
	KeyUnsupported
)

type Event struct {
	Type   int
	Key    Key
	Ch     rune
	Width  int // for resize events
	Height int // for resize events
}

// KeyEvent is a convenience for building a key event from a special key.
func KeyEvent(k Key) Event {
	return Event{Type: EventKey, Key: k}
}

// CharEvent is a convenience for building a key event from a printable rune.
func CharEvent(ch rune) Event {
	return Event{Type: EventKey, Ch: ch}
}

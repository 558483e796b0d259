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
package operations

import (
	dj "github.com/timburks/djacarta/types"
)

// ReplaceCharacter overwrites the character at Cursor and leaves the cursor there.
type ReplaceCharacter struct {
	Cursor    dj.Point
	Character rune
}

func (op *ReplaceCharacter) Perform(e dj.Editable) (dj.Operation, error) {
	old, err := e.ReplaceChar(op.Cursor, op.Character)
	if err != nil {
		return nil, err
	}
	e.SetCursor(op.Cursor)
	return &ReplaceCharacter{Cursor: op.Cursor, Character: old}, nil
}

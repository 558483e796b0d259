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
	"fmt"

	dj "github.com/timburks/djacarta/types"
)

// Sequence performs a list of operations in order.
// Its inverse performs the inverses in reverse order.
type Sequence struct {
	Operations []dj.Operation
}

func (op *Sequence) Perform(e dj.Editable) (dj.Operation, error) {
	inverses := make([]dj.Operation, 0, len(op.Operations))
	for _, o := range op.Operations {
		inverse, err := o.Perform(e)
		if err != nil {
			// leave the buffer as it was before the sequence started
			undo := &Sequence{Operations: reversed(inverses)}
			if _, rollbackErr := undo.Perform(e); rollbackErr != nil {
				return nil, fmt.Errorf("%w (rollback failed: %v)", err, rollbackErr)
			}
			return nil, err
		}
		if inverse != nil {
			inverses = append(inverses, inverse)
		}
	}
	return &Sequence{Operations: reversed(inverses)}, nil
}

// Reverse builds the inverse of a list of inverses collected in the order they were made.
func Reverse(inverses []dj.Operation) *Sequence {
	return &Sequence{Operations: reversed(inverses)}
}

func reversed(ops []dj.Operation) []dj.Operation {
	result := make([]dj.Operation, len(ops))
	for i, op := range ops {
		result[len(ops)-1-i] = op
	}
	return result
}

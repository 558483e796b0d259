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
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ReadFile replaces the buffer with the contents of a file.
// A final newline ends the last line rather than starting a new one.
func (e *Editor) ReadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	buffer := NewBuffer()
	buffer.LoadBytes(bytes.TrimSuffix(b, []byte("\n")))
	buffer.SetFileName(path)
	e.reset(buffer)
	e.logger.Info("read file", "path", path, "lines", buffer.LineCount())
	return nil
}

// WriteFile saves the buffer to path, or to the buffer's file if path is empty.
func (e *Editor) WriteFile(path string) error {
	if path == "" {
		path = e.buffer.FileName()
	}
	if path == "" {
		return errors.New("no file name")
	}
	b := append(e.buffer.Bytes(), '\n')
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	e.buffer.SetFileName(path)
	e.logger.Info("wrote file", "path", path, "bytes", len(b))
	return nil
}

// TouchFile creates an empty file at path if nothing exists there.
func (e *Editor) TouchFile(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return f.Close()
}

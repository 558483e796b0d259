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
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/timburks/djacarta/config"
	"github.com/timburks/djacarta/editor"
	"github.com/timburks/djacarta/screen"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "djacarta:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	filenames := make([]string, 0)
	var script, configPath string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--eval": // eval a script against the file and print the result
			i++
			if i >= len(args) {
				return errors.New("no file specified for --eval option")
			}
			script = args[i]
		case "--config":
			i++
			if i >= len(args) {
				return errors.New("no file specified for --config option")
			}
			configPath = args[i]
		default:
			filenames = append(filenames, args[i])
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, closeLog := openLog(cfg, os.Stderr)
	defer closeLog()
	for _, warning := range cfg.Warnings {
		logger.Warn(warning)
	}

	// The editor manages all text manipulation.
	e := editor.NewEditor(editor.Options{TabSize: cfg.TabSize, Logger: logger})

	if len(filenames) > 1 {
		logger.Warn("only the first file is edited", "files", filenames)
	}
	if len(filenames) > 0 {
		filename := filenames[0]
		// try to create a file that doesn't exist
		if err := e.TouchFile(filename); err != nil {
			return err
		}
		if err := e.ReadFile(filename); err != nil {
			return err
		}
	}

	if script != "" {
		// Run a script and print the resulting buffer.
		program, err := os.ReadFile(script)
		if err != nil {
			return err
		}
		result := e.Commander().ParseEval("(begin " + string(program) + "\n)")
		logger.Info("eval", "script", script, "result", result)
		_, err = os.Stdout.Write(append(e.Bytes(), '\n'))
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("standard input is not a terminal")
	}

	// The screen owns the terminal until it is closed.
	s, err := screen.Open(cfg.StatusBar)
	if err != nil {
		return err
	}
	defer s.Close()

	size := s.TextSize()
	e.Resize(size.Cols, size.Rows)

	// Run the main event loop.
	model := e.Render()
	for e.IsRunning() {
		s.Render(model)
		model = e.HandleKey(s.GetNextEvent())
	}
	logger.Info("quit")
	return nil
}

// openLog returns a logger writing to the configured log file. If the file
// can't be opened, it warns on stderr and returns a discarding logger.
func openLog(cfg *config.Config, stderr io.Writer) (*slog.Logger, func()) {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	var w io.Writer = io.Discard
	closer := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintf(stderr, "djacarta: logging disabled: %v\n", err)
		} else {
			w = f
			closer = func() { f.Close() }
		}
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closer
}

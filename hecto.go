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
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hectoedit/hecto/commander"
	"github.com/hectoedit/hecto/config"
	"github.com/hectoedit/hecto/editor"
	"github.com/hectoedit/hecto/screen"
	"github.com/hectoedit/hecto/types"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var filename, script string
	configPath := config.DefaultPath()

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--eval": // run a script instead of the interactive editor
			i++
			if i >= len(args) {
				fmt.Fprintln(os.Stderr, "No file specified for --eval option")
				return 2
			}
			script = args[i]
		case "--config":
			i++
			if i >= len(args) {
				fmt.Fprintln(os.Stderr, "No file specified for --config option")
				return 2
			}
			configPath = args[i]
		default:
			filename = args[i]
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	// The terminal belongs to the editor, so logs go to a file.
	if f := openLog(cfg.LogFile); f != nil {
		defer f.Close()
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.Nop()
	}

	if script != "" {
		e := newEditor(screen.NewBatch(types.Size{Width: 80, Height: 24}), filename, cfg.Settings())
		return runScript(script, e)
	}

	s, err := screen.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	err = newEditor(s, filename, cfg.Settings()).Run()
	s.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// openDocument falls back to an empty document when the file can't be
// read.
func openDocument(filename string) (*editor.Document, error) {
	if filename == "" {
		return editor.NewDocument(), nil
	}
	d, err := editor.Open(filename)
	if err != nil {
		log.Warn().Err(err).Str("path", filename).Msg("open failed")
		return editor.NewDocument(), err
	}
	log.Info().Str("path", filename).Int("rows", d.Len()).Msg("opened")
	return d, nil
}

// newEditor opens filename for editing on t. A file that can't be read
// leaves an empty document and an error in the status bar.
func newEditor(t types.Terminal, filename string, settings editor.Settings) *editor.Editor {
	document, err := openDocument(filename)
	e := editor.NewEditor(t, document, settings)
	if err != nil {
		e.SetStatus("ERR: Could not open file: " + filename)
	}
	return e
}

func runScript(path string, e *editor.Editor) int {
	c := commander.NewCommander(e)
	result, err := c.ParseEvalFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println(result)
	return 0
}

func openLog(path string) *os.File {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return nil
	}
	return f
}

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

// Package commander runs Lisp scripts against an editor. Scripts edit
// by sending the same key events a user would type, so a script and a
// keyboard session that press the same keys leave the same document.
package commander

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/steelseries/golisp"

	"github.com/hectoedit/hecto/editor"
)

// The Commander evaluates scripts for one Editor.
type Commander struct {
	editor *editor.Editor
}

// NewCommander binds the editing primitives to e. golisp primitives are
// global, so the most recently created Commander receives them.
func NewCommander(e *editor.Editor) *Commander {
	c := &Commander{editor: e}
	c.definePrimitives()
	return c
}

// ParseEval evaluates every expression in source and returns the printed
// value of the last one.
func (c *Commander) ParseEval(source string) (string, error) {
	value, err := golisp.ParseAndEval("(begin " + source + "\n)")
	if err != nil {
		log.Warn().Err(err).Msg("script failed")
		return "", err
	}
	result := golisp.String(value)
	log.Debug().Str("result", result).Msg("script evaluated")
	return result, nil
}

func (c *Commander) ParseEvalFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read script: %w", err)
	}
	return c.ParseEval(string(b))
}

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

	"github.com/steelseries/golisp"

	"github.com/hectoedit/hecto/types"
)

var keyNames = map[string]types.Key{
	"up":        types.KeyUp,
	"down":      types.KeyDown,
	"left":      types.KeyLeft,
	"right":     types.KeyRight,
	"page-up":   types.KeyPageUp,
	"page-down": types.KeyPageDown,
	"home":      types.KeyHome,
	"end":       types.KeyEnd,
	"delete":    types.KeyDelete,
	"backspace": types.KeyBackspace,
}

func (c *Commander) definePrimitives() {
	golisp.MakePrimitiveFunction("type-text", "1", c.typeTextImpl)
	golisp.MakePrimitiveFunction("insert-newline", "0", c.newlineImpl)
	golisp.MakePrimitiveFunction("press-key", "1", c.pressKeyImpl)
	golisp.MakePrimitiveFunction("goto", "2", c.gotoImpl)
	golisp.MakePrimitiveFunction("save", "0", c.saveImpl)
	golisp.MakePrimitiveFunction("save-as", "1", c.saveAsImpl)
	golisp.MakePrimitiveFunction("row-count", "0", c.rowCountImpl)
	golisp.MakePrimitiveFunction("row-text", "1", c.rowTextImpl)
	golisp.MakePrimitiveFunction("cursor-x", "0", c.cursorXImpl)
	golisp.MakePrimitiveFunction("cursor-y", "0", c.cursorYImpl)
	golisp.MakePrimitiveFunction("dirty?", "0", c.dirtyImpl)
	golisp.MakePrimitiveFunction("file-name", "0", c.fileNameImpl)
}

func (c *Commander) typeTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("type-text requires a string argument")
	}
	for _, ch := range golisp.StringValue(val) {
		if err := c.editor.ProcessEvent(types.Char(ch)); err != nil {
			return nil, err
		}
	}
	return golisp.BooleanWithValue(true), nil
}

func (c *Commander) newlineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if err := c.editor.ProcessEvent(types.Char('\n')); err != nil {
		return nil, err
	}
	return golisp.BooleanWithValue(true), nil
}

func (c *Commander) pressKeyImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("press-key requires a string argument")
	}
	key, ok := keyNames[golisp.StringValue(val)]
	if !ok {
		return nil, fmt.Errorf("press-key: unknown key %q", golisp.StringValue(val))
	}
	if err := c.editor.ProcessEvent(types.Event{Key: key}); err != nil {
		return nil, err
	}
	return golisp.BooleanWithValue(true), nil
}

func (c *Commander) gotoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	x, y := golisp.Car(args), golisp.Cadr(args)
	if !golisp.IntegerP(x) || !golisp.IntegerP(y) {
		return nil, errors.New("goto requires integer arguments")
	}
	c.editor.SetCursor(types.Position{
		X: int(golisp.IntegerValue(x)),
		Y: int(golisp.IntegerValue(y)),
	})
	return golisp.BooleanWithValue(true), nil
}

func (c *Commander) saveImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	d := c.editor.Document()
	if d.FileName() == "" {
		return nil, errors.New("save: document has no file name, use save-as")
	}
	if err := d.Save(); err != nil {
		return nil, err
	}
	return golisp.StringWithValue(d.FileName()), nil
}

func (c *Commander) saveAsImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) || golisp.StringValue(val) == "" {
		return nil, errors.New("save-as requires a file name")
	}
	c.editor.Document().SetFileName(golisp.StringValue(val))
	return c.saveImpl(args, env)
}

func (c *Commander) rowCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(c.editor.Document().Len())), nil
}

func (c *Commander) rowTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.IntegerP(val) {
		return nil, errors.New("row-text requires an integer argument")
	}
	row := c.editor.Document().Row(int(golisp.IntegerValue(val)))
	if row == nil {
		return golisp.StringWithValue(""), nil
	}
	return golisp.StringWithValue(row.String()), nil
}

func (c *Commander) cursorXImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(c.editor.Cursor().X)), nil
}

func (c *Commander) cursorYImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(c.editor.Cursor().Y)), nil
}

func (c *Commander) dirtyImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.BooleanWithValue(c.editor.Document().IsDirty()), nil
}

func (c *Commander) fileNameImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(c.editor.Document().FileName()), nil
}

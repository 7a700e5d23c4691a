package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/Gregoor/upcode/internal/input/keymap"
)

// Install registers the upcode module in the state. The init script
// extends the keymap with
//
//	upcode.map("Ctrl+g", "select.up")
//	upcode.map("+", "number.add", 10)
//
// Script bindings take precedence over the defaults.
func Install(s *State, keys *keymap.Table) {
	s.RegisterModule("upcode", map[string]lua.LGFunction{
		"map": func(L *lua.LState) int {
			chord := L.CheckString(1)
			action := L.CheckString(2)
			var param any
			if L.GetTop() >= 3 {
				param = luaToGo(L.Get(3))
			}

			m, err := keymap.ParseBinding(chord, action, param)
			if err != nil {
				L.ArgError(1, err.Error())
				return 0
			}
			keys.Prepend(m)
			return 0
		},
	})
}

func luaToGo(v lua.LValue) any {
	switch v := v.(type) {
	case lua.LString:
		return string(v)
	case lua.LNumber:
		return float64(v)
	case lua.LBool:
		return bool(v)
	}
	return nil
}

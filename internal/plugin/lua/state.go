// Package lua runs the user's init script in a sandboxed Lua state.
// The script extends the keymap through the upcode module; it has no
// filesystem, network or process access.
package lua

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// ErrStateClosed is returned when a closed state is used.
var ErrStateClosed = errors.New("lua: state closed")

// State wraps a sandboxed gopher-lua interpreter.
//
// gopher-lua's LState is not goroutine-safe; the mutex serializes
// access from Go code.
type State struct {
	mu     sync.Mutex
	L      *lua.LState
	closed bool
}

// NewState creates a Lua state with only the safe standard libraries
// opened and the escape hatches removed.
func NewState() *State {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// io, os, debug and package stay closed. Base still exposes the
	// loaders, so drop those too.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}

	return &State{L: L}
}

// RegisterModule installs a module table of Go functions as a global.
func (s *State) RegisterModule(name string, funcs map[string]lua.LGFunction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	mod := s.L.SetFuncs(s.L.NewTable(), funcs)
	s.L.SetGlobal(name, mod)
}

// DoFile executes a Lua file synchronously.
func (s *State) DoFile(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStateClosed
	}
	return s.doWithRecovery(func() error { return s.L.DoFile(path) })
}

// DoString executes Lua source synchronously.
func (s *State) DoString(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStateClosed
	}
	return s.doWithRecovery(func() error { return s.L.DoString(code) })
}

func (s *State) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// Close releases the interpreter. Further calls return ErrStateClosed.
func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.L.Close()
	s.closed = true
	return nil
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lpath

// Package luapath exposes lpath to gopher-lua scripts as the "path" and
// "path.info" modules.
//
//	L := lua.NewState()
//	luapath.NewModule(lib).Preload(L)
//	_ = L.DoString(`local path = require("path"); print(path("a", "b"))`)
package luapath

import (
	"math"

	lua "github.com/yuin/gopher-lua"

	"github.com/woozymasta/lpath"
)

// Module binds one lpath.Lib to Lua states.
type Module struct {
	lib *lpath.Lib
}

// NewModule creates a module over lib.
func NewModule(lib *lpath.Lib) *Module {
	return &Module{lib: lib}
}

// Name returns the require name of the path module.
func (m *Module) Name() string {
	return "path"
}

// Preload makes require("path") and require("path.info") available in L.
func (m *Module) Preload(L *lua.LState) {
	L.PreloadModule(m.Name(), m.Loader)
	L.PreloadModule(m.Name()+".info", m.infoLoader)
}

// Loader builds the path module table and pushes it.
//
// The table is callable: path(...) canonicalizes its arguments.
func (m *Module) Loader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"resolve":  m.resolve,
		"abs":      m.abs,
		"rel":      m.rel,
		"cwd":      m.cwd,
		"fnmatch":  m.fnmatch,
		"match":    m.match,
		"isabs":    m.isAbs,
		"drive":    m.stringOp(m.lib.Drive),
		"root":     m.stringOp(m.lib.Root),
		"anchor":   m.stringOp(m.lib.Anchor),
		"parent":   m.stringOp(m.lib.Parent),
		"name":     m.stringOp(m.lib.Name),
		"stem":     m.stringOp(m.lib.Stem),
		"suffix":   m.stringOp(m.lib.Suffix),
		"suffixes": m.suffixes,
		"parts":    m.parts,
	})

	meta := L.NewTable()
	L.SetField(meta, "__call", L.NewFunction(m.call))
	L.SetMetatable(mod, meta)

	L.Push(mod)
	return 1
}

// infoLoader builds the path.info table of platform constants.
func (m *Module) infoLoader(L *lua.LState) int {
	info := m.lib.Info()
	tbl := L.NewTable()
	L.SetField(tbl, "platform", lua.LString(info.Platform))
	L.SetField(tbl, "sep", lua.LString(info.Sep))
	L.SetField(tbl, "altsep", lua.LString(info.AltSep))
	L.SetField(tbl, "curdir", lua.LString(info.CurDir))
	L.SetField(tbl, "pardir", lua.LString(info.ParDir))
	L.SetField(tbl, "extsep", lua.LString(info.ExtSep))
	L.SetField(tbl, "devnull", lua.LString(info.DevNull))
	L.SetField(tbl, "pathsep", lua.LString(info.PathSep))

	L.Push(tbl)
	return 1
}

// call(self, ...) -> string
func (m *Module) call(L *lua.LState) int {
	L.Push(lua.LString(m.lib.Path(stringArgs(L, 2, L.GetTop())...)))
	return 1
}

// stringOp adapts a variadic string operation.
func (m *Module) stringOp(op func(args ...string) string) lua.LGFunction {
	return func(L *lua.LState) int {
		L.Push(lua.LString(op(stringArgs(L, 1, L.GetTop())...)))
		return 1
	}
}

// isabs(...) -> boolean
func (m *Module) isAbs(L *lua.LState) int {
	L.Push(lua.LBool(m.lib.IsAbs(stringArgs(L, 1, L.GetTop())...)))
	return 1
}

// fnmatch(str, pattern) -> boolean
func (m *Module) fnmatch(L *lua.LState) int {
	str := L.CheckString(1)
	pattern := L.CheckString(2)
	L.Push(lua.LBool(m.lib.Fnmatch(str, pattern)))
	return 1
}

// match(str, pattern) -> str | nothing
func (m *Module) match(L *lua.LState) int {
	str := L.CheckString(1)
	pattern := L.CheckString(2)
	res, ok := m.lib.Match(str, pattern)
	if !ok {
		return 0
	}

	L.Push(lua.LString(res))
	return 1
}

// abs(...) -> string | nil, message
func (m *Module) abs(L *lua.LState) int {
	v, err := m.lib.Abs(stringArgs(L, 1, L.GetTop())...)
	return pushResult(L, v, err)
}

// resolve(...) -> string | nil, message
func (m *Module) resolve(L *lua.LState) int {
	v, err := m.lib.Resolve(stringArgs(L, 1, L.GetTop())...)
	return pushResult(L, v, err)
}

// rel(path[, base]) -> string | nil, message
func (m *Module) rel(L *lua.LState) int {
	path := L.CheckString(1)
	base := L.OptString(2, "")
	v, err := m.lib.Rel(path, base)
	return pushResult(L, v, err)
}

// cwd() -> string | nil, message
func (m *Module) cwd(L *lua.LState) int {
	v, err := m.lib.Cwd()
	return pushResult(L, v, err)
}

// suffixes(...) -> iterator yielding index, suffix
func (m *Module) suffixes(L *lua.LState) int {
	var list []string
	for _, s := range m.lib.Suffixes(stringArgs(L, 1, L.GetTop())...) {
		list = append(list, s)
	}

	L.Push(iterator(L, list))
	return 1
}

// parts(...[, index]) -> iterator yielding index, part | part | nothing
func (m *Module) parts(L *lua.LState) int {
	top := L.GetTop()
	if index, ok := integerArg(L, top); ok {
		part, found := m.lib.Part(index, stringArgs(L, 1, top-1)...)
		if !found {
			return 0
		}

		L.Push(lua.LString(part))
		return 1
	}

	var list []string
	for _, s := range m.lib.Parts(stringArgs(L, 1, top)...) {
		list = append(list, s)
	}

	L.Push(iterator(L, list))
	return 1
}

// iterator returns a stateful Lua iterator over values.
func iterator(L *lua.LState, values []string) *lua.LFunction {
	i := 0
	return L.NewFunction(func(L *lua.LState) int {
		if i >= len(values) {
			return 0
		}

		i++
		L.Push(lua.LNumber(i))
		L.Push(lua.LString(values[i-1]))
		return 2
	})
}

// stringArgs checks arguments from..to as strings.
func stringArgs(L *lua.LState, from, to int) []string {
	if to < from {
		return nil
	}

	out := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, L.CheckString(i))
	}

	return out
}

// integerArg reports argument n as an integer index.
func integerArg(L *lua.LState, n int) (int, bool) {
	if n < 1 {
		return 0, false
	}

	num, ok := L.Get(n).(lua.LNumber)
	if !ok {
		return 0, false
	}

	f := float64(num)
	if f != math.Trunc(f) {
		return 0, false
	}

	return int(f), true
}

// pushResult pushes value, or nil and the error message.
func pushResult(L *lua.LState, value string, err error) int {
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}

	L.Push(lua.LString(value))
	return 1
}

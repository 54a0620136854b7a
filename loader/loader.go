package loader

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/aurorexam/engine/world"
)

//go:embed world.lua
var defaultWorld string

// collector accumulates Lua definitions during file execution.
type collector struct {
	world *lua.LTable
	rooms []rawRoom
}

// Default loads the examination map compiled into the binary.
func Default() (*world.Map, error) {
	return LoadString("world.lua", defaultWorld)
}

// MustDefault is Default for callers that cannot recover from a broken
// built-in map, such as tests.
func MustDefault() *world.Map {
	m, err := Default()
	if err != nil {
		panic(err)
	}
	return m
}

// Load reads a world definition from path. A directory loads every .lua
// file inside it, world.lua first and the rest alphabetically.
func Load(path string) (*world.Map, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading world %s: %w", path, err)
	}

	files := []string{path}
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("reading world directory %s: %w", path, err)
		}
		var names []string
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
				names = append(names, e.Name())
			}
		}
		if len(names) == 0 {
			return nil, fmt.Errorf("no .lua files found in %s", path)
		}
		files = files[:0]
		for _, n := range sortedLuaFiles(names) {
			files = append(files, filepath.Join(path, n))
		}
	}

	return run(func(L *lua.LState) error {
		for _, f := range files {
			if err := L.DoFile(f); err != nil {
				return fmt.Errorf("executing %s: %w", filepath.Base(f), err)
			}
		}
		return nil
	})
}

// LoadString compiles a world definition held in memory. name is only
// used in error messages.
func LoadString(name, src string) (*world.Map, error) {
	return run(func(L *lua.LState) error {
		fn, err := L.Load(strings.NewReader(src), name)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", name, err)
		}
		L.Push(fn)
		if err := L.PCall(0, lua.MultRet, nil); err != nil {
			return fmt.Errorf("executing %s: %w", name, err)
		}
		return nil
	})
}

// run executes exec inside a fresh sandboxed VM, then compiles and
// validates what the scripts declared. The VM is discarded afterwards.
func run(exec func(L *lua.LState) error) (*world.Map, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	if err := exec(L); err != nil {
		return nil, err
	}

	m, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling world: %w", err)
	}

	if err := validate(m); err != nil {
		return nil, err
	}
	return m, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes globals that reach outside the VM or break determinism.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	if tbl, ok := L.GetGlobal("math").(*lua.LTable); ok {
		tbl.RawSetString("random", lua.LNil)
		tbl.RawSetString("randomseed", lua.LNil)
	}
}

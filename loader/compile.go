// Package loader loads the examination map from Lua into Go structs.
// The Lua VM is discarded after loading: nothing runs Lua during play.
package loader

import (
	"fmt"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/aurorexam/engine/world"
	"github.com/nathoo/aurorexam/types"
)

// rawRoom holds a room table before compilation.
type rawRoom struct {
	id    string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or the default if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	v := tbl.RawGetString(key)
	if b, ok := v.(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// tableToStringMap converts a Lua table to a map[string]string.
func tableToStringMap(tbl *lua.LTable) map[string]string {
	if tbl == nil {
		return nil
	}
	m := map[string]string{}
	tbl.ForEach(func(k, v lua.LValue) {
		if ks, ok := k.(lua.LString); ok {
			if vs, ok := v.(lua.LString); ok {
				m[string(ks)] = string(vs)
			}
		}
	})
	return m
}

// tableToStrings converts the array part of a Lua table to strings.
func tableToStrings(tbl *lua.LTable) []string {
	if tbl == nil {
		return nil
	}
	var out []string
	for i := 1; i <= tbl.MaxN(); i++ {
		if s, ok := tbl.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}

// compile converts the collected Lua tables into an immutable map.
func compile(coll *collector) (*world.Map, error) {
	if coll.world == nil {
		return nil, fmt.Errorf("no World {} declaration found")
	}

	m := &world.Map{
		Title:     getString(coll.world, "title"),
		Start:     types.LocationID(getString(coll.world, "start")),
		Locations: make(map[types.LocationID]types.Location, len(coll.rooms)),
	}

	for _, raw := range coll.rooms {
		id := types.LocationID(raw.id)
		if _, dup := m.Locations[id]; dup {
			return nil, fmt.Errorf("duplicate room %q", raw.id)
		}
		m.Locations[id] = compileRoom(raw)
	}
	return m, nil
}

func compileRoom(raw rawRoom) types.Location {
	tbl := raw.table
	loc := types.Location{
		ID:          types.LocationID(raw.id),
		Name:        getString(tbl, "name"),
		Connections: map[types.Direction]types.LocationID{},
		Challenge:   types.ChallengeID(getString(tbl, "challenge")),
		Dark:        getBool(tbl, "dark", false),
		Retreat:     types.Direction(getString(tbl, "retreat")),
		Text:        map[string]string{},
	}

	for dir, target := range tableToStringMap(getTable(tbl, "exits")) {
		loc.Connections[types.Direction(dir)] = types.LocationID(target)
	}
	for _, item := range tableToStrings(getTable(tbl, "items")) {
		loc.Items = append(loc.Items, types.ItemID(item))
	}

	if desc := getString(tbl, "description"); desc != "" {
		loc.Text[world.DefaultVariant] = tidy(desc)
	}
	for key, text := range tableToStringMap(getTable(tbl, "text")) {
		loc.Text[key] = tidy(text)
	}
	return loc
}

// tidy trims long-bracket strings so a leading newline after [[ and the
// indentation before ]] do not reach the player.
func tidy(s string) string {
	return strings.TrimSpace(s)
}

// sortedLuaFiles returns .lua files with world.lua first and the rest
// sorted alphabetically.
func sortedLuaFiles(files []string) []string {
	var worldFile string
	var others []string
	for _, f := range files {
		if f == "world.lua" {
			worldFile = f
		} else {
			others = append(others, f)
		}
	}
	sort.Strings(others)
	if worldFile != "" {
		return append([]string{worldFile}, others...)
	}
	return others
}

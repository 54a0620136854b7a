package loader

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/nathoo/aurorexam/engine/world"
	"github.com/nathoo/aurorexam/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

func (e *ValidationError) errorf(format string, args ...any) {
	e.Errors = append(e.Errors, fmt.Sprintf(format, args...))
}

func (e *ValidationError) warnf(format string, args ...any) {
	e.Warnings = append(e.Warnings, fmt.Sprintf(format, args...))
}

// validate checks the compiled map for referential integrity and for the
// description variants the engine selects at runtime.
func validate(m *world.Map) error {
	ve := &ValidationError{}

	if m.Title == "" {
		ve.errorf("World.title is required")
	}

	if m.Start == "" {
		ve.errorf("World.start is required")
	} else if _, ok := m.Locations[m.Start]; !ok {
		ve.errorf("start room %q not found in defined rooms", m.Start)
	}

	challengeRooms := map[types.ChallengeID][]types.LocationID{}

	// Sorted so error output is stable.
	for _, id := range sortedIDs(m) {
		loc := m.Locations[id]

		if loc.Name == "" {
			ve.errorf("room %q has no name", id)
		}

		for dir, target := range loc.Connections {
			if !slices.Contains(types.Directions, dir) {
				ve.errorf("room %q has exit in unknown direction %q", id, dir)
			}
			if _, ok := m.Locations[target]; !ok {
				ve.errorf("room %q exit %q points to undefined room %q", id, dir, target)
			}
		}

		for _, item := range loc.Items {
			if !item.Known() {
				ve.errorf("room %q holds unknown item %q", id, item)
			}
		}

		if loc.Challenge != "" {
			if !slices.Contains(types.Challenges, loc.Challenge) {
				ve.errorf("room %q names unknown challenge %q", id, loc.Challenge)
			} else {
				challengeRooms[loc.Challenge] = append(challengeRooms[loc.Challenge], id)
			}
		}

		switch {
		case loc.Dark && loc.Retreat == "":
			ve.errorf("dark room %q needs a retreat direction", id)
		case loc.Dark:
			if _, ok := loc.Connections[loc.Retreat]; !ok {
				ve.errorf("dark room %q retreats %q but has no such exit", id, loc.Retreat)
			}
		case loc.Retreat != "":
			ve.warnf("room %q sets retreat but is not dark", id)
		}

		for _, key := range world.Variants(id) {
			if strings.TrimSpace(loc.Text[key]) == "" {
				ve.errorf("room %q is missing its %q description", id, key)
			}
		}
	}

	for _, c := range types.Challenges {
		switch rooms := challengeRooms[c]; len(rooms) {
		case 0:
			ve.errorf("no room hosts challenge %q", c)
		case 1:
		default:
			ve.errorf("challenge %q is hosted by several rooms: %v", c, rooms)
		}
	}

	if _, ok := m.Locations[m.Start]; ok {
		seen := reachable(m)
		for _, id := range sortedIDs(m) {
			if !seen[id] {
				ve.warnf("room %q cannot be reached from %q", id, m.Start)
			}
		}
	}

	for _, w := range ve.Warnings {
		log.Warn().Str("component", "loader").Msg(w)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

// reachable walks the exit graph from the start room.
func reachable(m *world.Map) map[types.LocationID]bool {
	seen := map[types.LocationID]bool{m.Start: true}
	queue := []types.LocationID{m.Start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, next := range m.Locations[id].Connections {
			if _, ok := m.Locations[next]; ok && !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return seen
}

func sortedIDs(m *world.Map) []types.LocationID {
	ids := make([]types.LocationID, 0, len(m.Locations))
	for id := range m.Locations {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

package core

import (
	"fmt"
	"sort"

	"github.com/signalsfoundry/astro-environment/model"
)

// OrderedBodySettings is one entry of a resolved creation order.
type OrderedBodySettings struct {
	Name     string
	Settings *model.BodySettings
}

// ResolveCreationOrder sorts body settings so that every body appears after
// all managed bodies its ephemeris or rotation model declares as frame
// origin. Origins that are not keys of the input map are assumed to be
// externally available (typically the eventual global origin) and impose no
// constraint.
//
// The sort is a stable Kahn topological sort over lexicographic name order,
// so repeated calls on the same input yield the same order and unconstrained
// bodies keep their name order.
func ResolveCreationOrder(settingsByName map[string]*model.BodySettings) ([]OrderedBodySettings, error) {
	names := sortedKeys(settingsByName)

	indegree := make(map[string]int, len(names))
	dependents := make(map[string][]string, len(names))
	for _, name := range names {
		for _, origin := range frameOriginDependencies(settingsByName[name]) {
			if origin == name {
				return nil, fmt.Errorf("%w: body %q names itself as frame origin", ErrCycleDetected, name)
			}
			if _, managed := settingsByName[origin]; !managed {
				continue
			}
			indegree[name]++
			dependents[origin] = append(dependents[origin], name)
		}
	}

	// ready holds constraint-free bodies in lexicographic order, which is
	// also the tie-break order.
	ready := make([]string, 0, len(names))
	for _, name := range names {
		if indegree[name] == 0 {
			ready = append(ready, name)
		}
	}

	order := make([]OrderedBodySettings, 0, len(names))
	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]
		order = append(order, OrderedBodySettings{Name: name, Settings: settingsByName[name]})

		for _, dep := range dependents[name] {
			indegree[dep]--
			if indegree[dep] == 0 {
				i := sort.SearchStrings(ready, dep)
				ready = append(ready, "")
				copy(ready[i+1:], ready[i:])
				ready[i] = dep
			}
		}
	}

	if len(order) < len(names) {
		return nil, fmt.Errorf("%w: body %q cannot be ordered", ErrCycleDetected, findCycleMember(names, indegree, settingsByName))
	}
	return order, nil
}

// frameOriginDependencies lists the frame origin names a body's settings
// declare, without duplicates, ephemeris first.
func frameOriginDependencies(s *model.BodySettings) []string {
	if s == nil {
		return nil
	}
	var deps []string
	if s.Ephemeris != nil && s.Ephemeris.FrameOrigin != "" {
		deps = append(deps, s.Ephemeris.FrameOrigin)
	}
	if s.RotationModel != nil && s.RotationModel.BaseFrameOrigin != "" {
		origin := s.RotationModel.BaseFrameOrigin
		if len(deps) == 0 || deps[0] != origin {
			deps = append(deps, origin)
		}
	}
	return deps
}

// findCycleMember walks unresolved dependencies from the smallest leftover
// body until a body repeats; the repeated body lies on a cycle. Following
// the smallest unresolved origin at each step keeps the answer
// deterministic.
func findCycleMember(names []string, indegree map[string]int, settingsByName map[string]*model.BodySettings) string {
	start := ""
	for _, name := range names {
		if indegree[name] > 0 {
			start = name
			break
		}
	}

	visited := make(map[string]bool)
	current := start
	for !visited[current] {
		visited[current] = true
		next := ""
		for _, origin := range frameOriginDependencies(settingsByName[current]) {
			if indegree[origin] > 0 && (next == "" || origin < next) {
				next = origin
			}
		}
		if next == "" {
			return current
		}
		current = next
	}
	return current
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

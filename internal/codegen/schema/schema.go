// Package schema loads the authored event-schema document. The document is
// treated as a fixed input: it is read wholesale, never mutated, and a
// missing or unparsable file fails the whole generation run.
package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Argument is one named argument of an event.
type Argument struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Event describes one callback the engine fires.
type Event struct {
	Name string     `json:"name"`
	Args []Argument `json:"args"`
}

// Component is a named set of events.
type Component struct {
	Name   string
	Events []Event
}

// Load reads a JSON document of the form
//
//	{ "Core": [ { "name": "OnPlayerConnect", "args": [ {"name": ..., "type": ...} ] } ] }
//
// and returns its components sorted by name. JSON objects carry no order, so
// sorting is what keeps regeneration byte-identical.
func Load(path string) ([]Component, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read event schema: %w", err)
	}

	var byName map[string][]Event
	if err := json.Unmarshal(data, &byName); err != nil {
		return nil, fmt.Errorf("parse event schema %s: %w", path, err)
	}

	components := make([]Component, 0, len(byName))
	for name, events := range byName {
		components = append(components, Component{Name: name, Events: events})
	}
	sort.Slice(components, func(i, j int) bool { return components[i].Name < components[j].Name })
	return components, nil
}

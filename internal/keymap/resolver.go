package keymap

import (
	"slices"
	"strings"
)

// Resolver looks up the action bound to a key string, in the form produced
// by tea.KeyMsg.String().
type Resolver struct {
	actions   map[string]Action
	keys      map[Action][]string
	conflicts []string
}

// NewResolver indexes bindings. When a key appears in several bindings the
// last one wins and the key is reported by Conflicts.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action, 2*len(bindings)),
		keys:    make(map[Action][]string, len(bindings)),
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			if prev, ok := r.actions[k]; ok && prev != b.Action && !slices.Contains(r.conflicts, k) {
				r.conflicts = append(r.conflicts, k)
			}
			r.actions[k] = b.Action
			if !slices.Contains(r.keys[b.Action], k) {
				r.keys[b.Action] = append(r.keys[b.Action], k)
			}
		}
	}
	return r
}

// Resolve returns the action bound to key, or "" when none is.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor returns the keys bound to action in declaration order.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keys[action]
}

// Conflicts returns the keys bound to more than one action.
func (r *Resolver) Conflicts() []string {
	return r.conflicts
}

// Label renders the keys of b for display, e.g. "j/down".
func (b Binding) Label() string {
	return strings.Join(b.Keys, "/")
}

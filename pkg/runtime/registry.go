package runtime

import (
	"fmt"
	"sort"
)

// The type registry is process-wide, write-once state: every descriptor is
// registered during startup, before any generated code runs, and only read
// afterwards. There is a single thread of control, so no locking.
var descriptorsByName = make(map[string]*Descriptor)

// RegisterType records a descriptor under its name. Registering twice under
// the same name, or registering a nameless descriptor, is a startup bug and
// panics.
func RegisterType(d *Descriptor) {
	if d == nil || d.Name == "" {
		panic("RegisterType: descriptor must have a name")
	}
	if _, ok := descriptorsByName[d.Name]; ok {
		panic(fmt.Sprintf("RegisterType: duplicate descriptor %q", d.Name))
	}
	descriptorsByName[d.Name] = d
}

// LookupType retrieves a registered descriptor by name.
func LookupType(name string) (*Descriptor, bool) {
	d, ok := descriptorsByName[name]
	return d, ok
}

// TypeNames returns the registered names in sorted order (useful for
// determinism in tests).
func TypeNames() []string {
	names := make([]string, 0, len(descriptorsByName))
	for name := range descriptorsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// pkg/registry/registry.go
package registry

import (
	"strings"

	"github.com/biter777/countries"
)

// Registry answers membership queries against a set of valid ISO-3166-1
// alpha-2 country codes. Implementations are immutable once constructed and
// safe for concurrent readers.
type Registry interface {
	IsValidCode(code string) bool
}

// ISORegistry validates codes against the embedded ISO-3166-1 reference
// table. It holds no state of its own; the table is compiled into the
// process and loaded exactly once.
type ISORegistry struct{}

// NewISORegistry creates the process-wide ISO-3166-1 registry.
func NewISORegistry() *ISORegistry {
	return &ISORegistry{}
}

// IsValidCode reports whether code is a known alpha-2 country code.
// Only two-letter codes are eligible; full country names are not accepted.
func (r *ISORegistry) IsValidCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	return countries.ByName(strings.ToUpper(code)) != countries.Unknown
}

// StaticRegistry is a fixed code set, used to make validation deterministic
// in tests without the full ISO table.
type StaticRegistry struct {
	codes map[string]struct{}
}

// NewStaticRegistry builds a registry holding exactly the given codes.
func NewStaticRegistry(codes ...string) *StaticRegistry {
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		set[strings.ToUpper(c)] = struct{}{}
	}
	return &StaticRegistry{codes: set}
}

// IsValidCode reports whether code is a member of the fixed set.
func (r *StaticRegistry) IsValidCode(code string) bool {
	_, ok := r.codes[strings.ToUpper(code)]
	return ok
}

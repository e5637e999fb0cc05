package authz

import (
	"fmt"
	"sort"
	"strings"
)

// Capability is one operation class a request may be entitled to perform.
type Capability string

const (
	CapabilityRead  Capability = "read"
	CapabilityWrite Capability = "write"
	CapabilityAdmin Capability = "admin"
)

// CapabilitySet is a closed, validated set of capability tokens. The raw
// comma-joined scope string persisted on an API key is parsed into this type
// once at the credential boundary and never carried further.
type CapabilitySet map[Capability]struct{}

// NewCapabilitySet builds a set from the given capabilities.
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	s := make(CapabilitySet, len(caps))
	for _, c := range caps {
		s[c] = struct{}{}
	}
	return s
}

// Has reports whether the set contains c.
func (s CapabilitySet) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

// String renders the set as a sorted comma-joined scope string.
func (s CapabilitySet) String() string {
	tokens := make([]string, 0, len(s))
	for c := range s {
		tokens = append(tokens, string(c))
	}
	sort.Strings(tokens)
	return strings.Join(tokens, ",")
}

// ParseScopes parses a comma-joined scope string into a capability set.
// Unknown tokens fail with ErrInvalidScope; empty segments are skipped.
func ParseScopes(raw string) (CapabilitySet, error) {
	set := make(CapabilitySet)
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		switch c := Capability(token); c {
		case CapabilityRead, CapabilityWrite, CapabilityAdmin:
			set[c] = struct{}{}
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidScope, token)
		}
	}
	return set, nil
}

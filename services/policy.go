package services

import (
	"fmt"
	"strings"
)

// DeletePolicy controls what happens to dependent records when a parent
// (user or post) is deleted.
type DeletePolicy int

const (
	// DeleteOrphan removes only the targeted record and leaves dependents
	// in place. This matches the historical behavior of the API.
	DeleteOrphan DeletePolicy = iota

	// DeleteRestrict refuses to delete a record that still has dependents.
	DeleteRestrict

	// DeleteCascade removes dependents together with the record.
	DeleteCascade
)

// ParseDeletePolicy reads a policy from its configuration name.
// The empty string selects DeleteOrphan.
func ParseDeletePolicy(s string) (DeletePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "orphan":
		return DeleteOrphan, nil
	case "restrict":
		return DeleteRestrict, nil
	case "cascade":
		return DeleteCascade, nil
	}
	return DeleteOrphan, fmt.Errorf("unknown delete policy %q", s)
}

func (p DeletePolicy) String() string {
	switch p {
	case DeleteRestrict:
		return "restrict"
	case DeleteCascade:
		return "cascade"
	default:
		return "orphan"
	}
}

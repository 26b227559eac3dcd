package activities

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/campusdesk/campusdesk/internal/shared"
)

var foldCaser = cases.Fold()

// normalizeName trims and case-folds an activity name for comparison.
func normalizeName(name string) string {
	return foldCaser.String(strings.TrimSpace(name))
}

// typeSuffix extracts the last whitespace-delimited token of the trimmed,
// case-folded type label ("Indoor Activity" -> "activity").
func typeSuffix(typeLabel string) string {
	fields := strings.Fields(foldCaser.String(typeLabel))
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// checkDuplicate scans existing activities for a collision with the
// candidate, skipping the record identified by excludeID on updates.
//
// The name-only rule fires first. The name+suffix rule below it can never
// fire through this path because any name match is already rejected; it is
// preserved for compatibility with the historical rule set and exercised
// directly by its own tests. The scan is O(n) per write; the storage-level
// unique index on the normalized name remains the authoritative guard
// against concurrent writers.
func checkDuplicate(existing []Activity, candidate Activity, excludeID int64) error {
	name := normalizeName(candidate.Name)
	suffix := typeSuffix(candidate.Type)

	for _, other := range existing {
		if excludeID != 0 && other.ID == excludeID {
			continue
		}
		if normalizeName(other.Name) != name {
			continue
		}
		if typeSuffix(other.Type) == suffix {
			return fmt.Errorf("%w: name %q with type suffix %q already exists",
				shared.ErrDuplicateActivity, candidate.Name, suffix)
		}
		return fmt.Errorf("%w: name %q already exists", shared.ErrDuplicateActivity, candidate.Name)
	}
	return nil
}

package domain

import "regexp"

// otherTypePattern restricts the free-text label of an OTH category.
var otherTypePattern = regexp.MustCompile(`^[a-zA-Z0-9 .,'-]+$`)

// ResolveCategoryLabel validates a category code and returns its label.
// Catalogue codes resolve to their fixed label and ignore otherType. The OTH
// code takes its label from otherType, which must be 1 to 30 characters of
// letters, digits, spaces and basic punctuation. Anything else fails with
// ErrValidation.
func ResolveCategoryLabel(code, otherType string) (string, error) {
	if label, ok := CategoryCatalogue[code]; ok {
		return label, nil
	}
	if code != CategoryCodeOthers {
		return "", ErrValidation
	}
	if len(otherType) == 0 || len(otherType) > 30 || !otherTypePattern.MatchString(otherType) {
		return "", ErrValidation
	}
	return otherType, nil
}

// ValidFileLocation reports whether loc is one of the known storage locations.
func ValidFileLocation(loc FileLocation) bool {
	for _, l := range FileLocations {
		if l == loc {
			return true
		}
	}
	return false
}

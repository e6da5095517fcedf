package enums

import (
	"fmt"
	"strings"
)

// GroupKind identifies one customization step a category can expose.
type GroupKind string

const (
	GroupKindSupplements    GroupKind = "supplements"
	GroupKindExtras         GroupKind = "extras"
	GroupKindSauces         GroupKind = "sauces"
	GroupKindAccompaniments GroupKind = "accompaniments"
	GroupKindBoissons       GroupKind = "boissons"
)

// canonicalGroupOrder fixes the order steps are presented in, stable across sessions.
var canonicalGroupOrder = []GroupKind{
	GroupKindSupplements,
	GroupKindExtras,
	GroupKindSauces,
	GroupKindAccompaniments,
	GroupKindBoissons,
}

// String implements fmt.Stringer.
func (g GroupKind) String() string {
	return string(g)
}

// IsValid reports whether the value is a known GroupKind.
func (g GroupKind) IsValid() bool {
	for _, candidate := range canonicalGroupOrder {
		if candidate == g {
			return true
		}
	}
	return false
}

// MultiSelect reports whether any number of options from the group may be
// active at once. Non-multi groups hold at most one selected option.
func (g GroupKind) MultiSelect() bool {
	switch g {
	case GroupKindSupplements, GroupKindExtras:
		return true
	default:
		return false
	}
}

// CanonicalOrder returns the fixed presentation order for all group kinds.
func CanonicalOrder() []GroupKind {
	out := make([]GroupKind, len(canonicalGroupOrder))
	copy(out, canonicalGroupOrder)
	return out
}

// OrderIndex returns the position of the kind in the canonical order.
func (g GroupKind) OrderIndex() int {
	for i, candidate := range canonicalGroupOrder {
		if candidate == g {
			return i
		}
	}
	return len(canonicalGroupOrder)
}

// ParseGroupKind converts raw input into a GroupKind.
func ParseGroupKind(value string) (GroupKind, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range canonicalGroupOrder {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid group kind %q", value)
}

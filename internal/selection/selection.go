package selection

import (
	"fmt"

	"github.com/daleelbalady/storefront-gateway/internal/catalog"
	"github.com/daleelbalady/storefront-gateway/pkg/types"
)

// Map holds the in-progress modifier choices for one item configuration,
// keyed by modifier group id. A missing key reads as an empty selection.
// Option order within a group is insertion order; it never affects price.
type Map map[string][]string

// Selected returns the chosen option ids for a group, never nil.
func (m Map) Selected(groupID string) []string {
	if m == nil {
		return nil
	}
	return m[groupID]
}

// Contains reports whether the option is currently selected in the group.
func (m Map) Contains(groupID, optionID string) bool {
	for _, id := range m.Selected(groupID) {
		if id == optionID {
			return true
		}
	}
	return false
}

// Count returns how many options are selected in the group.
func (m Map) Count(groupID string) int {
	return len(m.Selected(groupID))
}

// Clone copies the map so toggles never alias committed cart lines.
func (m Map) Clone() Map {
	if m == nil {
		return Map{}
	}
	out := make(Map, len(m))
	for groupID, ids := range m {
		copied := make([]string, len(ids))
		copy(copied, ids)
		out[groupID] = copied
	}
	return out
}

// Defaults builds the initial map for a freshly opened item: groups that
// require exactly one choice pre-select their sole default option, every
// other group starts empty.
func Defaults(item catalog.MenuItem) Map {
	out := Map{}
	for _, group := range item.ModifierGroups {
		if opt, ok := group.DefaultOption(); ok {
			out[group.ID] = []string{opt.ID}
		}
	}
	return out
}

// Toggle applies one tap on an option and returns the updated map.
//
// Single-choice groups replace the whole selection with the tapped option,
// re-tapping the current choice included. Multi-choice groups uncheck an
// already-selected option, add an unselected one while under MaxSelection,
// and silently ignore the tap once the group is full; the engine never
// evicts an earlier choice on the caller's behalf.
func Toggle(m Map, group catalog.ModifierGroup, optionID string) Map {
	if _, ok := group.OptionByID(optionID); !ok {
		return m.Clone()
	}

	out := m.Clone()
	if group.SingleChoice() {
		out[group.ID] = []string{optionID}
		return out
	}

	current := out.Selected(group.ID)
	if out.Contains(group.ID, optionID) {
		kept := make([]string, 0, len(current)-1)
		for _, id := range current {
			if id != optionID {
				kept = append(kept, id)
			}
		}
		out[group.ID] = kept
		return out
	}

	if len(current) >= group.MaxSelection {
		return out
	}
	out[group.ID] = append(current, optionID)
	return out
}

// MinimumError reports the first group, in catalog order, whose selection
// count is below its required minimum.
type MinimumError struct {
	GroupID   string
	GroupName types.LocalizedString
	Required  int
	Selected  int
}

func (e *MinimumError) Error() string {
	return fmt.Sprintf("group %s requires at least %d selection(s), have %d", e.GroupID, e.Required, e.Selected)
}

// ValidateForCommit checks only the lower bounds: upper bounds are enforced
// continuously by Toggle, so an over-max state cannot be reached here. A nil
// return means the map may be committed to the cart as-is.
func ValidateForCommit(item catalog.MenuItem, m Map) error {
	for _, group := range item.ModifierGroups {
		if n := m.Count(group.ID); n < group.MinSelection {
			return &MinimumError{
				GroupID:   group.ID,
				GroupName: group.Name,
				Required:  group.MinSelection,
				Selected:  n,
			}
		}
	}
	return nil
}

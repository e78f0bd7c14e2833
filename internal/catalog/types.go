package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/daleelbalady/storefront-gateway/pkg/enums"
	"github.com/daleelbalady/storefront-gateway/pkg/types"
)

// ModifierOption is a single customization choice inside a group.
type ModifierOption struct {
	ID         string                `json:"id"`
	Name       types.LocalizedString `json:"name"`
	PriceDelta decimal.Decimal       `json:"priceDelta"`
	IsDefault  bool                  `json:"isDefault,omitempty"`
}

// ModifierGroup bounds how many of its options may and must be chosen.
// Invariant: MinSelection <= MaxSelection. MaxSelection == 1 means the group
// behaves as a single-choice (radio) set.
type ModifierGroup struct {
	ID           string                 `json:"id"`
	Name         types.LocalizedString  `json:"name"`
	Description  *types.LocalizedString `json:"description,omitempty"`
	MinSelection int                    `json:"minSelection"`
	MaxSelection int                    `json:"maxSelection"`
	Options      []ModifierOption       `json:"options"`
}

// SingleChoice reports whether the group carries radio semantics.
func (g ModifierGroup) SingleChoice() bool {
	return g.MaxSelection == 1
}

// Required reports whether at least one option must be selected.
func (g ModifierGroup) Required() bool {
	return g.MinSelection > 0
}

// OptionByID resolves an option id within the group, or false when absent.
func (g ModifierGroup) OptionByID(id string) (ModifierOption, bool) {
	for _, opt := range g.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return ModifierOption{}, false
}

// DefaultOption returns the group's sole pre-selected option. It is only
// meaningful for exactly-one-required groups; elsewhere it returns false.
func (g ModifierGroup) DefaultOption() (ModifierOption, bool) {
	if g.MinSelection != 1 || g.MaxSelection != 1 {
		return ModifierOption{}, false
	}
	found := ModifierOption{}
	count := 0
	for _, opt := range g.Options {
		if opt.IsDefault {
			found = opt
			count++
		}
	}
	if count != 1 {
		return ModifierOption{}, false
	}
	return found, true
}

// MenuItem is a sellable catalog entry sourced from the menu platform.
type MenuItem struct {
	ID             string                `json:"id"`
	Name           types.LocalizedString `json:"name"`
	Description    types.LocalizedString `json:"description"`
	BasePrice      decimal.Decimal       `json:"basePrice"`
	Image          string                `json:"image,omitempty"`
	Category       string                `json:"category"`
	Type           enums.ProductType     `json:"type"`
	Calories       int                   `json:"calories,omitempty"`
	IsPopular      bool                  `json:"isPopular,omitempty"`
	ModifierGroups []ModifierGroup       `json:"modifierGroups"`
}

// GroupByID resolves a modifier group on the item, or false when absent.
func (i MenuItem) GroupByID(id string) (ModifierGroup, bool) {
	for _, group := range i.ModifierGroups {
		if group.ID == id {
			return group, true
		}
	}
	return ModifierGroup{}, false
}

// Clone deep-copies the item so cart lines keep the configuration they were
// priced against even if the cached catalog is refreshed underneath them.
func (i MenuItem) Clone() MenuItem {
	out := i
	out.ModifierGroups = make([]ModifierGroup, len(i.ModifierGroups))
	for gi, group := range i.ModifierGroups {
		copied := group
		if group.Description != nil {
			desc := *group.Description
			copied.Description = &desc
		}
		copied.Options = make([]ModifierOption, len(group.Options))
		copy(copied.Options, group.Options)
		out.ModifierGroups[gi] = copied
	}
	return out
}

// Shop is the public storefront profile.
type Shop struct {
	ID            string                `json:"id"`
	Name          types.LocalizedString `json:"name"`
	Description   types.LocalizedString `json:"description"`
	CoverImage    string                `json:"coverImage,omitempty"`
	LogoImage     string                `json:"logoImage,omitempty"`
	GalleryImages []string              `json:"galleryImages,omitempty"`
	LocationLat   float64               `json:"locationLat"`
	LocationLon   float64               `json:"locationLon"`
	City          string                `json:"city"`
	Phone         string                `json:"phone"`
	Website       string                `json:"website,omitempty"`
	IsVerified    bool                  `json:"isVerified"`
	Rating        float64               `json:"rating"`
	ReviewCount   int                   `json:"reviewCount"`
	Currency      types.LocalizedString `json:"currency"`
	OwnerID       string                `json:"ownerId,omitempty"`
}

// Table is a dine-in seat owned and mutated by the menu platform; the wizard
// only reads it to populate the selection list.
type Table struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Capacity   int    `json:"capacity"`
	IsOccupied bool   `json:"isOccupied"`
}

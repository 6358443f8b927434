package models

import "strings"

// Category is a two-letter clothing category code.
type Category string

const (
	CategoryHead       Category = "hd"
	CategoryHair       Category = "hr"
	CategoryHat        Category = "ha"
	CategoryHeadAcc    Category = "he"
	CategoryEyeAcc     Category = "ea"
	CategoryFaceAcc    Category = "fa"
	CategoryChest      Category = "ch"
	CategoryCoat       Category = "cc"
	CategoryChestPrint Category = "cp"
	CategoryChestAcc   Category = "ca"
	CategoryLegs       Category = "lg"
	CategoryShoes      Category = "sh"
	CategoryWaist      Category = "wa"
)

// Categories is the fixed set of clothing categories in display order.
var Categories = []Category{
	CategoryHead, CategoryHair, CategoryHat, CategoryHeadAcc, CategoryEyeAcc, CategoryFaceAcc,
	CategoryChest, CategoryCoat, CategoryChestPrint, CategoryChestAcc,
	CategoryLegs, CategoryShoes, CategoryWaist,
}

var categoryOrder = func() map[Category]int {
	m := make(map[Category]int, len(Categories))
	for i, c := range Categories {
		m[c] = i
	}
	return m
}()

// ParseCategory normalises s and reports whether it is one of the 13 clothing categories.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	_, ok := categoryOrder[c]
	return c, ok
}

// Valid reports whether c belongs to the clothing category set.
func (c Category) Valid() bool {
	_, ok := categoryOrder[c]
	return ok
}

// Order is the position of c in Categories, or len(Categories) for unknown codes.
func (c Category) Order() int {
	if i, ok := categoryOrder[c]; ok {
		return i
	}
	return len(Categories)
}

// HeadFocused reports whether previews of c should be rendered head-only.
func (c Category) HeadFocused() bool {
	switch c {
	case CategoryHead, CategoryHair, CategoryHat, CategoryEyeAcc, CategoryFaceAcc:
		return true
	default:
		return false
	}
}

// DefaultPaletteID is the conventional palette of a category when the feed does not say.
func (c Category) DefaultPaletteID() string {
	switch c {
	case CategoryHead:
		return "1"
	case CategoryHair:
		return "2"
	default:
		return "3"
	}
}

// Gender of a clothing set.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderUnisex Gender = "U"
)

// ParseGender maps raw feed values to a Gender, defaulting to unisex.
func ParseGender(s string) Gender {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "M":
		return GenderMale
	case "F":
		return GenderFemale
	default:
		return GenderUnisex
	}
}

// LookupGender parses a requested gender. Unlike ParseGender it rejects
// values other than M, F and U.
func LookupGender(s string) (Gender, bool) {
	switch g := Gender(strings.ToUpper(strings.TrimSpace(s))); g {
	case GenderMale, GenderFemale, GenderUnisex:
		return g, true
	default:
		return "", false
	}
}

// ClubLevel is the membership required to wear a set.
type ClubLevel int

const (
	ClubNone ClubLevel = iota
	ClubMember
	ClubPremium
)

// ParseClubLevel maps "0", "1", "2" to a ClubLevel; anything else is ClubNone.
func ParseClubLevel(s string) ClubLevel {
	switch strings.TrimSpace(s) {
	case "1":
		return ClubMember
	case "2":
		return ClubPremium
	default:
		return ClubNone
	}
}

func (l ClubLevel) String() string {
	switch l {
	case ClubMember:
		return "club"
	case ClubPremium:
		return "premium_club"
	default:
		return "none"
	}
}

// MarshalText renders the level by name in JSON output.
func (l ClubLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

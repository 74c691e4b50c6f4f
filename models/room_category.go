package models

import "strings"

// RoomCategory is decided once, when a row is loaded.
type RoomCategory int

const (
	CategoryStandard RoomCategory = iota
	CategorySuite
)

func (c RoomCategory) String() string {
	switch c {
	case CategorySuite:
		return "suite"
	default:
		return "standard"
	}
}

// CategoryOf tags any room type containing "suite" (any case) as a suite.
func CategoryOf(roomType string) RoomCategory {
	if strings.Contains(strings.ToLower(roomType), "suite") {
		return CategorySuite
	}
	return CategoryStandard
}

// Minibar is the fixed catalog stocked in every suite.
type Minibar struct {
	Snacks []string `json:"snacks"`
	Drinks []string `json:"drinks"`
}

var suiteMinibar = Minibar{
	Snacks: []string{"Chips", "Chocolate bar", "Mixed nuts"},
	Drinks: []string{"Water", "Cola", "Orange juice"},
}

// SuiteMinibar returns a fresh copy so callers cannot edit the catalog.
func SuiteMinibar() Minibar {
	return Minibar{
		Snacks: append([]string(nil), suiteMinibar.Snacks...),
		Drinks: append([]string(nil), suiteMinibar.Drinks...),
	}
}

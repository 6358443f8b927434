package models

import "fmt"

// Clothing is the emulator-independent view of a catalog_clothing row.
type Clothing interface {
	TableName() string
	Classname() string
	// Sets returns the raw comma separated set id list.
	Sets() string
}

// ForEmulator returns the zero model used to read and verify the given emulator's table.
func ForEmulator(emulator string) (Clothing, error) {
	switch emulator {
	case "arcturus":
		return ArcturusClothing{}, nil
	case "comet":
		return CometClothing{}, nil
	case "plus", "plusemu":
		return PlusClothing{}, nil
	default:
		return nil, fmt.Errorf("unknown emulator model: %s", emulator)
	}
}

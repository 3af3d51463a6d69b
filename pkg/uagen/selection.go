package uagen

import "fmt"

// Selection holds one optional value per dimension. Zero fields are unset.
type Selection struct {
	OS      OS
	Chipset Chipset
	Browser Browser
	Locale  Locale
}

// Valid applies ChipsetValidForOS to the selected OS and chipset.
func (s Selection) Valid() bool {
	return ChipsetValidForOS(s.Chipset, s.OS)
}

// Resolved reports whether every dimension holds a value.
func (s Selection) Resolved() bool {
	return s.OS != 0 && s.Chipset != 0 && s.Browser != 0 && s.Locale != ""
}

func (s Selection) String() string {
	return fmt.Sprintf("os=%v chipset=%v browser=%v locale=%v", s.OS, s.Chipset, s.Browser, s.Locale)
}

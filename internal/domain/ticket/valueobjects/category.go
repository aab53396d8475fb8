package valueobjects

import "fmt"

type Category string

const (
	CategoryHardware Category = "hardware"
	CategorySoftware Category = "software"
	CategoryNetwork  Category = "network"
	CategoryAccess   Category = "access"
)

var validCategories = map[Category]bool{
	CategoryHardware: true,
	CategorySoftware: true,
	CategoryNetwork:  true,
	CategoryAccess:   true,
}

// AllCategories lists every category in display order.
func AllCategories() []Category {
	return []Category{CategoryHardware, CategorySoftware, CategoryNetwork, CategoryAccess}
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(s string) (Category, error) {
	cat := Category(s)
	if !cat.IsValid() {
		return "", fmt.Errorf("invalid ticket category: %s", s)
	}
	return cat, nil
}

package category

import "fmt"

// Fallback display attributes used when an expense references a category name
// that no longer exists. A dangling reference is a supported state: deleting
// or renaming a category never cascades to the expenses pointing at it.
const (
	FallbackIcon  = "📌"
	FallbackColor = "#FFEAA7"
)

// Category is a named, user-manageable tag with display attributes. Expenses
// reference it by name, not by id.
type Category struct {
	ID       string
	Name     string
	Icon     string
	Color    string
	Position int
}

// ValidationError reports malformed user input for a category.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (c Category) Validate() error {
	if c.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	return nil
}

// DefaultCategories returns the fixed seed set used whenever the category
// collection is empty.
func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Name: "Food", Icon: "🍕", Color: "#FF6B6B", Position: 1},
		{ID: "2", Name: "Transport", Icon: "🚗", Color: "#4ECDC4", Position: 2},
		{ID: "3", Name: "Shopping", Icon: "🛍️", Color: "#45B7D1", Position: 3},
		{ID: "4", Name: "Bills", Icon: "📄", Color: "#96CEB4", Position: 4},
		{ID: "5", Name: "Other", Icon: "📌", Color: "#FFEAA7", Position: 5},
	}
}

// Resolve looks a category up by name. The boolean result is false for a
// dangling reference; callers substitute the fallback icon and color instead
// of treating it as an error. When duplicate names exist the first one wins.
func Resolve(categories []Category, name string) (Category, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

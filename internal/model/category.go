package model

import "strings"

// Uncategorized is the category assigned when no rule matches.
const Uncategorized = "Uncategorized"

// CategoryDefinition pairs a category name with its display color.
type CategoryDefinition struct {
	Name  string
	Color string
}

// BuiltinCategories is the fixed taxonomy in priority-independent display
// order. The Categorizer's rule table controls matching priority; this list
// controls what counts as a valid built-in name.
var BuiltinCategories = []CategoryDefinition{
	{Name: "Food & Dining", Color: "#f97316"},
	{Name: "Groceries", Color: "#84cc16"},
	{Name: "Transportation", Color: "#3b82f6"},
	{Name: "Entertainment", Color: "#a855f7"},
	{Name: "Shopping", Color: "#ec4899"},
	{Name: "Healthcare", Color: "#ef4444"},
	{Name: "Utilities", Color: "#06b6d4"},
	{Name: "Housing", Color: "#8b5cf6"},
	{Name: "Mortgage", Color: "#7c3aed"},
	{Name: "Repairs", Color: "#b45309"},
	{Name: "Travel", Color: "#14b8a6"},
	{Name: "Education", Color: "#f59e0b"},
	{Name: "Personal Care", Color: "#e879f9"},
	{Name: "Subscriptions", Color: "#6366f1"},
	{Name: "Software", Color: "#8b5cf6"},
	{Name: "Legal", Color: "#1e40af"},
	{Name: "Income", Color: "#22c55e"},
	{Name: "Transfers", Color: "#64748b"},
	{Name: "Fees & Charges", Color: "#dc2626"},
	{Name: Uncategorized, Color: "#9ca3af"},
}

// BuiltinCategoryNames returns just the names, in order.
func BuiltinCategoryNames() []string {
	names := make([]string, len(BuiltinCategories))
	for i, c := range BuiltinCategories {
		names[i] = c.Name
	}
	return names
}

// IsBuiltinCategory reports whether name is one of the fixed taxonomy.
func IsBuiltinCategory(name string) bool {
	for _, c := range BuiltinCategories {
		if c.Name == name {
			return true
		}
	}
	return false
}

// NewCustomCategory validates a custom category name against the built-ins
// and the existing custom list (case-insensitive) and assigns a color from
// the rotating built-in palette. Returns false when the name is empty or
// already taken.
func NewCustomCategory(name string, existing []CategoryDefinition) (CategoryDefinition, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CategoryDefinition{}, false
	}
	for _, c := range BuiltinCategories {
		if strings.EqualFold(c.Name, name) {
			return CategoryDefinition{}, false
		}
	}
	for _, c := range existing {
		if strings.EqualFold(c.Name, name) {
			return CategoryDefinition{}, false
		}
	}
	color := BuiltinCategories[len(existing)%len(BuiltinCategories)].Color
	return CategoryDefinition{Name: name, Color: color}, true
}

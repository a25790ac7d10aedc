package model

import "github.com/google/uuid"

// ProfileColors is the rotating palette assigned to new profiles.
var ProfileColors = []string{
	"#6366f1", "#22c55e", "#f97316", "#ec4899",
	"#14b8a6", "#f59e0b", "#8b5cf6", "#3b82f6",
}

// Rule is a user-defined category override. Text is matched as a lowercased
// substring against transaction descriptions; the first matching rule in
// list order wins.
type Rule struct {
	ID       string
	Text     string
	Category string
}

// Profile is one user's workspace: a named collection of transactions,
// rules, and custom categories.
type Profile struct {
	ID    string
	Name  string
	Color string
}

// NewProfile creates a profile with a palette color chosen by position.
func NewProfile(name string, position int) Profile {
	return Profile{
		ID:    uuid.NewString(),
		Name:  name,
		Color: ProfileColors[position%len(ProfileColors)],
	}
}

// StatementFile records one ingested file, keeping its raw content so the
// profile can be re-derived wholesale by re-reading stored files.
type StatementFile struct {
	Name    string
	Kind    string // "csv", "pdf", or "ofx"
	Content []byte
}

// ProfileState is the full mutable state the ingestion pipeline operates on.
// The pipeline treats it as copy-on-write: it returns a new state rather
// than mutating the input.
type ProfileState struct {
	Profile          Profile
	Transactions     []Transaction
	Rules            []Rule
	CustomCategories []CategoryDefinition
	Files            []StatementFile
}

// CategoryNames returns the built-in taxonomy followed by this profile's
// custom category names.
func (s *ProfileState) CategoryNames() []string {
	names := BuiltinCategoryNames()
	for _, c := range s.CustomCategories {
		names = append(names, c.Name)
	}
	return names
}

// NextID returns the ID to assign to the next appended transaction.
func (s *ProfileState) NextID() int {
	max := -1
	for _, t := range s.Transactions {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

// HasFile reports whether a file with the given name was already ingested.
func (s *ProfileState) HasFile(name string) bool {
	for _, f := range s.Files {
		if f.Name == name {
			return true
		}
	}
	return false
}

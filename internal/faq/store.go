// Package faq holds the canned-answer table and the matching logic that
// decides whether a user question can be answered without calling the model.
package faq

// Entry pairs a canonical question key with its canned answer. Keys are
// stored in normalized form so they compare directly against normalized
// user input.
type Entry struct {
	Key    string
	Answer string
}

// Store is an ordered, read-only set of FAQ entries. Order matters: the
// containment pass returns the earliest-declared entry that matches, so ties
// are broken by declaration order.
type Store struct {
	entries []Entry
}

// NewStore builds a Store from the given entries. The slice is copied; the
// Store never mutates after construction and is safe for concurrent readers.
func NewStore(entries []Entry) *Store {
	copied := make([]Entry, len(entries))
	copy(copied, entries)
	return &Store{entries: copied}
}

// Entries returns the entries in declaration order. Callers must not modify
// the returned slice.
func (s *Store) Entries() []Entry {
	return s.entries
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// DefaultStore returns the shipped help table for the to-do application.
func DefaultStore() *Store {
	return NewStore([]Entry{
		{
			Key: "what is justdoeet",
			Answer: `This is dedicated to helping you plan and categorise your daily tasks. Click on the plus sign to begin :D`,
		},
		{
			Key: "how do i add a new category",
			Answer: `To add a new category:

1. Go to the "Categories" page in the sidebar.

2. Click the "Add Category" plus button.

3. Enter a category name and save.`,
		},
		{
			Key: "how do i add a todo",
			Answer: `To add a new to-do:

1. Go to the home or tasks page.

2. Click the "+" button at the top of the to-dos.

3. Enter the title, description, and due date.

4. Click "Save".`,
		},
		{
			Key: "how do i delete a todo",
			Answer: `To delete a to-do:

1. Find the task you want to delete.

2. Click the trash icon or "Delete" button.

3. Confirm deletion when prompted.`,
		},
		{
			Key: "how do i edit a todo",
			Answer: `To edit a to-do:

1. Click on the task you want to edit.

2. Modify the title, description, due date, or category.

3. Click "Save" to apply changes.`,
		},
		{
			Key: "how do i logout",
			Answer: `To log out:

Use the 'Logout' link in the sidebar menu.`,
		},
		{
			Key:    "thank you",
			Answer: `You're welcome! :)`,
		},
	})
}

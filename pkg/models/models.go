package models

import "sort"

// Entry is a single parsed header
type Entry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Entries returns the header map as a slice sorted by name
func Entries(h map[string]string) []Entry {
	entries := make([]Entry, 0, len(h))
	for k, v := range h {
		entries = append(entries, Entry{Name: k, Value: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}

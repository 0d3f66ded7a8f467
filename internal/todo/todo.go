package todo

import "strings"

// Todo is a single list item. Items carry no identity beyond their
// position in the list; insertion order is what the selection cursor
// indexes into.
type Todo struct {
	Title string
	Done  bool
}

// List holds the session's todos and the selection cursor. The zero
// value is an empty, usable list. Every mutation reclamps the cursor
// before returning, so for a non-empty list the cursor is always in
// [0, len); Selected reports it as absent for an empty list.
type List struct {
	items  []Todo
	cursor int
}

func (l *List) Items() []Todo { return l.items }

func (l *List) Len() int { return len(l.items) }

// Selected returns the index of the selected todo, or false when the
// list is empty.
func (l *List) Selected() (int, bool) {
	if len(l.items) == 0 {
		return 0, false
	}
	return l.cursor, true
}

// Add appends a todo with the given title, not yet done. Empty and
// whitespace-only titles are ignored. Adding to an empty list selects
// the new item.
func (l *List) Add(title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return
	}
	l.items = append(l.items, Todo{Title: title})
	l.cursor = clampCursor(l.cursor, len(l.items))
}

// ToggleSelected flips the done flag on the selected todo. No-op when
// the list is empty.
func (l *List) ToggleSelected() {
	i, ok := l.Selected()
	if !ok {
		return
	}
	l.items[i].Done = !l.items[i].Done
}

// DeleteSelected removes the selected todo. The cursor stays on the
// same position, so the next item slides into the selection; deleting
// the last item moves the cursor to the new last index.
func (l *List) DeleteSelected() {
	i, ok := l.Selected()
	if !ok {
		return
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	l.cursor = clampCursor(l.cursor, len(l.items))
}

// MoveSelection moves the cursor by delta, clamped to the list bounds.
// No wraparound. No-op when the list is empty.
func (l *List) MoveSelection(delta int) {
	if len(l.items) == 0 {
		return
	}
	l.cursor = clampCursor(l.cursor+delta, len(l.items))
}

// RenameSelected replaces the selected todo's title. Empty and
// whitespace-only titles are ignored, as is an empty list.
func (l *List) RenameSelected(title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return
	}
	i, ok := l.Selected()
	if !ok {
		return
	}
	l.items[i].Title = title
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}

// Package tasklist holds the ordered task sequence and its operations.
//
// Every mutation writes the whole sequence through to the store immediately.
// Persistence is best-effort (see store); the in-memory sequence is the
// source of truth for the session.
package tasklist

import (
	"strings"
	"time"

	"taskdeck/internal/model"
	"taskdeck/internal/store"
)

type List struct {
	st    *store.Store
	tasks []model.Task

	// lastID guards monotonic IDs when two adds land in the same millisecond.
	lastID int64
}

// Load reads the persisted sequence. A nil store gives an in-memory list.
func Load(st *store.Store) *List {
	l := &List{st: st}
	if st != nil {
		l.tasks = store.Read(st, store.KeyTasks, []model.Task(nil))
	}
	for _, t := range l.tasks {
		if t.ID > l.lastID {
			l.lastID = t.ID
		}
	}
	return l
}

// Add appends a new task with the trimmed text. Empty or whitespace-only
// text is a no-op and reports false.
func (l *List) Add(text string) (model.Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Task{}, false
	}
	id := time.Now().UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	t := model.Task{ID: id, Text: text}
	l.tasks = append(l.tasks, t)
	l.persist()
	return t, true
}

// Toggle flips Completed on the task with the given id. Unknown ids no-op.
func (l *List) Toggle(id int64) bool {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks[i].Completed = !l.tasks[i].Completed
			l.persist()
			return true
		}
	}
	return false
}

// Delete removes the task with the given id, preserving the order of the
// rest. Unknown ids no-op.
func (l *List) Delete(id int64) bool {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
			l.persist()
			return true
		}
	}
	return false
}

// Filtered returns the tasks visible under f, in original order. The
// returned slice is a copy; the underlying sequence is never mutated.
func (l *List) Filtered(f model.Filter) []model.Task {
	out := make([]model.Task, 0, len(l.tasks))
	for _, t := range l.tasks {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Counts returns (total, active, completed) in a single pass.
func (l *List) Counts() (total, active, completed int) {
	for _, t := range l.tasks {
		if t.Completed {
			completed++
		} else {
			active++
		}
	}
	return active + completed, active, completed
}

// Tasks returns a copy of the full sequence.
func (l *List) Tasks() []model.Task {
	out := make([]model.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Find returns the task with the given id.
func (l *List) Find(id int64) (model.Task, bool) {
	for _, t := range l.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

func (l *List) persist() {
	if l.st == nil {
		return
	}
	store.Set(l.st, store.KeyTasks, l.tasks)
}

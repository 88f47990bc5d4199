package tasklist

import (
	"context"
	"testing"

	"taskdeck/internal/model"
	"taskdeck/internal/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAdd_TrimsAndAppends(t *testing.T) {
	l := Load(nil)
	task, ok := l.Add("  Buy milk  ")
	if !ok {
		t.Fatalf("Add rejected valid text")
	}
	if task.Text != "Buy milk" {
		t.Fatalf("text not trimmed: %q", task.Text)
	}
	if task.Completed {
		t.Fatalf("new task marked completed")
	}
	if total, _, _ := l.Counts(); total != 1 {
		t.Fatalf("total = %d", total)
	}
}

func TestAdd_EmptyTextIsNoOp(t *testing.T) {
	l := Load(nil)
	for _, text := range []string{"", "   ", "\t\n"} {
		if _, ok := l.Add(text); ok {
			t.Fatalf("Add(%q) accepted", text)
		}
	}
	if total, _, _ := l.Counts(); total != 0 {
		t.Fatalf("empty adds changed length: %d", total)
	}
}

func TestAdd_IDsUniqueAndMonotonic(t *testing.T) {
	l := Load(nil)
	var prev int64
	for i := 0; i < 50; i++ {
		task, ok := l.Add("t")
		if !ok {
			t.Fatalf("Add failed at %d", i)
		}
		if task.ID <= prev {
			t.Fatalf("id %d not monotonic after %d", task.ID, prev)
		}
		prev = task.ID
	}
}

func TestToggle_IsInvolution(t *testing.T) {
	l := Load(nil)
	a, _ := l.Add("first")
	b, _ := l.Add("second")
	l.Toggle(b.ID)

	before := l.Tasks()
	l.Toggle(a.ID)
	l.Toggle(a.ID)
	after := l.Tasks()

	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("double toggle changed task %d: %+v != %+v", i, before[i], after[i])
		}
	}
}

func TestToggle_UnknownIDIsNoOp(t *testing.T) {
	l := Load(nil)
	l.Add("one")
	before := l.Tasks()
	if l.Toggle(999) {
		t.Fatalf("Toggle reported success for unknown id")
	}
	after := l.Tasks()
	if len(after) != len(before) || after[0] != before[0] {
		t.Fatalf("unknown toggle mutated list")
	}
}

func TestDelete_PreservesOrder(t *testing.T) {
	l := Load(nil)
	a, _ := l.Add("a")
	b, _ := l.Add("b")
	c, _ := l.Add("c")

	if !l.Delete(b.ID) {
		t.Fatalf("Delete failed")
	}
	got := l.Tasks()
	if len(got) != 2 || got[0].ID != a.ID || got[1].ID != c.ID {
		t.Fatalf("order not preserved: %+v", got)
	}
	if l.Delete(b.ID) {
		t.Fatalf("second delete of same id reported success")
	}
}

func TestCounts_TotalAlwaysActivePlusCompleted(t *testing.T) {
	l := Load(nil)
	check := func() {
		t.Helper()
		total, active, completed := l.Counts()
		if total != active+completed {
			t.Fatalf("counts invariant broken: %d != %d + %d", total, active, completed)
		}
	}
	check()
	a, _ := l.Add("a")
	check()
	b, _ := l.Add("b")
	check()
	l.Toggle(a.ID)
	check()
	l.Toggle(b.ID)
	check()
	l.Delete(a.ID)
	check()
	l.Toggle(b.ID)
	check()
}

func TestFiltered_PureView(t *testing.T) {
	l := Load(nil)
	a, _ := l.Add("active one")
	l.Add("active two")
	c, _ := l.Add("done")
	l.Toggle(c.ID)

	active := l.Filtered(model.FilterActive)
	if len(active) != 2 || active[0].ID != a.ID {
		t.Fatalf("active view wrong: %+v", active)
	}
	completed := l.Filtered(model.FilterCompleted)
	if len(completed) != 1 || completed[0].ID != c.ID {
		t.Fatalf("completed view wrong: %+v", completed)
	}
	all := l.Filtered(model.FilterAll)
	if len(all) != 3 {
		t.Fatalf("all view wrong length: %d", len(all))
	}

	// Views never change the underlying sequence.
	if total, _, _ := l.Counts(); total != 3 {
		t.Fatalf("filter mutated list: total=%d", total)
	}

	// Mutating the returned slice must not leak into the list.
	all[0].Text = "mutated"
	if got, _ := l.Find(a.ID); got.Text != "active one" {
		t.Fatalf("view aliased underlying storage")
	}
}

func TestPersistence_RoundTrip(t *testing.T) {
	s := openStore(t)

	l := Load(s)
	first, _ := l.Add("Buy milk")
	l.Add("Write report")
	l.Toggle(first.ID)

	// A fresh list over the same store sees the identical sequence.
	l2 := Load(s)
	want := l.Tasks()
	got := l2.Tasks()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: %d != %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("task %d mismatch: %+v != %+v", i, got[i], want[i])
		}
	}
}

func TestScenario_AddToggleDelete(t *testing.T) {
	s := openStore(t)
	l := Load(s)

	first, _ := l.Add("Buy milk")
	l.Add("Write report")

	got := l.Tasks()
	if got[0].Text != "Buy milk" || got[0].Completed {
		t.Fatalf("first task wrong: %+v", got[0])
	}
	if got[1].Text != "Write report" || got[1].Completed {
		t.Fatalf("second task wrong: %+v", got[1])
	}

	l.Toggle(first.ID)
	if task, _ := l.Find(first.ID); !task.Completed {
		t.Fatalf("toggle did not complete first task")
	}
	if total, active, completed := l.Counts(); total != 2 || active != 1 || completed != 1 {
		t.Fatalf("counts = (%d,%d,%d)", total, active, completed)
	}

	l.Delete(first.ID)
	got = l.Tasks()
	if len(got) != 1 || got[0].Text != "Write report" || got[0].Completed {
		t.Fatalf("after delete: %+v", got)
	}
	if total, active, completed := l.Counts(); total != 1 || active != 1 || completed != 0 {
		t.Fatalf("counts = (%d,%d,%d)", total, active, completed)
	}
}

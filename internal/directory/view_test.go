package directory

import (
	"fmt"
	"testing"
)

func fakeUsers(n int) []User {
	out := make([]User, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, User{
			ID:    i,
			Name:  fmt.Sprintf("User %c", 'A'+i-1),
			Email: fmt.Sprintf("user%d@example.com", i),
		})
	}
	return out
}

func TestMatches_CaseInsensitiveNameOrEmail(t *testing.T) {
	u := User{Name: "Leanne Graham", Email: "Sincere@april.biz"}
	for _, q := range []string{"leanne", "GRAHAM", "sincere", "APRIL.BIZ", ""} {
		if !Matches(u, q) {
			t.Fatalf("Matches(%q) = false", q)
		}
	}
	if Matches(u, "zzz") {
		t.Fatalf("Matches(zzz) = true")
	}
}

func TestSetQuery_ResetsPage(t *testing.T) {
	v := NewView()
	v.Page = 3
	v.SetQuery("ann")
	if v.Page != 1 {
		t.Fatalf("page after query change = %d", v.Page)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 0}, {1, 1}, {4, 1}, {5, 2}, {8, 2}, {9, 3}, {10, 3},
	}
	for _, tc := range cases {
		v := NewView()
		if got := v.TotalPages(fakeUsers(tc.n)); got != tc.want {
			t.Fatalf("TotalPages(n=%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestVisible_EmptySet(t *testing.T) {
	v := NewView()
	if rows := v.Visible(nil); len(rows) != 0 {
		t.Fatalf("expected zero rows, got %d", len(rows))
	}
	if v.TotalPages(nil) != 0 {
		t.Fatalf("TotalPages of empty set != 0")
	}
	if v.HasPrev() || v.HasNext(nil) {
		t.Fatalf("prev/next should be disabled on empty set")
	}
}

func TestVisible_WindowsAndClamping(t *testing.T) {
	users := fakeUsers(10)
	v := NewView()

	page1 := v.Visible(users)
	if len(page1) != 4 || page1[0].ID != 1 || page1[3].ID != 4 {
		t.Fatalf("page 1 wrong: %+v", page1)
	}

	v.Next(users)
	v.Next(users)
	page3 := v.Visible(users)
	if len(page3) != 2 || page3[0].ID != 9 {
		t.Fatalf("page 3 wrong: %+v", page3)
	}
	if v.HasNext(users) {
		t.Fatalf("next should be disabled on last page")
	}

	// Next at the last page stays put.
	v.Next(users)
	if v.Page != 3 {
		t.Fatalf("page after clamped next = %d", v.Page)
	}

	v.Prev()
	v.Prev()
	v.Prev() // clamped at 1
	if v.Page != 1 || v.HasPrev() {
		t.Fatalf("prev clamping broken: page=%d", v.Page)
	}
}

func TestVisible_NeverMutatesCollection(t *testing.T) {
	users := fakeUsers(6)
	v := NewView()
	v.SetQuery("user2")
	_ = v.Visible(users)
	_ = v.Filtered(users)
	if len(users) != 6 || users[0].ID != 1 || users[5].ID != 6 {
		t.Fatalf("view mutated the fetched collection")
	}
}

func TestScenario_SearchThenPaginate(t *testing.T) {
	// 10 users; a query matching 6 of them paginates as 4 + 2.
	users := fakeUsers(10)
	for i := range users {
		if i < 6 {
			users[i].Name = fmt.Sprintf("Anna %d", i+1)
		} else {
			users[i].Name = fmt.Sprintf("Bob %d", i+1)
		}
	}

	v := NewView()
	v.SetQuery("anna")
	if got := v.TotalPages(users); got != 2 {
		t.Fatalf("TotalPages = %d", got)
	}

	page1 := v.Visible(users)
	if len(page1) != 4 || page1[0].ID != 1 || page1[3].ID != 4 {
		t.Fatalf("page 1: %+v", page1)
	}

	v.Next(users)
	page2 := v.Visible(users)
	if len(page2) != 2 || page2[0].ID != 5 || page2[1].ID != 6 {
		t.Fatalf("page 2: %+v", page2)
	}
}

func TestClamp_AfterFilterShrinks(t *testing.T) {
	users := fakeUsers(10)
	v := NewView()
	v.Page = 3
	v.Query = "user1" // matches user1 and user10
	v.Clamp(users)
	if v.Page != 1 {
		t.Fatalf("clamped page = %d", v.Page)
	}
}

package mailinglist_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"collab-dashboard/internal/mailinglist"
)

func TestDerive(t *testing.T) {
	items := []mailinglist.ListItem{
		mailinglist.ListItem{ID: 1, Name: "Team Alpha", ContactAddress: "alpha@x.com"}.WithActive(true),
		mailinglist.ListItem{ID: 2, Name: "Beta", ContactAddress: "TEAM@x.com"}.WithActive(false),
		mailinglist.ListItem{ID: 3, Name: "Gamma", ContactAddress: "g@x.com"}.WithActive(true),
	}

	tests := []struct {
		name   string
		search string
		status mailinglist.Status
		want   []int64
	}{
		{"no filters", "", "", []int64{1, 2, 3}},
		{"search matches name or address", "team", "", []int64{1, 2}},
		{"search is case-insensitive", "ALPHA", "", []int64{1}},
		{"status only", "", mailinglist.StatusActive, []int64{1, 3}},
		{"search and status", "team", mailinglist.StatusInactive, []int64{2}},
		{"nothing matches", "zzz", "", []int64{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := mailinglist.Derive(items, tc.search, tc.status)
			ids := []int64{}
			for _, it := range got {
				ids = append(ids, it.ID)
			}
			if diff := cmp.Diff(tc.want, ids); diff != "" {
				t.Fatalf("unexpected ids (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeriveDoesNotAlias(t *testing.T) {
	items := []mailinglist.ListItem{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	before := append([]mailinglist.ListItem(nil), items...)

	got := mailinglist.Derive(items, "", "")
	got[0].Name = "changed"

	if diff := cmp.Diff(before, items); diff != "" {
		t.Fatalf("input modified (-want +got):\n%s", diff)
	}
	if out := mailinglist.Derive(nil, "x", ""); out == nil {
		t.Fatal("expected non-nil empty slice")
	}
}

package view

import (
	"testing"

	"tripboard/internal/domain/paging"
)

func labels(links []PageLink) []string {
	out := make([]string, 0, len(links))
	for _, l := range links {
		out = append(out, l.Label)
	}
	return out
}

func TestControls(t *testing.T) {
	tests := []struct {
		name       string
		state      paging.State
		limit      int
		want       []string
		wantActive string
		prevOff    bool
		nextOff    bool
	}{
		{
			name:       "single page",
			state:      paging.State{TotalItems: 3, PageSize: 5, CurrentPage: 1},
			limit:      10,
			want:       []string{"«", "1", "»"},
			wantActive: "1",
			prevOff:    true,
			nextOff:    true,
		},
		{
			name:       "middle of long list",
			state:      paging.State{TotalItems: 200, PageSize: 5, CurrentPage: 20},
			limit:      5,
			want:       []string{"«", "1", "...", "18", "19", "20", "21", "22", "...", "40", "»"},
			wantActive: "20",
		},
		{
			name:       "first page",
			state:      paging.State{TotalItems: 47, PageSize: 5, CurrentPage: 1},
			limit:      3,
			want:       []string{"«", "1", "2", "3", "...", "10", "»"},
			wantActive: "1",
			prevOff:    true,
		},
		{
			name:       "last page",
			state:      paging.State{TotalItems: 47, PageSize: 5, CurrentPage: 10},
			limit:      3,
			want:       []string{"«", "1", "...", "8", "9", "10", "»"},
			wantActive: "10",
			nextOff:    true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			w, err := paging.Compute(tc.state, tc.limit)
			if err != nil {
				t.Fatalf("compute: %v", err)
			}
			links := Controls(w, "/")
			got := labels(links)
			if len(got) != len(tc.want) {
				t.Fatalf("labels = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("labels = %v, want %v", got, tc.want)
				}
			}

			active := 0
			for _, l := range links {
				if l.Active {
					active++
					if l.Label != tc.wantActive {
						t.Fatalf("active = %q, want %q", l.Label, tc.wantActive)
					}
				}
			}
			if active != 1 {
				t.Fatalf("expected exactly one active link, got %d", active)
			}
			if links[0].Disabled != tc.prevOff || links[len(links)-1].Disabled != tc.nextOff {
				t.Fatalf("prev/next disabled = %v/%v, want %v/%v", links[0].Disabled, links[len(links)-1].Disabled, tc.prevOff, tc.nextOff)
			}
		})
	}
}

func TestControlsHrefs(t *testing.T) {
	w, err := paging.Compute(paging.State{TotalItems: 30, PageSize: 5, CurrentPage: 2}, 10)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	links := Controls(w, "/employees/7")
	if links[0].Href != "/employees/7?page=1" {
		t.Fatalf("unexpected prev href %q", links[0].Href)
	}
	if last := links[len(links)-1]; last.Href != "/employees/7?page=3" {
		t.Fatalf("unexpected next href %q", last.Href)
	}
}

func TestControlsZeroWindow(t *testing.T) {
	if links := Controls(paging.Window{}, "/"); links != nil {
		t.Fatalf("expected no controls for zero window, got %v", labels(links))
	}
}

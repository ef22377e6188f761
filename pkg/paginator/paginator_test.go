package paginator

import "testing"

func TestAdjust(t *testing.T) {
	tests := []struct {
		name string
		in   PaginateQuery
		want PaginateQuery
	}{
		{"zero values", PaginateQuery{}, PaginateQuery{Page: DefaultPage, Limit: DefaultLimit}},
		{"negative page", PaginateQuery{Page: -3, Limit: 5}, PaginateQuery{Page: 1, Limit: 5}},
		{"limit capped", PaginateQuery{Page: 2, Limit: 500}, PaginateQuery{Page: 2, Limit: MaxLimit}},
		{"valid kept", PaginateQuery{Page: 4, Limit: 20}, PaginateQuery{Page: 4, Limit: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			got.Adjust()
			if got != tt.want {
				t.Errorf("Adjust mismatch: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResult(t *testing.T) {
	q := PaginateQuery{Page: 2, Limit: 10}
	if got := q.Offset(); got != 10 {
		t.Errorf("Offset mismatch: got %d, want 10", got)
	}

	resp := q.Result(25, 10).ToResponse()
	if resp.TotalPages != 3 {
		t.Errorf("TotalPages mismatch: got %d, want 3", resp.TotalPages)
	}
	if !resp.HasNext || !resp.HasPrev {
		t.Errorf("HasNext/HasPrev mismatch: got %v/%v, want true/true", resp.HasNext, resp.HasPrev)
	}

	last := PaginateQuery{Page: 3, Limit: 10}.Result(25, 5)
	if last.HasNextPage() {
		t.Error("last page should not have a next page")
	}
	if empty := (Paginator{}); empty.TotalPages() != 0 {
		t.Errorf("TotalPages mismatch: got %d, want 0", empty.TotalPages())
	}
}

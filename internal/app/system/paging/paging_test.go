package paging

import (
	"net/http/httptest"
	"testing"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want int64
	}{
		{"missing", "/pets", 1},
		{"valid", "/pets?page=3", 3},
		{"zero", "/pets?page=0", 1},
		{"negative", "/pets?page=-2", 1},
		{"garbage", "/pets?page=abc", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			if got := ParsePage(r); got != tt.want {
				t.Errorf("ParsePage(%q) = %d, want %d", tt.url, got, tt.want)
			}
		})
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want int64
	}{
		{"missing", "/pets", DefaultLimit},
		{"valid", "/pets?limit=25", 25},
		{"zero", "/pets?limit=0", DefaultLimit},
		{"over max", "/pets?limit=5000", MaxLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			if got := ParseLimit(r); got != tt.want {
				t.Errorf("ParseLimit(%q) = %d, want %d", tt.url, got, tt.want)
			}
		})
	}
}

func TestMergeWindow(t *testing.T) {
	tests := []struct {
		name         string
		page, limit  int64
		primaryTotal int64
		want         Window
	}{
		{
			name: "page inside primary",
			page: 1, limit: 2, primaryTotal: 3,
			want: Window{Primary: Segment{Skip: 0, Limit: 2}},
		},
		{
			name: "primary runs out mid-page",
			page: 2, limit: 2, primaryTotal: 3,
			want: Window{
				Primary:  Segment{Skip: 2, Limit: 1},
				Fallback: Segment{Skip: 0, Limit: 1},
			},
		},
		{
			name: "page entirely past primary",
			page: 3, limit: 2, primaryTotal: 3,
			want: Window{Fallback: Segment{Skip: 1, Limit: 2}},
		},
		{
			name: "skip lands exactly on primary boundary",
			page: 3, limit: 2, primaryTotal: 4,
			want: Window{Fallback: Segment{Skip: 0, Limit: 2}},
		},
		{
			name: "empty primary",
			page: 1, limit: 5, primaryTotal: 0,
			want: Window{Fallback: Segment{Skip: 0, Limit: 5}},
		},
		{
			name: "page below one treated as first",
			page: 0, limit: 4, primaryTotal: 10,
			want: Window{Primary: Segment{Skip: 0, Limit: 4}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeWindow(tt.page, tt.limit, tt.primaryTotal)
			if got != tt.want {
				t.Errorf("MergeWindow(%d,%d,%d) = %+v, want %+v",
					tt.page, tt.limit, tt.primaryTotal, got, tt.want)
			}
		})
	}
}

// TestMergeWindow_Completeness walks every page for many dog/cat splits
// and checks the concatenated windows reproduce the full virtual
// sequence exactly once, in order.
func TestMergeWindow_Completeness(t *testing.T) {
	for primary := int64(0); primary <= 7; primary++ {
		for secondary := int64(0); secondary <= 7; secondary++ {
			for limit := int64(1); limit <= 5; limit++ {
				total := primary + secondary
				var got []int64
				for page := int64(1); ; page++ {
					w := MergeWindow(page, limit, primary)
					n := 0
					for i := int64(0); i < w.Primary.Limit; i++ {
						idx := w.Primary.Skip + i
						if idx < primary {
							got = append(got, idx)
							n++
						}
					}
					for i := int64(0); i < w.Fallback.Limit; i++ {
						idx := w.Fallback.Skip + i
						if idx < secondary {
							got = append(got, primary+idx)
							n++
						}
					}
					if n == 0 {
						break
					}
				}
				if int64(len(got)) != total {
					t.Fatalf("dogs=%d cats=%d limit=%d: got %d items, want %d",
						primary, secondary, limit, len(got), total)
				}
				for i, v := range got {
					if v != int64(i) {
						t.Fatalf("dogs=%d cats=%d limit=%d: item %d = %d, want %d",
							primary, secondary, limit, i, v, i)
					}
				}
			}
		}
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, limit, want int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{5, 2, 3},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.limit); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}

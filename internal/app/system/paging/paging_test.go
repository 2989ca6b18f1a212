package paging

import (
	"net/http/httptest"
	"testing"
)

func TestParse_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/assessments", nil)
	spec := Parse(r, "-updated_at", "updated_at", "title")

	if spec.Page != 1 {
		t.Errorf("Page = %d, want 1", spec.Page)
	}
	if spec.Size != DefaultSize {
		t.Errorf("Size = %d, want %d", spec.Size, DefaultSize)
	}
	if spec.Sort != "-updated_at" {
		t.Errorf("Sort = %q, want -updated_at", spec.Sort)
	}
}

func TestParse_Values(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want PageSpec
	}{
		{
			name: "explicit page and size",
			url:  "/assessments?page=3&size=25",
			want: PageSpec{Page: 3, Size: 25, Sort: "-updated_at"},
		},
		{
			name: "allowed ascending sort",
			url:  "/assessments?sort=title",
			want: PageSpec{Page: 1, Size: DefaultSize, Sort: "title"},
		},
		{
			name: "allowed descending sort",
			url:  "/assessments?sort=-title",
			want: PageSpec{Page: 1, Size: DefaultSize, Sort: "-title"},
		},
		{
			name: "disallowed sort falls back",
			url:  "/assessments?sort=secret_field",
			want: PageSpec{Page: 1, Size: DefaultSize, Sort: "-updated_at"},
		},
		{
			name: "size capped at max",
			url:  "/assessments?size=10000",
			want: PageSpec{Page: 1, Size: MaxSize, Sort: "-updated_at"},
		},
		{
			name: "garbage values ignored",
			url:  "/assessments?page=abc&size=-5",
			want: PageSpec{Page: 1, Size: DefaultSize, Sort: "-updated_at"},
		},
		{
			name: "zero page ignored",
			url:  "/assessments?page=0",
			want: PageSpec{Page: 1, Size: DefaultSize, Sort: "-updated_at"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			got := Parse(r, "-updated_at", "updated_at", "title")
			if got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestKey_CoversAllParameters(t *testing.T) {
	a := PageSpec{Page: 1, Size: 50, Sort: "-updated_at"}
	b := PageSpec{Page: 2, Size: 50, Sort: "-updated_at"}
	c := PageSpec{Page: 1, Size: 25, Sort: "-updated_at"}
	d := PageSpec{Page: 1, Size: 50, Sort: "title"}

	keys := map[string]bool{}
	for _, spec := range []PageSpec{a, b, c, d} {
		k := spec.Key()
		if keys[k] {
			t.Errorf("duplicate key %q for distinct specs", k)
		}
		keys[k] = true
	}
}

func TestSkip(t *testing.T) {
	tests := []struct {
		page, size int
		want       int64
	}{
		{1, 50, 0},
		{2, 50, 50},
		{3, 25, 50},
	}
	for _, tt := range tests {
		spec := PageSpec{Page: tt.page, Size: tt.size}
		if got := spec.Skip(); got != tt.want {
			t.Errorf("Skip() for page=%d size=%d = %d, want %d", tt.page, tt.size, got, tt.want)
		}
	}
}

package articles

import "testing"

func TestSlugify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		title string
		want  string
	}{
		{"Hello World! 2024", "hello-world-2024"},
		{"  --Already--Hyphenated--  ", "already-hyphenated"},
		{"Fed Raises Rates: What It Means", "fed-raises-rates-what-it-means"},
		{"UPPER lower 42", "upper-lower-42"},
		{"!!!", ""},
		{"a", "a"},
	}

	for _, tc := range cases {
		if got := Slugify(tc.title); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestSlugify_Deterministic(t *testing.T) {
	t.Parallel()

	const title = "Markets Rally; Tech Leads the Way (Again)"
	first := Slugify(title)
	for i := 0; i < 3; i++ {
		if got := Slugify(title); got != first {
			t.Fatalf("Slugify not deterministic: %q then %q", first, got)
		}
	}
}

func TestHasMore(t *testing.T) {
	t.Parallel()

	cases := []struct {
		skip, returned int
		total          int64
		want           bool
	}{
		{0, 5, 8, true},
		{5, 3, 8, false},
		{0, 10, 10, false},
		{0, 0, 0, false},
		{10, 0, 8, false},
	}

	for _, tc := range cases {
		if got := HasMore(tc.skip, tc.returned, tc.total); got != tc.want {
			t.Errorf("HasMore(%d, %d, %d) = %v, want %v", tc.skip, tc.returned, tc.total, got, tc.want)
		}
	}
}

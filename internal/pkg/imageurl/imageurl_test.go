package imageurl

import "testing"

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"//images.ctfassets.net/x.jpg":       "https://images.ctfassets.net/x.jpg",
		"https://images.ctfassets.net/x.jpg": "https://images.ctfassets.net/x.jpg",
		"  //cdn.example.com/y.png ":         "https://cdn.example.com/y.png",
		"":                                   "",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestThumbnailAndFull(t *testing.T) {
	raw := "//cdn.example.com/x.jpg"

	if got := Thumbnail(raw, false); got != "https://cdn.example.com/x.jpg?w=600&q=75&fm=webp" {
		t.Fatalf("unexpected thumbnail %q", got)
	}
	if got := Thumbnail(raw, true); got != "https://cdn.example.com/x.jpg?w=400&q=75&fm=webp" {
		t.Fatalf("unexpected mobile thumbnail %q", got)
	}
	if got := Full(raw); got != "https://cdn.example.com/x.jpg?q=75&fm=webp" {
		t.Fatalf("unexpected full url %q", got)
	}
}

func TestOptimizeBounds(t *testing.T) {
	raw := "https://cdn.example.com/x.jpg"

	t.Run("width over limit is dropped", func(t *testing.T) {
		if got := Optimize(raw, Options{Width: 5000}); got != raw+"?q=75&fm=webp" {
			t.Fatalf("got %q", got)
		}
	})
	t.Run("quality out of range is dropped", func(t *testing.T) {
		if got := Optimize(raw, Options{Width: 100, Quality: 150}); got != raw+"?w=100&fm=webp" {
			t.Fatalf("got %q", got)
		}
	})
	t.Run("non webp format adds no fm", func(t *testing.T) {
		if got := Optimize(raw, Options{Format: "jpg"}); got != raw+"?q=75" {
			t.Fatalf("got %q", got)
		}
	})
	t.Run("existing parameters are replaced", func(t *testing.T) {
		if got := Optimize(raw+"?w=10&v=2", Options{Width: 600}); got != raw+"?v=2&w=600&q=75&fm=webp" {
			t.Fatalf("got %q", got)
		}
	})
}

func TestOptimizeFallsBackForNonAbsoluteURLs(t *testing.T) {
	cases := []string{"/images/hero.jpg", "not a url", "https://%zz"}
	for _, raw := range cases {
		if got := Optimize(raw, Options{Width: 600}); got != raw {
			t.Fatalf("Optimize(%q): expected fallback, got %q", raw, got)
		}
	}
}

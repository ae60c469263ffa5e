package binding

import "testing"

func sampleData() any {
	return map[string]any{
		"user": map[string]any{
			"name": "Ada",
		},
		"items": []any{
			map[string]any{"title": "First"},
			map[string]any{"title": "Second"},
		},
		"count": 3.0,
	}
}

func TestInterpolate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, ${user.name}!", "Hello, Ada!"},
		{"${items[1].title} of ${count}", "Second of 3"},
		{"${items.0.title}", "First"},
		{"${missing.path} stays", "${missing.path} stays"},
		{"no placeholder", "no placeholder"},
		{"${items[9].title}", "${items[9].title}"},
	}
	for _, c := range cases {
		if got := Interpolate(c.in, sampleData()); got != c.want {
			t.Fatalf("Interpolate(%q) = %q, 期望 %q", c.in, got, c.want)
		}
	}
}

func TestInterpolateNilData(t *testing.T) {
	if got := Interpolate("Hello, ${user.name}!", nil); got != "Hello, ${user.name}!" {
		t.Fatalf("data 为空时应保留占位符，实际 %q", got)
	}
}

func TestLookup(t *testing.T) {
	if v, ok := Lookup(sampleData(), "items[0].title"); !ok || v != "First" {
		t.Fatalf("Lookup items[0].title = %v, %v", v, ok)
	}
	if _, ok := Lookup(sampleData(), "user.name.deep"); ok {
		t.Fatalf("标量继续下钻应失败")
	}
	if _, ok := Lookup(sampleData(), "items[bad]"); ok {
		t.Fatalf("非法下标应失败")
	}
}

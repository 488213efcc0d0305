package screenshot

import (
	"errors"
	"testing"

	go_json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

func TestOptionsCopyOnWrite(t *testing.T) {
	t.Parallel()

	base := URL("https://example.com")
	wide := base.Width(1920)

	if base.Has(KeyWidth) {
		t.Fatal("setter modified the receiver")
	}
	if got, _ := wide.Get(KeyWidth); got != 1920 {
		t.Errorf("wide width = %v, want 1920", got)
	}

	narrow := wide.Width(320)
	if got, _ := wide.Get(KeyWidth); got != 1920 {
		t.Errorf("overwriting on a copy changed the original: width = %v", got)
	}
	if got, _ := narrow.Get(KeyWidth); got != 320 {
		t.Errorf("narrow width = %v, want 320", got)
	}

	removed := narrow.Without(KeyWidth)
	if removed.Has(KeyWidth) || !narrow.Has(KeyWidth) {
		t.Error("Without must only affect the returned copy")
	}
}

func TestOptionsDoNotAliasCallerContainers(t *testing.T) {
	t.Parallel()

	selectors := []string{".ad", ".popup"}
	headers := map[string]string{"X-Test": "1"}
	o := URL("https://example.com").Hide(selectors...).Headers(headers)

	selectors[0] = "mutated"
	headers["X-Test"] = "mutated"

	cfg := o.ToConfig()
	want := map[string]any{
		KeyURL:     "https://example.com",
		KeyHide:    []string{".ad", ".popup"},
		KeyHeaders: map[string]string{"X-Test": "1"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("ToConfig() mismatch (-want +got):\n%s", diff)
	}

	cfg[KeyURL] = "https://changed.example"
	if got, _ := o.Get(KeyURL); got != "https://example.com" {
		t.Errorf("ToConfig result aliases the options: url = %v", got)
	}
}

func TestFromMapRoundTrip(t *testing.T) {
	t.Parallel()

	src := map[string]any{
		KeyURL:      "https://example.com",
		KeyWidth:    1280,
		KeyFullPage: true,
		"custom":    "kept",
	}
	o := FromMap(src)
	src[KeyWidth] = 1

	want := map[string]any{
		KeyURL:      "https://example.com",
		KeyWidth:    1280,
		KeyFullPage: true,
		"custom":    "kept",
	}
	if diff := cmp.Diff(want, o.ToConfig()); diff != "" {
		t.Errorf("FromMap().ToConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestToParams(t *testing.T) {
	t.Parallel()

	o := URL("https://example.com").
		Viewport(1280, 720).
		Scale(2).
		Mobile(false).
		FullPage(true).
		Format(FormatPDF).
		PDFLandscape(true).
		PDFPaperSize("a4").
		StorageEnabled(true).
		StoragePath("shots/{date}.pdf").
		BlockAds(true).
		With("experimental_flag", "x")

	want := map[string]any{
		"url":               "https://example.com",
		"full_page":         true,
		"format":            "pdf",
		"block_ads":         true,
		"experimental_flag": "x",
		"viewport": map[string]any{
			"width":  1280,
			"height": 720,
			"scale":  2.0,
			"mobile": false,
		},
		"pdf": map[string]any{
			"landscape":  true,
			"paper_size": "a4",
		},
		"storage": map[string]any{
			"enabled": true,
			"path":    "shots/{date}.pdf",
		},
	}

	if diff := cmp.Diff(want, o.ToParams()); diff != "" {
		t.Errorf("ToParams() mismatch (-want +got):\n%s", diff)
	}
}

func TestToParamsGroupNameCollision(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Options
		want map[string]any
	}{
		{
			name: "map merges with grouped options",
			in:   URL("https://example.com").With("viewport", map[string]any{"foo": 1, "width": 5}).With(KeyWidth, 10),
			want: map[string]any{
				"url":      "https://example.com",
				"viewport": map[string]any{"foo": 1, "width": 10},
			},
		},
		{
			name: "non-map value is replaced",
			in:   URL("https://example.com").With("pdf", "yes").With(KeyPDFLandscape, true),
			want: map[string]any{
				"url": "https://example.com",
				"pdf": map[string]any{"landscape": true},
			},
		},
		{
			name: "map without grouped options passes through",
			in:   URL("https://example.com").With("storage", map[string]any{"bucket": "b"}),
			want: map[string]any{
				"url":     "https://example.com",
				"storage": map[string]any{"bucket": "b"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for range 50 {
				if diff := cmp.Diff(tt.want, tt.in.ToParams()); diff != "" {
					t.Fatalf("ToParams() mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestToQueryString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "empty",
			opts: Options{},
			want: "",
		},
		{
			name: "keys sorted and values encoded",
			opts: URL("https://example.com/a?b=c").Width(800).DarkMode(true),
			want: "dark_mode=true&url=https%3A%2F%2Fexample.com%2Fa%3Fb%3Dc&width=800",
		},
		{
			name: "lists are comma joined",
			opts: Options{}.Hide(".a", ".b"),
			want: "hide=.a%2C.b",
		},
		{
			name: "maps are json encoded",
			opts: Options{}.AuthBasic("u", "p"),
			want: "auth_basic=%7B%22password%22%3A%22p%22%2C%22username%22%3A%22u%22%7D",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.opts.ToQueryString(); got != tt.want {
				t.Errorf("ToQueryString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStringify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "true", value: true, want: "true"},
		{name: "false", value: false, want: "false"},
		{name: "int", value: 1280, want: "1280"},
		{name: "int64", value: int64(-5), want: "-5"},
		{name: "whole float", value: 2.0, want: "2"},
		{name: "fraction", value: 1.5, want: "1.5"},
		{name: "float32", value: float32(0.25), want: "0.25"},
		{name: "json number", value: go_json.Number("42"), want: "42"},
		{name: "string", value: "networkidle", want: "networkidle"},
		{name: "format", value: FormatWebP, want: "webp"},
		{name: "string list", value: []string{"a", "b"}, want: "a,b"},
		{name: "nil", value: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Stringify(tt.value); got != tt.want {
				t.Errorf("Stringify(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	if err := URL("https://example.com").Validate(); err != nil {
		t.Errorf("url target: unexpected error %v", err)
	}
	if err := HTML("<h1>hi</h1>").Validate(); err != nil {
		t.Errorf("html target: unexpected error %v", err)
	}
	if err := (Options{}).Width(100).Validate(); !errors.Is(err, ErrMissingTarget) {
		t.Errorf("no target: error = %v, want ErrMissingTarget", err)
	}
	if err := URL("").Validate(); !errors.Is(err, ErrMissingTarget) {
		t.Errorf("empty url: error = %v, want ErrMissingTarget", err)
	}
}

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	body, err := go_json.Marshal(URL("https://example.com").Width(640))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got map[string]any
	if err := go_json.Unmarshal(body, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	want := map[string]any{
		"url":      "https://example.com",
		"viewport": map[string]any{"width": float64(640)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("json body mismatch (-want +got):\n%s", diff)
	}
}

func TestTableFamilies(t *testing.T) {
	t.Parallel()

	for key, s := range table {
		if s.family == "" {
			t.Errorf("option %q has no family", key)
		}
		if (s.group == "") != (s.param == "") {
			t.Errorf("option %q: group %q and param %q must be set together", key, s.group, s.param)
		}
	}

	if f, ok := FamilyOf(KeyPDFMarginTop); !ok || f != FamilyPDF {
		t.Errorf("FamilyOf(%q) = %q, %v", KeyPDFMarginTop, f, ok)
	}
	if Known("inject_everything") {
		t.Error("unknown key reported as known")
	}
}

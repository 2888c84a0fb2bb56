package layout

import "testing"

func TestPx(t *testing.T) {
	tests := map[string]struct {
		in   float64
		want string
	}{
		"integer":  {in: 10, want: "10px"},
		"zero":     {in: 0, want: "0px"},
		"negative": {in: -4, want: "-4px"},
		"fraction": {in: 12.5, want: "12.5px"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Px(tt.in); got != tt.want {
				t.Errorf("Px(%v) = %q, want %q", tt.in, got, tt.want)
			}
			back, ok := ParsePx(tt.want)
			if !ok || back != tt.in {
				t.Errorf("ParsePx(%q) = %v, %v", tt.want, back, ok)
			}
		})
	}

	if _, ok := ParsePx("auto"); ok {
		t.Error("ParsePx(auto) should fail")
	}
}

func TestMerge(t *testing.T) {
	base := ParseDeclarations("color: red; top: 4px")
	got := FormatDeclarations(Merge(base,
		Declaration{Property: "top", Value: "0px"},
		Declaration{Property: "position", Value: "fixed"},
		Declaration{Property: "color", Value: ""},
	))

	want := "top: 0px; position: fixed;"
	if got != want {
		t.Errorf("Merge() = %q, want %q", got, want)
	}
}

func TestParseDeclarations_SkipsJunk(t *testing.T) {
	decls := ParseDeclarations(" ; nonsense ; Z-Index : 3 ;")
	if len(decls) != 1 {
		t.Fatalf("got %d declarations, want 1", len(decls))
	}
	if decls[0] != (Declaration{Property: "z-index", Value: "3"}) {
		t.Errorf("got %+v", decls[0])
	}
}

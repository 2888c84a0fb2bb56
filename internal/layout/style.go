package layout

import (
	"strconv"
	"strings"
)

// Declaration is a single inline CSS property assignment.
type Declaration struct {
	Property string
	Value    string
}

// Px formats a pixel length the way browsers serialize it ("12px", "12.5px").
func Px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// ParsePx parses a pixel length. Unitless numbers are accepted; anything
// else (auto, percentages, empty) reports ok=false.
func ParsePx(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseDeclarations splits a style attribute into declarations, preserving
// order. Later duplicates are kept; callers decide which wins.
func ParseDeclarations(attr string) []Declaration {
	var out []Declaration
	for _, part := range strings.Split(attr, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		if prop == "" {
			continue
		}
		out = append(out, Declaration{Property: prop, Value: strings.TrimSpace(value)})
	}
	return out
}

// FormatDeclarations serializes declarations back into a style attribute.
func FormatDeclarations(decls []Declaration) string {
	var b strings.Builder
	for i, d := range decls {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value)
		b.WriteByte(';')
	}
	return b.String()
}

// Merge applies updates over base. Existing properties are replaced in place,
// new ones are appended, and an empty value removes the property.
func Merge(base []Declaration, updates ...Declaration) []Declaration {
	out := append([]Declaration(nil), base...)
	for _, u := range updates {
		idx := -1
		for i := range out {
			if out[i].Property == u.Property {
				idx = i
				break
			}
		}
		switch {
		case u.Value == "" && idx >= 0:
			out = append(out[:idx], out[idx+1:]...)
		case u.Value == "":
		case idx >= 0:
			out[idx].Value = u.Value
		default:
			out = append(out, u)
		}
	}
	return out
}

package metadata

import (
	"strings"
	"time"
)

// Range is an inclusive numeric bound. Either side may be nil (unbounded).
type Range struct {
	Min *float64
	Max *float64
}

// TimeRange is an inclusive timestamp bound. Either side may be nil.
type TimeRange struct {
	From *time.Time
	To   *time.Time
}

// Filter is a conjunction of predicate groups evaluated against a document.
// All present groups must hold; absent groups are vacuously true. Within a
// group, every key must match.
//
// Coercion rules per group:
//   - Equals: strict typed equality; a missing key never matches.
//   - Contains: both sides lower-cased substring test; a missing key is
//     treated as the empty string.
//   - Range: the document value is coerced to a number; non-numeric values
//     never match. Min/Max are independently optional and inclusive.
//   - In/NotIn: membership test using typed equality against the raw value.
//   - TimeRange: the document value is coerced to a timestamp (RFC 3339
//     string or Unix milliseconds); an invalid date never matches. Bounds
//     are inclusive.
type Filter struct {
	Equals    map[string]Value
	Contains  map[string]string
	Range     map[string]Range
	In        map[string][]Value
	NotIn     map[string][]Value
	TimeRange map[string]TimeRange
}

// Matches checks if the provided document matches the filter.
// A nil filter matches every document.
func (f *Filter) Matches(doc Document) bool {
	if f == nil {
		return true
	}

	for key, want := range f.Equals {
		got, exists := doc[key]
		if !exists || !compareEqual(got, want) {
			return false
		}
	}

	for key, want := range f.Contains {
		got := strings.ToLower(doc[key].Text())
		if !strings.Contains(got, strings.ToLower(want)) {
			return false
		}
	}

	for key, bounds := range f.Range {
		n, ok := doc[key].Number()
		if !ok {
			return false
		}
		if bounds.Min != nil && n < *bounds.Min {
			return false
		}
		if bounds.Max != nil && n > *bounds.Max {
			return false
		}
	}

	for key, set := range f.In {
		got, exists := doc[key]
		if !exists || !containsValue(set, got) {
			return false
		}
	}

	for key, set := range f.NotIn {
		got, exists := doc[key]
		if exists && containsValue(set, got) {
			return false
		}
	}

	for key, bounds := range f.TimeRange {
		t, ok := doc[key].Time()
		if !ok {
			return false
		}
		if bounds.From != nil && t.Before(*bounds.From) {
			return false
		}
		if bounds.To != nil && t.After(*bounds.To) {
			return false
		}
	}

	return true
}

func containsValue(set []Value, v Value) bool {
	for _, item := range set {
		if compareEqual(v, item) {
			return true
		}
	}
	return false
}

// compareEqual compares two values for equality.
// Numbers compare across int/float kinds; other kinds must match exactly.
func compareEqual(a, b Value) bool {
	if a.Kind == KindNull && b.Kind == KindNull {
		return true
	}
	if a.Kind == KindNull || b.Kind == KindNull {
		return false
	}

	if isNumber(a) && isNumber(b) {
		if a.Kind == KindInt && b.Kind == KindInt {
			return a.I64 == b.I64
		}
		na, _ := a.Number()
		nb, _ := b.Number()
		return na == nb
	}

	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case KindString:
		return a.S == b.S
	case KindBool:
		return a.B == b.B
	case KindArray:
		if len(a.A) != len(b.A) {
			return false
		}
		for i := range a.A {
			if !compareEqual(a.A[i], b.A[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func isNumber(v Value) bool {
	return v.Kind == KindInt || v.Kind == KindFloat
}

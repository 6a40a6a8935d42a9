package metadata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestFilterMatches(t *testing.T) {
	doc := Document{
		"category": String("meal"),
		"name":     String("Grilled Chicken Bowl"),
		"calories": Int(480),
		"rating":   Float(4.5),
		"tags":     Strings("lean", "batch-prep"),
		"logged":   String("2026-03-14T12:00:00Z"),
	}

	t.Run("NilFilterMatchesAll", func(t *testing.T) {
		var f *Filter
		assert.True(t, f.Matches(doc))
	})

	t.Run("EmptyFilterMatchesAll", func(t *testing.T) {
		assert.True(t, (&Filter{}).Matches(doc))
	})

	t.Run("Equals", func(t *testing.T) {
		f := &Filter{Equals: map[string]Value{"category": String("meal")}}
		assert.True(t, f.Matches(doc))

		f = &Filter{Equals: map[string]Value{"category": String("ingredient")}}
		assert.False(t, f.Matches(doc))
	})

	t.Run("EqualsMissingKey", func(t *testing.T) {
		f := &Filter{Equals: map[string]Value{"cuisine": String("thai")}}
		assert.False(t, f.Matches(doc))
	})

	t.Run("EqualsCrossNumericKinds", func(t *testing.T) {
		f := &Filter{Equals: map[string]Value{"calories": Float(480)}}
		assert.True(t, f.Matches(doc))
	})

	t.Run("ContainsCaseInsensitive", func(t *testing.T) {
		f := &Filter{Contains: map[string]string{"name": "CHICKEN"}}
		assert.True(t, f.Matches(doc))

		f = &Filter{Contains: map[string]string{"name": "salmon"}}
		assert.False(t, f.Matches(doc))
	})

	t.Run("ContainsMissingKeyIsEmptyString", func(t *testing.T) {
		f := &Filter{Contains: map[string]string{"cuisine": "thai"}}
		assert.False(t, f.Matches(doc))

		// An empty needle matches everything, including a missing key.
		f = &Filter{Contains: map[string]string{"cuisine": ""}}
		assert.True(t, f.Matches(doc))
	})

	t.Run("ContainsCoercesNonStrings", func(t *testing.T) {
		f := &Filter{Contains: map[string]string{"calories": "48"}}
		assert.True(t, f.Matches(doc))
	})

	t.Run("RangeInclusive", func(t *testing.T) {
		f := &Filter{Range: map[string]Range{"calories": {Min: ptr(480.0)}}}
		assert.True(t, f.Matches(doc))

		f = &Filter{Range: map[string]Range{"calories": {Max: ptr(480.0)}}}
		assert.True(t, f.Matches(doc))

		f = &Filter{Range: map[string]Range{"calories": {Min: ptr(481.0)}}}
		assert.False(t, f.Matches(doc))

		f = &Filter{Range: map[string]Range{"rating": {Min: ptr(4.0), Max: ptr(5.0)}}}
		assert.True(t, f.Matches(doc))
	})

	t.Run("RangeNonNumericNeverMatches", func(t *testing.T) {
		f := &Filter{Range: map[string]Range{"name": {Min: ptr(0.0)}}}
		assert.False(t, f.Matches(doc))

		f = &Filter{Range: map[string]Range{"missing": {Min: ptr(0.0)}}}
		assert.False(t, f.Matches(doc))
	})

	t.Run("In", func(t *testing.T) {
		f := &Filter{In: map[string][]Value{"category": {String("meal"), String("snack")}}}
		assert.True(t, f.Matches(doc))

		f = &Filter{In: map[string][]Value{"category": {String("snack")}}}
		assert.False(t, f.Matches(doc))

		f = &Filter{In: map[string][]Value{"missing": {String("x")}}}
		assert.False(t, f.Matches(doc))
	})

	t.Run("NotIn", func(t *testing.T) {
		f := &Filter{NotIn: map[string][]Value{"category": {String("snack")}}}
		assert.True(t, f.Matches(doc))

		f = &Filter{NotIn: map[string][]Value{"category": {String("meal")}}}
		assert.False(t, f.Matches(doc))

		// A missing key is vacuously not in the set.
		f = &Filter{NotIn: map[string][]Value{"missing": {String("x")}}}
		assert.True(t, f.Matches(doc))
	})

	t.Run("TimeRange", func(t *testing.T) {
		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
		f := &Filter{TimeRange: map[string]TimeRange{"logged": {From: &from, To: &to}}}
		assert.True(t, f.Matches(doc))

		late := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		f = &Filter{TimeRange: map[string]TimeRange{"logged": {From: &late}}}
		assert.False(t, f.Matches(doc))
	})

	t.Run("TimeRangeInvalidDateNeverMatches", func(t *testing.T) {
		bad := Document{"logged": String("not-a-date")}
		from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		f := &Filter{TimeRange: map[string]TimeRange{"logged": {From: &from}}}
		assert.False(t, f.Matches(bad))
	})

	t.Run("TimeRangeUnixMillis", func(t *testing.T) {
		ms := Document{"logged": Int(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC).UnixMilli())}
		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		f := &Filter{TimeRange: map[string]TimeRange{"logged": {From: &from}}}
		assert.True(t, f.Matches(ms))
	})

	t.Run("GroupsAreConjunctive", func(t *testing.T) {
		f := &Filter{
			Equals:   map[string]Value{"category": String("meal")},
			Contains: map[string]string{"name": "chicken"},
			Range:    map[string]Range{"calories": {Max: ptr(500.0)}},
		}
		assert.True(t, f.Matches(doc))

		f.Range = map[string]Range{"calories": {Max: ptr(100.0)}}
		assert.False(t, f.Matches(doc))
	})
}

func TestValueCoercions(t *testing.T) {
	t.Run("Number", func(t *testing.T) {
		n, ok := Int(7).Number()
		assert.True(t, ok)
		assert.Equal(t, 7.0, n)

		_, ok = String("7").Number()
		assert.False(t, ok)
	})

	t.Run("Text", func(t *testing.T) {
		assert.Equal(t, "7", Int(7).Text())
		assert.Equal(t, "true", Bool(true).Text())
		assert.Equal(t, "", Null().Text())
		assert.Equal(t, "a,b", Strings("a", "b").Text())
	})

	t.Run("Time", func(t *testing.T) {
		_, ok := Bool(true).Time()
		assert.False(t, ok)

		got, ok := String("2026-03-14T12:00:00Z").Time()
		assert.True(t, ok)
		assert.Equal(t, 2026, got.Year())
	})
}

func TestDocumentClone(t *testing.T) {
	doc := Document{"tags": Strings("a", "b")}
	clone := doc.Clone()
	clone["tags"].A[0] = String("mutated")
	assert.Equal(t, "a", doc["tags"].A[0].S)

	var nilDoc Document
	assert.Nil(t, nilDoc.Clone())
}

package metadata

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueJSON(t *testing.T) {
	doc := Document{
		"name":     String("quinoa"),
		"calories": Int(222),
		"rating":   Float(4.5),
		"plant":    Bool(true),
		"tags":     Strings("grain", "complete-protein"),
		"note":     Null(),
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var back Document
	require.NoError(t, json.Unmarshal(data, &back))

	assert.Equal(t, "quinoa", back["name"].S)
	assert.Equal(t, int64(222), back["calories"].I64)
	assert.Equal(t, 4.5, back["rating"].F64)
	assert.True(t, back["plant"].B)
	assert.Equal(t, KindArray, back["tags"].Kind)
	assert.Equal(t, KindNull, back["note"].Kind)
}

func TestValueAccessors(t *testing.T) {
	if s, ok := String("x").AsString(); assert.True(t, ok) {
		assert.Equal(t, "x", s)
	}
	_, ok := Int(1).AsString()
	assert.False(t, ok)

	if i, ok := Int(3).AsInt64(); assert.True(t, ok) {
		assert.Equal(t, int64(3), i)
	}
	if f, ok := Float(1.5).AsFloat64(); assert.True(t, ok) {
		assert.Equal(t, 1.5, f)
	}
	if b, ok := Bool(true).AsBool(); assert.True(t, ok) {
		assert.True(t, b)
	}
	if a, ok := Strings("a").AsArray(); assert.True(t, ok) {
		assert.Len(t, a, 1)
	}
	assert.Equal(t, "x", String("x").StringValue())
	assert.Equal(t, "", Int(1).StringValue())
}

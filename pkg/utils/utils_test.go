package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 100.5, ParseNumber("100.5"))
	assert.Equal(t, 0.0, ParseNumber(""))
	assert.Equal(t, 0.0, ParseNumber("abc"))
	assert.Equal(t, 0.0, ParseNumber("NaN"))
	assert.Equal(t, 3.0, ParseNumber(" 3 "))
}

func TestSafeDivide(t *testing.T) {
	assert.Equal(t, 0.0, SafeDivide(10, 0))
	assert.Equal(t, 0.0, SafeDivide(0, 0))
	assert.Equal(t, 2.5, SafeDivide(5, 2))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-04-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("")
	assert.ErrorIs(t, err, ErrEmptyDate)

	_, err = ParseDate("10/04/2025")
	assert.Error(t, err)
}

func TestDaysAgo(t *testing.T) {
	now := time.Date(2025, 4, 10, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC), DaysAgo(now, 7))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 10)

	state, err := GenerateState()
	require.NoError(t, err)
	assert.Len(t, state, 32)
}

func TestPrettyJson(t *testing.T) {
	assert.Equal(t, "{\n  \"a\": 1\n}", PrettyJson(map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}", PrettyJson([]byte(`{"a":1}`)))

	// Mesmo formato que o adsctl imprime após sheets-sync
	out := PrettyJson(struct {
		ExportID string `json:"exportId"`
		Rows     []int  `json:"rows"`
	}{ExportID: "abc", Rows: []int{1, 2}})
	assert.Equal(t, "{\n  \"exportId\": \"abc\",\n  \"rows\": [\n    1,\n    2\n  ]\n}", out)

	assert.Equal(t, "nao-json", PrettyJson([]byte("nao-json")))
}

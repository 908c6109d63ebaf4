package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYear(t *testing.T) {
	year, err := ParseYear("", 2026)
	require.NoError(t, err)
	assert.Equal(t, 2026, year, "empty input falls back to the current year")

	year, err = ParseYear("1965", 2026)
	require.NoError(t, err)
	assert.Equal(t, 1965, year)

	_, err = ParseYear("999", 2026)
	assert.Error(t, err)

	_, err = ParseYear("2027", 2026)
	assert.Error(t, err)

	_, err = ParseYear("not-a-year", 2026)
	assert.Error(t, err)
}

func TestParseYesNo(t *testing.T) {
	for _, input := range []string{"y", "Y"} {
		got, err := ParseYesNo(input)
		require.NoError(t, err)
		assert.True(t, got)
	}
	for _, input := range []string{"n", "N"} {
		got, err := ParseYesNo(input)
		require.NoError(t, err)
		assert.False(t, got)
	}

	_, err := ParseYesNo("")
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = ParseYesNo("maybe")
	assert.Error(t, err)
}

func TestGenreForChoice(t *testing.T) {
	genre, err := GenreForChoice("1")
	require.NoError(t, err)
	assert.Equal(t, "Fiction", genre)

	genre, err = GenreForChoice("16")
	require.NoError(t, err)
	assert.Equal(t, "Other", genre)

	_, err = GenreForChoice("0")
	assert.Error(t, err)

	_, err = GenreForChoice("17")
	assert.Error(t, err)

	_, err = GenreForChoice("abc")
	assert.Error(t, err)
}

func TestSearchFieldForOption(t *testing.T) {
	cases := map[string]string{"1": "title", "2": "author", "3": "genre"}
	for option, want := range cases {
		field, err := SearchFieldForOption(option)
		require.NoError(t, err)
		assert.Equal(t, want, field)
	}

	_, err := SearchFieldForOption("4")
	assert.Error(t, err)
}

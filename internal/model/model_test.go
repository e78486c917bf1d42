package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBook_AddAuthor(t *testing.T) {
	b := &Book{}
	b.AddAuthor("a1")
	b.AddAuthor("a2")
	b.AddAuthor("a1")

	assert.Equal(t, []string{"a1", "a2"}, b.AuthorIDs)
	assert.True(t, b.HasAuthor("a2"))
	assert.False(t, b.HasAuthor("a3"))
}

func TestDate_JSON(t *testing.T) {
	var a Author
	err := json.Unmarshal([]byte(`{"firstname":"Frank","lastname":"Herbert","birth_date":"1920-10-08"}`), &a)
	require.NoError(t, err)
	require.NotNil(t, a.BirthDate)
	assert.Equal(t, NewDate(1920, time.October, 8), *a.BirthDate)
	assert.Nil(t, a.DeathDate)

	out, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"birth_date":"1920-10-08"`)
	assert.NotContains(t, string(out), "death_date")

	err = json.Unmarshal([]byte(`{"birth_date":"08.10.1920"}`), &a)
	assert.Error(t, err)
}

func TestDate_Scan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(1986, time.February, 11, 13, 4, 0, 0, time.Local)))
	assert.Equal(t, "1986-02-11", d.String())

	require.NoError(t, d.Scan([]byte("1965-08-01")))
	assert.Equal(t, "1965-08-01", d.String())

	assert.Error(t, d.Scan(42))
}

func TestBookFilter_Empty(t *testing.T) {
	assert.True(t, BookFilter{}.Empty())

	genre := "scifi"
	assert.False(t, BookFilter{Genre: &genre}.Empty())
	assert.False(t, BookFilter{Authors: []string{}}.Empty())
}

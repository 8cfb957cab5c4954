package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadingTime(t *testing.T) {
	assert.Equal(t, int64(0), ReadingTime(""))
	assert.Equal(t, int64(0), ReadingTime("   \n\t  "))
	assert.Equal(t, int64(1), ReadingTime("one"))

	exactly200 := strings.TrimSpace(strings.Repeat("word ", 200))
	assert.Equal(t, int64(1), ReadingTime(exactly200))

	exactly201 := exactly200 + " extra"
	assert.Equal(t, int64(2), ReadingTime(exactly201))
}

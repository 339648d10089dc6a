package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromString_LineCountAndLine(t *testing.T) {
	s := FromString("Feature: X\n  Scenario: Y\n    Given z\n", "mem://a.feature")

	require.Equal(t, 3, s.LineCount())

	line1, ok := s.Line(1)
	require.True(t, ok)
	assert.Equal(t, "Feature: X", line1)

	line3, ok := s.Line(3)
	require.True(t, ok)
	assert.Equal(t, "    Given z", line3)

	assert.Equal(t, "mem://a.feature", s.URI())
}

func TestFromString_NoTrailingNewlineNoExtraLine(t *testing.T) {
	withNewline := FromString("a\nb\n", "")
	withoutNewline := FromString("a\nb", "")

	assert.Equal(t, withNewline.LineCount(), withoutNewline.LineCount())
	assert.Equal(t, 2, withoutNewline.LineCount())
}

func TestFromString_CRLF(t *testing.T) {
	s := FromString("a\r\nb\r\n", "")

	require.Equal(t, 2, s.LineCount())
	line1, _ := s.Line(1)
	line2, _ := s.Line(2)
	assert.Equal(t, "a", line1)
	assert.Equal(t, "b", line2)
}

func TestFromString_EmptyText(t *testing.T) {
	s := FromString("", "")
	assert.Equal(t, 0, s.LineCount())

	_, ok := s.Line(1)
	assert.False(t, ok)
}

func TestSource_LineOutOfRange(t *testing.T) {
	s := FromString("one line", "")

	_, ok := s.Line(0)
	assert.False(t, ok)

	_, ok = s.Line(2)
	assert.False(t, ok)
}

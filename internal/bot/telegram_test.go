package bot

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMessageShortTextPassesThrough(t *testing.T) {
	chunks := SplitMessage("Guten Morgen!", 100)
	assert.Equal(t, []string{"Guten Morgen!"}, chunks)
}

func TestSplitMessageEmptyText(t *testing.T) {
	chunks := SplitMessage("", 100)
	assert.Equal(t, []string{""}, chunks)
}

func TestSplitMessageBreaksAtParagraphBoundaries(t *testing.T) {
	a := strings.Repeat("a", 60)
	b := strings.Repeat("b", 60)
	c := strings.Repeat("c", 60)
	text := a + "\n\n" + b + "\n\n" + c

	chunks := SplitMessage(text, 130)

	require.Len(t, chunks, 2)
	assert.Equal(t, a+"\n\n"+b, chunks[0])
	assert.Equal(t, c, chunks[1])
}

func TestSplitMessageRespectsLimit(t *testing.T) {
	var paras []string
	for i := 0; i < 20; i++ {
		paras = append(paras, strings.Repeat("x", 50))
	}
	text := strings.Join(paras, "\n\n")

	chunks := SplitMessage(text, 120)

	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 120)
	}
}

func TestSplitMessageHardSplitsOversizedParagraph(t *testing.T) {
	text := strings.Repeat("z", 250)

	chunks := SplitMessage(text, 100)

	require.Len(t, chunks, 3)
	assert.Equal(t, strings.Repeat("z", 100), chunks[0])
	assert.Equal(t, strings.Repeat("z", 100), chunks[1])
	assert.Equal(t, strings.Repeat("z", 50), chunks[2])
}

func TestSplitMessageKeepsRunesIntact(t *testing.T) {
	// "ü" is two bytes; a limit of 5 would cut the third one in half if the
	// split counted bytes blindly.
	text := strings.Repeat("ü", 10)

	chunks := SplitMessage(text, 5)

	var rejoined string
	for _, chunk := range chunks {
		assert.True(t, utf8.ValidString(chunk), "chunk %q is not valid UTF-8", chunk)
		assert.LessOrEqual(t, len(chunk), 5)
		rejoined += chunk
	}
	assert.Equal(t, text, rejoined)
}

func TestSplitMessagePreservesOrderAndContent(t *testing.T) {
	paras := []string{
		strings.Repeat("1", 90),
		strings.Repeat("2", 90),
		strings.Repeat("3", 90),
		strings.Repeat("4", 90),
	}
	text := strings.Join(paras, "\n\n")

	chunks := SplitMessage(text, 100)

	rejoined := strings.Join(chunks, "\n\n")
	assert.Equal(t, text, rejoined)
}

package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	assert.Equal(t, `"First"`, quote("First"))
	assert.Equal(t, `""`, quote(""))
	assert.Equal(t, "`say \"hi\"\\n`", quote(`say "hi"\n`))
	assert.Equal(t, "`C:\\dir`", quote(`C:\dir`))
	assert.Equal(t, `"héllo\tworld"`, quote("héllo\tworld"))
	assert.Equal(t, `"\xff\x00"`, quote("\xff\x00"))

	// Backquotes cannot hold a newline or a backquote.
	assert.Equal(t, `"\"a\"\n"`, quote("\"a\"\n"))
	assert.Equal(t, "\"`\\\\\"", quote("`\\"))
}

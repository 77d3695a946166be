package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferClipNospaceSpace(t *testing.T) {
	var buf Buffer
	buf.Push(Token{text: "a", trailing: Space})
	buf.Push(Token{text: "b", trailing: Space})

	nospace(&buf)
	assert.Equal(t, NoSpace, buf[1].trailing)

	space(&buf)
	assert.Equal(t, Space, buf[1].trailing)

	clip(&buf)
	assert.Len(t, buf, 1)
	assert.Equal(t, "a", buf[0].text)

	clip(&buf)
	assert.Empty(t, buf)
	clip(&buf) // no-op on empty
	assert.Empty(t, buf)
}

func TestForceNoSpaceRun(t *testing.T) {
	var buf Buffer
	start := len(buf)
	buf.Push(Token{text: "a", trailing: Space})
	buf.Push(Token{text: "b", trailing: Space})
	buf.Push(Token{text: "c", trailing: Space})
	forceNoSpaceRun(&buf, start)

	assert.Equal(t, NoSpace, buf[0].trailing)
	assert.Equal(t, NoSpace, buf[1].trailing)
	assert.Equal(t, Space, buf[2].trailing)
}

func TestEmitCommaList(t *testing.T) {
	var buf Buffer
	emitCommaList(&buf, []string{"a", "b", "c"}, func(b *Buffer, s string) {
		b.Push(Token{text: s, trailing: Space})
	})

	var got []string
	for _, tok := range buf {
		got = append(got, tok.text)
	}
	assert.Equal(t, []string{"a", ",", "b", ",", "c"}, got)
	assert.Equal(t, Space, buf[len(buf)-1].trailing)
}

func TestEmitCommaListEmptyIsNoOp(t *testing.T) {
	var buf Buffer
	emitCommaList(&buf, []string{}, func(b *Buffer, s string) {
		b.Push(Token{text: s, trailing: Space})
	})
	assert.Empty(t, buf)
}

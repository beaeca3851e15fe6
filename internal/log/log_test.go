package log

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func withoutColor(t *testing.T) {
	t.Helper()
	orig := color.NoColor
	DisableColor()
	t.Cleanup(func() { color.NoColor = orig })
}

func TestErrorMsg(t *testing.T) {
	withoutColor(t)

	var buf bytes.Buffer
	ErrorMsg(&buf, "%s != %d", "2 + 1", 4)

	assert.Equal(t, "[!] 2 + 1 != 4\n", buf.String())
}

func TestInfoMsg(t *testing.T) {
	withoutColor(t)

	var buf bytes.Buffer
	InfoMsg(&buf, "checked %d functions", 2)

	assert.Equal(t, "[+] checked 2 functions\n", buf.String())
}

func TestErrorMsg_Colored(t *testing.T) {
	orig := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = orig })

	var buf bytes.Buffer
	ErrorMsg(&buf, "2 + 2 != %d", 3)

	out := buf.String()
	assert.Contains(t, out, "2 + 2 != 3")
	assert.Contains(t, out, "\x1b[31m")
}

package commands

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/leapstack-labs/js2py/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frame(body string) string {
	return fmt.Sprintf("Content-Length: %d\r\n\r\n%s", len(body), body)
}

func TestLSPCommand(t *testing.T) {
	cfg := config.Default()
	cfg.Indent = 2

	in := frame(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"rootUri":"file:///p"}}`) +
		frame(`{"jsonrpc":"2.0","method":"textDocument/didOpen","params":{"textDocument":{"uri":"file:///p/a.js","languageId":"javascript","version":1,"text":"while (a) {}\n"}}}`) +
		frame(`{"jsonrpc":"2.0","id":2,"method":"textDocument/hover","params":{"textDocument":{"uri":"file:///p/a.js"},"position":{"line":0,"character":0}}}`) +
		frame(`{"jsonrpc":"2.0","method":"exit"}`)

	var out bytes.Buffer
	cmd := NewLSPCommand("9.9.9")
	cmd.SetArgs([]string{})
	cmd.SetIn(strings.NewReader(in))
	cmd.SetOut(&out)
	require.NoError(t, cmd.ExecuteContext(config.WithConfig(context.Background(), cfg)))

	assert.Contains(t, out.String(), `"serverInfo":{"name":"js2py","version":"9.9.9"}`)
	assert.Contains(t, out.String(), `"method":"textDocument/publishDiagnostics"`)
	assert.Contains(t, out.String(), `while a:\n  pass`)
}

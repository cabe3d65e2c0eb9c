package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteToStdout(t *testing.T) {
	var stdout, stderr strings.Builder

	require.NoError(t, WriteTo(&stdout, &stderr, "payload\n", false))
	assert.Equal(t, "payload\n", stdout.String())
	assert.Empty(t, stderr.String())
}

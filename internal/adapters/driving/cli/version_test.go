package cli

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_PrintsBuild(t *testing.T) {
	originalVersion := version
	SetVersion("1.4.0")
	defer func() { version = originalVersion }()

	env := setupCLITest(t, &Services{})
	require.NoError(t, env.run("version"))

	out := env.out.String()
	assert.Contains(t, out, "docsindex 1.4.0")
	assert.Contains(t, out, runtime.Version())
	assert.Contains(t, out, runtime.GOOS+"/"+runtime.GOARCH)
}

func TestVersionCmd_Short(t *testing.T) {
	originalVersion := version
	SetVersion("1.4.0")
	defer func() { version = originalVersion }()

	env := setupCLITest(t, &Services{})
	require.NoError(t, env.run("version", "--short"))

	assert.Equal(t, "1.4.0\n", env.out.String())
}

func TestVersionCmd_RejectsArgs(t *testing.T) {
	env := setupCLITest(t, &Services{})
	assert.Error(t, env.run("version", "extra"))
}

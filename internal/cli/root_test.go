package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

// ---------------------------------------------------------------------------
// root command
// ---------------------------------------------------------------------------

func TestRoot_PrintsThreeLines(t *testing.T) {
	stdout, _, err := run(t)
	require.NoError(t, err)

	want := "Buddy says Woof!\nWhiskers says Meow!\nTweety says Tweet!, and is 5 years old\n"
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
}

func TestRoot_LogsStayOffStdout(t *testing.T) {
	stdout, stderr, err := run(t, "--log-level", "debug")
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(stdout, "\n"))
	assert.Contains(t, stderr, `"msg":"announced"`)
	assert.Contains(t, stderr, `"msg":"run complete"`)
}

func TestRoot_DefaultLevelIsQuiet(t *testing.T) {
	_, stderr, err := run(t)
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestRoot_RejectsArguments(t *testing.T) {
	stdout, _, err := run(t, "extra")
	require.Error(t, err)
	assert.Empty(t, stdout)
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	stdout, _, err := run(t, "--log-level", "verbose")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
	assert.Empty(t, stdout)
}

func TestRoot_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goanimals.log")
	_, _, err := run(t, "--log-level", "info", "--log-file", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"speakers_count":3`)
}

// ---------------------------------------------------------------------------
// diagram command
// ---------------------------------------------------------------------------

func TestDiagram_AnimalPackage(t *testing.T) {
	stdout, _, err := run(t, "diagram", filepath.Join("..", "animal"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "classDiagram"))
	assert.Contains(t, stdout, "<<interface>>")
	for _, name := range []string{"Dog", "Cat", "Bird", "Animal"} {
		assert.Contains(t, stdout, "animal_"+name+" --|> animal_Speaker")
	}
	assert.Contains(t, stdout, "animal_Animal <|-- animal_Bird : embeds")
}

func TestDiagram_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zoo.mmd")
	stdout, _, err := run(t, "diagram", filepath.Join("..", "..", "testdata", "01_zoo"), "-o", path)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "%%{init:"))
	assert.Contains(t, content, "zoo_Dog --|> zoo_Speaker")
	assert.NotContains(t, content, "Rock")
	assert.NotContains(t, content, "Greeter")
}

func TestDiagram_OtherInterface(t *testing.T) {
	stdout, _, err := run(t, "diagram", filepath.Join("..", "..", "testdata", "01_zoo"), "--interface", "Greeter")
	require.NoError(t, err)
	assert.Equal(t, "classDiagram\n", stdout)
}

func TestDiagram_TooManyArgs(t *testing.T) {
	_, _, err := run(t, "diagram", "a", "b")
	require.Error(t, err)
}

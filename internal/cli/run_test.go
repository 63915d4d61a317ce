package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI invokes Run with an isolated working directory and config home.
func runCLI(t *testing.T, dir, stdin string, args ...string) (exit int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	argv := append([]string{"swot", "-C", dir}, args...)
	env := map[string]string{"XDG_CONFIG_HOME": filepath.Join(dir, ".xdg")}
	exit = Run(strings.NewReader(stdin), &out, &errOut, argv, env)
	return exit, out.String(), errOut.String()
}

func deckFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(dir, ".deck"))
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestRunNoArgsPrintsUsage(t *testing.T) {
	var out, errOut bytes.Buffer
	exit := Run(strings.NewReader(""), &out, &errOut, []string{"swot"}, nil)
	assert.Zero(t, exit)
	assert.Contains(t, out.String(), "Usage: swot")
}

func TestRunUnknownCommand(t *testing.T) {
	exit, _, stderr := runCLI(t, t.TempDir(), "", "frobnicate")
	assert.Equal(t, 1, exit)
	assert.Contains(t, stderr, "unknown command")
}

func TestRunHelp(t *testing.T) {
	exit, stdout, _ := runCLI(t, t.TempDir(), "", "help")
	assert.Zero(t, exit)
	assert.Contains(t, stdout, "review")
}

func TestNewCreatesCard(t *testing.T) {
	dir := t.TempDir()
	exit, stdout, stderr := runCLI(t, dir, "", "new", "What is the capital of France?", "-a", "Paris")
	require.Zero(t, exit, "stderr: %s", stderr)
	assert.Contains(t, stdout, "created")

	files := deckFiles(t, dir)
	require.Len(t, files, 1)

	content, err := os.ReadFile(filepath.Join(dir, ".deck", files[0]))
	require.NoError(t, err)
	s := string(content)
	assert.Contains(t, s, "review: ")
	assert.Contains(t, s, "history:\n")
	assert.Contains(t, s, "What is the capital of France?\n---\nParis\n")
}

func TestNewMissingQuestion(t *testing.T) {
	exit, _, stderr := runCLI(t, t.TempDir(), "", "new")
	assert.Equal(t, 1, exit)
	assert.Contains(t, stderr, "question")
}

func TestDueEmptyDeck(t *testing.T) {
	exit, stdout, _ := runCLI(t, t.TempDir(), "", "due")
	assert.Zero(t, exit)
	assert.Contains(t, stdout, "nothing to review.")
}

func TestDueListsOverdueCards(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".deck", "a.md"),
		"---\nreview: 2020-01-01\nhistory:\n---\nOverdue question\n---\nAnswer\n")
	writeFile(t, filepath.Join(dir, ".deck", "b.md"),
		"---\nreview: 2999-01-01\nhistory:\n---\nFuture question\n---\nAnswer\n")

	exit, stdout, _ := runCLI(t, dir, "", "due")
	assert.Zero(t, exit)
	assert.Contains(t, stdout, "Overdue question")
	assert.NotContains(t, stdout, "Future question")
	assert.Contains(t, stdout, "1 card(s) due.")
}

func TestDeckFlagOverridesDefault(t *testing.T) {
	dir := t.TempDir()
	exit, _, stderr := runCLI(t, dir, "", "new", "Q", "-a", "A")
	require.Zero(t, exit, "stderr: %s", stderr)

	var out, errOut bytes.Buffer
	argv := []string{"swot", "-C", dir, "--deck", "elsewhere", "new", "Other", "-a", "A"}
	exit = Run(strings.NewReader(""), &out, &errOut, argv, map[string]string{"XDG_CONFIG_HOME": filepath.Join(dir, ".xdg")})
	require.Zero(t, exit, "stderr: %s", errOut.String())

	entries, err := os.ReadDir(filepath.Join(dir, "elsewhere"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestPrintConfig(t *testing.T) {
	exit, stdout, _ := runCLI(t, t.TempDir(), "", "print-config")
	assert.Zero(t, exit)
	assert.Contains(t, stdout, "deck_dir: .deck")
}

func TestGlobalFlagMissingValue(t *testing.T) {
	var out, errOut bytes.Buffer
	exit := Run(strings.NewReader(""), &out, &errOut, []string{"swot", "--deck"}, nil)
	assert.Equal(t, 1, exit)
	assert.Contains(t, errOut.String(), "requires a value")
}

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDueCard(t *testing.T, dir, name string) {
	t.Helper()
	writeFile(t, filepath.Join(dir, ".deck", name),
		"---\nreview: 2020-01-01\nhistory:\n---\nQuestion "+name+"\n---\nAnswer\n")
}

func readCardFile(t *testing.T, dir, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(dir, ".deck", name))
	require.NoError(t, err)
	return string(content)
}

func TestReviewNothingDue(t *testing.T) {
	exit, stdout, _ := runCLI(t, t.TempDir(), "", "review")
	assert.Zero(t, exit)
	assert.Contains(t, stdout, "nothing to review.")
}

func TestReviewFullSession(t *testing.T) {
	dir := t.TempDir()
	writeDueCard(t, dir, "a.md")
	writeDueCard(t, dir, "b.md")

	// Per card: enter to reveal, then a rating.
	exit, stdout, stderr := runCLI(t, dir, "\n4\n\n4\n", "review", "--seed", "7")
	require.Zero(t, exit, "stderr: %s", stderr)
	assert.Contains(t, stdout, "2 card(s) due.")
	assert.Contains(t, stdout, "session complete.")

	for _, name := range []string{"a.md", "b.md"} {
		content := readCardFile(t, dir, name)
		assert.Contains(t, content, "rep: 1", "%s should record the review", name)
		assert.Contains(t, content, ":rate:4", "%s should log the rating", name)
	}
}

func TestReviewInvalidRatingReprompts(t *testing.T) {
	dir := t.TempDir()
	writeDueCard(t, dir, "a.md")

	exit, stdout, stderr := runCLI(t, dir, "\n9\nbogus\n4\n", "review")
	require.Zero(t, exit, "stderr: %s", stderr)
	assert.Contains(t, stdout, "rating must be between 0 and 5.")
	assert.Contains(t, stdout, "enter a number between 0 and 5.")
	assert.Contains(t, stdout, "session complete.")

	content := readCardFile(t, dir, "a.md")
	assert.Contains(t, content, ":rate:4")
	assert.NotContains(t, content, ":rate:9")
}

func TestReviewQuitAbandonsWithoutWrites(t *testing.T) {
	dir := t.TempDir()
	writeDueCard(t, dir, "a.md")
	before := readCardFile(t, dir, "a.md")

	exit, stdout, _ := runCLI(t, dir, "q\n", "review")
	assert.Zero(t, exit)
	assert.Contains(t, stdout, "session abandoned.")
	assert.Equal(t, before, readCardFile(t, dir, "a.md"))
}

func TestReviewEOFAbandons(t *testing.T) {
	dir := t.TempDir()
	writeDueCard(t, dir, "a.md")

	exit, stdout, _ := runCLI(t, dir, "", "review")
	assert.Zero(t, exit)
	assert.Contains(t, stdout, "session abandoned.")
}

func TestReviewSkipLeavesCardUntouched(t *testing.T) {
	dir := t.TempDir()
	writeDueCard(t, dir, "a.md")
	before := readCardFile(t, dir, "a.md")

	exit, stdout, stderr := runCLI(t, dir, "\ns\n", "review")
	require.Zero(t, exit, "stderr: %s", stderr)
	assert.Contains(t, stdout, "session complete.")
	assert.Equal(t, before, readCardFile(t, dir, "a.md"))
}

func TestReviewShowsQuestionBeforeReveal(t *testing.T) {
	dir := t.TempDir()
	writeDueCard(t, dir, "a.md")

	_, stdout, _ := runCLI(t, dir, "\n4\n", "review")

	revealAt := strings.Index(stdout, "Answer")
	questionAt := strings.Index(stdout, "Question a.md")
	require.GreaterOrEqual(t, revealAt, 0)
	require.GreaterOrEqual(t, questionAt, 0)
	assert.Less(t, questionAt, revealAt, "question should print before the answer")
}

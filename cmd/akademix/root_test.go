package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("AKADEMIX_LOGIN_LATENCY", "0s")
	t.Setenv("AKADEMIX_LOG_LEVEL", "error")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "config.yaml")))
	err := cmd.Execute()
	return out.String(), err
}

func TestFeedCommand(t *testing.T) {
	out, err := runCLI(t, "feed")
	require.NoError(t, err)
	assert.Contains(t, out, "following 3 academics")
	assert.Contains(t, out, "[1] Yapay Zeka ve Eğitim Teknolojileri (article)")
	assert.Contains(t, out, "likes 23, comments 8 liked")
	assert.Contains(t, out, "likes 67, comments 15 shared")
}

func TestCommentsCommand(t *testing.T) {
	out, err := runCLI(t, "comments", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Dr. Ali Yılmaz (1 saat önce)")

	out, err = runCLI(t, "comments", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "no comments")
}

func TestAcademicsCommand(t *testing.T) {
	out, err := runCLI(t, "academics", "--query", "istanbul")
	require.NoError(t, err)
	assert.Contains(t, out, "* [2] Prof. Dr. Ahmet Yılmaz")
	assert.NotContains(t, out, "Fatma")
}

func TestJournalsCommand(t *testing.T) {
	out, err := runCLI(t, "journals")
	require.NoError(t, err)
	assert.Contains(t, out, "Mühendislik\n")

	out, err = runCLI(t, "journals", "--field", "Tıp", "--top", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Q1 87.2")
	assert.Contains(t, out, "Nature Medicine")

	out, err = runCLI(t, "journals", "--field", "Ekonomi", "--quartile", "q2")
	require.NoError(t, err)
	assert.Contains(t, out, "Review of Economic Studies")

	_, err = runCLI(t, "journals", "--field", "Hukuk")
	assert.Error(t, err)
}

func TestLoginCommand(t *testing.T) {
	out, err := runCLI(t, "login", "--email", "user@example.com", "--password", "123456")
	require.NoError(t, err)
	assert.Contains(t, out, "welcome, Doçent Dr. Dr. Ali Yılmaz")

	_, err = runCLI(t, "login", "--email", "user@example.com", "--password", "nope")
	assert.Error(t, err)
}

func TestFixturesPathOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
posts:
  - id: "x"
    type: book
    title: "Tek Kitap"
`), 0o644))
	t.Setenv("AKADEMIX_FIXTURES_PATH", path)

	out, err := runCLI(t, "feed")
	require.NoError(t, err)
	assert.Contains(t, out, "following 0 academics")
	assert.Contains(t, out, "[x] Tek Kitap (book)")
}

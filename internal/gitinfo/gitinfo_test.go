package gitinfo

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func gitAvailable() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %s failed: %v\n%s", strings.Join(args, " "), err, string(out))
	}
	return string(out)
}

func initRepo(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("eval symlinks: %v", err)
	}
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test")
	runGit(t, dir, "config", "commit.gpgsign", "false")
	return dir
}

func TestBranchAndRoot(t *testing.T) {
	if !gitAvailable() {
		t.Skip("git not available")
	}
	dir := initRepo(t)

	branch := Branch(dir)
	if branch == "" {
		t.Fatalf("Branch empty")
	}
	root := Root(dir)
	if root != dir {
		t.Fatalf("Root = %q, want %q", root, dir)
	}
}

func commitFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	runGit(t, dir, "add", name)
	runGit(t, dir, "commit", "-m", "add "+name)
	return path
}

func TestBranchWithSlash(t *testing.T) {
	if !gitAvailable() {
		t.Skip("git not available")
	}
	dir := initRepo(t)
	runGit(t, dir, "checkout", "-b", "feature/compare")
	if got := Branch(dir); got != "feature/compare" {
		t.Fatalf("Branch = %q, want feature/compare", got)
	}
}

func TestWorktree(t *testing.T) {
	if !gitAvailable() {
		t.Skip("git not available")
	}
	dir := initRepo(t)
	commitFile(t, dir, "file.txt", "committed\n")

	wt := filepath.Join(filepath.Dir(dir), filepath.Base(dir)+"-wt")
	runGit(t, dir, "worktree", "add", "-b", "wt", wt)
	t.Cleanup(func() { os.RemoveAll(wt) })

	path := filepath.Join(wt, "file.txt")
	if err := os.WriteFile(path, []byte("working\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if got := Root(path); got != wt {
		t.Fatalf("Root = %q, want %q", got, wt)
	}
	if got := Branch(wt); got != "wt" {
		t.Fatalf("Branch = %q, want wt", got)
	}
	got, err := Show(path, "HEAD")
	if err != nil {
		t.Fatalf("Show error: %v", err)
	}
	if got != "committed\n" {
		t.Fatalf("Show = %q, want %q", got, "committed\n")
	}
}

func TestShow(t *testing.T) {
	if !gitAvailable() {
		t.Skip("git not available")
	}
	dir := initRepo(t)
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(sub, "file.txt")
	if err := os.WriteFile(path, []byte("committed\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "init")
	if err := os.WriteFile(path, []byte("working\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := Show(path, "HEAD")
	if err != nil {
		t.Fatalf("Show error: %v", err)
	}
	if got != "committed\n" {
		t.Fatalf("Show = %q, want %q", got, "committed\n")
	}

	if _, err := Show(filepath.Join(sub, "untracked.txt"), "HEAD"); err == nil {
		t.Fatalf("expected error for path missing from HEAD")
	}
}

func TestShowNotRepo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if Root(path) != "" {
		t.Skip("temp dir is inside a git repository")
	}
	if _, err := Show(path, "HEAD"); !errors.Is(err, ErrNotRepo) {
		t.Fatalf("Show err = %v, want ErrNotRepo", err)
	}
}

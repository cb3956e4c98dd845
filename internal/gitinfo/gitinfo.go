package gitinfo

import (
	"bufio"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Branch names the branch checked out in the work tree holding path, or
// "detached:<sha>" for a detached HEAD. It is empty outside a repository.
func Branch(path string) string {
	_, gitDir, err := findGitDir(path)
	if err != nil || gitDir == "" {
		return ""
	}
	branch, err := readHead(gitDir)
	if err != nil {
		return ""
	}
	return branch
}

// Root returns the top directory of the work tree holding path. For a linked
// worktree or submodule that is the directory holding the .git file, not the
// directory the file points to.
func Root(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return ""
	}
	workTree, _, err := findGitDir(abs)
	if err != nil {
		return ""
	}
	return workTree
}

// ErrNotRepo is returned when path is not inside a git work tree.
var ErrNotRepo = errors.New("not a git repository")

// Show returns the contents of the file at path as recorded in rev, for
// example "HEAD" or a branch name.
func Show(path, rev string) (string, error) {
	root := Root(path)
	if root == "" {
		return "", ErrNotRepo
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", err
	}
	object := rev + ":" + filepath.ToSlash(rel)
	out, err := exec.Command("git", "-C", root, "show", object).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if msg := strings.TrimSpace(string(exitErr.Stderr)); msg != "" {
				return "", errors.New(msg)
			}
		}
		return "", err
	}
	return string(out), nil
}

// findGitDir walks up from path to the first directory holding a .git entry
// and returns that directory with the git directory it names.
func findGitDir(path string) (workTree, gitDir string, err error) {
	start := path
	info, err := os.Stat(start)
	if err != nil {
		return "", "", err
	}
	if !info.IsDir() {
		start = filepath.Dir(start)
	}
	for {
		gitPath := filepath.Join(start, ".git")
		if info, err := os.Stat(gitPath); err == nil {
			if info.IsDir() {
				return start, gitPath, nil
			}
			if info.Mode().IsRegular() {
				data, err := os.ReadFile(gitPath)
				if err != nil {
					return "", "", err
				}
				line := strings.TrimSpace(string(data))
				const prefix = "gitdir:"
				if strings.HasPrefix(line, prefix) {
					dir := strings.TrimSpace(strings.TrimPrefix(line, prefix))
					if !filepath.IsAbs(dir) {
						dir = filepath.Join(start, dir)
					}
					return start, dir, nil
				}
			}
		}
		parent := filepath.Dir(start)
		if parent == start {
			break
		}
		start = parent
	}
	return "", "", errors.New("git dir not found")
}

func readHead(gitDir string) (string, error) {
	headPath := filepath.Join(gitDir, "HEAD")
	f, err := os.Open(headPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return "", errors.New("empty HEAD")
	}
	line := strings.TrimSpace(scanner.Text())
	const refPrefix = "ref:"
	if strings.HasPrefix(line, refPrefix) {
		ref := strings.TrimSpace(strings.TrimPrefix(line, refPrefix))
		return strings.TrimPrefix(ref, "refs/heads/"), nil
	}
	if len(line) >= 7 {
		return "detached:" + line[:7], nil
	}
	return "detached", nil
}

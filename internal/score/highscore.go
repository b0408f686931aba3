package score

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultHighScorePath is the plain-text high score file shared by both
// editions.
const DefaultHighScorePath = "~/.snake-arcade/highscore.dat"

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("score: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// LoadHighScore reads the persisted high score from the given file.
// A missing, unreadable, or malformed file yields 0: the round starts
// with a fresh record rather than failing.
func LoadHighScore(path string) int {
	path, err := expandHome(path)
	if err != nil {
		return 0
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// SaveHighScore writes the high score as a decimal string, creating the
// parent directory if needed.
func SaveHighScore(path string, score int) error {
	path, err := expandHome(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("score: cannot create directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("score: cannot write high score: %w", err)
	}
	return nil
}

//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CreateTestWorkspace creates a temporary directory for the files under test
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// CreateTextFile writes a file of lines rows, each width cells wide and
// starting with its 1-based line number
func (tf *TUITestFramework) CreateTextFile(name string, lines, width int) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	var b strings.Builder
	for i := 1; i <= lines; i++ {
		row := fmt.Sprintf("L%04d ", i)
		if pad := width - len(row); pad > 0 {
			row += strings.Repeat(".", pad)
		}
		b.WriteString(row)
		b.WriteByte('\n')
	}
	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	return path, nil
}

// CreateConfig writes a config file into the workspace
func (tf *TUITestFramework) CreateConfig(contents string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	path := filepath.Join(tf.workspace, "scrollsync.toml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return path, nil
}

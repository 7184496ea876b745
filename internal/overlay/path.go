package overlay

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AnnotationPath returns the output path for originalPath under methodName:
// the file's parent directory (the modality directory, e.g. "rgb") is
// replaced by a sibling named methodName. The sibling directory is created if
// it does not exist; an existing directory is not an error.
//
// # Errors
//
//   - Returns error if methodName is empty, "." or "..", or contains a path separator
//   - Returns error if the directory cannot be created
func AnnotationPath(originalPath, methodName string) (string, error) {
	if methodName == "" || methodName == "." || methodName == ".." || strings.ContainsRune(methodName, filepath.Separator) || strings.Contains(methodName, "/") {
		return "", fmt.Errorf("invalid method name %q", methodName)
	}

	sceneDir := filepath.Dir(filepath.Dir(originalPath))
	methodDir := filepath.Join(sceneDir, methodName)
	if err := os.MkdirAll(methodDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create method directory: %w", err)
	}
	return filepath.Join(methodDir, filepath.Base(originalPath)), nil
}

package ingestion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// FileHandler manages the uploads directory where resumes land before
// screening.
type FileHandler struct {
	uploadsDir string
}

// NewFileHandler creates a file handler rooted at uploadsDir.
func NewFileHandler(uploadsDir string) *FileHandler {
	return &FileHandler{uploadsDir: uploadsDir}
}

// UploadsDir returns the directory managed by this handler.
func (fh *FileHandler) UploadsDir() string {
	return fh.uploadsDir
}

// SaveUploadedFile saves an uploaded resume to the uploads directory and
// returns its path.
func (fh *FileHandler) SaveUploadedFile(filename string, content io.Reader) (string, error) {
	if err := os.MkdirAll(fh.uploadsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create uploads directory: %w", err)
	}

	filePath := filepath.Join(fh.uploadsDir, filepath.Base(filename))
	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return filePath, nil
}

// ListResumeFiles returns the supported resume files in the uploads
// directory, sorted by name. A missing directory yields an empty list.
func (fh *FileHandler) ListResumeFiles() ([]string, error) {
	entries, err := os.ReadDir(fh.uploadsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read uploads directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !IsSupported(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(fh.uploadsDir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// ClearUploads removes all files from the uploads directory.
func (fh *FileHandler) ClearUploads() error {
	if err := os.RemoveAll(fh.uploadsDir); err != nil {
		return fmt.Errorf("failed to clear uploads directory: %w", err)
	}
	return os.MkdirAll(fh.uploadsDir, 0755)
}

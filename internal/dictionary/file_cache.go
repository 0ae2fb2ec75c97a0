package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileCache stores one raw API response per word as a JSON file.
type FileCache struct {
	rootDir string
}

func NewFileCache(cacheDirectory string) *FileCache {
	return &FileCache{
		rootDir: cacheDirectory,
	}
}

// cacheKey lowercases the word and replaces path separators so every word maps to one file.
func cacheKey(word string) string {
	key := strings.ToLower(strings.TrimSpace(word))
	return strings.NewReplacer("/", "_", "\\", "_").Replace(key)
}

func (f *FileCache) filePath(word string) string {
	return filepath.Join(f.rootDir, cacheKey(word)+".json")
}

// cache returns the cached contents for word, or calls fetch and stores its result.
func (f *FileCache) cache(word string, fetch func() ([]byte, error)) ([]byte, error) {
	localFilePath := f.filePath(word)
	if contents, err := os.ReadFile(localFilePath); err == nil {
		return contents, nil
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", localFilePath, err)
	}

	contents, err := fetch()
	if err != nil {
		return nil, fmt.Errorf("fetch(%s) > %w", word, err)
	}

	if err := os.MkdirAll(f.rootDir, 0755); err != nil {
		return contents, fmt.Errorf("os.MkdirAll(%s) > %w", f.rootDir, err)
	}
	if err := os.WriteFile(localFilePath, contents, 0644); err != nil {
		return contents, fmt.Errorf("os.WriteFile(%s) > %w", localFilePath, err)
	}
	return contents, nil
}

package tabular

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Format describes one supported file format: the extensions it claims and
// how to read and write a Table in it.
type Format struct {
	Name  string
	Exts  []string
	Read  func(path string) (*Table, error)
	Write func(path string, t *Table) error
}

var (
	registry   = make(map[string]Format)
	registryMu sync.RWMutex
)

// Register adds a format to the registry under each of its extensions.
// Panics if an extension is already claimed.
func Register(f Format) {
	registryMu.Lock()
	defer registryMu.Unlock()

	for _, ext := range f.Exts {
		ext = strings.ToLower(ext)
		if _, exists := registry[ext]; exists {
			panic(fmt.Sprintf("format already registered for extension: %s", ext))
		}
		registry[ext] = f
	}
}

// ForPath returns the format registered for the path's extension.
// The error lists the supported extensions when none matches.
func ForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))

	registryMu.RLock()
	defer registryMu.RUnlock()

	f, ok := registry[ext]
	if !ok {
		return Format{}, fmt.Errorf("unsupported file type %q (supported: %s)",
			ext, strings.Join(extsLocked(), ", "))
	}
	return f, nil
}

// Exts returns all registered extensions, sorted.
func Exts() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return extsLocked()
}

func extsLocked() []string {
	exts := make([]string, 0, len(registry))
	for ext := range registry {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Clear removes all registered formats. Primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]Format)
}

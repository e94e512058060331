package history

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPath is where visited links are recorded.
const DefaultPath = "~/.local/share/perch/history.log"

const defaultSize = 200

// History is an ordered set of visited links, oldest first. Revisiting
// a link moves it to the back. History is not safe for concurrent use;
// it belongs to the UI goroutine.
type History struct {
	path string
	size int

	order []string
	seen  map[string]struct{}
}

// New returns an empty history that saves to path. A non-positive size
// uses the default capacity.
func New(path string, size int) *History {
	if size <= 0 {
		size = defaultSize
	}
	return &History{path: path, size: size, seen: make(map[string]struct{})}
}

// Load reads the last size entries of the history file at path. A
// missing, unreadable, or oversized file yields an empty history; the
// error is returned for logging but the History is always usable.
func Load(path string, size int) (*History, error) {
	h := New(path, size)

	resolved, err := expandPath(path)
	if err != nil {
		return h, err
	}
	lines, err := tail(resolved, size)
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			h.Add(line)
		}
	}
	return h, err
}

// Add records url as the most recent entry. Revisits move to the back;
// the oldest entries are evicted past capacity.
func (h *History) Add(url string) {
	if url == "" {
		return
	}
	if _, ok := h.seen[url]; ok {
		for i, u := range h.order {
			if u == url {
				h.order = append(h.order[:i], h.order[i+1:]...)
				break
			}
		}
	} else {
		h.seen[url] = struct{}{}
	}
	h.order = append(h.order, url)
	for len(h.order) > h.size {
		delete(h.seen, h.order[0])
		h.order = h.order[1:]
	}
}

// Contains reports whether url has been visited.
func (h *History) Contains(url string) bool {
	_, ok := h.seen[url]
	return ok
}

// Len returns the number of recorded links.
func (h *History) Len() int { return len(h.order) }

// Save rewrites the history file, newest entry last. The write is
// atomic: a temp file in the same directory is renamed over the log.
func (h *History) Save() error {
	resolved, err := expandPath(h.path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".history-*")
	if err != nil {
		return fmt.Errorf("create temp history: %w", err)
	}
	w := bufio.NewWriter(tmp)
	for _, url := range h.order {
		if _, err := w.WriteString(url + "\n"); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return fmt.Errorf("write history: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write history: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("chmod history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close history: %w", err)
	}
	if err := os.Rename(tmp.Name(), resolved); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace history: %w", err)
	}
	return nil
}

// tail returns at most maxLines from the end of the file at path,
// oldest first, using a single forward pass and O(maxLines) memory.
func tail(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open history: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = DefaultPath
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

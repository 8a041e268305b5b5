// Package scores maintains the ranked top-5 leaderboard persisted as a JSON
// file. Persistence is best-effort: a missing or corrupt file degrades to an
// empty board, and write failures are logged and dropped. The worst case for
// the player is an unsaved high score, never a blocking error.
package scores

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// MaxEntries is the leaderboard capacity.
	MaxEntries = 5
	// MaxNameLen is the maximum player name length in runes.
	MaxNameLen = 12
	// DefaultName replaces blank player names.
	DefaultName = "Anonymous"

	dateLayout = "2006-01-02 15:04"
)

// Entry is a single leaderboard record. The date is display-only.
type Entry struct {
	Score int    `json:"score"`
	Name  string `json:"name"`
	Date  string `json:"date"`
}

// Board is the ranked, capacity-capped leaderboard. Entries are kept sorted
// descending by score at all times.
type Board struct {
	path    string
	entries []Entry
	logger  *log.Logger
	now     func() time.Time
}

// New creates a board backed by the given file and loads it immediately.
func New(path string, logger *log.Logger) *Board {
	if logger == nil {
		logger = log.Default()
	}
	b := &Board{
		path:   path,
		logger: logger,
		now:    time.Now,
	}
	b.Load()
	return b
}

// Load reads the persisted leaderboard. A missing file, a parse failure, or
// malformed entries all fall back to an empty board; corruption is non-fatal.
func (b *Board) Load() {
	b.entries = nil

	data, err := os.ReadFile(b.path)
	if err != nil {
		return
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		b.logger.Warn("ignoring corrupt leaderboard file", "path", b.path, "error", err)
		return
	}

	// Older files may lack names.
	for i := range entries {
		if entries[i].Name == "" {
			entries[i].Name = DefaultName
		}
	}
	b.entries = entries
}

// Save writes the full current list. Failures are logged and swallowed; a
// single best-effort attempt, no retries.
func (b *Board) Save() {
	data, err := json.MarshalIndent(b.entries, "", "  ")
	if err != nil {
		b.logger.Warn("could not encode leaderboard", "error", err)
		return
	}

	if dir := filepath.Dir(b.path); dir != "." {
		//nolint:errcheck // Best-effort, the write below reports the failure
		os.MkdirAll(dir, 0o755)
	}

	if err := os.WriteFile(b.path, data, 0o644); err != nil {
		b.logger.Warn("could not save leaderboard", "path", b.path, "error", err)
	}
}

// IsHighScore reports whether the score would enter the board: true while
// fewer than MaxEntries exist, or when the score strictly beats the current
// minimum. Ties with the minimum do not qualify.
func (b *Board) IsHighScore(score int) bool {
	if len(b.entries) < MaxEntries {
		return true
	}
	return score > b.minScore()
}

func (b *Board) minScore() int {
	min := b.entries[0].Score
	for _, e := range b.entries[1:] {
		if e.Score < min {
			min = e.Score
		}
	}
	return min
}

// Add records a qualifying score and persists the board. The name is
// truncated to MaxNameLen runes and blank names become DefaultName. Returns
// false, without mutation, when the score does not qualify.
func (b *Board) Add(score int, name string) bool {
	if !b.IsHighScore(score) {
		return false
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	if runes := []rune(name); len(runes) > MaxNameLen {
		name = string(runes[:MaxNameLen])
	}

	b.entries = append(b.entries, Entry{
		Score: score,
		Name:  name,
		Date:  b.now().Format(dateLayout),
	})

	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Score > b.entries[j].Score
	})
	if len(b.entries) > MaxEntries {
		b.entries = b.entries[:MaxEntries]
	}

	b.Save()
	return true
}

// Top returns up to n entries, highest score first.
func (b *Board) Top(n int) []Entry {
	if n > len(b.entries) {
		n = len(b.entries)
	}
	out := make([]Entry, n)
	copy(out, b.entries[:n])
	return out
}

// Len returns the number of stored entries.
func (b *Board) Len() int {
	return len(b.entries)
}

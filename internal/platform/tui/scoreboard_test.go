package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tether/internal/storage"
)

type fakeSource struct {
	scores []storage.ScoreEntry
	stats  []storage.LevelStats
	runs   []storage.LevelRun
	err    error
	loads  int
}

func (f *fakeSource) TopScores(limit int) ([]storage.ScoreEntry, error) {
	f.loads++
	if f.err != nil {
		return nil, f.err
	}
	return f.scores[:min(limit, len(f.scores))], nil
}

func (f *fakeSource) AllLevelStats() ([]storage.LevelStats, error) {
	return f.stats, f.err
}

func (f *fakeSource) RecentRuns(limit int) ([]storage.LevelRun, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.runs[:min(limit, len(f.runs))], nil
}

func TestScoreboardTabs(t *testing.T) {
	src := &fakeSource{
		scores: []storage.ScoreEntry{
			{Player: "ada", Score: 1200, Levels: 2, Difficulty: "hard", CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
			{Score: 300, Levels: 0, Difficulty: "normal"},
		},
		stats: []storage.LevelStats{
			{LevelID: "level_1", Runs: 4, Clears: 1, Deaths: 3, BestTime: 12340 * time.Millisecond, Kills: 2},
		},
	}
	m := NewScoreboardModel(src, 100, 30)

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("score rows = %d, want 2", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "ada" || rows[0][2] != "1200" {
		t.Errorf("first row = %v", rows[0])
	}
	if rows[1][1] != "-" {
		t.Errorf("anonymous player shown as %q, want -", rows[1][1])
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.tab != tabLevels {
		t.Fatalf("tab = %v, want levels", m.tab)
	}
	rows = m.table.Rows()
	if len(rows) != 1 || rows[0][0] != "level_1" || rows[0][1] != "12.34s" || rows[0][4] != "3" {
		t.Errorf("level rows = %v", rows)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if next.(ScoreboardModel).tab != tabScores {
		t.Error("shift+tab did not go back to scores")
	}
}

func TestScoreboardRecentRuns(t *testing.T) {
	src := &fakeSource{
		runs: []storage.LevelRun{
			{LevelID: "level_2", Player: "ada", Outcome: storage.OutcomeDied, Duration: 4500 * time.Millisecond, Kills: 1,
				CreatedAt: time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)},
			{LevelID: "level_1", Outcome: storage.OutcomeCleared, Duration: 12 * time.Second},
		},
	}
	m := NewScoreboardModel(src, 100, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.tab != tabRecent {
		t.Fatalf("tab = %v, want recent runs", m.tab)
	}
	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("recent rows = %d, want 2", len(rows))
	}
	want := []string{"Mar 02 09:30", "level_2", "ada", "died", "4.5s", "1"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("row[0][%d] = %q, want %q", i, rows[0][i], cell)
		}
	}
	if rows[1][2] != "-" || rows[1][3] != "cleared" {
		t.Errorf("second row = %v", rows[1])
	}

	empty := NewScoreboardModel(&fakeSource{}, 80, 24)
	next, _ = empty.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if view := ansi.Strip(next.(ScoreboardModel).View()); !strings.Contains(view, "No level runs recorded yet.") {
		t.Errorf("empty recent view:\n%s", view)
	}
}

func TestFormatLevelStats(t *testing.T) {
	tests := []struct {
		name string
		st   storage.LevelStats
		want string
	}{
		{"never played", storage.LevelStats{LevelID: "level_1"}, "No runs recorded yet."},
		{"never cleared", storage.LevelStats{Runs: 2, Deaths: 2}, "Runs: 2  Clears: 0  Deaths: 2  Kills: 0  Best: -"},
		{"cleared", storage.LevelStats{Runs: 3, Clears: 1, Deaths: 2, Kills: 4, BestTime: 9876 * time.Millisecond},
			"Runs: 3  Clears: 1  Deaths: 2  Kills: 4  Best: 9.88s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLevelStats(tt.st); got != tt.want {
				t.Errorf("FormatLevelStats = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScoreboardReload(t *testing.T) {
	src := &fakeSource{}
	m := NewScoreboardModel(src, 80, 24)
	src.scores = []storage.ScoreEntry{{Player: "bo", Score: 10}}

	next, _ := m.Update(runes("r"))
	m = next.(ScoreboardModel)
	if src.loads != 2 {
		t.Errorf("loads = %d, want 2", src.loads)
	}
	if len(m.table.Rows()) != 1 {
		t.Errorf("rows after reload = %d, want 1", len(m.table.Rows()))
	}
}

func TestScoreboardEmptyAndError(t *testing.T) {
	tests := []struct {
		name   string
		source ScoreSource
		want   string
	}{
		{"no store", nil, "No scores recorded yet."},
		{"empty", &fakeSource{}, "No scores recorded yet."},
		{"error", &fakeSource{err: errors.New("disk on fire")}, "disk on fire"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := ansi.Strip(NewScoreboardModel(tt.source, 80, 24).View())
			if !strings.Contains(view, tt.want) {
				t.Errorf("view does not contain %q:\n%s", tt.want, view)
			}
		})
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, want %q", got, "  ab")
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText overflow = %q", got)
	}
}

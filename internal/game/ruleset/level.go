package ruleset

import (
	"fmt"
	"io/fs"
	"sort"
)

// LevelThreshold is the experience total at which Level is reached.
type LevelThreshold struct {
	Level int `yaml:"level"`
	XP    int `yaml:"xp"`
}

// LevelTable maps experience totals to levels.
//
// Invariant: rows are sorted by Level, start at level 1 with 0 xp, and both
// Level and XP strictly increase.
type LevelTable struct {
	rows []LevelThreshold
}

// NewLevelTable builds a table from rows in any order.
//
// Postcondition: Returns an error if the rows violate the LevelTable invariant.
func NewLevelTable(rows []LevelThreshold) (*LevelTable, error) {
	sorted := make([]LevelThreshold, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Level < sorted[j].Level })
	if len(sorted) == 0 || sorted[0].Level != 1 || sorted[0].XP != 0 {
		return nil, fmt.Errorf("level table must start at level 1 with 0 xp")
	}
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if cur.Level != prev.Level+1 {
			return nil, fmt.Errorf("level table: level %d follows level %d", cur.Level, prev.Level)
		}
		if cur.XP <= prev.XP {
			return nil, fmt.Errorf("level table: level %d needs %d xp, not more than level %d (%d)",
				cur.Level, cur.XP, prev.Level, prev.XP)
		}
	}
	return &LevelTable{rows: sorted}, nil
}

// LevelFor returns the highest level whose threshold xp has reached.
// Negative xp yields level 1.
func (t *LevelTable) LevelFor(xp int) int {
	i := sort.Search(len(t.rows), func(i int) bool { return t.rows[i].XP > xp })
	if i == 0 {
		return 1
	}
	return t.rows[i-1].Level
}

// Threshold returns the xp needed for level, and false when level is outside the table.
func (t *LevelTable) Threshold(level int) (int, bool) {
	if level < 1 || level > len(t.rows) {
		return 0, false
	}
	return t.rows[level-1].XP, true
}

// MaxLevel returns the highest level in the table.
func (t *LevelTable) MaxLevel() int {
	return t.rows[len(t.rows)-1].Level
}

// LoadLevelTable reads all .yaml files in dir of fsys as lists of thresholds.
//
// Precondition: dir must be a readable directory of fsys.
// Postcondition: Returns a valid LevelTable or a non-nil error.
func LoadLevelTable(fsys fs.FS, dir string) (*LevelTable, error) {
	rows, err := decodeDir[LevelThreshold](fsys, dir, "level")
	if err != nil {
		return nil, err
	}
	flat := make([]LevelThreshold, 0, len(rows))
	for _, r := range rows {
		flat = append(flat, *r)
	}
	return NewLevelTable(flat)
}

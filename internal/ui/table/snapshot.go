package table

import (
	"encoding/json"
	"slices"
)

// Snapshot is the exchange form of a table. Style settings (alignment, border,
// justify, prefix) are not part of it.
type Snapshot struct {
	Title   string `json:"title"`
	Heading Row    `json:"heading"`
	Rows    []Row  `json:"rows"`
}

// Snapshot captures title, heading and rows.
func (t *Table) Snapshot() Snapshot {
	heading := t.Heading()
	if heading == nil {
		heading = Row{}
	}
	rows := t.Rows()
	return Snapshot{Title: t.title, Heading: heading, Rows: rows}
}

// Parse clears the table and loads s into it. An empty heading in s leaves the
// table without a heading row.
func (t *Table) Parse(s Snapshot) *Table {
	t.Clear()
	t.SetTitle(s.Title)
	if len(s.Heading) > 0 {
		t.SetHeading(s.Heading)
	}
	for _, row := range s.Rows {
		t.AddRow(slices.Clone(row))
	}
	return t
}

// FromSnapshot builds a new table from s.
func FromSnapshot(s Snapshot, opts ...Option) *Table {
	return New("", opts...).Parse(s)
}

func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Snapshot())
}

func (t *Table) UnmarshalJSON(data []byte) error {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t.Parse(s)
	return nil
}

package data

import (
	"fmt"
	"strconv"
)

// Row is one record of a tab's list panel.
type Row struct {
	Text   string
	Cell   string
	Active bool
}

// Column indexes of a Store.
const (
	ColumnText = iota
	ColumnCell
	ColumnActive
	columnCount
)

var columnNames = [columnCount]string{"Column1", "Column2", "Active"}

// GenerateRows builds n synthetic rows.
func GenerateRows(n int) []Row {
	if n < 0 {
		n = 0
	}
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{
			Text:   fmt.Sprintf("I am a content in a tab%d", i),
			Cell:   fmt.Sprintf("Cell 2 tab %d", i),
			Active: true,
		}
	}
	return rows
}

// Store is a read-only table of rows.
type Store struct {
	rows []Row
}

// NewStore wraps rows in a Store. The slice is copied.
func NewStore(rows []Row) *Store {
	return &Store{rows: append([]Row(nil), rows...)}
}

// RowCount returns the number of rows.
func (s *Store) RowCount() int {
	return len(s.rows)
}

// ColumnCount returns the number of columns.
func (s *Store) ColumnCount() int {
	return columnCount
}

// ColumnName returns the header of column col.
func (s *Store) ColumnName(col int) (string, error) {
	if col < 0 || col >= columnCount {
		return "", fmt.Errorf("column %d: %w", col, ErrInvalidColumn)
	}
	return columnNames[col], nil
}

// Row returns row i.
func (s *Store) Row(i int) (Row, error) {
	if i < 0 || i >= len(s.rows) {
		return Row{}, fmt.Errorf("row %d: %w", i, ErrInvalidRow)
	}
	return s.rows[i], nil
}

// Rows returns a copy of all rows.
func (s *Store) Rows() []Row {
	return append([]Row(nil), s.rows...)
}

// Cell returns the text of a single cell. The Active column renders as
// "true" or "false".
func (s *Store) Cell(row, col int) (string, error) {
	r, err := s.Row(row)
	if err != nil {
		return "", err
	}
	switch col {
	case ColumnText:
		return r.Text, nil
	case ColumnCell:
		return r.Cell, nil
	case ColumnActive:
		return strconv.FormatBool(r.Active), nil
	default:
		return "", fmt.Errorf("column %d: %w", col, ErrInvalidColumn)
	}
}

// Field is one label/value pair of the detail form.
type Field struct {
	Label string
	Value string
}

// DetailFields returns the n fields of the detail form.
func DetailFields(n int) []Field {
	if n < 0 {
		n = 0
	}
	fields := make([]Field, n)
	for i := range fields {
		fields[i] = Field{
			Label: fmt.Sprintf("column %d", i+1),
			Value: fmt.Sprintf("value %d", (i+1)*100),
		}
	}
	return fields
}

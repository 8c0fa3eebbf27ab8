package store

import "strings"

// patch accumulates SET columns for a partial update. Only fields the
// caller actually supplied end up in the statement, so untouched columns
// keep their stored values.
type patch struct {
	columns []string
	args    []any
}

func (p *patch) set(column string, value any) {
	p.columns = append(p.columns, column+" = ?")
	p.args = append(p.args, value)
}

func (p *patch) empty() bool {
	return len(p.columns) == 0
}

func (p *patch) clause() string {
	return strings.Join(p.columns, ", ")
}

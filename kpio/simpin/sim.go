// Package simpin simulates the electrics of a passive keypad matrix for
// host-side tests and demos.
//
// The model is a bipartite graph: row nets and column nets are nodes, closed
// switches are edges. A column reads low when any conductive path connects it
// to a driven-low row, so phantom closures at the fourth corner of a pressed
// 2x2 subgrid emerge exactly as they do on real hardware.
package simpin

import (
	"sync"

	"keypad-go/keypad"
)

type Matrix struct {
	mu     sync.Mutex
	rows   int
	cols   int
	closed [][]bool // switch state per intersection
	driven []bool   // row is actively sinking current

	curDriven int
	maxDriven int // peak simultaneously-driven rows ever observed
}

// NewMatrix creates an all-open matrix of the given dimensions.
func NewMatrix(rows, cols int) *Matrix {
	m := &Matrix{
		rows:   rows,
		cols:   cols,
		closed: make([][]bool, rows),
		driven: make([]bool, rows),
	}
	for r := range m.closed {
		m.closed[r] = make([]bool, cols)
	}
	return m
}

// Press closes the switch at (r, c).
func (m *Matrix) Press(r, c int) {
	m.mu.Lock()
	m.closed[r][c] = true
	m.mu.Unlock()
}

// Release opens the switch at (r, c).
func (m *Matrix) Release(r, c int) {
	m.mu.Lock()
	m.closed[r][c] = false
	m.mu.Unlock()
}

// ReleaseAll opens every switch.
func (m *Matrix) ReleaseAll() {
	m.mu.Lock()
	for r := range m.closed {
		for c := range m.closed[r] {
			m.closed[r][c] = false
		}
	}
	m.mu.Unlock()
}

// Row returns the open-drain pin view of row i.
func (m *Matrix) Row(i int) *RowPin { return &RowPin{m: m, i: i} }

// Col returns the pulled-up input pin view of column i.
func (m *Matrix) Col(i int) *ColPin { return &ColPin{m: m, i: i} }

// Rows returns the row pin views in matrix order.
func (m *Matrix) Rows() []keypad.RowPin {
	out := make([]keypad.RowPin, m.rows)
	for i := range out {
		out[i] = m.Row(i)
	}
	return out
}

// Cols returns the column pin views in matrix order.
func (m *Matrix) Cols() []keypad.ColPin {
	out := make([]keypad.ColPin, m.cols)
	for i := range out {
		out[i] = m.Col(i)
	}
	return out
}

// MaxDriven reports the peak number of rows that were simultaneously driven
// low. Anything above 1 means the scanner broke the anti-short invariant.
func (m *Matrix) MaxDriven() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.maxDriven
}

// colLow solves connectivity from every driven row through closed switches.
func (m *Matrix) colLow(c int) bool {
	rowSeen := make([]bool, m.rows)
	colSeen := make([]bool, m.cols)

	var frontier []int
	for r, d := range m.driven {
		if d {
			rowSeen[r] = true
			frontier = append(frontier, r)
		}
	}
	for len(frontier) > 0 {
		r := frontier[0]
		frontier = frontier[1:]
		for cc := 0; cc < m.cols; cc++ {
			if !m.closed[r][cc] || colSeen[cc] {
				continue
			}
			colSeen[cc] = true
			for rr := 0; rr < m.rows; rr++ {
				if m.closed[rr][cc] && !rowSeen[rr] {
					rowSeen[rr] = true
					frontier = append(frontier, rr)
				}
			}
		}
	}
	return colSeen[c]
}

// -----------------------------------------------------------------------------
// Pin views
// -----------------------------------------------------------------------------

var (
	_ keypad.RowPin = (*RowPin)(nil)
	_ keypad.ColPin = (*ColPin)(nil)
)

type RowPin struct {
	m *Matrix
	i int
}

func (p *RowPin) Configure() error { p.Release(); return nil }

func (p *RowPin) Drive() {
	p.m.mu.Lock()
	if !p.m.driven[p.i] {
		p.m.driven[p.i] = true
		p.m.curDriven++
		if p.m.curDriven > p.m.maxDriven {
			p.m.maxDriven = p.m.curDriven
		}
	}
	p.m.mu.Unlock()
}

func (p *RowPin) Release() {
	p.m.mu.Lock()
	if p.m.driven[p.i] {
		p.m.driven[p.i] = false
		p.m.curDriven--
	}
	p.m.mu.Unlock()
}

type ColPin struct {
	m *Matrix
	i int
}

func (p *ColPin) Configure() error { return nil }

// Get reports the column level: pulled low only through a closed path to a
// driven row.
func (p *ColPin) Get() bool {
	p.m.mu.Lock()
	defer p.m.mu.Unlock()
	return !p.m.colLow(p.i)
}

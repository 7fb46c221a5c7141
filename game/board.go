package game

import (
	"fmt"
	"strings"
)

const (
	Players = 4  // Seats at the table
	Empty   = -1 // Owner of an unclaimed cell
)

// Board is an N×N ownership grid. A Board is never written after it has been
// handed to a GameState; transitions work on copies.
type Board struct {
	n     int
	cells []int8 // row-major by x, Empty or owner
}

// NewBoard creates an empty board of the given dimension.
func NewBoard(n int) *Board {
	if n <= 0 {
		panic(fmt.Sprintf("invalid board dimension %d", n))
	}
	b := &Board{n: n, cells: make([]int8, n*n)}
	for i := range b.cells {
		b.cells[i] = Empty
	}
	return b
}

// BoardFromGrid builds a board from an N×N grid indexed grid[x][y], holding
// Empty or a player index in every cell.
func BoardFromGrid(grid [][]int) (*Board, error) {
	n := len(grid)
	if n == 0 {
		return nil, fmt.Errorf("empty grid")
	}
	b := NewBoard(n)
	for x, column := range grid {
		if len(column) != n {
			return nil, fmt.Errorf("grid column %d has %d cells, want %d", x, len(column), n)
		}
		for y, owner := range column {
			if owner < Empty || owner >= Players {
				return nil, fmt.Errorf("grid cell (%d,%d) has invalid owner %d", x, y, owner)
			}
			b.cells[x*n+y] = int8(owner)
		}
	}
	return b, nil
}

func (b *Board) Dimension() int {
	return b.n
}

func (b *Board) InBounds(p Point) bool {
	return p.X >= 0 && p.X < b.n && p.Y >= 0 && p.Y < b.n
}

// At returns the owner of p, or Empty. Out of bounds cells read as Empty.
func (b *Board) At(p Point) int {
	if !b.InBounds(p) {
		return Empty
	}
	return int(b.cells[p.X*b.n+p.Y])
}

// Grid returns a fresh grid[x][y] copy of the board.
func (b *Board) Grid() [][]int {
	grid := make([][]int, b.n)
	for x := range grid {
		grid[x] = make([]int, b.n)
		for y := range grid[x] {
			grid[x][y] = int(b.cells[x*b.n+y])
		}
	}
	return grid
}

// Owns reports whether player has at least one cell on the board.
func (b *Board) Owns(player int) bool {
	for _, c := range b.cells {
		if int(c) == player {
			return true
		}
	}
	return false
}

// Count returns the number of cells owned by player.
func (b *Board) Count(player int) int {
	count := 0
	for _, c := range b.cells {
		if int(c) == player {
			count++
		}
	}
	return count
}

// HomeCorner is the corner player must cover with their first piece.
func (b *Board) HomeCorner(player int) Point {
	last := b.n - 1
	switch player {
	case 1:
		return Point{X: last, Y: 0}
	case 2:
		return Point{X: last, Y: last}
	case 3:
		return Point{X: 0, Y: last}
	}
	return Point{X: 0, Y: 0}
}

func (b *Board) touchesEdge(p Point, player int) bool {
	for _, o := range edgeOffsets {
		if b.At(p.Add(o)) == player {
			return true
		}
	}
	return false
}

func (b *Board) touchesCorner(p Point, player int) bool {
	for _, o := range cornerOffsets {
		if b.At(p.Add(o)) == player {
			return true
		}
	}
	return false
}

// IsLegal reports whether player may place shape, turned by rotation quarter
// turns, with its origin at anchor.
func (b *Board) IsLegal(player int, shape Shape, rotation int, anchor Point) bool {
	return b.fits(player, shape.Rotate(rotation), anchor, b.Owns(player))
}

// fits checks an already rotated shape. started reports whether player owns
// any cell, so callers enumerating many placements compute it once.
func (b *Board) fits(player int, rotated Shape, anchor Point, started bool) bool {
	home := b.HomeCorner(player)
	onCorner := false
	for _, o := range rotated {
		p := anchor.Add(o)
		if !b.InBounds(p) || b.At(p) != Empty || b.touchesEdge(p, player) {
			return false
		}
		if started {
			onCorner = onCorner || b.touchesCorner(p, player)
		} else {
			onCorner = onCorner || p == home
		}
	}
	return onCorner
}

// with returns a copy of the board with cells claimed by player.
func (b *Board) with(player int, cells []Point) *Board {
	next := &Board{n: b.n, cells: make([]int8, len(b.cells))}
	copy(next.cells, b.cells)
	for _, p := range cells {
		if !b.InBounds(p) {
			panic(invariant("cell %+v outside %dx%d board", p, b.n, b.n))
		}
		i := p.X*b.n + p.Y
		if next.cells[i] != Empty {
			panic(invariant("cell %+v already owned by player %d", p, next.cells[i]))
		}
		next.cells[i] = int8(player)
	}
	return next
}

// BonusSquares is the immutable set of cells that triple a placement's score.
type BonusSquares struct {
	set map[Point]struct{}
}

func NewBonusSquares(points ...Point) *BonusSquares {
	set := make(map[Point]struct{}, len(points))
	for _, p := range points {
		set[p] = struct{}{}
	}
	return &BonusSquares{set: set}
}

// Covers reports whether any of cells is a bonus square.
func (bs *BonusSquares) Covers(cells []Point) bool {
	if bs == nil {
		return false
	}
	for _, c := range cells {
		if _, ok := bs.set[c]; ok {
			return true
		}
	}
	return false
}

func (bs *BonusSquares) Len() int {
	if bs == nil {
		return 0
	}
	return len(bs.set)
}

func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.n; y++ {
		for x := 0; x < b.n; x++ {
			switch c := b.At(Point{X: x, Y: y}); c {
			case Empty:
				sb.WriteByte('.')
			default:
				sb.WriteByte(byte('0' + c))
			}
		}
		if y < b.n-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

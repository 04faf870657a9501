// internal/system/spatial_grid.go
package system

import (
	"math"

	"go-animated-bg/internal/component"
)

// SpatialGrid — плотная сетка корзин для поиска соседей без аллокаций в
// установившемся режиме. Корзины хранятся как односвязные списки индексов:
// head[cell] -> next[i] -> ... -> -1.
type SpatialGrid struct {
	CellSize float64

	minX, minY float64
	cols, rows int
	head       []int
	next       []int
}

// NewSpatialGrid создаёт сетку с заданным размером ячейки.
func NewSpatialGrid(cellSize float64) *SpatialGrid {
	return &SpatialGrid{CellSize: cellSize}
}

// Build раскладывает точки по ячейкам. Границы сетки берутся по самим точкам,
// так что отрицательные координаты (за краем поверхности) допустимы.
func (g *SpatialGrid) Build(pts []component.Point) {
	g.cols, g.rows = 0, 0
	if len(pts) == 0 || g.CellSize <= 0 {
		return
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	g.minX, g.minY = minX, minY
	g.cols = int((maxX-minX)/g.CellSize) + 1
	g.rows = int((maxY-minY)/g.CellSize) + 1

	cells := g.cols * g.rows
	if cap(g.head) < cells {
		g.head = make([]int, cells)
	}
	g.head = g.head[:cells]
	for i := range g.head {
		g.head[i] = -1
	}
	if cap(g.next) < len(pts) {
		g.next = make([]int, len(pts))
	}
	g.next = g.next[:len(pts)]

	for i, p := range pts {
		cell := g.cellIndex(g.cellOf(p))
		g.next[i] = g.head[cell]
		g.head[cell] = i
	}
}

func (g *SpatialGrid) cellOf(p component.Point) (int, int) {
	cx := int((p.X - g.minX) / g.CellSize)
	cy := int((p.Y - g.minY) / g.CellSize)
	return cx, cy
}

func (g *SpatialGrid) cellIndex(cx, cy int) int {
	return cy*g.cols + cx
}

// Neighbors вызывает fn для каждой точки из ячейки p и восьми соседних.
// Это надмножество точек в радиусе CellSize; расстояние проверяет вызывающий.
func (g *SpatialGrid) Neighbors(p component.Point, fn func(index int)) {
	if g.cols == 0 {
		return
	}
	cx, cy := g.cellOf(p)
	for y := cy - 1; y <= cy+1; y++ {
		if y < 0 || y >= g.rows {
			continue
		}
		for x := cx - 1; x <= cx+1; x++ {
			if x < 0 || x >= g.cols {
				continue
			}
			for i := g.head[g.cellIndex(x, y)]; i >= 0; i = g.next[i] {
				fn(i)
			}
		}
	}
}

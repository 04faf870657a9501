// internal/system/connection.go
package system

import (
	"math"
	"sort"

	"go-animated-bg/internal/component"
)

// ConnectionGraph строит временные связи между сущностями, которые ближе
// порога. Пересчитывается каждый тик.
//
// Полный перебор пар — O(n²); это приемлемо, пока сущностей десятки. Для
// больших пулов включается UseGrid: корзины размером с порог, результат тот же.
type ConnectionGraph struct {
	Threshold float64
	BaseAlpha float64
	UseGrid   bool

	grid *SpatialGrid
}

// NewConnectionGraph создаёт граф с порогом и базовой прозрачностью.
func NewConnectionGraph(threshold, baseAlpha float64, useGrid bool) *ConnectionGraph {
	return &ConnectionGraph{
		Threshold: threshold,
		BaseAlpha: baseAlpha,
		UseGrid:   useGrid,
	}
}

// EdgeOpacity — (1 - distance/threshold) * baseAlpha, не меньше нуля.
func (g *ConnectionGraph) EdgeOpacity(distance float64) float64 {
	if g.Threshold <= 0 {
		return 0
	}
	return math.Max(0, (1-distance/g.Threshold)*g.BaseAlpha)
}

// Compute пишет рёбра для точек pts в dst[:0] и возвращает его. Каждая пара
// встречается не более одного раза, всегда с A < B.
func (g *ConnectionGraph) Compute(pts []component.Point, dst []component.Edge) []component.Edge {
	dst = dst[:0]
	if g.Threshold <= 0 || len(pts) < 2 {
		return dst
	}
	if g.UseGrid {
		return g.computeGrid(pts, dst)
	}
	thresholdSq := g.Threshold * g.Threshold
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			dst = g.appendEdge(dst, pts, i, j, thresholdSq)
		}
	}
	return dst
}

func (g *ConnectionGraph) computeGrid(pts []component.Point, dst []component.Edge) []component.Edge {
	if g.grid == nil {
		g.grid = NewSpatialGrid(g.Threshold)
	}
	g.grid.CellSize = g.Threshold
	g.grid.Build(pts)

	thresholdSq := g.Threshold * g.Threshold
	for i := range pts {
		g.grid.Neighbors(pts[i], func(j int) {
			if j > i {
				dst = g.appendEdge(dst, pts, i, j, thresholdSq)
			}
		})
	}
	// Порядок как у полного перебора
	sort.Slice(dst, func(a, b int) bool {
		if dst[a].A != dst[b].A {
			return dst[a].A < dst[b].A
		}
		return dst[a].B < dst[b].B
	})
	return dst
}

func (g *ConnectionGraph) appendEdge(dst []component.Edge, pts []component.Point, i, j int, thresholdSq float64) []component.Edge {
	a, b := pts[i], pts[j]
	dx, dy := b.X-a.X, b.Y-a.Y
	dSq := dx*dx + dy*dy
	if dSq >= thresholdSq {
		return dst
	}
	d := math.Sqrt(dSq)
	return append(dst, component.Edge{
		A: i, B: j,
		X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y,
		Distance: d,
		Opacity:  g.EdgeOpacity(d),
	})
}

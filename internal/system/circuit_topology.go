// internal/system/circuit_topology.go
package system

import (
	"math"
	"sort"

	"go-animated-bg/internal/component"
	"go-animated-bg/internal/config"
	"go-animated-bg/internal/utils"
)

// Link — пара индексов узлов, A < B.
type Link struct {
	A, B int
}

// layoutGrid раскладывает узлы по сетке с шагом pitch, смещённой так, чтобы
// остаток делился поровну между краями. Узлы сетки ближе exclusion к ядру
// пропускаются, остальные сдвигаются на случайную величину в пределах jitter.
func layoutGrid(w, h, pitch, jitter, exclusion float64, core component.Point, rng *utils.PRNGService) []component.Point {
	if w <= 0 || h <= 0 || pitch <= 0 {
		return nil
	}
	offsetX := math.Mod(w, pitch) / 2
	offsetY := math.Mod(h, pitch) / 2
	var pts []component.Point
	for x := offsetX; x < w; x += pitch {
		for y := offsetY; y < h; y += pitch {
			if utils.Distance(x, y, core.X, core.Y) < exclusion {
				continue
			}
			pts = append(pts, component.Point{X: x + rng.Spread(jitter), Y: y + rng.Spread(jitter)})
		}
	}
	return pts
}

// nearest возвращает индексы узлов (кроме from и ядра с индексом 0),
// отсортированные по расстоянию до from.
func nearest(nodes []component.CircuitNode, from int) []int {
	idx := make([]int, 0, len(nodes))
	for i := range nodes {
		if i != from && !nodes[i].IsCore {
			idx = append(idx, i)
		}
	}
	origin := nodes[from]
	sort.SliceStable(idx, func(a, b int) bool {
		na, nb := nodes[idx[a]], nodes[idx[b]]
		return utils.DistanceSq(origin.X, origin.Y, na.X, na.Y) < utils.DistanceSq(origin.X, origin.Y, nb.X, nb.Y)
	})
	return idx
}

// linkTopology выбирает статичные дорожки: ядро соединяется с
// config.CoreLinkCount ближайшими узлами, обычный узел — с 2–4 ближайшими,
// но только в пределах config.NeighborCutoff. Пара узлов соединяется не
// более одного раза, независимо от того, кто её выбрал.
func linkTopology(nodes []component.CircuitNode, rng *utils.PRNGService) []Link {
	var links []Link
	seen := make(map[Link]bool)
	add := func(i, j int) {
		l := Link{A: min(i, j), B: max(i, j)}
		if seen[l] {
			return
		}
		seen[l] = true
		links = append(links, l)
	}

	for i, node := range nodes {
		candidates := nearest(nodes, i)
		if node.IsCore {
			for _, j := range candidates[:min(config.CoreLinkCount, len(candidates))] {
				add(i, j)
			}
			continue
		}
		k := config.NeighborLinkMin + rng.Intn(config.NeighborLinkMax-config.NeighborLinkMin+1)
		for _, j := range candidates[:min(k, len(candidates))] {
			other := nodes[j]
			if utils.Distance(node.X, node.Y, other.X, other.Y) < config.NeighborCutoff {
				add(i, j)
			}
		}
	}
	return links
}

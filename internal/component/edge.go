// internal/component/edge.go
package component

// Edge — временная связь между двумя сущностями, живёт один тик.
// A < B всегда: пара не повторяется в обратном порядке.
type Edge struct {
	A, B           int
	X1, Y1, X2, Y2 float64
	Distance       float64
	Opacity        float64
}

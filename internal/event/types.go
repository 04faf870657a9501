// internal/event/types.go
package event

const (
	PointerMoved   EventType = "PointerMoved"   // Указатель сдвинулся
	SurfaceResized EventType = "SurfaceResized" // Изменился размер поверхности или DPR
	SkinChanged    EventType = "SkinChanged"    // Хост переключил скин
)

// PointerData — координаты указателя в логических единицах поверхности
type PointerData struct {
	X, Y float64
}

// ResizeData — новый логический размер и отношение пикселей устройства
type ResizeData struct {
	Width, Height float64
	DPR           float64
}

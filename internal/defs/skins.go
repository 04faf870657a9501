// internal/defs/skins.go
package defs

import (
	"fmt"
	"image/color"
	"sort"

	"go-animated-bg/pkg/render"
)

// SkinDefinition holds all the static data for one background skin.
// It is fixed at engine construction and never tuned at runtime.
type SkinDefinition struct {
	ID   SkinID   `json:"id"`
	Name string   `json:"name"`
	Kind SkinKind `json:"kind"`

	Entities  CountFormula `json:"entities"`
	Secondary CountFormula `json:"secondary,omitempty"` // лавовые реки

	Palette         []string  `json:"palette"`
	CategoryWeights []float64 `json:"category_weights,omitempty"` // standard, glow, chrome
	Background      []string  `json:"background"`                 // стопы фонового градиента

	PointerRadius float64 `json:"pointer_radius"`
	PointerGain   float64 `json:"pointer_gain"`
	MaxSpeed      float64 `json:"max_speed"`

	ConnectionThreshold float64 `json:"connection_threshold"`
	ConnectionAlpha     float64 `json:"connection_alpha"`
	SpatialIndex        bool    `json:"spatial_index"`

	Composite CompositeMode `json:"composite"`
	Clear     ClearMode     `json:"clear"`
	Opacity   OpacityCurve  `json:"opacity"`

	SurfaceOpacity float64 `json:"surface_opacity,omitempty"` // 0 — непрозрачная поверхность

	Lifetime Range `json:"lifetime"` // в тиках
	Size     Range `json:"size"`
	Speed    Range `json:"speed"`
}

// Blend maps the composite mode onto the drawing surface blend.
func (d SkinDefinition) Blend() render.Blend {
	if d.Composite == CompositeAdditive {
		return render.BlendAdditive
	}
	return render.BlendNormal
}

// Colors parses the palette.
func (d SkinDefinition) Colors() ([]color.NRGBA, error) {
	return render.ParsePalette(d.Palette)
}

// BackgroundStops spreads the background colours evenly over [0,1].
func (d SkinDefinition) BackgroundStops() ([]render.Stop, error) {
	colors, err := render.ParsePalette(d.Background)
	if err != nil {
		return nil, err
	}
	stops := make([]render.Stop, len(colors))
	for i, c := range colors {
		offset := 0.0
		if len(colors) > 1 {
			offset = float64(i) / float64(len(colors)-1)
		}
		stops[i] = render.Stop{Offset: offset, Color: c}
	}
	return stops, nil
}

// SurfaceAlpha is the opacity of the whole drawing surface; unset means opaque.
func (d SkinDefinition) SurfaceAlpha() float64 {
	if d.SurfaceOpacity == 0 {
		return 1
	}
	return d.SurfaceOpacity
}

// HasConnections reports whether the skin derives per-tick edges.
func (d SkinDefinition) HasConnections() bool {
	return d.ConnectionThreshold > 0
}

// Validate checks the definition for values the engine cannot work with.
func (d SkinDefinition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("skin definition without id")
	}
	if len(d.Palette) == 0 {
		return fmt.Errorf("skin %s: empty palette", d.ID)
	}
	if _, err := d.Colors(); err != nil {
		return fmt.Errorf("skin %s: %w", d.ID, err)
	}
	if _, err := d.BackgroundStops(); err != nil {
		return fmt.Errorf("skin %s: background: %w", d.ID, err)
	}
	if d.Entities.Max < 0 || d.Entities.Min < 0 || (d.Entities.Max > 0 && d.Entities.Min > d.Entities.Max) {
		return fmt.Errorf("skin %s: invalid entity bounds %d..%d", d.ID, d.Entities.Min, d.Entities.Max)
	}
	if d.PointerRadius < 0 || d.ConnectionThreshold < 0 {
		return fmt.Errorf("skin %s: negative radius", d.ID)
	}
	if d.SurfaceOpacity < 0 || d.SurfaceOpacity > 1 {
		return fmt.Errorf("skin %s: surface opacity %v outside [0, 1]", d.ID, d.SurfaceOpacity)
	}
	if d.Lifetime.Min < 0 || d.Lifetime.Max < d.Lifetime.Min {
		return fmt.Errorf("skin %s: invalid lifetime %v..%v", d.ID, d.Lifetime.Min, d.Lifetime.Max)
	}
	switch d.Kind {
	case KindParticles, KindEmbers, KindCircuit:
	default:
		return fmt.Errorf("skin %s: unknown kind %q", d.ID, d.Kind)
	}
	for _, w := range d.CategoryWeights {
		if w < 0 {
			return fmt.Errorf("skin %s: negative category weight", d.ID)
		}
	}
	switch d.Composite {
	case CompositeNormal, CompositeAdditive:
	default:
		return fmt.Errorf("skin %s: unknown composite mode %q", d.ID, d.Composite)
	}
	switch d.Clear {
	case ClearFull, ClearTrail:
	default:
		return fmt.Errorf("skin %s: unknown clear mode %q", d.ID, d.Clear)
	}
	switch d.Opacity {
	case OpacityLinear, OpacityBreathing:
	default:
		return fmt.Errorf("skin %s: unknown opacity curve %q", d.ID, d.Opacity)
	}
	return nil
}

// Library is a set of skin definitions keyed by ID.
type Library map[SkinID]SkinDefinition

// Get returns a definition or ErrUnknownSkin.
func (l Library) Get(id SkinID) (SkinDefinition, error) {
	def, ok := l[id]
	if !ok {
		return SkinDefinition{}, fmt.Errorf("%w: %q", ErrUnknownSkin, id)
	}
	return def, nil
}

// IDs returns skin IDs in the fixed presentation order, followed by any extra
// IDs sorted alphabetically.
func (l Library) IDs() []SkinID {
	ids := make([]SkinID, 0, len(l))
	seen := make(map[SkinID]bool)
	for _, id := range BuiltinOrder {
		if _, ok := l[id]; ok {
			ids = append(ids, id)
			seen[id] = true
		}
	}
	var extra []SkinID
	for id := range l {
		if !seen[id] {
			extra = append(extra, id)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(ids, extra...)
}

// BuiltinOrder is the order skins are offered in by the host.
var BuiltinOrder = []SkinID{SkinMotherboard, SkinLiquidGlass, SkinAINetwork, SkinFireLava}

// DefaultLibrary returns a fresh copy of the built-in skins.
func DefaultLibrary() Library {
	lib := make(Library, 4)
	for _, def := range builtinSkins() {
		lib[def.ID] = def
	}
	return lib
}

func builtinSkins() []SkinDefinition {
	return []SkinDefinition{
		{
			ID:                  SkinLiquidGlass,
			Name:                "Liquid Glass",
			Kind:                KindParticles,
			CategoryWeights:     []float64{0.6, 0.25, 0.15},
			Entities:            CountFormula{AreaPerEntity: 20000, Max: 40},
			Palette:             []string{"#A5F3FC", "#C4B5FD", "#E0E7FF", "#F0ABFC"},
			Background:          []string{"#0B1026", "#131A3A", "#1E1B4B", "#0F172A"},
			PointerRadius:       150,
			PointerGain:         0.02,
			MaxSpeed:            1.2,
			ConnectionThreshold: 100,
			ConnectionAlpha:     0.15,
			Composite:           CompositeNormal,
			Clear:               ClearTrail,
			Opacity:             OpacityBreathing,
			Lifetime:            Range{Min: 400, Max: 800},
			Size:                Range{Min: 2, Max: 6},
			Speed:               Range{Min: -0.4, Max: 0.4},
		},
		{
			ID:                  SkinAINetwork,
			Name:                "AI Network",
			Kind:                KindParticles,
			CategoryWeights:     []float64{0.8, 0.2},
			Entities:            CountFormula{AreaPerEntity: 15000, Max: 60},
			Palette:             []string{"#3B82F6", "#8B5CF6", "#06B6D4", "#6366F1"},
			Background:          []string{"#020617", "#0F172A", "#1E1B4B"},
			PointerRadius:       100,
			PointerGain:         0.01,
			MaxSpeed:            1.5,
			ConnectionThreshold: 120,
			ConnectionAlpha:     0.3,
			Composite:           CompositeNormal,
			Clear:               ClearTrail,
			Opacity:             OpacityLinear,
			Lifetime:            Range{Min: 300, Max: 600},
			Size:                Range{Min: 1.5, Max: 3.5},
			Speed:               Range{Min: -0.5, Max: 0.5},
		},
		{
			ID:            SkinFireLava,
			Name:          "Fire & Lava",
			Kind:          KindEmbers,
			Entities:      CountFormula{AreaPerEntity: 18000, Max: 50},
			Secondary:     CountFormula{WidthPerEntity: 300, Min: 2, Max: 5},
			Palette:       []string{"#FF4500", "#FF6600", "#FFD700", "#DC2626"},
			Background:    []string{"#0A0505", "#1A0A05", "#2A0F05", "#0A0505"},
			PointerRadius: 120,
			PointerGain:   0.015,
			MaxSpeed:      2.5,
			Composite:     CompositeAdditive,
			Clear:         ClearFull,
			Opacity:       OpacityBreathing,
			Lifetime:      Range{Min: 200, Max: 450},
			Size:          Range{Min: 1.5, Max: 4.5},
			Speed:         Range{Min: 0.5, Max: 1.8}, // скорость подъёма
		},
		{
			ID:         SkinMotherboard,
			Name:       "Motherboard",
			Kind:       KindCircuit,
			Palette:    []string{"#00FFFF", "#0080FF", "#FF4500", "#FFD700", "#FF6600", "#00FF80"},
			Background: []string{"#0A0A0A", "#1A0A0A", "#2A1020", "#1A0A2A"},
			Composite:  CompositeAdditive,
			Clear:      ClearFull,
			Opacity:    OpacityBreathing,
			Size:       Range{Min: 4, Max: 12},

			SurfaceOpacity: 0.9,
			Speed:      Range{Min: 0.01, Max: 0.03}, // скорость импульса, доля линии за тик
		},
	}
}

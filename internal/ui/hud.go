// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-animated-bg/internal/config"
)

// HUDInfo — данные, которые показывает HUD.
type HUDInfo struct {
	Skin     string
	Entities int
	TPS      float64
	Index    int // номер скина, с единицы
	Total    int
}

// Lines форматирует строки HUD.
func (i HUDInfo) Lines() []string {
	return []string{
		fmt.Sprintf("%s [%d/%d]", i.Skin, i.Index, i.Total),
		fmt.Sprintf("entities: %d", i.Entities),
		fmt.Sprintf("tps: %.1f", i.TPS),
		"1-4 skin  tab next  h hide  p pause",
	}
}

// HUD — текстовый оверлей поверх фона.
type HUD struct {
	face    *text.GoXFace
	Visible bool
}

func NewHUD() *HUD {
	return &HUD{
		face:    text.NewGoXFace(basicfont.Face7x13),
		Visible: true,
	}
}

// Toggle переключает видимость.
func (h *HUD) Toggle() { h.Visible = !h.Visible }

// Draw рисует строки с тенью в левом верхнем углу. scale — DPR поверхности.
func (h *HUD) Draw(screen *ebiten.Image, info HUDInfo, scale float64) {
	if !h.Visible {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	lineHeight := h.face.Metrics().HAscent + h.face.Metrics().HDescent + 2
	for n, line := range info.Lines() {
		y := float64(config.HUDOffsetY) + float64(n)*lineHeight
		h.drawText(screen, line, config.HUDOffsetX+1, y+1, scale, config.HUDShadowColor)
		h.drawText(screen, line, config.HUDOffsetX, y, scale, config.HUDTextColor)
	}
}

func (h *HUD) drawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.GeoM.Scale(scale, scale)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, h.face, op)
}

// DrawBanner рисует крупную надпись по центру экрана поверх затемнения.
// Показывается независимо от Visible.
func (h *HUD) DrawBanner(screen *ebiten.Image, s string, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), config.PauseDimColor, false)

	const bannerScale = 3
	w, _ := text.Measure(s, h.face, 0)
	x := (float64(b.Dx())/scale - w*bannerScale) / 2
	y := float64(b.Dy())/scale/2 - h.face.Metrics().HAscent*bannerScale/2
	op := &text.DrawOptions{}
	op.GeoM.Scale(bannerScale, bannerScale)
	op.GeoM.Translate(x, y)
	op.GeoM.Scale(scale, scale)
	op.ColorScale.ScaleWithColor(config.HUDTextColor)
	text.Draw(screen, s, h.face, op)
}

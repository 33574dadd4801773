package laserbounce

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/laser-bounce/internal/config"
	"github.com/vovakirdan/laser-bounce/internal/core"
)

// HUDHeight is the number of screen rows above the playfield.
const HUDHeight = 1

const (
	glyphPlayer = '◆'
	glyphEnemy  = '●'
	glyphOrb    = '◉'
	glyphLaser  = '•'
)

// Banner texts.
const (
	BannerUnlockedText  = "LASER UNLOCKED!"
	BannerRechargedText = "LASER RECHARGED +%d"
)

// PlayfieldSize returns the playfield size in pixels for a screen of
// cols×rows cells.
func PlayfieldSize(cols, rows int, disp config.DisplayConfig) (float64, float64) {
	return float64(cols) * disp.CellWidth, float64(max(rows-HUDHeight, 0)) * disp.CellHeight
}

// Render draws the current snapshot into dst.
func (d *Driver) Render(dst *core.Screen) {
	snap := d.Snapshot()
	snap.Render(dst, d.cfg)
}

// Render draws the playfield, HUD and banner into dst.
func (snap *Snapshot) Render(dst *core.Screen, cfg config.Config) {
	dst.Clear()
	v := viewport{dst: dst, cw: cfg.Display.CellWidth, ch: cfg.Display.CellHeight}

	for _, o := range snap.Orbs {
		v.disc(o.X, o.Y, o.Radius, glyphOrb, core.ColorBrightGreen)
	}
	for _, e := range snap.Enemies {
		v.disc(e.X, e.Y, e.Radius, glyphEnemy, HueColor(e.Hue))
	}
	for _, l := range snap.Lasers {
		tx, ty := l.Tail()
		v.line(l.X, l.Y, tx, ty, glyphLaser, core.ColorBrightRed)
	}
	if snap.RunID != 0 {
		p := snap.Player
		v.disc(p.X, p.Y, p.Radius, glyphPlayer, core.ColorBrightYellow)
	}

	if snap.Banner > 0 {
		row := v.row(snap.Height/2 - 100*snap.Scale)
		dst.DrawTextCentered(core.Clamp(row, HUDHeight, dst.Height()-1), snap.BannerText(cfg.Laser.AmmoPerGrant), core.ColorBrightCyan)
	}

	snap.renderHUD(dst)
}

// BannerText returns the overlay text for the current banner.
func (snap *Snapshot) BannerText(grant int) string {
	switch snap.BannerKind {
	case BannerRecharged:
		return fmt.Sprintf(BannerRechargedText, grant)
	case BannerUnlocked:
		return BannerUnlockedText
	default:
		return ""
	}
}

func (snap *Snapshot) renderHUD(dst *core.Screen) {
	for x := range dst.Width() {
		dst.SetColored(x, 0, ' ', core.ColorDefault)
	}

	dst.DrawColoredText(1, 0, fmt.Sprintf("SCORE %d", snap.Score), core.ColorWhite)

	ammo := "LASER LOCKED"
	ammoColor := core.ColorGray
	if snap.Unlocked {
		ammo = fmt.Sprintf("AMMO %d", snap.Ammo)
		ammoColor = core.ColorBrightRed
	}
	dst.DrawColoredText(14, 0, ammo, ammoColor)

	right := fmt.Sprintf("TIER %d  %s", snap.Tier, strings.ToUpper(snap.Preset.Title()))
	dst.DrawColoredText(dst.Width()-len(right)-1, 0, right, core.ColorCyan)
}

// HueColor converts an enemy hue to a terminal color, saturation 70% and
// lightness 50%.
func HueColor(hue float64) core.Color {
	return core.Color(colorful.Hsl(hue, 0.7, 0.5).Clamped().Hex())
}

// viewport maps playfield pixels to screen cells below the HUD.
type viewport struct {
	dst    *core.Screen
	cw, ch float64
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x / v.cw))
}

func (v viewport) row(y float64) int {
	return HUDHeight + int(math.Floor(y/v.ch))
}

func (v viewport) set(col, row int, r rune, c core.Color) {
	if row < HUDHeight {
		return
	}
	v.dst.SetColored(col, row, r, c)
}

// disc fills the cells whose centers lie inside the circle. The center
// cell is always filled so small circles stay visible.
func (v viewport) disc(x, y, radius float64, r rune, c core.Color) {
	c0, c1 := v.col(x-radius), v.col(x+radius)
	r0, r1 := v.row(y-radius), v.row(y+radius)
	for row := r0; row <= r1; row++ {
		cy := (float64(row-HUDHeight) + 0.5) * v.ch
		for col := c0; col <= c1; col++ {
			cx := (float64(col) + 0.5) * v.cw
			if math.Hypot(cx-x, cy-y) < radius {
				v.set(col, row, r, c)
			}
		}
	}
	v.set(v.col(x), v.row(y), r, c)
}

// line plots a segment by sampling it at half-cell steps.
func (v viewport) line(x0, y0, x1, y1 float64, r rune, c core.Color) {
	dist := math.Hypot(x1-x0, y1-y0)
	steps := int(math.Ceil(dist/(math.Min(v.cw, v.ch)/2))) + 1
	for i := range steps {
		t := float64(i) / float64(max(steps-1, 1))
		v.set(v.col(x0+(x1-x0)*t), v.row(y0+(y1-y0)*t), r, c)
	}
}

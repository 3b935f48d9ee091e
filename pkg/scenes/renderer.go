package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gonewx/targets/pkg/components"
	"github.com/gonewx/targets/pkg/config"
	"github.com/gonewx/targets/pkg/ecs"
	"github.com/gonewx/targets/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 字体大小
const (
	titleFontSize  = 64.0
	statFontSize   = 25.0
	bubbleFontSize = 30.0
	smallFontSize  = 14.0
)

var (
	backgroundColor = color.RGBA{R: 222, G: 230, B: 238, A: 255}
	statBarColor    = color.RGBA{R: 40, G: 44, B: 52, A: 255}
	statTextColor   = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	targetRed       = color.RGBA{R: 210, G: 40, B: 40, A: 255}
	targetWhite     = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	shardColor      = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	crosshairColor  = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	beamColor       = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	overlayColor    = color.RGBA{R: 0, G: 0, B: 0, A: 140}
)

// LightColorRGBA 状态灯颜色对应的绘制颜色
func LightColorRGBA(c components.LightColor) color.RGBA {
	switch c {
	case components.LightRed:
		return color.RGBA{R: 230, G: 50, B: 50, A: 255}
	case components.LightGreen:
		return color.RGBA{R: 60, G: 200, B: 80, A: 255}
	case components.LightYellow:
		return color.RGBA{R: 240, G: 210, B: 60, A: 255}
	default:
		return color.RGBA{R: 20, G: 20, B: 20, A: 255}
	}
}

// LightCellCenter 返回第 i 个灯的中心（屏幕坐标），灯带整体水平居中
func LightCellCenter(i, count int) (float64, float64) {
	left := float64(config.LightRowCenterX) - float64(count)*config.LightCellSize/2
	x := left + float64(i)*config.LightCellSize + config.LightCellSize/2
	y := float64(config.StatBarY+config.LightRowY) + config.LightCellSize/2
	return x, y
}

// StatLabels 返回状态栏左侧分数和右侧失误文字
func StatLabels(session *game.GameSession) (string, string) {
	score := fmt.Sprintf("Score: %d", session.Score())
	missed := fmt.Sprintf("Missed: %d/%d", session.Misses(), session.Config().Session.MaxMisses)
	return score, missed
}

// Renderer 绘制会话中的所有元素
// 两个场景共享同一个 Renderer，字体只加载一次
type Renderer struct {
	session    *game.GameSession
	titleFace  *text.GoTextFace
	statFace   *text.GoTextFace
	bubbleFace *text.GoTextFace
	smallFace  *text.GoTextFace
}

// NewRenderer 创建渲染器并加载字体
func NewRenderer(rm *game.ResourceManager, session *game.GameSession) (*Renderer, error) {
	r := &Renderer{session: session}

	faces := []struct {
		size float64
		dst  **text.GoTextFace
	}{
		{titleFontSize, &r.titleFace},
		{statFontSize, &r.statFace},
		{bubbleFontSize, &r.bubbleFace},
		{smallFontSize, &r.smallFace},
	}
	for _, f := range faces {
		face, err := rm.LoadDefaultFont(f.size)
		if err != nil {
			return nil, fmt.Errorf("failed to load font size %.0f: %w", f.size, err)
		}
		*f.dst = face
	}

	return r, nil
}

// DrawBackground 填充游戏区域背景
func (r *Renderer) DrawBackground(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
}

// DrawTarget 绘制靶子：隐藏时不绘制，破碎阶段绘制碎片
func (r *Renderer) DrawTarget(screen *ebiten.Image) {
	t := r.session.Target()
	if !t.IsVisible() {
		return
	}

	x, y := t.Position()
	radius := t.HitRadius()
	if radius <= 0 {
		return
	}
	cx, cy := float32(x), float32(y)

	if t.State() == game.TargetBreaking {
		r.drawShards(screen, cx, cy, float32(radius))
		return
	}

	// 由外向内红白交替的四个同心圆
	for ring := 0; ring < 4; ring++ {
		ringRadius := float32(radius * float64(4-ring) / 4)
		clr := targetRed
		if ring%2 == 1 {
			clr = targetWhite
		}
		vector.DrawFilledCircle(screen, cx, cy, ringRadius, clr, true)
	}
}

// drawShards 破碎靶子：六片沿径向散开的碎片
func (r *Renderer) drawShards(screen *ebiten.Image, cx, cy, radius float32) {
	const shards = 6
	for i := 0; i < shards; i++ {
		angle := float64(i) * 2 * math.Pi / shards
		dx := float32(math.Cos(angle))
		dy := float32(math.Sin(angle))
		ox := cx + dx*radius*0.4
		oy := cy + dy*radius*0.4
		vector.DrawFilledCircle(screen, ox, oy, radius*0.3, shardColor, true)
		vector.StrokeLine(screen, ox, oy, ox+dx*radius*0.6, oy+dy*radius*0.6, 2, targetRed, true)
	}
}

// DrawCrosshair 绘制准星圆环、十字线和四个炮口
func (r *Renderer) DrawCrosshair(screen *ebiten.Image) {
	c := r.session.Crosshair()
	cfg := r.session.Config().Crosshair
	x, y := c.Position()
	cx, cy := float32(x), float32(y)

	vector.StrokeCircle(screen, cx, cy, float32(cfg.Radius), 3, crosshairColor, true)
	vector.StrokeLine(screen, cx-30, cy, cx+30, cy, 2, crosshairColor, true)
	vector.StrokeLine(screen, cx, cy-30, cx, cy+30, 2, crosshairColor, true)

	for _, gun := range c.GunPositions() {
		vector.DrawFilledCircle(screen, float32(gun.X), float32(gun.Y), 6, crosshairColor, true)
	}
}

// DrawBeams 绘制激光光束
func (r *Renderer) DrawBeams(screen *ebiten.Image) {
	c := r.session.Crosshair()
	width := float32(r.session.Config().Laser.BeamWidth)
	for _, b := range c.Laser().Beams(c) {
		vector.StrokeLine(screen, float32(b.X1), float32(b.Y1), float32(b.X2), float32(b.Y2), width, beamColor, true)
	}
}

// DrawBubbles 绘制得分气泡：圆环加 "+N"，颜色随灰度淡出
func (r *Renderer) DrawBubbles(screen *ebiten.Image) {
	em := r.session.Bubbles()
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.ScoreBubbleComponent](em) {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		bubble, ok := ecs.GetComponent[*components.ScoreBubbleComponent](em, id)
		if !ok {
			continue
		}

		clr := color.RGBA{R: bubble.Gray, G: bubble.Gray, B: bubble.Gray, A: 255}
		vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(bubble.Radius), 3, clr, true)
		drawCenteredText(screen, fmt.Sprintf("+%d", bubble.Value), r.bubbleFace, pos.X, pos.Y, clr)
	}
}

// DrawStatBar 绘制底部状态栏：灯带、分数、失误和声音开关
// showHigh 为 true 时在左上角显示最高分（标题画面）
func (r *Renderer) DrawStatBar(screen *ebiten.Image, showHigh bool) {
	vector.DrawFilledRect(screen, 0, config.StatBarY, config.GameWindowWidth, config.StatBarHeight, statBarColor, false)

	cells := r.session.Lights().Cells()
	for i, cell := range cells {
		x, y := LightCellCenter(i, len(cells))
		vector.DrawFilledCircle(screen, float32(x), float32(y), config.LightCellSize/2-2, LightColorRGBA(cell), true)
	}

	score, missed := StatLabels(r.session)
	textY := float64(config.StatBarY + config.StatTextY)
	drawLeftText(screen, score, r.statFace, 20, textY, statTextColor)
	drawRightText(screen, missed, r.statFace, config.GameWindowWidth-20, textY, statTextColor)

	if showHigh && r.session.HighScore() > 0 {
		high := fmt.Sprintf("High: %d", r.session.HighScore())
		drawLeftText(screen, high, r.smallFace, 20, float64(config.StatBarY+config.LightRowY+config.LightCellSize/2), statTextColor)
	}

	r.drawSoundToggle(screen)
}

// drawSoundToggle 声音开关：开启时为实心，关闭时加一条斜线
func (r *Renderer) drawSoundToggle(screen *ebiten.Image) {
	rect := soundToggleRect()
	x, y := float32(rect.MinX), float32(rect.MinY)
	w, h := float32(rect.MaxX-rect.MinX), float32(rect.MaxY-rect.MinY)

	vector.StrokeRect(screen, x, y, w, h, 2, statTextColor, true)
	label := "ON"
	if !r.session.SoundEnabled() {
		label = "OFF"
		vector.StrokeLine(screen, x, y+h, x+w, y, 2, targetRed, true)
	}
	drawCenteredText(screen, label, r.smallFace, float64(x+w/2), float64(y+h/2), statTextColor)
}

// DrawGameOver 游戏结束遮罩和提示
func (r *Renderer) DrawGameOver(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, config.GameWindowWidth, config.StatBarY, overlayColor)

	centerX := float64(config.GameWindowWidth) / 2
	drawCenteredText(screen, "GAME OVER", r.titleFace, centerX, 220, targetWhite)
	if r.session.IsNewHighScore() {
		drawCenteredText(screen, "NEW HIGH SCORE!", r.statFace, centerX, 300, LightColorRGBA(components.LightYellow))
	}
	if r.session.IsFinalized() {
		drawCenteredText(screen, "Press SPACE to play again", r.statFace, centerX, 380, statTextColor)
	}
}

// DrawTitle 标题画面文字
func (r *Renderer) DrawTitle(screen *ebiten.Image) {
	centerX := float64(config.GameWindowWidth) / 2
	drawCenteredText(screen, "TARGETS", r.titleFace, centerX, 220, crosshairColor)
	drawCenteredText(screen, "Arrow keys to aim, SPACE to fire", r.statFace, centerX, 320, crosshairColor)
	drawCenteredText(screen, "Press SPACE to start", r.statFace, centerX, 380, crosshairColor)
}

// drawCenteredText 以 (x, y) 为中心绘制文字
func drawCenteredText(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64, clr color.Color) {
	width := text.Advance(str, face)
	drawText(screen, str, face, x-width/2, y-face.Size/2, clr)
}

// drawLeftText 左对齐，y 为文字垂直中心
func drawLeftText(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64, clr color.Color) {
	drawText(screen, str, face, x, y-face.Size/2, clr)
}

// drawRightText 右对齐，y 为文字垂直中心
func drawRightText(screen *ebiten.Image, str string, face *text.GoTextFace, right, y float64, clr color.Color) {
	width := text.Advance(str, face)
	drawText(screen, str, face, right-width, y-face.Size/2, clr)
}

func drawText(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64, clr color.Color) {
	textOp := &text.DrawOptions{}
	textOp.GeoM.Translate(x, y)
	textOp.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, textOp)
}

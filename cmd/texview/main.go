// texview opens the manifest of a texgen run and shows each texture
// magnified, with a texel grid and a pixel inspector.
package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sqweek/dialog"

	"github.com/ecstaticpichu/promaton-texgen/engine/input"
	"github.com/ecstaticpichu/promaton-texgen/engine/manifest"
	"github.com/ecstaticpichu/promaton-texgen/engine/textures"
	"github.com/ecstaticpichu/promaton-texgen/engine/view"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	// gridMinZoom hides the texel grid when lines would crowd the texture.
	gridMinZoom = 6
)

var (
	colBackground = color.RGBA{30, 30, 40, 255}
	colBacking    = color.RGBA{70, 70, 78, 255}
	colGrid       = color.RGBA{0, 0, 0, 60}
	colHover      = color.RGBA{255, 255, 0, 200}
	colBar        = color.RGBA{20, 20, 40, 220}
)

type ViewerApp struct {
	lib    *view.Library
	cam    *view.Camera
	input  *input.InputState
	images map[*view.Texture]*ebiten.Image

	showGrid bool
	status   string
}

func NewViewerApp(lib *view.Library) *ViewerApp {
	a := &ViewerApp{
		lib:      lib,
		cam:      view.NewCamera(ScreenWidth, ScreenHeight),
		input:    input.NewInputState(),
		images:   map[*view.Texture]*ebiten.Image{},
		showGrid: true,
	}
	a.refit()
	return a
}

func (a *ViewerApp) refit() {
	if t := a.lib.Current(); t != nil {
		a.cam.Fit(t.Size())
	}
}

func (a *ViewerApp) image(t *view.Texture) *ebiten.Image {
	if t.Canvas == nil {
		return nil
	}
	img, ok := a.images[t]
	if !ok {
		img = ebiten.NewImageFromImage(t.Canvas.Image())
		a.images[t] = img
	}
	return img
}

func (a *ViewerApp) Update() error {
	a.input.Update()

	if a.input.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// Texture selection
	switch {
	case a.input.IsKeyJustPressed(ebiten.KeyRight), a.input.IsKeyJustPressed(ebiten.KeyTab):
		a.lib.Next()
		a.refit()
	case a.input.IsKeyJustPressed(ebiten.KeyLeft):
		a.lib.Prev()
		a.refit()
	}
	groups := map[ebiten.Key]string{
		ebiten.Key0: "", ebiten.Key1: "block", ebiten.Key2: "item", ebiten.Key3: "gui",
	}
	for k, g := range groups {
		if a.input.IsKeyJustPressed(k) {
			a.lib.SetGroup(g)
			a.refit()
		}
	}

	// Camera controls
	speed := a.cam.Speed / 60.0
	if a.input.Held(ebiten.KeyW, ebiten.KeyUp) {
		a.cam.Pan(0, -speed)
	}
	if a.input.Held(ebiten.KeyS, ebiten.KeyDown) {
		a.cam.Pan(0, speed)
	}
	if a.input.Held(ebiten.KeyA) {
		a.cam.Pan(-speed, 0)
	}
	if a.input.Held(ebiten.KeyD) {
		a.cam.Pan(speed, 0)
	}
	if a.input.ScrollY != 0 {
		a.cam.ZoomAt(math.Pow(1.15, a.input.ScrollY), a.input.MouseX, a.input.MouseY)
	}
	if a.input.IsKeyJustPressed(ebiten.KeyEqual) {
		a.cam.SetZoom(math.Floor(a.cam.Zoom) + 1)
	}
	if a.input.IsKeyJustPressed(ebiten.KeyMinus) {
		a.cam.SetZoom(math.Ceil(a.cam.Zoom) - 1)
	}
	if dx, dy, ok := a.input.DragDelta(); ok {
		a.cam.Pan(float64(-dx), float64(-dy))
	}
	if a.input.IsKeyJustPressed(ebiten.KeyF) {
		a.refit()
	}

	if a.input.IsKeyJustPressed(ebiten.KeyG) {
		a.showGrid = !a.showGrid
	}

	// Reload after texgen has rewritten the files
	if a.input.IsKeyJustPressed(ebiten.KeyR) {
		for _, img := range a.images {
			img.Deallocate()
		}
		a.images = map[*view.Texture]*ebiten.Image{}
		if err := a.lib.Reload(); err != nil {
			log.Printf("Reload failed: %v", err)
			a.status = "reload failed"
		} else {
			a.status = "reloaded"
		}
		a.refit()
	}
	return nil
}

func (a *ViewerApp) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)

	t := a.lib.Current()
	if t == nil {
		return
	}
	tw, th := t.Size()
	scale, tx, ty := a.cam.Transform()
	w, h := float32(float64(tw)*scale), float32(float64(th)*scale)
	vector.DrawFilledRect(screen, float32(tx), float32(ty), w, h, colBacking, false)

	if img := a.image(t); img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(tx, ty)
		screen.DrawImage(img, op)
	}

	if a.showGrid && scale >= gridMinZoom {
		for x := 0; x <= tw; x++ {
			sx := float32(tx + float64(x)*scale)
			vector.StrokeLine(screen, sx, float32(ty), sx, float32(ty)+h, 1, colGrid, false)
		}
		for y := 0; y <= th; y++ {
			sy := float32(ty + float64(y)*scale)
			vector.StrokeLine(screen, float32(tx), sy, float32(tx)+w, sy, 1, colGrid, false)
		}
	}

	// Hover highlight
	hover := "-"
	if p, ok := a.cam.PixelAt(a.input.MouseX, a.input.MouseY); ok {
		sx, sy := a.cam.WorldToScreen(float64(p.X), float64(p.Y))
		z := float32(scale)
		vector.StrokeRect(screen, float32(math.Round(sx)), float32(math.Round(sy)), z, z, 2, colHover, false)
		if c, ok := t.Texel(p); ok {
			hover = fmt.Sprintf("(%d,%d) rgba(%d,%d,%d,%d)", p.X, p.Y, c.R, c.G, c.B, c.A)
		}
	}

	a.drawHUD(screen, t, hover)
}

func (a *ViewerApp) drawHUD(screen *ebiten.Image, t *view.Texture, hover string) {
	sw, sh := a.cam.ScreenW, a.cam.ScreenH
	vector.DrawFilledRect(screen, 0, 0, float32(sw), 22, colBar, false)
	vector.DrawFilledRect(screen, 0, float32(sh-22), float32(sw), 22, colBar, false)

	group := a.lib.Group()
	if group == "" {
		group = "all"
	}
	title := fmt.Sprintf("%s  [%s]  %dx%d  %d/%d  filter:%s  zoom:%.2gx",
		t.Name, t.Group, t.Width, t.Height, a.lib.Index()+1, a.lib.Len(), group, a.cam.Zoom)
	switch {
	case t.Err != nil:
		title += "  ERROR: " + t.Err.Error()
	case t.Stale:
		title += "  * changed since generation *"
	}
	if a.status != "" {
		title += "  " + a.status
	}
	ebitenutil.DebugPrintAt(screen, title, 5, 3)

	help := fmt.Sprintf("Pixel %s | [Left/Right]Texture [0-3]Group [WASD/Drag]Pan [Scroll/+/-]Zoom [F]Fit [G]Grid [R]Reload [Esc]Quit", hover)
	ebitenutil.DebugPrintAt(screen, help, 5, sh-19)
}

func (a *ViewerApp) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.cam.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// pickManifest asks for a manifest when none was given, starting from the
// default location if it exists.
func pickManifest() (string, error) {
	if len(os.Args) > 1 {
		return os.Args[1], nil
	}
	dlg := dialog.File().Filter("Texture manifest", "yaml", "yml").Title("Open texture manifest")
	dir := filepath.Join(textures.FindProject("."), filepath.Dir(filepath.FromSlash(manifest.DefaultPath)))
	if st, err := os.Stat(dir); err == nil && st.IsDir() {
		dlg = dlg.SetStartDir(dir)
	}
	return dlg.Load()
}

func main() {
	path, err := pickManifest()
	if err != nil {
		if errors.Is(err, dialog.ErrCancelled) {
			return
		}
		log.Fatal(err)
	}
	lib, err := view.Open(path)
	if err != nil {
		log.Fatalf("Failed to open manifest: %v", err)
	}

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Promaton Texture Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewViewerApp(lib)); err != nil {
		log.Fatal(err)
	}
}

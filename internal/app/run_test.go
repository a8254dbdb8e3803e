package app

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/waozixyz/clok/internal/config"
	"github.com/waozixyz/clok/internal/logger"
	"github.com/waozixyz/clok/layer"
	"github.com/waozixyz/clok/render"
	"github.com/waozixyz/clok/theme"
	apperrors "github.com/waozixyz/clok/pkg/errors"
)

const layerSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100" viewBox="0 0 100 100">
<circle cx="50" cy="50" r="40" fill="#336699"/></svg>`

// writeTheme creates every layer file of theme name under root, except skip.
func writeTheme(t *testing.T, root, name string, skip ...string) {
	t.Helper()
	dir := theme.Dir(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	skipped := map[string]bool{}
	for _, s := range skip {
		skipped[s] = true
	}
	for _, info := range layer.Registry() {
		if skipped[info.File] {
			continue
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, info.File), []byte(layerSVG), 0o644))
	}
}

type step struct {
	ticks  int
	resize [2]int
}

// fakeHost plays a script of ticks and resizes against an App.
type fakeHost struct {
	script   []step
	cfg      render.WindowConfig
	inited   bool
	cleaned  bool
	pending  bool
	width    int
	height   int
	paints   int
	initErr  error
	quitSeen bool
}

func (h *fakeHost) Init(cfg render.WindowConfig) error {
	h.cfg = cfg
	h.inited = true
	h.width, h.height = cfg.Width, cfg.Height
	return h.initErr
}

func (h *fakeHost) RequestRedraw() { h.pending = true }

func (h *fakeHost) Size() (int, int) { return h.width, h.height }

func (h *fakeHost) Cleanup() { h.cleaned = true }

func (h *fakeHost) Run(app render.App) error {
	for _, s := range h.script {
		if s.resize != [2]int{} {
			h.width, h.height = s.resize[0], s.resize[1]
			h.pending = true
		}
		for i := 0; i < s.ticks; i++ {
			app.OnTick()
		}
		if h.pending {
			h.pending = false
			c := render.NewCanvas(render.NewSurface(h.width, h.height))
			app.OnPaint(c, h.width, h.height)
			h.paints++
		}
	}
	app.OnQuit()
	h.quitSeen = true
	return nil
}

func newStore(t *testing.T) *config.Store {
	t.Helper()
	s, err := config.NewStore(filepath.Join(t.TempDir(), config.AppName))
	require.NoError(t, err)
	return s
}

func TestRunFullCyclePersistsResize(t *testing.T) {
	store := newStore(t)
	writeTheme(t, store.Dir(), config.DefaultTheme)

	settings, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, config.Defaults(), settings)
	settings.UserThemes = true

	host := &fakeHost{script: []step{
		{ticks: 3},
		{ticks: 1},
		{resize: [2]int{600, 600}, ticks: 2},
	}}
	err = Run(Options{Settings: settings, Store: store, Host: host, Log: logger.Nop()})
	require.NoError(t, err)

	require.True(t, host.inited)
	require.True(t, host.cleaned)
	require.True(t, host.quitSeen)
	require.Equal(t, 3, host.paints)
	require.Equal(t, 400, host.cfg.Width)
	require.Equal(t, 100*time.Millisecond, host.cfg.TickInterval)

	saved, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, config.Settings{Width: 600, Height: 600, Theme: "default", Hz: 10}, saved)
}

func TestRunMissingFaceIsFatalAndSavesNothing(t *testing.T) {
	store := newStore(t)
	writeTheme(t, store.Dir(), config.DefaultTheme, "clock-face.svg")

	settings := config.Defaults()
	settings.UserThemes = true
	host := &fakeHost{}

	err := Run(Options{Settings: settings, Store: store, Host: host, Log: logger.Nop()})
	require.Error(t, err)
	require.True(t, apperrors.IsFatal(err))
	require.False(t, host.inited, "no window for a broken theme")

	_, statErr := os.Stat(store.Path())
	require.True(t, os.IsNotExist(statErr))
}

func TestRunWithoutOptionalLayers(t *testing.T) {
	store := newStore(t)
	var optional []string
	for _, info := range layer.Registry() {
		if !info.Mandatory {
			optional = append(optional, info.File)
		}
	}
	writeTheme(t, store.Dir(), "minimal", optional...)

	settings := config.Defaults()
	settings.Theme = "minimal"
	settings.UserThemes = true
	host := &fakeHost{script: []step{{ticks: 1}}}

	require.NoError(t, Run(Options{Settings: settings, Store: store, Host: host, Log: logger.Nop()}))
	require.Equal(t, 1, host.paints)
}

func TestRunSaveFailureOnlyWarns(t *testing.T) {
	store := newStore(t)
	writeTheme(t, store.Dir(), config.DefaultTheme)
	require.NoError(t, os.Mkdir(store.Path(), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(store.Path(), "x"), nil, 0o600))

	settings := config.Defaults()
	settings.UserThemes = true

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "warn", Writer: buf})
	require.NoError(t, err)

	err = Run(Options{Settings: settings, Store: store, Host: &fakeHost{}, Log: log})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "Failed to save configuration")
}

func TestRunRejectsInvalidSettings(t *testing.T) {
	settings := config.Defaults()
	settings.Hz = 0
	host := &fakeHost{}

	err := Run(Options{Settings: settings, Store: newStore(t), Host: host})
	require.Error(t, err)
	require.False(t, host.inited)
}

func TestSnapshotWritesPNG(t *testing.T) {
	root := t.TempDir()
	writeTheme(t, root, "snap")

	settings := config.Defaults()
	settings.Theme = "snap"
	settings.Width, settings.Height = 120, 90

	var buf bytes.Buffer
	at := time.Date(2025, 6, 1, 10, 8, 30, 0, time.Local)
	require.NoError(t, Snapshot(settings, root, at, &buf, nil))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 120, img.Bounds().Dx())
	require.Equal(t, 90, img.Bounds().Dy())
	_, _, _, a := img.At(60, 45).RGBA()
	require.NotZero(t, a)
}

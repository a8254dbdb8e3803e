package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/waozixyz/clok/internal/logger"
	"github.com/waozixyz/clok/layer"
	"github.com/waozixyz/clok/render"
	apperrors "github.com/waozixyz/clok/pkg/errors"
)

// OpenFunc loads one layer file.
type OpenFunc func(path string) (render.Layer, error)

// Options selects the theme to load.
type Options struct {
	Name        string
	Root        string // search root; themes live in Root/themes/Name
	HideSeconds bool   // skip the second hand and its shadow
	Open        OpenFunc
	Log         *logger.Logger
}

// Dir returns the directory holding theme name under root.
func Dir(root, name string) string {
	return filepath.Join(root, "themes", name)
}

func openSVG(path string) (render.Layer, error) {
	return render.LoadSVG(path)
}

// Load opens every registry layer of the theme. A mandatory layer that
// fails aborts the load with a fatal *errors.LoadError and releases what
// was already opened. An optional layer that fails is logged and left out.
func Load(opts Options) (*LayerSet, error) {
	open := opts.Open
	if open == nil {
		open = openSVG
	}
	dir := Dir(opts.Root, opts.Name)
	log := opts.Log.WithFields(map[string]any{"theme": opts.Name, "dir": dir})

	loaded := make(map[layer.Element]render.Layer, layer.Count)
	for _, info := range layer.Registry() {
		if opts.HideSeconds && layer.IsSeconds(info.Element) {
			continue
		}

		path := filepath.Join(dir, info.File)
		l, err := open(path)
		if err == nil && l == nil {
			err = fmt.Errorf("no layer returned")
		}
		if err != nil {
			loadErr := apperrors.NewLoadError(info.Name, path, info.Mandatory, err)
			if info.Mandatory {
				for _, done := range loaded {
					done.Release()
				}
				return nil, loadErr
			}
			log.Warn(loadErr, "optional layer not loaded")
			continue
		}
		loaded[info.Element] = l
	}

	set := NewLayerSet(loaded)
	geo := set.Geometry()
	log.WithFields(map[string]any{"layers": set.Len(), "width": geo.Width, "height": geo.Height}).
		Debug("theme loaded")
	return set, nil
}

// List returns the names of the theme directories under root, sorted.
func List(root string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(root, "themes"))
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

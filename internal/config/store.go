package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/ini.v1"

	apperrors "github.com/waozixyz/clok/pkg/errors"
)

const section = "Settings"

const (
	keyWidth  = "width"
	keyHeight = "height"
	keyTheme  = "theme"
	keyHz     = "hz"
)

func init() {
	// Write "width=400" rather than aligned "width  = 400".
	ini.PrettyFormat = false
}

// Store reads and writes the key file holding the persisted settings.
type Store struct {
	dir  string
	path string
}

// DefaultDir returns the per-user config directory for the app.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", apperrors.NewConfigError("locate", "user config dir", err)
	}
	return filepath.Join(base, AppName), nil
}

// NewStore prepares dir, creating it with mode 0700 when missing.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, apperrors.NewConfigError("create", dir, err)
	}
	return &Store{dir: dir, path: filepath.Join(dir, AppName+".conf")}, nil
}

// Dir returns the config directory. It doubles as the user theme root.
func (s *Store) Dir() string { return s.dir }

// Path returns the config file path.
func (s *Store) Path() string { return s.path }

// Load reads the settings. A missing file yields Defaults; missing, zero
// or negative values fall back to their defaults one by one.
func (s *Store) Load() (Settings, error) {
	settings := Defaults()

	f, err := s.open()
	if err != nil {
		return settings, err
	}

	sec := f.Section(section)
	if v := sec.Key(keyWidth).MustInt(0); v > 0 {
		settings.Width = v
	}
	if v := sec.Key(keyHeight).MustInt(0); v > 0 {
		settings.Height = v
	}
	if v := sec.Key(keyTheme).String(); v != "" {
		settings.Theme = v
	}
	if v := sec.Key(keyHz).MustInt(0); v > 0 {
		settings.Hz = v
	}
	return settings, nil
}

// Save writes the four persisted settings, keeping any other keys already
// in the file. The file is replaced atomically.
func (s *Store) Save(settings Settings) error {
	f, err := s.open()
	if err != nil {
		f = ini.Empty()
	}

	sec := f.Section(section)
	sec.Key(keyWidth).SetValue(strconv.Itoa(settings.Width))
	sec.Key(keyHeight).SetValue(strconv.Itoa(settings.Height))
	sec.Key(keyTheme).SetValue(settings.Theme)
	sec.Key(keyHz).SetValue(strconv.Itoa(settings.Hz))

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return apperrors.NewConfigError("encode", s.path, err)
	}

	tmp, err := os.CreateTemp(s.dir, AppName+".conf.*")
	if err != nil {
		return apperrors.NewConfigError("save", s.path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return apperrors.NewConfigError("save", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return apperrors.NewConfigError("save", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return apperrors.NewConfigError("save", s.path, err)
	}
	return nil
}

func (s *Store) open() (*ini.File, error) {
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		return ini.Empty(), nil
	}
	f, err := ini.Load(s.path)
	if err != nil {
		return nil, apperrors.NewConfigError("load", s.path, err)
	}
	return f, nil
}

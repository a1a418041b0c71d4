package output

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/pkg/browser"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/growth-bounds/internal/validate"
)

// DefaultPath is the report location relative to the working directory.
const DefaultPath = "../output/Comparison of Running Times"

// ErrMissingDir is returned when the output file's parent directory does not exist.
var ErrMissingDir = errors.New("output directory does not exist")

// Writer writes the rendered report to a single file.
type Writer struct {
	Path string
}

// NewWriter resolves path (expanding a leading ~) to an absolute file path.
func NewWriter(path string) (*Writer, error) {
	if err := validate.Var(path, "required"); err != nil {
		return nil, fmt.Errorf("invalid output path %q: %w", path, err)
	}
	expandedPath, err := expandTilde(path)
	if err != nil {
		return nil, err
	}
	absPath, err := filepath.Abs(expandedPath)
	if err != nil {
		return nil, err
	}

	return &Writer{Path: absPath}, nil
}

// Write creates or truncates the output file and writes doc to it.
// The parent directory is never created.
func (w *Writer) Write(doc []byte) error {
	logrus.Debug("Writing report to: ", w.Path)
	if dir := filepath.Dir(w.Path); validate.Var(dir, "dir") != nil {
		return fmt.Errorf("%w: %s", ErrMissingDir, dir)
	}
	if err := os.WriteFile(w.Path, doc, 0o644); err != nil { //nolint:gosec // report is meant to be world-readable
		return fmt.Errorf("write report %s: %w", w.Path, err)
	}
	return nil
}

// URL returns the file:// URL of the output file.
func (w *Writer) URL() string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(w.Path)}
	return u.String()
}

// Browser opens URLs in an external viewer.
type Browser interface {
	OpenURL(url string) error
}

type systemBrowser struct{}

func (systemBrowser) OpenURL(u string) error {
	return browser.OpenURL(u)
}

// SystemBrowser returns a Browser backed by the operating system's default handler.
func SystemBrowser() Browser { //nolint:ireturn // callers only need the interface
	return systemBrowser{}
}

// Open asks b to display u. Failures are logged and otherwise ignored.
func Open(b Browser, u string) {
	logrus.Debug("Opening report in browser: ", u)
	if err := b.OpenURL(u); err != nil {
		logrus.Warnf("Unable to open %s: %v", u, err)
	}
}

// expandTilde expands the tilde in a path to the user's home directory.
func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

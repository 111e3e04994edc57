package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrUnsafePath is returned when a zip entry would be written outside the destination.
var ErrUnsafePath = errors.New("unzip: entry escapes destination")

// Unzip extracts zipPath into destDir, preserving directory structure.
// destDir is created if needed. Returns the extracted file paths.
func Unzip(zipPath, destDir string) (extracted []string, err error) {
	r, err := zip.OpenReader(zipPath)
	if errors.Is(err, zip.ErrInsecurePath) {
		r.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnsafePath, err)
	}
	if err != nil {
		return nil, fmt.Errorf("unzip: %w", err)
	}
	defer r.Close()
	absDir, err := filepath.Abs(destDir)
	if err != nil {
		return nil, fmt.Errorf("unzip: %w", err)
	}
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, fmt.Errorf("unzip: %w", err)
	}
	for _, f := range r.File {
		dest := filepath.Join(absDir, f.Name)
		if dest != absDir && !strings.HasPrefix(dest, absDir+string(os.PathSeparator)) {
			return extracted, fmt.Errorf("%w: %s", ErrUnsafePath, f.Name)
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(dest, 0755); err != nil {
				return extracted, fmt.Errorf("unzip: %w", err)
			}
			continue
		}
		if err := extractFile(f, dest); err != nil {
			return extracted, err
		}
		extracted = append(extracted, dest)
	}
	return extracted, nil
}

func extractFile(f *zip.File, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("unzip: %w", err)
	}
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("unzip: %w", err)
	}
	defer out.Close()
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("unzip: %w", err)
	}
	defer rc.Close()
	if _, err := io.Copy(out, rc); err != nil {
		return fmt.Errorf("unzip: %s: %w", f.Name, err)
	}
	return nil
}

// FindFiles returns paths under dir whose extension is one of exts (case-insensitive),
// shallowest first and then alphabetically, so a bundle's top-level model wins over nested copies.
func FindFiles(dir string, exts ...string) ([]string, error) {
	want := make(map[string]bool, len(exts))
	for _, e := range exts {
		want[strings.ToLower(e)] = true
	}
	var out []string
	err := filepath.WalkDir(filepath.Clean(dir), func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if want[strings.ToLower(filepath.Ext(path))] {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		di := strings.Count(filepath.ToSlash(out[i]), "/")
		dj := strings.Count(filepath.ToSlash(out[j]), "/")
		if di != dj {
			return di < dj
		}
		return out[i] < out[j]
	})
	return out, nil
}

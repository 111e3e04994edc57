package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const userAgent = "wheel-viewer/1.0"

// Download fetches url and saves it under destDir. The filename comes from Content-Disposition
// or the URL path; the extension from the URL or Content-Type. Returns the saved path.
// destDir is created if needed. A partial file is removed on failure.
func Download(ctx context.Context, url, destDir string, timeout time.Duration) (savedPath string, err error) {
	client := &http.Client{Timeout: timeout}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download: %s: HTTP %d", url, resp.StatusCode)
	}

	ext := extensionFromURL(url)
	if ext == "" {
		ext = extensionFromContentType(resp.Header.Get("Content-Type"))
	}
	if ext == "" {
		ext = ".bin"
	}
	name := filenameFromContentDisposition(resp.Header.Get("Content-Disposition"))
	if name == "" {
		name = filenameFromURL(url)
	}
	name = sanitizeFilename(strings.TrimSuffix(name, filepath.Ext(name)))
	savedPath = filepath.Join(destDir, name+ext)

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	out, err := os.Create(savedPath)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		_ = os.Remove(savedPath)
		return "", fmt.Errorf("download: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(savedPath)
		return "", fmt.Errorf("download: %w", err)
	}
	return savedPath, nil
}

// IsURL reports whether ref should be fetched over HTTP instead of read from disk.
func IsURL(ref string) bool {
	ref = strings.ToLower(strings.TrimSpace(ref))
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

func filenameFromContentDisposition(cd string) string {
	cd = strings.TrimSpace(cd)
	// filename="..."; or filename*=UTF-8''...
	if i := strings.Index(cd, "filename*=UTF-8''"); i >= 0 {
		s := cd[i+len("filename*=UTF-8''"):]
		if j := strings.IndexAny(s, ";\r\n"); j >= 0 {
			s = s[:j]
		}
		return strings.Trim(s, "\"")
	}
	if i := strings.Index(cd, "filename="); i >= 0 {
		s := cd[i+len("filename="):]
		if j := strings.IndexAny(s, ";\r\n"); j >= 0 {
			s = s[:j]
		}
		return strings.Trim(s, "\" ")
	}
	return ""
}

var modelExts = map[string]bool{".glb": true, ".gltf": true, ".zip": true, ".bin": true}

func extensionFromContentType(ct string) string {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if idx := strings.Index(ct, ";"); idx >= 0 {
		ct = ct[:idx]
	}
	switch {
	case ct == "model/gltf-binary":
		return ".glb"
	case ct == "model/gltf+json":
		return ".gltf"
	case strings.Contains(ct, "zip"):
		return ".zip"
	}
	return ""
}

func extensionFromURL(url string) string {
	path := url
	if idx := strings.IndexAny(path, "?#"); idx >= 0 {
		path = path[:idx]
	}
	ext := strings.ToLower(filepath.Ext(path))
	if modelExts[ext] {
		return ext
	}
	return ""
}

func filenameFromURL(url string) string {
	path := url
	if idx := strings.IndexAny(path, "?#"); idx >= 0 {
		path = path[:idx]
	}
	return filepath.Base(path)
}

var safeNameRe = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

func sanitizeFilename(name string) string {
	name = safeNameRe.ReplaceAllString(name, "_")
	name = strings.Trim(name, ".")
	if name == "" || name == "_" {
		return "model"
	}
	if len(name) > 96 {
		name = name[:96]
	}
	return name
}

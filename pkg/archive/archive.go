package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

var ErrUnsafeArchivePath = errors.New("archive: entry has an unsafe path")
var ErrArchiveCorrupt = errors.New("archive: corrupt or not a zip container")

type Kind int

const (
	KindFile Kind = iota
	KindFolder
	KindOther
)

type Entry struct {
	Name string
	Kind Kind
}

func Pack(files, folders []string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, f := range files {
		info, err := os.Stat(f)
		if err != nil || !info.Mode().IsRegular() {
			log.Warn().Str("path", f).Msg("archive: skipping missing or non-regular file")
			continue
		}
		if strings.HasPrefix(filepath.Base(f), ".") {
			continue
		}
		if err := addFile(zw, f, filepath.Base(f)); err != nil {
			zw.Close()
			return nil, err
		}
	}

	for _, dir := range folders {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			log.Warn().Str("path", dir).Msg("archive: skipping missing or non-directory folder")
			continue
		}
		base := filepath.Base(dir)
		if err := addFolder(zw, dir, base); err != nil {
			zw.Close()
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addFile(zw *zip.Writer, diskPath, archiveName string) error {
	data, err := os.ReadFile(diskPath)
	if err != nil {
		return err
	}
	w, err := zw.Create(filepath.ToSlash(archiveName))
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func addFolder(zw *zip.Writer, root, base string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		name := filepath.Base(path)
		if name != "." && strings.HasPrefix(name, ".") {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		archiveName := filepath.ToSlash(filepath.Join(base, rel))
		return addFile(zw, path, archiveName)
	})
}

func isUnsafeName(name string) bool {
	if strings.HasPrefix(name, "/") || strings.HasPrefix(name, "\\") {
		return true
	}
	slashed := filepath.ToSlash(name)
	for _, seg := range strings.Split(slashed, "/") {
		if seg == ".." {
			return true
		}
	}
	return false
}

// Unpack checks every entry for an unsafe path before writing any of them.
func Unpack(blob []byte, destDir string) error {
	zr, err := zip.NewReader(bytes.NewReader(blob), int64(len(blob)))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrArchiveCorrupt, err)
	}

	for _, f := range zr.File {
		if isUnsafeName(f.Name) {
			return fmt.Errorf("%w: %s", ErrUnsafeArchivePath, f.Name)
		}
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return err
	}

	for _, f := range zr.File {
		target := filepath.Join(destDir, filepath.FromSlash(f.Name))
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := extractFile(f, target); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(f *zip.File, target string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode().Perm()|0o600)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, rc)
	return err
}

func List(blob []byte) ([]Entry, error) {
	zr, err := zip.NewReader(bytes.NewReader(blob), int64(len(blob)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArchiveCorrupt, err)
	}

	entries := make([]Entry, 0, len(zr.File))
	for _, f := range zr.File {
		kind := KindFile
		switch {
		case f.FileInfo().IsDir():
			kind = KindFolder
		case !f.FileInfo().Mode().IsRegular():
			kind = KindOther
		}
		entries = append(entries, Entry{Name: f.Name, Kind: kind})
	}
	return entries, nil
}

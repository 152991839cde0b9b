// Package iconset exports a composed icon image as a macOS .iconset
// directory (ten fixed-size PNG renditions including @2x variants) and
// packages it into an .icns container with the system iconutil.
package iconset

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
)

// DirName is the iconset directory name iconutil expects.
const DirName = "AppIcon.iconset"

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Entry pairs a platform-mandated rendition filename with its pixel
// dimension. @2x names carry double the nominal size in pixels.
type Entry struct {
	Name string
	Size int
}

// Sizes is the fixed, ordered set of renditions a macOS iconset requires.
var Sizes = []Entry{
	{"icon_16x16.png", 16},
	{"icon_16x16@2x.png", 32},
	{"icon_32x32.png", 32},
	{"icon_32x32@2x.png", 64},
	{"icon_128x128.png", 128},
	{"icon_128x128@2x.png", 256},
	{"icon_256x256.png", 256},
	{"icon_256x256@2x.png", 512},
	{"icon_512x512.png", 512},
	{"icon_512x512@2x.png", 1024},
}

// Resize resamples src to a size×size square with the Catmull-Rom kernel,
// which keeps the small renditions free of aliasing artifacts.
func Resize(src image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// Write renders every entry in Sizes into a DirName directory under dir,
// calling progress (may be nil) after each file. PNGs go through a temp
// file and rename so an interrupted run cannot leave a truncated rendition.
// Returns the iconset directory path.
func Write(img image.Image, dir string, progress func(Entry)) (string, error) {
	iconsetDir := filepath.Join(dir, DirName)
	if err := os.MkdirAll(iconsetDir, dirPerm); err != nil {
		return "", fmt.Errorf("iconset: %w", err)
	}
	for _, e := range Sizes {
		var buf bytes.Buffer
		if err := png.Encode(&buf, Resize(img, e.Size)); err != nil {
			return "", fmt.Errorf("iconset: encode %s: %w", e.Name, err)
		}
		if err := atomicWrite(filepath.Join(iconsetDir, e.Name), buf.Bytes()); err != nil {
			return "", fmt.Errorf("iconset: %w", err)
		}
		if progress != nil {
			progress(e)
		}
	}
	return iconsetDir, nil
}

// atomicWrite writes data to path via a temporary file + rename to avoid
// partial writes.
func atomicWrite(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, filePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// Pack bundles an iconset directory into an .icns container using the
// OS-provided iconutil. Returns an error if iconutil is missing from PATH
// or exits nonzero, with its output included. Callers treat failure as
// reportable rather than fatal; whether icnsPath exists afterwards is the
// source of truth for success.
func Pack(iconsetDir, icnsPath string) error {
	if _, err := exec.LookPath("iconutil"); err != nil {
		return fmt.Errorf("iconutil not found on PATH (macOS required for .icns packaging): %w", err)
	}
	cmd := exec.Command("iconutil", "-c", "icns", iconsetDir, "-o", icnsPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("iconutil: %w\n%s", err, out)
	}
	return nil
}

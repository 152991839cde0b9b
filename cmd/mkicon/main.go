// mkicon renders the ClipVault app icon and exports it as a macOS icon
// bundle: the 1024×1024 master PNG, an AppIcon.iconset directory with all
// ten renditions, and an AppIcon.icns container packaged via iconutil.
// Usage: mkicon [output-dir]
package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/clipvault/mkicon/internal/icon"
	"github.com/clipvault/mkicon/internal/iconset"
)

const sourceName = "icon-1024.png"

func main() {
	outDir := "."
	switch args := os.Args[1:]; len(args) {
	case 0:
	case 1:
		if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
			printUsage()
			return
		}
		outDir = args[0]
	default:
		printUsage()
		os.Exit(1)
	}

	if err := run(outDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the whole pipeline. Only setup failures (unwritable output
// directory, encode errors) are returned; a failed .icns packaging is
// reported on the way through and does not abort the run.
func run(outDir string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	fmt.Println("Generating ClipVault icon (1024x1024)...")
	img := icon.Draw()

	sourcePath := filepath.Join(outDir, sourceName)
	if err := savePNG(sourcePath, img); err != nil {
		return err
	}
	fmt.Printf("Saved source: %s\n", sourcePath)

	fmt.Println("Creating iconset...")
	iconsetDir, err := iconset.Write(img, outDir, func(e iconset.Entry) {
		fmt.Printf("  Created %s (%dx%d)\n", e.Name, e.Size, e.Size)
	})
	if err != nil {
		return err
	}
	fmt.Printf("Iconset: %s\n", iconsetDir)

	fmt.Println("Converting to .icns...")
	icnsPath := filepath.Join(outDir, "AppIcon.icns")
	if err := iconset.Pack(iconsetDir, icnsPath); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}

	// Success is judged by the output file existing, not by iconutil's
	// exit status.
	if info, err := os.Stat(icnsPath); err == nil {
		fmt.Printf("Created: %s (%d KB)\n", icnsPath, info.Size()/1024)
	} else {
		fmt.Println("ERROR: iconutil failed to create .icns file")
	}

	fmt.Println("Done!")
	return nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: mkicon [output-dir]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Renders the ClipVault app icon and writes icon-1024.png,")
	fmt.Fprintln(os.Stderr, "AppIcon.iconset/ and AppIcon.icns into output-dir (default \".\").")
}

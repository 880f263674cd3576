package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	stagingMarker = ".staging-"
	trashMarker   = ".trash-"
)

// StagingPath is the sibling directory a generation is built in before it
// is moved into outputDir.
func StagingPath(outputDir, id string) string {
	return sibling(outputDir, stagingMarker, id)
}

// TrashPath is where the previous outputDir is parked during the swap.
func TrashPath(outputDir, id string) string {
	return sibling(outputDir, trashMarker, id)
}

// LeftoverPrefixes returns the name prefixes of staging and trash siblings of
// outputDir, for cleanup.
func LeftoverPrefixes(outputDir string) []string {
	base := "." + filepath.Base(filepath.Clean(outputDir))
	return []string{base + stagingMarker, base + trashMarker}
}

// IsLeftover reports whether name is a staging or trash sibling of outputDir.
func IsLeftover(outputDir, name string) bool {
	for _, p := range LeftoverPrefixes(outputDir) {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

func sibling(outputDir, marker, id string) string {
	clean := filepath.Clean(outputDir)
	return filepath.Join(filepath.Dir(clean), "."+filepath.Base(clean)+marker+id)
}

func writeTree(ctx context.Context, root string, files []File) error {
	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", root, err)
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		target := filepath.Join(root, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", f.Path, err)
		}
		if err := os.WriteFile(target, f.Content, 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", f.Path, err)
		}
	}

	return nil
}

// publish writes files into a staging directory and swaps it into outputDir.
func publish(ctx context.Context, outputDir, id string, files []File) error {
	staging := StagingPath(outputDir, id)
	trash := TrashPath(outputDir, id)

	if err := os.MkdirAll(filepath.Dir(filepath.Clean(outputDir)), 0755); err != nil {
		return fmt.Errorf("failed to create parent of %s: %w", outputDir, err)
	}

	if err := writeTree(ctx, staging, files); err != nil {
		_ = os.RemoveAll(staging)
		return err
	}

	parked := true
	if err := os.Rename(outputDir, trash); err != nil {
		if !os.IsNotExist(err) {
			_ = os.RemoveAll(staging)
			return fmt.Errorf("failed to move previous output aside: %w", err)
		}
		parked = false
	}

	if err := os.Rename(staging, outputDir); err != nil {
		if parked {
			_ = os.Rename(trash, outputDir)
		}
		_ = os.RemoveAll(staging)
		return fmt.Errorf("failed to move generated project into place: %w", err)
	}

	if parked {
		// leftovers are collected by the staging sweeper
		_ = os.RemoveAll(trash)
	}
	return nil
}

// Package storage mirrors the cart into a local JSON snapshot file, the
// durable key-value slot the storefront keeps between runs.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/quirklo/storefront/internal/core/domain"
	"github.com/quirklo/storefront/internal/core/port"
)

var _ port.CartStorage = (*CartFile)(nil)

// cartRecord is the stored line shape. Field names match the original
// storefront's "cart" localStorage entry so snapshots stay recognizable.
type cartRecord struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
	Size      string  `json:"size"`
	VariantID string  `json:"variantId"`
}

// CartFile stores the full cart line sequence as one JSON document.
type CartFile struct {
	path string
}

func NewCartFile(path string) CartFile {
	return CartFile{path: path}
}

// Load reads the snapshot. A missing file yields an empty cart; malformed
// content is reported as an error so the caller can degrade to empty
// without failing startup.
func (f CartFile) Load() ([]domain.CartLine, error) {
	const op = "CartFile.Load"

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var records []cartRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%s: malformed snapshot: %w", op, err)
	}

	lines := make([]domain.CartLine, 0, len(records))
	for _, r := range records {
		lines = append(lines, domain.CartLine{
			VariantID: r.VariantID,
			ProductID: r.ID,
			Name:      r.Name,
			Price:     r.Price,
			Quantity:  r.Quantity,
			Image:     r.Image,
			Size:      r.Size,
		})
	}
	return lines, nil
}

// Save writes the full sequence atomically: temp file in the same
// directory, then rename.
func (f CartFile) Save(lines []domain.CartLine) error {
	const op = "CartFile.Save"

	records := make([]cartRecord, 0, len(lines))
	for _, l := range lines {
		records = append(records, cartRecord{
			ID:        l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			Quantity:  l.Quantity,
			Image:     l.Image,
			Size:      l.Size,
			VariantID: l.VariantID,
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tmp, err := os.CreateTemp(dir, "cart-*.json")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Clear removes the snapshot file. A missing file is fine.
func (f CartFile) Clear() error {
	const op = "CartFile.Clear"

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}
	slog.Debug("cart snapshot cleared", "op", op, "path", f.path)
	return nil
}

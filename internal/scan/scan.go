// Package scan holds the barcode scan-progress rules for one order line.
// Uniqueness is per line only: the same barcode on two different lines or in
// two different orders is accepted.
package scan

import "errors"

var (
	ErrDuplicate = errors.New("barcode already scanned for this line")
	ErrOverScan  = errors.New("line already fully scanned")
	ErrBadIndex  = errors.New("scan index out of range")
)

// Line tracks scan progress against a requested quantity.
type Line struct {
	Quantity int
	Barcodes []string
}

// Add appends a scanned barcode, rejecting duplicates and over-scans.
func (l *Line) Add(code string) error {
	if len(l.Barcodes) >= l.Quantity {
		return ErrOverScan
	}
	for _, b := range l.Barcodes {
		if b == code {
			return ErrDuplicate
		}
	}
	l.Barcodes = append(l.Barcodes, code)
	return nil
}

// Remove deletes the scan at index i, decrementing progress.
func (l *Line) Remove(i int) error {
	if i < 0 || i >= len(l.Barcodes) {
		return ErrBadIndex
	}
	l.Barcodes = append(l.Barcodes[:i], l.Barcodes[i+1:]...)
	return nil
}

// Complete reports whether every requested unit has been scanned.
func (l Line) Complete() bool {
	return len(l.Barcodes) == l.Quantity
}

func (l Line) Remaining() int {
	return l.Quantity - len(l.Barcodes)
}

// Ready reports whether every line is complete, gating order submission.
func Ready(lines []Line) bool {
	for _, l := range lines {
		if !l.Complete() {
			return false
		}
	}
	return true
}

package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrMalformedInput is returned when free-text input cannot be read as a package dimension.
var ErrMalformedInput = errors.New("malformed input")

// Package describes a parcel by its outer dimensions in millimeters and its weight in grams.
// The zero value is a valid (degenerate) package. Fields are read-only after construction.
type Package struct {
	length int
	width  int
	height int
	weight int
}

// NewPackage builds a Package. Ranges are not checked; pricing defines what happens to odd values.
func NewPackage(length, width, height, weight int) Package {
	return Package{
		length: length,
		width:  width,
		height: height,
		weight: weight,
	}
}

func (p Package) Length() int { return p.length }
func (p Package) Width() int  { return p.width }
func (p Package) Height() int { return p.height }
func (p Package) Weight() int { return p.weight }

func (p Package) String() string {
	return fmt.Sprintf("%dx%dx%d mm, %d g", p.length, p.width, p.height, p.weight)
}

// ParsePackage reads the four calculator fields. Surrounding whitespace is ignored.
func ParsePackage(length, width, height, weight string) (Package, error) {
	fields := []struct {
		name  string
		input string
	}{
		{"length", length},
		{"width", width},
		{"height", height},
		{"weight", weight},
	}

	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f.input))
		if err != nil {
			return Package{}, errors.Wrapf(ErrMalformedInput, "%s %q is not an integer", f.name, f.input)
		}
		values[i] = v
	}

	return NewPackage(values[0], values[1], values[2], values[3]), nil
}

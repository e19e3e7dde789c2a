// Package artwork loads, downsizes and renders track artwork thumbnails.
package artwork

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/nfnt/resize"
)

// Quality selects the largest side an artwork image may keep.
type Quality int

const (
	Low Quality = iota
	Medium
	High
	Lossless
)

var qualityMaxSide = map[Quality]int{
	Low:    256,
	Medium: 512,
	High:   1024,
}

var qualityNames = map[Quality]string{
	Low:      "low",
	Medium:   "medium",
	High:     "high",
	Lossless: "lossless",
}

// MaxSide returns the tier's maximum side length.
// bounded is false for Lossless.
func (q Quality) MaxSide() (maxSide int, bounded bool) {
	maxSide, bounded = qualityMaxSide[q]
	return maxSide, bounded
}

func (q Quality) String() string {
	if name, ok := qualityNames[q]; ok {
		return name
	}
	return fmt.Sprintf("Quality(%d)", int(q))
}

// ParseQuality parses a config value ("low", "medium", "high", "lossless").
func ParseQuality(s string) (Quality, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for q, name := range qualityNames {
		if name == s {
			return q, nil
		}
	}
	return Medium, fmt.Errorf("unknown artwork quality %q", s)
}

// Resize scales img so that its longer side does not exceed the tier's
// maximum, preserving the aspect ratio. Lossless, and images whose longer
// side is already below the maximum, are returned as is.
func Resize(img image.Image, q Quality) image.Image {
	maxSide, bounded := q.MaxSide()
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if !bounded || max(width, height) < maxSide {
		return img
	}

	w, h := Dimensions(width, height, maxSide)
	if w == width && h == height {
		return img
	}
	return resize.Resize(uint(w), uint(h), img, resize.Lanczos3) //nolint:gosec // both sides are positive
}

// Dimensions returns the size of a width×height image scaled so that its
// longer side equals maxSide. The shorter side is rounded and never
// collapses to zero.
func Dimensions(width, height, maxSide int) (w, h int) {
	switch {
	case width > height:
		return maxSide, scaleSide(height, maxSide, width)
	case height > width:
		return scaleSide(width, maxSide, height), maxSide
	default:
		return maxSide, maxSide
	}
}

func scaleSide(side, maxSide, longer int) int {
	scaled := int(math.Round(float64(side) * float64(maxSide) / float64(longer)))
	return max(scaled, 1)
}

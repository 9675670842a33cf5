// Package svgpath computes bounding boxes for the restricted path dialect
// used by sticker boundary outlines: move, line, horizontal-line, and
// vertical-line commands in absolute or relative form. Curve commands are out
// of scope and rejected.
package svgpath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// BoundingBox is the axis-aligned extent of a path's visited points.
type BoundingBox struct {
	MinX   float64
	MinY   float64
	Width  float64
	Height float64
}

const supportedCommands = "MLHVZmlhvz"

var (
	commandRe = regexp.MustCompile(`([MLHVZmlhvz])([^MLHVZmlhvz]*)`)
	numberRe  = regexp.MustCompile(`-?\d*\.?\d+(?:[eE][-+]?\d+)?`)
)

// Bounds parses the path data and returns the bounding box of every visited
// point, tracking the current position across relative commands.
func Bounds(d string) (BoundingBox, error) {
	for _, r := range d {
		// e/E can only be an exponent marker inside a coordinate; no such
		// path command exists.
		if r == 'e' || r == 'E' {
			continue
		}
		if isPathLetter(r) && !strings.ContainsRune(supportedCommands, r) {
			return BoundingBox{}, fmt.Errorf("svgpath: unsupported path command %q", r)
		}
	}

	var (
		curX, curY float64
		minX, minY float64
		maxX, maxY float64
		visited    bool
	)

	visit := func() {
		if !visited {
			minX, maxX = curX, curX
			minY, maxY = curY, curY
			visited = true
			return
		}
		minX = min(minX, curX)
		maxX = max(maxX, curX)
		minY = min(minY, curY)
		maxY = max(maxY, curY)
	}

	for _, match := range commandRe.FindAllStringSubmatch(d, -1) {
		cmd := match[1]
		nums, err := parseNumbers(match[2])
		if err != nil {
			return BoundingBox{}, err
		}

		switch cmd {
		case "M", "L", "m", "l":
			if len(nums)%2 != 0 {
				return BoundingBox{}, fmt.Errorf("svgpath: command %s has an odd coordinate count", cmd)
			}
			relative := cmd == "m" || cmd == "l"
			for i := 0; i < len(nums); i += 2 {
				if relative {
					curX += nums[i]
					curY += nums[i+1]
				} else {
					curX = nums[i]
					curY = nums[i+1]
				}
				visit()
			}
		case "H", "h":
			for _, n := range nums {
				if cmd == "h" {
					curX += n
				} else {
					curX = n
				}
				visit()
			}
		case "V", "v":
			for _, n := range nums {
				if cmd == "v" {
					curY += n
				} else {
					curY = n
				}
				visit()
			}
		case "Z", "z":
			// Close revisits the subpath start; it adds no new extent.
		}
	}

	if !visited {
		return BoundingBox{}, fmt.Errorf("svgpath: path has no coordinates")
	}

	return BoundingBox{
		MinX:   minX,
		MinY:   minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}, nil
}

func parseNumbers(raw string) ([]float64, error) {
	matches := numberRe.FindAllString(raw, -1)
	out := make([]float64, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return nil, fmt.Errorf("svgpath: parse coordinate %q: %w", m, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func isPathLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

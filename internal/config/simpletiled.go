package config

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arcflux/wfc/frontend/simpletiled"
	"github.com/arcflux/wfc/image"
)

// splitNameOrientation parses a "left"/"right" neighbor attribute of the
// form "tileName" or "tileName orientation", matching main.cpp's
// ReadNeighbors substr-on-first-space parsing.
func splitNameOrientation(s string) (string, int, error) {
	name, rest, found := strings.Cut(s, " ")
	if !found {
		return s, 0, nil
	}
	orientation, err := strconv.Atoi(rest)
	if err != nil {
		return "", 0, fmt.Errorf("config: invalid orientation in neighbor attribute %q: %w", s, err)
	}
	return name, orientation, nil
}

// ResolveSimpleTiled reads a simpletiled rules file from r and loads its
// declared tiles (filtered to subset, if non-empty) via load, returning
// ready-to-use simpletiled.Tile/NeighborRule slices. directory is where
// tile artwork lives; unique tiles load one PNG per orientation
// ("name 0.png", "name 1.png", ...), non-unique tiles load a single
// "name.png" that gets symmetry-expanded.
func ResolveSimpleTiled(r io.Reader, directory, subset string, load ImageLoader) ([]simpletiled.Tile, []simpletiled.NeighborRule, error) {
	var set rawSimpleTiledSet
	if err := xml.NewDecoder(r).Decode(&set); err != nil {
		return nil, nil, err
	}
	if set.XMLName.Local != "set" {
		return nil, nil, ErrMissingRulesRoot
	}

	keep := subsetFilter(set.Subsets, subset)

	var tiles []simpletiled.Tile
	names := make(map[string]int)
	for _, rt := range set.Tiles {
		if keep != nil && !keep[rt.Name] {
			continue
		}
		sym := image.NewSymmetry(symmetryAttr(rt.Symmetry))
		weight := weightAttr(rt.Weight, 1.0)

		var tile simpletiled.Tile
		if set.Unique {
			var images []image.Grid
			for i := 0; i < sym.Orientations(); i++ {
				path := fmt.Sprintf("%s/%s %d.png", directory, rt.Name, i)
				img, err := load(path)
				if err != nil {
					return nil, nil, err
				}
				images = append(images, img)
			}
			tile = simpletiled.Tile{Name: rt.Name, Images: images, Symmetry: sym, Weight: weight}
		} else {
			path := fmt.Sprintf("%s/%s.png", directory, rt.Name)
			base, err := load(path)
			if err != nil {
				return nil, nil, err
			}
			tile, err = simpletiled.NewTile(rt.Name, base, sym, weight)
			if err != nil {
				return nil, nil, err
			}
		}

		names[rt.Name] = len(tiles)
		tiles = append(tiles, tile)
	}

	var rules []simpletiled.NeighborRule
	for _, n := range set.Neighbors {
		leftName, leftOrient, err := splitNameOrientation(n.Left)
		if err != nil {
			return nil, nil, err
		}
		rightName, rightOrient, err := splitNameOrientation(n.Right)
		if err != nil {
			return nil, nil, err
		}
		leftIdx, ok := names[leftName]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrUnknownTileReference, leftName)
		}
		rightIdx, ok := names[rightName]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrUnknownTileReference, rightName)
		}
		rules = append(rules, simpletiled.NeighborRule{
			LeftTile:         leftIdx,
			LeftOrientation:  leftOrient,
			RightTile:        rightIdx,
			RightOrientation: rightOrient,
		})
	}
	return tiles, rules, nil
}

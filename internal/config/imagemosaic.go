package config

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/arcflux/wfc/frontend/imagemosaic"
	"github.com/arcflux/wfc/grid"
)

// ResolveImageMosaic reads an imagemosaic rules file from r and loads its
// declared tiles via load, returning a ready-to-use imagemosaic.Tile slice
// and adjacency table. Unlike simpletiled rules, imagemosaic tiles have no
// symmetry class and their neighbor declarations are a nested directional
// table (one <tile> per source, one <neighbor up/left/right/down> per
// allowed pairing) rather than a flat left/right list.
func ResolveImageMosaic(r io.Reader, directory, subset string, load ImageLoader) ([]imagemosaic.Tile, imagemosaic.AdjacencyTable, error) {
	var set rawImageMosaicSet
	if err := xml.NewDecoder(r).Decode(&set); err != nil {
		return nil, imagemosaic.AdjacencyTable{}, err
	}
	if set.XMLName.Local != "set" {
		return nil, imagemosaic.AdjacencyTable{}, ErrMissingRulesRoot
	}

	var tiles []imagemosaic.Tile
	names := make(map[string]int)
	for _, rt := range set.Tiles {
		path := fmt.Sprintf("%s/%s.png", directory, rt.Name)
		img, err := load(path)
		if err != nil {
			return nil, imagemosaic.AdjacencyTable{}, err
		}
		names[rt.Name] = len(tiles)
		tiles = append(tiles, imagemosaic.Tile{Name: rt.Name, Image: img, Weight: weightAttr(rt.Weight, 1.0)})
	}

	table := imagemosaic.NewAdjacencyTable(len(tiles))
	for _, t := range set.Neighbors {
		firstIdx, ok := names[t.Name]
		if !ok {
			return nil, imagemosaic.AdjacencyTable{}, fmt.Errorf("%w: %s", ErrUnknownTileReference, t.Name)
		}
		for _, n := range t.Neighbors {
			secondIdx, ok := names[n.Name]
			if !ok {
				return nil, imagemosaic.AdjacencyTable{}, fmt.Errorf("%w: %s", ErrUnknownTileReference, n.Name)
			}
			if n.Up {
				table.Allow(grid.DirUp, firstIdx, secondIdx)
			}
			if n.Left {
				table.Allow(grid.DirLeft, firstIdx, secondIdx)
			}
			if n.Right {
				table.Allow(grid.DirRight, firstIdx, secondIdx)
			}
			if n.Down {
				table.Allow(grid.DirDown, firstIdx, secondIdx)
			}
		}
	}
	return tiles, table, nil
}

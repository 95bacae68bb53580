package config

import "encoding/xml"

// rawTile is one <tile> entry shared by the simpletiled and imagemosaic
// rules formats; imagemosaic rules simply never set Symmetry.
type rawTile struct {
	Name     string  `xml:"name,attr"`
	Weight   *float64 `xml:"weight,attr"`
	Symmetry *string  `xml:"symmetry,attr"`
}

// rawSubset is one named grouping of tile names under <subsets>.
type rawSubset struct {
	Name  string `xml:"name,attr"`
	Tiles []struct {
		Name string `xml:"name,attr"`
	} `xml:"tile"`
}

// rawSimpleTiledSet is the simpletiled rules file's <set> root. XMLName has
// no fixed tag name so a malformed file decodes rather than erroring deep
// inside encoding/xml; callers check XMLName.Local against "set" themselves
// to report ErrMissingRulesRoot.
type rawSimpleTiledSet struct {
	XMLName xml.Name
	Unique  bool        `xml:"unique,attr"`
	Tiles   []rawTile   `xml:"tiles>tile"`
	Subsets []rawSubset `xml:"subsets>subset"`
	Neighbors []struct {
		Left  string `xml:"left,attr"`
		Right string `xml:"right,attr"`
	} `xml:"neighbors>neighbor"`
}

// rawImageMosaicSet is the imagemosaic rules file's <set> root: tiles carry
// only a weight, and neighbors are declared as a nested
// tile/neighbor(up,left,right,down) directional table rather than a flat
// left/right pair list.
type rawImageMosaicSet struct {
	XMLName xml.Name
	Tiles   []rawTile `xml:"tiles>tile"`
	Neighbors []struct {
		Name      string `xml:"name,attr"`
		Neighbors []struct {
			Name  string `xml:"name,attr"`
			Up    bool   `xml:"up,attr"`
			Left  bool   `xml:"left,attr"`
			Right bool   `xml:"right,attr"`
			Down  bool   `xml:"down,attr"`
		} `xml:"neighbor"`
	} `xml:"neighbors>tile"`
}

func weightAttr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func symmetryAttr(p *string) byte {
	if p == nil || len(*p) == 0 {
		return 'X'
	}
	return (*p)[0]
}

// subsetFilter reports which tile names belong to the requested subset.
// An empty result (no subsets declared, or the named subset isn't found)
// means "no filtering" — every tile is kept, matching ReadSubsetNames's
// empty-set behavior in the original.
func subsetFilter(subsets []rawSubset, name string) map[string]bool {
	for _, s := range subsets {
		if s.Name != name {
			continue
		}
		names := make(map[string]bool, len(s.Tiles))
		for _, t := range s.Tiles {
			names[t.Name] = true
		}
		return names
	}
	return nil
}

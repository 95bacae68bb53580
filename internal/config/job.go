package config

import (
	"encoding/xml"
	"io"
)

// rawSamples mirrors the samples.xml wire format with every attribute
// optional, read into pointer fields (nil when absent) so ParseJobs can
// apply per-field defaults exactly like main.cpp's
// ElementAttribute(elem, name, default) calls.
type rawSamples struct {
	XMLName     xml.Name   `xml:"samples"`
	Overlapping []rawEntry `xml:"overlapping"`
	SimpleTiled []rawEntry `xml:"simpletiled"`
	ImageMosaic []rawEntry `xml:"imagemosaic"`
}

type rawEntry struct {
	Name          string  `xml:"name,attr"`
	Subset        *string `xml:"subset,attr"`
	Size          *uint32 `xml:"size,attr"`
	Width         *uint32 `xml:"width,attr"`
	Height        *uint32 `xml:"height,attr"`
	Screenshots   *uint32 `xml:"screenshots,attr"`
	Periodic      *bool   `xml:"periodic,attr"`
	Ground        *bool   `xml:"ground,attr"`
	PeriodicInput *bool   `xml:"periodicInput,attr"`
	Symmetry      *uint32 `xml:"symmetry,attr"`
	PatternSize   *uint32 `xml:"N,attr"`
}

// OverlappingJob is one resolved <overlapping> entry, defaults applied.
type OverlappingJob struct {
	Name           string
	Height, Width  int
	Screenshots    int
	Ground         bool
	PeriodicInput  bool
	PeriodicOutput bool
	Symmetry       int
	PatternSize    int
}

// SimpleTiledJob is one resolved <simpletiled> entry, defaults applied.
type SimpleTiledJob struct {
	Name           string
	Subset         string
	Height, Width  int
	Screenshots    int
	PeriodicOutput bool
}

// ImageMosaicJob is one resolved <imagemosaic> entry, defaults applied.
type ImageMosaicJob struct {
	Name           string
	Subset         string
	Height, Width  int
	Screenshots    int
	PeriodicOutput bool
}

// Jobs is the fully-resolved set of synthesis jobs read from a samples file.
type Jobs struct {
	Overlapping []OverlappingJob
	SimpleTiled []SimpleTiledJob
	ImageMosaic []ImageMosaicJob
}

func u32(p *uint32, def uint32) int {
	if p == nil {
		return int(def)
	}
	return int(*p)
}

func boolAttr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func strAttr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

// ParseJobs reads a samples file from r and resolves every entry's defaults.
func ParseJobs(r io.Reader) (Jobs, error) {
	var raw rawSamples
	if err := xml.NewDecoder(r).Decode(&raw); err != nil {
		return Jobs{}, err
	}

	var jobs Jobs
	for _, e := range raw.Overlapping {
		size := u32(e.Size, 48)
		height, width := u32(e.Height, uint32(size)), u32(e.Width, uint32(size))
		jobs.Overlapping = append(jobs.Overlapping, OverlappingJob{
			Name:           e.Name,
			Height:         height,
			Width:          width,
			Screenshots:    u32(e.Screenshots, 2),
			Ground:         boolAttr(e.Ground, false),
			PeriodicInput:  boolAttr(e.PeriodicInput, true),
			PeriodicOutput: boolAttr(e.Periodic, false),
			Symmetry:       u32(e.Symmetry, 8),
			PatternSize:    u32(e.PatternSize, 3),
		})
	}
	for _, e := range raw.SimpleTiled {
		size := u32(e.Size, 24)
		height, width := u32(e.Height, uint32(size)), u32(e.Width, uint32(size))
		jobs.SimpleTiled = append(jobs.SimpleTiled, SimpleTiledJob{
			Name:           e.Name,
			Subset:         strAttr(e.Subset, "tiles"),
			Height:         height,
			Width:          width,
			Screenshots:    u32(e.Screenshots, 2),
			PeriodicOutput: boolAttr(e.Periodic, false),
		})
	}
	for _, e := range raw.ImageMosaic {
		size := u32(e.Size, 24)
		height, width := u32(e.Height, uint32(size)), u32(e.Width, uint32(size))
		jobs.ImageMosaic = append(jobs.ImageMosaic, ImageMosaicJob{
			Name:           e.Name,
			Subset:         strAttr(e.Subset, "tiles"),
			Height:         height,
			Width:          width,
			Screenshots:    u32(e.Screenshots, 2),
			PeriodicOutput: boolAttr(e.Periodic, false),
		})
	}
	return jobs, nil
}

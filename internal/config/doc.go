// Package config parses the two XML file families a synthesis run needs:
// a samples file (one <overlapping>/<simpletiled>/<imagemosaic> job per
// entry) and, per simpletiled/imagemosaic job, a separate rules file
// describing its tile set and adjacency. Grounded on main.cpp's
// ReadConfigFile/ReadSimpletiled/ReadOverlapping/ReadImagemosaic/ReadTiles/
// ReadNeighbors, which used tinyxml2; this package uses the standard
// library's encoding/xml, since no third-party XML library appears
// anywhere in the example corpus.
//
// Every numeric/boolean attribute is optional in the source format, each
// with its own default (mirroring the original's ElementAttribute-with-
// fallback calls); ParseJobs applies those defaults so callers never see a zero
// value that wasn't explicitly authored.
package config

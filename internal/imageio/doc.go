// Package imageio bridges image.Grid and stdlib image.Image/image/png —
// the only place in this module that uses an image codec. It reads and
// writes through io.Reader/io.Writer; cmd/wfc opens and creates the files.
// Grounded on image.cpp's LoadImage/SaveImagePNG; those use stb_image, a
// C header-only library with no Go equivalent in the example corpus, so
// this package uses the standard library's image/png instead.
package imageio

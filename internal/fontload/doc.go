/*
Package fontload reads the binary font files referenced by icon fonts.

Font files are needed for embedding them as byte arrays into generated
sources, and for checking that a font file actually covers the glyphs listed
in the font's metadata.
*/
package fontload

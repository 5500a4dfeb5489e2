// Package document rewrites the marker-delimited block of a text file.
//
// A block looks like this in the document:
//
//	<!--LANGUAGE_SECTION_START-->
//
//	| Language | Bytes | Percent |
//	...
//
//	<!--LANGUAGE_SECTION_END-->
//
// When both markers are present, everything from the start marker through the
// end marker is replaced. When either is missing, a new block is appended to
// the end of the document. The file is written only when its content changes.
package document

// Package huffpack compresses byte slices with a static Huffman code built
// from the input's own byte frequencies, and writes the code table into a
// self-describing container so that the result decodes without any external
// dictionary.
//
// Container layout:
//
//     <header length in decimal ASCII> ';' <header> <pad byte> <payload>
//
// The header is a comma-separated list of "<symbol>:<code>" pairs in
// ascending symbol order, where <symbol> is the decimal byte value and
// <code> is a string of '0' and '1' characters, e.g. "97:0,98:11,99:10".
// The pad byte (0 .. 7) counts the zero bits appended to the end of the
// payload, and the payload holds the codes packed most significant bit
// first.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://en.wikipedia.org/wiki/Canonical_Huffman_code>
//
package huffpack

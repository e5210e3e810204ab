// Package header implements HeaderCodec (spec §4.4): extracting a state
// root from a serialised block header, for both the byte-domain (RLP) and
// field-domain (packed field-element) instantiations.
package header

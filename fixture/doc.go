// Package fixture loads the on-disk "text record" wire format described in
// spec §6: a single JSON object naming the MMR commitment, one or more
// headers with their inclusion proofs, one or more account proofs, and
// optional storage proofs. The deserialized shape is what the core (via
// compose.Composer) actually consumes; this package only owns turning bytes
// on disk into that shape. The JSON format (Loader) is validated against a
// schema ahead of decoding; the CBOR field-domain format (LoadCBOR) is
// decoded without schema validation.
package fixture

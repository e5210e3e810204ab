package fixture

// schemaJSON is the JSON Schema (draft 2020-12) for the wire format described
// in spec §6. Every digest, RLP blob and key is a "0x"-prefixed hex string;
// decoding those into raw bytes is Load's job, not the schema's.
const schemaJSON = `{
  "$id": "https://hdp-verifier-go/fixture.schema.json",
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["meta", "headers", "accounts"],
  "properties": {
    "meta": {
      "type": "object",
      "required": ["root", "size", "peaks"],
      "properties": {
        "root": {"type": "string"},
        "size": {"type": "integer", "minimum": 1},
        "peaks": {"type": "array", "items": {"type": "string"}, "minItems": 1}
      }
    },
    "headers": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["rlp", "leaf_index", "siblings"],
        "properties": {
          "rlp": {"type": "string"},
          "leaf_index": {"type": "integer", "minimum": 0},
          "siblings": {"type": "array", "items": {"type": "string"}},
          "designated": {"type": "boolean"}
        }
      }
    },
    "accounts": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["address", "account_key", "proof", "expected_value"],
        "properties": {
          "address": {"type": "string"},
          "account_key": {"type": "string"},
          "proof": {"type": "array", "items": {"type": "string"}},
          "expected_value": {"type": "string"}
        }
      }
    },
    "storages": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["account_index", "storage_key", "proof", "expected_value"],
        "properties": {
          "account_index": {"type": "integer", "minimum": 0},
          "storage_key": {"type": "string"},
          "proof": {"type": "array", "items": {"type": "string"}},
          "expected_value": {"type": "string"}
        }
      }
    }
  }
}`

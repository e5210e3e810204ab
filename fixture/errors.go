package fixture

import "errors"

// ErrSchemaValidation is returned by Load when the fixture JSON does not
// conform to schemaJSON.
var ErrSchemaValidation = errors.New("fixture: schema validation failed")

// ErrHexDecode is returned by Load when a field that should be "0x"-prefixed
// hex fails to decode.
var ErrHexDecode = errors.New("fixture: malformed hex field")

package premis

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"
)

// Parse parses serialized PREMIS XML from the given reader into the given
// record. It does not validate; see Record.Validate.
func Parse(r io.Reader, rec *Record) error {
	err := xml.NewDecoder(r).Decode(rec)
	return errors.Wrap(err, "could not decode premis record")
}

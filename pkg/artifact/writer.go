package artifact

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// WriteJSON serializes v as two-space-indented UTF-8 JSON and replaces
// whatever is at path. HTML escaping is off so characters outside ASCII and
// the documents' own markup survive verbatim.
func WriteJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}

	return errors.Wrapf(os.WriteFile(path, buf.Bytes(), 0644), "write %s", path)
}

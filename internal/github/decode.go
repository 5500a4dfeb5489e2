package github

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/nao1215/langreport/internal/model"
)

// decodeTally decodes a JSON object such as {"Go": 1234, "Shell": 56}
// into a tally, keeping the order in which keys appear in the document.
// An empty body decodes to an empty tally.
func decodeTally(data []byte) (model.Tally, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return model.Tally{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: expected JSON object", ErrInvalidPayload)
	}

	tally := model.Tally{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected language name", ErrInvalidPayload)
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		num, ok := valTok.(json.Number)
		if !ok {
			return nil, fmt.Errorf("%w: byte count for %q is not a number", ErrInvalidPayload, name)
		}
		n, err := num.Int64()
		if err != nil {
			return nil, fmt.Errorf("%w: byte count for %q is not an integer", ErrInvalidPayload, name)
		}

		tally = append(tally, model.LanguageBytes{Name: name, Bytes: n})
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after object", ErrInvalidPayload)
	}

	if err := tally.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return tally, nil
}

package handler

import (
	"bytes"
	"encoding/json"
)

// Envelope marks a successful payload with "success": true.
//
// Object payloads get the key merged in ({"id":1,...,"success":true}).
// Anything else (arrays, scalars, null) is written unchanged, so a list
// endpoint still returns a bare JSON array.
type Envelope struct {
	Data any
}

var successSuffix = []byte(`"success":true}`)

func (e Envelope) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(e.Data)
	if err != nil {
		return nil, err
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) < 2 || raw[0] != '{' {
		return raw, nil
	}

	body := bytes.TrimSpace(raw[1 : len(raw)-1])

	out := make([]byte, 0, len(raw)+len(successSuffix)+1)
	out = append(out, '{')
	if len(body) > 0 {
		out = append(out, body...)
		out = append(out, ',')
	}
	out = append(out, successSuffix...)

	return out, nil
}

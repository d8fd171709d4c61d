package handler

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// PowerRating is the device rating in watts as sent by clients. Forms post it
// as text and apps as a JSON number; both keep the raw text for parsing.
type PowerRating string

func (p *PowerRating) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "power_rating")
		}
		*p = PowerRating(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Errorf("power_rating must be a string or a number, got %s", data)
	}
	*p = PowerRating(n.String())

	return nil
}

func (p *PowerRating) ptr() *string {
	if p == nil {
		return nil
	}
	s := string(*p)

	return &s
}

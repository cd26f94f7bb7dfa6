package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Review is the record returned by the reviews endpoint. Date is kept as the
// raw string the backend sent; it is only reformatted for display.
type Review struct {
	ID      ReviewID `json:"id"`
	User    string   `json:"user"`
	Rating  float64  `json:"rating"`
	Comment string   `json:"comment"`
	Date    string   `json:"date"`
}

// ReviewID is an opaque identifier. Backends send it either as a JSON string
// or as a number; both decode to the same text.
type ReviewID string

func (id *ReviewID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ReviewID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("review id must be a string or a number: %w", err)
	}
	*id = ReviewID(n.String())
	return nil
}

package models

import "encoding/json"

// QuoteData is one external-origin quote record. Upstream fields are kept
// opaque and passed through untouched; only the code is interpreted, to
// re-project results onto the caller's requested order.
type QuoteData struct {
	Code string
	Raw  json.RawMessage
}

// UnmarshalJSON keeps the full upstream object and lifts out the code field
func (q *QuoteData) UnmarshalJSON(data []byte) error {
	var envelope struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	q.Code = envelope.Code
	q.Raw = append(q.Raw[:0], data...)
	return nil
}

// MarshalJSON emits the upstream object verbatim
func (q QuoteData) MarshalJSON() ([]byte, error) {
	if len(q.Raw) == 0 {
		return json.Marshal(struct {
			Code string `json:"code"`
		}{Code: q.Code})
	}
	return q.Raw, nil
}

// QuoteState is the loader state exposed to consumers.
type QuoteState struct {
	Data      []QuoteData `json:"data"`
	Error     string      `json:"error,omitempty"`
	IsLoading bool        `json:"is_loading"`
}

// QuotesUpstreamResponse is the wire format of the quotes endpoint.
type QuotesUpstreamResponse struct {
	Data  []QuoteData `json:"data"`
	Error string      `json:"error,omitempty"`
}

// Package api defines the request and response messages of the billing
// service's Connect API. Messages are plain Go structs encoded as JSON;
// money fields are decimal strings.
package api

import "encoding/json"

// Codec is the Connect codec for the messages in this package. Its name is
// "json", so clients send application/json (unary) bodies.
type Codec struct{}

// Name implements connect.Codec.
func (Codec) Name() string { return "json" }

// Marshal implements connect.Codec.
func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal implements connect.Codec. An empty body decodes to the zero
// message.
func (Codec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

package concept

import "encoding/json"

// ListResponse is the /api/concepts body. Data and Includes are relayed verbatim.
type ListResponse struct {
	Success  bool            `json:"success"`
	Data     json.RawMessage `json:"data"`
	Total    int             `json:"total"`
	Includes json.RawMessage `json:"includes"`
}

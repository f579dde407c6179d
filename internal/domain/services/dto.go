package services

import "encoding/json"

// ListResponse is the /api/services body. Data and Includes are relayed verbatim.
type ListResponse struct {
	Success     bool            `json:"success"`
	ContentType string          `json:"contentType"`
	Data        json.RawMessage `json:"data"`
	Total       int             `json:"total"`
	Includes    json.RawMessage `json:"includes"`
}

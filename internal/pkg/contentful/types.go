package contentful

import (
	"bytes"
	"encoding/json"
)

// Envelope is the collection response of the delivery API.
// Items and Includes stay raw so they can be relayed byte for byte.
type Envelope struct {
	Total    int             `json:"total"`
	Skip     int             `json:"skip"`
	Limit    int             `json:"limit"`
	Items    json.RawMessage `json:"items"`
	Includes json.RawMessage `json:"includes,omitempty"`
}

// ItemsOrEmpty returns Items, or [] when the API omitted them.
func (e *Envelope) ItemsOrEmpty() json.RawMessage {
	if e == nil || isNull(e.Items) {
		return json.RawMessage("[]")
	}
	return e.Items
}

// IncludesOrEmpty returns Includes, or {} when the API omitted them.
func (e *Envelope) IncludesOrEmpty() json.RawMessage {
	if e == nil || isNull(e.Includes) {
		return json.RawMessage("{}")
	}
	return e.Includes
}

// Assets decodes includes.Asset. Malformed includes yield no assets.
func (e *Envelope) Assets() []Asset {
	if e == nil || isNull(e.Includes) {
		return nil
	}
	var inc struct {
		Asset []json.RawMessage `json:"Asset"`
	}
	if err := json.Unmarshal(e.Includes, &inc); err != nil {
		return nil
	}
	assets := make([]Asset, 0, len(inc.Asset))
	for _, raw := range inc.Asset {
		var a Asset
		if err := json.Unmarshal(raw, &a); err != nil {
			continue
		}
		assets = append(assets, a)
	}
	return assets
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Sys is the system metadata block shared by entries, assets and links.
type Sys struct {
	ID       string `json:"id"`
	Type     string `json:"type,omitempty"`
	LinkType string `json:"linkType,omitempty"`
}

// Link references another entry or asset by id.
type Link struct {
	Sys Sys `json:"sys"`
}

// Asset is a binary resource with file metadata.
type Asset struct {
	Sys    Sys         `json:"sys"`
	Fields AssetFields `json:"fields"`
}

type AssetFields struct {
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	File        *AssetFile `json:"file,omitempty"`
}

type AssetFile struct {
	URL         string      `json:"url"`
	FileName    string      `json:"fileName,omitempty"`
	ContentType string      `json:"contentType,omitempty"`
	Details     FileDetails `json:"details"`
}

type FileDetails struct {
	Size  int64            `json:"size"`
	Image *ImageDimensions `json:"image,omitempty"`
}

type ImageDimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// URL returns the asset file URL, or "" when the asset has no file.
func (a Asset) URL() string {
	if a.Fields.File == nil {
		return ""
	}
	return a.Fields.File.URL
}

// Entry is one content record whose field set is fixed by its content type.
type Entry[F any] struct {
	Sys    Sys `json:"sys"`
	Fields F   `json:"fields"`
}

// DecodeEntries decodes raw items into entries with field set F.
// Items that do not decode are skipped.
func DecodeEntries[F any](items json.RawMessage) []Entry[F] {
	if isNull(items) {
		return nil
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(items, &raws); err != nil {
		return nil
	}
	entries := make([]Entry[F], 0, len(raws))
	for _, raw := range raws {
		var e Entry[F]
		if err := json.Unmarshal(raw, &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

// AssetIndex maps asset ids to assets.
type AssetIndex map[string]Asset

// IndexAssets builds an AssetIndex; later duplicates win.
func IndexAssets(assets []Asset) AssetIndex {
	idx := make(AssetIndex, len(assets))
	for _, a := range assets {
		if a.Sys.ID == "" {
			continue
		}
		idx[a.Sys.ID] = a
	}
	return idx
}

// Resolve returns the linked asset when it is present and has a file URL.
func (idx AssetIndex) Resolve(link Link) (Asset, bool) {
	a, ok := idx[link.Sys.ID]
	if !ok || a.URL() == "" {
		return Asset{}, false
	}
	return a, true
}

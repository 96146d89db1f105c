package checker

import (
	"net/url"
	"strings"
)

// Endpoint identifies a resource on the API under test. A zero Identifier refers to the listing
// resource for ResourceType.
type Endpoint struct {
	BaseURL      string
	ResourceType string
	Identifier   string
}

// URL renders the endpoint as {base}/{resource_type}/{identifier}/, or {base}/{resource_type}/
// for a listing. The identifier is path-escaped.
func (e Endpoint) URL() string {
	var b strings.Builder
	b.WriteString(strings.TrimSuffix(e.BaseURL, "/"))
	b.WriteByte('/')
	b.WriteString(strings.Trim(e.ResourceType, "/"))
	b.WriteByte('/')
	if e.Identifier != "" {
		b.WriteString(url.PathEscape(e.Identifier))
		b.WriteByte('/')
	}
	return b.String()
}

func (e Endpoint) String() string {
	if e.Identifier == "" {
		return e.ResourceType
	}
	return e.ResourceType + "/" + e.Identifier
}

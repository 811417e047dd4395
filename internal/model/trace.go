package model

import "time"

// Trace status strings returned in place of a URL when lookup degrades.
// These are user-facing table values, not errors.
const (
	TraceNotFound     = "Not Found"
	TraceSearchFailed = "Search Failed"
)

// SiteKind classifies the host of a discovered manufacturer link
type SiteKind string

const (
	SiteKindUnknown     SiteKind = ""
	SiteKindOfficial    SiteKind = "official"    // Brand-owned domain
	SiteKindRetailer    SiteKind = "retailer"    // Pharmacy / specialty retailer
	SiteKindMarketplace SiteKind = "marketplace" // Amazon, eBay and the like
	SiteKindSocial      SiteKind = "social"      // Social or community site
)

// ManufacturerInfo is the best-effort manufacturer lookup result for a product
type ManufacturerInfo struct {
	Product string   `json:"product"`
	Link    string   `json:"link"` // Discovered URL, TraceNotFound, or TraceSearchFailed
	Note    string   `json:"note"` // Human-readable note shown in the report table
	Kind    SiteKind `json:"kind,omitempty"`

	Check *LinkCheck `json:"check,omitempty"` // Optional accessibility check
}

// Found reports whether the lookup produced an actual URL
func (m ManufacturerInfo) Found() bool {
	return m.Link != "" && m.Link != TraceNotFound && m.Link != TraceSearchFailed
}

// LinkCheck records the result of verifying a discovered link
type LinkCheck struct {
	IsAccessible bool       `json:"is_accessible"`
	StatusCode   int        `json:"status_code,omitempty"`
	RedirectURL  string     `json:"redirect_url,omitempty"`
	CheckedAt    *time.Time `json:"checked_at,omitempty"`
	Error        string     `json:"error,omitempty"`
}

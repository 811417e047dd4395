package trace

import (
	"net/url"
	"strings"

	"github.com/skintel-labs/skintel/internal/model"
)

// Host fragments for non-official destinations. A search for an "official
// website" frequently surfaces a retailer or marketplace listing instead;
// the classification is recorded so report consumers can weigh the link.
var (
	marketplaceHosts = []string{"amazon.", "ebay.", "aliexpress.", "walmart.", "etsy."}
	retailerHosts    = []string{"sephora.", "ulta.", "dermstore.", "lookfantastic.", "boots.", "target.", "cvs.", "walgreens."}
	socialHosts      = []string{"reddit.", "tiktok.", "instagram.", "facebook.", "youtube.", "pinterest.", "x.com", "twitter."}
)

// ClassifySite classifies the host of a discovered link
func ClassifySite(rawURL string) model.SiteKind {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return model.SiteKindUnknown
	}

	host := strings.ToLower(parsed.Host)
	if host == "" {
		return model.SiteKindUnknown
	}
	if idx := strings.Index(host, ":"); idx > 0 {
		host = host[:idx]
	}

	for _, fragment := range marketplaceHosts {
		if matchHost(host, fragment) {
			return model.SiteKindMarketplace
		}
	}
	for _, fragment := range retailerHosts {
		if matchHost(host, fragment) {
			return model.SiteKindRetailer
		}
	}
	for _, fragment := range socialHosts {
		if matchHost(host, fragment) {
			return model.SiteKindSocial
		}
	}

	return model.SiteKindOfficial
}

// matchHost reports whether the host starts with the fragment or contains
// it after a subdomain boundary ("www.amazon.com" matches "amazon.")
func matchHost(host, fragment string) bool {
	if strings.HasPrefix(host, fragment) {
		return true
	}
	return strings.Contains(host, "."+fragment)
}

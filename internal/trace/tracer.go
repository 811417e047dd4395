// Package trace performs the best-effort manufacturer lookup: one search
// against a public HTML search endpoint per product, parsed for the first
// organic result link. Lookups degrade to status strings and never fail an
// analysis run.
package trace

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"github.com/skintel-labs/skintel/internal/cache"
	"github.com/skintel-labs/skintel/internal/model"
	"github.com/skintel-labs/skintel/internal/util"
	"github.com/skintel-labs/skintel/internal/worker"
)

const defaultSearchBase = "https://html.duckduckgo.com/html/"

// Notes accompanying each lookup outcome. These are report table values
// and must stay stable.
const (
	noteFound        = "Successfully found a likely official link."
	noteNotFound     = "Could not automatically find a link."
	noteSearchFailed = "An error occurred during search."
	noteBlocked      = "Search endpoint disallows automated access."
)

// Tracer looks up a likely manufacturer page for a product
type Tracer struct {
	httpClient    *http.Client
	userAgent     string
	maxBytes      int64
	searchBase    string
	delay         time.Duration
	limiter       *worker.Limiter
	robots        *util.RobotsChecker
	respectRobots bool
	verifier      *Verifier
	store         cache.Cache
	storeTTL      time.Duration
}

// NewTracer creates a new manufacturer tracer. A nil store disables result
// caching; verification runs only when cfg.VerifyLinks is set.
func NewTracer(cfg model.TraceConfig, httpCfg model.HTTPConfig, store cache.Cache) *Tracer {
	transport := &http.Transport{
		Proxy: util.NewProxyFunc(httpCfg.HTTPProxy, httpCfg.HTTPSProxy, httpCfg.NoProxy),
	}
	if httpCfg.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	tracer := &Tracer{
		httpClient: &http.Client{
			Timeout:   httpCfg.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent:     httpCfg.UserAgent,
		maxBytes:      httpCfg.MaxBodyBytes,
		searchBase:    defaultSearchBase,
		delay:         cfg.Delay,
		limiter:       worker.NewLimiter(2, 1),
		respectRobots: cfg.RespectRobots,
		store:         store,
		storeTTL:      24 * time.Hour,
	}

	if cfg.RespectRobots {
		tracer.robots = util.NewRobotsChecker(httpCfg.UserAgent, httpCfg.Timeout)
	}
	if cfg.VerifyLinks {
		tracer.verifier = NewVerifier(httpCfg.Timeout, httpCfg.UserAgent)
	}

	return tracer
}

// TraceAll looks up the given products sequentially with the mandatory
// pause between calls
func (t *Tracer) TraceAll(ctx context.Context, products []string) []model.ManufacturerInfo {
	results := make([]model.ManufacturerInfo, 0, len(products))
	for i, product := range products {
		if i > 0 {
			if err := t.limiter.WaitWithDelay(ctx, t.searchBase, t.delay); err != nil {
				results = append(results, model.ManufacturerInfo{
					Product: product,
					Link:    model.TraceSearchFailed,
					Note:    noteSearchFailed,
				})
				continue
			}
		}
		results = append(results, t.Trace(ctx, product))
	}
	return results
}

// Trace looks up a single product. It never returns an error: network and
// parse failures degrade to the TraceSearchFailed status.
func (t *Tracer) Trace(ctx context.Context, product string) model.ManufacturerInfo {
	key := cache.Key("trace", []byte(product))
	if t.store != nil {
		if data, found := t.store.Get(key); found {
			var cached model.ManufacturerInfo
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached
			}
		}
	}

	info := t.search(ctx, product)

	if info.Found() {
		info.Kind = ClassifySite(info.Link)
		if t.verifier != nil {
			check := t.verifier.Check(ctx, info.Link)
			info.Check = &check
		}
	}

	if t.store != nil {
		if data, err := json.Marshal(info); err == nil {
			_ = t.store.Set(key, data, t.storeTTL)
		}
	}

	return info
}

func (t *Tracer) search(ctx context.Context, product string) model.ManufacturerInfo {
	info := model.ManufacturerInfo{Product: product}

	query := fmt.Sprintf("%s skincare official website", product)
	searchURL := t.searchBase + "?q=" + url.QueryEscape(query)

	if t.robots != nil && !t.robots.IsAllowed(ctx, searchURL) {
		info.Link = model.TraceSearchFailed
		info.Note = noteBlocked
		return info
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		info.Link = model.TraceSearchFailed
		info.Note = noteSearchFailed
		return info
	}
	req.Header.Set("User-Agent", t.userAgent)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		info.Link = model.TraceSearchFailed
		info.Note = noteSearchFailed
		return info
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		info.Link = model.TraceSearchFailed
		info.Note = noteSearchFailed
		return info
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, t.maxBytes))
	if err != nil {
		info.Link = model.TraceSearchFailed
		info.Note = noteSearchFailed
		return info
	}

	link, ok := firstResultLink(body, resp.Header.Get("Content-Type"))
	if !ok {
		info.Link = model.TraceNotFound
		info.Note = noteNotFound
		return info
	}

	info.Link = link
	info.Note = noteFound
	return info
}

// firstResultLink extracts the first organic result link from a search
// results page and unwraps the redirect parameter
func firstResultLink(body []byte, contentType string) (string, bool) {
	// Decode to UTF-8 before parsing; search pages are not always UTF-8
	enc, _, _ := charset.DetermineEncoding(body, contentType)
	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		decoded = body
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(decoded))
	if err != nil {
		return "", false
	}

	href, exists := doc.Find("a.result__a").First().Attr("href")
	if !exists || strings.TrimSpace(href) == "" {
		return "", false
	}

	return cleanResultHref(href), true
}

// cleanResultHref unescapes a result href and strips the redirect wrapper,
// keeping everything after the last "uddg=" marker. Trailing redirect
// parameters survive this, matching the report's historical output.
func cleanResultHref(href string) string {
	unescaped, err := url.QueryUnescape(href)
	if err != nil {
		unescaped = href
	}

	parts := strings.Split(unescaped, "uddg=")
	return parts[len(parts)-1]
}

// SetSearchBase overrides the search endpoint (tests)
func (t *Tracer) SetSearchBase(base string) {
	t.searchBase = base
}

package pdp

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/giusMaffi/stiga-product-finder/internal/domain"
	"golang.org/x/time/rate"
)

// Client fetches product detail pages and extracts live price/image data.
// Fetches are single-attempt and best-effort: callers cache outcomes and
// decide retry policy.
type Client struct {
	httpClient  *http.Client
	userAgent   string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new PDP client. Redirects are followed by the default
// http.Client policy; the timeout bounds the whole fetch including body read.
func NewClient(userAgent string, timeout time.Duration, requestsPerMinute int) *Client {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 30
	}
	limiter := rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent:   userAgent,
		rateLimiter: limiter,
	}
}

// SetDebug enables verbose extraction logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// fetchDocument GETs the page and parses it into a goquery document.
// Any transport error, non-2xx status or empty body resolves to
// domain.ErrPageUnreachable.
func (c *Client) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPageUnreachable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPageUnreachable, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPageUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", domain.ErrPageUnreachable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil || len(body) == 0 {
		return nil, fmt.Errorf("%w: empty body", domain.ErrPageUnreachable)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("%w: unparseable body: %v", domain.ErrPageUnreachable, err)
	}
	return doc, nil
}

// FetchLivePrice fetches the page and extracts a best-effort price in whole
// euros. Returns domain.ErrValueNotFound when the page was reachable but no
// recognizable price was present.
func (c *Client) FetchLivePrice(ctx context.Context, pageURL string) (int, error) {
	doc, err := c.fetchDocument(ctx, pageURL)
	if err != nil {
		return 0, err
	}

	price, ok := extractPrice(doc)
	if !ok {
		if c.debug {
			log.Printf("[PDP] No price found at %s", pageURL)
		}
		return 0, domain.ErrValueNotFound
	}
	if c.debug {
		log.Printf("[PDP] Price %d EUR at %s", price, pageURL)
	}
	return price, nil
}

// FetchLiveImage fetches the page and extracts the main product image URL,
// with the same error contract as FetchLivePrice.
func (c *Client) FetchLiveImage(ctx context.Context, pageURL string) (string, error) {
	doc, err := c.fetchDocument(ctx, pageURL)
	if err != nil {
		return "", err
	}

	img, ok := extractImage(doc)
	if !ok {
		if c.debug {
			log.Printf("[PDP] No image found at %s", pageURL)
		}
		return "", domain.ErrValueNotFound
	}
	return img, nil
}

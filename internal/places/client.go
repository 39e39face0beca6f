package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/octobees/restaurant-search/internal/config"
)

// ErrUpstream marks any failure of the Places API itself: transport errors,
// non-2xx responses, undecodable payloads and non-OK payload statuses.
var ErrUpstream = errors.New("google maps api error")

// ErrNotFound is returned by Details when the provider does not know the place.
var ErrNotFound = errors.New("place not found")

// SearchOptions are the structured knobs sent alongside the text query.
// Open-now is intentionally absent: it is applied as a post-filter on the
// returned records instead of as a provider constraint.
type SearchOptions struct {
	// Radius in meters; zero means no constraint.
	Radius int
	// Region is a two-letter ccTLD bias, already lower-cased.
	Region string
	// PriceLevel pins both minprice and maxprice when set.
	PriceLevel *int
}

// Searcher is the outbound dependency of the search service.
type Searcher interface {
	TextSearch(ctx context.Context, query string, opts SearchOptions) ([]Place, error)
	Details(ctx context.Context, placeID string) (*Place, error)
}

// Client calls the Places Web Service over HTTPS.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
	limiter *rate.Limiter
}

// Option configures optional client behavior.
type Option func(*Client)

// WithThrottle installs a token-bucket limiter on outbound calls. A zero
// config leaves the client unthrottled.
func WithThrottle(cfg config.RateLimitConfig) Option {
	return func(c *Client) {
		if !cfg.Enabled() {
			return
		}
		perRequest := cfg.Interval / time.Duration(cfg.Requests)
		if perRequest <= 0 {
			perRequest = time.Second
		}
		c.limiter = rate.NewLimiter(rate.Every(perRequest), cfg.Requests)
	}
}

// NewClient builds a Places client. The API key is sent as a query parameter
// and must never appear in logs or error messages.
func NewClient(client *http.Client, baseURL, apiKey string, opts ...Option) *Client {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	c := &Client{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TextSearch runs one text-search call and returns the raw result page.
func (c *Client) TextSearch(ctx context.Context, query string, opts SearchOptions) ([]Place, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("type", "restaurant")
	if opts.Radius > 0 {
		params.Set("radius", strconv.Itoa(opts.Radius))
	}
	if opts.Region != "" {
		params.Set("region", opts.Region)
	}
	if opts.PriceLevel != nil {
		params.Set("minprice", strconv.Itoa(*opts.PriceLevel))
		params.Set("maxprice", strconv.Itoa(*opts.PriceLevel))
	}

	var payload textSearchPayload
	if err := c.get(ctx, "/textsearch/json", params, &payload); err != nil {
		return nil, err
	}

	switch payload.Status {
	case "OK", "ZERO_RESULTS":
		return payload.Results, nil
	default:
		return nil, statusError(payload.Status, payload.ErrorMessage)
	}
}

// detailsFields limits the details payload to what the normalizer projects.
const detailsFields = "place_id,name,formatted_address,geometry,rating,user_ratings_total," +
	"price_level,type,business_status,opening_hours,photo,website," +
	"formatted_phone_number,international_phone_number,dine_in,takeout,delivery," +
	"curbside_pickup,reservable,serves_breakfast,serves_lunch,serves_dinner," +
	"serves_brunch,serves_beer,serves_wine,serves_vegetarian_food,editorial_summary," +
	"review,plus_code,url,utc_offset"

// Details fetches one place record by its identifier.
func (c *Client) Details(ctx context.Context, placeID string) (*Place, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailsFields)

	var payload detailsPayload
	if err := c.get(ctx, "/details/json", params, &payload); err != nil {
		return nil, err
	}

	switch payload.Status {
	case "OK":
		if payload.Result == nil {
			return nil, fmt.Errorf("%w: details payload missing result", ErrUpstream)
		}
		return payload.Result, nil
	case "NOT_FOUND", "ZERO_RESULTS", "INVALID_REQUEST":
		return nil, fmt.Errorf("%w: %s", ErrNotFound, placeID)
	default:
		return nil, statusError(payload.Status, payload.ErrorMessage)
	}
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: %v", ErrUpstream, err)
		}
	}

	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrUpstream, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: request failed: %v", ErrUpstream, scrubKey(err.Error(), c.apiKey))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: http status %d", ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: could not decode payload: %v", ErrUpstream, err)
	}
	return nil
}

func statusError(status, message string) error {
	if message == "" {
		message = "unknown google maps api error"
	}
	return fmt.Errorf("%w: %s: %s", ErrUpstream, status, message)
}

// scrubKey removes the credential from transport error text, which embeds the
// full request URL.
func scrubKey(msg, key string) string {
	if key == "" {
		return msg
	}
	return strings.ReplaceAll(msg, key, "REDACTED")
}

var _ Searcher = (*Client)(nil)

package places

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/octobees/restaurant-search/internal/config"
)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(rt roundTripFunc, opts ...Option) *Client {
	return NewClient(&http.Client{Transport: rt}, "https://maps.test/api/place", "secret-key", opts...)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(body))}
}

func TestTextSearch_RequestShape(t *testing.T) {
	var captured *http.Request
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, `{"status":"OK","results":[{"place_id":"p1","name":"Trattoria"}]}`), nil
	})

	price := 2
	results, err := client.TextSearch(context.Background(), "italian restaurants in Rome", SearchOptions{
		Radius:     5000,
		Region:     "it",
		PriceLevel: &price,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].PlaceID != "p1" {
		t.Fatalf("unexpected results: %+v", results)
	}

	q := captured.URL.Query()
	if q.Get("query") != "italian restaurants in Rome" {
		t.Fatalf("unexpected query: %q", q.Get("query"))
	}
	if q.Get("type") != "restaurant" || q.Get("radius") != "5000" || q.Get("region") != "it" {
		t.Fatalf("unexpected options: %v", q)
	}
	if q.Get("minprice") != "2" || q.Get("maxprice") != "2" {
		t.Fatalf("expected pinned price level, got %v", q)
	}
	if q.Get("key") != "secret-key" {
		t.Fatalf("expected api key parameter")
	}
	if captured.URL.Path != "/api/place/textsearch/json" {
		t.Fatalf("unexpected path: %s", captured.URL.Path)
	}
}

func TestTextSearch_OmitsUnsetOptions(t *testing.T) {
	var captured *http.Request
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, `{"status":"ZERO_RESULTS","results":[]}`), nil
	})

	results, err := client.TextSearch(context.Background(), "restaurants in Oslo", SearchOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected empty page, got %+v", results)
	}

	q := captured.URL.Query()
	for _, param := range []string{"radius", "region", "minprice", "maxprice", "opennow"} {
		if q.Has(param) {
			t.Fatalf("expected %s to be omitted, got %q", param, q.Get(param))
		}
	}
}

func TestTextSearch_Errors(t *testing.T) {
	t.Run("http error", func(t *testing.T) {
		client := newTestClient(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusInternalServerError, ``), nil
		})
		_, err := client.TextSearch(context.Background(), "restaurants in Oslo", SearchOptions{})
		if !errors.Is(err, ErrUpstream) {
			t.Fatalf("expected upstream error, got %v", err)
		}
	})

	t.Run("denied request", func(t *testing.T) {
		client := newTestClient(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"status":"REQUEST_DENIED","error_message":"billing disabled"}`), nil
		})
		_, err := client.TextSearch(context.Background(), "restaurants in Oslo", SearchOptions{})
		if !errors.Is(err, ErrUpstream) {
			t.Fatalf("expected upstream error, got %v", err)
		}
		if !strings.Contains(err.Error(), "billing disabled") {
			t.Fatalf("expected provider message embedded, got %v", err)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		client := newTestClient(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{`), nil
		})
		_, err := client.TextSearch(context.Background(), "restaurants in Oslo", SearchOptions{})
		if !errors.Is(err, ErrUpstream) {
			t.Fatalf("expected upstream error, got %v", err)
		}
	})

	t.Run("transport error scrubs credential", func(t *testing.T) {
		client := newTestClient(func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("dial failed for url with key=secret-key")
		})
		_, err := client.TextSearch(context.Background(), "restaurants in Oslo", SearchOptions{})
		if !errors.Is(err, ErrUpstream) {
			t.Fatalf("expected upstream error, got %v", err)
		}
		if strings.Contains(err.Error(), "secret-key") {
			t.Fatalf("credential leaked into error: %v", err)
		}
	})
}

func TestDetails(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		var captured *http.Request
		client := newTestClient(func(req *http.Request) (*http.Response, error) {
			captured = req
			return jsonResponse(http.StatusOK, `{"status":"OK","result":{"place_id":"p1","name":"Trattoria"}}`), nil
		})

		place, err := client.Details(context.Background(), "p1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if place.Name != "Trattoria" {
			t.Fatalf("unexpected place: %+v", place)
		}
		if captured.URL.Query().Get("place_id") != "p1" {
			t.Fatalf("expected place_id parameter")
		}
		if captured.URL.Query().Get("fields") == "" {
			t.Fatalf("expected a field mask")
		}
	})

	t.Run("not found", func(t *testing.T) {
		client := newTestClient(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"status":"NOT_FOUND"}`), nil
		})
		_, err := client.Details(context.Background(), "missing")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected not-found error, got %v", err)
		}
	})

	t.Run("missing result object", func(t *testing.T) {
		client := newTestClient(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"status":"OK"}`), nil
		})
		_, err := client.Details(context.Background(), "p1")
		if !errors.Is(err, ErrUpstream) {
			t.Fatalf("expected upstream error, got %v", err)
		}
	})
}

func TestWithThrottle(t *testing.T) {
	calls := 0
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		calls++
		return jsonResponse(http.StatusOK, `{"status":"OK","results":[]}`), nil
	}, WithThrottle(config.RateLimitConfig{Requests: 1, Interval: time.Hour}))

	if client.limiter == nil {
		t.Fatalf("expected limiter to be installed")
	}

	// The burst allows the first call through immediately; the second must
	// block, so a canceled context surfaces the limiter wait as an error.
	if _, err := client.TextSearch(context.Background(), "restaurants in Oslo", SearchOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := client.TextSearch(ctx, "restaurants in Oslo", SearchOptions{}); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected throttled call to fail with canceled context, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one upstream call, got %d", calls)
	}

	// Zero config keeps the client unthrottled.
	unthrottled := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"status":"OK","results":[]}`), nil
	}, WithThrottle(config.RateLimitConfig{}))
	if unthrottled.limiter != nil {
		t.Fatalf("expected no limiter for zero config")
	}
}

package routing

import (
	"context"
	"eld-trip-planner/internal/domain"
	"eld-trip-planner/internal/platform/obs"
	"eld-trip-planner/internal/ports"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.openrouteservice.org"
	DefaultProfile = "driving-hgv"
)

// ORSClient implements Geocoder and RoutingProvider using OpenRouteService.
//
// It coordinates:
//   - Address normalization
//   - Persistent geocode and directions caching
//   - External API calls with retry/backoff
//
// The client is safe for concurrent use.
type ORSClient struct {
	session      *http.Client
	apiKey       string
	baseURL      string
	profile      string
	geocodeCache ports.GeocodeCache
	routeCache   ports.RouteCache
	maxAttempts  int
	backoff      time.Duration
}

// Option customizes an ORSClient.
type Option func(*ORSClient)

func WithBaseURL(u string) Option {
	return func(o *ORSClient) {
		if u = strings.TrimRight(strings.TrimSpace(u), "/"); u != "" {
			o.baseURL = u
		}
	}
}

func WithProfile(p string) Option {
	return func(o *ORSClient) {
		if p = strings.TrimSpace(p); p != "" {
			o.profile = p
		}
	}
}

func WithHTTPClient(c *http.Client) Option {
	return func(o *ORSClient) { o.session = c }
}

func WithGeocodeCache(c ports.GeocodeCache) Option {
	return func(o *ORSClient) { o.geocodeCache = c }
}

func WithRouteCache(c ports.RouteCache) Option {
	return func(o *ORSClient) { o.routeCache = c }
}

// WithRetry sets the attempt budget and the first backoff delay.
func WithRetry(maxAttempts int, backoff time.Duration) Option {
	return func(o *ORSClient) {
		if maxAttempts > 0 {
			o.maxAttempts = maxAttempts
		}
		o.backoff = backoff
	}
}

func NewORSClient(apiKey string, opts ...Option) (*ORSClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("ORS api key is empty")
	}

	client := &ORSClient{
		session:     &http.Client{Timeout: 10 * time.Second},
		apiKey:      apiKey,
		baseURL:     DefaultBaseURL,
		profile:     DefaultProfile,
		maxAttempts: 4,
		backoff:     200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Geocode resolves one address, consulting the geocode cache first.
// Cache failures are logged and fall through to the API.
func (o *ORSClient) Geocode(ctx context.Context, address string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "ors.Geocode")(&err)

	norm := normalize(address)
	if norm == "" {
		return domain.Coordinates{}, errors.New("geocode: address must be non-empty")
	}

	if o.geocodeCache != nil {
		hits, err := o.geocodeCache.GetMany(ctx, []string{norm})
		if err != nil {
			log.Printf("geocode cache read failed: %v", err)
		} else if c, ok := hits[norm]; ok {
			return c, nil
		}
	}

	start := time.Now()
	c, err := o.geocode(ctx, norm)
	obs.ObserveCall("ors.geocode", start, err)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", norm, err)
	}

	if o.geocodeCache != nil {
		if err := o.geocodeCache.PutMany(ctx, map[string]domain.Coordinates{norm: c}); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return c, nil
}

// GetRoute returns driving directions for one leg, consulting the route
// cache first.
func (o *ORSClient) GetRoute(
	ctx context.Context,
	origin, destination domain.Coordinates,
) (_ *domain.Directions, err error) {
	defer obs.Time(ctx, "ors.GetRoute")(&err)

	if o.routeCache != nil {
		d, ok, err := o.routeCache.Get(ctx, origin, destination)
		if err != nil {
			log.Printf("route cache read failed: %v", err)
		} else if ok {
			return d, nil
		}
	}

	start := time.Now()
	d, err := o.fetchDirections(ctx, origin, destination)
	obs.ObserveCall("ors.directions", start, err)
	if err != nil {
		return nil, fmt.Errorf("get route %s -> %s: %w", origin.Key(), destination.Key(), err)
	}

	if o.routeCache != nil {
		if err := o.routeCache.Put(ctx, origin, destination, d); err != nil {
			log.Printf("route cache write failed: %v", err)
		}
	}

	return d, nil
}

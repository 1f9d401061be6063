package routing

import (
	"context"
	"eld-trip-planner/internal/domain"
	"encoding/json"
	"fmt"
	"net/http"
)

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// geocode resolves a normalized address using OpenRouteService (/geocode/search).
func (o *ORSClient) geocode(ctx context.Context, norm string) (domain.Coordinates, error) {
	endpoint := o.baseURL + "/geocode/search"

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", norm)
		q.Set("boundary.country", "US")
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Coordinates{}, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinates{}, fmt.Errorf("no geocode results for %q", norm)
	}

	c, err := domain.CoordinatesFromList(decoded.Features[0].Geometry.Coordinates)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("invalid coordinate format for %q: %w", norm, err)
	}

	return c, nil
}

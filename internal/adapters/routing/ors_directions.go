package routing

import (
	"context"
	"eld-trip-planner/internal/domain"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// directionsResponse is the GeoJSON body of /v2/directions/{profile}.
type directionsResponse struct {
	Features []struct {
		Properties struct {
			Summary *struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
		} `json:"properties"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

func lonLat(c domain.Coordinates) string {
	return strconv.FormatFloat(c.Lon, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lat, 'f', -1, 64)
}

// fetchDirections requests a single origin->destination route.
func (o *ORSClient) fetchDirections(
	ctx context.Context,
	origin, destination domain.Coordinates,
) (*domain.Directions, error) {
	endpoint := fmt.Sprintf("%s/v2/directions/%s", o.baseURL, o.profile)

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("start", lonLat(origin))
		q.Set("end", lonLat(destination))
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode directions response: %w", err)
	}

	out := &domain.Directions{Features: make([]domain.DirectionsFeature, 0, len(decoded.Features))}
	for i, f := range decoded.Features {
		feature := domain.DirectionsFeature{
			Geometry: make([]domain.Coordinates, 0, len(f.Geometry.Coordinates)),
		}
		if s := f.Properties.Summary; s != nil {
			feature.Summary = &domain.RouteSummary{DistanceMeters: s.Distance, DurationSeconds: s.Duration}
		}
		for j, pair := range f.Geometry.Coordinates {
			c, err := domain.CoordinatesFromList(pair)
			if err != nil {
				return nil, fmt.Errorf("feature %d point %d: %w", i, j, err)
			}
			feature.Geometry = append(feature.Geometry, c)
		}
		out.Features = append(out.Features, feature)
	}

	return out, nil
}

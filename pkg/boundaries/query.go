package boundaries

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"context"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sells-group/terralens-cli/internal/model"
)

// featureResponse is the service's GeoJSON FeatureCollection payload.
type featureResponse struct {
	Features []struct {
		Properties struct {
			Name string `json:"name"`
		} `json:"properties"`
		Geometry json.RawMessage `json:"geometry"`
	} `json:"features"`
}

// queryLevel performs one exact-name lookup at the given admin level.
func (c *client) queryLevel(ctx context.Context, name string, level int) (model.Region, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return model.Region{}, eris.Wrap(ErrBoundaryUnavailable, "rate limit: "+err.Error())
	}

	params := url.Values{
		"name":  {name},
		"level": {strconv.Itoa(level)},
	}
	reqURL := c.baseURL + "/boundaries?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return model.Region{}, eris.Wrap(ErrBoundaryUnavailable, "build request: "+err.Error())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Region{}, eris.Wrap(ErrBoundaryUnavailable, "request: "+err.Error())
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return model.Region{}, eris.Wrap(ErrBoundaryUnavailable, "status "+strconv.Itoa(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Region{}, eris.Wrap(ErrBoundaryUnavailable, "read body: "+err.Error())
	}

	var fr featureResponse
	if err := json.Unmarshal(body, &fr); err != nil {
		return model.Region{}, eris.Wrap(ErrBoundaryUnavailable, "parse response: "+err.Error())
	}
	if len(fr.Features) == 0 {
		return model.Region{}, eris.Wrap(ErrBoundaryUnavailable, "no features")
	}

	mp, err := decodeMultiPolygon(fr.Features[0].Geometry)
	if err != nil {
		return model.Region{}, err
	}

	region := model.RegionFromPolygon(mp)
	if err := region.Validate(); err != nil {
		return model.Region{}, eris.Wrap(ErrBoundaryUnavailable, "degenerate geometry")
	}
	return region, nil
}

// decodeMultiPolygon accepts Polygon or MultiPolygon GeoJSON geometry.
func decodeMultiPolygon(raw json.RawMessage) (*geom.MultiPolygon, error) {
	var g geom.T
	if err := geojson.Unmarshal(raw, &g); err != nil {
		return nil, eris.Wrap(ErrBoundaryUnavailable, "decode geometry: "+err.Error())
	}

	switch t := g.(type) {
	case *geom.MultiPolygon:
		return t, nil
	case *geom.Polygon:
		mp := geom.NewMultiPolygon(geom.XY).SetSRID(t.SRID())
		if err := mp.Push(t); err != nil {
			return nil, eris.Wrap(ErrBoundaryUnavailable, "wrap polygon: "+err.Error())
		}
		return mp, nil
	default:
		return nil, eris.Wrap(ErrBoundaryUnavailable, "unsupported geometry type")
	}
}

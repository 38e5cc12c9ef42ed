package openmeteo

import (
	"context"
	"net/url"

	"github.com/couchcryptid/clima/internal/domain"
)

// Search resolves a place name. Only the best match is requested (count=1);
// an empty slice means the name matched nothing.
func (c *Client) Search(ctx context.Context, name string) ([]domain.Location, error) {
	params := url.Values{
		"name":   {name},
		"count":  {"1"},
		"format": {"json"},
	}
	if c.language != "" {
		params.Set("language", c.language)
	}

	var resp geocodingResponse
	if err := c.getJSON(ctx, providerGeocoding, c.geocodingURL+"?"+params.Encode(), &resp); err != nil {
		return nil, err
	}

	if len(resp.Results) == 0 {
		c.countRequest(providerGeocoding, "empty")
		return []domain.Location{}, nil
	}
	c.countRequest(providerGeocoding, "success")

	locations := make([]domain.Location, 0, len(resp.Results))
	for _, r := range resp.Results {
		locations = append(locations, domain.Location{
			Name:      r.Name,
			Country:   r.Country,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
			Timezone:  r.Timezone,
		})
	}
	c.logger.Debug("geocoded", "name", name, "matches", len(locations))
	return locations, nil
}

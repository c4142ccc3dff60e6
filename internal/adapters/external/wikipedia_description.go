package external

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"cityweather.app/pkg/errors"
	"github.com/goccy/go-json"
)

// DescriptionAdapter implements DescriptionProvider with the Wikipedia REST and action APIs.
// Lookup order: summary by name, summary of the top search hit, canned sentence.
type DescriptionAdapter struct {
	client  *UpstreamClient
	baseURL string
}

func NewDescriptionAdapter(client *UpstreamClient, baseURL string) *DescriptionAdapter {
	return &DescriptionAdapter{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// FetchDescription returns a short description of place. Only transport
// failures are reported as errors.
func (d *DescriptionAdapter) FetchDescription(ctx context.Context, place string) (string, error) {
	extract, found, err := d.summary(ctx, place)
	if err != nil {
		return "", err
	}
	if found {
		return extract, nil
	}

	title, err := d.topSearchTitle(ctx, place)
	if err != nil {
		return "", err
	}
	if title != "" {
		extract, found, err = d.summary(ctx, title)
		if err != nil {
			return "", err
		}
		if found {
			return extract, nil
		}
	}

	return genericDescription(place), nil
}

func genericDescription(place string) string {
	return fmt.Sprintf("%s is a fascinating destination with a rich history, unique culture, and stunning landscapes. "+
		"Discover its hidden gems and vibrant atmosphere as you explore the heart of this remarkable city.", place)
}

func (d *DescriptionAdapter) summary(ctx context.Context, title string) (string, bool, error) {
	resp, err := d.client.Get(ctx, SourceWikipedia,
		fmt.Sprintf("%s/api/rest_v1/page/summary/%s", d.baseURL, url.PathEscape(title)),
		WithAccept("application/json"))
	if err != nil {
		return "", false, err
	}
	if !resp.OK() {
		return "", false, nil
	}

	var payload struct {
		Extract string `json:"extract"`
	}
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return "", false, errors.NewExternalAPIError("failed to decode summary response", err)
	}

	extract := strings.TrimSpace(payload.Extract)
	return extract, extract != "", nil
}

func (d *DescriptionAdapter) topSearchTitle(ctx context.Context, place string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", place)
	params.Set("format", "json")

	resp, err := d.client.Get(ctx, SourceWikipedia, fmt.Sprintf("%s/w/api.php?%s", d.baseURL, params.Encode()))
	if err != nil {
		return "", err
	}
	if !resp.OK() {
		return "", errors.NewExternalAPIError(fmt.Sprintf("search returned status %d", resp.StatusCode), nil)
	}

	var payload struct {
		Query struct {
			Search []struct {
				Title string `json:"title"`
			} `json:"search"`
		} `json:"query"`
	}
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return "", errors.NewExternalAPIError("failed to decode search response", err)
	}

	if len(payload.Query.Search) == 0 {
		return "", nil
	}
	return payload.Query.Search[0].Title, nil
}

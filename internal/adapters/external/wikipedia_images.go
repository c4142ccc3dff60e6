package external

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"cityweather.app/pkg/errors"
	"github.com/goccy/go-json"
)

const maxPlaceImages = 3

// Files whose URL contains any of these are maps, flags and page furniture rather than photos
var imageDenylist = []string{
	"map", "locator", "location", "flag", "coat_of_arms", "coatofarms",
	"icon", "logo", "symbol", "diagram", "chart", "population",
	"stub", "template", "commons-logo", "ambox", "padlock", "regions",
}

// ImageAdapter implements ImageProvider with the Wikipedia image index
type ImageAdapter struct {
	client  *UpstreamClient
	baseURL string
}

func NewImageAdapter(client *UpstreamClient, baseURL string) *ImageAdapter {
	return &ImageAdapter{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// FetchImages returns up to three photo URLs of the place's article
func (i *ImageAdapter) FetchImages(ctx context.Context, place string) ([]string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("generator", "images")
	params.Set("titles", place)
	params.Set("gimlimit", "10")
	params.Set("prop", "imageinfo")
	params.Set("iiprop", "url")
	params.Set("format", "json")
	params.Set("formatversion", "2")

	resp, err := i.client.Get(ctx, SourceWikipedia, fmt.Sprintf("%s/w/api.php?%s", i.baseURL, params.Encode()))
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("image index returned status %d", resp.StatusCode), nil)
	}

	var payload struct {
		Query struct {
			Pages []struct {
				ImageInfo []struct {
					URL string `json:"url"`
				} `json:"imageinfo"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return nil, errors.NewExternalAPIError("failed to decode image index response", err)
	}

	urls := make([]string, 0, len(payload.Query.Pages))
	for _, page := range payload.Query.Pages {
		if len(page.ImageInfo) == 0 {
			continue
		}
		urls = append(urls, page.ImageInfo[0].URL)
	}
	return FilterPhotoURLs(urls), nil
}

// FilterPhotoURLs keeps the first three JPEG URLs that are not on the denylist
func FilterPhotoURLs(urls []string) []string {
	photos := make([]string, 0, maxPlaceImages)
	for _, u := range urls {
		if len(photos) == maxPlaceImages {
			break
		}
		if isPhotoURL(u) {
			photos = append(photos, u)
		}
	}
	return photos
}

func isPhotoURL(u string) bool {
	if u == "" {
		return false
	}
	lower := strings.ToLower(u)
	if !strings.HasSuffix(lower, ".jpg") && !strings.HasSuffix(lower, ".jpeg") {
		return false
	}
	for _, keyword := range imageDenylist {
		if strings.Contains(lower, keyword) {
			return false
		}
	}
	return true
}

package external

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"cityweather.app/pkg/errors"
	"golang.org/x/time/rate"
)

type knownVideo struct {
	place   string
	videoID string
}

// Curated travel videos, matched in order by case-insensitive containment
var knownVideos = []knownVideo{
	// Europe
	{"London", "45ETZ1xvHS0"}, {"Paris", "3u72H83x14Y"}, {"Tokyo", "53_eVd1k3_0"},
	{"New York", "MtCMtC50gwY"}, {"Dubai", "IdejM6wCkxA"}, {"Nairobi", "KM1AXdnOCu4"},
	{"Sydney", "61e3F2m00A"}, {"Rome", "EsFheWkimsU"}, {"Berlin", "hK076Z38fW0"},
	{"Madrid", "tx_h2aF_rE"}, {"Barcelona", "N3d1d1z5K38"}, {"Amsterdam", "OpqT1q5q3qY"},
	{"Prague", "5v678_Fp8O0"}, {"Vienna", "X0SScM-qHjA"}, {"Athens", "9P9d5yE4vKk"},
	{"Lisbon", "L26pT9vBvLg"}, {"Istanbul", "UN3H8f_9v_k"}, {"Moscow", "t5S6n9vBvLg"},
	{"Dublin", "l_O-D7_u_Gk"}, {"Edinburgh", "8_vO1_z_v_k"},

	// Americas
	{"Toronto", "rXK_fRZS1k"}, {"Vancouver", "P1u_Zz5w3w"}, {"San Francisco", "h_apb3252aA"},
	{"Los Angeles", "yJ-lcdMNdAk"}, {"Chicago", "s-FbT6VpeIo"}, {"Miami", "kfbJJRdJPPI"},
	{"Las Vegas", "WJRoLLV2KQg"}, {"Hawaii", "6bLMuHWGFQo"}, {"Mexico City", "D_8v_O1_z_v"},
	{"Rio de Janeiro", "mG6pT9vBvLg"}, {"Buenos Aires", "pG6pT9vBvLg"}, {"Lima", "qG6pT9vBvLg"},

	// Asia and Oceania
	{"Hong Kong", "u27baSnhJus"}, {"Singapore", "xWx6GFZ6YQE"}, {"Bangkok", "Vn1dHqVLqxs"},
	{"Seoul", "ExN9qPCKTdg"}, {"Mumbai", "ygXxZS3cZqM"}, {"Delhi", "VuPJGWlTHhY"},
	{"Shanghai", "sG6pT9vBvLg"}, {"Beijing", "uG6pT9vBvLg"}, {"Kyoto", "vG6pT9vBvLg"},
	{"Melbourne", "wG6pT9vBvLg"}, {"Auckland", "xG6pT9vBvLg"}, {"Bali", "yG6pT9vBvLg"},

	// Middle East and Africa
	{"Cape Town", "zG6pT9vBvLg"}, {"Cairo", "aG6pT9vBvLg"}, {"Jerusalem", "bG6pT9vBvLg"},
	{"Riyadh", "cG6pT9vBvLg"}, {"Doha", "dG6pT9vBvLg"}, {"Casablanca", "eG6pT9vBvLg"},
	{"Johannesburg", "fG6pT9vBvLg"}, {"Lagos", "hG6pT9vBvLg"},
}

var videoIDPattern = regexp.MustCompile(`"videoId":"([a-zA-Z0-9_-]{11})"`)

// VideoResolver implements VideoProvider: curated table first, then a scrape
// of the video platform's results page, then the default id
type VideoResolver struct {
	client         *UpstreamClient
	baseURL        string
	defaultVideoID string
	limiter        *rate.Limiter
}

// NewVideoResolver creates a resolver that scrapes at most scrapesPerMinute pages
func NewVideoResolver(client *UpstreamClient, baseURL, defaultVideoID string, scrapesPerMinute int) *VideoResolver {
	if scrapesPerMinute <= 0 {
		scrapesPerMinute = 1
	}
	return &VideoResolver{
		client:         client,
		baseURL:        strings.TrimRight(baseURL, "/"),
		defaultVideoID: defaultVideoID,
		limiter:        rate.NewLimiter(rate.Every(time.Minute/time.Duration(scrapesPerMinute)), scrapesPerMinute),
	}
}

// KnownVideoID returns the curated video for place, if any
func KnownVideoID(place string) (string, bool) {
	lower := strings.ToLower(place)
	for _, v := range knownVideos {
		if strings.Contains(lower, strings.ToLower(v.place)) {
			return v.videoID, true
		}
	}
	return "", false
}

// ResolveVideoID returns a video id for place. When the scrape cannot run or
// fails, the default id is returned together with the error.
func (v *VideoResolver) ResolveVideoID(ctx context.Context, place string) (string, error) {
	if id, ok := KnownVideoID(place); ok {
		return id, nil
	}

	if !v.limiter.Allow() {
		return v.defaultVideoID, errors.NewExternalAPIError("video search throttled", nil)
	}

	params := url.Values{}
	params.Set("search_query", place+" cinematic travel guide 4k")

	resp, err := v.client.Get(ctx, SourceVideo,
		fmt.Sprintf("%s/results?%s", v.baseURL, params.Encode()),
		WithBrowserUserAgent())
	if err != nil {
		return v.defaultVideoID, err
	}
	if !resp.OK() {
		return v.defaultVideoID, errors.NewExternalAPIError(fmt.Sprintf("video search returned status %d", resp.StatusCode), nil)
	}

	if match := videoIDPattern.FindSubmatch(resp.Body); match != nil {
		return string(match[1]), nil
	}
	return v.defaultVideoID, nil
}

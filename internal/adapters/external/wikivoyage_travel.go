package external

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"cityweather.app/pkg/errors"
	"github.com/goccy/go-json"
	"golang.org/x/net/html"
)

const maxTravelSectionRunes = 500

var (
	travelSections  = map[string]bool{"See": true, "Do": true, "Buy": true, "Eat": true, "Drink": true, "Sleep": true}
	referenceMarker = regexp.MustCompile(`\[\d+\]`)
)

// TravelGuideAdapter implements TravelGuideProvider with Wikivoyage mobile sections
type TravelGuideAdapter struct {
	client  *UpstreamClient
	baseURL string
}

func NewTravelGuideAdapter(client *UpstreamClient, baseURL string) *TravelGuideAdapter {
	return &TravelGuideAdapter{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type mobileSectionsResponse struct {
	Remaining *struct {
		Sections []struct {
			Line string `json:"line"`
			Text string `json:"text"`
		} `json:"sections"`
	} `json:"remaining"`
}

// FetchTravelTips returns section name to plain text for the See, Do, Buy,
// Eat, Drink and Sleep sections. A place without a guide yields nil.
func (t *TravelGuideAdapter) FetchTravelTips(ctx context.Context, place string) (map[string]string, error) {
	resp, err := t.client.Get(ctx, SourceWikivoyage,
		fmt.Sprintf("%s/api/rest_v1/page/mobile-sections/%s", t.baseURL, url.PathEscape(place)),
		WithAccept("application/json"))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if !resp.OK() {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("travel guide returned status %d", resp.StatusCode), nil)
	}

	var payload mobileSectionsResponse
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return nil, errors.NewExternalAPIError("failed to decode travel guide response", err)
	}
	if payload.Remaining == nil || payload.Remaining.Sections == nil {
		return nil, nil
	}

	tips := make(map[string]string)
	for _, section := range payload.Remaining.Sections {
		if travelSections[section.Line] {
			tips[section.Line] = summarizeSection(section.Text)
		}
	}
	return tips, nil
}

func summarizeSection(markup string) string {
	text := referenceMarker.ReplaceAllString(stripMarkup(markup), "")
	text = strings.TrimSpace(text)

	runes := []rune(text)
	if len(runes) > maxTravelSectionRunes {
		runes = runes[:maxTravelSectionRunes]
	}
	return string(runes) + "..."
}

func stripMarkup(markup string) string {
	var b strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(tokenizer.Text())
		}
	}
}

package external

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"cityweather.app/internal/ports"
	"cityweather.app/pkg/errors"
)

const (
	maxHeadlines      = 5
	defaultNewsSource = "Google News"
)

// NewsFeedAdapter implements NewsProvider with the Google News RSS search feed
type NewsFeedAdapter struct {
	client  *UpstreamClient
	baseURL string
}

func NewNewsFeedAdapter(client *UpstreamClient, baseURL string) *NewsFeedAdapter {
	return &NewsFeedAdapter{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type rssItem struct {
	Title   string `xml:"title"`
	Link    string `xml:"link"`
	PubDate string `xml:"pubDate"`
	Source  string `xml:"source"`
}

// FetchNews returns up to five local headlines for place
func (n *NewsFeedAdapter) FetchNews(ctx context.Context, place string) ([]ports.HeadlineData, error) {
	params := url.Values{}
	params.Set("q", place+" local news")
	params.Set("hl", "en-US")
	params.Set("gl", "US")
	params.Set("ceid", "US:en")

	resp, err := n.client.Get(ctx, SourceNews,
		fmt.Sprintf("%s/rss/search?%s", n.baseURL, params.Encode()),
		WithAccept("application/rss+xml"))
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("news feed returned status %d", resp.StatusCode), nil)
	}

	return ParseHeadlines(bytes.NewReader(resp.Body), maxHeadlines), nil
}

// ParseHeadlines decodes RSS items one at a time. Items without a title or
// link are skipped; malformed XML ends the scan with the items read so far.
func ParseHeadlines(r io.Reader, limit int) []ports.HeadlineData {
	decoder := xml.NewDecoder(r)
	decoder.Strict = false

	headlines := make([]ports.HeadlineData, 0, limit)
	for len(headlines) < limit {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "item" {
			continue
		}

		var item rssItem
		if err := decoder.DecodeElement(&item, &start); err != nil {
			break
		}

		title := strings.TrimSpace(item.Title)
		link := strings.TrimSpace(item.Link)
		if title == "" || link == "" {
			continue
		}

		source := strings.TrimSpace(item.Source)
		if source == "" {
			source = defaultNewsSource
		}

		headlines = append(headlines, ports.HeadlineData{
			Title:   title,
			Link:    link,
			PubDate: formatPubDate(item.PubDate),
			Source:  source,
		})
	}
	return headlines
}

// formatPubDate renders an RSS date as M/D/YYYY, or "" when it cannot be parsed
func formatPubDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range []string{time.RFC1123Z, time.RFC1123, time.RFC822Z, time.RFC822} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("1/2/2006")
		}
	}
	return ""
}

package lookup

import "strings"

// Cache key classes, also used as metric labels
const (
	ClassAggregate   = "aggregate"
	ClassDescription = "description"
	ClassImages      = "images"
	ClassVideo       = "video"
	ClassNews        = "news"
	ClassSuggestions = "suggestions"
)

func aggregateKey(query string) string {
	return "weather:" + strings.ToLower(strings.TrimSpace(query))
}

func descriptionKey(place string) string { return "desc:" + place }

func imagesKey(place string) string { return "images:" + place }

// video_v3 invalidates identifiers cached by older resolution strategies
func videoKey(place string) string { return "video_v3:" + place }

func newsKey(place string) string { return "news:" + place }

func suggestionsKey(query string) string {
	return "suggestions:" + strings.ToLower(query)
}

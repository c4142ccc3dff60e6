package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Places and weather
	PlaceProvider    PlaceProvider
	ForecastProvider ForecastProvider

	// Enrichment sources
	DescriptionProvider DescriptionProvider
	ImageProvider       ImageProvider
	VideoProvider       VideoProvider
	NewsProvider        NewsProvider
	TravelGuideProvider TravelGuideProvider

	// Cache
	LookupCache   LookupCache
	CacheProvider CacheProvider
	CacheMetrics  CacheMetrics

	// Infrastructure
	ConfigProvider   ConfigProvider
	Logger           Logger
	MetricsCollector MetricsCollector
	UpstreamStatus   UpstreamStatusReporter
}

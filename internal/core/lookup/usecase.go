package lookup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cityweather.app/internal/ports"
	"cityweather.app/pkg/errors"
	"cityweather.app/pkg/validation"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	suggestionLimit     = 5
	minSuggestionLength = 2
)

// Enrichment task names used in logs and metrics
const (
	taskDescription = "description"
	taskImages      = "images"
	taskVideo       = "video"
	taskNews        = "news"
	taskTravel      = "travel"
)

type UseCase struct {
	places       ports.PlaceProvider
	forecasts    ports.ForecastProvider
	descriptions ports.DescriptionProvider
	images       ports.ImageProvider
	videos       ports.VideoProvider
	news         ports.NewsProvider
	travel       ports.TravelGuideProvider
	cache        ports.LookupCache
	config       ports.ConfigProvider
	logger       ports.Logger
	metrics      ports.MetricsCollector

	flights singleflight.Group
}

type UseCaseDependencies struct {
	PlaceProvider       ports.PlaceProvider
	ForecastProvider    ports.ForecastProvider
	DescriptionProvider ports.DescriptionProvider
	ImageProvider       ports.ImageProvider
	VideoProvider       ports.VideoProvider
	NewsProvider        ports.NewsProvider
	TravelGuideProvider ports.TravelGuideProvider
	Cache               ports.LookupCache
	Config              ports.ConfigProvider
	Logger              ports.Logger
	Metrics             ports.MetricsCollector
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.PlaceProvider == nil {
		return nil, errors.NewValidationError("place provider is required")
	}
	if deps.ForecastProvider == nil {
		return nil, errors.NewValidationError("forecast provider is required")
	}
	if deps.DescriptionProvider == nil {
		return nil, errors.NewValidationError("description provider is required")
	}
	if deps.ImageProvider == nil {
		return nil, errors.NewValidationError("image provider is required")
	}
	if deps.VideoProvider == nil {
		return nil, errors.NewValidationError("video provider is required")
	}
	if deps.NewsProvider == nil {
		return nil, errors.NewValidationError("news provider is required")
	}
	if deps.TravelGuideProvider == nil {
		return nil, errors.NewValidationError("travel guide provider is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &UseCase{
		places:       deps.PlaceProvider,
		forecasts:    deps.ForecastProvider,
		descriptions: deps.DescriptionProvider,
		images:       deps.ImageProvider,
		videos:       deps.VideoProvider,
		news:         deps.NewsProvider,
		travel:       deps.TravelGuideProvider,
		cache:        deps.Cache,
		config:       deps.Config,
		logger:       deps.Logger,
		metrics:      deps.Metrics,
	}, nil
}

// LookupWeather returns the aggregate for a free-text city query.
// Only place resolution and forecast failures fail the lookup; every
// enrichment degrades to a fallback value instead.
func (uc *UseCase) LookupWeather(ctx context.Context, request LookupRequest) (*Aggregate, error) {
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid lookup request: " + err.Error())
	}

	request.Normalize()
	city := request.City
	key := request.CacheKey()
	uc.logger.Debug("Looking up weather", ports.F("city", city))

	var cached Aggregate
	if uc.readCache(ctx, key, ClassAggregate, &cached) {
		uc.metrics.RecordLookup("cache_hit")
		return &cached, nil
	}

	// Concurrent identical lookups share one build. The build is detached from
	// the caller so an abandoned request still warms the cache for the others,
	// while the caller itself returns as soon as its context ends.
	flight := uc.flights.DoChan(key, func() (interface{}, error) {
		return uc.buildAggregate(context.WithoutCancel(ctx), city, key)
	})

	select {
	case <-ctx.Done():
		uc.metrics.RecordLookup("abandoned")
		uc.logger.Debug("Weather lookup abandoned by caller",
			ports.F("city", city),
			ports.F("error", ctx.Err()))
		return nil, fmt.Errorf("lookup weather for city %s: %w", city, ctx.Err())
	case result := <-flight:
		if result.Err != nil {
			uc.metrics.RecordLookup("failure")
			uc.logger.Warn("Weather lookup failed",
				ports.F("city", city),
				ports.F("error", result.Err))
			return nil, fmt.Errorf("lookup weather for city %s: %w", city, result.Err)
		}

		uc.metrics.RecordLookup("success")
		aggregate := result.Val.(*Aggregate)
		uc.logger.Debug("Weather lookup completed",
			ports.F("city", aggregate.CityName),
			ports.F("shared", result.Shared))
		return aggregate, nil
	}
}

// SuggestPlaces returns up to five place candidates for autocomplete.
// Short queries and upstream failures yield an empty list.
func (uc *UseCase) SuggestPlaces(ctx context.Context, query string) []Place {
	query = strings.TrimSpace(query)
	if !validation.HasMinRunes(query, minSuggestionLength) {
		return []Place{}
	}

	ttl := uc.config.GetLookupConfig().SuggestionsTTL
	places, err := cachedFetch(ctx, uc, ClassSuggestions, suggestionsKey(query), ttl,
		func(ctx context.Context) ([]Place, error) {
			found, err := uc.places.SearchPlaces(ctx, query, suggestionLimit)
			if err != nil {
				return nil, err
			}
			places := make([]Place, 0, len(found))
			for _, p := range found {
				places = append(places, convertPlace(p))
			}
			return places, nil
		})
	if err != nil {
		uc.logger.Warn("Place suggestions unavailable",
			ports.F("query", query),
			ports.F("error", err))
		return []Place{}
	}
	if places == nil {
		return []Place{}
	}
	return places
}

func (uc *UseCase) buildAggregate(ctx context.Context, city, key string) (*Aggregate, error) {
	cfg := uc.config.GetLookupConfig()

	placeData, err := uc.places.ResolvePlace(ctx, city)
	if err != nil {
		return nil, upstreamError("resolve place", err)
	}
	place := convertPlace(*placeData)
	uc.logger.Debug("Resolved place",
		ports.F("query", city),
		ports.F("place", place.DisplayName()))

	forecastData, err := uc.forecasts.FetchForecast(ctx, place.Latitude, place.Longitude)
	if err != nil {
		return nil, upstreamError("fetch forecast", err)
	}
	forecast := convertForecast(forecastData)

	description := uc.fetchDescription(ctx, place.Name, cfg)

	aggregate := &Aggregate{
		Forecast:    forecast,
		CityName:    place.Name,
		Country:     place.Country,
		Conditions:  WeatherCodeDescription(forecast.Current.WeatherCode),
		Description: description,
	}

	var g errgroup.Group
	g.Go(func() error {
		aggregate.Images = uc.fetchImages(ctx, place.Name, cfg)
		return nil
	})
	g.Go(func() error {
		aggregate.VideoID = uc.fetchVideo(ctx, place.Name, cfg)
		return nil
	})
	g.Go(func() error {
		aggregate.News = uc.fetchNews(ctx, place.Name, cfg)
		return nil
	})
	g.Go(func() error {
		aggregate.Travel = uc.fetchTravel(ctx, place.Name, cfg)
		return nil
	})
	_ = g.Wait()

	uc.writeCache(ctx, key, aggregate, cfg.AggregateTTL)
	return aggregate, nil
}

func (uc *UseCase) fetchDescription(ctx context.Context, place string, cfg ports.LookupConfig) string {
	taskCtx, cancel := context.WithTimeout(ctx, cfg.EnrichmentTimeout)
	defer cancel()

	description, err := cachedFetch(taskCtx, uc, ClassDescription, descriptionKey(place), cfg.DescriptionTTL,
		func(ctx context.Context) (string, error) {
			return uc.descriptions.FetchDescription(ctx, place)
		})
	if err != nil {
		uc.enrichmentFailed(taskDescription, place, err)
		return fmt.Sprintf("%s is a beautiful city waiting to be explored. Check back soon for more detailed information!", place)
	}
	return description
}

func (uc *UseCase) fetchImages(ctx context.Context, place string, cfg ports.LookupConfig) []string {
	taskCtx, cancel := context.WithTimeout(ctx, cfg.EnrichmentTimeout)
	defer cancel()

	images, err := cachedFetch(taskCtx, uc, ClassImages, imagesKey(place), cfg.ImagesTTL,
		func(ctx context.Context) ([]string, error) {
			images, err := uc.images.FetchImages(ctx, place)
			if err != nil {
				return nil, err
			}
			if len(images) > MaxImages {
				images = images[:MaxImages]
			}
			if images == nil {
				images = []string{}
			}
			return images, nil
		})
	if err != nil {
		uc.enrichmentFailed(taskImages, place, err)
		return []string{}
	}
	if images == nil {
		return []string{}
	}
	return images
}

func (uc *UseCase) fetchVideo(ctx context.Context, place string, cfg ports.LookupConfig) string {
	taskCtx, cancel := context.WithTimeout(ctx, cfg.EnrichmentTimeout)
	defer cancel()

	videoID, err := cachedFetch(taskCtx, uc, ClassVideo, videoKey(place), cfg.VideoTTL,
		func(ctx context.Context) (string, error) {
			return uc.videos.ResolveVideoID(ctx, place)
		})
	if err != nil || videoID == "" {
		if err != nil {
			uc.enrichmentFailed(taskVideo, place, err)
		}
		return cfg.DefaultVideoID
	}
	return videoID
}

func (uc *UseCase) fetchNews(ctx context.Context, place string, cfg ports.LookupConfig) []Headline {
	taskCtx, cancel := context.WithTimeout(ctx, cfg.EnrichmentTimeout)
	defer cancel()

	news, err := cachedFetch(taskCtx, uc, ClassNews, newsKey(place), cfg.NewsTTL,
		func(ctx context.Context) ([]Headline, error) {
			items, err := uc.news.FetchNews(ctx, place)
			if err != nil {
				return nil, err
			}
			headlines := make([]Headline, 0, len(items))
			for _, item := range items {
				if len(headlines) == MaxHeadlines {
					break
				}
				headlines = append(headlines, Headline{
					Title:   item.Title,
					Link:    item.Link,
					PubDate: item.PubDate,
					Source:  item.Source,
				})
			}
			return headlines, nil
		})
	if err != nil {
		uc.enrichmentFailed(taskNews, place, err)
		return []Headline{}
	}
	if news == nil {
		return []Headline{}
	}
	return news
}

// Travel guides are not cached on their own; they live only inside the aggregate.
func (uc *UseCase) fetchTravel(ctx context.Context, place string, cfg ports.LookupConfig) map[string]string {
	taskCtx, cancel := context.WithTimeout(ctx, cfg.EnrichmentTimeout)
	defer cancel()

	travel, err := uc.travel.FetchTravelTips(taskCtx, place)
	if err != nil {
		uc.enrichmentFailed(taskTravel, place, err)
		return nil
	}
	return travel
}

func (uc *UseCase) enrichmentFailed(task, place string, err error) {
	uc.metrics.RecordEnrichmentFallback(task)
	uc.logger.Warn("Enrichment failed, using fallback",
		ports.F("task", task),
		ports.F("city", place),
		ports.F("error", err))
}

// cachedFetch returns the cached value under key, or calls fetch and caches its
// result. Failed fetches are never cached.
func cachedFetch[T any](ctx context.Context, uc *UseCase, class, key string, ttl time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	var cached T
	if uc.readCache(ctx, key, class, &cached) {
		return cached, nil
	}

	value, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	uc.writeCache(ctx, key, value, ttl)
	return value, nil
}

// readCache treats cache failures as misses
func (uc *UseCase) readCache(ctx context.Context, key, class string, target interface{}) bool {
	found, err := uc.cache.Get(ctx, key, target)
	if err != nil {
		uc.logger.Warn("Cache read failed",
			ports.F("key", key),
			ports.F("error", err))
		found = false
	}

	if found {
		uc.metrics.RecordCacheHit(class)
		uc.logger.Debug("Cache hit", ports.F("key", key))
		return true
	}
	uc.metrics.RecordCacheMiss(class)
	return false
}

func (uc *UseCase) writeCache(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if err := uc.cache.Set(ctx, key, value, ttl); err != nil {
		uc.logger.Warn("Failed to cache value",
			ports.F("key", key),
			ports.F("error", err))
	}
}

// upstreamError keeps typed errors from adapters and classifies the rest as
// external failures
func upstreamError(operation string, err error) error {
	if errors.TypeOf(err) != errors.ErrorTypeUnknown {
		return err
	}
	return errors.NewExternalAPIError(operation+" failed", err)
}

func convertPlace(data ports.PlaceData) Place {
	return Place{
		Name:        data.Name,
		Country:     data.Country,
		CountryCode: data.CountryCode,
		Admin1:      data.Admin1,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Timezone:    data.Timezone,
		Population:  data.Population,
	}
}

func convertForecast(data *ports.ForecastData) Forecast {
	return Forecast{
		Latitude:             data.Latitude,
		Longitude:            data.Longitude,
		Elevation:            data.Elevation,
		Timezone:             data.Timezone,
		TimezoneAbbreviation: data.TimezoneAbbreviation,
		UTCOffsetSeconds:     data.UTCOffsetSeconds,
		Current: CurrentConditions{
			Time:                data.Current.Time,
			Temperature:         data.Current.Temperature,
			RelativeHumidity:    data.Current.RelativeHumidity,
			ApparentTemperature: data.Current.ApparentTemperature,
			Precipitation:       data.Current.Precipitation,
			Rain:                data.Current.Rain,
			Showers:             data.Current.Showers,
			Snowfall:            data.Current.Snowfall,
			WeatherCode:         data.Current.WeatherCode,
			CloudCover:          data.Current.CloudCover,
			WindSpeed:           data.Current.WindSpeed,
		},
		CurrentUnits: data.CurrentUnits,
		Daily: DailyForecast{
			Time:           data.Daily.Time,
			WeatherCode:    data.Daily.WeatherCode,
			TemperatureMax: data.Daily.TemperatureMax,
			TemperatureMin: data.Daily.TemperatureMin,
		},
		DailyUnits: data.DailyUnits,
	}
}

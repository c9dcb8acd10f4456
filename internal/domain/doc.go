// Package domain models forecast documents and rendered report lines.
//
// # Data Source
//
// Forecast documents follow the Dark Sky (forecast.io) response shape. The
// upstream collector fetches them, resolves the requested place name through
// its geocoder, and publishes one JSON request per chat command to the Kafka
// source topic:
//
//	{"id": "...", "kind": "conditions", "location": {...}, "forecast": {...}}
//
// # Forecast Blocks
//
// A forecast carries up to three data blocks, each an ordered series of
// per-timestep data points:
//
//	minutely: ~60 points, one per minute (precipProbability, precipIntensity)
//	hourly:   ~48 points, one per hour (temperature, windSpeed, windBearing)
//	daily:    ~8 points, one per day (cloudCover)
//
// A block is absent (null) when the provider has no data at that resolution,
// e.g. minute-by-minute precipitation outside supported regions. Renderers
// substitute a placeholder sentence for absent blocks instead of failing.
//
// # Units
//
// Documents are requested in US units: temperature in °F, wind speed in mph,
// bearing in degrees the wind blows from (0 = from the north), probabilities
// and cloud cover as fractions in [0,1], intensity in inches per hour.
// Conversion to metric happens only at display time.
//
// # Report Kinds
//
//	rain         minute-by-minute precipitation probability
//	intensity    minute-by-minute precipitation intensity
//	temperature  next 24 hours of temperature
//	wind         next 24 hours of wind direction, coloured by speed
//	conditions   temperature, wind, sun chance and rain on one line
package domain

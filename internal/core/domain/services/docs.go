// Package services provides domain services that implement business logic
// spanning more than one aggregate or belonging to no aggregate at all.
//
// The package includes:
//   - Tariff: the weight-tiered pricing engine producing PriceQuotes
//   - ParcelDispatcher: a domain service matching parcels with couriers
//
// Domain services stay free of infrastructure concerns. Persistence,
// transport and caching live in the adapters layer.
package services

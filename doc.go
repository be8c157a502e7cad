// Package fxroute finds currency conversion routes over a table of
// pairwise exchange rates.
//
// A rate table such as {"GELEGP": 5.1432, "EGPGMD": 3.3421, ...} becomes a
// directed graph with one node per currency code and one edge per quoted
// conversion. A breadth-first search picks the route with the fewest
// conversions, and the rates along it are multiplied exactly.
//
//	rate, path, err := converter.FindRateAndRoute("GELHKD", rates)
//	// rate = 2.53843039379185890192, path = "GEL EGP GMD CRC SEK HKD"
//
// Packages, leaves first:
//
//	core/      currency codes, quotes and the immutable rate graph
//	bfs/       breadth-first search with hop limits, hooks and cancellation
//	route/     path reconstruction and exact rate compounding
//	ratetable/ YAML rate tables
//	config/    viper/godotenv configuration
//	logging/   logrus setup
//	converter/ concurrent lookups with an optional route cache
//
// A built graph is never mutated, so any number of goroutines may query
// it at once. All search state lives in a per-query bfs.SearchState.
package fxroute

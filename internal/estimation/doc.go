// Package estimation defines a pluggable COVID-19 impact estimator.
//
// Each scenario of the projection (best case, severe case) is encapsulated in one Calculator,
// and the Engine normalizes the requested time window once and aggregates the per-scenario results.
package estimation

// Package diag defines the diagnostic model shared by the type database
// and the tooling built on it.
//
// Diagnostic is the central record: a severity, a stable code, a message,
// the primary source span and optional notes pointing at related spans.
// Producers emit through a Reporter so they stay decoupled from storage;
// BagReporter collects into a Bag, which supports deterministic sorting
// and deduplication for output.
//
// The package performs no formatting or IO of its own. Rendering lives in
// internal/diagfmt.
package diag

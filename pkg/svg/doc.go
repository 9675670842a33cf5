// Package svg defines the public contracts for template documents: sources,
// the parsed document wrapper, the loader and metrics-extractor interfaces,
// and the labeled-node vocabulary shared between template authoring and
// generation. Implementations live under internal/svg.
package svg

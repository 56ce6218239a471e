// Package animal defines the animal Record consumed by the card renderers,
// decoding helpers for JSON and YAML data files, and the attribute index and
// filter used by the local pipeline.
//
// Records are read-only. Every optional field carries explicit absence
// semantics: nil pointers, nil maps, and empty slices mean "not provided".
package animal

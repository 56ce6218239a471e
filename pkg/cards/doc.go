// Package cards serializes animal records into the HTML list-item fragments
// inserted into the animals page shell.
//
// A Serializer is stateless once constructed and safe to reuse; rendering the
// same record twice yields identical output.
package cards

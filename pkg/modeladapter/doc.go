// Package modeladapter defines the model capability contract consumed by
// evaluation harnesses and the shared pieces concrete adapters build on.
//
// It contains:
//   - [Generator] and [Model] interfaces mirroring the harness contract (generate, async generate, model name)
//   - embeddable [ModelAdapter] base struct holding the model identifier, base URL, headers, and HTTP client
//   - [Go] and [Await] for running a generation on its own goroutine
//   - [WithLogging] decorator that logs every generation with a request id
//
// This package contains no provider-specific code. Concrete adapters live in
// separate packages under pkg/providers that import modeladapter.
package modeladapter

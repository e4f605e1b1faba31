// Package providers groups the concrete model adapters.
//
// It is organized into sub-packages:
//   - [github.com/germanamz/evalbridge/pkg/providers/openrouter] — OpenRouter gateway adapter built on the OpenAI SDK
//
// Shared types and the capability contract live in
// [github.com/germanamz/evalbridge/pkg/modeladapter].
package providers

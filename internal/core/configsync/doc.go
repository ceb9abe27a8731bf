// Package configsync reconciles concurrent updates to a session's multimodal
// configuration
//
// A Session owns one configuration value. Updates from the user, the assistant,
// and the system enter through the Merger, are serialized by a single consumer
// Queue, pass the priority Arbiter, and once applied are reported to external
// consumers through a debounced, de-duplicated Emitter.
//
// Time comes from an injectable clock so every delay in the package (queue
// spacing and the emitter quiet window) can be driven by a mock in tests.
package configsync

// Package domain translates MCP tool calls into event domain commands.
//
// The package is intentionally explicit about that mapping:
// - decode MCP tool inputs into typed domain inputs,
// - route calls to the injected domain services,
// - and surface structured outputs that MCP clients can render.
//
// Handlers receive their dependencies from the caller so transports and tests
// decide which implementation backs each tool.
package domain

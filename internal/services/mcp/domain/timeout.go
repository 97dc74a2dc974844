package domain

import "time"

// toolCallTimeout caps the time for a single domain call from an MCP tool
// handler.
const toolCallTimeout = 5 * time.Second

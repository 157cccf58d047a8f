// Package domain defines the MCP tool and resource surface of the campaign
// engine: input/output schemas, tool definitions, and the handlers that bind
// them to the engine service.
package domain

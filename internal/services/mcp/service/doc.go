// Package service hosts the MCP server that exposes the campaign engine to
// faction clients over stdio.
package service

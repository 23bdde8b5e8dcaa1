// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/vegwatch/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Vegwatch MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Vegwatch Change Detection Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: evaluate_change ---
	s.AddTool(mcp.NewTool("evaluate_change",
		mcp.WithDescription("Evaluate a vegetation-index time series for significant change between its older and newer halves."),
		mcp.WithString("samples_path", mcp.Description("Path to the samples file (CSV or JSON)."), mcp.Required()),
		mcp.WithString("statistic", mcp.Description("Change statistic (splitmean, ttest, trend). Defaults to 'splitmean'."), mcp.Enum("splitmean", "ttest", "trend")),
		mcp.WithNumber("threshold", mcp.Description("Split-mean change threshold on the raw delta.")),
		mcp.WithNumber("alpha", mcp.Description("Significance level for ttest and trend statistics.")),
	), h.handleEvaluateChange)

	// --- 2. Tool: evaluate_batch ---
	s.AddTool(mcp.NewTool("evaluate_batch",
		mcp.WithDescription("Evaluate many AOI series concurrently and rank them by change confidence."),
		mcp.WithString("samples_path", mcp.Description("Path to a directory of sample files or a JSON manifest."), mcp.Required()),
		mcp.WithString("statistic", mcp.Description("Change statistic (splitmean, ttest, trend)."), mcp.Enum("splitmean", "ttest", "trend")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleEvaluateBatch)

	// --- 3. Tool: get_series ---
	s.AddTool(mcp.NewTool("get_series",
		mcp.WithDescription("Normalize a time series and return the clean samples plus normalization diagnostics."),
		mcp.WithString("samples_path", mcp.Description("Path to the samples file (CSV or JSON)."), mcp.Required()),
	), h.handleGetSeries)

	return s
}

// StartMCPServer starts the Vegwatch MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}

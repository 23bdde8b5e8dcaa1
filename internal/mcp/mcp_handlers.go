package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/vegwatch/core"
	"github.com/huangsam/vegwatch/internal/contract"
	"github.com/huangsam/vegwatch/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

func (h *toolHandler) handleEvaluateChange(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.SamplesPath = request.GetString("samples_path", "")
	if cfg.SamplesPath == "" {
		return mcp.NewToolResultError("samples_path is required"), nil
	}
	if s := request.GetString("statistic", ""); s != "" {
		cfg.Statistic = schema.StatisticMode(s)
	}
	if t := request.GetFloat("threshold", 0); t > 0 {
		cfg.Threshold = t
	}
	if a := request.GetFloat("alpha", 0); a > 0 && a < 1 {
		cfg.Alpha = a
	}

	assessment, err := core.GetEvaluateResult(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(assessment, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleEvaluateBatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.SamplesPath = request.GetString("samples_path", "")
	if cfg.SamplesPath == "" {
		return mcp.NewToolResultError("samples_path is required"), nil
	}
	if s := request.GetString("statistic", ""); s != "" {
		cfg.Statistic = schema.StatisticMode(s)
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	result, err := core.GetBatchResult(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("batch evaluation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSeries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.SamplesPath = request.GetString("samples_path", "")
	if cfg.SamplesPath == "" {
		return mcp.NewToolResultError("samples_path is required"), nil
	}

	series, err := core.GetSeriesResult(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("normalization failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(series, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

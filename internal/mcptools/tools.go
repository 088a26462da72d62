// Package mcptools 通过 MCP 暴露与网页相同的查询
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Elton0803/Pokemon-Tool/internal/model"
	"github.com/Elton0803/Pokemon-Tool/internal/service/matchup"
	"github.com/Elton0803/Pokemon-Tool/internal/util"
)

// DefaultLimit 默认返回的排名条数
const DefaultLimit = 20

// ToolInfo 已注册工具的摘要
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ListTypesArgs struct {
	Kind string `json:"kind" jsonschema:"Dataset: attack|defense|dps"`
}

type SelectionArgs struct {
	Type1 string `json:"type1" jsonschema:"Opponent (defending) primary type, e.g. 火"`
	Type2 string `json:"type2,omitempty" jsonschema:"Opponent secondary type; empty or 無 for none"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max rows (default 20)"`
}

type DefenseArgs struct {
	Attacker string `json:"attacker" jsonschema:"Opponent (attacking) type, e.g. 水"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Max rows (default 20)"`
}

type WeaknessArgs struct {
	Type1 string `json:"type1" jsonschema:"Defending primary type"`
	Type2 string `json:"type2,omitempty" jsonschema:"Defending secondary type; empty or 無 for none"`
}

// rankedRow 工具输出的一行
type rankedRow struct {
	Rank       int    `json:"rank"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Multiplier string `json:"multiplier"`
	Value      string `json:"value"`
	Strength   string `json:"strength,omitempty"`
}

// NewServer 创建 MCP 服务并注册全部工具
func NewServer(svc *matchup.Service, version string) (*mcp.Server, []ToolInfo) {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "pokemon-tool",
		Version: version,
	}, nil)

	registry := make([]ToolInfo, 0, 5)

	addTool(server, &registry, &mcp.Tool{
		Name:        "list_types",
		Description: "Type selector options (defending, secondary, attacking) for a dataset's type chart",
	}, listTypesHandler(svc))

	addTool(server, &registry, &mcp.Tool{
		Name:        "attack_ranking",
		Description: "Max battle attack output ranking against a defending type pair",
	}, attackRankingHandler(svc))

	addTool(server, &registry, &mcp.Tool{
		Name:        "defense_ranking",
		Description: "Max battle bulk ranking against an attacking type",
	}, defenseRankingHandler(svc))

	addTool(server, &registry, &mcp.Tool{
		Name:        "dps_ranking",
		Description: "DPS ranking against a defending type pair",
	}, dpsRankingHandler(svc))

	addTool(server, &registry, &mcp.Tool{
		Name:        "type_weakness",
		Description: "Multiplier of every attacking type against a defending type pair",
	}, weaknessHandler(svc))

	return server, registry
}

// Handler streamable HTTP 入口
func Handler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})
}

func addTool[T any](server *mcp.Server, registry *[]ToolInfo, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, ToolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server, tool, handler)
}

func listTypesHandler(svc *matchup.Service) func(context.Context, *mcp.CallToolRequest, ListTypesArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args ListTypesArgs) (*mcp.CallToolResult, any, error) {
		kind := model.DatasetKind(strings.TrimSpace(args.Kind))
		if kind == "" {
			return toolError(fmt.Errorf("kind is required")), nil, nil
		}
		opts, err := svc.Options(kind)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(json.Marshal(opts))
	}
}

func attackRankingHandler(svc *matchup.Service) func(context.Context, *mcp.CallToolRequest, SelectionArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args SelectionArgs) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(args.Type1) == "" {
			return toolError(fmt.Errorf("type1 is required")), nil, nil
		}
		rows, err := svc.AttackRanking(model.Selection{Type1: args.Type1, Type2: args.Type2})
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(json.Marshal(toRanked(rows, args.Limit, true)))
	}
}

func defenseRankingHandler(svc *matchup.Service) func(context.Context, *mcp.CallToolRequest, DefenseArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args DefenseArgs) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(args.Attacker) == "" {
			return toolError(fmt.Errorf("attacker is required")), nil, nil
		}
		rows, err := svc.DefenseRanking(args.Attacker)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(json.Marshal(toRanked(rows, args.Limit, false)))
	}
}

func dpsRankingHandler(svc *matchup.Service) func(context.Context, *mcp.CallToolRequest, SelectionArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args SelectionArgs) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(args.Type1) == "" {
			return toolError(fmt.Errorf("type1 is required")), nil, nil
		}
		rows, err := svc.DPSRanking(model.Selection{Type1: args.Type1, Type2: args.Type2})
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(json.Marshal(toRanked(rows, args.Limit, false)))
	}
}

func weaknessHandler(svc *matchup.Service) func(context.Context, *mcp.CallToolRequest, WeaknessArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args WeaknessArgs) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(args.Type1) == "" {
			return toolError(fmt.Errorf("type1 is required")), nil, nil
		}
		rows, err := svc.Weakness(model.Selection{Type1: args.Type1, Type2: args.Type2})
		if err != nil {
			return toolError(err), nil, nil
		}
		// 弱点表条目很少，全部返回
		return toolJSON(json.Marshal(toRanked(rows, len(rows), false)))
	}
}

func toRanked(rows []model.ResultRow, limit int, withStrength bool) []rankedRow {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > len(rows) {
		limit = len(rows)
	}
	out := make([]rankedRow, 0, limit)
	for i, r := range rows[:limit] {
		row := rankedRow{
			Rank:       i + 1,
			Name:       r.Name,
			Type:       r.TypeLabel,
			Multiplier: r.MultiplierLabel,
			Value:      r.Display,
		}
		if withStrength {
			row.Strength = util.FormatPercent(r.StrengthPercent)
		}
		out = append(out, row)
	}
	return out
}

func toolJSON(res []byte, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return toolError(err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(res)},
		},
	}, nil, nil
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}

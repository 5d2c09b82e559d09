package mcpsrv

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/qyinm/staffdir/directory"
	"github.com/qyinm/staffdir/format"
	"github.com/qyinm/staffdir/logging"
	"github.com/qyinm/staffdir/mcpsrv/dto"
	"github.com/qyinm/staffdir/types"
)

const (
	defaultSearchLimit = 25
	maxSearchLimit     = 100
)

type directorySearchArgs struct {
	Query string `json:"query,omitempty" jsonschema:"Case-insensitive text matched against name, job or phone; empty lists everyone"`
	Limit int    `json:"limit,omitempty" jsonschema:"Optional maximum number of employees (default 25, max 100)"`
}

type employeeGetArgs struct {
	ID string `json:"id" jsonschema:"Employee id"`
}

type directorySearchOutput struct {
	Query    string         `json:"query"`
	Total    int            `json:"total"`
	Returned int            `json:"returned"`
	Items    []dto.Employee `json:"items"`
}

type employeeGetOutput struct {
	Item dto.Employee `json:"item"`
}

type cacheClearOutput struct {
	Status string `json:"status"`
}

type ServerOptions struct {
	EnableAdmin bool
	APIKey      string
	AssetDir    string
}

type cacheClearSource interface {
	ClearCache()
}

func NewServer(source types.EmployeeSource, version string, opts *ServerOptions) *mcp.Server {
	if strings.TrimSpace(version) == "" {
		version = "dev"
	}
	if opts == nil {
		opts = &ServerOptions{}
	}
	assetDir := opts.AssetDir
	if assetDir == "" {
		assetDir = format.DefaultAssetDir
	}

	server := mcp.NewServer(&mcp.Implementation{Name: "staffdir", Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "directory_search",
		Description: "Search the employee directory by name, job or phone.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args directorySearchArgs) (*mcp.CallToolResult, directorySearchOutput, error) {
		return directorySearchHandler(ctx, req, args, source, assetDir)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "employee_get",
		Description: "Get one employee by id.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args employeeGetArgs) (*mcp.CallToolResult, employeeGetOutput, error) {
		return employeeGetHandler(ctx, req, args, source, assetDir)
	})

	if opts.EnableAdmin && strings.TrimSpace(opts.APIKey) != "" {
		mcp.AddTool(server, &mcp.Tool{
			Name:        "cache_clear",
			Description: "Clear the resolved employee cache (admin).",
		}, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, cacheClearOutput, error) {
			return cacheClearHandler(ctx, req, source)
		})
	}

	return server
}

func directorySearchHandler(ctx context.Context, _ *mcp.CallToolRequest, args directorySearchArgs, source types.EmployeeSource, assetDir string) (*mcp.CallToolResult, directorySearchOutput, error) {
	limit := args.Limit
	if limit < 0 {
		return errorToolResult("limit must not be negative"), directorySearchOutput{}, nil
	}
	if limit == 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	employees, err := source.GetEmployees(ctx)
	if err != nil {
		logging.Error("directory_search: resolve employees", "err", err)
		return errorToolResult("fetch employees failed"), directorySearchOutput{}, nil
	}

	matched := directory.Filter(employees, args.Query)
	page := matched
	if len(page) > limit {
		page = page[:limit]
	}

	return nil, directorySearchOutput{
		Query:    args.Query,
		Total:    len(matched),
		Returned: len(page),
		Items:    dto.FromEmployees(page, assetDir),
	}, nil
}

func employeeGetHandler(ctx context.Context, _ *mcp.CallToolRequest, args employeeGetArgs, source types.EmployeeSource, assetDir string) (*mcp.CallToolResult, employeeGetOutput, error) {
	id := strings.TrimSpace(args.ID)
	if id == "" {
		return errorToolResult("id is required"), employeeGetOutput{}, nil
	}

	employees, err := source.GetEmployees(ctx)
	if err != nil {
		logging.Error("employee_get: resolve employees", "err", err)
		return errorToolResult("fetch employees failed"), employeeGetOutput{}, nil
	}

	for _, e := range employees {
		if e.ID() == id {
			return nil, employeeGetOutput{Item: dto.FromEmployee(e, assetDir)}, nil
		}
	}
	return errorToolResult(fmt.Sprintf("employee %q not found", id)), employeeGetOutput{}, nil
}

func cacheClearHandler(_ context.Context, _ *mcp.CallToolRequest, source types.EmployeeSource) (*mcp.CallToolResult, cacheClearOutput, error) {
	clearable, ok := source.(cacheClearSource)
	if !ok {
		return errorToolResult("cache clear is not supported by this source"), cacheClearOutput{}, nil
	}
	clearable.ClearCache()
	logging.Info("employee cache cleared")
	return nil, cacheClearOutput{Status: "ok"}, nil
}

func errorToolResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}

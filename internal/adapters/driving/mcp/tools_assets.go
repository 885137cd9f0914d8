package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

// CreateAssetInput is the input schema for create_asset.
type CreateAssetInput struct {
	AssetName     string        `json:"asset_name" jsonschema:"the asset's display name"`
	AssetCategory string        `json:"asset_category" jsonschema:"the category the asset belongs to"`
	ItemCode      string        `json:"item_code" jsonschema:"the fixed-asset item the asset is an instance of"`
	Extra         domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateAssetCategoryInput is the input schema for create_asset_category.
type CreateAssetCategoryInput struct {
	AssetCategoryName          string        `json:"asset_category_name" jsonschema:"the new category name"`
	TotalNumberOfDepreciations int           `json:"total_number_of_depreciations,omitempty" jsonschema:"depreciation cycles (default 10)"`
	FrequencyOfDepreciation    int           `json:"frequency_of_depreciation,omitempty" jsonschema:"months between depreciations (default 12)"`
	Extra                      domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateAssetMaintenanceInput is the input schema for create_asset_maintenance.
type CreateAssetMaintenanceInput struct {
	Asset           string        `json:"asset" jsonschema:"the asset to maintain"`
	MaintenanceType string        `json:"maintenance_type" jsonschema:"Preventive Maintenance or Calibration"`
	Periodicity     string        `json:"periodicity" jsonschema:"Daily, Weekly, Monthly, Quarterly, Half-yearly or Yearly"`
	Extra           domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateAssetMovementInput is the input schema for create_asset_movement.
type CreateAssetMovementInput struct {
	Asset   string        `json:"asset" jsonschema:"the asset being moved"`
	Purpose string        `json:"purpose" jsonschema:"Issue, Receipt or Transfer"`
	Extra   domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// AssetInput identifies a single asset.
type AssetInput struct {
	Asset string `json:"asset" jsonschema:"the asset name (ID)"`
}

// TransferAssetInput is the input schema for transfer_asset.
type TransferAssetInput struct {
	Asset          string        `json:"asset" jsonschema:"the asset being transferred"`
	TargetLocation string        `json:"target_location,omitempty" jsonschema:"the destination location"`
	ToEmployee     string        `json:"to_employee,omitempty" jsonschema:"the employee receiving custody"`
	Extra          domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// GetAssetsListInput is the input schema for get_assets_list.
type GetAssetsListInput struct {
	AssetCategory string `json:"asset_category,omitempty" jsonschema:"filter by category"`
	Status        string `json:"status,omitempty" jsonschema:"filter by status"`
	Limit         int    `json:"limit,omitempty" jsonschema:"maximum number of records to return (default 20)"`
}

// GetAssetMaintenanceListInput is the input schema for get_asset_maintenance_list.
type GetAssetMaintenanceListInput struct {
	Asset string `json:"asset,omitempty" jsonschema:"filter by asset"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of records to return (default 20)"`
}

func (s *Server) registerAssetsTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_asset",
		Description: "Create a fixed asset record",
	}, s.handleCreateAsset)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_asset_category",
		Description: "Create an asset category with depreciation defaults",
	}, s.handleCreateAssetCategory)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_asset_maintenance",
		Description: "Schedule maintenance for an asset",
	}, s.handleCreateAssetMaintenance)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_asset_movement",
		Description: "Record an asset movement",
	}, s.handleCreateAssetMovement)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_asset_depreciation",
		Description: "Post a depreciation entry for an asset",
	}, s.handleCreateAssetDepreciation)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "transfer_asset",
		Description: "Transfer an asset to a new location or custodian",
	}, s.handleTransferAsset)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_assets_list",
		Description: "List assets, optionally filtered by category and status",
	}, s.handleGetAssetsList)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_asset_maintenance_list",
		Description: "List asset maintenance schedules",
	}, s.handleGetAssetMaintenanceList)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_assets",
		Description: "Search assets by name",
	}, s.handleSearchAssets)
}

func (s *Server) handleCreateAsset(ctx context.Context, _ *mcp.CallToolRequest, in CreateAssetInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Assets.CreateAsset(ctx, in.AssetName, in.AssetCategory, in.ItemCode, in.Extra)
	return s.finish("create_asset", start, res)
}

func (s *Server) handleCreateAssetCategory(ctx context.Context, _ *mcp.CallToolRequest, in CreateAssetCategoryInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Assets.CreateAssetCategory(ctx, in.AssetCategoryName, in.TotalNumberOfDepreciations, in.FrequencyOfDepreciation, in.Extra)
	return s.finish("create_asset_category", start, res)
}

func (s *Server) handleCreateAssetMaintenance(ctx context.Context, _ *mcp.CallToolRequest, in CreateAssetMaintenanceInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Assets.CreateAssetMaintenance(ctx, in.Asset, in.MaintenanceType, in.Periodicity, in.Extra)
	return s.finish("create_asset_maintenance", start, res)
}

func (s *Server) handleCreateAssetMovement(ctx context.Context, _ *mcp.CallToolRequest, in CreateAssetMovementInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Assets.CreateAssetMovement(ctx, in.Asset, in.Purpose, in.Extra)
	return s.finish("create_asset_movement", start, res)
}

func (s *Server) handleCreateAssetDepreciation(ctx context.Context, _ *mcp.CallToolRequest, in AssetInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Assets.CreateAssetDepreciation(ctx, in.Asset)
	return s.finish("create_asset_depreciation", start, res)
}

func (s *Server) handleTransferAsset(ctx context.Context, _ *mcp.CallToolRequest, in TransferAssetInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Assets.TransferAsset(ctx, in.Asset, in.TargetLocation, in.ToEmployee, in.Extra)
	return s.finish("transfer_asset", start, res)
}

func (s *Server) handleGetAssetsList(ctx context.Context, _ *mcp.CallToolRequest, in GetAssetsListInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Assets.GetAssetsList(ctx, in.AssetCategory, in.Status, in.Limit)
	return s.finish("get_assets_list", start, res)
}

func (s *Server) handleGetAssetMaintenanceList(ctx context.Context, _ *mcp.CallToolRequest, in GetAssetMaintenanceListInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Assets.GetAssetMaintenanceList(ctx, in.Asset, in.Limit)
	return s.finish("get_asset_maintenance_list", start, res)
}

func (s *Server) handleSearchAssets(ctx context.Context, _ *mcp.CallToolRequest, in SearchInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Assets.SearchAssets(ctx, in.Query, in.Limit)
	return s.finish("search_assets", start, res)
}

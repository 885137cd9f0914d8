package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
	"github.com/asisaga/erpnext-mcp/internal/core/ports/driven"
	"github.com/asisaga/erpnext-mcp/internal/core/ports/driving"
)

// Ensure AssetsService implements the interface.
var _ driving.AssetsService = (*AssetsService)(nil)

// AssetsService handles fixed assets, maintenance, movement and
// depreciation.
type AssetsService struct {
	client driven.ERPClient
	log    *zap.Logger
}

// NewAssetsService creates a new assets service.
func NewAssetsService(client driven.ERPClient, log *zap.Logger) *AssetsService {
	return &AssetsService{client: client, log: log}
}

func (s *AssetsService) CreateAsset(ctx context.Context, assetName, assetCategory, itemCode string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating asset", zap.String("asset", assetName))

	rec := domain.Record{
		"asset_name":     assetName,
		"asset_category": assetCategory,
		"item_code":      itemCode,
	}
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeAsset)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeAsset, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Asset created successfully")
}

func (s *AssetsService) CreateAssetCategory(ctx context.Context, assetCategoryName string, totalNumberOfDepreciations, frequencyOfDepreciation int, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating asset category", zap.String("category", assetCategoryName))

	if totalNumberOfDepreciations <= 0 {
		totalNumberOfDepreciations = 10
	}
	if frequencyOfDepreciation <= 0 {
		frequencyOfDepreciation = 12
	}
	rec := domain.Record{
		"asset_category_name":           assetCategoryName,
		"total_number_of_depreciations": totalNumberOfDepreciations,
		"frequency_of_depreciation":     frequencyOfDepreciation,
	}
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeAssetCategory)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeAssetCategory, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Asset Category created successfully")
}

func (s *AssetsService) CreateAssetMaintenance(ctx context.Context, asset, maintenanceType, periodicity string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating asset maintenance", zap.String("asset", asset))

	rec := domain.Record{
		"asset_name":       asset,
		"maintenance_type": maintenanceType,
		"periodicity":      periodicity,
	}
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeAssetMaintenance)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeAssetMaintenance, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Asset Maintenance created successfully")
}

func (s *AssetsService) CreateAssetMovement(ctx context.Context, asset, purpose string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating asset movement", zap.String("asset", asset))

	rec := domain.Record{"asset": asset, "purpose": purpose}
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeAssetMovement)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeAssetMovement, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Asset Movement created successfully")
}

// CreateAssetDepreciation posts a depreciation entry through the
// server-side depreciation method rather than document CRUD.
func (s *AssetsService) CreateAssetDepreciation(ctx context.Context, asset string) *domain.OperationResult {
	s.log.Info("creating asset depreciation", zap.String("asset", asset))

	result, err := s.client.CallMethod(ctx,
		"erpnext.assets.doctype.asset.depreciation.make_depreciation_entry",
		domain.Record{"asset_name": asset})
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Asset Depreciation created successfully")
}

// TransferAsset creates a Transfer movement and submits it so the
// relocation takes effect. The returned payload is the draft movement.
func (s *AssetsService) TransferAsset(ctx context.Context, asset, targetLocation, toEmployee string, extra domain.Record) *domain.OperationResult {
	s.log.Info("transferring asset",
		zap.String("asset", asset),
		zap.String("target_location", targetLocation))

	rec := domain.Record{
		"asset":           asset,
		"purpose":         "Transfer",
		"target_location": targetLocation,
	}
	setIfNotEmpty(rec, "to_employee", toEmployee)
	rec = rec.Merge(extra)

	movement, err := s.client.CreateDocument(ctx, domain.DocTypeAssetMovement, rec)
	if err != nil {
		return domain.Fail(err)
	}

	name, _ := movement["name"].(string)
	if _, err := s.client.SubmitDocument(ctx, domain.DocTypeAssetMovement, name); err != nil {
		return domain.Fail(err)
	}

	return domain.Succeed(movement, "Asset transferred successfully")
}

func (s *AssetsService) GetAssetsList(ctx context.Context, assetCategory, status string, limit int) *domain.OperationResult {
	s.log.Info("getting assets list", zap.Int("limit", limit))

	var filters []domain.Filter
	if assetCategory != "" {
		filters = append(filters, domain.Eq("asset_category", assetCategory))
	}
	if status != "" {
		filters = append(filters, domain.Eq("status", status))
	}

	fields := []string{"name", "asset_name", "asset_category", "status", "location", "purchase_date"}
	result, err := s.client.ListDocuments(ctx, domain.DocTypeAsset, filters, fields, listLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, fmt.Sprintf("Retrieved %d assets", len(result)))
}

func (s *AssetsService) GetAssetMaintenanceList(ctx context.Context, asset string, limit int) *domain.OperationResult {
	s.log.Info("getting asset maintenance list", zap.Int("limit", limit))

	var filters []domain.Filter
	if asset != "" {
		filters = append(filters, domain.Eq("asset_name", asset))
	}

	fields := []string{"name", "asset_name", "maintenance_type", "periodicity", "next_due_date"}
	result, err := s.client.ListDocuments(ctx, domain.DocTypeAssetMaintenance, filters, fields, listLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, fmt.Sprintf("Retrieved %d maintenance records", len(result)))
}

func (s *AssetsService) SearchAssets(ctx context.Context, query string, limit int) *domain.OperationResult {
	s.log.Info("searching assets", zap.String("query", query))

	filters := []domain.Filter{domain.Like("asset_name", "%"+query+"%")}
	fields := []string{"name", "asset_name", "asset_category", "status", "location"}
	result, err := s.client.ListDocuments(ctx, domain.DocTypeAsset, filters, fields, searchLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, fmt.Sprintf("Found %d assets", len(result)))
}

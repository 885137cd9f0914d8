package driving

import (
	"context"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

// AssetsService covers fixed assets, categories, maintenance, movement
// and depreciation.
type AssetsService interface {
	CreateAsset(ctx context.Context, assetName, assetCategory, itemCode string, extra domain.Record) *domain.OperationResult

	// CreateAssetCategory creates an asset category.
	// totalNumberOfDepreciations defaults to 10 and
	// frequencyOfDepreciation to 12 months when zero.
	CreateAssetCategory(ctx context.Context, assetCategoryName string, totalNumberOfDepreciations, frequencyOfDepreciation int, extra domain.Record) *domain.OperationResult

	// CreateAssetMaintenance schedules maintenance. periodicity is
	// "Daily", "Weekly", "Monthly", "Quarterly", "Half-yearly" or
	// "Yearly".
	CreateAssetMaintenance(ctx context.Context, asset, maintenanceType, periodicity string, extra domain.Record) *domain.OperationResult

	// CreateAssetMovement records an asset movement. purpose is
	// "Issue", "Receipt" or "Transfer".
	CreateAssetMovement(ctx context.Context, asset, purpose string, extra domain.Record) *domain.OperationResult

	// CreateAssetDepreciation posts a depreciation entry through the
	// server-side depreciation method.
	CreateAssetDepreciation(ctx context.Context, asset string) *domain.OperationResult

	// TransferAsset creates a Transfer movement and submits it so the
	// relocation takes effect.
	TransferAsset(ctx context.Context, asset, targetLocation, toEmployee string, extra domain.Record) *domain.OperationResult

	GetAssetsList(ctx context.Context, assetCategory, status string, limit int) *domain.OperationResult

	GetAssetMaintenanceList(ctx context.Context, asset string, limit int) *domain.OperationResult

	SearchAssets(ctx context.Context, query string, limit int) *domain.OperationResult
}

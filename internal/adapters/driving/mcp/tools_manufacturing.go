package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

// CreateBOMInput is the input schema for create_bom.
type CreateBOMInput struct {
	Item     string          `json:"item" jsonschema:"the finished item the BOM produces"`
	Items    []domain.Record `json:"items" jsonschema:"component lines with item_code and qty"`
	Quantity float64         `json:"quantity,omitempty" jsonschema:"produced quantity per run (default 1)"`
	Extra    domain.Record   `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateWorkOrderInput is the input schema for create_work_order.
type CreateWorkOrderInput struct {
	ProductionItem   string        `json:"production_item" jsonschema:"the item to produce"`
	BOMNo            string        `json:"bom_no" jsonschema:"the BOM to produce against"`
	Qty              float64       `json:"qty" jsonschema:"quantity to produce"`
	PlannedStartDate string        `json:"planned_start_date,omitempty" jsonschema:"planned start (YYYY-MM-DD)"`
	Extra            domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateProductionPlanInput is the input schema for create_production_plan.
type CreateProductionPlanInput struct {
	Company      string          `json:"company" jsonschema:"the producing company"`
	ForWarehouse string          `json:"for_warehouse,omitempty" jsonschema:"warehouse the plan produces for"`
	Items        []domain.Record `json:"items" jsonschema:"planned items with item_code and planned_qty"`
	Extra        domain.Record   `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateJobCardInput is the input schema for create_job_card.
type CreateJobCardInput struct {
	WorkOrder   string        `json:"work_order" jsonschema:"the work order the card belongs to"`
	Operation   string        `json:"operation" jsonschema:"the manufacturing operation"`
	Workstation string        `json:"workstation,omitempty" jsonschema:"the workstation performing the operation"`
	Extra       domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateQualityInspectionInput is the input schema for create_quality_inspection.
type CreateQualityInspectionInput struct {
	InspectionType string        `json:"inspection_type" jsonschema:"Incoming, Outgoing or In Process"`
	ReferenceType  string        `json:"reference_type" jsonschema:"doctype of the inspected document"`
	ReferenceName  string        `json:"reference_name" jsonschema:"name of the inspected document"`
	ItemCode       string        `json:"item_code" jsonschema:"the item inspected"`
	Extra          domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// GetWorkOrdersListInput is the input schema for get_work_orders_list.
type GetWorkOrdersListInput struct {
	Status string `json:"status,omitempty" jsonschema:"filter by status"`
	Limit  int    `json:"limit,omitempty" jsonschema:"maximum number of records to return (default 20)"`
}

// GetBOMListInput is the input schema for get_bom_list.
type GetBOMListInput struct {
	Item  string `json:"item,omitempty" jsonschema:"filter by produced item"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of records to return (default 20)"`
}

func (s *Server) registerManufacturingTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_bom",
		Description: "Create a bill of materials",
	}, s.handleCreateBOM)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_work_order",
		Description: "Create a work order against a BOM",
	}, s.handleCreateWorkOrder)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_production_plan",
		Description: "Create a production plan",
	}, s.handleCreateProductionPlan)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_job_card",
		Description: "Create a job card for a work order operation",
	}, s.handleCreateJobCard)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_quality_inspection",
		Description: "Record a quality inspection",
	}, s.handleCreateQualityInspection)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "start_work_order",
		Description: "Submit a work order, moving it into production",
	}, s.handleStartWorkOrder)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "complete_work_order",
		Description: "Mark a work order as completed",
	}, s.handleCompleteWorkOrder)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_work_orders_list",
		Description: "List work orders, optionally filtered by status",
	}, s.handleGetWorkOrdersList)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_bom_list",
		Description: "List bills of materials, optionally filtered by item",
	}, s.handleGetBOMList)
}

func (s *Server) handleCreateBOM(ctx context.Context, _ *mcp.CallToolRequest, in CreateBOMInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Manufacturing.CreateBOM(ctx, in.Item, in.Items, in.Quantity, in.Extra)
	return s.finish("create_bom", start, res)
}

func (s *Server) handleCreateWorkOrder(ctx context.Context, _ *mcp.CallToolRequest, in CreateWorkOrderInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Manufacturing.CreateWorkOrder(ctx, in.ProductionItem, in.BOMNo, in.Qty, in.PlannedStartDate, in.Extra)
	return s.finish("create_work_order", start, res)
}

func (s *Server) handleCreateProductionPlan(ctx context.Context, _ *mcp.CallToolRequest, in CreateProductionPlanInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Manufacturing.CreateProductionPlan(ctx, in.Company, in.ForWarehouse, in.Items, in.Extra)
	return s.finish("create_production_plan", start, res)
}

func (s *Server) handleCreateJobCard(ctx context.Context, _ *mcp.CallToolRequest, in CreateJobCardInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Manufacturing.CreateJobCard(ctx, in.WorkOrder, in.Operation, in.Workstation, in.Extra)
	return s.finish("create_job_card", start, res)
}

func (s *Server) handleCreateQualityInspection(ctx context.Context, _ *mcp.CallToolRequest, in CreateQualityInspectionInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Manufacturing.CreateQualityInspection(ctx, in.InspectionType, in.ReferenceType, in.ReferenceName, in.ItemCode, in.Extra)
	return s.finish("create_quality_inspection", start, res)
}

func (s *Server) handleStartWorkOrder(ctx context.Context, _ *mcp.CallToolRequest, in DocumentNameInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Manufacturing.StartWorkOrder(ctx, in.Name)
	return s.finish("start_work_order", start, res)
}

func (s *Server) handleCompleteWorkOrder(ctx context.Context, _ *mcp.CallToolRequest, in DocumentNameInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Manufacturing.CompleteWorkOrder(ctx, in.Name)
	return s.finish("complete_work_order", start, res)
}

func (s *Server) handleGetWorkOrdersList(ctx context.Context, _ *mcp.CallToolRequest, in GetWorkOrdersListInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Manufacturing.GetWorkOrdersList(ctx, in.Status, in.Limit)
	return s.finish("get_work_orders_list", start, res)
}

func (s *Server) handleGetBOMList(ctx context.Context, _ *mcp.CallToolRequest, in GetBOMListInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Manufacturing.GetBOMList(ctx, in.Item, in.Limit)
	return s.finish("get_bom_list", start, res)
}

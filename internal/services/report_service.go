package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"binsight/internal/analytics"
	"binsight/internal/models"
	"binsight/internal/repositories"

	"github.com/jung-kurt/gofpdf"
	"github.com/labstack/gommon/random"
)

// reportListLimit fetches everything in one page; should paginate for very
// large inventories.
const reportListLimit = 10000

// ReportService exports inventory snapshots to object storage and returns a
// presigned download URL for each.
type ReportService interface {
	ExportInventoryCSV(ctx context.Context) (*models.ReportResult, error)
	ExportUtilizationPDF(ctx context.Context) (*models.ReportResult, error)
}

type reportService struct {
	inventoryRepo repositories.InventoryRepository
	layoutRepo    repositories.WarehouseLayoutRepository
	storage       ObjectStorage
	bucket        string
	urlExpiry     time.Duration
	now           func() time.Time
}

func NewReportService(inventoryRepo repositories.InventoryRepository, layoutRepo repositories.WarehouseLayoutRepository, storage ObjectStorage, bucket string, urlExpiry time.Duration) ReportService {
	return &reportService{
		inventoryRepo: inventoryRepo,
		layoutRepo:    layoutRepo,
		storage:       storage,
		bucket:        bucket,
		urlExpiry:     urlExpiry,
		now:           time.Now,
	}
}

func (s *reportService) ExportInventoryCSV(ctx context.Context) (*models.ReportResult, error) {
	items, err := s.inventoryRepo.List(ctx, reportListLimit, 0)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{"item_id", "item_name", "category", "length", "width", "height", "weight", "fragility", "expiry_date", "current_location", "entry_date"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, item := range items {
		expiry := ""
		if item.ExpiryDate != nil {
			expiry = item.ExpiryDate.Format(time.RFC3339)
		}
		record := []string{
			item.ItemID,
			item.ItemName,
			item.Category,
			formatFloat(item.Dimensions.Length),
			formatFloat(item.Dimensions.Width),
			formatFloat(item.Dimensions.Height),
			formatFloat(item.Weight),
			strconv.FormatBool(item.Fragility),
			expiry,
			item.CurrentLocation,
			item.EntryDate.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	result, err := s.store(ctx, s.objectName("inventory", "csv"), "text/csv", &buf)
	if err != nil {
		return nil, err
	}
	result.Records = len(items)
	return result, nil
}

func (s *reportService) ExportUtilizationPDF(ctx context.Context) (*models.ReportResult, error) {
	zones, err := s.layoutRepo.DistinctZones(ctx)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Warehouse Utilization Report")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", s.now().UTC().Format(time.RFC3339)))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(60, 8, "Zone", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Bins", "1", 0, "R", false, 0, "")
	pdf.CellFormat(50, 8, "Utilization %", "1", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 11)

	for _, zone := range zones {
		bins, err := s.layoutRepo.ListBinsByZone(ctx, zone)
		if err != nil {
			return nil, err
		}
		summary := analytics.Aggregate(bins)
		pdf.CellFormat(60, 8, zone, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, strconv.Itoa(len(bins)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 8, summary.PercentString(), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	result, err := s.store(ctx, s.objectName("utilization", "pdf"), "application/pdf", &buf)
	if err != nil {
		return nil, err
	}
	result.Records = len(zones)
	return result, nil
}

func (s *reportService) objectName(prefix, ext string) string {
	return fmt.Sprintf("%s-%s-%s.%s", prefix, s.now().UTC().Format("20060102-150405"), strings.ToLower(random.String(6)), ext)
}

func (s *reportService) store(ctx context.Context, objectName, contentType string, buf *bytes.Buffer) (*models.ReportResult, error) {
	if err := s.storage.EnsureBucketExists(ctx, s.bucket); err != nil {
		return nil, err
	}
	size := int64(buf.Len())
	if err := s.storage.UploadReport(ctx, s.bucket, objectName, contentType, buf, size); err != nil {
		return nil, err
	}
	url, err := s.storage.PresignedReportURL(ctx, s.bucket, objectName, s.urlExpiry)
	if err != nil {
		return nil, err
	}
	return &models.ReportResult{ObjectName: objectName, URL: url}, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

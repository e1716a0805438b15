package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"binsight/internal/models"
	"binsight/internal/services"

	"github.com/hibiken/asynq"
)

// TypeReportExport is the asynq task type for queued report exports.
const TypeReportExport = "report_export"

const (
	ReportFormatCSV = "csv"
	ReportFormatPDF = "pdf"
)

// ReportExportPayload defines the payload for report export tasks.
type ReportExportPayload struct {
	Format string `json:"format"`
}

// NewReportExportTask creates a report export task for the given format.
func NewReportExportTask(format string) (*asynq.Task, error) {
	if format != ReportFormatCSV && format != ReportFormatPDF {
		return nil, fmt.Errorf("invalid report format: %s", format)
	}
	data, err := json.Marshal(ReportExportPayload{Format: format})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeReportExport, data), nil
}

// ReportTaskHandler processes queued report exports.
type ReportTaskHandler struct {
	reports services.ReportService
}

func NewReportTaskHandler(reports services.ReportService) *ReportTaskHandler {
	return &ReportTaskHandler{reports: reports}
}

// HandleReportExport handles report_export tasks.
func (h *ReportTaskHandler) HandleReportExport(ctx context.Context, t *asynq.Task) error {
	var payload ReportExportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal report payload: %w", err)
	}

	log.Printf("Starting %s report export", payload.Format)

	var result *models.ReportResult
	var err error
	switch payload.Format {
	case ReportFormatCSV:
		result, err = h.reports.ExportInventoryCSV(ctx)
	case ReportFormatPDF:
		result, err = h.reports.ExportUtilizationPDF(ctx)
	default:
		return fmt.Errorf("invalid report format: %s", payload.Format)
	}
	if err != nil {
		log.Printf("Report export failed: %v", err)
		return err
	}

	log.Printf("Report export completed: %s (%d records)", result.ObjectName, result.Records)
	return nil
}

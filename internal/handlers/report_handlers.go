package handlers

import (
	"context"
	"net/http"

	"binsight/internal/jobs"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

// TaskEnqueuer is the slice of asynq.Client the report handlers need.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ReportHandlers queues report export tasks.
type ReportHandlers struct {
	client TaskEnqueuer
}

func NewReportHandlers(client TaskEnqueuer) *ReportHandlers {
	return &ReportHandlers{client: client}
}

// ExportReportRequest is the payload for POST /api/reports/export.
type ExportReportRequest struct {
	Format string `json:"format"`
}

// ExportReport queues an inventory CSV or utilization PDF export.
func (h *ReportHandlers) ExportReport(c echo.Context) error {
	var req ExportReportRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request format")
	}
	if req.Format == "" {
		req.Format = jobs.ReportFormatCSV
	}

	task, err := jobs.NewReportExportTask(req.Format)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	info, err := h.client.EnqueueContext(c.Request().Context(), task)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Failed to queue report export")
	}

	return c.JSON(http.StatusAccepted, map[string]any{
		"status":  "success",
		"message": "Report export queued",
		"task_id": info.ID,
	})
}

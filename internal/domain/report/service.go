package report

import (
	"context"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/overtime"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
)

// Export is a generated file ready to stream to the client.
type Export struct {
	FileName    string
	ContentType string
	Content     []byte
}

type ReportService interface {
	OvertimeCSV(ctx context.Context, actor user.Actor, filter overtime.Filter) (Export, error)
	OvertimeWorkbook(ctx context.Context, actor user.Actor, filter overtime.Filter) (Export, error)
}

package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/overtime"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/report"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
)

// overtimeColumns is the payroll handoff layout. Order is part of the
// contract with the payroll bureau; do not reorder.
var overtimeColumns = []string{
	"colaborador",
	"email",
	"gestor",
	"centro_custo",
	"data",
	"inicio",
	"fim",
	"intervalo_min",
	"h50",
	"h100",
	"h_noturno",
	"status",
	"motivo",
	"decidido_por",
	"decidido_em",
	"mes_folha",
}

type Service struct {
	workflow overtime.WorkflowService
}

func NewService(workflow overtime.WorkflowService) *Service {
	return &Service{workflow: workflow}
}

// OvertimeCSV renders the filtered record set as a semicolon-delimited
// CSV, one row per request.
func (s *Service) OvertimeCSV(ctx context.Context, actor user.Actor, filter overtime.Filter) (report.Export, error) {
	items, err := s.items(ctx, actor, filter)
	if err != nil {
		return report.Export{}, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write(overtimeColumns); err != nil {
		return report.Export{}, err
	}
	for _, item := range items {
		if err := w.Write(overtimeRow(item)); err != nil {
			return report.Export{}, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return report.Export{}, err
	}

	return report.Export{
		FileName:    exportFileName("csv"),
		ContentType: "text/csv; charset=utf-8",
		Content:     buf.Bytes(),
	}, nil
}

// OvertimeWorkbook renders the same record set as a single-sheet XLSX.
func (s *Service) OvertimeWorkbook(ctx context.Context, actor user.Actor, filter overtime.Filter) (report.Export, error) {
	items, err := s.items(ctx, actor, filter)
	if err != nil {
		return report.Export{}, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Horas Extras"
	f.SetSheetName(f.GetSheetName(0), sheet)

	header := make([]interface{}, len(overtimeColumns))
	for i, col := range overtimeColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return report.Export{}, err
	}

	for i, item := range items {
		row := overtimeRow(item)
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return report.Export{}, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return report.Export{}, err
	}

	return report.Export{
		FileName:    exportFileName("xlsx"),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     buf.Bytes(),
	}, nil
}

func (s *Service) items(ctx context.Context, actor user.Actor, filter overtime.Filter) ([]overtime.Request, error) {
	if !actor.Role.IsHR() {
		return nil, user.ErrNotAllowed
	}
	resp, err := s.workflow.List(ctx, actor, filter)
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func overtimeRow(item overtime.Request) []string {
	decidedBy := ""
	if item.DecidedBy != nil {
		decidedBy = *item.DecidedBy
	}
	decidedAt := ""
	if item.DecidedAt != nil {
		decidedAt = item.DecidedAt.Format(time.RFC3339)
	}
	payrollMonth := ""
	if item.PayrollMonth != nil {
		payrollMonth = *item.PayrollMonth
	}

	return []string{
		item.EmployeeName,
		item.EmployeeEmail,
		item.ManagerUID,
		item.CostCenter,
		item.Date.Format("2006-01-02"),
		item.StartsAt.Format("15:04"),
		item.EndsAt.Format("15:04"),
		fmt.Sprintf("%d", item.BreakMinutes),
		formatHours(item.Hours.H50),
		formatHours(item.Hours.H100),
		formatHours(item.Hours.HNight),
		string(item.Status),
		item.Reason,
		decidedBy,
		decidedAt,
		payrollMonth,
	}
}

func formatHours(h float64) string {
	return fmt.Sprintf("%.2f", h)
}

func exportFileName(ext string) string {
	return fmt.Sprintf("horas_extras_%s.%s", time.Now().Format("20060102_150405"), ext)
}

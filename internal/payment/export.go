package payment

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportSheet     = "Payments"
)

type Export struct {
	FileName    string
	ContentType string
	Data        []byte
	Rows        int
}

var exportHeader = []interface{}{
	"Id",
	"UserId",
	"Member",
	"MappingId",
	"Plan",
	"TransactionRefId",
	"AmountReceived",
	"PaymentType",
	"PaymentDate",
	"imagePath",
	"CreatedBy",
}

// Export renders every payment of the tenant as an xlsx workbook.
func (s *service) Export(ctx context.Context, tenantID string) (*Export, error) {
	payments, err := s.repo.List(ctx, tenantID, ListFilter{})
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), exportSheet); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, p := range payments {
		amount, _ := p.AmountReceived.Float64()
		row := []interface{}{
			p.ID,
			p.UserID,
			p.MemberName,
			p.MappingID,
			p.PlanName,
			deref(p.TransactionRefID),
			amount,
			p.PaymentType,
			p.PaymentDate.In(s.loc).Format("02 Jan 2006, 15:04"),
			deref(p.ImagePath),
			deref(p.CreatedBy),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return &Export{
		FileName:    fmt.Sprintf("payments_%s_%s.xlsx", tenantID, s.clock().Format("20060102_150405")),
		ContentType: xlsxContentType,
		Data:        buf.Bytes(),
		Rows:        len(payments),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

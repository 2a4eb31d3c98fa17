package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/waritsara2543/food-ordering/entity"

	"github.com/tealeg/xlsx"
)

// ExportService ทำไฟล์สรุปออเดอร์ของวันนี้ให้แอดมินโหลด
type ExportService struct {
	Orders *OrderService
}

func NewExportService(orders *OrderService) *ExportService {
	return &ExportService{Orders: orders}
}

var exportHeader = []string{"เวลา", "ชื่อลูกค้า", "เบอร์โทร", "รายการ", "ยอดรวม", "สถานะ"}

func itemList(items []entity.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s x%d", it.MenuItemName, it.Quantity))
	}
	return strings.Join(parts, ", ")
}

// TodayCSV: CSV + BOM กัน Excel อ่านภาษาไทยเพี้ยน
func (s *ExportService) TodayCSV(now time.Time) ([]byte, string, error) {
	orders, err := s.Orders.ListToday(now)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	buf.WriteString("\uFEFF")

	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, "", err
	}
	for _, o := range orders {
		row := []string{
			o.CreatedAt.Format("15:04:05"),
			o.CustomerName,
			o.CustomerPhone,
			itemList(o.Items),
			strconv.FormatInt(o.Total, 10),
			o.PaymentStatus.Label(),
		}
		if err := w.Write(row); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("orders_%s.csv", now.Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// TodayXLSX: ตารางเดียวกันในรูป spreadsheet
func (s *ExportService) TodayXLSX(now time.Time) ([]byte, string, error) {
	orders, err := s.Orders.ListToday(now)
	if err != nil {
		return nil, "", err
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return nil, "", err
	}

	headerRow := sheet.AddRow()
	for _, h := range exportHeader {
		headerRow.AddCell().SetString(h)
	}
	for _, o := range orders {
		row := sheet.AddRow()
		row.AddCell().SetString(o.CreatedAt.Format("15:04:05"))
		row.AddCell().SetString(o.CustomerName)
		row.AddCell().SetString(o.CustomerPhone)
		row.AddCell().SetString(itemList(o.Items))
		row.AddCell().SetInt64(o.Total)
		row.AddCell().SetString(o.PaymentStatus.Label())
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("orders_%s.xlsx", now.Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/turnario/turnario-backend-go/internal/domain/attendance"
	"github.com/turnario/turnario-backend-go/internal/domain/operator"
	"github.com/turnario/turnario-backend-go/internal/pkg/storage"
)

// csvHeader is the fixed column set of the attendance export.
var csvHeader = []string{
	"Data",
	"Evento",
	"Cliente",
	"Brand",
	"Indirizzo",
	"Orario Programmato",
	"Check-in",
	"Coordinate Check-in",
	"Check-out",
	"Coordinate Check-out",
	"Ore Lavorate",
	"Stato",
	"Note",
}

// utf8BOM makes spreadsheet tools detect the encoding correctly.
const utf8BOM = "\ufeff"

// ExportResult carries a rendered CSV payload and its download filename.
type ExportResult struct {
	Filename string
	Content  []byte
}

// ExportService renders attendance history as a downloadable CSV file.
type ExportService interface {
	// ExportAttendance builds the CSV for one operator's punch records in
	// the given inclusive date range.
	ExportAttendance(ctx context.Context, operatorID string, startDate, endDate time.Time) (ExportResult, error)
}

type ExportServiceImpl struct {
	checkinRepo  attendance.CheckinRepository
	operatorRepo operator.OperatorRepository
	archive      storage.FileStorage
}

func NewExportService(
	checkinRepo attendance.CheckinRepository,
	operatorRepo operator.OperatorRepository,
	archive storage.FileStorage,
) ExportService {
	return &ExportServiceImpl{
		checkinRepo:  checkinRepo,
		operatorRepo: operatorRepo,
		archive:      archive,
	}
}

func (s *ExportServiceImpl) ExportAttendance(ctx context.Context, operatorID string, startDate, endDate time.Time) (ExportResult, error) {
	op, err := s.operatorRepo.GetByID(ctx, operatorID)
	if err != nil {
		return ExportResult{}, err
	}

	records, err := s.checkinRepo.ListByOperator(ctx, operatorID, &startDate, &endDate)
	if err != nil {
		return ExportResult{}, err
	}

	result := ExportResult{
		Filename: Filename(op.FullName, startDate, endDate),
		Content:  Serialize(records, time.Now().UTC()),
	}

	// Archival copy is best effort, the download must not fail with it
	if s.archive != nil {
		path := fmt.Sprintf("exports/%s/%s", operatorID, result.Filename)
		if _, err := s.archive.Upload(ctx, bytes.NewReader(result.Content), path, "text/csv"); err != nil {
			slog.Error("Failed to archive attendance export",
				"operator_id", operatorID,
				"path", path,
				"error", err)
		}
	}

	return result, nil
}

// Serialize renders the records as a comma-separated payload with a UTF-8
// byte-order mark, the fixed Italian header and one row per record.
func Serialize(records []attendance.Checkin, now time.Time) []byte {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)
	writeRow(&buf, csvHeader)

	for _, ch := range records {
		writeRow(&buf, []string{
			formatDate(ch.ShiftDate),
			orDash(ch.EventTitle),
			orDash(ch.ClientName),
			orDash(ch.BrandName),
			orDash(ch.EventAddress),
			scheduledWindow(ch.StartTime, ch.EndTime),
			formatTimestamp(ch.CheckIn),
			formatCoordinates(ch.CheckInLatitude, ch.CheckInLongitude),
			formatTimestamp(ch.CheckOut),
			formatCoordinates(ch.CheckOutLatitude, ch.CheckOutLongitude),
			attendance.WorkedHoursLabel(ch.CheckIn, ch.CheckOut),
			statusLabel(ch, now),
			orDash(ch.Notes),
		})
	}

	return buf.Bytes()
}

// Filename builds the download name. Spaces in the operator name become
// underscores, the range bounds keep their display format.
func Filename(operatorName string, startDate, endDate time.Time) string {
	return fmt.Sprintf("presenze_%s_%s_%s.csv",
		strings.ReplaceAll(operatorName, " ", "_"),
		startDate.Format("02/01/2006"),
		endDate.Format("02/01/2006"))
}

func writeRow(buf *bytes.Buffer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(escapeField(field))
	}
	buf.WriteString("\n")
}

// escapeField quotes a field only when it contains a comma, a double quote
// or a newline. Internal quotes are doubled.
func escapeField(field string) string {
	if !strings.ContainsAny(field, ",\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("02/01/2006")
}

func formatTimestamp(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("02/01/2006 15:04")
}

func formatCoordinates(lat, lng *float64) string {
	if lat == nil || lng == nil {
		return "-"
	}
	return fmt.Sprintf("%v, %v", *lat, *lng)
}

func scheduledWindow(start, end *string) string {
	if start == nil || end == nil {
		return "-"
	}
	return *start + " - " + *end
}

func statusLabel(ch attendance.Checkin, now time.Time) string {
	if ch.ShiftDate == nil {
		return string(attendance.ClassifyStatus(now, ch.CheckIn, ch.CheckOut, now))
	}
	return string(attendance.ClassifyStatus(*ch.ShiftDate, ch.CheckIn, ch.CheckOut, now))
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

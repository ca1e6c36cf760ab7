package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
	"github.com/terraincognita07/potsy/internal/models"
)

const (
	pdfMargin    = 10.0
	pdfRowHeight = 7.0
)

type pdfColumn struct {
	title string
	width float64
}

// Landscape A4 leaves 277mm between the margins.
var pdfColumns = []pdfColumn{
	{"Date", 32},
	{"Symptom", 34},
	{"Severity", 18},
	{"Duration", 24},
	{"Triggers", 45},
	{"Relief Methods", 45},
	{"Relief Effectiveness", 22},
	{"Notes", 57},
}

func PDFRows(symptoms []models.Symptom, location *time.Location) [][]string {
	if location == nil {
		location = time.UTC
	}

	rows := make([][]string, 0, len(symptoms))
	for _, symptom := range symptoms {
		notes := ""
		if symptom.Notes != nil {
			notes = *symptom.Notes
		}
		effectiveness := "N/A"
		if symptom.ReliefEffectiveness != nil {
			effectiveness = fmt.Sprintf("%d/10", *symptom.ReliefEffectiveness)
		}

		rows = append(rows, []string{
			symptom.Date.In(location).Format(dateLayout),
			symptom.Name,
			fmt.Sprintf("%d/10", symptom.Severity),
			strings.TrimSpace(strconv.FormatFloat(symptom.Duration, 'f', -1, 64) + " " + symptom.DurationType),
			strings.Join(symptom.Triggers, ", "),
			strings.Join(symptom.ReliefMethods, ", "),
			effectiveness,
			notes,
		})
	}
	return rows
}

// PDF renders a landscape table of symptoms to w. The column header repeats
// on every page.
func PDF(w io.Writer, symptoms []models.Symptom, location *time.Location, generated time.Time) error {
	if location == nil {
		location = time.UTC
	}

	doc := fpdf.New("L", "mm", "A4", "")
	doc.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	doc.SetAutoPageBreak(false, pdfMargin)
	doc.SetCreationDate(generated)
	doc.SetTitle("Symptom Tracker - Export", true)
	translate := doc.UnicodeTranslatorFromDescriptor("")

	doc.AddPage()
	doc.SetFont("Helvetica", "B", 20)
	doc.CellFormat(0, 10, "Symptom Tracker - Export", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 12)
	doc.CellFormat(0, 8, "Generated: "+generated.In(location).Format(dateLayout), "", 1, "L", false, 0, "")
	doc.Ln(4)

	if len(symptoms) == 0 {
		doc.CellFormat(0, 8, "No symptom data available to export.", "", 1, "L", false, 0, "")
		return doc.Output(w)
	}

	header := func() {
		doc.SetFont("Helvetica", "B", 8)
		doc.SetFillColor(230, 230, 240)
		for _, column := range pdfColumns {
			doc.CellFormat(column.width, pdfRowHeight, column.title, "1", 0, "L", true, 0, "")
		}
		doc.Ln(-1)
		doc.SetFont("Helvetica", "", 8)
	}
	header()

	_, pageHeight := doc.GetPageSize()
	for _, row := range PDFRows(symptoms, location) {
		if doc.GetY()+pdfRowHeight > pageHeight-pdfMargin {
			doc.AddPage()
			header()
		}
		for i, cell := range row {
			text := fitCell(doc, translate(cell), pdfColumns[i].width-2)
			doc.CellFormat(pdfColumns[i].width, pdfRowHeight, text, "1", 0, "L", false, 0, "")
		}
		doc.Ln(-1)
	}

	if err := doc.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return doc.Output(w)
}

// fitCell shortens text with a trailing "..." until it fits width.
func fitCell(doc *fpdf.Fpdf, text string, width float64) string {
	if doc.GetStringWidth(text) <= width {
		return text
	}
	for text != "" {
		_, size := utf8.DecodeLastRuneInString(text)
		text = text[:len(text)-size]
		if doc.GetStringWidth(text+"...") <= width {
			return text + "..."
		}
	}
	return ""
}

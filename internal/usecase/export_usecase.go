package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"candidate-registry-backend/internal/domain"
	"candidate-registry-backend/pkg/apperror"
	"candidate-registry-backend/pkg/audit"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// csvHeaders is the fixed 30-column export schema. Column order follows the
// record's canonical field order; changing it breaks downstream spreadsheets.
var csvHeaders = []string{
	"ID", "Nom", "Prénom", "CIN", "Date de naissance", "Lieu de naissance",
	"Genre", "Adresse", "Arrondissement", "Téléphone", "Email",
	"Type de candidat", "Situation matrimoniale", "Occupation mère", "Occupation père",
	"Niveau d'étude", "Type de diplôme", "Filière", "Expérience générale",
	"Langues", "Milieu", "Source d'inscription", "Objectif",
	"Formation choisie", "Orientation", "Destination", "Date d'orientation",
	"Observations", "Date de création", "Date de modification",
}

// exportRow flattens one record into the 30 export columns. Langues become
// "Name (Level); Name (Level)".
func exportRow(c domain.Candidate) []string {
	return []string{
		c.ID, c.Nom, c.Prenom, c.CIN, c.DateNaissance, c.LieuNaissance,
		string(c.Genre), c.Adresse, c.Arrondissement, c.Telephone, c.Email,
		string(c.TypeCandidat), string(c.SituationMatrimoniale), c.OccupationMere, c.OccupationPere,
		string(c.NiveauEtude), string(c.TypeDiplome), c.FiliereDiplome, string(c.ExperienceGenerale),
		flattenLangues(c.Langues), string(c.Milieu), c.SourceInscription, string(c.Objectif),
		c.FormationChoisie, string(c.Orientation), c.Destination, c.DateOrientation,
		c.Observations, c.DateCreation, c.DateModification,
	}
}

func flattenLangues(langues []domain.Language) string {
	parts := make([]string, len(langues))
	for i, l := range langues {
		parts[i] = fmt.Sprintf("%s (%s)", l.Name, l.Level)
	}
	return strings.Join(parts, "; ")
}

// ExportJSON renders the records as a pretty-printed array in canonical
// field order. Re-importing the output reconstructs equivalent records.
func ExportJSON(records []domain.Candidate) ([]byte, error) {
	if records == nil {
		records = []domain.Candidate{}
	}
	return json.MarshalIndent(records, "", "  ")
}

// ExportCSV renders header plus one row per record. Every cell is quoted
// with embedded quotes doubled, and the payload starts with a UTF-8 BOM so
// spreadsheet applications pick up the encoding.
func ExportCSV(records []domain.Candidate) []byte {
	var buf bytes.Buffer
	buf.WriteString("\uFEFF")

	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('"')
			buf.WriteString(strings.ReplaceAll(cell, `"`, `""`))
			buf.WriteByte('"')
		}
	}

	writeRow(csvHeaders)
	for _, c := range records {
		buf.WriteByte('\n')
		writeRow(exportRow(c))
	}
	return buf.Bytes()
}

// ExportXLSX builds a real workbook with the styled header row.
func ExportXLSX(records []domain.Candidate) ([]byte, error) {
	f := excelize.NewFile()
	sheetName := "Candidats"
	f.SetSheetName("Sheet1", sheetName)

	for i, header := range csvHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#2563EB"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(csvHeaders), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, c := range records {
		for colIdx, value := range exportRow(c) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range csvHeaders {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

type exportUsecase struct {
	repo  domain.CandidateRepository
	audit *audit.Logger
	now   func() time.Time
}

func NewExportUsecase(repo domain.CandidateRepository, auditLog *audit.Logger) domain.ExportUsecase {
	return &exportUsecase{
		repo:  repo,
		audit: auditLog,
		now:   time.Now,
	}
}

// Export filters the record set and serializes it to the requested format.
// stem is the caller-supplied filename stem; empty falls back to
// "candidats_<date>".
func (u *exportUsecase) Export(ctx context.Context, filter domain.CandidateFilter, format domain.ExportFormat, stem string) (*domain.ExportPayload, error) {
	if !format.Valid() {
		return nil, apperror.BadRequest(fmt.Sprintf("Format d'export non supporté : %s", format))
	}

	candidates, err := u.repo.GetAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	records := Filter(candidates, filter)

	if stem == "" {
		stem = "candidats_" + u.now().UTC().Format("2006-01-02")
	}

	var payload *domain.ExportPayload
	switch format {
	case domain.FormatJSON:
		data, err := ExportJSON(records)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		payload = &domain.ExportPayload{
			Filename:    stem + ".json",
			ContentType: "application/json",
			Data:        data,
		}

	case domain.FormatCSV:
		payload = &domain.ExportPayload{
			Filename:    stem + ".csv",
			ContentType: "text/csv; charset=utf-8",
			Data:        ExportCSV(records),
		}

	case domain.FormatExcel:
		payload = &domain.ExportPayload{
			Filename:    stem + ".xls",
			ContentType: "application/vnd.ms-excel; charset=utf-8",
			Data:        ExportExcelHTML(records),
		}

	case domain.FormatXLSX:
		data, err := ExportXLSX(records)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		payload = &domain.ExportPayload{
			Filename:    stem + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}

	case domain.FormatPDF:
		// A single selected record prints as the official registration
		// form; any other selection becomes the grouped dossier document.
		var data []byte
		if len(records) == 1 {
			data = ExportRegistrationForm(records[0], u.now())
		} else {
			data = ExportPrintDocument(records, u.now())
		}
		payload = &domain.ExportPayload{
			Filename:    stem + ".html",
			ContentType: "text/html; charset=utf-8",
			Data:        data,
		}
	}

	u.audit.Record(audit.EventExportGenerated, stem,
		zap.String("format", string(format)),
		zap.Int("records", len(records)))
	return payload, nil
}

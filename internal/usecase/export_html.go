package usecase

import (
	"bytes"
	"fmt"
	"html"
	"time"

	"candidate-registry-backend/internal/domain"
)

// ExportExcelHTML renders the 30-column table as spreadsheet-compatible HTML
// (legacy .xls), with the original blue header styling.
func ExportExcelHTML(records []domain.Candidate) []byte {
	var buf bytes.Buffer

	buf.WriteString(`<html xmlns:o="urn:schemas-microsoft-com:office:office" xmlns:x="urn:schemas-microsoft-com:office:excel">` + "\n")
	buf.WriteString("<head><meta charset=\"UTF-8\"></head>\n<body>\n<table border=\"1\">\n<thead>\n<tr>")
	for _, header := range csvHeaders {
		fmt.Fprintf(&buf, `<th style="background:#2563EB;color:white;font-weight:bold;">%s</th>`, html.EscapeString(header))
	}
	buf.WriteString("</tr>\n</thead>\n<tbody>\n")

	for _, c := range records {
		buf.WriteString("<tr>")
		for _, cell := range exportRow(c) {
			fmt.Fprintf(&buf, "<td>%s</td>", html.EscapeString(cell))
		}
		buf.WriteString("</tr>\n")
	}

	buf.WriteString("</tbody>\n</table>\n</body>\n</html>\n")
	return buf.Bytes()
}

// ExportPrintDocument renders a print-ready dossier, one page per record,
// fields grouped under the four standard headings. The generated-at stamp is
// the only non-deterministic output and stays on its own line.
func ExportPrintDocument(records []domain.Candidate, generatedAt time.Time) []byte {
	var buf bytes.Buffer

	buf.WriteString(`<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="UTF-8">
<title>Dossiers Candidats</title>
<style>
  @page { size: A4; margin: 1cm; }
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; padding: 20px; color: #000; }
  .candidate { margin-bottom: 40px; }
  .candidate h2 { font-size: 16px; color: #1e40af; margin-bottom: 12px; }
  .section { margin-bottom: 16px; }
  .section h3 { font-size: 13px; text-transform: uppercase; border-bottom: 1px solid #444; margin-bottom: 8px; }
  .row { display: flex; margin-bottom: 4px; font-size: 12px; }
  .label { font-weight: bold; min-width: 180px; }
  @media print {
    .candidate { page-break-after: always; }
  }
</style>
</head>
<body>
`)
	fmt.Fprintf(&buf, "<div class=\"generated-at\">Généré le %s</div>\n", generatedAt.UTC().Format("02/01/2006 15:04"))

	row := func(label, value string) {
		fmt.Fprintf(&buf, "<div class=\"row\"><span class=\"label\">%s</span><span>%s</span></div>\n",
			html.EscapeString(label), html.EscapeString(value))
	}

	for _, c := range records {
		fmt.Fprintf(&buf, "<div class=\"candidate\">\n<h2>%s %s — %s</h2>\n",
			html.EscapeString(c.Nom), html.EscapeString(c.Prenom), html.EscapeString(c.CIN))

		buf.WriteString("<div class=\"section\">\n<h3>Identité</h3>\n")
		row("Nom", c.Nom)
		row("Prénom", c.Prenom)
		row("CIN", c.CIN)
		row("Date de naissance", c.DateNaissance)
		row("Lieu de naissance", c.LieuNaissance)
		row("Genre", string(c.Genre))
		row("Situation matrimoniale", string(c.SituationMatrimoniale))
		row("Adresse", c.Adresse)
		row("Arrondissement", c.Arrondissement)
		row("Milieu", string(c.Milieu))
		row("Téléphone", c.Telephone)
		row("Email", c.Email)
		row("Occupation de la mère", c.OccupationMere)
		row("Occupation du père", c.OccupationPere)
		buf.WriteString("</div>\n")

		buf.WriteString("<div class=\"section\">\n<h3>Formation &amp; Expérience</h3>\n")
		row("Type de candidat", string(c.TypeCandidat))
		row("Niveau d'étude", string(c.NiveauEtude))
		row("Type de diplôme", string(c.TypeDiplome))
		row("Filière", c.FiliereDiplome)
		row("Expérience générale", string(c.ExperienceGenerale))
		row("Langues", flattenLangues(c.Langues))
		buf.WriteString("</div>\n")

		buf.WriteString("<div class=\"section\">\n<h3>Orientation</h3>\n")
		row("Source d'inscription", c.SourceInscription)
		row("Objectif", string(c.Objectif))
		row("Formation choisie", c.FormationChoisie)
		row("Orientation", string(c.Orientation))
		row("Destination", c.Destination)
		row("Date d'orientation", c.DateOrientation)
		buf.WriteString("</div>\n")

		buf.WriteString("<div class=\"section\">\n<h3>Observations</h3>\n")
		row("Observations", c.Observations)
		for _, cf := range c.CustomFields {
			row(cf.Label, cf.Value)
		}
		buf.WriteString("</div>\n</div>\n")
	}

	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes()
}

// ExportRegistrationForm renders one record as the localized official intake
// form (Arabic, RTL), with populated fields on dotted lines and checked
// boxes for the closed choices.
func ExportRegistrationForm(c domain.Candidate, generatedAt time.Time) []byte {
	var buf bytes.Buffer

	buf.WriteString(`<!DOCTYPE html>
<html lang="ar">
<head>
<meta charset="UTF-8">
<title>Fiche de Renseignements</title>
<style>
  @page { size: A4; margin: 1cm; }
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; direction: rtl; padding: 20px; color: #000; }
  .header { display: flex; justify-content: space-between; align-items: center; margin-bottom: 30px; }
  .logo-box { width: 100px; height: 80px; border: 1px dashed #ccc; display: flex; align-items: center; justify-content: center; font-size: 10px; }
  .header-center { text-align: center; font-weight: bold; font-size: 14px; }
  .date-section { text-align: left; margin-bottom: 20px; font-weight: bold; }
  .title { text-align: center; text-decoration: underline; font-size: 18px; margin-bottom: 30px; color: #1e40af; }
  .row { display: flex; align-items: flex-end; margin-bottom: 18px; width: 100%; }
  .label { font-weight: bold; white-space: nowrap; margin-left: 10px; min-width: 150px; }
  .dots { border-bottom: 1px dotted #444; flex-grow: 1; min-height: 20px; padding-right: 10px; font-style: italic; }
  .options-row { display: flex; gap: 30px; margin: 20px 0; }
  .option { display: flex; align-items: center; gap: 10px; }
  .checkbox { width: 15px; height: 15px; border: 1px solid #000; display: inline-block; text-align: center; }
</style>
</head>
<body>
<div class="header">
  <div class="logo-box">LOGO GAUCHE</div>
  <div class="header-center">
      المملكة المغربية<br>
      المبادرة الوطنية للتنمية البشرية<br>
      عمالة المقاطعات
  </div>
  <div class="logo-box">LOGO DROIT</div>
</div>
`)
	fmt.Fprintf(&buf, "<div class=\"date-section\">تاريخ: %s</div>\n", generatedAt.UTC().Format("02/01/2006"))
	buf.WriteString("<div class=\"title\">معلومات شخصية</div>\n")

	dotted := func(label, value string) {
		fmt.Fprintf(&buf, "<div class=\"row\"><span class=\"label\">%s :</span><div class=\"dots\">%s</div></div>\n",
			label, html.EscapeString(value))
	}
	check := func(yes bool) string {
		if yes {
			return "✓"
		}
		return ""
	}

	dotted("الإسم الشخصي", c.Prenom)
	dotted("الإسم العائلي", c.Nom)
	dotted("رقم البطاقة الوطنية", c.CIN)
	dotted("تاريخ الإزدياد", formatBirthDate(c.DateNaissance))
	dotted("مكان الإزدياد", c.LieuNaissance)

	fmt.Fprintf(&buf, `<div class="options-row">
  <span class="label">الجنس :</span>
  <div class="option">ذكر <div class="checkbox">%s</div></div>
  <div class="option">أنثى <div class="checkbox">%s</div></div>
</div>
`, check(c.Genre == domain.GenreHomme), check(c.Genre == domain.GenreFemme))

	fmt.Fprintf(&buf, `<div class="options-row">
  <span class="label">الحالة العائلية :</span>
  <div class="option">عازب(ة) <div class="checkbox">%s</div></div>
  <div class="option">متزوج(ة) <div class="checkbox">%s</div></div>
  <div class="option">مطلق(ة) <div class="checkbox">%s</div></div>
  <div class="option">أرمل(ة) <div class="checkbox">%s</div></div>
</div>
`,
		check(c.SituationMatrimoniale == domain.SituationCelibataire),
		check(c.SituationMatrimoniale == domain.SituationMarie),
		check(c.SituationMatrimoniale == domain.SituationDivorce),
		check(c.SituationMatrimoniale == domain.SituationVeuf))

	dotted("العنوان", c.Adresse)
	dotted("رقم الهاتف", c.Telephone)
	dotted("رقم الهاتف (Whatsapp)", c.Telephone)
	dotted("البريد الإلكتروني", c.Email)
	dotted("مهنة الأب", c.OccupationPere)
	dotted("مهنة الأم", c.OccupationMere)

	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes()
}

// formatBirthDate renders a yyyy-mm-dd birth date as dd/mm/yyyy; anything
// else passes through untouched.
func formatBirthDate(value string) string {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.Format("02/01/2006")
	}
	return value
}

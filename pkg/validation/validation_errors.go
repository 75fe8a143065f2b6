package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the French labels the registry UI
// uses, so validation messages read like the rest of the product.
var FieldLabels = map[string]string{
	"Nom":                   "Nom",
	"Prenom":                "Prénom",
	"CIN":                   "CIN",
	"DateNaissance":         "Date de naissance",
	"LieuNaissance":         "Lieu de naissance",
	"Genre":                 "Genre",
	"Adresse":               "Adresse",
	"Arrondissement":        "Arrondissement",
	"Telephone":             "Téléphone",
	"Email":                 "Email",
	"TypeCandidat":          "Type de candidat",
	"SituationMatrimoniale": "Situation matrimoniale",
	"OccupationMere":        "Occupation de la mère",
	"OccupationPere":        "Occupation du père",
	"NiveauEtude":           "Niveau d'étude",
	"TypeDiplome":           "Type de diplôme",
	"FiliereDiplome":        "Filière du diplôme",
	"ExperienceGenerale":    "Expérience générale",
	"Langues":               "Langues",
	"Name":                  "Langue",
	"Level":                 "Niveau de langue",
	"Milieu":                "Milieu",
	"SourceInscription":     "Source d'inscription",
	"Objectif":              "Objectif",
	"FormationChoisie":      "Formation choisie",
	"Orientation":           "Orientation",
	"Destination":           "Destination",
	"DateOrientation":       "Date d'orientation",
	"Observations":          "Observations",
	"CustomFields":          "Champs personnalisés",
	"Label":                 "Libellé",
	"Value":                 "Valeur",
}

// FormatValidationErrors converts validator.ValidationErrors to user-facing
// French messages, one per failed field.
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s : champ obligatoire", label)

	case "min":
		if e.Kind().String() == "slice" {
			return fmt.Sprintf("%s : au moins %s élément(s)", label, e.Param())
		}
		return fmt.Sprintf("%s : minimum %s caractères", label, e.Param())

	case "max":
		return fmt.Sprintf("%s : maximum %s caractères", label, e.Param())

	case "email":
		return fmt.Sprintf("%s : format d'email invalide", label)

	case "enum":
		return fmt.Sprintf("%s : valeur hors catalogue", label)

	case "unique":
		return fmt.Sprintf("%s : doublons interdits", label)

	case "valid_name":
		return fmt.Sprintf("%s : lettres, espaces et ponctuation usuelle uniquement", label)

	case "valid_phone":
		return fmt.Sprintf("%s : numéro de téléphone invalide (7 à 15 chiffres)", label)

	case "no_emoji":
		return fmt.Sprintf("%s : emojis et symboles interdits", label)

	default:
		return fmt.Sprintf("%s : validation échouée (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}

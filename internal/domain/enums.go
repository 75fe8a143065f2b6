package domain

// Closed enumerations for candidate fields. Values are the exact strings the
// registry has always persisted and exported, so renaming one is a data
// migration, not a refactor.

type Genre string

const (
	GenreHomme Genre = "Homme"
	GenreFemme Genre = "Femme"
)

func (g Genre) Valid() bool { return g == GenreHomme || g == GenreFemme }

type TypeCandidat string

const (
	TypeDiplomeActif   TypeCandidat = "Jeune diplômé actif"
	TypeDiplomeChomage TypeCandidat = "Jeune diplômé en chômage"
	TypeNEET           TypeCandidat = "NEET"
)

func (t TypeCandidat) Valid() bool {
	switch t {
	case TypeDiplomeActif, TypeDiplomeChomage, TypeNEET:
		return true
	}
	return false
}

// TypesCandidat lists the fixed dashboard buckets in display order.
var TypesCandidat = []TypeCandidat{TypeDiplomeActif, TypeDiplomeChomage, TypeNEET}

type SituationMatrimoniale string

const (
	SituationCelibataire SituationMatrimoniale = "Célibataire"
	SituationMarie       SituationMatrimoniale = "Marié(e)"
	SituationDivorce     SituationMatrimoniale = "Divorcé(e)"
	SituationVeuf        SituationMatrimoniale = "Veuf(ve)"
)

func (s SituationMatrimoniale) Valid() bool {
	switch s {
	case SituationCelibataire, SituationMarie, SituationDivorce, SituationVeuf:
		return true
	}
	return false
}

type Milieu string

const (
	MilieuUrbain     Milieu = "Urbain"
	MilieuRural      Milieu = "Rural"
	MilieuPeriurbain Milieu = "Périurbain"
)

func (m Milieu) Valid() bool {
	switch m {
	case MilieuUrbain, MilieuRural, MilieuPeriurbain:
		return true
	}
	return false
}

type NiveauEtude string

const (
	NiveauSans       NiveauEtude = "Sans"
	NiveauPrimaire   NiveauEtude = "Primaire"
	NiveauCollegial  NiveauEtude = "Secondaire collégial"
	NiveauQualifiant NiveauEtude = "Secondaire qualifiant"
	NiveauSuperieur  NiveauEtude = "Supérieur"
)

func (n NiveauEtude) Valid() bool {
	switch n {
	case NiveauSans, NiveauPrimaire, NiveauCollegial, NiveauQualifiant, NiveauSuperieur:
		return true
	}
	return false
}

type TypeDiplome string

const (
	DiplomeSans      TypeDiplome = "Sans"
	DiplomeNiveauBac TypeDiplome = "Niveau Bac"
	DiplomeBac       TypeDiplome = "Bac"
	DiplomeBac2      TypeDiplome = "Bac+2"
	DiplomeBac3      TypeDiplome = "Bac+3"
	DiplomeBac4      TypeDiplome = "Bac+4"
	DiplomeBac5      TypeDiplome = "Bac+5"
	DiplomeSupBac5   TypeDiplome = "Supérieur à Bac+5"
	DiplomeBrevet    TypeDiplome = "Brevet"
)

func (t TypeDiplome) Valid() bool {
	switch t {
	case DiplomeSans, DiplomeNiveauBac, DiplomeBac, DiplomeBac2, DiplomeBac3,
		DiplomeBac4, DiplomeBac5, DiplomeSupBac5, DiplomeBrevet:
		return true
	}
	return false
}

type ExperienceGenerale string

const (
	ExperienceAucune  ExperienceGenerale = "Pas d'expérience"
	ExperienceMoins1  ExperienceGenerale = "Moins d'un an"
	Experience1a3     ExperienceGenerale = "Entre 1 et 3 ans"
	Experience3a5     ExperienceGenerale = "Entre 3 et 5 ans"
	ExperiencePlus5   ExperienceGenerale = "Plus de 5 ans"
)

func (e ExperienceGenerale) Valid() bool {
	switch e {
	case ExperienceAucune, ExperienceMoins1, Experience1a3, Experience3a5, ExperiencePlus5:
		return true
	}
	return false
}

type Objectif string

const (
	ObjectifEntrepreneuriat Objectif = "Entrepreneuriat"
	ObjectifESS             Objectif = "ESS"
	ObjectifFormation       Objectif = "Formation"
	ObjectifEmployabilite   Objectif = "Employabilité"
)

func (o Objectif) Valid() bool {
	switch o {
	case ObjectifEntrepreneuriat, ObjectifESS, ObjectifFormation, ObjectifEmployabilite:
		return true
	}
	return false
}

// Objectifs lists the fixed statistics buckets in display order.
var Objectifs = []Objectif{ObjectifEntrepreneuriat, ObjectifESS, ObjectifFormation, ObjectifEmployabilite}

type Orientation string

const (
	OrientationInterne Orientation = "Interne"
	OrientationExterne Orientation = "Externe"
)

func (o Orientation) Valid() bool {
	return o == OrientationInterne || o == OrientationExterne
}

type LanguageLevel string

const (
	LevelDebutant      LanguageLevel = "Débutant"
	LevelIntermediaire LanguageLevel = "Intermédiaire"
	LevelAvance        LanguageLevel = "Avancé"
	LevelCourant       LanguageLevel = "Courant"
	LevelNatif         LanguageLevel = "Natif"
)

func (l LanguageLevel) Valid() bool {
	switch l {
	case LevelDebutant, LevelIntermediaire, LevelAvance, LevelCourant, LevelNatif:
		return true
	}
	return false
}

// Catalogs for string fields that are validated against a list but keep an
// "Autre" escape hatch. The form layer presents these; the store accepts any
// value present in the catalog.
var (
	Arrondissements = []string{
		"Agdal Riad", "Hay Riad", "Hassan", "Souissi", "Yacoub El Mansour",
		"Akkari", "Océan", "Youssoufia", "Takaddoum", "Hay El Fath", "Autre",
	}

	SourcesInscription = []string{
		"ANAPEC", "Entraide Nationale", "Réseaux sociaux", "Bouche à oreille",
		"Site web", "Partenaire", "Événement", "Autre",
	}

	Formations = []string{
		"Développement Web", "Marketing Digital", "Comptabilité",
		"Gestion de projet", "Design Graphique", "Commerce",
		"Artisanat", "Agriculture", "Tourisme", "Autre",
	}

	Destinations = []string{
		"Centre de formation", "Entreprise partenaire", "Coopérative",
		"Incubateur", "Association", "Autre",
	}

	Filieres = []string{
		"Informatique", "Gestion", "Commerce", "Droit", "Économie",
		"Lettres", "Sciences", "Ingénierie", "Médecine", "Art",
		"Agriculture", "Tourisme", "Autre", "Non applicable",
	}

	LanguesDisponibles = []string{
		"Arabe", "Français", "Anglais", "Espagnol", "Allemand", "Amazigh", "Autre",
	}
)

// InCatalog reports whether value appears in catalog.
func InCatalog(catalog []string, value string) bool {
	for _, v := range catalog {
		if v == value {
			return true
		}
	}
	return false
}

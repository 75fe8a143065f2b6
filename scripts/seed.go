// Seed fills a local file store with sample candidate records so the API has
// data to serve during development. Run from the repo root:
//
//	go run ./scripts/seed.go -n 25 -dir ./data
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"candidate-registry-backend/internal/domain"
	"candidate-registry-backend/internal/repository/snapshot"
	"candidate-registry-backend/pkg/kvstore"
)

var (
	noms    = []string{"BENALI", "CHAKIR", "EL AMRANI", "TAZI", "BOUAZZA", "IDRISSI", "OUAZZANI", "BERRADA"}
	prenoms = []string{"Youssef", "Fatima", "Aïcha", "Mehdi", "Salma", "Omar", "Khadija", "Hamza"}
	lieux   = []string{"Rabat", "Casablanca", "Salé", "Témara", "Kénitra"}

	genres      = []domain.Genre{domain.GenreHomme, domain.GenreFemme}
	niveaux     = []domain.NiveauEtude{domain.NiveauQualifiant, domain.NiveauSuperieur, domain.NiveauCollegial}
	diplomes    = []domain.TypeDiplome{domain.DiplomeBac, domain.DiplomeBac2, domain.DiplomeBac3, domain.DiplomeBac5}
	experiences = []domain.ExperienceGenerale{domain.ExperienceAucune, domain.ExperienceMoins1, domain.Experience1a3}
	milieux     = []domain.Milieu{domain.MilieuUrbain, domain.MilieuRural, domain.MilieuPeriurbain}
	situations  = []domain.SituationMatrimoniale{domain.SituationCelibataire, domain.SituationMarie}
)

func pick[T any](rng *rand.Rand, values []T) T {
	return values[rng.Intn(len(values))]
}

func main() {
	n := flag.Int("n", 25, "number of records to create")
	dir := flag.String("dir", "./data", "storage directory")
	seed := flag.Int64("seed", 42, "random seed")
	flag.Parse()

	store, err := kvstore.NewFile(*dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	repo := snapshot.NewCandidateRepository(store, "")

	rng := rand.New(rand.NewSource(*seed))
	ctx := context.Background()

	for i := 0; i < *n; i++ {
		input := domain.CandidateInput{
			Nom:            pick(rng, noms),
			Prenom:         pick(rng, prenoms),
			CIN:            fmt.Sprintf("AB%06d", rng.Intn(1000000)),
			DateNaissance:  fmt.Sprintf("%d-%02d-%02d", 1990+rng.Intn(15), 1+rng.Intn(12), 1+rng.Intn(28)),
			LieuNaissance:  pick(rng, lieux),
			Genre:          pick(rng, genres),
			Adresse:        fmt.Sprintf("%d Rue Mohamed V", 1+rng.Intn(200)),
			Arrondissement: pick(rng, domain.Arrondissements[:len(domain.Arrondissements)-1]),
			Telephone:      fmt.Sprintf("06%08d", rng.Intn(100000000)),
			Email:          fmt.Sprintf("candidat%d@example.com", i+1),

			TypeCandidat:          pick(rng, domain.TypesCandidat),
			SituationMatrimoniale: pick(rng, situations),
			NiveauEtude:           pick(rng, niveaux),
			TypeDiplome:           pick(rng, diplomes),
			FiliereDiplome:        pick(rng, domain.Filieres),
			ExperienceGenerale:    pick(rng, experiences),

			Langues: []domain.Language{
				{Name: "Arabe", Level: domain.LevelNatif},
				{Name: "Français", Level: domain.LevelCourant},
			},

			Milieu:            pick(rng, milieux),
			SourceInscription: pick(rng, domain.SourcesInscription),
			Objectif:          pick(rng, domain.Objectifs),
			FormationChoisie:  pick(rng, domain.Formations),
			Orientation:       domain.OrientationInterne,
			Destination:       pick(rng, domain.Destinations),
		}

		candidate, err := repo.Create(ctx, input)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Printf("Created %s (%s %s)\n", candidate.ID, candidate.Nom, candidate.Prenom)
	}

	fmt.Printf("\nSeeded %d records into %s\n", *n, *dir)
}

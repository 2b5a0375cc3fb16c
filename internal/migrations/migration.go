package migrations

import (
	"fmt"
	"log"
	"sort"

	"car_rental/internal/models"

	"gorm.io/gorm"
)

// Routines are the stored functions the reports call.
var Routines = []string{
	"dostepne_auta_w_danym_terminie",
	"policz_auta_dostepne_w_danym_terminie",
	"policz_modele_auta_dostepne_w_danym_terminie",
	"policz_marki_auta_dostepne_w_danym_terminie",
	"najpopularniejsze_modele",
	"przychody_na_klasy_aut",
	"wyszukaj_modele",
}

// VerifySchema checks that every table, view and stored routine the
// application relies on exists in the schema. The schema is owned by the
// database scripts, so nothing is ever created here; the missing names are
// logged and returned.
func VerifySchema(db *gorm.DB) ([]string, error) {
	log.Println("Verifying database schema...")

	var relations []string
	if err := db.Table("information_schema.tables").
		Where("table_schema = ?", models.Schema).
		Pluck("table_name", &relations).Error; err != nil {
		return nil, fmt.Errorf("failed to list relations: %w", err)
	}

	var routines []string
	if err := db.Table("information_schema.routines").
		Where("routine_schema = ?", models.Schema).
		Pluck("routine_name", &routines).Error; err != nil {
		return nil, fmt.Errorf("failed to list routines: %w", err)
	}

	missing := append(difference(models.Relations(), relations), difference(Routines, routines)...)
	sort.Strings(missing)
	if len(missing) > 0 {
		log.Printf("Warning: schema %s is missing: %v", models.Schema, missing)
		return missing, nil
	}

	log.Println("Database schema verified successfully!")
	return nil, nil
}

func difference(want, have []string) []string {
	present := make(map[string]bool, len(have))
	for _, name := range have {
		present[name] = true
	}
	var out []string
	for _, name := range want {
		if !present[name] {
			out = append(out, name)
		}
	}
	return out
}

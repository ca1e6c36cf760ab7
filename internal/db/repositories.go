package db

import "gorm.io/gorm"

type Repositories struct {
	Symptoms       *SymptomRepository
	Triggers       *CatalogRepository
	CommonSymptoms *CatalogRepository
	Medications    *MedicationRepository
	Profile        *ProfileRepository
	Salt           *SaltRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Symptoms:       NewSymptomRepository(database),
		Triggers:       NewTriggerRepository(database),
		CommonSymptoms: NewCommonSymptomRepository(database),
		Medications:    NewMedicationRepository(database),
		Profile:        NewProfileRepository(database),
		Salt:           NewSaltRepository(database),
	}
}

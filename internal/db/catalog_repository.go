package db

import (
	"github.com/terraincognita07/potsy/internal/models"
	"gorm.io/gorm"
)

const (
	triggersTable       = "triggers"
	commonSymptomsTable = "common_symptoms"
)

// CatalogRepository stores name catalogs. Triggers and common symptoms share
// one shape and differ only by table.
type CatalogRepository struct {
	database *gorm.DB
	table    string
}

func NewTriggerRepository(database *gorm.DB) *CatalogRepository {
	return &CatalogRepository{database: database, table: triggersTable}
}

func NewCommonSymptomRepository(database *gorm.DB) *CatalogRepository {
	return &CatalogRepository{database: database, table: commonSymptomsTable}
}

func (repo *CatalogRepository) List() ([]models.CatalogItem, error) {
	items := make([]models.CatalogItem, 0)
	if err := repo.database.Table(repo.table).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (repo *CatalogRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Table(repo.table).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindOrCreate looks the key up and inserts item when it is absent, inside one
// transaction. created is false when an existing entry was returned.
func (repo *CatalogRepository) FindOrCreate(item models.CatalogItem) (models.CatalogItem, bool, error) {
	created := false
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		existing := make([]models.CatalogItem, 0, 1)
		if err := tx.Table(repo.table).Where("name_key = ?", item.NameKey).Limit(1).Find(&existing).Error; err != nil {
			return err
		}
		if len(existing) > 0 {
			item = existing[0]
			return nil
		}
		if err := tx.Table(repo.table).Create(&item).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return models.CatalogItem{}, false, err
	}
	return item, created, nil
}

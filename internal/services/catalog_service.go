package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/potsy/internal/models"
	"golang.org/x/text/cases"
)

const maxCatalogNameLength = 80

var (
	ErrInvalidCatalogName  = errors.New("invalid catalog name")
	ErrListCatalogFailed   = errors.New("list catalog failed")
	ErrCreateCatalogFailed = errors.New("create catalog entry failed")
)

type CatalogRepository interface {
	List() ([]models.CatalogItem, error)
	Count() (int64, error)
	FindOrCreate(item models.CatalogItem) (models.CatalogItem, bool, error)
}

// CatalogService backs both the trigger and common symptom catalogs.
type CatalogService struct {
	items CatalogRepository
}

func NewCatalogService(items CatalogRepository) *CatalogService {
	return &CatalogService{items: items}
}

func (service *CatalogService) List() ([]models.CatalogItem, error) {
	items, err := service.items.List()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListCatalogFailed, err)
	}
	return items, nil
}

// Ensure returns the entry whose name matches case-insensitively, creating
// it on first use.
func (service *CatalogService) Ensure(name string) (models.CatalogItem, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxCatalogNameLength {
		return models.CatalogItem{}, false, ErrInvalidCatalogName
	}

	item, created, err := service.items.FindOrCreate(models.CatalogItem{Name: name, NameKey: CatalogNameKey(name)})
	if err != nil {
		return models.CatalogItem{}, false, fmt.Errorf("%w: %v", ErrCreateCatalogFailed, err)
	}
	return item, created, nil
}

// SeedDefaults fills an empty catalog. A catalog that already has entries is
// left untouched.
func (service *CatalogService) SeedDefaults(names []string) error {
	count, err := service.items.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, name := range names {
		if _, _, err := service.Ensure(name); err != nil {
			return err
		}
	}
	return nil
}

func CatalogNameKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

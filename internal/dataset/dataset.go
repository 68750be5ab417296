// Package dataset loads the advocate directory at startup and seeds persistent backends with it.
package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"advocates/internal/config"
	"advocates/internal/model"
	"advocates/internal/repository"
	"advocates/internal/storage"
)

var (
	ErrUnknownSource   = errors.New("unknown seed source")
	ErrUnknownFormat   = errors.New("unknown seed format")
	ErrStorageRequired = errors.New("object seed source requires storage")
	ErrEmpty           = errors.New("seed contains no advocates")
)

// idNamespace scopes the name-based UUIDs handed to records without an id.
var idNamespace = uuid.MustParse("6f1f4c8e-2d0a-4b57-9a55-4c1f0b7d9e21")

var validate = validator.New(validator.WithRequiredStructEnabled())

// record is the on-disk shape of one advocate in a JSON or YAML seed.
type record struct {
	ID                string   `json:"id" yaml:"id"`
	FirstName         string   `json:"firstName" yaml:"firstName" validate:"required"`
	LastName          string   `json:"lastName" yaml:"lastName" validate:"required"`
	City              string   `json:"city" yaml:"city" validate:"required"`
	Degree            string   `json:"degree" yaml:"degree" validate:"required"`
	Specialties       []string `json:"specialties" yaml:"specialties" validate:"dive,required"`
	YearsOfExperience int      `json:"yearsOfExperience" yaml:"yearsOfExperience" validate:"gte=0"`
	PhoneNumber       string   `json:"phoneNumber" yaml:"phoneNumber" validate:"required,numeric"`
}

// StableID derives a deterministic id from an advocate's names and phone number.
func StableID(a model.Advocate) string {
	key := strings.Join([]string{a.FirstName, a.LastName, a.PhoneNumber}, "|")
	return uuid.NewSHA1(idNamespace, []byte(key)).String()
}

// Load returns the advocate directory from the configured source.
// store is only consulted for the object source and may be nil otherwise.
func Load(ctx context.Context, cfg config.SeedConfig, store storage.Storage) ([]model.Advocate, error) {
	switch cfg.Source {
	case config.SeedSourceBuiltin, "":
		return Builtin(), nil
	case config.SeedSourceFile:
		f, err := os.Open(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("open seed file: %w", err)
		}
		defer f.Close()
		return Decode(f, formatOf(cfg.Path))
	case config.SeedSourceObject:
		if store == nil {
			return nil, ErrStorageRequired
		}
		rc, info, err := store.Get(ctx, cfg.ObjectKey)
		if err != nil {
			return nil, fmt.Errorf("get seed object %s: %w", cfg.ObjectKey, err)
		}
		defer rc.Close()
		format := formatOf(cfg.ObjectKey)
		if format == "" && strings.Contains(info.ContentType, "json") {
			format = "json"
		}
		return Decode(rc, format)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source)
	}
}

func formatOf(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// Decode reads a JSON or YAML list of advocates, validates every record and fills missing ids.
func Decode(r io.Reader, format string) ([]model.Advocate, error) {
	var records []record
	switch format {
	case "json":
		if err := json.NewDecoder(r).Decode(&records); err != nil {
			return nil, fmt.Errorf("decode json seed: %w", err)
		}
	case "yaml":
		if err := yaml.NewDecoder(r).Decode(&records); err != nil {
			return nil, fmt.Errorf("decode yaml seed: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	seen := make(map[string]int, len(records))
	advocates := make([]model.Advocate, 0, len(records))
	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("seed record %d: %w", i, err)
		}
		a := model.Advocate{
			ID:                strings.TrimSpace(rec.ID),
			FirstName:         rec.FirstName,
			LastName:          rec.LastName,
			City:              rec.City,
			Degree:            rec.Degree,
			Specialties:       rec.Specialties,
			YearsOfExperience: rec.YearsOfExperience,
			PhoneNumber:       rec.PhoneNumber,
		}
		if a.Specialties == nil {
			a.Specialties = []string{}
		}
		if a.ID == "" {
			a.ID = StableID(a)
		}
		if j, dup := seen[a.ID]; dup {
			return nil, fmt.Errorf("seed record %d: duplicate id %s (also record %d)", i, a.ID, j)
		}
		seen[a.ID] = i
		advocates = append(advocates, a)
	}
	return advocates, nil
}

// SeedIfEmpty writes advocates into the backend when it holds no rows yet.
// It reports whether anything was written.
func SeedIfEmpty(ctx context.Context, s repository.AdvocateSeeder, advocates []model.Advocate, log *zap.Logger) (bool, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count advocates: %w", err)
	}
	if n > 0 {
		log.Info("seed skipped", zap.String("component", "dataset"), zap.Int("existing", n))
		return false, nil
	}
	if err := s.InsertMany(ctx, advocates); err != nil {
		return false, fmt.Errorf("seed advocates: %w", err)
	}
	log.Info("seed applied", zap.String("component", "dataset"), zap.Int("inserted", len(advocates)))
	return true, nil
}

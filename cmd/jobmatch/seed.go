package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rafael/jobmatch/internal/schemas"
	"github.com/rafael/jobmatch/internal/store"
	"github.com/rafael/jobmatch/internal/types"
)

var (
	seedFile     string
	seedValidate bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a seed catalog of job postings into the database",
	Long:  `Validate a seed catalog JSON file against its schema and insert the postings into the store. Each distinct company name gets a generated company id and an employer account.`,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "Path to the seed catalog JSON file (required)")
	seedCmd.Flags().BoolVar(&seedValidate, "validate-only", false, "Validate the seed file without writing anything")
	_ = seedCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(seedCmd)
}

// seedCatalog mirrors schemas/seed_catalog.schema.json.
type seedCatalog struct {
	Jobs []seedJob `json:"jobs"`
}

type seedJob struct {
	Title          string   `json:"title"`
	CompanyName    string   `json:"company_name"`
	Location       string   `json:"location"`
	Remote         bool     `json:"remote"`
	JobType        string   `json:"job_type"`
	SalaryMin      int      `json:"salary_min"`
	SalaryMax      int      `json:"salary_max"`
	Tags           []string `json:"tags"`
	Description    string   `json:"description"`
	SkillsRequired []string `json:"skills_required"`
	ExpiresInDays  int      `json:"expires_in_days"`
}

func runSeed(_ *cobra.Command, _ []string) error {
	schemaPath := schemas.ResolveSchemaPath(schemas.SeedCatalogSchema)
	if schemaPath == "" {
		return fmt.Errorf("seed catalog schema not found: %s", schemas.SeedCatalogSchema)
	}

	if err := schemas.ValidateJSON(schemaPath, seedFile); err != nil {
		return fmt.Errorf("seed file rejected: %w", err)
	}

	data, err := os.ReadFile(seedFile)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}
	var catalog seedCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	if seedValidate {
		fmt.Printf("%s: valid, %d postings\n", seedFile, len(catalog.Jobs))
		return nil
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required to seed")
	}

	ctx := context.Background()
	pg, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer pg.Close()

	if err := pg.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	inserted, err := loadCatalog(ctx, pg, catalog, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Seeded %d postings from %s\n", inserted, seedFile)
	return nil
}

// loadCatalog inserts the catalog's postings. Companies are keyed by name
// within one seed run so a company's postings share a company id.
func loadCatalog(ctx context.Context, st store.Store, catalog seedCatalog, now time.Time) (int, error) {
	companies := make(map[string]uuid.UUID)

	for i, job := range catalog.Jobs {
		companyID, ok := companies[job.CompanyName]
		if !ok {
			companyID = uuid.New()
			companies[job.CompanyName] = companyID
		}

		expiresIn := job.ExpiresInDays
		if expiresIn <= 0 {
			expiresIn = 30
		}

		posting := types.JobPosting{
			ID:             uuid.New(),
			CompanyID:      companyID,
			CompanyName:    job.CompanyName,
			Title:          job.Title,
			Location:       job.Location,
			Remote:         job.Remote,
			JobType:        types.JobType(job.JobType),
			SalaryMin:      job.SalaryMin,
			SalaryMax:      job.SalaryMax,
			Tags:           job.Tags,
			Description:    job.Description,
			SkillsRequired: job.SkillsRequired,
			Status:         types.JobStatusActive,
			CreatedAt:      now,
			ExpiresAt:      now.AddDate(0, 0, expiresIn),
		}
		if err := st.CreateJobPosting(ctx, &posting); err != nil {
			return i, fmt.Errorf("failed to insert posting %q: %w", job.Title, err)
		}
	}

	return len(catalog.Jobs), nil
}

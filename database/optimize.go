package database

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// SecondaryIndex is an index the optimizer keeps in place
type SecondaryIndex struct {
	Name    string
	Table   string
	Columns []string
}

// DDL renders an idempotent CREATE INDEX statement. Identifiers are double
// quoted, which both PostgreSQL and SQLite accept.
func (i SecondaryIndex) DDL() string {
	cols := make([]string, len(i.Columns))
	for n, c := range i.Columns {
		cols[n] = pq.QuoteIdentifier(c)
	}
	return fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)",
		pq.QuoteIdentifier(i.Name), pq.QuoteIdentifier(i.Table), strings.Join(cols, ", "))
}

// SecondaryIndexes lists the read-path indexes for the showcase tables.
var SecondaryIndexes = []SecondaryIndex{
	{Name: "idx_project_status", Table: "projects", Columns: []string{"status"}},
	{Name: "idx_project_created", Table: "projects", Columns: []string{"created_date"}},
	{Name: "idx_skill_category", Table: "skills", Columns: []string{"category"}},
	{Name: "idx_skill_proficiency", Table: "skills", Columns: []string{"proficiency"}},
	{Name: "idx_education_years", Table: "education", Columns: []string{"start_year", "end_year"}},
}

// analyzedTables get fresh planner statistics after indexing.
var analyzedTables = []string{"projects", "skills", "education"}

// OptimizeReport summarizes one optimizer run
type OptimizeReport struct {
	IndexesEnsured int
	TablesAnalyzed int
	SizeBytes      int64
}

// Optimizer ensures secondary indexes exist and refreshes store statistics
type Optimizer struct {
	store Storage
}

// NewOptimizer creates an optimizer for the given store
func NewOptimizer(store Storage) *Optimizer {
	return &Optimizer{store: store}
}

// Run migrates, indexes, analyzes and measures the database.
func (o *Optimizer) Run(ctx context.Context) (*OptimizeReport, error) {
	log.Println("[OPTIMIZE] Optimizing Pixel Portfolio database...")

	if err := o.store.Init(); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	db := o.store.GetDB().WithContext(ctx)
	report := &OptimizeReport{}

	for _, idx := range SecondaryIndexes {
		if err := db.Exec(idx.DDL()).Error; err != nil {
			log.Printf("[OPTIMIZE] Error optimizing database: %v", err)
			return nil, fmt.Errorf("failed to create index %s: %w", idx.Name, err)
		}
		report.IndexesEnsured++
	}
	log.Println("[OPTIMIZE] Database indexes created successfully")

	for _, table := range analyzedTables {
		if err := db.Exec("ANALYZE " + pq.QuoteIdentifier(table)).Error; err != nil {
			log.Printf("[OPTIMIZE] Error optimizing database: %v", err)
			return nil, fmt.Errorf("failed to analyze %s: %w", table, err)
		}
		report.TablesAnalyzed++
	}
	log.Println("[OPTIMIZE] Table statistics updated")

	size, err := databaseSize(db, o.store.Dialect())
	if err != nil {
		// Size is informational only
		log.Printf("[OPTIMIZE] Could not determine database size: %v", err)
	} else {
		report.SizeBytes = size
		log.Printf("[OPTIMIZE] Database size: %.2f MB", float64(size)/(1024*1024))
	}

	log.Println("[OPTIMIZE] Database optimization completed successfully!")
	return report, nil
}

func databaseSize(db *gorm.DB, dialect string) (int64, error) {
	var size int64
	var err error
	switch dialect {
	case "postgres":
		err = db.Raw("SELECT pg_database_size(current_database())").Scan(&size).Error
	case "sqlite":
		err = db.Raw("SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()").Scan(&size).Error
	default:
		err = fmt.Errorf("unknown dialect %q", dialect)
	}
	return size, err
}

package vocab

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/example/wortbot/pkg/models"
)

// DB is the global database connection for the vocabulary catalog.
var DB *sqlx.DB

// Connect opens the catalog database. DB_TYPE selects the driver:
// "postgres" uses DATABASE_URL, anything else falls back to a SQLite file
// under the data directory.
func Connect(dataDir string) error {
	if dataDir == "" {
		dataDir = "data"
	}

	var db *sqlx.DB
	var err error

	if os.Getenv("DB_TYPE") == "postgres" {
		db, err = sqlx.Connect("postgres", os.Getenv("DATABASE_URL"))
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %v", err)
		}
	} else {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %v", err)
		}
		dbPath := filepath.Join(dataDir, "wortbot.db")
		db, err = sqlx.Connect("sqlite3", dbPath)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %v", err)
		}
		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	DB = db
	return initializeSchema()
}

// Close closes the database connection.
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

func initializeSchema() error {
	serial := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if DB.DriverName() == "postgres" {
		serial = "SERIAL PRIMARY KEY"
	}

	_, err := DB.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS words (
			id %s,
			german TEXT NOT NULL UNIQUE,
			english TEXT NOT NULL,
			pronunciation TEXT,
			example TEXT,
			example_translation TEXT,
			category TEXT NOT NULL DEFAULT 'general',
			level TEXT NOT NULL DEFAULT 'A1',
			frequency INTEGER DEFAULT 0,
			word_type TEXT
		)
	`, serial))
	if err != nil {
		return fmt.Errorf("failed to create words table: %v", err)
	}
	return nil
}

// Repository provides access to the stored vocabulary.
type Repository struct{}

// NewRepository creates a vocabulary repository.
func NewRepository() *Repository {
	return &Repository{}
}

// GetAll returns every stored word.
func (r *Repository) GetAll() ([]models.VocabularyItem, error) {
	var words []models.VocabularyItem
	err := DB.Select(&words, "SELECT german, english, pronunciation, example, example_translation, category, level, frequency, word_type FROM words ORDER BY level, frequency")
	if err != nil {
		return nil, fmt.Errorf("failed to get words: %v", err)
	}
	return words, nil
}

// GetByLevel returns the stored words at the given CEFR level.
func (r *Repository) GetByLevel(level string) ([]models.VocabularyItem, error) {
	var words []models.VocabularyItem
	var err error
	if DB.DriverName() == "postgres" {
		err = DB.Select(&words, "SELECT german, english, pronunciation, example, example_translation, category, level, frequency, word_type FROM words WHERE level = $1 ORDER BY frequency", level)
	} else {
		err = DB.Select(&words, "SELECT german, english, pronunciation, example, example_translation, category, level, frequency, word_type FROM words WHERE level = ? ORDER BY frequency", level)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get words for level %s: %v", level, err)
	}
	return words, nil
}

// Count returns the number of stored words.
func (r *Repository) Count() (int, error) {
	var count int
	if err := DB.Get(&count, "SELECT COUNT(*) FROM words"); err != nil {
		return 0, fmt.Errorf("failed to count words: %v", err)
	}
	return count, nil
}

// Upsert inserts the word or replaces the existing entry with the same
// german form.
func (r *Repository) Upsert(item models.VocabularyItem) error {
	var err error
	if DB.DriverName() == "postgres" {
		_, err = DB.Exec(`
			INSERT INTO words (german, english, pronunciation, example, example_translation, category, level, frequency, word_type)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (german) DO UPDATE SET
				english = EXCLUDED.english,
				pronunciation = EXCLUDED.pronunciation,
				example = EXCLUDED.example,
				example_translation = EXCLUDED.example_translation,
				category = EXCLUDED.category,
				level = EXCLUDED.level,
				frequency = EXCLUDED.frequency,
				word_type = EXCLUDED.word_type
		`, item.German, item.English, item.Pronunciation, item.Example, item.ExampleTranslation, item.Category, item.Level, item.Frequency, item.WordType)
	} else {
		_, err = DB.Exec(`
			INSERT INTO words (german, english, pronunciation, example, example_translation, category, level, frequency, word_type)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (german) DO UPDATE SET
				english = excluded.english,
				pronunciation = excluded.pronunciation,
				example = excluded.example,
				example_translation = excluded.example_translation,
				category = excluded.category,
				level = excluded.level,
				frequency = excluded.frequency,
				word_type = excluded.word_type
		`, item.German, item.English, item.Pronunciation, item.Example, item.ExampleTranslation, item.Category, item.Level, item.Frequency, item.WordType)
	}
	if err != nil {
		return fmt.Errorf("failed to upsert word %s: %v", item.German, err)
	}
	return nil
}

// LoadCatalog reads every stored word into an in-memory catalog.
func LoadCatalog() (*Catalog, error) {
	repo := NewRepository()
	words, err := repo.GetAll()
	if err != nil {
		return nil, err
	}
	return NewCatalog(words), nil
}

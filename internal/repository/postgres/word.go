package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/horadelbocadillo/yotetraduzco-clean/internal/model"
)

var _ model.WordStore = (*WordRepository)(nil)

// WordRepository implements word persistence over the palabras table.
type WordRepository struct {
	db DBTX
}

// NewWordRepository constructs a repository bound to the given DBTX.
func NewWordRepository(db DBTX) *WordRepository {
	return &WordRepository{db: db}
}

const wordColumns = `id, palabra_original, traduccion, categoria, color, imagen_url, notas, created_at`

// List returns words matching the filter, newest first. SearchText matches
// as a case-insensitive substring of either text column; Category matches
// exactly. Zero rows yield an empty slice, not an error.
func (r *WordRepository) List(ctx context.Context, filter model.ListFilter) ([]model.Word, error) {
	query := `SELECT ` + wordColumns + ` FROM palabras`

	var (
		conds []string
		args  []any
	)
	if filter.SearchText != "" {
		args = append(args, "%"+filter.SearchText+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(palabra_original ILIKE $%d OR traduccion ILIKE $%d)", n, n))
	}
	if filter.Category != model.CategoryNone {
		args = append(args, string(filter.Category))
		conds = append(conds, fmt.Sprintf("categoria = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list words: %w", err)
	}
	defer rows.Close()

	words := []model.Word{}
	for rows.Next() {
		word, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return words, nil
}

// GetByID returns a single word or model.ErrNotFound.
func (r *WordRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Word, error) {
	query := `SELECT ` + wordColumns + ` FROM palabras WHERE id = $1`

	word, err := scanWord(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Word{}, model.ErrNotFound
		}
		return model.Word{}, err
	}

	return word, nil
}

// Create inserts a word. The creation timestamp is assigned by the database.
func (r *WordRepository) Create(ctx context.Context, word model.Word) (model.Word, error) {
	query := `
		INSERT INTO palabras (id, palabra_original, traduccion, categoria, color, imagen_url, notas)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + wordColumns

	saved, err := scanWord(r.db.QueryRowContext(ctx, query,
		word.ID, word.Original, word.Translation,
		nullCategory(word.Category), nullColor(word.Color),
		nullString(word.ImageURL), nullString(word.Notes),
	))
	if err != nil {
		return model.Word{}, fmt.Errorf("failed to insert word: %w", err)
	}

	return saved, nil
}

// Update patches the mutable columns of a word. Nil patch fields keep their
// stored value; pointers to zero values clear the column. Only category,
// color, notes and image URL are ever touched.
func (r *WordRepository) Update(ctx context.Context, id uuid.UUID, patch model.WordPatch) (model.Word, error) {
	var (
		sets []string
		args []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Category != nil {
		add("categoria", nullCategory(*patch.Category))
	}
	if patch.Color != nil {
		add("color", nullColor(*patch.Color))
	}
	if patch.ImageURL != nil {
		add("imagen_url", emptyToNull(*patch.ImageURL))
	}
	if patch.Notes != nil {
		add("notas", emptyToNull(*patch.Notes))
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE palabras SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), wordColumns)

	word, err := scanWord(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Word{}, model.ErrNotFound
		}
		return model.Word{}, fmt.Errorf("failed to update word: %w", err)
	}

	return word, nil
}

// Delete removes a word by id. A missing row reports model.ErrNotFound;
// callers decide whether that matters.
func (r *WordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM palabras WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete word: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanWord(row rowScanner) (model.Word, error) {
	var word model.Word
	var categoria, color, imagen, notas sql.NullString
	err := row.Scan(
		&word.ID, &word.Original, &word.Translation,
		&categoria, &color, &imagen, &notas, &word.CreatedAt,
	)
	if err != nil {
		return model.Word{}, err
	}

	word.Category = model.Category(categoria.String)
	word.Color = model.Color(color.String)
	if imagen.Valid {
		word.ImageURL = &imagen.String
	}
	if notas.Valid {
		word.Notes = &notas.String
	}

	return word, nil
}

func nullCategory(c model.Category) sql.NullString {
	return sql.NullString{String: string(c), Valid: c != model.CategoryNone}
}

func nullColor(c model.Color) sql.NullString {
	return sql.NullString{String: string(c), Valid: c != model.ColorNone}
}

func nullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func emptyToNull(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

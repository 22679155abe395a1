package embed

import (
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"sort"

	"github.com/viterin/vek/vek32"
	_ "modernc.org/sqlite"
)

// Store persists chunk vectors in a SQLite collection and answers
// nearest-neighbor queries by cosine distance.
type Store struct {
	db *sql.DB
}

const storeSchema = `
CREATE TABLE IF NOT EXISTS chunks (
	id            TEXT PRIMARY KEY,
	file_path     TEXT NOT NULL,
	chunk_type    TEXT NOT NULL,
	function_name TEXT NOT NULL DEFAULT '',
	start_line    INTEGER NOT NULL,
	end_line      INTEGER NOT NULL,
	text          TEXT NOT NULL,
	embedding     BLOB NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_chunks_file ON chunks(file_path);
`

// OpenStore opens or creates the vector collection at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open vector store: %w", err)
	}
	if _, err := db.Exec(storeSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init vector store schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// UpsertBatch writes one batch of chunks with their embeddings in a single
// transaction.
func (s *Store) UpsertBatch(chunks []Chunk, embeddings [][]float32) error {
	if len(chunks) != len(embeddings) {
		return fmt.Errorf("chunk/embedding count mismatch: %d vs %d", len(chunks), len(embeddings))
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin upsert: %w", err)
	}
	stmt, err := tx.Prepare(`
		INSERT INTO chunks (id, file_path, chunk_type, function_name, start_line, end_line, text, embedding)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			file_path=excluded.file_path, chunk_type=excluded.chunk_type,
			function_name=excluded.function_name, start_line=excluded.start_line,
			end_line=excluded.end_line, text=excluded.text, embedding=excluded.embedding`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for i, c := range chunks {
		if _, err := stmt.Exec(c.ID, c.FilePath, c.ChunkType, c.FunctionName, c.StartLine, c.EndLine, c.Text, encodeVector(embeddings[i])); err != nil {
			tx.Rollback()
			return fmt.Errorf("upsert chunk %s: %w", c.ID, err)
		}
	}
	return tx.Commit()
}

// Hit is one nearest-neighbor result.
type Hit struct {
	Chunk    Chunk
	Distance float64
}

// Search scans the collection and returns the n chunks nearest to the query
// vector by cosine distance.
func (s *Store) Search(query []float32, n int) ([]Hit, error) {
	rows, err := s.db.Query(`SELECT id, file_path, chunk_type, function_name, start_line, end_line, text, embedding FROM chunks`)
	if err != nil {
		return nil, fmt.Errorf("scan chunks: %w", err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var c Chunk
		var blob []byte
		if err := rows.Scan(&c.ID, &c.FilePath, &c.ChunkType, &c.FunctionName, &c.StartLine, &c.EndLine, &c.Text, &blob); err != nil {
			return nil, fmt.Errorf("scan chunk row: %w", err)
		}
		vec := decodeVector(blob)
		if len(vec) != len(query) {
			continue
		}
		sim := vek32.CosineSimilarity(query, vec)
		hits = append(hits, Hit{Chunk: c, Distance: 1 - float64(sim)})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	if len(hits) > n {
		hits = hits[:n]
	}
	return hits, nil
}

// Count returns the number of stored chunks.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM chunks`).Scan(&n)
	return n, err
}

func encodeVector(v []float32) []byte {
	buf := make([]byte, 4*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

func decodeVector(blob []byte) []float32 {
	v := make([]float32, len(blob)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(blob[i*4:]))
	}
	return v
}

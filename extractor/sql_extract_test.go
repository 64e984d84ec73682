package extractor

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turbot/kgx-ingest-sdk/types"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// each connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
		CREATE TABLE gene_disease (gene TEXT, disease TEXT, score INTEGER);
		INSERT INTO gene_disease VALUES ('NCBIGene:1', 'MONDO:1', 3);
		INSERT INTO gene_disease VALUES ('NCBIGene:1', 'MONDO:2', 30);
		INSERT INTO gene_disease VALUES ('NCBIGene:2', NULL, NULL);
		INSERT INTO gene_disease VALUES (NULL, 'MONDO:3', 1);
	`)
	require.NoError(t, err)
	return db
}

func sqlColumn(i int) IdExtractor[SqlRow] {
	return func(row SqlRow) (types.Optional[string], error) {
		v, err := row.String(i)
		if err != nil {
			return types.None[string](), err
		}
		return types.Some(v), nil
	}
}

func TestExtractor_SqlExtract(t *testing.T) {
	db := openTestDB(t)
	x := RowExtractors[SqlRow]{
		Subject:   sqlColumn(0),
		Object:    sqlColumn(1),
		Predicate: Const[SqlRow]("gene_associated_with_condition"),
		EdgeProperties: func(row SqlRow) (types.Properties, error) {
			score, err := row.String(2)
			if err != nil {
				return nil, err
			}
			return types.Properties{"score": score}, nil
		},
	}

	e := New()
	err := e.SqlExtract(context.Background(), db, "SELECT gene, disease, score FROM gene_disease ORDER BY rowid", x)
	assert.NoError(t, err)

	assert.Equal(t, []string{"NCBIGene:1", "NCBIGene:2"}, nodeIds(e.Nodes()))
	edges := e.Edges()
	if assert.Len(t, edges, 2) {
		assert.Equal(t, "MONDO:1", edges[0].ObjectId)
		assert.Equal(t, types.Properties{"score": "3"}, edges[0].Properties)
		assert.Equal(t, "MONDO:2", edges[1].ObjectId)
		assert.Equal(t, types.Properties{"score": "30"}, edges[1].Properties)
	}
	md := e.LoadMetadata()
	assert.Equal(t, 4, md.RecordCounter)
	assert.Equal(t, 0, md.SkippedRecordCounter)
}

func TestExtractor_SqlExtract_RowErrorsContinue(t *testing.T) {
	db := openTestDB(t)
	x := RowExtractors[SqlRow]{
		Subject:   sqlColumn(0),
		Object:    sqlColumn(5),
		Predicate: Const[SqlRow]("p"),
	}

	e := New()
	assert.NoError(t, e.SqlExtract(context.Background(), db, "SELECT gene, disease FROM gene_disease", x))

	md := e.LoadMetadata()
	assert.Equal(t, 4, md.RecordCounter)
	assert.Equal(t, 4, md.SkippedRecordCounter)
	assert.Len(t, md.Errors, 4)
}

func TestExtractor_SqlExtract_QueryError(t *testing.T) {
	db := openTestDB(t)
	e := New()
	err := e.SqlExtract(context.Background(), db, "SELECT * FROM missing_table", RowExtractors[SqlRow]{})
	assert.Error(t, err)
	assert.Equal(t, 0, e.LoadMetadata().RecordCounter)
}

func TestSqlRow_String(t *testing.T) {
	row := SqlRow{nil, "a", int64(7), 1.5, true}
	tests := []struct {
		i       int
		want    string
		wantErr bool
	}{
		{i: 0, want: ""},
		{i: 1, want: "a"},
		{i: 2, want: "7"},
		{i: 3, want: "1.5"},
		{i: 4, want: "true"},
		{i: 5, wantErr: true},
		{i: -1, wantErr: true},
	}
	for _, tt := range tests {
		got, err := row.String(tt.i)
		if tt.wantErr {
			assert.Errorf(t, err, "String(%d)", tt.i)
			continue
		}
		assert.NoError(t, err)
		assert.Equalf(t, tt.want, got, "String(%d)", tt.i)
	}
}

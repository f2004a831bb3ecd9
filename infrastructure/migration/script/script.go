package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/vfg2006/posts-stats-api/internal/config"
)

// Table é uma tabela lida pelo serviço; em produção elas são criadas pelos coletores
type Table struct {
	Name string
	DDL  string
}

var tables = []Table{
	{
		Name: "artists",
		DDL: `CREATE TABLE artists (
			id VARCHAR(64) PRIMARY KEY,
			name TEXT NOT NULL,
			youtube_followers BIGINT,
			tiktok_followers BIGINT,
			ig_followers BIGINT
		)`,
	},
	{
		Name: "posts",
		DDL: `CREATE TABLE posts (
			id VARCHAR(64) PRIMARY KEY,
			post_name TEXT NOT NULL,
			post_date DATE NOT NULL,
			status VARCHAR(32) NOT NULL,
			artist_id VARCHAR(64) REFERENCES artists (id),
			youtube_url TEXT,
			tiktok_url TEXT,
			instagram_url TEXT
		)`,
	},
	{
		Name: "post_snapshots",
		DDL: `CREATE TABLE post_snapshots (
			id BIGSERIAL PRIMARY KEY,
			post_id VARCHAR(64) NOT NULL REFERENCES posts (id),
			platform VARCHAR(32) NOT NULL,
			snapshot_at TIMESTAMPTZ NOT NULL,
			views DOUBLE PRECISION,
			likes DOUBLE PRECISION,
			comments DOUBLE PRECISION,
			shares DOUBLE PRECISION,
			reach DOUBLE PRECISION,
			saves DOUBLE PRECISION,
			avg_view_duration DOUBLE PRECISION,
			retention_rate DOUBLE PRECISION,
			completion_rate DOUBLE PRECISION,
			tiktok_retention_score DOUBLE PRECISION,
			tiktok_shareability_score DOUBLE PRECISION
		)`,
	},
}

// Índice que cobre o filtro e a ordenação da paginação de snapshots
const snapshotPageIndex = `CREATE INDEX IF NOT EXISTS post_snapshots_post_platform_at_idx
	ON post_snapshots (post_id, platform, snapshot_at, id)`

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de migração...")
}

func tableExists(ctx context.Context, db *sql.DB, name string) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public'
			AND table_name = $1
		)
	`, name).Scan(&exists)
	return exists, err
}

// ensureTables cria as tabelas que ainda não existem e retorna quantas foram criadas
func ensureTables(ctx context.Context, db *sql.DB, tables []Table) (int, error) {
	created := 0

	for _, table := range tables {
		exists, err := tableExists(ctx, db, table.Name)
		if err != nil {
			log.Printf("ERRO ao verificar tabela %s: %v", table.Name, err)
			return created, err
		}

		if exists {
			log.Printf("Tabela %s já existe", table.Name)
			continue
		}

		if _, err := db.ExecContext(ctx, table.DDL); err != nil {
			log.Printf("ERRO ao criar tabela %s: %v", table.Name, err)
			return created, err
		}

		log.Printf("Tabela %s criada com sucesso", table.Name)
		created++
	}

	return created, nil
}

func ensureSnapshotIndex(ctx context.Context, db *sql.DB) error {
	log.Println("Garantindo índice de paginação em post_snapshots...")

	if _, err := db.ExecContext(ctx, snapshotPageIndex); err != nil {
		log.Printf("ERRO ao criar índice de snapshots: %v", err)
		return err
	}

	log.Println("Índice de snapshots disponível")
	return nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	startTime := time.Now()

	created, err := ensureTables(ctx, db, tables)
	if err != nil {
		return err
	}

	if err := ensureSnapshotIndex(ctx, db); err != nil {
		return err
	}

	log.Printf("Migração concluída em %v. Tabelas criadas: %d", time.Since(startTime), created)
	return nil
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	log.Println("Conectando ao banco de dados...")

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("ERRO ao verificar conexão com o banco: %v", err)
	}
	log.Println("Conexão com o banco de dados estabelecida com sucesso")

	if err := migrate(ctx, db); err != nil {
		log.Printf("ERRO na migração: %v", err)
		os.Exit(1)
	}
}

package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Schema for the optional persistence features: draft campaigns, generated
// asset records, and usage events. Idempotent so it can run on every deploy.
const schema = `
create extension if not exists pgcrypto;

create table if not exists ad_campaigns (
    id              uuid primary key,
    name            text not null,
    product_id      text not null default '',
    image_url       text,
    ad_type         text not null,
    prompt          text not null default '',
    target_audience text,
    tone            text,
    purpose         text,
    status          text not null default 'DRAFT',
    created_at      timestamptz not null default now(),
    updated_at      timestamptz not null default now()
);

create table if not exists ad_assets (
    id              uuid primary key,
    product_id      text,
    source_image_id text,
    asset_type      text not null,
    status          text not null default 'COMPLETED',
    prompt          text not null default '',
    filename        text not null,
    thumbnail_url   text,
    file_size       bigint,
    mime_type       text not null,
    created_at      timestamptz not null default now()
);

create table if not exists usage_events (
    id         uuid primary key,
    event_type text not null,
    success    boolean not null,
    properties jsonb not null default '{}'::jsonb,
    created_at timestamptz not null default now()
);

create index if not exists idx_ad_campaigns_created_at on ad_campaigns (created_at desc);
create index if not exists idx_ad_assets_created_at on ad_assets (created_at desc);
`

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		fmt.Fprintf(os.Stderr, "ping database: %v\n", err)
		os.Exit(1)
	}

	if _, err := db.Exec(schema); err != nil {
		fmt.Fprintf(os.Stderr, "apply schema: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("schema applied")
}

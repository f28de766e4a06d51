package database

import "gorm.io/gorm"

func init() {
	RegisterMigration(Migration{
		ID:   "20250110_create_endpoint_definitions",
		Name: "create endpoint_definitions table",
		Up: func(db *gorm.DB) error {
			const sql = `
CREATE TABLE IF NOT EXISTS public.endpoint_definitions (
    id UUID PRIMARY KEY,
    slug TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL DEFAULT '',
    kind TEXT NOT NULL DEFAULT 'endpoint',
    method TEXT NOT NULL DEFAULT 'ANY',
    status TEXT NOT NULL DEFAULT 'active',
    auth_type TEXT NOT NULL DEFAULT 'none',
    auth_secret TEXT NOT NULL DEFAULT '',
    actions JSONB,
    response_template TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_endpoint_definitions_status ON public.endpoint_definitions (status);`
			return db.Exec(sql).Error
		},
		Down: func(db *gorm.DB) error {
			return db.Exec("DROP TABLE IF EXISTS public.endpoint_definitions").Error
		},
	})
}

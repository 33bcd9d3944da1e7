// seed prepara una base PostgreSQL para la API: crea el esquema si no existe y
// siembra el directorio fijo de cuentas (admin más una cuenta por rol operativo)
// solo si la tabla users está vacía. Idempotente: volver a correrlo no duplica nada.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que la API (DATABASE_URL o DB_HOST/DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Girofle-api/internal/domain/entity"
	"github.com/jhoicas/Girofle-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Girofle-api/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            uuid PRIMARY KEY,
	username      text NOT NULL UNIQUE,
	password_hash text NOT NULL,
	name          text NOT NULL,
	role          text NOT NULL,
	balance       numeric,
	created_at    timestamptz NOT NULL,
	updated_at    timestamptz NOT NULL
);

CREATE TABLE IF NOT EXISTS receptions (
	id                 uuid PRIMARY KEY,
	type               text NOT NULL,
	date_heure         timestamptz NOT NULL,
	designation        text NOT NULL DEFAULT '',
	provenance         text NOT NULL DEFAULT '',
	nom_fournisseur    text NOT NULL,
	prenom_fournisseur text NOT NULL,
	id_fiscale         text NOT NULL,
	localisation       text NOT NULL DEFAULT '',
	contact            text NOT NULL DEFAULT '',
	poids_brut         numeric NOT NULL,
	poids_net          numeric NOT NULL,
	unite              text NOT NULL DEFAULT 'kg',
	statut             text NOT NULL,
	poids_emballage    numeric,
	taux_dessiccation  numeric,
	taux_humidite      numeric,
	poids_convenu      numeric,
	densite            numeric,
	taux_humidite_cg   numeric,
	created_at         timestamptz NOT NULL,
	updated_at         timestamptz NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS receptions_id_fiscale_lower_idx
	ON receptions (lower(id_fiscale));

CREATE TABLE IF NOT EXISTS collectes (
	id            uuid PRIMARY KEY,
	collecteur_id uuid NOT NULL REFERENCES users (id),
	date          timestamptz NOT NULL,
	produit       text NOT NULL,
	localisation  text NOT NULL DEFAULT '',
	quantite      numeric NOT NULL,
	prix_unitaire numeric NOT NULL,
	montant       numeric NOT NULL,
	created_at    timestamptz NOT NULL,
	updated_at    timestamptz NOT NULL
);

CREATE TABLE IF NOT EXISTS expeditions (
	id            uuid PRIMARY KEY,
	date          timestamptz NOT NULL,
	destination   text NOT NULL,
	transporteur  text NOT NULL DEFAULT '',
	statut        text NOT NULL,
	poids_total   numeric NOT NULL,
	reception_ids text[] NOT NULL,
	created_at    timestamptz NOT NULL,
	updated_at    timestamptz NOT NULL
);

CREATE TABLE IF NOT EXISTS ventes (
	id            uuid PRIMARY KEY,
	date          timestamptz NOT NULL,
	client        text NOT NULL,
	produit       text NOT NULL,
	quantite      numeric NOT NULL,
	prix_unitaire numeric NOT NULL,
	montant       numeric NOT NULL,
	created_at    timestamptz NOT NULL,
	updated_at    timestamptz NOT NULL
);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.DB.InMemory() {
		fmt.Fprintln(os.Stderr, "sin DATABASE_URL ni DB_HOST: nada que sembrar (el modo memoria siembra solo)")
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		fmt.Fprintf(os.Stderr, "crear esquema: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("esquema verificado")

	userRepo := postgres.NewUserRepository(pool)
	count, err := userRepo.Count()
	if err != nil {
		fmt.Fprintf(os.Stderr, "contar cuentas: %v\n", err)
		os.Exit(1)
	}
	if count > 0 {
		fmt.Printf("directorio con %d cuentas, no se siembra\n", count)
		return
	}

	seeds := []struct {
		username, password, name, role string
	}{
		{"admin", cfg.Seed.AdminPassword, "Administrateur", entity.RoleAdmin},
		{"rakoto", "rakoto123", "Rakoto Bema", entity.RoleCollecteur},
		{"solofo", "solofo123", "Solofo Andrianina", entity.RoleDistillateur},
		{"hanta", "hanta123", "Hanta Razafy", entity.RoleVendeur},
	}
	now := time.Now()
	for _, s := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hashear password de %s: %v\n", s.username, err)
			os.Exit(1)
		}
		u := &entity.User{
			ID:           uuid.New().String(),
			Username:     s.username,
			PasswordHash: string(hash),
			Name:         s.name,
			Role:         s.role,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if s.role == entity.RoleCollecteur {
			zero := decimal.Zero
			u.Balance = &zero
		}
		if err := userRepo.Create(u); err != nil {
			fmt.Fprintf(os.Stderr, "crear cuenta %s: %v\n", s.username, err)
			os.Exit(1)
		}
		fmt.Printf("cuenta %s (%s) creada\n", s.username, s.role)
	}
	fmt.Println("directorio de cuentas inicial sembrado")
}

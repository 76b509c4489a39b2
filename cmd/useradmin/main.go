package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ecomanager/api/internal/auth"
	"github.com/ecomanager/api/internal/db"
	"github.com/ecomanager/api/internal/repo"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	_ = godotenv.Load()

	ctx := context.Background()

	dsn := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dsn == "" {
		log.Fatal().Msg("defina DATABASE_URL")
	}

	pool, err := db.NewPool(ctx, dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("não foi possível conectar ao banco")
	}
	defer pool.Close()

	repository := repo.New(pool)

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "create":
		if err := runCreate(ctx, repository, args); err != nil {
			log.Fatal().Err(err).Msg("falha ao criar usuário")
		}
	case "list":
		if err := runList(ctx, repository); err != nil {
			log.Fatal().Err(err).Msg("falha ao listar usuários")
		}
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "useradmin CLI")
	fmt.Fprintln(os.Stderr, "uso:")
	fmt.Fprintln(os.Stderr, "  useradmin create --email ana@example.com --username ana --name \"Ana Silva\" --password segredo123 [--role analyst]")
	fmt.Fprintln(os.Stderr, "  useradmin list")
}

func runCreate(ctx context.Context, repository *repo.Queries, args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	email := fs.String("email", "", "email do usuário")
	username := fs.String("username", "", "username do usuário")
	name := fs.String("name", "", "nome completo")
	password := fs.String("password", "", "senha inicial")
	role := fs.String("role", "viewer", "papel (admin|manager|analyst|viewer)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" || *username == "" || *name == "" || *password == "" {
		return fmt.Errorf("email, username, name e password são obrigatórios")
	}

	normalized := repo.NormalizeRole(*role)
	if !repo.IsValidRole(normalized) {
		return fmt.Errorf("papel inválido: %s", *role)
	}

	hash, err := auth.Hash(*password)
	if err != nil {
		return err
	}

	user, err := repository.CreateUser(ctx, repo.CreateUserParams{
		Email:        *email,
		Username:     *username,
		FullName:     *name,
		PasswordHash: hash,
		Role:         normalized,
	})
	if err != nil {
		return err
	}

	log.Info().Int64("id", user.ID).Str("username", user.Username).Msg("usuário criado")
	return nil
}

func runList(ctx context.Context, repository *repo.Queries) error {
	users, err := repository.ListUsers(ctx, 0, 100)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(users)
}

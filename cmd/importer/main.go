package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - import:  Import a JSON array of listings from a file
// - migrate: Apply the embedded schema files
// - token:   Mint an access token for the protected API routes

func main() {
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)

	// import parameters
	importFile := importCmd.String("file", "", "Path of a JSON file holding an array of listings")
	importBatch := importCmd.Int("batch", 0, "Records per transaction (defaults to import.maxBatchSize)")

	// token parameters
	tokenSubject := tokenCmd.String("sub", "", "Subject UUID (random when empty)")
	tokenRoles := tokenCmd.String("roles", "admin", "Comma separated roles (admin, editor)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flags := importerFlags{
		Import: importFlags{
			cmd:   importCmd,
			file:  importFile,
			batch: importBatch,
		},
		Migrate: migrateFlags{
			cmd: migrateCmd,
		},
		Token: tokenFlags{
			cmd:     tokenCmd,
			subject: tokenSubject,
			roles:   tokenRoles,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type importerFlags struct {
	Import  importFlags
	Migrate migrateFlags
	Token   tokenFlags
}

type importFlags struct {
	cmd   *flag.FlagSet
	file  *string
	batch *int
}

type migrateFlags struct {
	cmd *flag.FlagSet
}

type tokenFlags struct {
	cmd     *flag.FlagSet
	subject *string
	roles   *string
}

func runSubcommand(ctx context.Context, flags *importerFlags) error {
	switch os.Args[1] {
	case "import":
		return handleImport(ctx, flags)
	case "migrate":
		return handleMigrate(ctx, flags)
	case "token":
		return handleToken(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleImport(ctx context.Context, flags *importerFlags) error {
	if err := flags.Import.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse import flags")
	}

	if *flags.Import.file == "" {
		return errors.New("--file flag is required for import command")
	}

	if *flags.Import.batch < 0 {
		return errors.New("--batch must not be negative")
	}

	return runImport(ctx, *flags.Import.file, *flags.Import.batch)
}

func handleMigrate(ctx context.Context, flags *importerFlags) error {
	if err := flags.Migrate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse migrate flags")
	}

	return runMigrate(ctx)
}

func handleToken(flags *importerFlags) error {
	if err := flags.Token.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse token flags")
	}

	return runToken(*flags.Token.subject, *flags.Token.roles)
}

func printUsage() {
	fmt.Println("Usage: importer <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  import     Import listings from a JSON file")
	fmt.Println("  migrate    Apply the database schema")
	fmt.Println("  token      Mint an access token for the admin routes")
	fmt.Println("")
	fmt.Println("Use 'importer <command> -h' for more information about a command.")
}

// Command implementations are in their respective files

package main

import (
	"context"
	"log"
	"os"

	_ "modernc.org/sqlite"

	"github.com/mnystrom/floorgate/internal/config"
	dbpkg "github.com/mnystrom/floorgate/internal/db"
	"github.com/mnystrom/floorgate/internal/floorgate/service"
	"github.com/mnystrom/floorgate/internal/floorgate/store"
	"github.com/mnystrom/floorgate/internal/floorgate/store/csvfile"
	"github.com/mnystrom/floorgate/internal/floorgate/store/memory"
	"github.com/mnystrom/floorgate/internal/floorgate/store/sqlite"
	"github.com/mnystrom/floorgate/internal/tui"
)

func main() {
	logger := log.New(os.Stderr, "floorgate ", log.LstdFlags|log.LUTC)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	roster := &csvfile.Store{
		UsersPath:  cfg.UsersFile,
		AdminsPath: cfg.AdminsFile,
		FloorsPath: cfg.FloorsFile,
		Logger:     logger,
	}

	if cfg.Env == "dev" {
		if err := seedDev(roster); err != nil {
			logger.Printf("dev seed: %v", err)
		}
	}

	// Audit journal. Falls back to the in-memory journal when the
	// database cannot be opened; the session still runs, history just
	// does not survive it.
	var journal store.AuditStore = memory.NewAuditStore()
	if cfg.DBPath != "" {
		conn, err := dbpkg.Open(ctx, cfg.DBPath)
		if err != nil {
			logger.Printf("audit db unavailable, history will not persist: %v", err)
		} else {
			writer := dbpkg.NewWriter(conn)
			defer func() {
				writer.Close()
				_ = conn.Close()
			}()
			journal = sqlite.NewAuditStore(conn, writer)
		}
	}

	// Load the roster. A missing or unreadable file leaves that
	// collection empty rather than aborting the session.
	users, err := roster.LoadUsers()
	if err != nil {
		logger.Printf("load users: %v", err)
	}
	admins, err := roster.LoadAdmins()
	if err != nil {
		logger.Printf("load admins: %v", err)
	}
	floors, err := roster.LoadFloors()
	if err != nil {
		logger.Printf("load floors: %v", err)
	}

	dir := service.NewDirectory(users, admins, floors)
	engine := service.NewAccessEngine(journal, logger)

	if err := engine.ReplayJournal(ctx, dir.Floors()); err != nil {
		logger.Printf("replay audit journal: %v", err)
	}

	if err := tui.NewSession(dir, engine).Run(ctx); err != nil {
		logger.Printf("session: %v", err)
	}

	// Flush the directory snapshot. Failures are reported per file and
	// the rest still saves.
	if err := roster.SaveUsers(dir.Users()); err != nil {
		logger.Printf("save users: %v", err)
	}
	if err := roster.SaveAdmins(dir.Admins()); err != nil {
		logger.Printf("save admins: %v", err)
	}
	if err := roster.SaveFloors(dir.Floors()); err != nil {
		logger.Printf("save floors: %v", err)
	}

	logger.Printf("goodbye")
}

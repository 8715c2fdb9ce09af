package main

import (
	"flag"
	"log"
	"net"
	"os"

	pb "github.com/fkramer/rps-advisor/gen/advisor"
	"github.com/fkramer/rps-advisor/internal/game"
	"github.com/fkramer/rps-advisor/internal/records"
	"github.com/fkramer/rps-advisor/internal/remote"
	"google.golang.org/grpc"
)

// #region main
func main() {
	addr := flag.String("addr", envOr("RPS_ADDR", "localhost:50052"), "listen address")
	flag.Parse()

	dbPath := envOr("RPS_DB", "rps_games.db")

	store, err := records.NewStore(dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}

	pairs, err := store.AllPairs()
	if err != nil {
		store.Close()
		log.Fatalf("failed to load game records: %v", err)
	}
	store.Close()

	counts, tally := game.Aggregate(pairs)
	log.Printf("loaded %d games (wins: you %d, computer %d, draws %d), seed alphas %v",
		len(pairs), tally.HumanWins, tally.ComputerWins, tally.Draws, counts.Observation())

	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatalf("listen on %s: %v", *addr, err)
	}

	srv := grpc.NewServer()
	pb.RegisterAdvisorServiceServer(srv, remote.NewServer(pairs))

	log.Printf("advisor server listening on %s (db: %s)", *addr, dbPath)
	if err := srv.Serve(lis); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers

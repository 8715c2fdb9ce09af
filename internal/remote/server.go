package remote

import (
	"context"
	"errors"
	"sync"

	pb "github.com/fkramer/rps-advisor/gen/advisor"
	"github.com/fkramer/rps-advisor/internal/engine"
	"github.com/fkramer/rps-advisor/internal/game"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// #region server-struct

// hostedSession pairs an engine session with the lock that serializes it.
// Sessions are strictly sequential; gRPC handlers are not.
type hostedSession struct {
	mu   sync.Mutex
	sess *engine.Session
}

// Server hosts advisory sessions over gRPC. Every StartSession seeds a fresh
// session from the same historical game pairs the server was constructed
// with.
type Server struct {
	pb.UnimplementedAdvisorServiceServer

	history [][2]game.Move

	mu       sync.Mutex
	sessions map[string]*hostedSession
}

// NewServer creates a Server seeding sessions from the given historical
// human/computer move pairs.
func NewServer(history [][2]game.Move) *Server {
	return &Server{
		history:  history,
		sessions: make(map[string]*hostedSession),
	}
}

// #endregion server-struct

// #region start-session
// StartSession seeds a new session from the server's game records and
// registers it under a fresh session ID.
func (s *Server) StartSession(_ context.Context, req *pb.StartSessionRequest) (*pb.SessionState, error) {
	cfg := engine.DefaultConfig()
	if req.GridSize != 0 {
		cfg.GridSize = int(req.GridSize)
	}

	counts, _ := game.Aggregate(s.history)
	sess, err := engine.NewSession(cfg, counts.Observation(), counts.Total())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "seed session: %v", err)
	}

	// Snapshot the state before the session becomes reachable by ReportMove.
	st := stateOf(sess)

	s.mu.Lock()
	s.sessions[sess.ID()] = &hostedSession{sess: sess}
	s.mu.Unlock()

	return st, nil
}

// #endregion start-session

// #region report-move
// ReportMove applies one observed computer move to the identified session.
// Rounds for the same session are serialized; concurrent reports are applied
// in arrival order.
func (s *Server) ReportMove(_ context.Context, req *pb.ReportMoveRequest) (*pb.SessionState, error) {
	observed := game.Move(req.ObservedMove)
	if !observed.Valid() {
		return nil, status.Errorf(codes.InvalidArgument, "observed move %d out of range", req.ObservedMove)
	}

	s.mu.Lock()
	hs, ok := s.sessions[req.SessionId]
	s.mu.Unlock()
	if !ok {
		return nil, status.Errorf(codes.NotFound, "session %q not found", req.SessionId)
	}

	hs.mu.Lock()
	defer hs.mu.Unlock()

	if _, err := hs.sess.Observe(observed); err != nil {
		if errors.Is(err, engine.ErrRoundBudgetExhausted) {
			return nil, status.Errorf(codes.FailedPrecondition, "session %q: %v", req.SessionId, err)
		}
		return nil, status.Errorf(codes.Internal, "observe: %v", err)
	}

	return stateOf(hs.sess), nil
}

// #endregion report-move

func stateOf(sess *engine.Session) *pb.SessionState {
	alpha := sess.Alpha()
	return &pb.SessionState{
		SessionId:       sess.ID(),
		RecommendedMove: int32(sess.Recommendation()),
		Alphas:          alpha[:],
		RoundsLeft:      int32(sess.RoundsLeft()),
	}
}

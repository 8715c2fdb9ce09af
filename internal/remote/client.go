// Package remote exposes the advisory engine over gRPC: a server that hosts
// sessions keyed by ID, and a thin client wrapper the interactive loop can
// use instead of a local engine.
package remote

import (
	"context"
	"fmt"

	pb "github.com/fkramer/rps-advisor/gen/advisor"
	"github.com/fkramer/rps-advisor/internal/game"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #region types
// SessionView is the client-side projection of a hosted session's state.
type SessionView struct {
	SessionID   string
	Recommended game.Move
	Alphas      [3]float64
	RoundsLeft  int
}

// #endregion types

// #region client-struct
// Client wraps the gRPC connection to an advisor server.
type Client struct {
	conn   *grpc.ClientConn
	client pb.AdvisorServiceClient
}

// #endregion client-struct

// #region constructor
// NewClient connects to an advisor gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewAdvisorServiceClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service implementation.
// Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.AdvisorServiceClient) *Client {
	return &Client{client: svc}
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection. A client built with an injected
// service has no connection; Close is then a no-op.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region start-session
// StartSession asks the server to seed a new session from its game records.
// gridSize 0 selects the server default.
func (c *Client) StartSession(ctx context.Context, gridSize int) (SessionView, error) {
	resp, err := c.client.StartSession(ctx, &pb.StartSessionRequest{
		GridSize: int32(gridSize),
	})
	if err != nil {
		return SessionView{}, fmt.Errorf("start session rpc: %w", err)
	}
	return viewFromState(resp)
}

// #endregion start-session

// #region report-move
// ReportMove reports the computer's observed move for one round and returns
// the updated session state.
func (c *Client) ReportMove(ctx context.Context, sessionID string, observed game.Move) (SessionView, error) {
	resp, err := c.client.ReportMove(ctx, &pb.ReportMoveRequest{
		SessionId:    sessionID,
		ObservedMove: int32(observed),
	})
	if err != nil {
		return SessionView{}, fmt.Errorf("report move rpc: %w", err)
	}
	return viewFromState(resp)
}

// #endregion report-move

func viewFromState(st *pb.SessionState) (SessionView, error) {
	v := SessionView{
		SessionID:   st.SessionId,
		Recommended: game.Move(st.RecommendedMove),
		RoundsLeft:  int(st.RoundsLeft),
	}
	if !v.Recommended.Valid() {
		return SessionView{}, fmt.Errorf("server returned invalid move %d", st.RecommendedMove)
	}
	if len(st.Alphas) != 3 {
		return SessionView{}, fmt.Errorf("server returned %d alphas, want 3", len(st.Alphas))
	}
	copy(v.Alphas[:], st.Alphas)
	return v, nil
}

// Package mcp exposes dialog sessions as MCP tools, so an agent host
// can drive form filling over stdio.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/sift/pkg/automaton"
	"github.com/aretw0/sift/pkg/interp"
	"github.com/aretw0/sift/pkg/ports"
	"github.com/aretw0/sift/pkg/session"
)

// TurnResponse is the structured result of one interact call.
type TurnResponse struct {
	SessionID string          `json:"session_id"`
	Message   string          `json:"message"`
	Success   bool            `json:"success"`
	State     automaton.State `json:"state"`
	Complete  bool            `json:"complete"`
}

// Server wraps a session manager and completer as an MCP server.
type Server struct {
	manager   *session.Manager
	completer ports.Completer
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server instance and registers its tools.
func NewServer(manager *session.Manager, completer ports.Completer, version string) *Server {
	s := &Server{
		manager:   manager,
		completer: completer,
		mcpServer: server.NewMCPServer("sift-mcp", version),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("start_session",
		mcp.WithDescription("Start a new dialog session and return its id plus the opening question."),
	), s.handleStartSession)

	s.mcpServer.AddTool(mcp.NewTool("interact",
		mcp.WithDescription("Run one dialog turn: forward the user's utterance to the session."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session id returned by start_session")),
		mcp.WithString("input", mcp.Required(), mcp.Description("The user's utterance for this turn")),
	), s.handleInteract)

	s.mcpServer.AddTool(mcp.NewTool("describe_state",
		mcp.WithDescription("Describe the session's current question and collected information."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session id")),
	), s.handleDescribeState)

	s.mcpServer.AddTool(mcp.NewTool("list_sessions",
		mcp.WithDescription("List the ids of all stored sessions."),
	), s.handleListSessions)

	s.mcpServer.AddTool(mcp.NewTool("delete_session",
		mcp.WithDescription("Delete a stored session."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session id")),
	), s.handleDeleteSession)
}

func (s *Server) handleStartSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID := uuid.NewString()
	a, err := s.manager.LoadOrStart(ctx, sessionID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("start failed: %v", err)), nil
	}

	msg, err := interp.New(a, s.completer).StateMessage()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("describe failed: %v", err)), nil
	}

	return s.jsonResult(TurnResponse{
		SessionID: sessionID,
		Message:   msg.Content,
		Success:   true,
		State:     a.State(),
		Complete:  a.Complete(),
	})
}

func (s *Server) handleInteract(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := request.RequireString("session_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	input, err := request.RequireString("input")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var resp TurnResponse
	err = s.manager.WithLock(ctx, sessionID, func(ctx context.Context) error {
		snap, err := s.manager.Store().Load(ctx, sessionID)
		if err != nil {
			return err
		}
		a, err := automaton.Restore(s.manager.Index(), snap)
		if err != nil {
			return err
		}

		msg, err := interp.New(a, s.completer).Interact(ctx, input)
		if err != nil {
			return err
		}
		if err := s.manager.Store().Save(ctx, sessionID, a.Snapshot()); err != nil {
			return fmt.Errorf("failed to persist turn: %w", err)
		}

		resp = TurnResponse{
			SessionID: sessionID,
			Message:   msg.Content,
			Success:   msg.Success,
			State:     a.State(),
			Complete:  a.Complete(),
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return mcp.NewToolResultError("session not found: " + sessionID), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("turn failed: %v", err)), nil
	}
	return s.jsonResult(resp)
}

func (s *Server) handleDescribeState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := request.RequireString("session_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	a, err := s.manager.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return mcp.NewToolResultError("session not found: " + sessionID), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}

	msg, err := interp.New(a, s.completer).StateMessage()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("describe failed: %v", err)), nil
	}
	return s.jsonResult(TurnResponse{
		SessionID: sessionID,
		Message:   msg.Content,
		Success:   true,
		State:     a.State(),
		Complete:  a.Complete(),
	})
}

func (s *Server) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids, err := s.manager.List(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
	}
	body, err := sonic.Marshal(map[string][]string{"sessions": ids})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(body)), nil
}

func (s *Server) handleDeleteSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := request.RequireString("session_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.manager.Delete(ctx, sessionID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("delete failed: %v", err)), nil
	}
	return mcp.NewToolResultText("deleted " + sessionID), nil
}

func (s *Server) jsonResult(resp TurnResponse) (*mcp.CallToolResult, error) {
	body, err := sonic.Marshal(resp)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(body)), nil
}

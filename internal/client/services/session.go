// Package services contains the application services of the admin console.
// This file defines the session service: login, logout, and the questions
// "is there a session" and "does the server still accept it".
package services

import (
	"context"
	"fmt"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/api"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/models"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/tokenstore"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/common"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/logging"
)

// SessionService defines session operations for the console.
//
// Contract:
//   - Login: authenticate against the server and persist token and user.
//   - Logout: forget the session locally. Never fails, never calls the network.
//   - IsAuthenticated: ask the configured TokenChecker about the stored token.
//   - Token / User: read the Token Store; absent values are "" and nil.
//   - VerifyToken: ask the server about the stored token. Never clears it.
type SessionService interface {
	Login(ctx context.Context, creds models.Credentials) (*models.LoginResult, error)
	Logout(ctx context.Context)
	IsAuthenticated(ctx context.Context) bool
	Token(ctx context.Context) string
	User(ctx context.Context) models.User
	VerifyToken(ctx context.Context) bool
}

type sessionService struct {
	api     api.AuthAPI
	tokens  tokenstore.Store
	checker TokenChecker
	log     logging.Logger
}

// NewSessionService wires a SessionService. A nil checker means presence.
func NewSessionService(client api.AuthAPI, tokens tokenstore.Store, checker TokenChecker, log logging.Logger) SessionService {
	if checker == nil {
		checker = PresenceChecker{}
	}
	return &sessionService{api: client, tokens: tokens, checker: checker, log: log}
}

// Login posts credentials and, on success, stores token and user before
// returning. When the server sends no user record, a minimal one is built
// from the identifier.
func (s *sessionService) Login(ctx context.Context, creds models.Credentials) (*models.LoginResult, error) {
	resp, err := s.api.Login(ctx, creds.Identifier, creds.Secret)
	if err != nil {
		return nil, err
	}

	token := resp.Token()
	if token == "" {
		return nil, &common.AuthenticationError{Message: "no token in response"}
	}

	user := models.User(resp.User())
	if user == nil {
		user = models.NewUser(creds.Identifier)
	}

	if err := s.tokens.Save(ctx, token, user); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.log.Info(ctx, "login succeeded", "user", user.Name())
	return &models.LoginResult{Token: token, User: user}, nil
}

func (s *sessionService) Logout(ctx context.Context) {
	if err := s.tokens.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear token store", "error", err)
		return
	}
	s.log.Info(ctx, "logged out")
}

func (s *sessionService) IsAuthenticated(ctx context.Context) bool {
	return s.checker.Valid(s.Token(ctx))
}

func (s *sessionService) Token(ctx context.Context) string {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to read token", "error", err)
		return ""
	}
	return token
}

func (s *sessionService) User(ctx context.Context) models.User {
	user, err := s.tokens.User(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to read user", "error", err)
		return nil
	}
	return user
}

func (s *sessionService) VerifyToken(ctx context.Context) bool {
	token := s.Token(ctx)
	if token == "" {
		return false
	}

	ok, err := s.api.VerifyToken(ctx, token)
	if err != nil {
		s.log.Warn(ctx, "token verification failed", "error", err)
		return false
	}
	return ok
}

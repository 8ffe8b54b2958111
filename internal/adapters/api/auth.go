package api

import (
	"context"
	"fmt"

	"github.com/htdinh/pfob-cli/internal/domain"
)

type userPayload struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

func (p userPayload) toDomain() domain.User {
	return domain.User{ID: p.ID, FullName: p.FullName, Email: p.Email}
}

func (c *Client) Login(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: creds.Email, Password: creds.Password}

	var payload struct {
		Token string      `json:"token"`
		User  userPayload `json:"user"`
	}
	if err := c.post(ctx, "/auth/login", body, &payload); err != nil {
		return domain.LoginResult{}, fmt.Errorf("login: %w", err)
	}

	return domain.LoginResult{Token: payload.Token, User: payload.User.toDomain()}, nil
}

func (c *Client) Register(ctx context.Context, req domain.RegisterRequest) (domain.Registration, error) {
	body := struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Password string `json:"password"`
		VNeID    string `json:"vneid"`
	}{FullName: req.FullName, Email: req.Email, Password: req.Password, VNeID: req.VNeID}

	var payload struct {
		Token    string      `json:"token"`
		User     userPayload `json:"user"`
		Identity *struct {
			Phone string `json:"phone"`
		} `json:"identity"`
	}
	if err := c.post(ctx, "/auth/register", body, &payload); err != nil {
		return domain.Registration{}, fmt.Errorf("register: %w", err)
	}

	registration := domain.Registration{Token: payload.Token, User: payload.User.toDomain()}
	if payload.Identity != nil {
		registration.Identity = &domain.IdentityInfo{Phone: payload.Identity.Phone}
	}

	return registration, nil
}

func (c *Client) Profile(ctx context.Context) (domain.User, error) {
	var payload struct {
		User userPayload `json:"user"`
	}
	if err := c.get(ctx, "/auth/me", nil, &payload); err != nil {
		return domain.User{}, fmt.Errorf("fetch profile: %w", err)
	}

	return payload.User.toDomain(), nil
}

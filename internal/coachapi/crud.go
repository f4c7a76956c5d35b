package coachapi

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) ListExercises(ctx context.Context) ([]Exercise, error) {
	var exercises []Exercise
	if _, err := c.do(ctx, "listExercises", http.MethodGet, "/exercise", nil, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (c *Client) AddExercise(ctx context.Context, exercise Exercise) (*Exercise, error) {
	created := &Exercise{}
	if _, err := c.do(ctx, "addExercise", http.MethodPost, "/exercise", exercise, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) GetExercise(ctx context.Context, id int) (*Exercise, error) {
	exercise := &Exercise{}
	if _, err := c.do(ctx, "getExercise", http.MethodGet, fmt.Sprintf("/exercise/%d", id), nil, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

func (c *Client) UpdateExercise(ctx context.Context, id int, exercise Exercise) (*Exercise, error) {
	updated := &Exercise{}
	if _, err := c.do(ctx, "updateExercise", http.MethodPut, fmt.Sprintf("/exercise/%d", id), exercise, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Client) DeleteExercise(ctx context.Context, id int) (*StatusResponse, error) {
	status := &StatusResponse{}
	if _, err := c.do(ctx, "deleteExercise", http.MethodDelete, fmt.Sprintf("/exercise/%d", id), nil, status); err != nil {
		return nil, err
	}
	return status, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if _, err := c.do(ctx, "listUsers", http.MethodGet, "/user", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) AddUser(ctx context.Context, user User) (*User, error) {
	created := &User{}
	if _, err := c.do(ctx, "addUser", http.MethodPost, "/user", user, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) GetUser(ctx context.Context, userID int) (*User, error) {
	user := &User{}
	if _, err := c.do(ctx, "getUser", http.MethodGet, fmt.Sprintf("/user/%d", userID), nil, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Client) UpdateUser(ctx context.Context, userID int, user User) (*User, error) {
	updated := &User{}
	if _, err := c.do(ctx, "updateUser", http.MethodPut, fmt.Sprintf("/user/%d", userID), user, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Client) DeleteUser(ctx context.Context, userID int) (*StatusResponse, error) {
	status := &StatusResponse{}
	if _, err := c.do(ctx, "deleteUser", http.MethodDelete, fmt.Sprintf("/user/%d", userID), nil, status); err != nil {
		return nil, err
	}
	return status, nil
}

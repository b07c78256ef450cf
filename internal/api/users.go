package api

import (
	"context"
	"fmt"
)

func (client *Client) GetUser(ctx context.Context, userID int64) (User, error) {
	var user User
	if err := client.getJSON(ctx, fmt.Sprintf("/users/%d", userID), nil, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (client *Client) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	if err := client.getJSON(ctx, "/users/by_email", map[string]string{"email": email}, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

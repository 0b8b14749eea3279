package cli

import (
	"context"
	"fmt"
)

func (a *App) Register(ctx context.Context) {
	username, err := a.prompt("Enter username")
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	email, err := a.prompt("Enter email")
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	payload, err := a.api.Register(ctx, username, email, password)
	if err != nil {
		fmt.Fprintf(a.out, "Registration unsuccessful: %v\n", err)
		return
	}

	a.username = payload.User.Username
	fmt.Fprintf(a.out, "Registered and logged in as %s\n", a.username)
}

func (a *App) Login(ctx context.Context) {
	email, err := a.prompt("Enter email")
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	payload, err := a.api.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintf(a.out, "Login unsuccessful: %v\n", err)
		return
	}

	a.username = payload.User.Username
	fmt.Fprintf(a.out, "Logged in as %s\n", a.username)
}

package cli

import (
	"context"
	"errors"
	"log"

	"github.com/jcruzdev/ipnavigator/internal/common"
)

func (a *App) Login(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	defer common.WipeByteArray(password)

	result, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			printlnFn("Invalid credentials")
		} else if errors.Is(err, common.ErrUnavailable) {
			printlnFn("Server unavailable, try again later")
		} else {
			log.Printf("Login unsuccessful: %s", err.Error())
		}
		return err
	}

	if err := a.sessions.Save(ctx, result); err != nil {
		// The session still works for this run, it just will not survive a
		// restart.
		a.logger.Warn(ctx, "failed to persist session", "error", err.Error())
	}

	a.current = result
	printlnFn("Logged in as", result.User.Name)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		a.logger.Warn(ctx, "failed to clear persisted session", "error", err.Error())
	}
	a.current = nil
	a.deleteMode = false
	a.selection.Clear()
	a.lastLocation = nil
	printlnFn("Logged out")
	return nil
}

func (a *App) Account(ctx context.Context) error {
	if a.current == nil {
		return common.ErrInvalidToken
	}
	printlnFn("Name: ", a.current.User.Name)
	printlnFn("Email:", a.current.User.Email)
	return nil
}

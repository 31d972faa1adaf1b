package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/client/models"
	"github.com/dmitrijs2005/moodkeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/dmitrijs2005/moodkeeper/internal/cryptox"
	"github.com/dmitrijs2005/moodkeeper/internal/logging"
	"github.com/dmitrijs2005/moodkeeper/internal/timex"
)

// AuthService is the local credential store. All registered users live in
// a single JSON array under common.UsersKey; new users are prepended.
//
// Uniqueness of e-mail addresses is checked by a linear scan at
// registration time. The scan and the write run inside one kv.Store.Update
// so two registrations cannot both succeed for the same address.
type AuthService struct {
	store kv.Store
	log   logging.Logger

	now     func() time.Time
	newID   func() string
	newSalt func() (string, error)
}

// NewAuthService constructs an AuthService over store.
func NewAuthService(store kv.Store, log logging.Logger) *AuthService {
	return &AuthService{
		store:   store,
		log:     log,
		now:     time.Now,
		newID:   common.NewID,
		newSalt: cryptox.NewSalt,
	}
}

// Register creates a user. The e-mail is trimmed and lower-cased, the
// username trimmed. It fails with *common.ValidationError for bad input and
// with common.ErrEmailAlreadyRegistered when the address is taken.
func (a *AuthService) Register(ctx context.Context, email, username string, password []byte) (*models.User, error) {
	email = common.NormalizeEmail(email)
	username = strings.TrimSpace(username)

	if err := validateStruct(registerInput{Email: email, Username: username, Password: password}); err != nil {
		return nil, err
	}

	salt, err := a.newSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	user := models.User{
		ID:           a.newID(),
		Email:        email,
		Username:     username,
		Salt:         salt,
		PasswordHash: cryptox.HashPassword(password, salt),
		CreatedAt:    timex.UnixMilli(a.now()),
	}

	err = a.store.Update(ctx, common.UsersKey, func(current []byte) ([]byte, error) {
		users := decodeUsers(current)
		for _, u := range users {
			if common.NormalizeEmail(u.Email) == email {
				return nil, common.ErrEmailAlreadyRegistered
			}
		}
		next := make([]models.User, 0, len(users)+1)
		next = append(next, user)
		next = append(next, users...)
		return json.Marshal(next)
	})
	if err != nil {
		if errors.Is(err, common.ErrEmailAlreadyRegistered) {
			return nil, err
		}
		return nil, fmt.Errorf("save users: %w", err)
	}

	a.log.Info(ctx, "user registered", "user_id", user.ID)
	return &user, nil
}

// Login checks the password of the account registered under email.
// It returns common.ErrNoSuchAccount or common.ErrWrongPassword on failure.
func (a *AuthService) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	email = common.NormalizeEmail(email)
	if err := validateStruct(loginInput{Email: email, Password: password}); err != nil {
		return nil, err
	}

	users, err := a.Users(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if common.NormalizeEmail(u.Email) != email {
			continue
		}
		if !cryptox.VerifyPassword(u.PasswordHash, u.Salt, password) {
			a.log.Debug(ctx, "login rejected", "user_id", u.ID)
			return nil, common.ErrWrongPassword
		}
		a.log.Info(ctx, "user logged in", "user_id", u.ID)
		return &u, nil
	}
	return nil, common.ErrNoSuchAccount
}

// FindByID returns the user with the given id or common.ErrorNotFound.
func (a *AuthService) FindByID(ctx context.Context, id string) (*models.User, error) {
	users, err := a.Users(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, common.ErrorNotFound
}

// Users returns every registered user in stored order.
func (a *AuthService) Users(ctx context.Context) ([]models.User, error) {
	raw, err := a.store.Get(ctx, common.UsersKey)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return decodeUsers(raw), nil
}

// decodeUsers reads the users collection leniently. Non-object elements
// are dropped and fields are coerced to their expected types.
func decodeUsers(raw []byte) []models.User {
	records, _ := decodeRecords(raw)
	users := make([]models.User, 0, len(records))
	for _, r := range records {
		users = append(users, models.User{
			ID:           asString(r["id"], ""),
			Email:        asString(r["email"], ""),
			Username:     asString(r["username"], ""),
			Salt:         asString(r["salt"], ""),
			PasswordHash: asString(r["passwordHash"], ""),
			CreatedAt:    asMillis(r["createdAt"], 0),
		})
	}
	return users
}

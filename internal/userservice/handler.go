package userservice

import (
	"context"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sulaski/blogden/internal/common"
)

// NewUserService wires the user model against the given database. The message
// producer may be nil, in which case lifecycle events are not published.
func NewUserService(db *mongo.Database, mb common.MessageProducer) *UserService {
	return &UserService{m: newUserModel(db), mb: mb}
}

// ListUsers returns every user in the store.
func (s *UserService) ListUsers(ctx context.Context) ([]User, error) {
	return s.m.getAll(ctx)
}

// CreateUser stores a new user with the given username and publishes a
// user.created event.
func (s *UserService) CreateUser(ctx context.Context, username string) (*User, error) {
	v := common.NewValidator()
	validateUsername(v, username)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	now := time.Now().UTC()
	user := &User{
		Username:  username,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.m.insert(ctx, user); err != nil {
		return nil, err
	}

	s.publishCreated(ctx, user)

	return user, nil
}

// GetUser resolves a user by identifier.
func (s *UserService) GetUser(ctx context.Context, id primitive.ObjectID) (*User, error) {
	return s.m.getByID(ctx, id)
}

// UpdateUsername replaces the username of an existing user and returns the
// updated document.
func (s *UserService) UpdateUsername(ctx context.Context, id primitive.ObjectID, newUsername string) (*User, error) {
	v := common.NewValidator()
	validateUsername(v, newUsername)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.updateUsername(ctx, id, newUsername, time.Now().UTC())
}

// DeleteUser removes a user by identifier and returns the deleted document.
// Dependent categories and blogs are not cascaded.
func (s *UserService) DeleteUser(ctx context.Context, id primitive.ObjectID) (*User, error) {
	return s.m.deleteByID(ctx, id)
}

// publishCreated is best-effort: a lost event never fails the request.
func (s *UserService) publishCreated(ctx context.Context, user *User) {
	if s.mb == nil {
		return
	}

	msg, err := json.Marshal(user)
	if err != nil {
		return
	}

	_ = s.mb.Publish(ctx, msg, common.UserCreatedKey, common.EntityExchange)
}

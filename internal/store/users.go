package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zkortam/tritontory-sub002/internal/models"
)

// UserService provides user collection operations
type UserService struct {
	*Store
}

// NewUserService creates a new user service
func NewUserService(s *Store) *UserService {
	return &UserService{Store: s}
}

// Create inserts a new user. The email unique index rejects duplicates
// with ErrDuplicate.
func (s *UserService) Create(ctx context.Context, u *models.User) error {
	if u.Email == "" {
		return fmt.Errorf("email is required")
	}
	if u.PasswordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = models.RoleViewer
	}
	if !u.Role.Valid() {
		return fmt.Errorf("invalid role: %s", u.Role)
	}
	u.CreatedAt = time.Now().UTC()
	return insertDoc(ctx, s.db.Collection(collUsers), u)
}

// Get returns one user by id, or (nil, nil) when it does not exist
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return getDoc[models.User](ctx, s.db.Collection(collUsers), id)
}

// GetByEmail returns one user by email, or (nil, nil) when it does not exist
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.Collection(collUsers).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}
	return &user, nil
}

// SetRole updates a user's role
func (s *UserService) SetRole(ctx context.Context, id string, role models.Role) error {
	if !role.Valid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	_, err := s.db.Collection(collUsers).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": role}},
	)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	return nil
}

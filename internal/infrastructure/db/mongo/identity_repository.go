package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/lumenstudio/studio/internal/core/domain"
	"github.com/lumenstudio/studio/internal/core/ports"
	"github.com/lumenstudio/studio/internal/pkg/validate"
)

const collectionIdentities = "identities"

// IdentityRepository is an IdentityProvider over a Mongo collection of
// bcrypt-hashed accounts. Emails are stored lowercased.
type IdentityRepository struct {
	col *mongo.Collection
}

func NewIdentityRepository(db *mongo.Database) *IdentityRepository {
	return &IdentityRepository{col: db.Collection(collectionIdentities)}
}

type identityDocument struct {
	UID          string    `bson:"_id"`
	Email        string    `bson:"email"`
	DisplayName  string    `bson:"display_name"`
	PasswordHash string    `bson:"password_hash"`
	Admin        bool      `bson:"admin"`
	CreatedAt    time.Time `bson:"created_at"`
}

func (d identityDocument) identity() *ports.Identity {
	return &ports.Identity{
		UID:         d.UID,
		Email:       d.Email,
		DisplayName: d.DisplayName,
		Admin:       d.Admin,
		CreatedAt:   d.CreatedAt,
	}
}

// SignIn checks the password for email. Unknown accounts and bad passwords
// come back as distinct provider codes.
func (r *IdentityRepository) SignIn(ctx context.Context, email, password string) (*ports.Identity, error) {
	email = normalizeEmail(email)
	if err := validate.Var("email", email, "required,email"); err != nil {
		return nil, &domain.TransportError{Code: domain.CodeInvalidEmail, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc identityDocument
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &domain.TransportError{Code: domain.CodeUserNotFound}
		}
		return nil, &domain.TransportError{Code: domain.CodeInternal, Err: fmt.Errorf("find identity: %w", err)}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(doc.PasswordHash), []byte(password)); err != nil {
		return nil, &domain.TransportError{Code: domain.CodeWrongPassword}
	}
	return doc.identity(), nil
}

// Register creates an account. A duplicate email is rejected with
// CodeEmailInUse.
func (r *IdentityRepository) Register(ctx context.Context, email, password, displayName string, admin bool) (*ports.Identity, error) {
	email = normalizeEmail(email)
	if err := validate.Var("email", email, "required,email"); err != nil {
		return nil, &domain.TransportError{Code: domain.CodeInvalidEmail, Err: err}
	}
	if err := validate.Var("password", password, "required,min=6"); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	doc := identityDocument{
		UID:          uuid.NewString(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: string(hash),
		Admin:        admin,
		CreatedAt:    time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &domain.TransportError{Code: domain.CodeEmailInUse}
		}
		return nil, &domain.TransportError{Code: domain.CodeInternal, Err: fmt.Errorf("insert identity: %w", err)}
	}
	return doc.identity(), nil
}

// EnsureIndexes creates the unique email index.
func (r *IdentityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

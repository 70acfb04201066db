package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/techchallenge/user-service/internal/core/domain"
)

const collectionUsers = "users"

// UserRepository stores users in a MongoDB collection. Email uniqueness is
// enforced by a unique index, see EnsureIndexes.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

type userDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Email          string             `bson:"email"`
	Login          string             `bson:"login"`
	PasswordHash   string             `bson:"password_hash"`
	UserType       string             `bson:"user_type"`
	Address        *domain.Address    `bson:"address,omitempty"`
	LastModifiedAt time.Time          `bson:"last_modified_at"`
}

func toDocument(u *domain.User) userDocument {
	return userDocument{
		Name:           u.Name,
		Email:          u.Email,
		Login:          u.Login,
		PasswordHash:   u.PasswordHash,
		UserType:       string(u.Type),
		Address:        u.Address,
		LastModifiedAt: u.LastModifiedAt.UTC(),
	}
}

func (d userDocument) toDomain() *domain.User {
	return &domain.User{
		ID:             d.ID.Hex(),
		Name:           d.Name,
		Email:          d.Email,
		Login:          d.Login,
		PasswordHash:   d.PasswordHash,
		Type:           domain.UserType(d.UserType),
		Address:        d.Address,
		LastModifiedAt: d.LastModifiedAt.UTC(),
	}
}

// Insert stores user under a fresh ObjectID and returns its hex form.
func (r *UserRepository) Insert(ctx context.Context, user *domain.User) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toDocument(user)
	doc.ID = primitive.NewObjectID()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrEmailAlreadyExists
		}
		return "", fmt.Errorf("insert user: %w", err)
	}
	return doc.ID.Hex(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// not an id this store could have issued
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid}, nil)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email}, nil)
}

// FindByLogin returns the earliest inserted user with login. ObjectIDs grow
// with insertion time, so sorting on _id gives registration order.
func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})
	return r.findOne(ctx, bson.M{"login": login}, opts)
}

// SearchByName matches fragment anywhere in the name, ignoring case. The
// fragment is quoted so regex metacharacters match literally.
func (r *UserRepository) SearchByName(ctx context.Context, fragment string) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if fragment != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(fragment), Options: "i"}
	}
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	defer cur.Close(ctx)

	users := make([]*domain.User, 0)
	for cur.Next(ctx) {
		var doc userDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}

// Update replaces the whole stored document for user.ID.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toDocument(user)
	doc.ID = oid

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"_id": oid}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return n > 0, nil
}

// EnsureIndexes creates the unique email index and a lookup index on login.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
		{Keys: bson.D{{Key: "login", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M, opts *options.FindOneOptions) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var findOpts []*options.FindOneOptions
	if opts != nil {
		findOpts = append(findOpts, opts)
	}

	var doc userDocument
	if err := r.col.FindOne(ctx, filter, findOpts...).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

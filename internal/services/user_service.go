package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eventos-app/backend/internal/helpers"
	"github.com/eventos-app/backend/internal/models"
)

// UserService issues user-collection queries and keeps the user side of
// the user/event participation relationship consistent.
type UserService struct {
	users  *mongo.Collection
	events *mongo.Collection
}

func NewUserService(db *mongo.Database) *UserService {
	return &UserService{
		users:  db.Collection("users"),
		events: db.Collection("events"),
	}
}

func (s *UserService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	hashed, err := helpers.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hashed
	user.Active = true
	if user.Events == nil {
		user.Events = []primitive.ObjectID{}
	}

	res, err := s.users.InsertOne(ctx, user)
	if err != nil {
		return nil, wrapMongoErr(err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

// CreateAdmin creates a user with the admin flag already set. Callers
// are responsible for authorizing the request first.
func (s *UserService) CreateAdmin(ctx context.Context, user *models.User) (*models.User, error) {
	user.Admin = true
	return s.Create(ctx, user)
}

func (s *UserService) list(ctx context.Context, filter bson.M, skip, limit int) ([]models.User, int64, error) {
	opts := options.Find().SetSkip(int64(skip)).SetLimit(int64(limit))
	cursor, err := s.users.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}

	total, err := s.users.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *UserService) GetAll(ctx context.Context, skip, limit int) ([]models.User, int64, error) {
	return s.list(ctx, bson.M{"active": true}, skip, limit)
}

func (s *UserService) GetAllWithInactive(ctx context.Context, skip, limit int) ([]models.User, int64, error) {
	return s.list(ctx, bson.M{}, skip, limit)
}

func (s *UserService) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	if err := s.users.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, wrapMongoErr(err)
	}
	return &user, nil
}

func (s *UserService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.findOne(ctx, bson.M{"_id": id, "active": true})
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"username": username, "active": true})
}

func (s *UserService) update(ctx context.Context, filter, patch bson.M) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err := s.users.FindOneAndUpdate(ctx, filter, bson.M{"$set": patch}, opts).Decode(&user)
	if err != nil {
		return nil, wrapMongoErr(err)
	}
	return &user, nil
}

// UpdateByID patches an active user. Password changes are rejected
// upstream; the patch never carries one.
func (s *UserService) UpdateByID(ctx context.Context, id primitive.ObjectID, patch bson.M) (*models.User, error) {
	return s.update(ctx, bson.M{"_id": id, "active": true}, patch)
}

func (s *UserService) UpdateByUsername(ctx context.Context, username string, patch bson.M) (*models.User, error) {
	return s.update(ctx, bson.M{"username": username, "active": true}, patch)
}

// Disable and Reactivate run without an active filter so they are
// idempotent: flipping to the current state still returns the record.
func (s *UserService) DisableByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.update(ctx, bson.M{"_id": id}, bson.M{"active": false})
}

func (s *UserService) DisableByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.update(ctx, bson.M{"username": username}, bson.M{"active": false})
}

func (s *UserService) ReactivateByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.update(ctx, bson.M{"_id": id}, bson.M{"active": true})
}

func (s *UserService) ReactivateByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.update(ctx, bson.M{"username": username}, bson.M{"active": true})
}

func (s *UserService) SetAdmin(ctx context.Context, id primitive.ObjectID, admin bool) (*models.User, error) {
	return s.update(ctx, bson.M{"_id": id}, bson.M{"admin": admin})
}

// DeleteByID permanently removes a user. Dangling references in event
// participant sets are left in place.
func (s *UserService) DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := s.users.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, wrapMongoErr(err)
	}
	return &user, nil
}

func (s *UserService) DeleteByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.users.FindOneAndDelete(ctx, bson.M{"username": username}).Decode(&user); err != nil {
		return nil, wrapMongoErr(err)
	}
	return &user, nil
}

// AddEvent links an event to the user and the user to the event's
// participant set. If the event turns out not to exist the user-side
// write is compensated so the link never half-applies.
func (s *UserService) AddEvent(ctx context.Context, userID, eventID primitive.ObjectID) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err := s.users.FindOneAndUpdate(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"events": eventID}},
		opts,
	).Decode(&user)
	if err != nil {
		return nil, wrapMongoErr(err)
	}

	res, err := s.events.UpdateByID(ctx, eventID, bson.M{"$addToSet": bson.M{"participants": userID}})
	if err == nil && res.MatchedCount == 0 {
		err = ErrNotFound
	}
	if err != nil {
		_, _ = s.users.UpdateByID(ctx, userID, bson.M{"$pull": bson.M{"events": eventID}})
		return nil, wrapMongoErr(err)
	}
	return &user, nil
}

// RemoveEvent unlinks both sides. Unlinking a pair that was never
// linked, or whose event no longer exists, is a no-op.
func (s *UserService) RemoveEvent(ctx context.Context, userID, eventID primitive.ObjectID) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err := s.users.FindOneAndUpdate(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"events": eventID}},
		opts,
	).Decode(&user)
	if err != nil {
		return nil, wrapMongoErr(err)
	}

	if _, err := s.events.UpdateByID(ctx, eventID, bson.M{"$pull": bson.M{"participants": userID}}); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) login(ctx context.Context, filter bson.M, password string) (*models.User, error) {
	user, err := s.findOne(ctx, filter)
	if err == ErrNotFound {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !helpers.CheckPassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, error) {
	return s.login(ctx, bson.M{"username": username, "active": true}, password)
}

// LoginAdmin succeeds only for an active user carrying the admin flag.
func (s *UserService) LoginAdmin(ctx context.Context, username, password string) (*models.User, error) {
	return s.login(ctx, bson.M{"username": username, "active": true, "admin": true}, password)
}

// HasAnyAdmin re-derives the bootstrap state from the store on every
// call; it is never cached.
func (s *UserService) HasAnyAdmin(ctx context.Context) (bool, error) {
	n, err := s.users.CountDocuments(ctx, bson.M{"admin": true, "active": true})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
